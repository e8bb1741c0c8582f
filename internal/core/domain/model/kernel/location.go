package kernel

// Location is the free-form place a user or listing advertises: Nigerian
// state, local government area, and optional street address. All fields are
// optional; filtering happens on State.
type Location struct {
	State   string
	LGA     string
	Address string
}

// IsZero reports whether no location information was provided.
func (l Location) IsZero() bool {
	return l == Location{}
}
