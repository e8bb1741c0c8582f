package queries

import (
	"errors"
	"time"

	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/user"
	"agromarket/internal/pkg/guard"
)

var ErrGetUsersQueryIsNotConstructed = errors.New(
	"GetUsersQuery must be created via NewGetUsersQuery constructor",
)

// GetUsersQuery retrieves accounts for the admin console, newest first,
// optionally narrowed to one role.
type GetUsersQuery struct {
	role     *user.Role
	page     int
	pageSize int

	guard guard.ConstructorGuard
}

// NewGetUsersQuery creates an account listing query. A nil role matches every
// account.
func NewGetUsersQuery(role *user.Role, page, pageSize int) (GetUsersQuery, error) {
	if role != nil {
		if err := role.Validate(); err != nil {
			return GetUsersQuery{}, err
		}
	}

	return GetUsersQuery{
		role:     role,
		page:     normalizePage(page),
		pageSize: normalizePageSize(pageSize),
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Role returns the role filter, nil for all.
func (q GetUsersQuery) Role() *user.Role { return q.role }

// Page returns the one-based page number.
func (q GetUsersQuery) Page() int { return q.page }

// PageSize returns the number of rows per page.
func (q GetUsersQuery) PageSize() int { return q.pageSize }

// Validate ensures the query was created through the constructor.
func (q GetUsersQuery) Validate() error {
	return q.guard.Validate(ErrGetUsersQueryIsNotConstructed)
}

// UserQueryResponse is the admin console read model for one account. The
// password hash never leaves the write side.
type UserQueryResponse struct {
	ID        kernel.UUID
	Email     string
	Name      string
	Phone     string
	Role      user.Role
	Location  kernel.Location
	Bio       string
	Verified  bool
	Active    bool
	CreatedAt time.Time
}

// GetUsersQueryResponse is one account page together with the total row
// count.
type GetUsersQueryResponse struct {
	Users []UserQueryResponse
	Total int64
}
