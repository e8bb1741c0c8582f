package http

import (
	"net/http"

	"agromarket/internal/auth"
	"agromarket/internal/core/application/usecases/commands"
	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/user"
	"agromarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type registerRequest struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
	Role     string `json:"role"`
	State    string `json:"state"`
	LGA      string `json:"lga"`
	Address  string `json:"address"`
}

// Register handles POST /api/auth/register.
func (s *Server) Register(ctx echo.Context) error {
	var req registerRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}
	if role == user.RoleAdmin {
		return respondError(ctx, errs.NewNotAuthorizedError("admin accounts cannot self-register"))
	}

	userID := kernel.NewUUID()
	cmd, err := commands.NewRegisterUserCommand(
		userID,
		req.Email, req.Name, req.Phone, req.Password,
		role,
		kernel.Location{State: req.State, LGA: req.LGA, Address: req.Address},
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.RegisterUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	token, err := auth.GenerateToken(s.jwtSecret, userID.String(), req.Email, role.String())
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"id":    userID.String(),
		"token": token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login. Wrong email and wrong password get
// the same answer.
func (s *Server) Login(ctx echo.Context) error {
	var req loginRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	account, err := s.users.GetByEmail(ctx.Request().Context(), req.Email)
	if err != nil || !auth.CheckPassword(account.PasswordHash(), req.Password) {
		return respondError(ctx, errs.NewNotAuthenticatedError("invalid credentials"))
	}
	if !account.Active() {
		return respondError(ctx, errs.NewNotAuthorizedError("account is deactivated"))
	}

	token, err := auth.GenerateToken(
		s.jwtSecret, account.ID().String(), account.Email(), account.Role().String(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"token": token,
		"user":  toProfileResponse(account),
	})
}

// GetProfile handles GET /api/auth/profile.
func (s *Server) GetProfile(ctx echo.Context) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	account, err := s.users.Get(ctx.Request().Context(), userID)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toProfileResponse(account))
}

type updateProfileRequest struct {
	Name    string  `json:"name"`
	Phone   string  `json:"phone"`
	State   string  `json:"state"`
	LGA     string  `json:"lga"`
	Address string  `json:"address"`
	Bio     *string `json:"bio"`
}

// UpdateProfile handles PUT /api/auth/profile. Absent fields keep their
// current values.
func (s *Server) UpdateProfile(ctx echo.Context) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	var req updateProfileRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	var location *kernel.Location
	if req.State != "" || req.LGA != "" || req.Address != "" {
		location = &kernel.Location{State: req.State, LGA: req.LGA, Address: req.Address}
	}

	cmd, err := commands.NewUpdateProfileCommand(userID, req.Name, req.Phone, location, req.Bio)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateProfile.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// VerifySelf handles POST /api/auth/verify. Marks the caller's own account
// verified.
func (s *Server) VerifySelf(ctx echo.Context) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	cmd, err := commands.NewVerifyUserCommand(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.VerifyUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"verified": true})
}

func toProfileResponse(account *user.User) userResponse {
	return userResponse{
		ID:        account.ID().String(),
		Email:     account.Email(),
		Name:      account.Name(),
		Phone:     account.Phone(),
		Role:      account.Role().String(),
		State:     account.Location().State,
		LGA:       account.Location().LGA,
		Address:   account.Location().Address,
		Bio:       account.Bio(),
		Verified:  account.Verified(),
		Active:    account.Active(),
		CreatedAt: account.CreatedAt(),
	}
}
