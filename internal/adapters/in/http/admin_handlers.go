package http

import (
	"net/http"
	"strconv"

	"agromarket/internal/core/application/usecases/commands"
	"agromarket/internal/core/application/usecases/queries"
	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/user"

	"github.com/labstack/echo/v4"
)

// GetUsers handles GET /api/admin/users.
func (s *Server) GetUsers(ctx echo.Context) error {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))

	var role *user.Role
	if raw := ctx.QueryParam("role"); raw != "" {
		parsed, err := user.ParseRole(raw)
		if err != nil {
			return respondError(ctx, err)
		}
		role = &parsed
	}

	query, err := queries.NewGetUsersQuery(role, page, pageSize)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetUsers.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	responses := make([]userResponse, len(result.Users))
	for i, item := range result.Users {
		responses[i] = toUserResponse(item)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"users": responses,
		"total": result.Total,
	})
}

// VerifyUser handles POST /api/admin/users/:id/verify.
func (s *Server) VerifyUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewVerifyUserCommand(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.VerifyUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type setUserRoleRequest struct {
	Role string `json:"role"`
}

// SetUserRole handles PUT /api/admin/users/:id/role.
func (s *Server) SetUserRole(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req setUserRoleRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	role, err := user.ParseRole(req.Role)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewSetUserRoleCommand(userID, role)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.SetUserRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type setUserStatusRequest struct {
	Active bool `json:"active"`
}

// SetUserStatus handles PUT /api/admin/users/:id/status.
func (s *Server) SetUserStatus(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req setUserStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	cmd, err := commands.NewSetUserStatusCommand(userID, req.Active)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.SetUserStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteUser handles DELETE /api/admin/users/:id.
func (s *Server) DeleteUser(ctx echo.Context) error {
	userID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteUserCommand(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteUser.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetPlatformStats handles GET /api/admin/stats.
func (s *Server) GetPlatformStats(ctx echo.Context) error {
	result, err := s.queries.GetPlatformStats.Handle(
		ctx.Request().Context(), queries.NewGetPlatformStatsQuery(),
	)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"totalUsers":       result.TotalUsers,
		"farmers":          result.Farmers,
		"buyers":           result.Buyers,
		"activeListings":   result.ActiveListings,
		"totalListings":    result.TotalListings,
		"totalOrders":      result.TotalOrders,
		"pendingOrders":    result.PendingOrders,
		"completedOrders":  result.CompletedOrders,
		"completedRevenue": result.CompletedRevenue,
		"forumPosts":       result.ForumPosts,
	})
}
