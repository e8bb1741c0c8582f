package http

import (
	"net/http"

	"agromarket/internal/core/application/usecases/commands"
	"agromarket/internal/core/application/usecases/queries"
	"agromarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetLoyaltyAccount handles GET /api/loyalty. Users without a ledger row
// yet see a zero balance.
func (s *Server) GetLoyaltyAccount(ctx echo.Context) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	query, err := queries.NewGetLoyaltyAccountQuery(userID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetLoyaltyAccount.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"userId":      result.UserID.String(),
		"points":      result.Points,
		"totalEarned": result.TotalEarned,
		"tier":        result.Tier.String(),
	})
}

type spendPointsRequest struct {
	Points int64 `json:"points"`
}

// SpendPoints handles POST /api/loyalty/spend.
func (s *Server) SpendPoints(ctx echo.Context) error {
	userID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	var req spendPointsRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	cmd, err := commands.NewSpendPointsCommand(userID, req.Points)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.SpendPoints.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
