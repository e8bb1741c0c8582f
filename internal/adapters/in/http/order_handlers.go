package http

import (
	"net/http"

	"agromarket/internal/core/application/usecases/commands"
	"agromarket/internal/core/application/usecases/queries"
	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/order"
	"agromarket/internal/core/domain/model/user"
	"agromarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

type createOrderRequest struct {
	ListingID       string  `json:"listingId"`
	Quantity        float64 `json:"quantity"`
	DeliveryAddress string  `json:"deliveryAddress"`
}

// CreateOrder handles POST /api/orders and answers with the created order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	buyerID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	listingID, err := kernel.UUIDFromString(req.ListingID)
	if err != nil {
		return respondError(ctx, err)
	}
	quantity, err := kernel.NewQuantity(req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	orderID := kernel.NewUUID()
	cmd, err := commands.NewCreateOrderCommand(orderID, listingID, buyerID, quantity, req.DeliveryAddress)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, buyerID, false)
	if err != nil {
		return respondError(ctx, err)
	}
	created, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, toOrderResponse(created))
}

// GetBuyerOrders handles GET /api/orders/buyer.
func (s *Server) GetBuyerOrders(ctx echo.Context) error {
	buyerID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	status, err := statusFilter(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetBuyerOrdersQuery(buyerID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetBuyerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(result))
}

// GetFarmerOrders handles GET /api/orders/farmer.
func (s *Server) GetFarmerOrders(ctx echo.Context) error {
	farmerID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	status, err := statusFilter(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetFarmerOrdersQuery(farmerID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetFarmerOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponses(result))
}

// GetOrder handles GET /api/orders/:id. Participants see their own orders,
// admins any order.
func (s *Server) GetOrder(ctx echo.Context) error {
	requesterID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetOrderQuery(orderID, requesterID, currentRole(ctx) == user.RoleAdmin)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toOrderResponse(result))
}

type changeOrderStatusRequest struct {
	Status string `json:"status"`
}

// ChangeOrderStatus handles PUT /api/orders/:id/status. Which side of the
// order may request which status is decided by the order itself.
func (s *Server) ChangeOrderStatus(ctx echo.Context) error {
	actorID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req changeOrderStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	status, err := order.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, actorID, status)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.ChangeOrderStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"status": status.String()})
}

// CancelOrder handles DELETE /api/orders/:id. Only pending orders can be
// cancelled by their buyer.
func (s *Server) CancelOrder(ctx echo.Context) error {
	buyerID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewWithdrawOrderCommand(orderID, buyerID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.WithdrawOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{"status": order.Cancelled.String()})
}

func statusFilter(ctx echo.Context) (*order.Status, error) {
	raw := ctx.QueryParam("status")
	if raw == "" {
		return nil, nil
	}

	status, err := order.ParseStatus(raw)
	if err != nil {
		return nil, err
	}
	return &status, nil
}
