package http

import (
	"net/http"
	"strconv"

	"agromarket/internal/core/application/usecases/commands"
	"agromarket/internal/core/application/usecases/queries"
	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/listing"
	"agromarket/internal/core/domain/model/user"
	"agromarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// GetListings handles GET /api/listings.
func (s *Server) GetListings(ctx echo.Context) error {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	pageSize, _ := strconv.Atoi(ctx.QueryParam("pageSize"))

	query := queries.NewGetListingsQuery(
		ctx.QueryParam("produceType"),
		ctx.QueryParam("state"),
		ctx.QueryParam("search"),
		priceParam(ctx, "minPrice"),
		priceParam(ctx, "maxPrice"),
		page, pageSize,
	)

	result, err := s.queries.GetListings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"listings": toListingResponses(result.Listings),
		"total":    result.Total,
	})
}

// priceParam parses an optional price bound. Absent or unparsable values
// mean no bound, as the catalogue treats every filter as best effort.
func priceParam(ctx echo.Context, name string) *float64 {
	raw := ctx.QueryParam(name)
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}

// GetListing handles GET /api/listings/:id.
func (s *Server) GetListing(ctx echo.Context) error {
	listingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetListingQuery(listingID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetListing.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toListingResponse(result))
}

// RecordListingView handles POST /api/listings/:id/view. Fire and forget: a
// vanished listing still answers 200.
func (s *Server) RecordListingView(ctx echo.Context) error {
	listingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewRecordListingViewCommand(listingID)
	if err != nil {
		return respondError(ctx, err)
	}

	_ = s.commands.RecordListingView.Handle(ctx.Request().Context(), cmd)

	return ctx.JSON(http.StatusOK, echo.Map{"success": true})
}

// GetMyListings handles GET /api/listings/my/listings.
func (s *Server) GetMyListings(ctx echo.Context) error {
	farmerID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	query, err := queries.NewGetFarmerListingsQuery(farmerID)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.queries.GetFarmerListings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toListingResponses(result))
}

type createListingRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ProduceType string   `json:"produceType"`
	Price       float64  `json:"price"`
	Quantity    float64  `json:"quantity"`
	Unit        string   `json:"unit"`
	State       string   `json:"state"`
	LGA         string   `json:"lga"`
	Address     string   `json:"address"`
	ImageURLs   []string `json:"imageUrls"`
}

// CreateListing handles POST /api/listings.
func (s *Server) CreateListing(ctx echo.Context) error {
	farmerID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	var req createListingRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	price, err := kernel.NewMoney(req.Price)
	if err != nil {
		return respondError(ctx, err)
	}
	quantity, err := kernel.NewQuantity(req.Quantity)
	if err != nil {
		return respondError(ctx, err)
	}

	listingID := kernel.NewUUID()
	cmd, err := commands.NewCreateListingCommand(
		listingID, farmerID,
		req.Title, req.Description, req.ProduceType,
		price, quantity, req.Unit,
		kernel.Location{State: req.State, LGA: req.LGA, Address: req.Address},
		req.ImageURLs,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.CreateListing.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{"id": listingID.String()})
}

type updateListingRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ProduceType string   `json:"produceType"`
	Price       *float64 `json:"price"`
	Quantity    *float64 `json:"quantity"`
	Unit        string   `json:"unit"`
	State       string   `json:"state"`
	LGA         string   `json:"lga"`
	Address     string   `json:"address"`
	ImageURLs   []string `json:"imageUrls"`
	Active      *bool    `json:"active"`
}

// UpdateListing handles PUT /api/listings/:id. Absent fields keep their
// current values.
func (s *Server) UpdateListing(ctx echo.Context) error {
	actorID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	listingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req updateListingRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	var price *kernel.Money
	if req.Price != nil {
		parsed, priceErr := kernel.NewMoney(*req.Price)
		if priceErr != nil {
			return respondError(ctx, priceErr)
		}
		price = &parsed
	}

	var quantity *kernel.Quantity
	if req.Quantity != nil {
		parsed, qtyErr := kernel.NewQuantity(*req.Quantity)
		if qtyErr != nil {
			return respondError(ctx, qtyErr)
		}
		quantity = &parsed
	}

	var location *kernel.Location
	if req.State != "" || req.LGA != "" || req.Address != "" {
		location = &kernel.Location{State: req.State, LGA: req.LGA, Address: req.Address}
	}

	cmd, err := commands.NewUpdateListingCommand(
		listingID, actorID,
		req.Title, req.Description, req.ProduceType,
		price, quantity, req.Unit,
		location, req.ImageURLs, req.Active,
	)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.UpdateListing.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteListing handles DELETE /api/listings/:id. Farmers may delete
// their own listings, admins any listing.
func (s *Server) DeleteListing(ctx echo.Context) error {
	actorID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	listingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteListingCommand(listingID, actorID, currentRole(ctx) == user.RoleAdmin)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.DeleteListing.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

type moderateListingRequest struct {
	Status string `json:"status"`
	Reason string `json:"reason"`
}

// ModerateListing handles PUT /api/admin/listings/:id/moderate.
func (s *Server) ModerateListing(ctx echo.Context) error {
	adminID, ok := currentUserID(ctx)
	if !ok {
		return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
	}

	listingID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return respondError(ctx, err)
	}

	var req moderateListingRequest
	if err = ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}

	status, err := listing.ParseStatus(req.Status)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewModerateListingCommand(listingID, adminID, status, req.Reason)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.commands.ModerateListing.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
