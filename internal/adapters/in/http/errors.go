package http

import (
	"errors"
	"net/http"

	"agromarket/internal/core/application/usecases/commands"
	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/ports"
	"agromarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// respondError translates application errors into HTTP answers with a JSON
// {"error": ...} body. Unrecognized errors become an opaque 500 so internal
// details never leak to the client.
func respondError(ctx echo.Context, err error) error {
	return ctx.JSON(statusFor(err), echo.Map{"error": messageFor(err)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, errs.ErrNotAuthorized):
		return http.StatusForbidden
	case errors.Is(err, ports.ErrInsufficientStock),
		errors.Is(err, commands.ErrEmailAlreadyRegistered):
		return http.StatusConflict
	case isValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(err error) string {
	if statusFor(err) == http.StatusInternalServerError {
		return "internal server error"
	}
	return err.Error()
}

func isValidationError(err error) bool {
	validationSentinels := []error{
		errs.ErrValueIsInvalid,
		errs.ErrValueIsOutOfRange,
		errs.ErrValueIsRequired,
		kernel.ErrUUIDIsNotConstructed,
		commands.ErrQuantityIsInvalid,
		commands.ErrListingNotOrderable,
		commands.ErrCannotOrderOwnListing,
		commands.ErrTitleIsRequired,
		commands.ErrContentIsRequired,
		commands.ErrProduceTypeIsRequired,
		commands.ErrEmailIsInvalid,
		commands.ErrNameIsRequired,
		commands.ErrPasswordIsRequired,
		commands.ErrTextIsRequired,
		commands.ErrPointsAreInvalid,
		commands.ErrConversationIDIsRequired,
	}
	for _, sentinel := range validationSentinels {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
