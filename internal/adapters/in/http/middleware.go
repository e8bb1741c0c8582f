package http

import (
	"strings"

	"agromarket/internal/auth"
	"agromarket/internal/core/domain/model/kernel"
	"agromarket/internal/core/domain/model/user"
	"agromarket/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	contextKeyUserID = "auth.userID"
	contextKeyRole   = "auth.role"
)

// requireAuth rejects requests without a valid bearer token and stores the
// caller's identity on the request context.
func requireAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			claims, err := bearerClaims(ctx, secret)
			if err != nil {
				return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
			}

			userID, role, err := identityFromClaims(claims)
			if err != nil {
				return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
			}

			ctx.Set(contextKeyUserID, userID)
			ctx.Set(contextKeyRole, role)
			return next(ctx)
		}
	}
}

// optionalAuth stores the caller's identity when a valid bearer token is
// present and lets the request pass anonymously otherwise.
func optionalAuth(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			if claims, err := bearerClaims(ctx, secret); err == nil {
				if userID, role, idErr := identityFromClaims(claims); idErr == nil {
					ctx.Set(contextKeyUserID, userID)
					ctx.Set(contextKeyRole, role)
				}
			}
			return next(ctx)
		}
	}
}

// requireRole rejects authenticated callers whose role is not in the allowed
// set. It must run after requireAuth.
func requireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			role, ok := ctx.Get(contextKeyRole).(user.Role)
			if !ok {
				return respondError(ctx, errs.NewNotAuthenticatedError("missing or invalid token"))
			}

			for _, allowed := range roles {
				if role == allowed {
					return next(ctx)
				}
			}
			return respondError(ctx, errs.NewNotAuthorizedError("insufficient role"))
		}
	}
}

func bearerClaims(ctx echo.Context, secret string) (*auth.Claims, error) {
	header := ctx.Request().Header.Get(echo.HeaderAuthorization)
	token, found := strings.CutPrefix(header, "Bearer ")
	if !found || token == "" {
		return nil, errs.NewNotAuthenticatedError("missing bearer token")
	}
	return auth.ValidateToken(secret, token)
}

func identityFromClaims(claims *auth.Claims) (kernel.UUID, user.Role, error) {
	userID, err := kernel.UUIDFromString(claims.UserID)
	if err != nil {
		return kernel.UUID{}, user.RoleUnknown, err
	}

	role, err := user.ParseRole(claims.Role)
	if err != nil {
		return kernel.UUID{}, user.RoleUnknown, err
	}

	return userID, role, nil
}

func currentUserID(ctx echo.Context) (kernel.UUID, bool) {
	userID, ok := ctx.Get(contextKeyUserID).(kernel.UUID)
	return userID, ok
}

func currentRole(ctx echo.Context) user.Role {
	if role, ok := ctx.Get(contextKeyRole).(user.Role); ok {
		return role
	}
	return user.RoleUnknown
}
