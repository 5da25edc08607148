package middleware

import (
	"strings"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// SessionMiddleware forwards the caller's bearer token to the use cases.
// It never rejects a request: a missing or unusable token is reported by the
// feed and list state as UNAUTHENTICATED, and the upstream owns token validity.
type SessionMiddleware struct{}

// NewSessionMiddleware creates the session token middleware
func NewSessionMiddleware() *SessionMiddleware {
	return &SessionMiddleware{}
}

// Attach copies the Authorization bearer token into the request context
func (m *SessionMiddleware) Attach(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if len(header) > len(bearerPrefix) && strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
			ctx := deliverycontext.WithSessionToken(c.Request().Context(), strings.TrimSpace(header[len(bearerPrefix):]))
			c.SetRequest(c.Request().WithContext(ctx))
		}

		return next(c)
	}
}
