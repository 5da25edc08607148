package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "storefront/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds IDs accepted from callers.
const maxRequestIDLength = 64

// RequestIDMiddleware tags every request with an ID and a logger carrying it
type RequestIDMiddleware struct {
	logger *slog.Logger
}

// NewRequestIDMiddleware creates a new Request ID middleware
func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{
		logger: logger,
	}
}

// Process keeps a well-formed caller X-Request-Id and replaces anything else
// with a fresh UUID. The ID ends up on the echo context, the response headers
// and the request context, next to a logger carrying it.
func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
		if !acceptableRequestID(requestID) {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(
			slog.String("request_id", requestID),
			slog.String("surface", surfaceOf(c)),
		)

		ctx := deliverycontext.WithLogger(deliverycontext.WithRequestID(req.Context(), requestID), reqLogger)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// acceptableRequestID allows short IDs made of letters, digits, '-', '_' and '.'.
// Anything else would end up verbatim in logs and response headers.
func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}

	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}

	return true
}

// surfaceOf names the HTTP surface from the first path segment, e.g. "api"
// for /api/v1/feeds. An empty path reports "root".
func surfaceOf(c echo.Context) string {
	path := strings.TrimLeft(c.Request().URL.Path, "/")
	if path == "" {
		return "root"
	}

	segment, _, _ := strings.Cut(path, "/")

	return segment
}
