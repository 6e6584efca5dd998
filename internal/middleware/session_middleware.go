package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// SessionHeader carries the opaque session id scoping cart and order state.
// This is not authentication; it only keeps independent sessions apart.
const SessionHeader = "X-Session-ID"

const sessionContextKey = "session_id"

// SessionMiddleware returns an Echo middleware that reads the session header
// or issues a fresh id, sets it on the context, and echoes it back so the
// client can reuse it on later requests.
func SessionMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := c.Request().Header.Get(SessionHeader)
			if sid == "" {
				sid = uuid.NewString()
			}
			c.Set(sessionContextKey, sid)
			c.Response().Header().Set(SessionHeader, sid)
			return next(c)
		}
	}
}

// GetSessionID extracts the session id set by SessionMiddleware.
func GetSessionID(c echo.Context) string {
	if sid, ok := c.Get(sessionContextKey).(string); ok {
		return sid
	}
	return ""
}
