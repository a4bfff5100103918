package middleware

import (
	"log/slog"

	"github.com/labstack/echo/v4"
)

const (
	HeaderUserID   = "X-User-ID"
	HeaderGroupIDs = "X-Group-IDs"
)

// ProxyIdentity drops the identity headers unless the direct peer is one of
// the trusted proxies. With an empty list every request searches anonymously.
func ProxyIdentity(trusted *NetList) echo.MiddlewareFunc {
	direct := echo.ExtractIPDirect()
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Request().Header
			if h.Get(HeaderUserID) == "" && h.Get(HeaderGroupIDs) == "" {
				return next(c)
			}

			peer := direct(c.Request())
			if !trusted.Contains(peer) {
				slog.Debug("Dropping identity headers from untrusted peer", "peer", peer)
				h.Del(HeaderUserID)
				h.Del(HeaderGroupIDs)
			}
			return next(c)
		}
	}
}
