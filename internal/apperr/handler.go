package apperr

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/DjordjeVuckovic/faq-hunter/internal/storage"
	"github.com/labstack/echo/v4"
)

// GlobalErrorHandler maps validation errors to 400 and storage outages to
// 503. Anything else unexpected is a 500.
func GlobalErrorHandler() echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var ve *ValidationError
		if errors.As(err, &ve) {
			_ = c.JSON(http.StatusBadRequest, map[string]string{"error": ve.Message, "title": "validation error"})
			return
		}

		if errors.Is(err, storage.ErrUnavailable) {
			slog.Error("Storage unavailable", "error", err, "uri", c.Request().RequestURI)
			_ = c.JSON(http.StatusServiceUnavailable, map[string]string{"error": "search is temporarily unavailable"})
			return
		}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			msg := fmt.Sprintf("%v", he.Message)
			_ = c.JSON(he.Code, map[string]string{"error": msg})
			return
		}

		slog.Error("Unhandled error", "error", err)
		_ = c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal server error"})
	}
}
