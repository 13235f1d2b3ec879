package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"sewa-backend/internal/domain/donation"
	donationUC "sewa-backend/internal/usecase/donation"
)

// ---- helpers ----

// jsonError maps core errors to HTTP responses: validation failures carry
// the full field list, claim losses come back as a conflict.
func jsonError(c echo.Context, err error) error {
	var ve *donationUC.ValidationError
	switch {
	case errors.As(err, &ve):
		details := make([]FieldError, 0, len(ve.Fields))
		for _, f := range ve.Fields {
			details = append(details, FieldError{Field: f.Field, Message: f.Message})
		}
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: details,
		})
	case errors.Is(err, donation.ErrNotFound):
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "donation not found"})
	case errors.Is(err, donation.ErrUnavailable):
		return c.JSON(http.StatusConflict, ErrorResponse{Error: "donation not found or already taken/expired"})
	default:
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal error"})
	}
}
