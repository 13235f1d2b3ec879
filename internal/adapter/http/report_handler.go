package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	reportUC "sewa-backend/internal/usecase/report"
)

type ReportHandler struct{ uc *reportUC.Usecase }

func NewReportHandler(uc *reportUC.Usecase) *ReportHandler { return &ReportHandler{uc: uc} }

// period query param: week|month|quarter|year, anything else means all time.
func period(c echo.Context) string {
	if p := c.QueryParam("period"); p != "" {
		return p
	}
	return "month"
}

func (h *ReportHandler) NgoOverview(c echo.Context) error {
	ngoID := c.Param("ngo_id")
	if !reHex32.MatchString(ngoID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid ngo_id"})
	}
	out, err := h.uc.NgoOverview(c.Request().Context(), ngoID, period(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) NgoDonations(c echo.Context) error {
	ngoID := c.Param("ngo_id")
	if !reHex32.MatchString(ngoID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid ngo_id"})
	}
	out, err := h.uc.NgoDonations(c.Request().Context(), ngoID, period(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) NgoImpact(c echo.Context) error {
	ngoID := c.Param("ngo_id")
	if !reHex32.MatchString(ngoID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid ngo_id"})
	}
	out, err := h.uc.NgoImpact(c.Request().Context(), ngoID, period(c))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) HotelReport(c echo.Context) error {
	hotelID := c.Param("hotel_id")
	if !reHex32.MatchString(hotelID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid hotel_id"})
	}
	out, err := h.uc.HotelReport(c.Request().Context(), hotelID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReportHandler) HotelDashboard(c echo.Context) error {
	hotelID := c.Param("hotel_id")
	if !reHex32.MatchString(hotelID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid hotel_id"})
	}
	out, err := h.uc.HotelDashboard(c.Request().Context(), hotelID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
