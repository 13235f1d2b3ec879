package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	donationUC "sewa-backend/internal/usecase/donation"
)

type DonationHandler struct{ uc *donationUC.Usecase }

func NewDonationHandler(uc *donationUC.Usecase) *DonationHandler { return &DonationHandler{uc: uc} }

type createDonationReq struct {
	HotelID       string   `json:"hotel_id"       validate:"required,hex32"`
	HotelName     string   `json:"hotel_name"     validate:"required"`
	FoodType      string   `json:"food_type"      validate:"required"`
	Quantity      int      `json:"quantity"       validate:"required,gt=0"`
	Servings      int      `json:"servings"       validate:"required,gt=0"`
	Description   string   `json:"description"`
	PreparedAt    string   `json:"prepared_at"    validate:"required,rfc3339"`
	ExpiresAt     string   `json:"expires_at"     validate:"omitempty,rfc3339"`
	PickupAddress string   `json:"pickup_address" validate:"required"`
	Images        []string `json:"images"         validate:"omitempty,max=4,dive,required"`
}

func (h *DonationHandler) CreateDonation(c echo.Context) error {
	var req createDonationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}

	// Tags above guarantee these parse.
	preparedAt, _ := time.Parse(time.RFC3339, req.PreparedAt)
	var expiresAt time.Time
	if req.ExpiresAt != "" {
		expiresAt, _ = time.Parse(time.RFC3339, req.ExpiresAt)
	}

	dto, err := h.uc.Create(c.Request().Context(), donationUC.CreateDonationInput{
		HotelID:       req.HotelID,
		HotelName:     req.HotelName,
		FoodType:      req.FoodType,
		Quantity:      req.Quantity,
		Servings:      req.Servings,
		Description:   req.Description,
		PreparedAt:    preparedAt,
		ExpiresAt:     expiresAt,
		PickupAddress: req.PickupAddress,
		Images:        req.Images,
	})
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusCreated, dto)
}

func (h *DonationHandler) GetDonation(c echo.Context) error {
	dto, err := h.uc.Get(c.Request().Context(), c.Param("donation_id"))
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

// ListAvailable returns claimable donations; ngo_id filters out ones that
// NGO already rejected.
func (h *DonationHandler) ListAvailable(c echo.Context) error {
	ngoID := c.QueryParam("ngo_id")
	if ngoID != "" && !reHex32.MatchString(ngoID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid ngo_id"})
	}
	ds, err := h.uc.ListAvailable(c.Request().Context(), ngoID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"donations": ds})
}

func (h *DonationHandler) HotelHistory(c echo.Context) error {
	hotelID := c.Param("hotel_id")
	if !reHex32.MatchString(hotelID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid hotel_id"})
	}
	ds, err := h.uc.HotelHistory(c.Request().Context(), hotelID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"donations": ds})
}

func (h *DonationHandler) NgoHistory(c echo.Context) error {
	ngoID := c.Param("ngo_id")
	if !reHex32.MatchString(ngoID) {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid ngo_id"})
	}
	ds, err := h.uc.NgoHistory(c.Request().Context(), ngoID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]any{"donations": ds})
}

type acceptDonationReq struct {
	NgoID   string `json:"ngo_id"   validate:"required,hex32"`
	NgoName string `json:"ngo_name" validate:"required"`
}

func (h *DonationHandler) AcceptDonation(c echo.Context) error {
	var req acceptDonationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	dto, err := h.uc.Claim(c.Request().Context(), c.Param("donation_id"), req.NgoID, req.NgoName)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, dto)
}

type rejectDonationReq struct {
	NgoID string `json:"ngo_id" validate:"required,hex32"`
}

func (h *DonationHandler) RejectDonation(c echo.Context) error {
	var req rejectDonationReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	if err := h.uc.Reject(c.Request().Context(), c.Param("donation_id"), req.NgoID); err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "donation rejected"})
}
