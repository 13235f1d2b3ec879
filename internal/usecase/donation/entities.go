package donation

import (
	"strings"
	"time"
)

type CreateDonationInput struct {
	HotelID       string
	HotelName     string
	FoodType      string
	Quantity      int
	Servings      int
	Description   string
	PreparedAt    time.Time
	// Zero value means "derive from prepared_at + shelf life".
	ExpiresAt     time.Time
	PickupAddress string
	Images        []string
}

type DonationDTO struct {
	DonationID    string     `json:"donation_id"`
	HotelID       string     `json:"hotel_id"`
	HotelName     string     `json:"hotel_name"`
	FoodType      string     `json:"food_type"`
	Quantity      int        `json:"quantity"`
	Servings      int        `json:"servings"`
	Description   string     `json:"description,omitempty"`
	PreparedAt    time.Time  `json:"prepared_at"`
	ExpiresAt     time.Time  `json:"expires_at"`
	PickupAddress string     `json:"pickup_address"`
	Images        []string   `json:"images"`
	Status        string     `json:"status"`
	AcceptedAt    *time.Time `json:"accepted_at,omitempty"`
	AcceptedByNgo string     `json:"accepted_by_ngo,omitempty"`
	NgoID         string     `json:"accepted_by_ngo_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries every violated field, not just the first.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		names = append(names, f.Field)
	}
	return "validation failed: " + strings.Join(names, ", ")
}

func (e *ValidationError) add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}
