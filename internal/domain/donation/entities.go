package donation

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNotFound = errors.New("donation not found")
	// ErrUnavailable is the claim-lost signal: the donation never existed,
	// was already taken, or expired out from under the caller. The three
	// cases are deliberately indistinguishable and never worth retrying.
	ErrUnavailable = errors.New("donation no longer available")
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusTaken     Status = "taken"
	StatusExpired   Status = "expired"
)

// Known food type values (free text is also accepted; anything unknown
// falls into the "Other" reporting bucket and the shortest shelf life).
const (
	FoodTypeVegan  = "vegan"
	FoodTypeVeg    = "veg"
	FoodTypeNonVeg = "non-veg"
)

// MaxImages caps the image references carried per donation.
const MaxImages = 4

// ShelfLife returns the default shelf life used to derive an expiry
// timestamp when the supplier does not provide one.
func ShelfLife(foodType string) time.Duration {
	switch foodType {
	case FoodTypeVegan:
		return 24 * time.Hour
	case FoodTypeVeg:
		return 12 * time.Hour
	default:
		return 6 * time.Hour
	}
}

type Donation struct {
	ID            uint64    `gorm:"primaryKey;column:id" json:"-"`
	DonationID    string    `gorm:"size:32;uniqueIndex:ux_donations_donation_id" json:"donation_id"`
	HotelID       string    `gorm:"size:32;index:idx_donations_hotel" json:"hotel_id"`
	HotelName     string    `gorm:"size:120" json:"hotel_name"`
	FoodType      string    `gorm:"size:40" json:"food_type"`
	Quantity      int       `json:"quantity"`
	Servings      int       `json:"servings"`
	Description   string    `gorm:"type:text" json:"description,omitempty"`
	PreparedAt    time.Time `json:"prepared_at"`
	ExpiresAt     time.Time `gorm:"index:idx_donations_status_expiry,priority:2" json:"expires_at"`
	PickupAddress string    `gorm:"size:255" json:"pickup_address"`
	Images        []string  `gorm:"serializer:json;type:text" json:"images"`

	Status Status `gorm:"type:enum('available','taken','expired');default:'available';index:idx_donations_status_expiry,priority:1" json:"status"`

	// Set only by a successful claim; a taken donation never reverts.
	AcceptedAt      *time.Time `json:"accepted_at,omitempty"`
	AcceptedByNgoID string     `gorm:"size:32;index:idx_donations_ngo" json:"accepted_by_ngo_id,omitempty"`
	AcceptedByNgo   string     `gorm:"size:120" json:"accepted_by_ngo,omitempty"`

	CreatedAt time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime" json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Donation) TableName() string { return "donations" }

// Rejection records that an NGO declined a donation. Advisory only: it
// hides the donation from that NGO's availability listing and never
// touches the donation's status. The composite unique index gives the
// set-add its idempotency.
type Rejection struct {
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement"`
	// FK to donations.id (numeric)
	DonationID uint64    `gorm:"column:donation_id;not null;uniqueIndex:ux_rejections_donation_ngo"`
	NgoID      string    `gorm:"column:ngo_id;type:char(32);not null;uniqueIndex:ux_rejections_donation_ngo"`
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (Rejection) TableName() string { return "donation_rejections" }
