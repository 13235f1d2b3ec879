package donation

import (
	"context"
	"log"
	"time"

	"sewa-backend/internal/domain/donation"
	"sewa-backend/pkg/id"
)

type Usecase struct {
	repo donation.Repository
	now  func() time.Time
}

func NewUsecase(r donation.Repository) *Usecase {
	return &Usecase{repo: r, now: time.Now}
}

// SweepExpired transitions every stale available donation to expired and
// reports how many rows moved. Running it twice with the same clock is a
// no-op the second time.
func (u *Usecase) SweepExpired(ctx context.Context) (int64, error) {
	return u.repo.MarkExpired(ctx, u.now().UTC())
}

// sweep is the best-effort variant run before state-sensitive reads and
// the claim path. A failed sweep is logged and the primary operation
// proceeds; the next entry point will catch anything missed.
func (u *Usecase) sweep(ctx context.Context, now time.Time) {
	if _, err := u.repo.MarkExpired(ctx, now); err != nil {
		log.Printf("sweep expired donations: %v", err)
	}
}

func (u *Usecase) Create(ctx context.Context, in CreateDonationInput) (*DonationDTO, error) {
	now := u.now().UTC()

	expiresAt := in.ExpiresAt
	if expiresAt.IsZero() && !in.PreparedAt.IsZero() {
		expiresAt = in.PreparedAt.Add(donation.ShelfLife(in.FoodType))
	}

	ve := &ValidationError{}
	if in.HotelID == "" {
		ve.add("hotel_id", "is required")
	}
	if in.HotelName == "" {
		ve.add("hotel_name", "is required")
	}
	if in.FoodType == "" {
		ve.add("food_type", "is required")
	}
	if in.Quantity <= 0 {
		ve.add("quantity", "must be a positive integer")
	}
	if in.Servings <= 0 {
		ve.add("servings", "must be a positive integer")
	}
	if in.PickupAddress == "" {
		ve.add("pickup_address", "is required")
	}
	if len(in.Images) > donation.MaxImages {
		ve.add("images", "maximum 4 images allowed")
	}
	if in.PreparedAt.IsZero() {
		ve.add("prepared_at", "is required")
	} else {
		if in.PreparedAt.After(now) {
			ve.add("prepared_at", "must not be in the future")
		}
		if !expiresAt.After(in.PreparedAt) {
			ve.add("expires_at", "must be after preparation time")
		} else if !expiresAt.After(now) {
			ve.add("expires_at", "food has already expired")
		}
	}
	if len(ve.Fields) > 0 {
		return nil, ve
	}

	d := &donation.Donation{
		DonationID:    id.NewID32(),
		HotelID:       in.HotelID,
		HotelName:     in.HotelName,
		FoodType:      in.FoodType,
		Quantity:      in.Quantity,
		Servings:      in.Servings,
		Description:   in.Description,
		PreparedAt:    in.PreparedAt.UTC(),
		ExpiresAt:     expiresAt.UTC(),
		PickupAddress: in.PickupAddress,
		Images:        in.Images,
		Status:        donation.StatusAvailable,
	}
	if err := u.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return toDTO(d), nil
}

func (u *Usecase) Get(ctx context.Context, donationID string) (*DonationDTO, error) {
	d, err := u.repo.GetByDonationID(ctx, donationID)
	if err != nil {
		return nil, err
	}
	return toDTO(d), nil
}

// ListAvailable sweeps, then lists available donations; donations the
// given NGO has rejected are filtered out when ngoID is non-empty.
func (u *Usecase) ListAvailable(ctx context.Context, ngoID string) ([]donation.Donation, error) {
	u.sweep(ctx, u.now().UTC())
	return u.repo.ListAvailable(ctx, ngoID)
}

// HotelHistory sweeps, then returns a hotel's donations in every status.
func (u *Usecase) HotelHistory(ctx context.Context, hotelID string) ([]donation.Donation, error) {
	u.sweep(ctx, u.now().UTC())
	return u.repo.ListByHotelID(ctx, hotelID)
}

// NgoHistory sweeps, then returns the donations an NGO has claimed.
func (u *Usecase) NgoHistory(ctx context.Context, ngoID string) ([]donation.Donation, error) {
	u.sweep(ctx, u.now().UTC())
	return u.repo.ListTakenByNgoID(ctx, ngoID, time.Time{})
}

// Claim attempts the available→taken transition. Exactly one concurrent
// caller wins; everyone else gets donation.ErrUnavailable and should pick
// a different donation rather than retry this one.
func (u *Usecase) Claim(ctx context.Context, donationID, ngoID, ngoName string) (*DonationDTO, error) {
	now := u.now().UTC()
	u.sweep(ctx, now)
	d, err := u.repo.Claim(ctx, donationID, ngoID, ngoName, now)
	if err != nil {
		return nil, err
	}
	return toDTO(d), nil
}

// Reject hides the donation from the NGO's future availability listings.
// Idempotent; the donation's status is never consulted or changed.
func (u *Usecase) Reject(ctx context.Context, donationID, ngoID string) error {
	return u.repo.AddRejection(ctx, donationID, ngoID)
}

func toDTO(d *donation.Donation) *DonationDTO {
	return &DonationDTO{
		DonationID:    d.DonationID,
		HotelID:       d.HotelID,
		HotelName:     d.HotelName,
		FoodType:      d.FoodType,
		Quantity:      d.Quantity,
		Servings:      d.Servings,
		Description:   d.Description,
		PreparedAt:    d.PreparedAt,
		ExpiresAt:     d.ExpiresAt,
		PickupAddress: d.PickupAddress,
		Images:        d.Images,
		Status:        string(d.Status),
		AcceptedAt:    d.AcceptedAt,
		AcceptedByNgo: d.AcceptedByNgo,
		NgoID:         d.AcceptedByNgoID,
		CreatedAt:     d.CreatedAt,
	}
}
