package donation

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, d *Donation) error
	GetByDonationID(ctx context.Context, donationID string) (*Donation, error)

	// ListAvailable returns available donations, newest first. When
	// excludeNgoID is non-empty, donations that NGO has rejected are
	// filtered out.
	ListAvailable(ctx context.Context, excludeNgoID string) ([]Donation, error)
	// ListByHotelID returns a hotel's donations in every status, newest first.
	ListByHotelID(ctx context.Context, hotelID string) ([]Donation, error)
	// ListTakenByHotelID returns a hotel's claimed donations only.
	ListTakenByHotelID(ctx context.Context, hotelID string) ([]Donation, error)
	// ListTakenByNgoID returns donations claimed by an NGO, most recently
	// accepted first. The zero time for `since` means no lower bound.
	ListTakenByNgoID(ctx context.Context, ngoID string, since time.Time) ([]Donation, error)

	// Claim performs the single atomic conditional update
	// (status = available AND expires_at > now → taken). Zero matched
	// rows is ErrUnavailable, never retried.
	Claim(ctx context.Context, donationID, ngoID, ngoName string, now time.Time) (*Donation, error)

	// AddRejection is an idempotent set-add; rejecting twice is a no-op.
	AddRejection(ctx context.Context, donationID string, ngoID string) error

	// MarkExpired bulk-transitions stale available donations to expired
	// and reports how many rows it touched. Idempotent for a fixed now.
	MarkExpired(ctx context.Context, now time.Time) (int64, error)
}
