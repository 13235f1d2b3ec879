package donationmock

import (
	"context"
	"time"

	domain "sewa-backend/internal/domain/donation"
)

// Repo is a function-backed mock that satisfies domain.Repository.
// Unset methods fall back to benign defaults so tests only wire what
// they assert on.
type Repo struct {
	CreateFn              func(ctx context.Context, d *domain.Donation) error
	GetByDonationIDFn     func(ctx context.Context, donationID string) (*domain.Donation, error)
	ListAvailableFn       func(ctx context.Context, excludeNgoID string) ([]domain.Donation, error)
	ListByHotelIDFn       func(ctx context.Context, hotelID string) ([]domain.Donation, error)
	ListTakenByHotelIDFn  func(ctx context.Context, hotelID string) ([]domain.Donation, error)
	ListTakenByNgoIDFn    func(ctx context.Context, ngoID string, since time.Time) ([]domain.Donation, error)
	ClaimFn               func(ctx context.Context, donationID, ngoID, ngoName string, now time.Time) (*domain.Donation, error)
	AddRejectionFn        func(ctx context.Context, donationID string, ngoID string) error
	MarkExpiredFn         func(ctx context.Context, now time.Time) (int64, error)
}

func (m *Repo) Create(ctx context.Context, d *domain.Donation) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, d)
	}
	return nil
}

func (m *Repo) GetByDonationID(ctx context.Context, donationID string) (*domain.Donation, error) {
	if m.GetByDonationIDFn != nil {
		return m.GetByDonationIDFn(ctx, donationID)
	}
	return nil, domain.ErrNotFound
}

func (m *Repo) ListAvailable(ctx context.Context, excludeNgoID string) ([]domain.Donation, error) {
	if m.ListAvailableFn != nil {
		return m.ListAvailableFn(ctx, excludeNgoID)
	}
	return nil, nil
}

func (m *Repo) ListByHotelID(ctx context.Context, hotelID string) ([]domain.Donation, error) {
	if m.ListByHotelIDFn != nil {
		return m.ListByHotelIDFn(ctx, hotelID)
	}
	return nil, nil
}

func (m *Repo) ListTakenByHotelID(ctx context.Context, hotelID string) ([]domain.Donation, error) {
	if m.ListTakenByHotelIDFn != nil {
		return m.ListTakenByHotelIDFn(ctx, hotelID)
	}
	return nil, nil
}

func (m *Repo) ListTakenByNgoID(ctx context.Context, ngoID string, since time.Time) ([]domain.Donation, error) {
	if m.ListTakenByNgoIDFn != nil {
		return m.ListTakenByNgoIDFn(ctx, ngoID, since)
	}
	return nil, nil
}

func (m *Repo) Claim(ctx context.Context, donationID, ngoID, ngoName string, now time.Time) (*domain.Donation, error) {
	if m.ClaimFn != nil {
		return m.ClaimFn(ctx, donationID, ngoID, ngoName, now)
	}
	return nil, domain.ErrUnavailable
}

func (m *Repo) AddRejection(ctx context.Context, donationID string, ngoID string) error {
	if m.AddRejectionFn != nil {
		return m.AddRejectionFn(ctx, donationID, ngoID)
	}
	return nil
}

func (m *Repo) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	if m.MarkExpiredFn != nil {
		return m.MarkExpiredFn(ctx, now)
	}
	return 0, nil
}
