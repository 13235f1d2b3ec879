package donationmock

import (
	"context"
	"errors"
	"testing"
	"time"

	domain "sewa-backend/internal/domain/donation"
)

// compile-time check: the mock satisfies the repository contract
var _ domain.Repository = (*Repo)(nil)

func TestDefaults(t *testing.T) {
	m := &Repo{}
	ctx := context.Background()

	if err := m.Create(ctx, &domain.Donation{}); err != nil {
		t.Fatalf("Create default: %v", err)
	}
	if _, err := m.GetByDonationID(ctx, "x"); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("GetByDonationID default = %v, want ErrNotFound", err)
	}
	if _, err := m.Claim(ctx, "x", "n", "NGO", time.Now()); !errors.Is(err, domain.ErrUnavailable) {
		t.Fatalf("Claim default = %v, want ErrUnavailable", err)
	}
	if n, err := m.MarkExpired(ctx, time.Now()); n != 0 || err != nil {
		t.Fatalf("MarkExpired default = (%d, %v)", n, err)
	}
	if ds, err := m.ListAvailable(ctx, ""); ds != nil || err != nil {
		t.Fatalf("ListAvailable default = (%v, %v)", ds, err)
	}
}

func TestDelegation(t *testing.T) {
	ctx := context.Background()
	wantErr := errors.New("boom")

	var gotNgo string
	m := &Repo{
		MarkExpiredFn: func(ctx context.Context, now time.Time) (int64, error) {
			return 3, nil
		},
		AddRejectionFn: func(ctx context.Context, donationID, ngoID string) error {
			gotNgo = ngoID
			return wantErr
		},
	}

	if n, err := m.MarkExpired(ctx, time.Now()); n != 3 || err != nil {
		t.Fatalf("MarkExpired = (%d, %v), want (3, nil)", n, err)
	}
	if err := m.AddRejection(ctx, "d1", "ngo1"); !errors.Is(err, wantErr) {
		t.Fatalf("AddRejection err = %v", err)
	}
	if gotNgo != "ngo1" {
		t.Fatalf("AddRejection ngo = %q", gotNgo)
	}
}
