package report

import (
	"context"
	"testing"
	"time"

	"sewa-backend/internal/domain/donation"
	"sewa-backend/internal/testutil/donationmock"
)

func TestNgoOverview_TotalsWithinWindow(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	swept := false

	uc := NewUsecase(&donationmock.Repo{
		MarkExpiredFn: func(ctx context.Context, at time.Time) (int64, error) {
			swept = true
			return 0, nil
		},
		ListTakenByNgoIDFn: func(ctx context.Context, ngoID string, since time.Time) ([]donation.Donation, error) {
			if !swept {
				t.Fatal("report ran before the expiry sweep")
			}
			if want := now.AddDate(0, -1, 0); !since.Equal(want) {
				t.Fatalf("window start = %v, want %v", since, want)
			}
			return []donation.Donation{
				{Servings: 100}, {Servings: 200}, {Servings: 200},
			}, nil
		},
	})
	uc.now = func() time.Time { return now }

	got, err := uc.NgoOverview(context.Background(), "nnnnnnnnnnnnnnnnnnnnnnnnnnnnnnnn", "month")
	if err != nil {
		t.Fatalf("NgoOverview err: %v", err)
	}
	if got.TotalDonations != 3 || got.TotalServings != 500 {
		t.Fatalf("overview = %+v", got)
	}
}

func TestNgoOverview_UnknownPeriodMeansAllTime(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	uc := NewUsecase(&donationmock.Repo{
		ListTakenByNgoIDFn: func(ctx context.Context, ngoID string, since time.Time) ([]donation.Donation, error) {
			if want := time.Unix(0, 0).UTC(); !since.Equal(want) {
				t.Fatalf("window start = %v, want epoch", since)
			}
			return nil, nil
		},
	})
	uc.now = func() time.Time { return now }

	if _, err := uc.NgoOverview(context.Background(), "n", "whenever"); err != nil {
		t.Fatalf("NgoOverview err: %v", err)
	}
}

func TestNgoDonations_TopFiveDonors(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	accepted := now.Add(-24 * time.Hour)

	var ds []donation.Donation
	for i := 0; i < 7; i++ {
		hotel := string(rune('a' + i))
		n := 7 - i // hotel a donates most
		for j := 0; j < n; j++ {
			d := donation.Donation{
				HotelID:    hotel,
				HotelName:  "Hotel " + hotel,
				Servings:   10,
				Status:     donation.StatusTaken,
				AcceptedAt: &accepted,
				CreatedAt:  accepted,
			}
			ds = append(ds, d)
		}
	}

	uc := NewUsecase(&donationmock.Repo{
		ListTakenByNgoIDFn: func(ctx context.Context, ngoID string, since time.Time) ([]donation.Donation, error) {
			return ds, nil
		},
	})
	uc.now = func() time.Time { return now }

	got, err := uc.NgoDonations(context.Background(), "n", "month")
	if err != nil {
		t.Fatalf("NgoDonations err: %v", err)
	}
	if len(got.TopDonors) != 5 {
		t.Fatalf("top donors = %d, want 5", len(got.TopDonors))
	}
	if got.TopDonors[0].Name != "Hotel a" || got.TopDonors[0].Donations != 7 {
		t.Fatalf("first donor = %+v", got.TopDonors[0])
	}
	if len(got.Monthly) != 1 || got.Monthly[0].Month != "Jun" {
		t.Fatalf("monthly = %+v", got.Monthly)
	}
}

func TestHotelReport_DedupesNgosById(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	accepted := now.Add(-time.Hour)

	mk := func(ngoID string) donation.Donation {
		return donation.Donation{
			HotelID:         "hhhhhhhhhhhhhhhhhhhhhhhhhhhhhhhh",
			HotelName:       "Hotel Annapurna",
			FoodType:        donation.FoodTypeVeg,
			Servings:        30,
			Status:          donation.StatusTaken,
			AcceptedAt:      &accepted,
			AcceptedByNgoID: ngoID,
			AcceptedByNgo:   "Helping Hands", // same display name on purpose
			CreatedAt:       accepted,
		}
	}

	uc := NewUsecase(&donationmock.Repo{
		ListTakenByHotelIDFn: func(ctx context.Context, hotelID string) ([]donation.Donation, error) {
			return []donation.Donation{mk("ngo-1"), mk("ngo-2"), mk("ngo-1")}, nil
		},
	})
	uc.now = func() time.Time { return now }

	got, err := uc.HotelReport(context.Background(), "hhhhhhhhhhhhhhhhhhhhhhhhhhhhhhhh")
	if err != nil {
		t.Fatalf("HotelReport err: %v", err)
	}
	if got.TotalDonations != 3 || got.TotalServings != 90 || got.PeopleFed != 90 {
		t.Fatalf("totals = %+v", got)
	}
	if got.NgosServed != 2 {
		t.Fatalf("NgosServed = %d, want 2 (dedup by id, not name)", got.NgosServed)
	}
	if got.AvgDonationSize != 30 {
		t.Fatalf("AvgDonationSize = %d", got.AvgDonationSize)
	}
}

func TestHotelDashboard_Fixed12AndRecent(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)

	var ds []donation.Donation
	for i := 0; i < 7; i++ {
		created := time.Date(2026, 2, 1+i, 0, 0, 0, 0, time.UTC)
		accepted := created.Add(time.Hour)
		ds = append(ds, donation.Donation{
			DonationID:    time.Date(2026, 2, 1+i, 0, 0, 0, 0, time.UTC).Format("20060102") + "x",
			Servings:      10,
			Status:        donation.StatusTaken,
			AcceptedAt:    &accepted,
			AcceptedByNgo: "NGO",
			CreatedAt:     created,
		})
	}
	// repo contract: newest created first
	for i, j := 0, len(ds)-1; i < j; i, j = i+1, j-1 {
		ds[i], ds[j] = ds[j], ds[i]
	}

	uc := NewUsecase(&donationmock.Repo{
		ListTakenByHotelIDFn: func(ctx context.Context, hotelID string) ([]donation.Donation, error) {
			return ds, nil
		},
	})
	uc.now = func() time.Time { return now }

	got, err := uc.HotelDashboard(context.Background(), "hhhhhhhhhhhhhhhhhhhhhhhhhhhhhhhh")
	if err != nil {
		t.Fatalf("HotelDashboard err: %v", err)
	}
	if len(got.MonthlyDonations) != 12 {
		t.Fatalf("monthly slots = %d", len(got.MonthlyDonations))
	}
	if got.MonthlyDonations[1] != 7 { // all created in February
		t.Fatalf("February slot = %d, want 7", got.MonthlyDonations[1])
	}
	if len(got.RecentDonations) != 5 {
		t.Fatalf("recent = %d, want 5", len(got.RecentDonations))
	}
	if !got.RecentDonations[0].Date.After(got.RecentDonations[4].Date) {
		t.Fatal("recent donations not newest first")
	}
}

func TestNgoImpact_Distribution(t *testing.T) {
	now := time.Date(2026, 6, 15, 10, 0, 0, 0, time.UTC)
	accepted := now.Add(-time.Hour)

	uc := NewUsecase(&donationmock.Repo{
		ListTakenByNgoIDFn: func(ctx context.Context, ngoID string, since time.Time) ([]donation.Donation, error) {
			return []donation.Donation{
				{PickupAddress: "North", Servings: 75, Status: donation.StatusTaken, AcceptedAt: &accepted},
				{PickupAddress: "South", Servings: 25, Status: donation.StatusTaken, AcceptedAt: &accepted},
			}, nil
		},
	})
	uc.now = func() time.Time { return now }

	got, err := uc.NgoImpact(context.Background(), "n", "month")
	if err != nil {
		t.Fatalf("NgoImpact err: %v", err)
	}
	if len(got.DistributionByArea) != 2 {
		t.Fatalf("areas = %d", len(got.DistributionByArea))
	}
	if got.DistributionByArea[0].Percentage != 75.0 {
		t.Fatalf("North percentage = %v", got.DistributionByArea[0].Percentage)
	}
}
