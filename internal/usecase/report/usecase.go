package report

import (
	"context"
	"log"
	"time"

	"sewa-backend/internal/domain/donation"
)

type Usecase struct {
	repo donation.Repository
	now  func() time.Time
}

func NewUsecase(r donation.Repository) *Usecase {
	return &Usecase{repo: r, now: time.Now}
}

// Every report sweeps first so a view never counts a donation that should
// already have aged out. The sweep is best-effort: reports proceed on
// already-swept data if it fails.
func (u *Usecase) sweep(ctx context.Context, now time.Time) {
	if _, err := u.repo.MarkExpired(ctx, now); err != nil {
		log.Printf("sweep expired donations: %v", err)
	}
}

// NgoOverview totals the donations an NGO accepted inside the period
// window.
func (u *Usecase) NgoOverview(ctx context.Context, ngoID, period string) (*Overview, error) {
	now := u.now().UTC()
	u.sweep(ctx, now)
	ds, err := u.repo.ListTakenByNgoID(ctx, ngoID, periodStart(period, now))
	if err != nil {
		return nil, err
	}
	return &Overview{
		Period:         period,
		TotalDonations: len(ds),
		TotalServings:  sumServings(ds),
	}, nil
}

// NgoDonations ranks the NGO's top donor hotels for the window and adds
// the acceptance-month trend over the same set.
func (u *Usecase) NgoDonations(ctx context.Context, ngoID, period string) (*DonationsReport, error) {
	now := u.now().UTC()
	u.sweep(ctx, now)
	ds, err := u.repo.ListTakenByNgoID(ctx, ngoID, periodStart(period, now))
	if err != nil {
		return nil, err
	}
	return &DonationsReport{
		Period:    period,
		TopDonors: PartnerBreakdown(ds, ByHotel, 5),
		Monthly:   MonthlyTrend(ds, ByAcceptedAt, ShapeSparse),
	}, nil
}

// NgoImpact breaks the NGO's accepted servings down by pickup area.
func (u *Usecase) NgoImpact(ctx context.Context, ngoID, period string) (*ImpactReport, error) {
	now := u.now().UTC()
	u.sweep(ctx, now)
	ds, err := u.repo.ListTakenByNgoID(ctx, ngoID, periodStart(period, now))
	if err != nil {
		return nil, err
	}
	return &ImpactReport{
		Period:             period,
		DistributionByArea: AreaDistribution(ds),
	}, nil
}

// HotelReport is the supplier-side reporting view over every claimed
// donation the hotel made, all time.
func (u *Usecase) HotelReport(ctx context.Context, hotelID string) (*HotelReport, error) {
	now := u.now().UTC()
	u.sweep(ctx, now)
	ds, err := u.repo.ListTakenByHotelID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	total := len(ds)
	servings := sumServings(ds)
	avg := 0
	if total > 0 {
		avg = (servings + total/2) / total
	}
	return &HotelReport{
		TotalDonations:  total,
		TotalServings:   servings,
		PeopleFed:       servings,
		NgosServed:      DistinctPartnerCount(ds, ByNgo),
		AvgDonationSize: avg,
		Monthly:         MonthlyTrend(ds, ByCreatedAt, ShapeSparse),
		FoodTypes:       CategoryBreakdown(ds),
		Ngos:            PartnerBreakdown(ds, ByNgo, 0),
	}, nil
}

// HotelDashboard keeps the legacy dashboard shape: fixed 12-slot monthly
// counts and the five most recent claimed donations.
func (u *Usecase) HotelDashboard(ctx context.Context, hotelID string) (*HotelDashboard, error) {
	now := u.now().UTC()
	u.sweep(ctx, now)
	ds, err := u.repo.ListTakenByHotelID(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	monthly := MonthlyTrend(ds, ByCreatedAt, ShapeFixed12)
	counts := make([]int, len(monthly))
	for i, b := range monthly {
		counts[i] = b.Donations
	}

	// ds is already newest-created first from the repository.
	recent := make([]RecentDonation, 0, 5)
	for _, d := range ds {
		if len(recent) == 5 {
			break
		}
		ngo := d.AcceptedByNgo
		if ngo == "" {
			ngo = "N/A"
		}
		recent = append(recent, RecentDonation{
			DonationID: d.DonationID,
			Ngo:        ngo,
			Servings:   d.Servings,
			Status:     string(d.Status),
			Date:       d.CreatedAt,
		})
	}

	servings := sumServings(ds)
	return &HotelDashboard{
		TotalDonations:   len(ds),
		TotalServings:    servings,
		PeopleFed:        servings,
		NgosServed:       DistinctPartnerCount(ds, ByNgo),
		MonthlyDonations: counts,
		RecentDonations:  recent,
	}, nil
}
