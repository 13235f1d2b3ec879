package mysql

import (
	"context"
	"errors"
	"time"

	donationDomain "sewa-backend/internal/domain/donation"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DonationRepository struct{ db *gorm.DB }

func NewDonationRepository(db *gorm.DB) *DonationRepository { return &DonationRepository{db: db} }

// Tx runs fn in a db transaction, passing a repo bound to the tx
func (r *DonationRepository) Tx(ctx context.Context, fn func(repo donationDomain.Repository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&DonationRepository{db: tx})
	})
}

func (r *DonationRepository) Create(ctx context.Context, d *donationDomain.Donation) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *DonationRepository) GetByDonationID(ctx context.Context, donationID string) (*donationDomain.Donation, error) {
	var out donationDomain.Donation
	res := r.db.WithContext(ctx).Where("donation_id = ?", donationID).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, donationDomain.ErrNotFound
	}
	return &out, res.Error
}

func (r *DonationRepository) ListAvailable(ctx context.Context, excludeNgoID string) ([]donationDomain.Donation, error) {
	q := r.db.WithContext(ctx).
		Where("status = ?", donationDomain.StatusAvailable)
	if excludeNgoID != "" {
		rejected := r.db.Model(&donationDomain.Rejection{}).
			Select("donation_id").
			Where("ngo_id = ?", excludeNgoID)
		q = q.Where("id NOT IN (?)", rejected)
	}
	var out []donationDomain.Donation
	res := q.Order("created_at DESC, id DESC").Find(&out)
	return out, res.Error
}

func (r *DonationRepository) ListByHotelID(ctx context.Context, hotelID string) ([]donationDomain.Donation, error) {
	var out []donationDomain.Donation
	res := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *DonationRepository) ListTakenByHotelID(ctx context.Context, hotelID string) ([]donationDomain.Donation, error) {
	var out []donationDomain.Donation
	res := r.db.WithContext(ctx).
		Where("hotel_id = ? AND status = ?", hotelID, donationDomain.StatusTaken).
		Order("created_at DESC, id DESC").
		Find(&out)
	return out, res.Error
}

func (r *DonationRepository) ListTakenByNgoID(ctx context.Context, ngoID string, since time.Time) ([]donationDomain.Donation, error) {
	q := r.db.WithContext(ctx).
		Where("accepted_by_ngo_id = ? AND status = ?", ngoID, donationDomain.StatusTaken)
	if !since.IsZero() {
		q = q.Where("accepted_at >= ?", since)
	}
	var out []donationDomain.Donation
	res := q.Order("accepted_at DESC, id DESC").Find(&out)
	return out, res.Error
}

// Claim is the at-most-one-winner transition. The WHERE clause carries
// both the status guard and the expiry guard, so a racing claim or an
// unswept stale record both land on the zero-rows branch.
func (r *DonationRepository) Claim(ctx context.Context, donationID, ngoID, ngoName string, now time.Time) (*donationDomain.Donation, error) {
	res := r.db.WithContext(ctx).
		Model(&donationDomain.Donation{}).
		Where("donation_id = ? AND status = ? AND expires_at > ?",
			donationID, donationDomain.StatusAvailable, now).
		Updates(map[string]any{
			"status":             donationDomain.StatusTaken,
			"accepted_at":        now,
			"accepted_by_ngo_id": ngoID,
			"accepted_by_ngo":    ngoName,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, donationDomain.ErrUnavailable
	}
	return r.GetByDonationID(ctx, donationID)
}

func (r *DonationRepository) AddRejection(ctx context.Context, donationID string, ngoID string) error {
	d, err := r.GetByDonationID(ctx, donationID)
	if err != nil {
		return err
	}
	rej := &donationDomain.Rejection{DonationID: d.ID, NgoID: ngoID}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(rej).Error
}

func (r *DonationRepository) MarkExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Model(&donationDomain.Donation{}).
		Where("status = ? AND expires_at <= ?", donationDomain.StatusAvailable, now).
		Update("status", donationDomain.StatusExpired)
	return res.RowsAffected, res.Error
}
