package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrDonationNotFound = errors.New("donation not found")

type Donation struct {
	ID uint `gorm:"primaryKey"`

	Amount      float64 `gorm:"not null"`
	Periodicity *string
	CampaignID  *uint `gorm:"index"`
	DonorID     uint  `gorm:"not null;index"`
	Donor       Donor `gorm:"foreignKey:DonorID"`

	Payments []Payment `gorm:"foreignKey:DonationID"`

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

type Payment struct {
	ID uint `gorm:"primaryKey"`

	DonationID uint    `gorm:"not null;index"`
	Method     string  `gorm:"not null;index"`
	Status     string  `gorm:"not null;index"`
	Amount     float64 `gorm:"not null"`
	PaidAt     *time.Time

	CreatedAt time.Time `gorm:"not null;index"`
	UpdatedAt time.Time `gorm:"not null"`
}

type DonationDAO struct {
	db *gorm.DB
}

func NewDonationDAO(db *gorm.DB) *DonationDAO {
	return &DonationDAO{
		db: db,
	}
}

// InsertWithPayment creates the donation and its payment atomically, and
// bumps the campaign total inside the same transaction when the donation
// targets a campaign.
func (d *DonationDAO) InsertWithPayment(ctx context.Context, donation Donation, payment Payment) (Donation, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&donation).Error; err != nil {
			return err
		}

		payment.DonationID = donation.ID
		if err := tx.Create(&payment).Error; err != nil {
			return err
		}

		if donation.CampaignID != nil {
			result := tx.Model(&Campaign{}).
				Where("id = ?", *donation.CampaignID).
				Update("current_amount", gorm.Expr("current_amount + ?", donation.Amount))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return ErrCampaignNotFound
			}
		}

		return nil
	})
	if err != nil {
		return Donation{}, err
	}

	donation.Payments = []Payment{payment}

	return donation, nil
}

func (d *DonationDAO) FindByID(ctx context.Context, id uint) (Donation, error) {
	var donation Donation

	result := d.db.WithContext(ctx).
		Preload("Payments").
		Preload("Donor.User").
		First(&donation, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Donation{}, ErrDonationNotFound
		}

		return Donation{}, result.Error
	}

	return donation, nil
}

func (d *DonationDAO) List(ctx context.Context, limit, offset int) ([]Donation, int64, error) {
	var total int64
	if err := d.db.WithContext(ctx).Model(&Donation{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var donations []Donation
	result := d.db.WithContext(ctx).
		Preload("Payments").
		Preload("Donor.User").
		Order("donations.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&donations)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return donations, total, nil
}

func (d *DonationDAO) ListByDonorID(ctx context.Context, donorID uint, limit, offset int) ([]Donation, int64, error) {
	var total int64
	if err := d.db.WithContext(ctx).Model(&Donation{}).Where("donor_id = ?", donorID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var donations []Donation
	result := d.db.WithContext(ctx).
		Preload("Payments").
		Where("donor_id = ?", donorID).
		Order("donations.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&donations)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return donations, total, nil
}
