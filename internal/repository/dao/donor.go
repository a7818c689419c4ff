package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrDonorNotFound  = errors.New("donor not found")
	ErrDonorCPFExists = errors.New("donor cpf already exists")
)

type Donor struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"uniqueIndex;not null"`
	User   User `gorm:"foreignKey:UserID"`

	BirthDate *time.Time
	Gender    string
	Phone     string
	CPF       string `gorm:"uniqueIndex:uni_donors_cpf"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type DonorDAO struct {
	db *gorm.DB
}

func NewDonorDAO(db *gorm.DB) *DonorDAO {
	return &DonorDAO{
		db: db,
	}
}

// Insert creates the user row and the donor row in one transaction.
func (d *DonorDAO) Insert(ctx context.Context, user User, donor Donor) (Donor, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if isUniqueViolation(err, "uni_users_email") {
				return ErrUserEmailExists
			}

			return err
		}

		donor.UserID = user.ID
		if err := tx.Create(&donor).Error; err != nil {
			if isUniqueViolation(err, "uni_donors_cpf") {
				return ErrDonorCPFExists
			}

			return err
		}

		return nil
	})
	if err != nil {
		return Donor{}, err
	}

	donor.User = user

	return donor, nil
}

func (d *DonorDAO) FindByID(ctx context.Context, id uint) (Donor, error) {
	var donor Donor

	result := d.db.WithContext(ctx).Preload("User").First(&donor, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Donor{}, ErrDonorNotFound
		}

		return Donor{}, result.Error
	}

	return donor, nil
}

func (d *DonorDAO) FindByUserID(ctx context.Context, userID uint) (Donor, error) {
	var donor Donor

	result := d.db.WithContext(ctx).Preload("User").First(&donor, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Donor{}, ErrDonorNotFound
		}

		return Donor{}, result.Error
	}

	return donor, nil
}

func (d *DonorDAO) List(ctx context.Context, limit, offset int) ([]Donor, int64, error) {
	var total int64
	if err := d.db.WithContext(ctx).Model(&Donor{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var donors []Donor
	result := d.db.WithContext(ctx).
		Preload("User").
		Order("donors.id").
		Limit(limit).
		Offset(offset).
		Find(&donors)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return donors, total, nil
}

// TotalDonatedByDonorID sums the donor's donations. Donors without donations
// get 0, not an error.
func (d *DonorDAO) TotalDonatedByDonorID(ctx context.Context, donorID uint) (float64, error) {
	var total float64

	result := d.db.WithContext(ctx).
		Model(&Donation{}).
		Where("donor_id = ?", donorID).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}

	return total, nil
}

type donorTotal struct {
	DonorID uint
	Total   float64
}

// TotalsDonatedByDonorIDs batches the per-donor sums for one listing page.
// Donors absent from the result donated nothing.
func (d *DonorDAO) TotalsDonatedByDonorIDs(ctx context.Context, donorIDs []uint) (map[uint]float64, error) {
	totals := make(map[uint]float64, len(donorIDs))
	if len(donorIDs) == 0 {
		return totals, nil
	}

	var rows []donorTotal
	result := d.db.WithContext(ctx).
		Model(&Donation{}).
		Where("donor_id IN ?", donorIDs).
		Select("donor_id, COALESCE(SUM(amount), 0) AS total").
		Group("donor_id").
		Scan(&rows)
	if result.Error != nil {
		return nil, result.Error
	}

	for _, row := range rows {
		totals[row.DonorID] = row.Total
	}

	return totals, nil
}

func (d *DonorDAO) Update(ctx context.Context, donor Donor) (Donor, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&User{}).Where("id = ?", donor.UserID).Updates(map[string]any{
			"full_name": donor.User.FullName,
			"email":     donor.User.Email,
		}).Error; err != nil {
			if isUniqueViolation(err, "uni_users_email") {
				return ErrUserEmailExists
			}

			return err
		}

		return tx.Model(&Donor{}).Where("id = ?", donor.ID).Updates(map[string]any{
			"birth_date": donor.BirthDate,
			"gender":     donor.Gender,
			"phone":      donor.Phone,
		}).Error
	})
	if err != nil {
		return Donor{}, err
	}

	return d.FindByID(ctx, donor.ID)
}

// Delete removes the donor row and soft-deletes the backing user.
func (d *DonorDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var donor Donor
		if err := tx.First(&donor, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrDonorNotFound
			}

			return err
		}

		if err := tx.Delete(&Donor{}, id).Error; err != nil {
			return err
		}

		return tx.Delete(&User{}, donor.UserID).Error
	})
}
