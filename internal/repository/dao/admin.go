package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrAdminNotFound = errors.New("admin not found")

type Admin struct {
	ID     uint `gorm:"primaryKey"`
	UserID uint `gorm:"uniqueIndex;not null"`
	User   User `gorm:"foreignKey:UserID"`
	IsRoot bool `gorm:"not null;default:false"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type AdminDAO struct {
	db *gorm.DB
}

func NewAdminDAO(db *gorm.DB) *AdminDAO {
	return &AdminDAO{
		db: db,
	}
}

// Insert creates the user row and the admin row in one transaction.
func (d *AdminDAO) Insert(ctx context.Context, user User, admin Admin) (Admin, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			if isUniqueViolation(err, "uni_users_email") {
				return ErrUserEmailExists
			}

			return err
		}

		admin.UserID = user.ID
		if err := tx.Create(&admin).Error; err != nil {
			return err
		}

		return nil
	})
	if err != nil {
		return Admin{}, err
	}

	admin.User = user

	return admin, nil
}

func (d *AdminDAO) FindByID(ctx context.Context, id uint) (Admin, error) {
	var admin Admin

	result := d.db.WithContext(ctx).Preload("User").First(&admin, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Admin{}, ErrAdminNotFound
		}

		return Admin{}, result.Error
	}

	return admin, nil
}

func (d *AdminDAO) FindByUserID(ctx context.Context, userID uint) (Admin, error) {
	var admin Admin

	result := d.db.WithContext(ctx).Preload("User").First(&admin, "user_id = ?", userID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Admin{}, ErrAdminNotFound
		}

		return Admin{}, result.Error
	}

	return admin, nil
}

func (d *AdminDAO) List(ctx context.Context, limit, offset int) ([]Admin, int64, error) {
	var total int64
	if err := d.db.WithContext(ctx).Model(&Admin{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var admins []Admin
	result := d.db.WithContext(ctx).
		Preload("User").
		Order("admins.id").
		Limit(limit).
		Offset(offset).
		Find(&admins)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return admins, total, nil
}

func (d *AdminDAO) Update(ctx context.Context, admin Admin) (Admin, error) {
	err := d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&User{}).Where("id = ?", admin.UserID).Updates(map[string]any{
			"full_name": admin.User.FullName,
			"email":     admin.User.Email,
		}).Error; err != nil {
			if isUniqueViolation(err, "uni_users_email") {
				return ErrUserEmailExists
			}

			return err
		}

		return tx.Model(&Admin{}).Where("id = ?", admin.ID).Update("is_root", admin.IsRoot).Error
	})
	if err != nil {
		return Admin{}, err
	}

	return d.FindByID(ctx, admin.ID)
}

// Delete removes the admin row and soft-deletes the backing user.
func (d *AdminDAO) Delete(ctx context.Context, id uint) error {
	return d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var admin Admin
		if err := tx.First(&admin, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrAdminNotFound
			}

			return err
		}

		if err := tx.Delete(&Admin{}, id).Error; err != nil {
			return err
		}

		return tx.Delete(&User{}, admin.UserID).Error
	})
}
