package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrResetTokenNotFound = errors.New("password reset token not found")

type PasswordResetToken struct {
	ID uint `gorm:"primaryKey"`

	UserID    uint   `gorm:"not null;index"`
	Token     string `gorm:"not null;index"`
	ExpiresAt time.Time `gorm:"not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type PasswordResetTokenDAO struct {
	db *gorm.DB
}

func NewPasswordResetTokenDAO(db *gorm.DB) *PasswordResetTokenDAO {
	return &PasswordResetTokenDAO{
		db: db,
	}
}

func (d *PasswordResetTokenDAO) Insert(ctx context.Context, token PasswordResetToken) (PasswordResetToken, error) {
	result := d.db.WithContext(ctx).Create(&token)
	if result.Error != nil {
		return PasswordResetToken{}, result.Error
	}

	return token, nil
}

func (d *PasswordResetTokenDAO) FindByToken(ctx context.Context, token string) (PasswordResetToken, error) {
	var row PasswordResetToken

	result := d.db.WithContext(ctx).First(&row, "token = ?", token)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return PasswordResetToken{}, ErrResetTokenNotFound
		}

		return PasswordResetToken{}, result.Error
	}

	return row, nil
}

// DeleteByUserID drops every token issued to the user.
func (d *PasswordResetTokenDAO) DeleteByUserID(ctx context.Context, userID uint) error {
	return d.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&PasswordResetToken{}).Error
}

// DeleteExpired purges tokens past their expiry. Driven by the scheduler.
func (d *PasswordResetTokenDAO) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	result := d.db.WithContext(ctx).Where("expires_at < ?", now).Delete(&PasswordResetToken{})
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
