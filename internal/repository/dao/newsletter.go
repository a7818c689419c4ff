package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrNewsletterEmailExists = errors.New("newsletter email already subscribed")
	ErrNewsletterNotFound    = errors.New("newsletter subscription not found")
)

type Newsletter struct {
	ID uint `gorm:"primaryKey"`

	Email string `gorm:"unique;not null"`

	CreatedAt time.Time `gorm:"not null"`
}

type NewsletterDAO struct {
	db *gorm.DB
}

func NewNewsletterDAO(db *gorm.DB) *NewsletterDAO {
	return &NewsletterDAO{
		db: db,
	}
}

func (d *NewsletterDAO) Insert(ctx context.Context, sub Newsletter) (Newsletter, error) {
	result := d.db.WithContext(ctx).Create(&sub)
	if result.Error != nil {
		if isUniqueViolation(result.Error, "uni_newsletters_email") {
			return Newsletter{}, ErrNewsletterEmailExists
		}

		return Newsletter{}, result.Error
	}

	return sub, nil
}

func (d *NewsletterDAO) List(ctx context.Context, limit, offset int) ([]Newsletter, int64, error) {
	var total int64
	if err := d.db.WithContext(ctx).Model(&Newsletter{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var subs []Newsletter
	result := d.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&subs)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return subs, total, nil
}

func (d *NewsletterDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Newsletter{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNewsletterNotFound
	}

	return nil
}
