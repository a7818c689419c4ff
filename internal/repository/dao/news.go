package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrNewsNotFound = errors.New("news not found")

type News struct {
	ID uint `gorm:"primaryKey"`

	Title       string `gorm:"not null"`
	Description string
	Date        time.Time `gorm:"not null;index"`
	URL         string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type NewsDAO struct {
	db *gorm.DB
}

func NewNewsDAO(db *gorm.DB) *NewsDAO {
	return &NewsDAO{
		db: db,
	}
}

func (d *NewsDAO) Insert(ctx context.Context, news News) (News, error) {
	result := d.db.WithContext(ctx).Create(&news)
	if result.Error != nil {
		return News{}, result.Error
	}

	return news, nil
}

func (d *NewsDAO) FindByID(ctx context.Context, id uint) (News, error) {
	var news News

	result := d.db.WithContext(ctx).First(&news, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return News{}, ErrNewsNotFound
		}

		return News{}, result.Error
	}

	return news, nil
}

func (d *NewsDAO) List(ctx context.Context, limit, offset int) ([]News, int64, error) {
	var total int64
	if err := d.db.WithContext(ctx).Model(&News{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []News
	result := d.db.WithContext(ctx).
		Order("date DESC").
		Limit(limit).
		Offset(offset).
		Find(&items)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return items, total, nil
}

func (d *NewsDAO) Update(ctx context.Context, news News) (News, error) {
	result := d.db.WithContext(ctx).Model(&News{}).Where("id = ?", news.ID).Updates(map[string]any{
		"title":       news.Title,
		"description": news.Description,
		"date":        news.Date,
		"url":         news.URL,
	})
	if result.Error != nil {
		return News{}, result.Error
	}
	if result.RowsAffected == 0 {
		return News{}, ErrNewsNotFound
	}

	return d.FindByID(ctx, news.ID)
}

func (d *NewsDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&News{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNewsNotFound
	}

	return nil
}
