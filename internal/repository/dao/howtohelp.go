package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrHowToHelpNotFound = errors.New("how-to-help entry not found")

type HowToHelp struct {
	ID uint `gorm:"primaryKey"`

	Title       string `gorm:"not null"`
	Description string
	URL         string

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

func (HowToHelp) TableName() string {
	return "how_to_helps"
}

type HowToHelpDAO struct {
	db *gorm.DB
}

func NewHowToHelpDAO(db *gorm.DB) *HowToHelpDAO {
	return &HowToHelpDAO{
		db: db,
	}
}

func (d *HowToHelpDAO) Insert(ctx context.Context, entry HowToHelp) (HowToHelp, error) {
	result := d.db.WithContext(ctx).Create(&entry)
	if result.Error != nil {
		return HowToHelp{}, result.Error
	}

	return entry, nil
}

func (d *HowToHelpDAO) FindByID(ctx context.Context, id uint) (HowToHelp, error) {
	var entry HowToHelp

	result := d.db.WithContext(ctx).First(&entry, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return HowToHelp{}, ErrHowToHelpNotFound
		}

		return HowToHelp{}, result.Error
	}

	return entry, nil
}

func (d *HowToHelpDAO) List(ctx context.Context, limit, offset int) ([]HowToHelp, int64, error) {
	var total int64
	if err := d.db.WithContext(ctx).Model(&HowToHelp{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var entries []HowToHelp
	result := d.db.WithContext(ctx).
		Order("id").
		Limit(limit).
		Offset(offset).
		Find(&entries)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return entries, total, nil
}

func (d *HowToHelpDAO) Update(ctx context.Context, entry HowToHelp) (HowToHelp, error) {
	result := d.db.WithContext(ctx).Model(&HowToHelp{}).Where("id = ?", entry.ID).Updates(map[string]any{
		"title":       entry.Title,
		"description": entry.Description,
		"url":         entry.URL,
	})
	if result.Error != nil {
		return HowToHelp{}, result.Error
	}
	if result.RowsAffected == 0 {
		return HowToHelp{}, ErrHowToHelpNotFound
	}

	return d.FindByID(ctx, entry.ID)
}

func (d *HowToHelpDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&HowToHelp{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrHowToHelpNotFound
	}

	return nil
}
