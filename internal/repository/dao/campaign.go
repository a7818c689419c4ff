package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrCampaignNotFound     = errors.New("campaign not found")
	ErrRootCampaignNotFound = errors.New("no root campaign set")
)

type Campaign struct {
	ID uint `gorm:"primaryKey"`

	Title         string  `gorm:"not null"`
	Description   string
	TargetAmount  float64 `gorm:"not null"`
	CurrentAmount float64 `gorm:"not null;default:0"`
	StartDate     time.Time
	EndDate       time.Time
	Status        string `gorm:"not null;index"`
	CreatedBy     uint   `gorm:"not null;index"`
	Creator       Admin  `gorm:"foreignKey:CreatedBy"`
	IsRoot        bool   `gorm:"not null;default:false;index"`

	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type CampaignDAO struct {
	db *gorm.DB
}

func NewCampaignDAO(db *gorm.DB) *CampaignDAO {
	return &CampaignDAO{
		db: db,
	}
}

func (d *CampaignDAO) Insert(ctx context.Context, campaign Campaign) (Campaign, error) {
	result := d.db.WithContext(ctx).Create(&campaign)
	if result.Error != nil {
		return Campaign{}, result.Error
	}

	return d.FindByID(ctx, campaign.ID)
}

func (d *CampaignDAO) FindByID(ctx context.Context, id uint) (Campaign, error) {
	var campaign Campaign

	result := d.db.WithContext(ctx).Preload("Creator.User").First(&campaign, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Campaign{}, ErrCampaignNotFound
		}

		return Campaign{}, result.Error
	}

	return campaign, nil
}

// FindRoot returns the campaign currently flagged as root, if any.
func (d *CampaignDAO) FindRoot(ctx context.Context) (Campaign, error) {
	var campaign Campaign

	result := d.db.WithContext(ctx).Preload("Creator.User").First(&campaign, "is_root = ?", true)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Campaign{}, ErrRootCampaignNotFound
		}

		return Campaign{}, result.Error
	}

	return campaign, nil
}

func (d *CampaignDAO) List(ctx context.Context, status string, limit, offset int) ([]Campaign, int64, error) {
	query := d.db.WithContext(ctx).Model(&Campaign{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var campaigns []Campaign
	result := query.
		Preload("Creator.User").
		Order("campaigns.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&campaigns)
	if result.Error != nil {
		return nil, 0, result.Error
	}

	return campaigns, total, nil
}

func (d *CampaignDAO) Update(ctx context.Context, campaign Campaign) (Campaign, error) {
	result := d.db.WithContext(ctx).Model(&Campaign{}).Where("id = ?", campaign.ID).Updates(map[string]any{
		"title":         campaign.Title,
		"description":   campaign.Description,
		"target_amount": campaign.TargetAmount,
		"start_date":    campaign.StartDate,
		"end_date":      campaign.EndDate,
		"status":        campaign.Status,
	})
	if result.Error != nil {
		return Campaign{}, result.Error
	}
	if result.RowsAffected == 0 {
		return Campaign{}, ErrCampaignNotFound
	}

	return d.FindByID(ctx, campaign.ID)
}

// UpdateIsRoot flips the root flag on a single campaign. Callers sequence two
// of these to move the flag; the pair is intentionally not transactional.
func (d *CampaignDAO) UpdateIsRoot(ctx context.Context, id uint, isRoot bool) error {
	result := d.db.WithContext(ctx).Model(&Campaign{}).Where("id = ?", id).Update("is_root", isRoot)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCampaignNotFound
	}

	return nil
}

func (d *CampaignDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Campaign{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCampaignNotFound
	}

	return nil
}

// CompleteEnded marks active campaigns whose end date has passed as completed.
// Driven by the scheduler.
func (d *CampaignDAO) CompleteEnded(ctx context.Context, now time.Time) (int64, error) {
	result := d.db.WithContext(ctx).
		Model(&Campaign{}).
		Where("status = ? AND end_date < ?", "active", now).
		Update("status", "completed")
	if result.Error != nil {
		return 0, result.Error
	}

	return result.RowsAffected, nil
}
