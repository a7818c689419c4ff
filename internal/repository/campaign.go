package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository/dao"
)

var (
	ErrCampaignNotFound     = dao.ErrCampaignNotFound
	ErrRootCampaignNotFound = dao.ErrRootCampaignNotFound
)

type CampaignDAO interface {
	Insert(ctx context.Context, campaign dao.Campaign) (dao.Campaign, error)
	FindByID(ctx context.Context, id uint) (dao.Campaign, error)
	FindRoot(ctx context.Context) (dao.Campaign, error)
	List(ctx context.Context, status string, limit, offset int) ([]dao.Campaign, int64, error)
	Update(ctx context.Context, campaign dao.Campaign) (dao.Campaign, error)
	UpdateIsRoot(ctx context.Context, id uint, isRoot bool) error
	Delete(ctx context.Context, id uint) error
	CompleteEnded(ctx context.Context, now time.Time) (int64, error)
}

type CampaignRepository struct {
	dao CampaignDAO
}

func NewCampaignRepository(dao CampaignDAO) *CampaignRepository {
	return &CampaignRepository{
		dao: dao,
	}
}

func (r *CampaignRepository) Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	created, err := r.dao.Insert(ctx, dao.Campaign{
		Title:        campaign.Title,
		Description:  campaign.Description,
		TargetAmount: campaign.TargetAmount,
		StartDate:    campaign.StartDate,
		EndDate:      campaign.EndDate,
		Status:       string(campaign.Status),
		CreatedBy:    campaign.CreatedBy,
	})
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return campaignDaoToDomain(created), nil
}

func (r *CampaignRepository) FindByID(ctx context.Context, id uint) (domain.Campaign, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return campaignDaoToDomain(found), nil
}

func (r *CampaignRepository) FindRoot(ctx context.Context) (domain.Campaign, error) {
	found, err := r.dao.FindRoot(ctx)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("r.dao.FindRoot -> %w", err)
	}

	return campaignDaoToDomain(found), nil
}

func (r *CampaignRepository) FindAll(ctx context.Context, status domain.CampaignStatus, query domain.PageQuery) ([]domain.Campaign, int64, error) {
	rows, total, err := r.dao.List(ctx, string(status), query.PageSize, query.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.List -> %w", err)
	}

	campaigns := make([]domain.Campaign, 0, len(rows))
	for _, row := range rows {
		campaigns = append(campaigns, campaignDaoToDomain(row))
	}

	return campaigns, total, nil
}

func (r *CampaignRepository) Update(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	updated, err := r.dao.Update(ctx, dao.Campaign{
		ID:           campaign.ID,
		Title:        campaign.Title,
		Description:  campaign.Description,
		TargetAmount: campaign.TargetAmount,
		StartDate:    campaign.StartDate,
		EndDate:      campaign.EndDate,
		Status:       string(campaign.Status),
	})
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return campaignDaoToDomain(updated), nil
}

func (r *CampaignRepository) SetIsRoot(ctx context.Context, id uint, isRoot bool) error {
	if err := r.dao.UpdateIsRoot(ctx, id, isRoot); err != nil {
		return fmt.Errorf("r.dao.UpdateIsRoot -> %w", err)
	}

	return nil
}

func (r *CampaignRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *CampaignRepository) CompleteEnded(ctx context.Context, now time.Time) (int64, error) {
	n, err := r.dao.CompleteEnded(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("r.dao.CompleteEnded -> %w", err)
	}

	return n, nil
}

func campaignDaoToDomain(c dao.Campaign) domain.Campaign {
	return domain.Campaign{
		ID:            c.ID,
		Title:         c.Title,
		Description:   c.Description,
		TargetAmount:  c.TargetAmount,
		CurrentAmount: c.CurrentAmount,
		StartDate:     c.StartDate,
		EndDate:       c.EndDate,
		Status:        domain.CampaignStatus(c.Status),
		CreatedBy:     c.CreatedBy,
		CreatedByName: c.Creator.User.FullName,
		IsRoot:        c.IsRoot,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}
