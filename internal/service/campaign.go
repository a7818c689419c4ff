package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository"
)

var (
	ErrCampaignNotFound     = repository.ErrCampaignNotFound
	ErrRootCampaignNotFound = repository.ErrRootCampaignNotFound
)

type CampaignRepository interface {
	Create(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	FindByID(ctx context.Context, id uint) (domain.Campaign, error)
	FindRoot(ctx context.Context) (domain.Campaign, error)
	FindAll(ctx context.Context, status domain.CampaignStatus, query domain.PageQuery) ([]domain.Campaign, int64, error)
	Update(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	SetIsRoot(ctx context.Context, id uint, isRoot bool) error
	Delete(ctx context.Context, id uint) error
	CompleteEnded(ctx context.Context, now time.Time) (int64, error)
}

type CampaignService struct {
	repo CampaignRepository
}

func NewCampaignService(repo CampaignRepository) *CampaignService {
	return &CampaignService{
		repo: repo,
	}
}

func (s *CampaignService) CreateCampaign(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	if campaign.Status == "" {
		campaign.Status = domain.CampaignStatusDraft
	}

	created, err := s.repo.Create(ctx, campaign)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *CampaignService) GetCampaign(ctx context.Context, id uint) (domain.Campaign, error) {
	campaign, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return campaign, nil
}

func (s *CampaignService) GetRootCampaign(ctx context.Context) (domain.Campaign, error) {
	campaign, err := s.repo.FindRoot(ctx)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("s.repo.FindRoot -> %w", err)
	}

	return campaign, nil
}

func (s *CampaignService) ListCampaigns(ctx context.Context, status domain.CampaignStatus, query domain.PageQuery) (domain.Page[domain.Campaign], error) {
	query = query.Normalize()

	campaigns, total, err := s.repo.FindAll(ctx, status, query)
	if err != nil {
		return domain.Page[domain.Campaign]{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return domain.NewPage(campaigns, query, total), nil
}

func (s *CampaignService) UpdateCampaign(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error) {
	if _, err := s.repo.FindByID(ctx, campaign.ID); err != nil {
		return domain.Campaign{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	updated, err := s.repo.Update(ctx, campaign)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

// SetRootCampaign moves the root flag to the given campaign: read the
// current root, clear it when it differs from the target, then set the
// target. The two writes are not one transaction, so a concurrent
// reassignment can leave zero or two roots; known limitation.
func (s *CampaignService) SetRootCampaign(ctx context.Context, id uint) (domain.Campaign, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return domain.Campaign{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	current, err := s.repo.FindRoot(ctx)
	if err != nil && !errors.Is(err, repository.ErrRootCampaignNotFound) {
		return domain.Campaign{}, fmt.Errorf("s.repo.FindRoot -> %w", err)
	}

	if err == nil && current.ID != id && current.IsRoot {
		if err := s.repo.SetIsRoot(ctx, current.ID, false); err != nil {
			return domain.Campaign{}, fmt.Errorf("s.repo.SetIsRoot(clear) -> %w", err)
		}
	}

	if err := s.repo.SetIsRoot(ctx, id, true); err != nil {
		return domain.Campaign{}, fmt.Errorf("s.repo.SetIsRoot(set) -> %w", err)
	}

	campaign, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return campaign, nil
}

func (s *CampaignService) DeleteCampaign(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}

// CompleteEndedCampaigns is invoked by the scheduler.
func (s *CampaignService) CompleteEndedCampaigns(ctx context.Context) (int64, error) {
	n, err := s.repo.CompleteEnded(ctx, time.Now())
	if err != nil {
		return 0, fmt.Errorf("s.repo.CompleteEnded -> %w", err)
	}

	return n, nil
}
