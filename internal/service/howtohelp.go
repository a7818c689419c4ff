package service

import (
	"context"
	"fmt"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository"
)

var ErrHowToHelpNotFound = repository.ErrHowToHelpNotFound

type HowToHelpRepository interface {
	Create(ctx context.Context, entry domain.HowToHelp) (domain.HowToHelp, error)
	FindByID(ctx context.Context, id uint) (domain.HowToHelp, error)
	FindAll(ctx context.Context, query domain.PageQuery) ([]domain.HowToHelp, int64, error)
	Update(ctx context.Context, entry domain.HowToHelp) (domain.HowToHelp, error)
	Delete(ctx context.Context, id uint) error
}

type HowToHelpService struct {
	repo HowToHelpRepository
}

func NewHowToHelpService(repo HowToHelpRepository) *HowToHelpService {
	return &HowToHelpService{repo: repo}
}

func (s *HowToHelpService) CreateEntry(ctx context.Context, entry domain.HowToHelp) (domain.HowToHelp, error) {
	created, err := s.repo.Create(ctx, entry)
	if err != nil {
		return domain.HowToHelp{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *HowToHelpService) GetEntry(ctx context.Context, id uint) (domain.HowToHelp, error) {
	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.HowToHelp{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return entry, nil
}

func (s *HowToHelpService) ListEntries(ctx context.Context, query domain.PageQuery) (domain.Page[domain.HowToHelp], error) {
	query = query.Normalize()

	entries, total, err := s.repo.FindAll(ctx, query)
	if err != nil {
		return domain.Page[domain.HowToHelp]{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return domain.NewPage(entries, query, total), nil
}

func (s *HowToHelpService) UpdateEntry(ctx context.Context, entry domain.HowToHelp) (domain.HowToHelp, error) {
	if _, err := s.repo.FindByID(ctx, entry.ID); err != nil {
		return domain.HowToHelp{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	updated, err := s.repo.Update(ctx, entry)
	if err != nil {
		return domain.HowToHelp{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *HowToHelpService) DeleteEntry(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
