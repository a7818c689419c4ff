package repository

import (
	"context"
	"fmt"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository/dao"
)

var ErrHowToHelpNotFound = dao.ErrHowToHelpNotFound

type HowToHelpDAO interface {
	Insert(ctx context.Context, entry dao.HowToHelp) (dao.HowToHelp, error)
	FindByID(ctx context.Context, id uint) (dao.HowToHelp, error)
	List(ctx context.Context, limit, offset int) ([]dao.HowToHelp, int64, error)
	Update(ctx context.Context, entry dao.HowToHelp) (dao.HowToHelp, error)
	Delete(ctx context.Context, id uint) error
}

type HowToHelpRepository struct {
	dao HowToHelpDAO
}

func NewHowToHelpRepository(dao HowToHelpDAO) *HowToHelpRepository {
	return &HowToHelpRepository{
		dao: dao,
	}
}

func (r *HowToHelpRepository) Create(ctx context.Context, entry domain.HowToHelp) (domain.HowToHelp, error) {
	created, err := r.dao.Insert(ctx, howToHelpDomainToDao(entry))
	if err != nil {
		return domain.HowToHelp{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return howToHelpDaoToDomain(created), nil
}

func (r *HowToHelpRepository) FindByID(ctx context.Context, id uint) (domain.HowToHelp, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.HowToHelp{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return howToHelpDaoToDomain(found), nil
}

func (r *HowToHelpRepository) FindAll(ctx context.Context, query domain.PageQuery) ([]domain.HowToHelp, int64, error) {
	rows, total, err := r.dao.List(ctx, query.PageSize, query.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.List -> %w", err)
	}

	entries := make([]domain.HowToHelp, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, howToHelpDaoToDomain(row))
	}

	return entries, total, nil
}

func (r *HowToHelpRepository) Update(ctx context.Context, entry domain.HowToHelp) (domain.HowToHelp, error) {
	updated, err := r.dao.Update(ctx, howToHelpDomainToDao(entry))
	if err != nil {
		return domain.HowToHelp{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return howToHelpDaoToDomain(updated), nil
}

func (r *HowToHelpRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func howToHelpDomainToDao(h domain.HowToHelp) dao.HowToHelp {
	return dao.HowToHelp{
		ID:          h.ID,
		Title:       h.Title,
		Description: h.Description,
		URL:         h.URL,
	}
}

func howToHelpDaoToDomain(h dao.HowToHelp) domain.HowToHelp {
	return domain.HowToHelp{
		ID:          h.ID,
		Title:       h.Title,
		Description: h.Description,
		URL:         h.URL,
		CreatedAt:   h.CreatedAt,
		UpdatedAt:   h.UpdatedAt,
	}
}
