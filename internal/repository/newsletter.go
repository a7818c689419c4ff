package repository

import (
	"context"
	"fmt"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository/dao"
)

var (
	ErrNewsletterEmailExists = dao.ErrNewsletterEmailExists
	ErrNewsletterNotFound    = dao.ErrNewsletterNotFound
)

type NewsletterDAO interface {
	Insert(ctx context.Context, sub dao.Newsletter) (dao.Newsletter, error)
	List(ctx context.Context, limit, offset int) ([]dao.Newsletter, int64, error)
	Delete(ctx context.Context, id uint) error
}

type NewsletterRepository struct {
	dao NewsletterDAO
}

func NewNewsletterRepository(dao NewsletterDAO) *NewsletterRepository {
	return &NewsletterRepository{
		dao: dao,
	}
}

func (r *NewsletterRepository) Create(ctx context.Context, email string) (domain.Newsletter, error) {
	created, err := r.dao.Insert(ctx, dao.Newsletter{Email: email})
	if err != nil {
		return domain.Newsletter{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return newsletterDaoToDomain(created), nil
}

func (r *NewsletterRepository) FindAll(ctx context.Context, query domain.PageQuery) ([]domain.Newsletter, int64, error) {
	rows, total, err := r.dao.List(ctx, query.PageSize, query.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.List -> %w", err)
	}

	subs := make([]domain.Newsletter, 0, len(rows))
	for _, row := range rows {
		subs = append(subs, newsletterDaoToDomain(row))
	}

	return subs, total, nil
}

func (r *NewsletterRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func newsletterDaoToDomain(n dao.Newsletter) domain.Newsletter {
	return domain.Newsletter{
		ID:        n.ID,
		Email:     n.Email,
		CreatedAt: n.CreatedAt,
	}
}
