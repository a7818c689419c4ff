package repository

import (
	"context"
	"fmt"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository/dao"
)

var ErrNewsNotFound = dao.ErrNewsNotFound

type NewsDAO interface {
	Insert(ctx context.Context, news dao.News) (dao.News, error)
	FindByID(ctx context.Context, id uint) (dao.News, error)
	List(ctx context.Context, limit, offset int) ([]dao.News, int64, error)
	Update(ctx context.Context, news dao.News) (dao.News, error)
	Delete(ctx context.Context, id uint) error
}

type NewsRepository struct {
	dao NewsDAO
}

func NewNewsRepository(dao NewsDAO) *NewsRepository {
	return &NewsRepository{
		dao: dao,
	}
}

func (r *NewsRepository) Create(ctx context.Context, news domain.News) (domain.News, error) {
	created, err := r.dao.Insert(ctx, newsDomainToDao(news))
	if err != nil {
		return domain.News{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return newsDaoToDomain(created), nil
}

func (r *NewsRepository) FindByID(ctx context.Context, id uint) (domain.News, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.News{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return newsDaoToDomain(found), nil
}

func (r *NewsRepository) FindAll(ctx context.Context, query domain.PageQuery) ([]domain.News, int64, error) {
	rows, total, err := r.dao.List(ctx, query.PageSize, query.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("r.dao.List -> %w", err)
	}

	items := make([]domain.News, 0, len(rows))
	for _, row := range rows {
		items = append(items, newsDaoToDomain(row))
	}

	return items, total, nil
}

func (r *NewsRepository) Update(ctx context.Context, news domain.News) (domain.News, error) {
	updated, err := r.dao.Update(ctx, newsDomainToDao(news))
	if err != nil {
		return domain.News{}, fmt.Errorf("r.dao.Update -> %w", err)
	}

	return newsDaoToDomain(updated), nil
}

func (r *NewsRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func newsDomainToDao(n domain.News) dao.News {
	return dao.News{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Date:        n.Date,
		URL:         n.URL,
	}
}

func newsDaoToDomain(n dao.News) domain.News {
	return domain.News{
		ID:          n.ID,
		Title:       n.Title,
		Description: n.Description,
		Date:        n.Date,
		URL:         n.URL,
		CreatedAt:   n.CreatedAt,
		UpdatedAt:   n.UpdatedAt,
	}
}
