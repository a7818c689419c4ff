package service

import (
	"context"
	"fmt"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository"
)

var ErrNewsNotFound = repository.ErrNewsNotFound

type NewsRepository interface {
	Create(ctx context.Context, news domain.News) (domain.News, error)
	FindByID(ctx context.Context, id uint) (domain.News, error)
	FindAll(ctx context.Context, query domain.PageQuery) ([]domain.News, int64, error)
	Update(ctx context.Context, news domain.News) (domain.News, error)
	Delete(ctx context.Context, id uint) error
}

type NewsService struct {
	repo NewsRepository
}

func NewNewsService(repo NewsRepository) *NewsService {
	return &NewsService{repo: repo}
}

func (s *NewsService) CreateNews(ctx context.Context, news domain.News) (domain.News, error) {
	created, err := s.repo.Create(ctx, news)
	if err != nil {
		return domain.News{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return created, nil
}

func (s *NewsService) GetNews(ctx context.Context, id uint) (domain.News, error) {
	news, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return domain.News{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	return news, nil
}

func (s *NewsService) ListNews(ctx context.Context, query domain.PageQuery) (domain.Page[domain.News], error) {
	query = query.Normalize()

	news, total, err := s.repo.FindAll(ctx, query)
	if err != nil {
		return domain.Page[domain.News]{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return domain.NewPage(news, query, total), nil
}

func (s *NewsService) UpdateNews(ctx context.Context, news domain.News) (domain.News, error) {
	if _, err := s.repo.FindByID(ctx, news.ID); err != nil {
		return domain.News{}, fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	updated, err := s.repo.Update(ctx, news)
	if err != nil {
		return domain.News{}, fmt.Errorf("s.repo.Update -> %w", err)
	}

	return updated, nil
}

func (s *NewsService) DeleteNews(ctx context.Context, id uint) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return fmt.Errorf("s.repo.FindByID -> %w", err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
