package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository"
)

var (
	ErrNewsletterEmailExists = repository.ErrNewsletterEmailExists
	ErrNewsletterNotFound    = repository.ErrNewsletterNotFound
)

type NewsletterRepository interface {
	Create(ctx context.Context, email string) (domain.Newsletter, error)
	FindAll(ctx context.Context, query domain.PageQuery) ([]domain.Newsletter, int64, error)
	Delete(ctx context.Context, id uint) error
}

type NewsletterService struct {
	repo NewsletterRepository
}

func NewNewsletterService(repo NewsletterRepository) *NewsletterService {
	return &NewsletterService{repo: repo}
}

func (s *NewsletterService) Subscribe(ctx context.Context, email string) (domain.Newsletter, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	subscription, err := s.repo.Create(ctx, email)
	if err != nil {
		return domain.Newsletter{}, fmt.Errorf("s.repo.Create -> %w", err)
	}

	return subscription, nil
}

func (s *NewsletterService) ListSubscriptions(ctx context.Context, query domain.PageQuery) (domain.Page[domain.Newsletter], error) {
	query = query.Normalize()

	subscriptions, total, err := s.repo.FindAll(ctx, query)
	if err != nil {
		return domain.Page[domain.Newsletter]{}, fmt.Errorf("s.repo.FindAll -> %w", err)
	}

	return domain.NewPage(subscriptions, query, total), nil
}

func (s *NewsletterService) Unsubscribe(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("s.repo.Delete -> %w", err)
	}

	return nil
}
