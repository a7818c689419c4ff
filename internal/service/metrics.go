package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doarbem/donation-api/internal/cache"
	"github.com/doarbem/donation-api/internal/domain"
)

const metricsCacheTTL = 60 * time.Second

var (
	ErrInvalidMetricsWindow = errors.New("metrics window must be 30 or 365 days")
	ErrInvalidMetricsPeriod = errors.New("metrics period must be day, week or month")
	ErrInvalidMetricsRange  = errors.New("metrics range requires from earlier than to")
)

type MetricsRepository interface {
	Summary(ctx context.Context, days int, now time.Time) (domain.DashboardSummary, error)
	DonorDistribution(ctx context.Context, from, to time.Time) (domain.DonorDistribution, error)
	DonationsByPaymentMethod(ctx context.Context, from, to time.Time) ([]domain.PaymentMethodTotal, error)
	RaisedByPeriod(ctx context.Context, from, to time.Time, period string) ([]domain.PeriodBucket, error)
}

// MetricsService serves dashboard aggregates. Results are cached for a short
// TTL since the queries scan the whole donations table.
type MetricsService struct {
	repo  MetricsRepository
	cache *cache.Cache
	now   func() time.Time
}

func NewMetricsService(repo MetricsRepository, c *cache.Cache) *MetricsService {
	return &MetricsService{
		repo:  repo,
		cache: c,
		now:   time.Now,
	}
}

func validateWindow(days int) error {
	if days != 30 && days != 365 {
		return ErrInvalidMetricsWindow
	}

	return nil
}

func validatePeriod(period string) error {
	switch period {
	case "day", "week", "month":
		return nil
	}

	return ErrInvalidMetricsPeriod
}

func validateRange(from, to time.Time) error {
	if from.IsZero() || to.IsZero() || !from.Before(to) {
		return ErrInvalidMetricsRange
	}

	return nil
}

func (s *MetricsService) Summary(ctx context.Context, days int) (domain.DashboardSummary, error) {
	if err := validateWindow(days); err != nil {
		return domain.DashboardSummary{}, err
	}

	key := fmt.Sprintf("metrics:summary:%d", days)

	summary, err := cache.GetOrLoadJSON(s.cache, ctx, key, metricsCacheTTL, func(ctx context.Context) (domain.DashboardSummary, error) {
		return s.repo.Summary(ctx, days, s.now())
	})
	if err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("s.repo.Summary -> %w", err)
	}

	return summary, nil
}

func (s *MetricsService) DonorDistribution(ctx context.Context, from, to time.Time) (domain.DonorDistribution, error) {
	if err := validateRange(from, to); err != nil {
		return domain.DonorDistribution{}, err
	}

	key := fmt.Sprintf("metrics:donors:%d:%d", from.Unix(), to.Unix())

	dist, err := cache.GetOrLoadJSON(s.cache, ctx, key, metricsCacheTTL, func(ctx context.Context) (domain.DonorDistribution, error) {
		return s.repo.DonorDistribution(ctx, from, to)
	})
	if err != nil {
		return domain.DonorDistribution{}, fmt.Errorf("s.repo.DonorDistribution -> %w", err)
	}

	return dist, nil
}

func (s *MetricsService) DonationsByPaymentMethod(ctx context.Context, from, to time.Time) ([]domain.PaymentMethodTotal, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("metrics:methods:%d:%d", from.Unix(), to.Unix())

	totals, err := cache.GetOrLoadJSON(s.cache, ctx, key, metricsCacheTTL, func(ctx context.Context) ([]domain.PaymentMethodTotal, error) {
		return s.repo.DonationsByPaymentMethod(ctx, from, to)
	})
	if err != nil {
		return nil, fmt.Errorf("s.repo.DonationsByPaymentMethod -> %w", err)
	}

	return totals, nil
}

func (s *MetricsService) RaisedByPeriod(ctx context.Context, from, to time.Time, period string) ([]domain.PeriodBucket, error) {
	if err := validateRange(from, to); err != nil {
		return nil, err
	}
	if err := validatePeriod(period); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("metrics:raised:%d:%d:%s", from.Unix(), to.Unix(), period)

	buckets, err := cache.GetOrLoadJSON(s.cache, ctx, key, metricsCacheTTL, func(ctx context.Context) ([]domain.PeriodBucket, error) {
		return s.repo.RaisedByPeriod(ctx, from, to, period)
	})
	if err != nil {
		return nil, fmt.Errorf("s.repo.RaisedByPeriod -> %w", err)
	}

	return buckets, nil
}
