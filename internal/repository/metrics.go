package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/repository/dao"
)

type MetricsDAO interface {
	Summary(ctx context.Context, since time.Time) (dao.SummaryRow, int64, error)
	DonorsByGender(ctx context.Context, from, to time.Time) ([]dao.GenderRow, error)
	DonorsByAgeBracket(ctx context.Context, from, to time.Time) ([]dao.AgeBracketRow, error)
	DonationsByPaymentMethod(ctx context.Context, from, to time.Time) ([]dao.PaymentMethodRow, error)
	RaisedByPeriod(ctx context.Context, from, to time.Time, period string) ([]dao.PeriodRow, error)
}

type MetricsRepository struct {
	dao MetricsDAO
}

func NewMetricsRepository(dao MetricsDAO) *MetricsRepository {
	return &MetricsRepository{
		dao: dao,
	}
}

func (r *MetricsRepository) Summary(ctx context.Context, days int, now time.Time) (domain.DashboardSummary, error) {
	since := now.AddDate(0, 0, -days)

	row, newDonors, err := r.dao.Summary(ctx, since)
	if err != nil {
		return domain.DashboardSummary{}, fmt.Errorf("r.dao.Summary -> %w", err)
	}

	return domain.DashboardSummary{
		Days:               days,
		RaisedAmount:       row.RaisedAmount,
		NewDonors:          newDonors,
		RecurringDonations: row.RecurringDonations,
		DonationCount:      row.DonationCount,
		AverageTicket:      row.AverageTicket,
	}, nil
}

func (r *MetricsRepository) DonorDistribution(ctx context.Context, from, to time.Time) (domain.DonorDistribution, error) {
	genderRows, err := r.dao.DonorsByGender(ctx, from, to)
	if err != nil {
		return domain.DonorDistribution{}, fmt.Errorf("r.dao.DonorsByGender -> %w", err)
	}

	ageRows, err := r.dao.DonorsByAgeBracket(ctx, from, to)
	if err != nil {
		return domain.DonorDistribution{}, fmt.Errorf("r.dao.DonorsByAgeBracket -> %w", err)
	}

	dist := domain.DonorDistribution{
		ByGender: make([]domain.GenderCount, 0, len(genderRows)),
		ByAge:    make([]domain.AgeBracketCount, 0, len(ageRows)),
	}
	for _, row := range genderRows {
		dist.ByGender = append(dist.ByGender, domain.GenderCount{Gender: row.Gender, Count: row.Count})
	}
	for _, row := range ageRows {
		dist.ByAge = append(dist.ByAge, domain.AgeBracketCount{Bracket: row.Bracket, Count: row.Count})
	}

	return dist, nil
}

func (r *MetricsRepository) DonationsByPaymentMethod(ctx context.Context, from, to time.Time) ([]domain.PaymentMethodTotal, error) {
	rows, err := r.dao.DonationsByPaymentMethod(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("r.dao.DonationsByPaymentMethod -> %w", err)
	}

	totals := make([]domain.PaymentMethodTotal, 0, len(rows))
	for _, row := range rows {
		totals = append(totals, domain.PaymentMethodTotal{
			Method: domain.PaymentMethod(row.Method),
			Total:  row.Total,
			Count:  row.Count,
		})
	}

	return totals, nil
}

func (r *MetricsRepository) RaisedByPeriod(ctx context.Context, from, to time.Time, period string) ([]domain.PeriodBucket, error) {
	rows, err := r.dao.RaisedByPeriod(ctx, from, to, period)
	if err != nil {
		return nil, fmt.Errorf("r.dao.RaisedByPeriod -> %w", err)
	}

	buckets := make([]domain.PeriodBucket, 0, len(rows))
	for _, row := range rows {
		buckets = append(buckets, domain.PeriodBucket{
			PeriodStart: row.PeriodStart,
			Total:       row.Total,
			Count:       row.Count,
		})
	}

	return buckets, nil
}
