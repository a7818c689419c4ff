package dao

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// MetricsDAO runs the dashboard aggregation queries. All aggregation happens
// in SQL; callers only reshape rows.
type MetricsDAO struct {
	db *gorm.DB
}

func NewMetricsDAO(db *gorm.DB) *MetricsDAO {
	return &MetricsDAO{
		db: db,
	}
}

type SummaryRow struct {
	RaisedAmount       float64
	DonationCount      int64
	RecurringDonations int64
	AverageTicket      float64
}

func (d *MetricsDAO) Summary(ctx context.Context, since time.Time) (SummaryRow, int64, error) {
	var row SummaryRow

	err := d.db.WithContext(ctx).
		Model(&Donation{}).
		Where("created_at >= ?", since).
		Select(`COALESCE(SUM(amount), 0)                          AS raised_amount,
			COUNT(*)                                          AS donation_count,
			COUNT(*) FILTER (WHERE periodicity IS NOT NULL)   AS recurring_donations,
			COALESCE(AVG(amount), 0)                          AS average_ticket`).
		Scan(&row).Error
	if err != nil {
		return SummaryRow{}, 0, err
	}

	var newDonors int64
	err = d.db.WithContext(ctx).
		Model(&Donor{}).
		Where("created_at >= ?", since).
		Count(&newDonors).Error
	if err != nil {
		return SummaryRow{}, 0, err
	}

	return row, newDonors, nil
}

type GenderRow struct {
	Gender string
	Count  int64
}

type AgeBracketRow struct {
	Bracket string
	Count   int64
}

func (d *MetricsDAO) DonorsByGender(ctx context.Context, from, to time.Time) ([]GenderRow, error) {
	var rows []GenderRow

	err := d.db.WithContext(ctx).
		Model(&Donor{}).
		Where("created_at BETWEEN ? AND ?", from, to).
		Select(`COALESCE(NULLIF(gender, ''), 'unknown') AS gender, COUNT(*) AS count`).
		Group("1").
		Order("2 DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

func (d *MetricsDAO) DonorsByAgeBracket(ctx context.Context, from, to time.Time) ([]AgeBracketRow, error) {
	var rows []AgeBracketRow

	err := d.db.WithContext(ctx).
		Model(&Donor{}).
		Where("created_at BETWEEN ? AND ?", from, to).
		Select(`CASE
			WHEN birth_date IS NULL                                  THEN 'unknown'
			WHEN EXTRACT(YEAR FROM AGE(birth_date)) < 25             THEN 'under_25'
			WHEN EXTRACT(YEAR FROM AGE(birth_date)) BETWEEN 25 AND 34 THEN '25_34'
			WHEN EXTRACT(YEAR FROM AGE(birth_date)) BETWEEN 35 AND 44 THEN '35_44'
			WHEN EXTRACT(YEAR FROM AGE(birth_date)) BETWEEN 45 AND 59 THEN '45_59'
			ELSE '60_plus'
		END AS bracket, COUNT(*) AS count`).
		Group("1").
		Order("1").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

type PaymentMethodRow struct {
	Method string
	Total  float64
	Count  int64
}

func (d *MetricsDAO) DonationsByPaymentMethod(ctx context.Context, from, to time.Time) ([]PaymentMethodRow, error) {
	var rows []PaymentMethodRow

	err := d.db.WithContext(ctx).
		Model(&Payment{}).
		Where("created_at BETWEEN ? AND ?", from, to).
		Select(`method, COALESCE(SUM(amount), 0) AS total, COUNT(*) AS count`).
		Group("method").
		Order("total DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}

type PeriodRow struct {
	PeriodStart time.Time
	Total       float64
	Count       int64
}

// RaisedByPeriod buckets donation totals by day, week or month using
// date_trunc. The period string must be validated by the caller.
func (d *MetricsDAO) RaisedByPeriod(ctx context.Context, from, to time.Time, period string) ([]PeriodRow, error) {
	var rows []PeriodRow

	err := d.db.WithContext(ctx).
		Model(&Donation{}).
		Where("created_at BETWEEN ? AND ?", from, to).
		Select(`date_trunc(?, created_at) AS period_start,
			COALESCE(SUM(amount), 0)  AS total,
			COUNT(*)                  AS count`, period).
		Group("1").
		Order("1").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	return rows, nil
}
