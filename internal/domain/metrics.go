package domain

import "time"

// DashboardSummary holds the rolling-window totals shown on the admin dashboard.
type DashboardSummary struct {
	Days               int     `json:"days"`
	RaisedAmount       float64 `json:"raised_amount"`
	NewDonors          int64   `json:"new_donors"`
	RecurringDonations int64   `json:"recurring_donations"`
	DonationCount      int64   `json:"donation_count"`
	AverageTicket      float64 `json:"average_ticket"`
}

type GenderCount struct {
	Gender string `json:"gender"`
	Count  int64  `json:"count"`
}

type AgeBracketCount struct {
	Bracket string `json:"bracket"`
	Count   int64  `json:"count"`
}

type DonorDistribution struct {
	ByGender []GenderCount     `json:"by_gender"`
	ByAge    []AgeBracketCount `json:"by_age"`
}

type PaymentMethodTotal struct {
	Method PaymentMethod `json:"method"`
	Total  float64       `json:"total"`
	Count  int64         `json:"count"`
}

// PeriodBucket is one point of the raised-by-period series. Period starts are
// truncated to the requested granularity (day, week or month).
type PeriodBucket struct {
	PeriodStart time.Time `json:"period_start"`
	Total       float64   `json:"total"`
	Count       int64     `json:"count"`
}
