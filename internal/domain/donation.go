package domain

import "time"

type Periodicity string

const (
	PeriodicityMonthly   Periodicity = "monthly"
	PeriodicityQuarterly Periodicity = "quarterly"
	PeriodicityYearly    Periodicity = "yearly"
)

type PaymentMethod string

const (
	PaymentMethodPix        PaymentMethod = "pix"
	PaymentMethodCreditCard PaymentMethod = "credit_card"
	PaymentMethodBoleto     PaymentMethod = "boleto"
)

type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusPaid     PaymentStatus = "paid"
	PaymentStatusFailed   PaymentStatus = "failed"
	PaymentStatusRefunded PaymentStatus = "refunded"
)

type Donation struct {
	ID          uint         `json:"id"`
	Amount      float64      `json:"amount"`
	Periodicity *Periodicity `json:"periodicity,omitempty"`
	CampaignID  *uint        `json:"campaign_id,omitempty"`
	DonorID     uint         `json:"donor_id"`
	DonorName   string       `json:"donor_name,omitempty"`
	Payments    []Payment    `json:"payments,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

type Payment struct {
	ID         uint          `json:"id"`
	DonationID uint          `json:"donation_id"`
	Method     PaymentMethod `json:"method"`
	Status     PaymentStatus `json:"status"`
	Amount     float64       `json:"amount"`
	PaidAt     *time.Time    `json:"paid_at,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
