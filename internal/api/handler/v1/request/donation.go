package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateDonationRequest struct {
	Amount      float64 `json:"amount" validate:"required"`
	Periodicity string  `json:"periodicity,omitempty"`
	CampaignID  *uint   `json:"campaign_id,omitempty"`
	Method      string  `json:"method" validate:"required"`
}

func (req *CreateDonationRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Amount, validation.Required, validation.Min(0.01)),
		validation.Field(&req.Periodicity, validation.In("monthly", "quarterly", "yearly")),
		validation.Field(&req.Method, validation.Required, validation.In("pix", "credit_card", "boleto")),
	)
}
