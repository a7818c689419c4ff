package request

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
)

const campaignDateLayout = time.RFC3339

var errEndBeforeStart = errors.New("end_date must be after start_date")

type CreateCampaignRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	TargetAmount float64 `json:"target_amount" validate:"required"`
	StartDate    string  `json:"start_date" validate:"required"`
	EndDate      string  `json:"end_date" validate:"required"`
	Status       string  `json:"status,omitempty"`
}

func (req *CreateCampaignRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 150)),
		validation.Field(&req.Description, validation.Length(0, 5000)),
		validation.Field(&req.TargetAmount, validation.Required, validation.Min(0.01)),
		validation.Field(&req.StartDate, validation.Required, validation.Date(campaignDateLayout)),
		validation.Field(&req.EndDate, validation.Required, validation.Date(campaignDateLayout)),
		validation.Field(&req.Status, validation.In("draft", "active", "paused", "completed", "canceled")),
	)
	if err != nil {
		return err
	}

	return validateCampaignDates(req.StartDate, req.EndDate)
}

type UpdateCampaignRequest struct {
	Title        string  `json:"title" validate:"required"`
	Description  string  `json:"description"`
	TargetAmount float64 `json:"target_amount" validate:"required"`
	StartDate    string  `json:"start_date" validate:"required"`
	EndDate      string  `json:"end_date" validate:"required"`
	Status       string  `json:"status" validate:"required"`
}

func (req *UpdateCampaignRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 150)),
		validation.Field(&req.Description, validation.Length(0, 5000)),
		validation.Field(&req.TargetAmount, validation.Required, validation.Min(0.01)),
		validation.Field(&req.StartDate, validation.Required, validation.Date(campaignDateLayout)),
		validation.Field(&req.EndDate, validation.Required, validation.Date(campaignDateLayout)),
		validation.Field(&req.Status, validation.Required, validation.In("draft", "active", "paused", "completed", "canceled")),
	)
	if err != nil {
		return err
	}

	return validateCampaignDates(req.StartDate, req.EndDate)
}

func validateCampaignDates(start, end string) error {
	startDate, err := time.Parse(campaignDateLayout, start)
	if err != nil {
		return err
	}
	endDate, err := time.Parse(campaignDateLayout, end)
	if err != nil {
		return err
	}

	if !endDate.After(startDate) {
		return errEndBeforeStart
	}

	return nil
}
