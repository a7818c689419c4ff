package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateEventRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	StartDate   string `json:"start_date" validate:"required"`
	EndDate     string `json:"end_date" validate:"required"`
	Location    string `json:"location" validate:"required"`
	URL         string `json:"url,omitempty"`
}

func (req *CreateEventRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 150)),
		validation.Field(&req.Description, validation.Length(0, 5000)),
		validation.Field(&req.StartDate, validation.Required, validation.Date(campaignDateLayout)),
		validation.Field(&req.EndDate, validation.Required, validation.Date(campaignDateLayout)),
		validation.Field(&req.Location, validation.Required, validation.Length(2, 150)),
		validation.Field(&req.URL, is.URL),
	)
	if err != nil {
		return err
	}

	return validateCampaignDates(req.StartDate, req.EndDate)
}

type CreateNewsRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Date        string `json:"date" validate:"required"`
	URL         string `json:"url,omitempty"`
}

func (req *CreateNewsRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 150)),
		validation.Field(&req.Description, validation.Length(0, 5000)),
		validation.Field(&req.Date, validation.Required, validation.Date(campaignDateLayout)),
		validation.Field(&req.URL, is.URL),
	)
}

type CreateHowToHelpRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
	URL         string `json:"url,omitempty"`
}

func (req *CreateHowToHelpRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(2, 150)),
		validation.Field(&req.Description, validation.Required, validation.Length(2, 5000)),
		validation.Field(&req.URL, is.URL),
	)
}

type SubscribeNewsletterRequest struct {
	Email string `json:"email" validate:"required"`
}

func (req *SubscribeNewsletterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}

type SendMailRequest struct {
	To      string `json:"to" validate:"required"`
	Subject string `json:"subject" validate:"required"`
	Body    string `json:"body" validate:"required"`
}

func (req *SendMailRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.To, validation.Required, is.Email),
		validation.Field(&req.Subject, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Body, validation.Required),
	)
}
