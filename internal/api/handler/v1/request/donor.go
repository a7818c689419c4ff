package request

import (
	"errors"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const birthDateLayout = "2006-01-02"

var (
	cpfExp             = regexp.MustCompile(`^\d{11}$`)
	errInvalidDate     = errors.New("birth_date must be formatted as YYYY-MM-DD")
	errFutureBirthDate = errors.New("birth_date cannot be in the future")
)

type SignupDonorRequest struct {
	FullName        string `json:"full_name" validate:"required"`
	Email           string `json:"email" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
	BirthDate       string `json:"birth_date,omitempty"`
	Gender          string `json:"gender,omitempty"`
	Phone           string `json:"phone,omitempty"`
	CPF             string `json:"cpf" validate:"required"`
}

func (req *SignupDonorRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.FullName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.ConfirmPassword, validation.Required),
		validation.Field(&req.Gender, validation.In("male", "female", "other")),
		validation.Field(&req.Phone, validation.Length(0, 20)),
		validation.Field(&req.CPF, validation.Required, validation.Match(cpfExp)),
	)
	if err != nil {
		return err
	}

	if err := validatePassword(req.Password, req.ConfirmPassword); err != nil {
		return err
	}

	if _, err := req.ParsedBirthDate(); err != nil {
		return err
	}

	return nil
}

// ParsedBirthDate returns nil when the field was omitted.
func (req *SignupDonorRequest) ParsedBirthDate() (*time.Time, error) {
	return parseBirthDate(req.BirthDate)
}

type UpdateDonorRequest struct {
	FullName  string `json:"full_name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	BirthDate string `json:"birth_date,omitempty"`
	Gender    string `json:"gender,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

func (req *UpdateDonorRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.FullName, validation.Required, validation.Length(2, 100)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Gender, validation.In("male", "female", "other")),
		validation.Field(&req.Phone, validation.Length(0, 20)),
	)
	if err != nil {
		return err
	}

	if _, err := req.ParsedBirthDate(); err != nil {
		return err
	}

	return nil
}

func (req *UpdateDonorRequest) ParsedBirthDate() (*time.Time, error) {
	return parseBirthDate(req.BirthDate)
}

func parseBirthDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse(birthDateLayout, value)
	if err != nil {
		return nil, errInvalidDate
	}
	if parsed.After(time.Now()) {
		return nil, errFutureBirthDate
	}

	return &parsed, nil
}
