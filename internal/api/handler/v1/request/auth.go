package request

import (
	"errors"
	"regexp"

	"github.com/dlclark/regexp2"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	passwordRegexPattern  = `^(?=.*[A-Za-z])(?=.*\d).{8,}$`
	resetCodeRegexPattern = `^[0-9A-Z]{6}$`
)

var (
	errInvalidPassword         = errors.New("the password must be at least 8 characters and contain 1 letter and 1 number")
	errConfirmPasswordMismatch = errors.New("confirm password doesn't match the password")
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (req *LoginRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	)
}

type SendResetTokenRequest struct {
	Email string `json:"email" validate:"required"`
}

func (req *SendResetTokenRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
	)
}

type VerifyCodeRequest struct {
	Email string `json:"email" validate:"required"`
	Code  string `json:"code" validate:"required"`
}

func (req *VerifyCodeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Code, validation.Required, validation.Match(regexp.MustCompile(resetCodeRegexPattern))),
	)
}

type ResetPasswordRequest struct {
	Email           string `json:"email" validate:"required"`
	Code            string `json:"code" validate:"required"`
	Password        string `json:"password" validate:"required"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

func (req *ResetPasswordRequest) Validate() error {
	err := validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Code, validation.Required, validation.Match(regexp.MustCompile(resetCodeRegexPattern))),
		validation.Field(&req.Password, validation.Required),
		validation.Field(&req.ConfirmPassword, validation.Required),
	)
	if err != nil {
		return err
	}

	return validatePassword(req.Password, req.ConfirmPassword)
}

// The password pattern uses lookaheads, which the standard regexp package
// rejects, hence regexp2.
var passwordExp = regexp2.MustCompile(passwordRegexPattern, regexp2.None)

func validatePassword(password, confirmPassword string) error {
	if ok, _ := passwordExp.MatchString(password); !ok {
		return errInvalidPassword
	}

	if password != confirmPassword {
		return errConfirmPasswordMismatch
	}

	return nil
}
