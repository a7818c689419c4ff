package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		confirm  string
		wantErr  error
	}{
		{name: "valid", password: "abcdefg1", confirm: "abcdefg1", wantErr: nil},
		{name: "too short", password: "abc1", confirm: "abc1", wantErr: errInvalidPassword},
		{name: "no digit", password: "abcdefgh", confirm: "abcdefgh", wantErr: errInvalidPassword},
		{name: "no letter", password: "12345678", confirm: "12345678", wantErr: errInvalidPassword},
		{name: "mismatch", password: "abcdefg1", confirm: "abcdefg2", wantErr: errConfirmPasswordMismatch},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validatePassword(tc.password, tc.confirm)

			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestLoginRequestValidate(t *testing.T) {
	valid := LoginRequest{Email: "ana@example.com", Password: "whatever"}
	assert.NoError(t, valid.Validate())

	noEmail := LoginRequest{Password: "whatever"}
	assert.Error(t, noEmail.Validate())

	badEmail := LoginRequest{Email: "not-an-email", Password: "whatever"}
	assert.Error(t, badEmail.Validate())
}

func TestVerifyCodeRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		code    string
		wantErr bool
	}{
		{name: "valid code", code: "ABC123"},
		{name: "lowercase", code: "abc123", wantErr: true},
		{name: "too short", code: "AB12", wantErr: true},
		{name: "too long", code: "ABC1234", wantErr: true},
		{name: "empty", code: "", wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := VerifyCodeRequest{Email: "ana@example.com", Code: tc.code}

			err := req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResetPasswordRequestValidate(t *testing.T) {
	valid := ResetPasswordRequest{
		Email:           "ana@example.com",
		Code:            "ABC123",
		Password:        "abcdefg1",
		ConfirmPassword: "abcdefg1",
	}
	assert.NoError(t, valid.Validate())

	weak := valid
	weak.Password = "short1"
	weak.ConfirmPassword = "short1"
	assert.ErrorIs(t, weak.Validate(), errInvalidPassword)

	mismatch := valid
	mismatch.ConfirmPassword = "abcdefg2"
	assert.ErrorIs(t, mismatch.Validate(), errConfirmPasswordMismatch)
}
