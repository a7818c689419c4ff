package request

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSignup() SignupDonorRequest {
	return SignupDonorRequest{
		FullName:        "Ana Souza",
		Email:           "ana@example.com",
		Password:        "abcdefg1",
		ConfirmPassword: "abcdefg1",
		CPF:             "12345678901",
	}
}

func TestSignupDonorRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SignupDonorRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *SignupDonorRequest) {}},
		{name: "valid with optional fields", mutate: func(r *SignupDonorRequest) {
			r.BirthDate = "1990-05-20"
			r.Gender = "female"
			r.Phone = "11987654321"
		}},
		{name: "missing cpf", mutate: func(r *SignupDonorRequest) { r.CPF = "" }, wantErr: true},
		{name: "cpf too short", mutate: func(r *SignupDonorRequest) { r.CPF = "12345" }, wantErr: true},
		{name: "cpf with punctuation", mutate: func(r *SignupDonorRequest) { r.CPF = "123.456.789-01" }, wantErr: true},
		{name: "bad email", mutate: func(r *SignupDonorRequest) { r.Email = "nope" }, wantErr: true},
		{name: "weak password", mutate: func(r *SignupDonorRequest) {
			r.Password = "short"
			r.ConfirmPassword = "short"
		}, wantErr: true},
		{name: "unknown gender", mutate: func(r *SignupDonorRequest) { r.Gender = "robot" }, wantErr: true},
		{name: "bad birth date format", mutate: func(r *SignupDonorRequest) { r.BirthDate = "20/05/1990" }, wantErr: true},
		{name: "future birth date", mutate: func(r *SignupDonorRequest) {
			r.BirthDate = time.Now().AddDate(1, 0, 0).Format("2006-01-02")
		}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := validSignup()
			tc.mutate(&req)

			err := req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestParsedBirthDate(t *testing.T) {
	req := validSignup()

	parsed, err := req.ParsedBirthDate()
	require.NoError(t, err)
	assert.Nil(t, parsed, "omitted birth date parses to nil")

	req.BirthDate = "1990-05-20"
	parsed, err = req.ParsedBirthDate()
	require.NoError(t, err)
	require.NotNil(t, parsed)
	assert.Equal(t, time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC), *parsed)
}

func TestUpdateDonorRequestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*UpdateDonorRequest)
		wantErr bool
	}{
		{name: "valid", mutate: func(r *UpdateDonorRequest) {}},
		{name: "missing email", mutate: func(r *UpdateDonorRequest) { r.Email = "" }, wantErr: true},
		{name: "bad email", mutate: func(r *UpdateDonorRequest) { r.Email = "nope" }, wantErr: true},
		{name: "missing full name", mutate: func(r *UpdateDonorRequest) { r.FullName = "" }, wantErr: true},
		{name: "unknown gender", mutate: func(r *UpdateDonorRequest) { r.Gender = "sim" }, wantErr: true},
		{name: "bad birth date", mutate: func(r *UpdateDonorRequest) { r.BirthDate = "20/05/1990" }, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req := UpdateDonorRequest{FullName: "Ana Souza", Email: "ana@example.com"}
			tc.mutate(&req)
			err := req.Validate()
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}
