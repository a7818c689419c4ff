package response

import "github.com/doarbem/donation-api/internal/domain"

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type VerifyCodeResponse struct {
	Valid bool `json:"valid"`
}
