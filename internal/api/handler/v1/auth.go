package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doarbem/donation-api/internal/api/handler/v1/request"
	"github.com/doarbem/donation-api/internal/api/handler/v1/response"
	"github.com/doarbem/donation-api/internal/config"
	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/pkg/jwthelper"
	"github.com/doarbem/donation-api/internal/service"
)

type AuthService interface {
	Login(ctx context.Context, email, password string) (domain.User, error)
	SendPasswordResetToken(ctx context.Context, email string) error
	VerifyCode(ctx context.Context, email, code string) error
	ResetPassword(ctx context.Context, email, code, newPassword string) error
}

type AuthHandler struct {
	conf *config.APIConfig
	svc  AuthService
}

func NewAuthHandler(conf *config.APIConfig, svc AuthService) *AuthHandler {
	return &AuthHandler{
		conf: conf,
		svc:  svc,
	}
}

// HandleLogin godoc
// @Summary      Login with email and password
// @Tags         auth
// @Produce      json
// @Param        request   body      request.LoginRequest true "request body"
// @Success      200      {object}   response.LoginResponse
// @Failure      401      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/login [post]
func (h *AuthHandler) HandleLogin(ctx *gin.Context) {
	req := request.LoginRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	user, err := h.svc.Login(ctx.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) || errors.Is(err, service.ErrWrongPassword) {
			response.RenderErr(ctx, response.ErrWrongCredentials(errors.New("wrong email or password")))

			return
		}

		err = fmt.Errorf("v1.HandleLogin -> h.svc.Login -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	token, err := jwthelper.GenerateToken([]byte(h.conf.JWTSigningKey), user.ID, user.Role)
	if err != nil {
		err = fmt.Errorf("v1.HandleLogin -> jwthelper.GenerateToken -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.LoginResponse{
		Token: token,
		User:  user,
	})
}

// HandleSendResetToken godoc
// @Summary      Email a password reset code
// @Description  Always returns 200 so the endpoint cannot be used to probe for accounts
// @Tags         auth
// @Produce      json
// @Param        request   body      request.SendResetTokenRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/send-password-reset-token [post]
func (h *AuthHandler) HandleSendResetToken(ctx *gin.Context) {
	req := request.SendResetTokenRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.SendPasswordResetToken(ctx.Request.Context(), req.Email); err != nil {
		if !errors.Is(err, service.ErrUserNotFound) {
			err = fmt.Errorf("v1.HandleSendResetToken -> h.svc.SendPasswordResetToken -> %w", err)
			response.RenderErr(ctx, response.ErrInternalServerError(err))

			return
		}
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{
		Message: "if the email exists, a reset code has been sent",
	})
}

// HandleVerifyCode godoc
// @Summary      Check a password reset code
// @Tags         auth
// @Produce      json
// @Param        request   body      request.VerifyCodeRequest true "request body"
// @Success      200      {object}   response.VerifyCodeResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/verify-code [post]
func (h *AuthHandler) HandleVerifyCode(ctx *gin.Context) {
	req := request.VerifyCodeRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.VerifyCode(ctx.Request.Context(), req.Email, req.Code); err != nil {
		if errors.Is(err, service.ErrUserNotFound) ||
			errors.Is(err, service.ErrInvalidResetCode) ||
			errors.Is(err, service.ErrResetCodeExpired) {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid or expired reset code")))

			return
		}

		err = fmt.Errorf("v1.HandleVerifyCode -> h.svc.VerifyCode -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.VerifyCodeResponse{Valid: true})
}

// HandleResetPassword godoc
// @Summary      Reset the password using an emailed code
// @Tags         auth
// @Produce      json
// @Param        request   body      request.ResetPasswordRequest true "request body"
// @Success      200      {object}   response.MessageResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /auth/reset-password [post]
func (h *AuthHandler) HandleResetPassword(ctx *gin.Context) {
	req := request.ResetPasswordRequest{}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))

		return
	}

	if err := h.svc.ResetPassword(ctx.Request.Context(), req.Email, req.Code, req.Password); err != nil {
		if errors.Is(err, service.ErrUserNotFound) ||
			errors.Is(err, service.ErrInvalidResetCode) ||
			errors.Is(err, service.ErrResetCodeExpired) {
			response.RenderErr(ctx, response.ErrBadRequest(errors.New("invalid or expired reset code")))

			return
		}

		err = fmt.Errorf("v1.HandleResetPassword -> h.svc.ResetPassword -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))

		return
	}

	ctx.JSON(http.StatusOK, response.MessageResponse{
		Message: "password has been reset",
	})
}
