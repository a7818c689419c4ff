package v1

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doarbem/donation-api/internal/config"
	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/service"
)

type stubAuthService struct {
	loginFn      func(ctx context.Context, email, password string) (domain.User, error)
	verifyCodeFn func(ctx context.Context, email, code string) error
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (domain.User, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) SendPasswordResetToken(ctx context.Context, email string) error {
	return nil
}

func (s *stubAuthService) VerifyCode(ctx context.Context, email, code string) error {
	return s.verifyCodeFn(ctx, email, code)
}

func (s *stubAuthService) ResetPassword(ctx context.Context, email, code, newPassword string) error {
	return nil
}

func newAuthTestRouter(svc *stubAuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewAuthHandler(&config.APIConfig{JWTSigningKey: "test-key"}, svc)

	router := gin.New()
	router.POST("/auth/verify-code", handler.HandleVerifyCode)

	return router
}

func sendJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	return rec
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	return sendJSON(t, router, http.MethodPost, path, body)
}

func putJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	return sendJSON(t, router, http.MethodPut, path, body)
}

func TestHandleVerifyCode(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "valid code", serviceErr: nil, wantStatus: http.StatusOK},
		{name: "unknown code", serviceErr: service.ErrInvalidResetCode, wantStatus: http.StatusBadRequest},
		{name: "expired code", serviceErr: service.ErrResetCodeExpired, wantStatus: http.StatusBadRequest},
		{name: "unknown email", serviceErr: service.ErrUserNotFound, wantStatus: http.StatusBadRequest},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			router := newAuthTestRouter(&stubAuthService{
				verifyCodeFn: func(ctx context.Context, email, code string) error {
					return tc.serviceErr
				},
			})

			rec := postJSON(t, router, "/auth/verify-code", gin.H{
				"email": "ana@example.com",
				"code":  "ABC123",
			})

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus == http.StatusOK {
				assert.JSONEq(t, `{"valid": true}`, rec.Body.String())
			}
		})
	}
}

func TestHandleVerifyCodeMalformedCode(t *testing.T) {
	router := newAuthTestRouter(&stubAuthService{
		verifyCodeFn: func(ctx context.Context, email, code string) error {
			t.Fatal("service must not be called for malformed input")
			return nil
		},
	})

	rec := postJSON(t, router, "/auth/verify-code", gin.H{
		"email": "ana@example.com",
		"code":  "abc",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
