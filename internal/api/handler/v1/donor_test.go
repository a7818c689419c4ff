package v1

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/doarbem/donation-api/internal/api/middleware"
	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/pkg/jwthelper"
)

type stubDonorService struct {
	updatedWith *domain.Donor
}

func (s *stubDonorService) SignupDonor(ctx context.Context, donor domain.Donor) (domain.Donor, error) {
	return donor, nil
}

func (s *stubDonorService) GetDonor(ctx context.Context, id uint, requesterUserID uint, requesterRole string) (domain.Donor, error) {
	return domain.Donor{ID: id}, nil
}

func (s *stubDonorService) GetDonorByUserID(ctx context.Context, userID uint) (domain.Donor, error) {
	return domain.Donor{UserID: userID}, nil
}

func (s *stubDonorService) ListDonors(ctx context.Context, query domain.PageQuery) (domain.Page[domain.Donor], error) {
	return domain.Page[domain.Donor]{}, nil
}

func (s *stubDonorService) UpdateDonor(ctx context.Context, donor domain.Donor, requesterUserID uint, requesterRole string) (domain.Donor, error) {
	s.updatedWith = &donor

	return donor, nil
}

func (s *stubDonorService) DeleteDonor(ctx context.Context, id uint) error {
	return nil
}

func newDonorTestRouter(svc *stubDonorService, claims *jwthelper.Claims) *gin.Engine {
	gin.SetMode(gin.TestMode)

	handler := NewDonorHandler(svc)

	router := gin.New()
	router.Use(func(ctx *gin.Context) {
		ctx.Set(middleware.CtxClaimsKey, claims)
	})
	router.PUT("/donors/:id", handler.HandleUpdateDonor)

	return router
}

func TestHandleUpdateDonorCarriesEmail(t *testing.T) {
	svc := &stubDonorService{}
	router := newDonorTestRouter(svc, &jwthelper.Claims{UserID: 10, Role: domain.RoleDonor})

	rec := putJSON(t, router, "/donors/3", gin.H{
		"full_name": "Ana Souza",
		"email":     "ana@example.com",
		"gender":    "female",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.updatedWith)
	assert.Equal(t, "ana@example.com", svc.updatedWith.Email, "email must reach the service non-empty")
	assert.Equal(t, "Ana Souza", svc.updatedWith.FullName)
}

func TestHandleUpdateDonorRequiresEmail(t *testing.T) {
	svc := &stubDonorService{}
	router := newDonorTestRouter(svc, &jwthelper.Claims{UserID: 10, Role: domain.RoleDonor})

	rec := putJSON(t, router, "/donors/3", gin.H{
		"full_name": "Ana Souza",
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, svc.updatedWith, "service must not be called without an email")
}
