package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doarbem/donation-api/internal/api/handler/v1/request"
	"github.com/doarbem/donation-api/internal/api/handler/v1/response"
	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/service"
)

type DonorService interface {
	SignupDonor(ctx context.Context, donor domain.Donor) (domain.Donor, error)
	GetDonor(ctx context.Context, id uint, requesterUserID uint, requesterRole string) (domain.Donor, error)
	GetDonorByUserID(ctx context.Context, userID uint) (domain.Donor, error)
	ListDonors(ctx context.Context, query domain.PageQuery) (domain.Page[domain.Donor], error)
	UpdateDonor(ctx context.Context, donor domain.Donor, requesterUserID uint, requesterRole string) (domain.Donor, error)
	DeleteDonor(ctx context.Context, id uint) error
}

type DonorHandler struct {
	svc DonorService
}

func NewDonorHandler(svc DonorService) *DonorHandler {
	return &DonorHandler{svc: svc}
}

// HandleSignup godoc
// @Summary      Signup a new donor
// @Tags         donors
// @Produce      json
// @Param        request   body      request.SignupDonorRequest true "request body"
// @Success      201      {object}   domain.Donor
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /donors/signup [post]
func (h *DonorHandler) HandleSignup(ctx *gin.Context) {
	var req request.SignupDonorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	birthDate, err := req.ParsedBirthDate()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	donor, err := h.svc.SignupDonor(ctx.Request.Context(), domain.Donor{
		User: domain.User{
			FullName: req.FullName,
			Email:    req.Email,
			Password: req.Password,
			Role:     domain.RoleDonor,
		},
		BirthDate: birthDate,
		Gender:    req.Gender,
		Phone:     req.Phone,
		CPF:       req.CPF,
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUserEmailExists))
			return
		}
		if errors.Is(err, service.ErrDonorCPFExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrDonorCPFExists))
			return
		}

		err = fmt.Errorf("v1.HandleSignup -> h.svc.SignupDonor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, donor)
}

// HandleGetDonor godoc
// @Summary      Get one donor
// @Description  Donors can only fetch their own profile, admins can fetch anyone
// @Tags         donors
// @Produce      json
// @Param        id   path      int true "donor ID"
// @Success      200  {object}  domain.Donor
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /donors/{id} [get]
// @Security BearerAuth
func (h *DonorHandler) HandleGetDonor(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	donor, err := h.svc.GetDonor(ctx.Request.Context(), id, claims.UserID, claims.Role)
	if err != nil {
		if errors.Is(err, service.ErrDonorForbidden) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrDonorForbidden))
			return
		}
		if errors.Is(err, service.ErrDonorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("donor", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetDonor -> h.svc.GetDonor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, donor)
}

// HandleGetMe godoc
// @Summary      Get the calling donor's profile
// @Tags         donors
// @Produce      json
// @Success      200  {object}  domain.Donor
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /donors/me [get]
// @Security BearerAuth
func (h *DonorHandler) HandleGetMe(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	donor, err := h.svc.GetDonorByUserID(ctx.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrDonorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("donor", "userID", claims.UserID))
			return
		}

		err = fmt.Errorf("v1.HandleGetMe -> h.svc.GetDonorByUserID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, donor)
}

// HandleListDonors godoc
// @Summary      List donors with their donation totals
// @Tags         donors
// @Produce      json
// @Param        page       query     int false "page number"
// @Param        page_size  query     int false "page size"
// @Success      200  {object}  domain.Page[domain.Donor]
// @Failure      500  {object}  response.Err
// @Router       /donors [get]
// @Security BearerAuth
func (h *DonorHandler) HandleListDonors(ctx *gin.Context) {
	page, err := h.svc.ListDonors(ctx.Request.Context(), request.ParsePageQuery(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListDonors -> h.svc.ListDonors -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleUpdateDonor godoc
// @Summary      Update a donor profile
// @Tags         donors
// @Produce      json
// @Param        id        path      int true "donor ID"
// @Param        request   body      request.UpdateDonorRequest true "request body"
// @Success      200      {object}   domain.Donor
// @Failure      400      {object}   response.Err
// @Failure      403      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /donors/{id} [put]
// @Security BearerAuth
func (h *DonorHandler) HandleUpdateDonor(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateDonorRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	birthDate, err := req.ParsedBirthDate()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	donor, err := h.svc.UpdateDonor(ctx.Request.Context(), domain.Donor{
		User: domain.User{
			FullName: req.FullName,
			Email:    req.Email,
		},
		ID:        id,
		BirthDate: birthDate,
		Gender:    req.Gender,
		Phone:     req.Phone,
	}, claims.UserID, claims.Role)
	if err != nil {
		if errors.Is(err, service.ErrDonorForbidden) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrDonorForbidden))
			return
		}
		if errors.Is(err, service.ErrDonorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("donor", "ID", id))
			return
		}
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUserEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateDonor -> h.svc.UpdateDonor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, donor)
}

// HandleDeleteDonor godoc
// @Summary      Delete a donor
// @Tags         donors
// @Produce      json
// @Param        id   path      int true "donor ID"
// @Success      200  {object}  response.DeletedResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /donors/{id} [delete]
// @Security BearerAuth
func (h *DonorHandler) HandleDeleteDonor(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteDonor(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrDonorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("donor", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteDonor -> h.svc.DeleteDonor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.DeletedResponse{Deleted: true})
}
