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

type DonationService interface {
	CreateDonation(ctx context.Context, donorUserID uint, input service.CreateDonationInput) (domain.Donation, error)
	GetDonation(ctx context.Context, id uint, requesterUserID uint, requesterRole string) (domain.Donation, error)
	ListDonations(ctx context.Context, query domain.PageQuery) (domain.Page[domain.Donation], error)
	ListDonationsByDonor(ctx context.Context, donorUserID uint, query domain.PageQuery) (domain.Page[domain.Donation], error)
}

type DonationHandler struct {
	svc DonationService
}

func NewDonationHandler(svc DonationService) *DonationHandler {
	return &DonationHandler{svc: svc}
}

// HandleCreateDonation godoc
// @Summary      Register a donation
// @Description  Creates the donation and its pending payment for the calling donor
// @Tags         donations
// @Produce      json
// @Param        request   body      request.CreateDonationRequest true "request body"
// @Success      201      {object}   domain.Donation
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /donations [post]
// @Security BearerAuth
func (h *DonationHandler) HandleCreateDonation(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateDonationRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	input := service.CreateDonationInput{
		Amount:     req.Amount,
		CampaignID: req.CampaignID,
		Method:     domain.PaymentMethod(req.Method),
	}
	if req.Periodicity != "" {
		p := domain.Periodicity(req.Periodicity)
		input.Periodicity = &p
	}

	donation, err := h.svc.CreateDonation(ctx.Request.Context(), claims.UserID, input)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", req.CampaignID))
			return
		}
		if errors.Is(err, service.ErrDonorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("donor", "userID", claims.UserID))
			return
		}

		err = fmt.Errorf("v1.HandleCreateDonation -> h.svc.CreateDonation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, donation)
}

// HandleGetDonation godoc
// @Summary      Get one donation
// @Description  Donors can only fetch their own donations, admins can fetch any
// @Tags         donations
// @Produce      json
// @Param        id   path      int true "donation ID"
// @Success      200  {object}  domain.Donation
// @Failure      403  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /donations/{id} [get]
// @Security BearerAuth
func (h *DonationHandler) HandleGetDonation(ctx *gin.Context) {
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

	donation, err := h.svc.GetDonation(ctx.Request.Context(), id, claims.UserID, claims.Role)
	if err != nil {
		if errors.Is(err, service.ErrDonationForbidden) {
			response.RenderErr(ctx, response.ErrPermissionDenied(service.ErrDonationForbidden))
			return
		}
		if errors.Is(err, service.ErrDonationNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("donation", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetDonation -> h.svc.GetDonation -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, donation)
}

// HandleListDonations godoc
// @Summary      List all donations
// @Tags         donations
// @Produce      json
// @Param        page       query     int false "page number"
// @Param        page_size  query     int false "page size"
// @Success      200  {object}  domain.Page[domain.Donation]
// @Failure      500  {object}  response.Err
// @Router       /donations [get]
// @Security BearerAuth
func (h *DonationHandler) HandleListDonations(ctx *gin.Context) {
	page, err := h.svc.ListDonations(ctx.Request.Context(), request.ParsePageQuery(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListDonations -> h.svc.ListDonations -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleListMyDonations godoc
// @Summary      List the calling donor's donations
// @Tags         donations
// @Produce      json
// @Param        page       query     int false "page number"
// @Param        page_size  query     int false "page size"
// @Success      200  {object}  domain.Page[domain.Donation]
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /donations/me [get]
// @Security BearerAuth
func (h *DonationHandler) HandleListMyDonations(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	page, err := h.svc.ListDonationsByDonor(ctx.Request.Context(), claims.UserID, request.ParsePageQuery(ctx))
	if err != nil {
		if errors.Is(err, service.ErrDonorNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("donor", "userID", claims.UserID))
			return
		}

		err = fmt.Errorf("v1.HandleListMyDonations -> h.svc.ListDonationsByDonor -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, page)
}
