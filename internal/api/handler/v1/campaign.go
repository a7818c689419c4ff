package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/doarbem/donation-api/internal/api/handler/v1/request"
	"github.com/doarbem/donation-api/internal/api/handler/v1/response"
	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/service"
)

type CampaignService interface {
	CreateCampaign(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	GetCampaign(ctx context.Context, id uint) (domain.Campaign, error)
	GetRootCampaign(ctx context.Context) (domain.Campaign, error)
	ListCampaigns(ctx context.Context, status domain.CampaignStatus, query domain.PageQuery) (domain.Page[domain.Campaign], error)
	UpdateCampaign(ctx context.Context, campaign domain.Campaign) (domain.Campaign, error)
	SetRootCampaign(ctx context.Context, id uint) (domain.Campaign, error)
	DeleteCampaign(ctx context.Context, id uint) error
}

type CampaignAdminService interface {
	GetAdminByUserID(ctx context.Context, userID uint) (domain.Admin, error)
}

type CampaignHandler struct {
	svc      CampaignService
	adminSvc CampaignAdminService
}

func NewCampaignHandler(svc CampaignService, adminSvc CampaignAdminService) *CampaignHandler {
	return &CampaignHandler{
		svc:      svc,
		adminSvc: adminSvc,
	}
}

// HandleCreateCampaign godoc
// @Summary      Create a campaign
// @Tags         campaigns
// @Produce      json
// @Param        request   body      request.CreateCampaignRequest true "request body"
// @Success      201      {object}   domain.Campaign
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /campaigns [post]
// @Security BearerAuth
func (h *CampaignHandler) HandleCreateCampaign(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	var req request.CreateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	admin, err := h.adminSvc.GetAdminByUserID(ctx.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("admin", "userID", claims.UserID))
			return
		}

		err = fmt.Errorf("v1.HandleCreateCampaign -> h.adminSvc.GetAdminByUserID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	startDate, _ := time.Parse(time.RFC3339, req.StartDate)
	endDate, _ := time.Parse(time.RFC3339, req.EndDate)

	status := domain.CampaignStatusDraft
	if req.Status != "" {
		status = domain.CampaignStatus(req.Status)
	}

	campaign, err := h.svc.CreateCampaign(ctx.Request.Context(), domain.Campaign{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       status,
		CreatedBy:    admin.ID,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateCampaign -> h.svc.CreateCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, campaign)
}

// HandleGetCampaign godoc
// @Summary      Get one campaign
// @Tags         campaigns
// @Produce      json
// @Param        id   path      int true "campaign ID"
// @Success      200  {object}  domain.Campaign
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaigns/{id} [get]
func (h *CampaignHandler) HandleGetCampaign(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	campaign, err := h.svc.GetCampaign(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetCampaign -> h.svc.GetCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, campaign)
}

// HandleGetRootCampaign godoc
// @Summary      Get the campaign highlighted on the landing page
// @Tags         campaigns
// @Produce      json
// @Success      200  {object}  domain.Campaign
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaigns/root [get]
func (h *CampaignHandler) HandleGetRootCampaign(ctx *gin.Context) {
	campaign, err := h.svc.GetRootCampaign(ctx.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrRootCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "isRoot", true))
			return
		}

		err = fmt.Errorf("v1.HandleGetRootCampaign -> h.svc.GetRootCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, campaign)
}

// HandleListCampaigns godoc
// @Summary      List campaigns
// @Tags         campaigns
// @Produce      json
// @Param        status     query     string false "filter by status"
// @Param        page       query     int false "page number"
// @Param        page_size  query     int false "page size"
// @Success      200  {object}  domain.Page[domain.Campaign]
// @Failure      500  {object}  response.Err
// @Router       /campaigns [get]
func (h *CampaignHandler) HandleListCampaigns(ctx *gin.Context) {
	status := domain.CampaignStatus(ctx.Query("status"))

	page, err := h.svc.ListCampaigns(ctx.Request.Context(), status, request.ParsePageQuery(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListCampaigns -> h.svc.ListCampaigns -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleUpdateCampaign godoc
// @Summary      Update a campaign
// @Tags         campaigns
// @Produce      json
// @Param        id        path      int true "campaign ID"
// @Param        request   body      request.UpdateCampaignRequest true "request body"
// @Success      200      {object}   domain.Campaign
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /campaigns/{id} [put]
// @Security BearerAuth
func (h *CampaignHandler) HandleUpdateCampaign(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateCampaignRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	startDate, _ := time.Parse(time.RFC3339, req.StartDate)
	endDate, _ := time.Parse(time.RFC3339, req.EndDate)

	campaign, err := h.svc.UpdateCampaign(ctx.Request.Context(), domain.Campaign{
		ID:           id,
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: req.TargetAmount,
		StartDate:    startDate,
		EndDate:      endDate,
		Status:       domain.CampaignStatus(req.Status),
	})
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateCampaign -> h.svc.UpdateCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, campaign)
}

// HandleSetRootCampaign godoc
// @Summary      Make a campaign the landing page highlight
// @Description  Clears the flag from the previous root campaign first
// @Tags         campaigns
// @Produce      json
// @Param        id   path      int true "campaign ID"
// @Success      200  {object}  domain.Campaign
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaigns/{id}/root [put]
// @Security BearerAuth
func (h *CampaignHandler) HandleSetRootCampaign(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	campaign, err := h.svc.SetRootCampaign(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleSetRootCampaign -> h.svc.SetRootCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, campaign)
}

// HandleDeleteCampaign godoc
// @Summary      Delete a campaign
// @Tags         campaigns
// @Produce      json
// @Param        id   path      int true "campaign ID"
// @Success      200  {object}  response.DeletedResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /campaigns/{id} [delete]
// @Security BearerAuth
func (h *CampaignHandler) HandleDeleteCampaign(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteCampaign(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrCampaignNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("campaign", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteCampaign -> h.svc.DeleteCampaign -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.DeletedResponse{Deleted: true})
}
