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

type HowToHelpService interface {
	CreateEntry(ctx context.Context, entry domain.HowToHelp) (domain.HowToHelp, error)
	GetEntry(ctx context.Context, id uint) (domain.HowToHelp, error)
	ListEntries(ctx context.Context, query domain.PageQuery) (domain.Page[domain.HowToHelp], error)
	UpdateEntry(ctx context.Context, entry domain.HowToHelp) (domain.HowToHelp, error)
	DeleteEntry(ctx context.Context, id uint) error
}

type HowToHelpHandler struct {
	svc HowToHelpService
}

func NewHowToHelpHandler(svc HowToHelpService) *HowToHelpHandler {
	return &HowToHelpHandler{svc: svc}
}

// HandleCreateEntry godoc
// @Summary      Create a how-to-help entry
// @Tags         how-to-help
// @Produce      json
// @Param        request   body      request.CreateHowToHelpRequest true "request body"
// @Success      201      {object}   domain.HowToHelp
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /how-to-help [post]
// @Security BearerAuth
func (h *HowToHelpHandler) HandleCreateEntry(ctx *gin.Context) {
	var req request.CreateHowToHelpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entry, err := h.svc.CreateEntry(ctx.Request.Context(), domain.HowToHelp{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateEntry -> h.svc.CreateEntry -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, entry)
}

// HandleGetEntry godoc
// @Summary      Get one how-to-help entry
// @Tags         how-to-help
// @Produce      json
// @Param        id   path      int true "entry ID"
// @Success      200  {object}  domain.HowToHelp
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /how-to-help/{id} [get]
func (h *HowToHelpHandler) HandleGetEntry(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entry, err := h.svc.GetEntry(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrHowToHelpNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("how-to-help entry", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetEntry -> h.svc.GetEntry -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, entry)
}

// HandleListEntries godoc
// @Summary      List how-to-help entries
// @Tags         how-to-help
// @Produce      json
// @Param        page       query     int false "page number"
// @Param        page_size  query     int false "page size"
// @Success      200  {object}  domain.Page[domain.HowToHelp]
// @Failure      500  {object}  response.Err
// @Router       /how-to-help [get]
func (h *HowToHelpHandler) HandleListEntries(ctx *gin.Context) {
	page, err := h.svc.ListEntries(ctx.Request.Context(), request.ParsePageQuery(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListEntries -> h.svc.ListEntries -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleUpdateEntry godoc
// @Summary      Update a how-to-help entry
// @Tags         how-to-help
// @Produce      json
// @Param        id        path      int true "entry ID"
// @Param        request   body      request.CreateHowToHelpRequest true "request body"
// @Success      200      {object}   domain.HowToHelp
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /how-to-help/{id} [put]
// @Security BearerAuth
func (h *HowToHelpHandler) HandleUpdateEntry(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateHowToHelpRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	entry, err := h.svc.UpdateEntry(ctx.Request.Context(), domain.HowToHelp{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
	})
	if err != nil {
		if errors.Is(err, service.ErrHowToHelpNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("how-to-help entry", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateEntry -> h.svc.UpdateEntry -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, entry)
}

// HandleDeleteEntry godoc
// @Summary      Delete a how-to-help entry
// @Tags         how-to-help
// @Produce      json
// @Param        id   path      int true "entry ID"
// @Success      200  {object}  response.DeletedResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /how-to-help/{id} [delete]
// @Security BearerAuth
func (h *HowToHelpHandler) HandleDeleteEntry(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteEntry(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrHowToHelpNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("how-to-help entry", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteEntry -> h.svc.DeleteEntry -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.DeletedResponse{Deleted: true})
}
