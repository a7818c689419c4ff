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

type NewsService interface {
	CreateNews(ctx context.Context, news domain.News) (domain.News, error)
	GetNews(ctx context.Context, id uint) (domain.News, error)
	ListNews(ctx context.Context, query domain.PageQuery) (domain.Page[domain.News], error)
	UpdateNews(ctx context.Context, news domain.News) (domain.News, error)
	DeleteNews(ctx context.Context, id uint) error
}

type NewsHandler struct {
	svc NewsService
}

func NewNewsHandler(svc NewsService) *NewsHandler {
	return &NewsHandler{svc: svc}
}

// HandleCreateNews godoc
// @Summary      Create a news entry
// @Tags         news
// @Produce      json
// @Param        request   body      request.CreateNewsRequest true "request body"
// @Success      201      {object}   domain.News
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /news [post]
// @Security BearerAuth
func (h *NewsHandler) HandleCreateNews(ctx *gin.Context) {
	var req request.CreateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	date, _ := time.Parse(time.RFC3339, req.Date)

	news, err := h.svc.CreateNews(ctx.Request.Context(), domain.News{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		URL:         req.URL,
	})
	if err != nil {
		err = fmt.Errorf("v1.HandleCreateNews -> h.svc.CreateNews -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, news)
}

// HandleGetNews godoc
// @Summary      Get one news entry
// @Tags         news
// @Produce      json
// @Param        id   path      int true "news ID"
// @Success      200  {object}  domain.News
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /news/{id} [get]
func (h *NewsHandler) HandleGetNews(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	news, err := h.svc.GetNews(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNewsNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("news", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetNews -> h.svc.GetNews -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, news)
}

// HandleListNews godoc
// @Summary      List news entries
// @Tags         news
// @Produce      json
// @Param        page       query     int false "page number"
// @Param        page_size  query     int false "page size"
// @Success      200  {object}  domain.Page[domain.News]
// @Failure      500  {object}  response.Err
// @Router       /news [get]
func (h *NewsHandler) HandleListNews(ctx *gin.Context) {
	page, err := h.svc.ListNews(ctx.Request.Context(), request.ParsePageQuery(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListNews -> h.svc.ListNews -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleUpdateNews godoc
// @Summary      Update a news entry
// @Tags         news
// @Produce      json
// @Param        id        path      int true "news ID"
// @Param        request   body      request.CreateNewsRequest true "request body"
// @Success      200      {object}   domain.News
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /news/{id} [put]
// @Security BearerAuth
func (h *NewsHandler) HandleUpdateNews(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.CreateNewsRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	date, _ := time.Parse(time.RFC3339, req.Date)

	news, err := h.svc.UpdateNews(ctx.Request.Context(), domain.News{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		URL:         req.URL,
	})
	if err != nil {
		if errors.Is(err, service.ErrNewsNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("news", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateNews -> h.svc.UpdateNews -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, news)
}

// HandleDeleteNews godoc
// @Summary      Delete a news entry
// @Tags         news
// @Produce      json
// @Param        id   path      int true "news ID"
// @Success      200  {object}  response.DeletedResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /news/{id} [delete]
// @Security BearerAuth
func (h *NewsHandler) HandleDeleteNews(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteNews(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNewsNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("news", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteNews -> h.svc.DeleteNews -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.DeletedResponse{Deleted: true})
}
