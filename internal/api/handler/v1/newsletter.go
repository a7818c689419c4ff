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

type NewsletterService interface {
	Subscribe(ctx context.Context, email string) (domain.Newsletter, error)
	ListSubscriptions(ctx context.Context, query domain.PageQuery) (domain.Page[domain.Newsletter], error)
	Unsubscribe(ctx context.Context, id uint) error
}

type NewsletterHandler struct {
	svc NewsletterService
}

func NewNewsletterHandler(svc NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{svc: svc}
}

// HandleSubscribe godoc
// @Summary      Subscribe an email to the newsletter
// @Tags         newsletter
// @Produce      json
// @Param        request   body      request.SubscribeNewsletterRequest true "request body"
// @Success      201      {object}   domain.Newsletter
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /newsletter [post]
func (h *NewsletterHandler) HandleSubscribe(ctx *gin.Context) {
	var req request.SubscribeNewsletterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	subscription, err := h.svc.Subscribe(ctx.Request.Context(), req.Email)
	if err != nil {
		if errors.Is(err, service.ErrNewsletterEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrNewsletterEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleSubscribe -> h.svc.Subscribe -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, subscription)
}

// HandleListSubscriptions godoc
// @Summary      List newsletter subscriptions
// @Tags         newsletter
// @Produce      json
// @Param        page       query     int false "page number"
// @Param        page_size  query     int false "page size"
// @Success      200  {object}  domain.Page[domain.Newsletter]
// @Failure      500  {object}  response.Err
// @Router       /newsletter [get]
// @Security BearerAuth
func (h *NewsletterHandler) HandleListSubscriptions(ctx *gin.Context) {
	page, err := h.svc.ListSubscriptions(ctx.Request.Context(), request.ParsePageQuery(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListSubscriptions -> h.svc.ListSubscriptions -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleUnsubscribe godoc
// @Summary      Remove a newsletter subscription
// @Tags         newsletter
// @Produce      json
// @Param        id   path      int true "subscription ID"
// @Success      200  {object}  response.DeletedResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /newsletter/{id} [delete]
// @Security BearerAuth
func (h *NewsletterHandler) HandleUnsubscribe(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.Unsubscribe(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNewsletterNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("newsletter subscription", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUnsubscribe -> h.svc.Unsubscribe -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.DeletedResponse{Deleted: true})
}
