package v1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/doarbem/donation-api/internal/api/handler/v1/request"
	"github.com/doarbem/donation-api/internal/api/handler/v1/response"
)

type MailService interface {
	Send(ctx context.Context, to, subject, body string) (string, error)
}

type MailHandler struct {
	svc MailService
}

func NewMailHandler(svc MailService) *MailHandler {
	return &MailHandler{svc: svc}
}

// HandleSendMail godoc
// @Summary      Queue an outbound email
// @Tags         mail
// @Produce      json
// @Param        request   body      request.SendMailRequest true "request body"
// @Success      202      {object}   response.MailQueuedResponse
// @Failure      400      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /mail [post]
// @Security BearerAuth
func (h *MailHandler) HandleSendMail(ctx *gin.Context) {
	var req request.SendMailRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	id, err := h.svc.Send(ctx.Request.Context(), req.To, req.Subject, req.Body)
	if err != nil {
		err = fmt.Errorf("v1.HandleSendMail -> h.svc.Send -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusAccepted, response.MailQueuedResponse{ID: id, Queued: true})
}
