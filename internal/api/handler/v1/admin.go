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

type AdminService interface {
	CreateAdmin(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	GetAdmin(ctx context.Context, id uint) (domain.Admin, error)
	GetAdminByUserID(ctx context.Context, userID uint) (domain.Admin, error)
	ListAdmins(ctx context.Context, query domain.PageQuery) (domain.Page[domain.Admin], error)
	UpdateAdmin(ctx context.Context, admin domain.Admin) (domain.Admin, error)
	DeleteAdmin(ctx context.Context, id uint) error
}

type AdminHandler struct {
	svc AdminService
}

func NewAdminHandler(svc AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// HandleCreateAdmin godoc
// @Summary      Create an admin account
// @Tags         admins
// @Produce      json
// @Param        request   body      request.CreateAdminRequest true "request body"
// @Success      201      {object}   domain.Admin
// @Failure      400      {object}   response.Err
// @Failure      409      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admins [post]
// @Security BearerAuth
func (h *AdminHandler) HandleCreateAdmin(ctx *gin.Context) {
	var req request.CreateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	admin, err := h.svc.CreateAdmin(ctx.Request.Context(), domain.Admin{
		User: domain.User{
			FullName: req.FullName,
			Email:    req.Email,
			Password: req.Password,
			Role:     domain.RoleAdmin,
		},
	})
	if err != nil {
		if errors.Is(err, service.ErrUserEmailExists) {
			response.RenderErr(ctx, response.ErrConflict(service.ErrUserEmailExists))
			return
		}

		err = fmt.Errorf("v1.HandleCreateAdmin -> h.svc.CreateAdmin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, admin)
}

// HandleGetAdmin godoc
// @Summary      Get one admin
// @Tags         admins
// @Produce      json
// @Param        id   path      int  true "admin ID"
// @Success      200  {object}  domain.Admin
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admins/{id} [get]
// @Security BearerAuth
func (h *AdminHandler) HandleGetAdmin(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	admin, err := h.svc.GetAdmin(ctx.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("admin", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleGetAdmin -> h.svc.GetAdmin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, admin)
}

// HandleGetMe godoc
// @Summary      Get the calling admin's profile
// @Tags         admins
// @Produce      json
// @Success      200  {object}  domain.Admin
// @Failure      401  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admins/me [get]
// @Security BearerAuth
func (h *AdminHandler) HandleGetMe(ctx *gin.Context) {
	claims, respErr := getClaimsFromContext(ctx)
	if respErr != nil {
		response.RenderErr(ctx, respErr)
		return
	}

	admin, err := h.svc.GetAdminByUserID(ctx.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("admin", "userID", claims.UserID))
			return
		}

		err = fmt.Errorf("v1.HandleGetMe -> h.svc.GetAdminByUserID -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, admin)
}

// HandleListAdmins godoc
// @Summary      List admins
// @Tags         admins
// @Produce      json
// @Param        page       query     int false "page number"
// @Param        page_size  query     int false "page size"
// @Success      200  {object}  domain.Page[domain.Admin]
// @Failure      500  {object}  response.Err
// @Router       /admins [get]
// @Security BearerAuth
func (h *AdminHandler) HandleListAdmins(ctx *gin.Context) {
	page, err := h.svc.ListAdmins(ctx.Request.Context(), request.ParsePageQuery(ctx))
	if err != nil {
		err = fmt.Errorf("v1.HandleListAdmins -> h.svc.ListAdmins -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, page)
}

// HandleUpdateAdmin godoc
// @Summary      Update an admin
// @Tags         admins
// @Produce      json
// @Param        id        path      int true "admin ID"
// @Param        request   body      request.UpdateAdminRequest true "request body"
// @Success      200      {object}   domain.Admin
// @Failure      400      {object}   response.Err
// @Failure      404      {object}   response.Err
// @Failure      500      {object}   response.Err
// @Router       /admins/{id} [put]
// @Security BearerAuth
func (h *AdminHandler) HandleUpdateAdmin(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	var req request.UpdateAdminRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := req.Validate(); err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	admin, err := h.svc.UpdateAdmin(ctx.Request.Context(), domain.Admin{
		User: domain.User{
			FullName: req.FullName,
			Email:    req.Email,
		},
		ID:     id,
		IsRoot: req.IsRoot,
	})
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("admin", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleUpdateAdmin -> h.svc.UpdateAdmin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, admin)
}

// HandleDeleteAdmin godoc
// @Summary      Delete an admin
// @Tags         admins
// @Produce      json
// @Param        id   path      int true "admin ID"
// @Success      200  {object}  response.DeletedResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /admins/{id} [delete]
// @Security BearerAuth
func (h *AdminHandler) HandleDeleteAdmin(ctx *gin.Context) {
	id, err := parseIDParam(ctx, "id")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	if err := h.svc.DeleteAdmin(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("admin", "ID", id))
			return
		}

		err = fmt.Errorf("v1.HandleDeleteAdmin -> h.svc.DeleteAdmin -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.DeletedResponse{Deleted: true})
}
