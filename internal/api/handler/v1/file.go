package v1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doarbem/donation-api/internal/api/handler/v1/response"
	"github.com/doarbem/donation-api/internal/service"
	"github.com/doarbem/donation-api/internal/storage"
)

type FileService interface {
	Upload(ctx context.Context, filename, contentType string, data []byte) (service.UploadedFile, error)
	Fetch(ctx context.Context, key string) (service.SignedFileURL, error)
	Delete(ctx context.Context, key string) error
	Download(ctx context.Context, key string, expires int64, signature string) (storage.Object, []byte, error)
}

type FileHandler struct {
	svc FileService
}

func NewFileHandler(svc FileService) *FileHandler {
	return &FileHandler{svc: svc}
}

// HandleUpload godoc
// @Summary      Upload a file
// @Tags         files
// @Accept       multipart/form-data
// @Produce      json
// @Param        file formData file true "file to upload"
// @Success      201  {object}  service.UploadedFile
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /files [post]
// @Security BearerAuth
func (h *FileHandler) HandleUpload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		err = fmt.Errorf("v1.HandleUpload -> io.ReadAll -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	uploaded, err := h.svc.Upload(ctx.Request.Context(), fileHeader.Filename, contentType, data)
	if err != nil {
		if errors.Is(err, service.ErrEmptyFile) || errors.Is(err, service.ErrFileTooLarge) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleUpload -> h.svc.Upload -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusCreated, uploaded)
}

// HandleFetch godoc
// @Summary      Get a signed download URL for a stored file
// @Tags         files
// @Produce      json
// @Param        key  query     string true "object key"
// @Success      200  {object}  service.SignedFileURL
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /files [get]
// @Security BearerAuth
func (h *FileHandler) HandleFetch(ctx *gin.Context) {
	key := ctx.Query("key")
	if key == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("key is required")))
		return
	}

	signed, err := h.svc.Fetch(ctx.Request.Context(), key)
	if err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("file", "key", key))
			return
		}

		err = fmt.Errorf("v1.HandleFetch -> h.svc.Fetch -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, signed)
}

// HandleDelete godoc
// @Summary      Delete a stored file
// @Tags         files
// @Produce      json
// @Param        key  query     string true "object key"
// @Success      200  {object}  response.DeletedResponse
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /files [delete]
// @Security BearerAuth
func (h *FileHandler) HandleDelete(ctx *gin.Context) {
	key := ctx.Query("key")
	if key == "" {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("key is required")))
		return
	}

	if err := h.svc.Delete(ctx.Request.Context(), key); err != nil {
		if errors.Is(err, service.ErrFileNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("file", "key", key))
			return
		}

		err = fmt.Errorf("v1.HandleDelete -> h.svc.Delete -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, response.DeletedResponse{Deleted: true})
}

// HandleDownload godoc
// @Summary      Download a file through a signed URL
// @Tags         files
// @Produce      octet-stream
// @Param        key        query     string true "object key"
// @Param        expires    query     int    true "expiry unix timestamp"
// @Param        signature  query     string true "request signature"
// @Success      200  {file}    file
// @Failure      401  {object}  response.Err
// @Failure      404  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /files/download [get]
func (h *FileHandler) HandleDownload(ctx *gin.Context) {
	key := ctx.Query("key")
	signature := ctx.Query("signature")

	expires, err := strconv.ParseInt(ctx.Query("expires"), 10, 64)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(errors.New("expires must be a unix timestamp")))
		return
	}

	obj, data, err := h.svc.Download(ctx.Request.Context(), key, expires, signature)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			response.RenderErr(ctx, response.ErrUnauthorized(service.ErrInvalidSignature))
			return
		}
		if errors.Is(err, service.ErrFileNotFound) {
			response.RenderErr(ctx, response.ErrNotFound("file", "key", key))
			return
		}

		err = fmt.Errorf("v1.HandleDownload -> h.svc.Download -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.Data(http.StatusOK, obj.ContentType, data)
}
