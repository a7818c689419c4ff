package v1

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doarbem/donation-api/internal/api/handler/v1/response"
	"github.com/doarbem/donation-api/internal/api/middleware"
	"github.com/doarbem/donation-api/internal/pkg/jwthelper"
)

var errNotAuthenticated = errors.New("request is not authenticated")

func getClaimsFromContext(ctx *gin.Context) (*jwthelper.Claims, *response.Err) {
	v, ok := ctx.Get(middleware.CtxClaimsKey)
	if !ok {
		return nil, response.ErrUnauthorized(errNotAuthenticated)
	}

	claims, ok := v.(*jwthelper.Claims)
	if !ok {
		return nil, response.ErrUnauthorized(errNotAuthenticated)
	}

	return claims, nil
}

func parseIDParam(ctx *gin.Context, name string) (uint, error) {
	raw := ctx.Param(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%v (%v) is not a valid id", name, raw)
	}

	return uint(id), nil
}
