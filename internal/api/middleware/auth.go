package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/doarbem/donation-api/internal/api/handler/v1/response"
	"github.com/doarbem/donation-api/internal/pkg/jwthelper"
)

// CtxClaimsKey is where BearerAuth stores the parsed token claims.
const CtxClaimsKey = "authClaims"

var (
	errMissingToken = errors.New("missing bearer token")
	errInvalidToken = errors.New("invalid or expired token")
)

func BearerAuth(signingKey string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		claims, err := jwthelper.ParseToken([]byte(signingKey), strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			response.RenderErr(ctx, response.ErrUnauthorized(errInvalidToken))
			return
		}

		ctx.Set(CtxClaimsKey, claims)
		ctx.Next()
	}
}

// RequireRole guards a route group. It must run after BearerAuth.
func RequireRole(role string) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		v, ok := ctx.Get(CtxClaimsKey)
		if !ok {
			response.RenderErr(ctx, response.ErrUnauthorized(errMissingToken))
			return
		}

		claims, ok := v.(*jwthelper.Claims)
		if !ok {
			response.RenderErr(ctx, response.ErrUnauthorized(errInvalidToken))
			return
		}

		if claims.Role != role {
			response.RenderErr(ctx, response.ErrPermissionDenied(fmt.Errorf("role %q is not allowed here", claims.Role)))
			return
		}

		ctx.Next()
	}
}
