package request

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/doarbem/donation-api/internal/domain"
)

// ParsePageQuery reads ?page= and ?page_size= with defaults. Out-of-range
// values are clamped by Normalize downstream.
func ParsePageQuery(ctx *gin.Context) domain.PageQuery {
	page, err := strconv.Atoi(ctx.DefaultQuery("page", strconv.Itoa(domain.DefaultPage)))
	if err != nil {
		page = domain.DefaultPage
	}

	pageSize, err := strconv.Atoi(ctx.DefaultQuery("page_size", strconv.Itoa(domain.DefaultPageSize)))
	if err != nil {
		pageSize = domain.DefaultPageSize
	}

	return domain.PageQuery{Page: page, PageSize: pageSize}
}
