package v1

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/doarbem/donation-api/internal/api/handler/v1/response"
	"github.com/doarbem/donation-api/internal/domain"
	"github.com/doarbem/donation-api/internal/service"
)

const metricsDateLayout = "2006-01-02"

var (
	errInvalidDays      = errors.New("days must be an integer")
	errInvalidRangeDate = errors.New("from and to must be formatted as YYYY-MM-DD")
)

type MetricsService interface {
	Summary(ctx context.Context, days int) (domain.DashboardSummary, error)
	DonorDistribution(ctx context.Context, from, to time.Time) (domain.DonorDistribution, error)
	DonationsByPaymentMethod(ctx context.Context, from, to time.Time) ([]domain.PaymentMethodTotal, error)
	RaisedByPeriod(ctx context.Context, from, to time.Time, period string) ([]domain.PeriodBucket, error)
}

type MetricsHandler struct {
	svc MetricsService
}

func NewMetricsHandler(svc MetricsService) *MetricsHandler {
	return &MetricsHandler{svc: svc}
}

func parseDaysQuery(ctx *gin.Context) (int, error) {
	days, err := strconv.Atoi(ctx.DefaultQuery("days", "30"))
	if err != nil {
		return 0, errInvalidDays
	}

	return days, nil
}

// parseRangeQuery resolves the date range for the distribution endpoints:
// an explicit from/to pair when given, otherwise the rolling days window
// ending now.
func parseRangeQuery(ctx *gin.Context) (time.Time, time.Time, error) {
	fromStr := ctx.Query("from")
	toStr := ctx.Query("to")
	if fromStr != "" || toStr != "" {
		from, err := time.Parse(metricsDateLayout, fromStr)
		if err != nil {
			return time.Time{}, time.Time{}, errInvalidRangeDate
		}

		to, err := time.Parse(metricsDateLayout, toStr)
		if err != nil {
			return time.Time{}, time.Time{}, errInvalidRangeDate
		}

		return from, to, nil
	}

	days, err := parseDaysQuery(ctx)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if days != 30 && days != 365 {
		return time.Time{}, time.Time{}, service.ErrInvalidMetricsWindow
	}

	to := time.Now()

	return to.AddDate(0, 0, -days), to, nil
}

// HandleSummary godoc
// @Summary      Dashboard totals for a rolling window
// @Tags         metrics
// @Produce      json
// @Param        days  query     int false "window in days (30 or 365)"
// @Success      200  {object}  domain.DashboardSummary
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /metrics/summary [get]
// @Security BearerAuth
func (h *MetricsHandler) HandleSummary(ctx *gin.Context) {
	days, err := parseDaysQuery(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	summary, err := h.svc.Summary(ctx.Request.Context(), days)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMetricsWindow) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleSummary -> h.svc.Summary -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, summary)
}

// HandleDonorDistribution godoc
// @Summary      Donor counts by gender and age bracket
// @Tags         metrics
// @Produce      json
// @Param        from  query     string false "range start (YYYY-MM-DD)"
// @Param        to    query     string false "range end (YYYY-MM-DD)"
// @Param        days  query     int    false "window in days (30 or 365) when from/to are omitted"
// @Success      200  {object}  domain.DonorDistribution
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /metrics/donors [get]
// @Security BearerAuth
func (h *MetricsHandler) HandleDonorDistribution(ctx *gin.Context) {
	from, to, err := parseRangeQuery(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	dist, err := h.svc.DonorDistribution(ctx.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMetricsRange) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleDonorDistribution -> h.svc.DonorDistribution -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, dist)
}

// HandlePaymentMethods godoc
// @Summary      Donation totals by payment method
// @Tags         metrics
// @Produce      json
// @Param        from  query     string false "range start (YYYY-MM-DD)"
// @Param        to    query     string false "range end (YYYY-MM-DD)"
// @Param        days  query     int    false "window in days (30 or 365) when from/to are omitted"
// @Success      200  {array}   domain.PaymentMethodTotal
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /metrics/payment-methods [get]
// @Security BearerAuth
func (h *MetricsHandler) HandlePaymentMethods(ctx *gin.Context) {
	from, to, err := parseRangeQuery(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	totals, err := h.svc.DonationsByPaymentMethod(ctx.Request.Context(), from, to)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMetricsRange) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandlePaymentMethods -> h.svc.DonationsByPaymentMethod -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, totals)
}

// HandleRaisedByPeriod godoc
// @Summary      Amount raised bucketed by day, week or month
// @Tags         metrics
// @Produce      json
// @Param        from    query     string false "range start (YYYY-MM-DD)"
// @Param        to      query     string false "range end (YYYY-MM-DD)"
// @Param        days    query     int    false "window in days (30 or 365) when from/to are omitted"
// @Param        period  query     string false "bucket size: day, week or month"
// @Success      200  {array}   domain.PeriodBucket
// @Failure      400  {object}  response.Err
// @Failure      500  {object}  response.Err
// @Router       /metrics/raised [get]
// @Security BearerAuth
func (h *MetricsHandler) HandleRaisedByPeriod(ctx *gin.Context) {
	from, to, err := parseRangeQuery(ctx)
	if err != nil {
		response.RenderErr(ctx, response.ErrBadRequest(err))
		return
	}

	period := ctx.DefaultQuery("period", "day")

	buckets, err := h.svc.RaisedByPeriod(ctx.Request.Context(), from, to, period)
	if err != nil {
		if errors.Is(err, service.ErrInvalidMetricsRange) || errors.Is(err, service.ErrInvalidMetricsPeriod) {
			response.RenderErr(ctx, response.ErrBadRequest(err))
			return
		}

		err = fmt.Errorf("v1.HandleRaisedByPeriod -> h.svc.RaisedByPeriod -> %w", err)
		response.RenderErr(ctx, response.ErrInternalServerError(err))
		return
	}

	ctx.JSON(http.StatusOK, buckets)
}
