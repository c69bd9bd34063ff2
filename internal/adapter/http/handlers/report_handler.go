package handlers

import (
	"errors"
	"net/http"
	"strconv"

	response "thirupugazh_pos/internal/adapter/http/dto/response"
	"thirupugazh_pos/internal/usecase"
	"thirupugazh_pos/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidMonth = pkg.NewDomainErrorSimple("INVALID_MONTH", "year and month query parameters are required", http.StatusBadRequest)

type ReportHandler struct {
	usecase usecase.IReportUseCase
	log     *zap.Logger
}

func NewReportHandler(uc usecase.IReportUseCase, log *zap.Logger) *ReportHandler {
	return &ReportHandler{usecase: uc, log: log.Named("report.handler")}
}

// Daily aggregates one business day; ?window=YYYY-MM-DD, defaulting to the open window.
func (h *ReportHandler) Daily(c *gin.Context) {
	report, err := h.usecase.Aggregate(c.Request.Context(), roleFrom(c), c.Query("window"))
	if err != nil {
		h.log.Info("daily report failed", zap.String("window", c.Query("window")), zap.Error(err))
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReport(report))
}

func (h *ReportHandler) Monthly(c *gin.Context) {
	year, errYear := strconv.Atoi(c.Query("year"))
	month, errMonth := strconv.Atoi(c.Query("month"))
	if errYear != nil || errMonth != nil {
		c.JSON(errInvalidMonth.HTTPStatus, errInvalidMonth.ToHTTPError())
		return
	}

	report, err := h.usecase.AggregateMonth(c.Request.Context(), roleFrom(c), year, month)
	if err != nil {
		h.log.Info("monthly report failed", zap.Int("year", year), zap.Int("month", month), zap.Error(err))
		appErr := mapReportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromReport(report))
}

func mapReportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDayWindow):
		return pkg.NewDomainErrorSimple("INVALID_DAY_WINDOW", "Window must be a date formatted YYYY-MM-DD", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Role not allowed for this operation", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
