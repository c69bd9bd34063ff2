package handlers

import (
	"errors"
	"net/http"

	request "thirupugazh_pos/internal/adapter/http/dto/request"
	response "thirupugazh_pos/internal/adapter/http/dto/response"
	"thirupugazh_pos/internal/clock"
	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase"
	"thirupugazh_pos/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidHoldPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

type HoldHandler struct {
	usecase usecase.IHoldUseCase
	clock   clock.Clock
	log     *zap.Logger
}

func NewHoldHandler(uc usecase.IHoldUseCase, clk clock.Clock, log *zap.Logger) *HoldHandler {
	return &HoldHandler{usecase: uc, clock: clk, log: log.Named("hold.handler")}
}

// Hold parks a draft bill under the customer's name.
func (h *HoldHandler) Hold(c *gin.Context) {
	billID := c.Param("bill_id")
	var payload request.HoldRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidHoldPayload.HTTPStatus, errInvalidHoldPayload.ToHTTPError())
		return
	}

	hold, err := h.usecase.Hold(c.Request.Context(), billID, payload.CustomerName)
	if err != nil {
		h.log.Info("hold failed", zap.String("bill_id", billID), zap.Error(err))
		appErr := mapHoldError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusCreated, response.FromHold(hold))
}

// ListHeld returns the holds visible to the caller's role, oldest first.
func (h *HoldHandler) ListHeld(c *gin.Context) {
	role := roleFrom(c)
	var held []entities.HeldBill
	for hb, err := range h.usecase.ListHeld(c.Request.Context(), role) {
		if err != nil {
			h.log.Error("list held failed", zap.String("role", string(role)), zap.Error(err))
			appErr := mapHoldError(err)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		held = append(held, hb)
	}
	c.JSON(http.StatusOK, response.FromHeldBills(h.usecase.DayWindowOf(h.clock.Now()), held))
}

func mapHoldError(err error) *pkg.AppError {
	if appErr, ok := mapBillStateError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrCustomerFieldRequired):
		return pkg.NewDomainErrorSimple("CUSTOMER_NAME_REQUIRED", "Customer name is required to hold a bill", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
