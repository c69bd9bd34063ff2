package handlers

import (
	"errors"
	"net/http"

	request "thirupugazh_pos/internal/adapter/http/dto/request"
	response "thirupugazh_pos/internal/adapter/http/dto/response"
	"thirupugazh_pos/internal/domain/cart"
	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase"
	"thirupugazh_pos/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidResumePayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

type ResumeHandler struct {
	usecase usecase.IResumeUseCase
	log     *zap.Logger
}

func NewResumeHandler(uc usecase.IResumeUseCase, log *zap.Logger) *ResumeHandler {
	return &ResumeHandler{usecase: uc, log: log.Named("resume.handler")}
}

// Resume brings a held bill back for editing. A name shared by several holds answers 409 with the
// candidates; the client repeats the call with hold_id or held_at.
func (h *ResumeHandler) Resume(c *gin.Context) {
	var payload request.ResumeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidResumePayload.HTTPStatus, errInvalidResumePayload.ToHTTPError())
		return
	}

	role := roleFrom(c)
	res, err := h.usecase.Resume(c.Request.Context(), usecase.ResumeRequest{
		CustomerName: payload.CustomerName,
		HoldID:       payload.HoldID,
		HeldAt:       payload.HeldAt,
		Role:         role,
	})
	if err != nil {
		h.log.Info("resume failed", zap.String("role", string(role)), zap.Error(err))
		var amb *usecase.AmbiguousHoldError
		if errors.As(err, &amb) {
			appErr := mapResumeError(err)
			c.JSON(appErr.HTTPStatus, response.AmbiguousHoldResponse{
				HTTPError:  appErr.ToHTTPError(),
				Candidates: response.FromHolds(amb.Candidates),
			})
			return
		}
		appErr := mapResumeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	priced := entities.PricedBill{Bill: res.Bill, Totals: cart.ComputeTotal(res.Bill)}
	c.JSON(http.StatusOK, response.FromResume(priced, res.Hold, res.OverrideUsed))
}

// ListEvents returns the resume audit trail of one hold.
func (h *ResumeHandler) ListEvents(c *gin.Context) {
	events, err := h.usecase.ListResumeEvents(c.Request.Context(), roleFrom(c), c.Param("hold_id"))
	if err != nil {
		appErr := mapResumeError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromResumeEvents(events))
}

func mapResumeError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrCustomerFieldRequired):
		return pkg.NewDomainErrorSimple("CUSTOMER_NAME_REQUIRED", "Customer name is required to resume a bill", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrHoldNotFound):
		return pkg.NewDomainErrorSimple("HOLD_NOT_FOUND", "No held bill for this customer", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAmbiguousHold):
		return pkg.NewDomainErrorSimple("AMBIGUOUS_HOLD", "Several bills are held under this name, choose one by hold_id or held_at", http.StatusConflict)
	case errors.Is(err, usecase.ErrAlreadyResumed):
		return pkg.NewDomainErrorSimple("ALREADY_RESUMED", "Bill was already resumed", http.StatusConflict)
	case errors.Is(err, usecase.ErrHoldExpired):
		return pkg.NewDomainErrorSimple("HOLD_EXPIRED", "Hold expired at the day cutover, ask an admin to override", http.StatusForbidden)
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Role not allowed for this operation", http.StatusForbidden)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
