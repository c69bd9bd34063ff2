package handlers

import (
	"errors"
	"net/http"

	request "thirupugazh_pos/internal/adapter/http/dto/request"
	response "thirupugazh_pos/internal/adapter/http/dto/response"
	"thirupugazh_pos/internal/usecase"
	"thirupugazh_pos/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// PaymentHandler handles bill finalization and ledger lookups.
type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
	log     *zap.Logger
}

func NewPaymentHandler(uc usecase.IPaymentUseCase, log *zap.Logger) *PaymentHandler {
	return &PaymentHandler{usecase: uc, log: log.Named("payment.handler")}
}

func (h *PaymentHandler) Finalize(c *gin.Context) {
	billID := c.Param("bill_id")
	var payload request.FinalizeRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}
	h.log.Info("finalize start", zap.String("bill_id", billID), zap.String("payment_mode", payload.PaymentMode))

	txn, err := h.usecase.Finalize(c.Request.Context(), usecase.FinalizeRequest{
		BillID:        billID,
		PaymentMode:   payload.PaymentMode,
		TransactionID: payload.TransactionID,
		CustomerName:  payload.CustomerName,
		CustomerPhone: payload.CustomerPhone,
		CashDetails:   payload.CashDetails,
	})
	if err != nil {
		h.log.Info("finalize failed", zap.String("bill_id", billID), zap.String("transaction_id", payload.TransactionID), zap.Error(err))
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	h.log.Info("finalize success", zap.String("bill_id", billID), zap.String("transaction_id", txn.TransactionID))

	c.JSON(http.StatusCreated, response.FromTransaction(txn))
}

func (h *PaymentHandler) GetTransaction(c *gin.Context) {
	txn, err := h.usecase.GetTransaction(c.Request.Context(), c.Param("transaction_id"))
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if txn.TransactionID == "" {
		appErr := pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(txn))
}

func mapPaymentError(err error) *pkg.AppError {
	if appErr, ok := mapBillStateError(err); ok {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrTransactionIDRequired):
		return pkg.NewDomainErrorSimple("TRANSACTION_ID_REQUIRED", "Transaction id is required", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateTransactionID):
		return pkg.NewDomainErrorSimple("DUPLICATE_TRANSACTION_ID", "Transaction id was already used, check the slip and retry", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidPaymentMode):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_MODE", "Payment mode is not enabled", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerFieldRequired):
		return pkg.NewDomainErrorSimple("CUSTOMER_FIELD_REQUIRED", "Customer name or phone is required for payment", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentNotVerified):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_VERIFIED", "Payment provider did not confirm this transaction", http.StatusPaymentRequired)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
