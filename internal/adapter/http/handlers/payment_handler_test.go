package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"thirupugazh_pos/internal/adapter/http/dto/response"
	"thirupugazh_pos/internal/adapter/http/handlers/mocks"
	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newPaymentRouter(t *testing.T) (*gin.Engine, *mocks.MockIPaymentUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIPaymentUseCase(ctrl)
	h := NewPaymentHandler(uc, zap.NewNop())

	r := gin.New()
	r.POST("/v1/bills/:bill_id/payments", h.Finalize)
	r.GET("/v1/transactions/:transaction_id", h.GetTransaction)
	return r, uc
}

func TestPaymentHandler_Finalize(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("payment mode required", func(t *testing.T) {
		r, _ := newPaymentRouter(t)
		w := doJSON(r, http.MethodPost, "/v1/bills/bill-1/payments", `{"transaction_id":"T1"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		r, uc := newPaymentRouter(t)
		closedAt := time.Date(2026, 10, 17, 16, 0, 0, 0, time.UTC)
		uc.EXPECT().Finalize(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, req usecase.FinalizeRequest) (entities.PaymentTransaction, error) {
			want := usecase.FinalizeRequest{BillID: "bill-1", PaymentMode: "cash", TransactionID: "T1", CustomerPhone: "9876543210", CashDetails: "500 note"}
			if req != want {
				t.Fatalf("unexpected request %+v", req)
			}
			return entities.PaymentTransaction{
				TransactionID:   "T1",
				BillID:          "bill-1",
				PaymentMode:     entities.PaymentModeCash,
				SubtotalCents:   1300,
				DiscountCents:   130,
				FinalTotalCents: 1170,
				DayWindowID:     "2026-10-17",
				ClosedAt:        closedAt,
			}, nil
		})

		w := doJSON(r, http.MethodPost, "/v1/bills/bill-1/payments",
			`{"payment_mode":"cash","transaction_id":"T1","customer_phone":"9876543210","cash_details":"500 note"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body response.TransactionResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.FinalTotal != "11.70" || body.DayWindowID != "2026-10-17" || !body.ClosedAt.Equal(closedAt) {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"duplicate transaction id", usecase.ErrDuplicateTransactionID, http.StatusConflict, "DUPLICATE_TRANSACTION_ID"},
		{"missing transaction id", usecase.ErrTransactionIDRequired, http.StatusBadRequest, "TRANSACTION_ID_REQUIRED"},
		{"mode disabled", usecase.ErrInvalidPaymentMode, http.StatusBadRequest, "INVALID_PAYMENT_MODE"},
		{"missing phone", usecase.ErrCustomerFieldRequired, http.StatusBadRequest, "CUSTOMER_FIELD_REQUIRED"},
		{"provider rejected", usecase.ErrPaymentNotVerified, http.StatusPaymentRequired, "PAYMENT_NOT_VERIFIED"},
		{"held bill", usecase.ErrInvalidBillStatus, http.StatusConflict, "INVALID_BILL_STATUS"},
		{"empty bill", usecase.ErrEmptyBill, http.StatusUnprocessableEntity, "EMPTY_BILL"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newPaymentRouter(t)
			uc.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(entities.PaymentTransaction{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/bills/bill-1/payments", `{"payment_mode":"upi","transaction_id":"T1"}`)
			if w.Code != tc.status || decodeError(t, w).Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, w.Code, w.Body.String())
			}
		})
	}
}

func TestPaymentHandler_GetTransaction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r, uc := newPaymentRouter(t)
	uc.EXPECT().GetTransaction(gomock.Any(), "T1").Return(entities.PaymentTransaction{TransactionID: "T1", PaymentMode: entities.PaymentModeCard}, nil)
	uc.EXPECT().GetTransaction(gomock.Any(), "T2").Return(entities.PaymentTransaction{}, nil)

	if w := doJSON(r, http.MethodGet, "/v1/transactions/T1", ""); w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	w := doJSON(r, http.MethodGet, "/v1/transactions/T2", "")
	if w.Code != http.StatusNotFound || decodeError(t, w).Code != "TRANSACTION_NOT_FOUND" {
		t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
	}
}
