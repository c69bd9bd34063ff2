package handlers

import (
	"encoding/json"
	"errors"
	"iter"
	"net/http"
	"testing"
	"time"

	"thirupugazh_pos/internal/adapter/http/dto/response"
	"thirupugazh_pos/internal/adapter/http/handlers/mocks"
	"thirupugazh_pos/internal/clock"
	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func heldSeq(items []entities.HeldBill, err error) iter.Seq2[entities.HeldBill, error] {
	return func(yield func(entities.HeldBill, error) bool) {
		for _, hb := range items {
			if !yield(hb, nil) {
				return
			}
		}
		if err != nil {
			yield(entities.HeldBill{}, err)
		}
	}
}

func newHoldRouter(t *testing.T, now time.Time) (*gin.Engine, *mocks.MockIHoldUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	uc := mocks.NewMockIHoldUseCase(ctrl)
	h := NewHoldHandler(uc, clock.NewFakeClock(now), zap.NewNop())

	r := gin.New()
	r.Use(RoleMiddleware())
	r.POST("/v1/bills/:bill_id/hold", h.Hold)
	r.GET("/v1/holds", h.ListHeld)
	return r, uc
}

func TestHoldHandler_Hold(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)

	t.Run("success", func(t *testing.T) {
		r, uc := newHoldRouter(t, now)
		uc.EXPECT().Hold(gomock.Any(), "bill-1", "Alice").Return(entities.HoldRecord{
			ID: "hold-1", BillID: "bill-1", CustomerName: "Alice", CustomerKey: "alice", HeldAt: now, DayWindowID: "2026-10-16",
		}, nil)

		w := doJSON(r, http.MethodPost, "/v1/bills/bill-1/hold", `{"customer_name":"Alice"}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body response.HoldResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.ID != "hold-1" || body.DayWindowID != "2026-10-16" {
			t.Fatalf("unexpected body %+v", body)
		}
	})

	cases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"missing name", usecase.ErrCustomerFieldRequired, http.StatusBadRequest, "CUSTOMER_NAME_REQUIRED"},
		{"not draft", usecase.ErrInvalidBillStatus, http.StatusConflict, "INVALID_BILL_STATUS"},
		{"empty", usecase.ErrEmptyBill, http.StatusUnprocessableEntity, "EMPTY_BILL"},
		{"unknown bill", usecase.ErrBillNotFound, http.StatusNotFound, "BILL_NOT_FOUND"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, uc := newHoldRouter(t, now)
			uc.EXPECT().Hold(gomock.Any(), "bill-1", "").Return(entities.HoldRecord{}, tc.err)

			w := doJSON(r, http.MethodPost, "/v1/bills/bill-1/hold", `{}`)
			if w.Code != tc.status || decodeError(t, w).Code != tc.code {
				t.Fatalf("expected %d %s, got %d %s", tc.status, tc.code, w.Code, w.Body.String())
			}
		})
	}
}

func TestHoldHandler_ListHeld(t *testing.T) {
	gin.SetMode(gin.TestMode)
	now := time.Date(2026, 10, 17, 16, 0, 0, 0, time.UTC)

	t.Run("passes the role and flags expiry", func(t *testing.T) {
		r, uc := newHoldRouter(t, now)
		held := []entities.HeldBill{
			{HoldRecord: entities.HoldRecord{ID: "h1", CustomerName: "Alice", DayWindowID: "2026-10-16"}, IsExpired: true},
			{HoldRecord: entities.HoldRecord{ID: "h2", CustomerName: "Bob", DayWindowID: "2026-10-17"}},
		}
		uc.EXPECT().ListHeld(gomock.Any(), entities.RoleAdmin).Return(heldSeq(held, nil))
		uc.EXPECT().DayWindowOf(now).Return(entities.DayWindowID("2026-10-17"))

		w := doJSON(r, http.MethodGet, "/v1/holds", "", HeaderRole, "Admin")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.HeldBillsResponse
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.DayWindowID != "2026-10-17" || len(body.Holds) != 2 || !body.Holds[0].IsExpired || body.Holds[1].IsExpired {
			t.Fatalf("unexpected body %s", w.Body.String())
		}
	})

	t.Run("no holds renders an empty list", func(t *testing.T) {
		r, uc := newHoldRouter(t, now)
		uc.EXPECT().ListHeld(gomock.Any(), entities.Role("")).Return(heldSeq(nil, nil))
		uc.EXPECT().DayWindowOf(gomock.Any()).Return(entities.DayWindowID("2026-10-17"))

		w := doJSON(r, http.MethodGet, "/v1/holds", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if holds, ok := body["holds"].([]any); !ok || len(holds) != 0 {
			t.Fatalf("expected empty holds array, got %s", w.Body.String())
		}
	})

	t.Run("store failure mid listing", func(t *testing.T) {
		r, uc := newHoldRouter(t, now)
		held := []entities.HeldBill{{HoldRecord: entities.HoldRecord{ID: "h1"}}}
		uc.EXPECT().ListHeld(gomock.Any(), entities.RoleStaff).Return(heldSeq(held, errors.New("scan failed")))

		w := doJSON(r, http.MethodGet, "/v1/holds", "", HeaderRole, "staff")
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("unknown role header", func(t *testing.T) {
		r, _ := newHoldRouter(t, now)
		w := doJSON(r, http.MethodGet, "/v1/holds", "", HeaderRole, "cashier")
		if w.Code != http.StatusBadRequest || decodeError(t, w).Code != "INVALID_ROLE" {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})
}
