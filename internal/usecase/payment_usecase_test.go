package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"thirupugazh_pos/internal/adapter/persistence/repository"
	"thirupugazh_pos/internal/clock"
	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase/interfaces"
	mock_interfaces "thirupugazh_pos/internal/usecase/interfaces/mocks"

	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestPaymentUseCase_Validations(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, at(12, 0))
	b := f.draft(t)

	cases := []struct {
		name string
		req  FinalizeRequest
		want error
	}{
		{"transaction id required", FinalizeRequest{BillID: b.ID, PaymentMode: "cash", CustomerPhone: "999"}, ErrTransactionIDRequired},
		{"invalid payment mode", FinalizeRequest{BillID: b.ID, PaymentMode: "cheque", TransactionID: "T1", CustomerPhone: "999"}, ErrInvalidPaymentMode},
		{"phone required", FinalizeRequest{BillID: b.ID, PaymentMode: "cash", TransactionID: "T1"}, ErrCustomerFieldRequired},
		{"unknown bill", FinalizeRequest{BillID: "missing", PaymentMode: "cash", TransactionID: "T1", CustomerPhone: "999"}, ErrBillNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := f.payment.Finalize(ctx, tc.req); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestPaymentUseCase_Finalize(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, at(16, 0))
	b := f.draft(t)
	if _, err := f.cart.ApplyDiscount(ctx, b.ID, decimal.NewFromInt(10)); err != nil {
		t.Fatalf("discount: %v", err)
	}

	txn, err := f.payment.Finalize(ctx, FinalizeRequest{
		BillID:        b.ID,
		PaymentMode:   " UPI ",
		TransactionID: " UPI-1 ",
		CustomerName:  "Alice",
		CustomerPhone: "98400 00000",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txn.TransactionID != "UPI-1" || txn.PaymentMode != entities.PaymentModeUPI {
		t.Fatalf("unexpected transaction %+v", txn)
	}
	if txn.SubtotalCents != 1300 || txn.DiscountCents != 130 || txn.FinalTotalCents != 1170 {
		t.Fatalf("unexpected amounts %+v", txn)
	}
	if txn.DayWindowID != "2026-10-17" || !txn.ClosedAt.Equal(at(16, 0)) {
		t.Fatalf("unexpected timing %+v", txn)
	}

	stored, _ := f.store.GetBill(ctx, b.ID)
	if stored.Status != entities.BillStatusPaid {
		t.Fatalf("expected paid bill, got %s", stored.Status)
	}

	t.Run("paid is terminal", func(t *testing.T) {
		if _, err := f.cart.AddItem(ctx, b.ID, "burger", 1); !errors.Is(err, ErrInvalidBillStatus) {
			t.Fatalf("add: expected ErrInvalidBillStatus, got %v", err)
		}
		if _, err := f.payment.Finalize(ctx, FinalizeRequest{BillID: b.ID, PaymentMode: "cash", TransactionID: "T-other", CustomerPhone: "1"}); !errors.Is(err, ErrInvalidBillStatus) {
			t.Fatalf("finalize: expected ErrInvalidBillStatus, got %v", err)
		}
	})
}

func TestPaymentUseCase_HeldBillMustBeResumedFirst(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, at(12, 0))
	b, h := f.held(t, "Alice")

	req := FinalizeRequest{BillID: b.ID, PaymentMode: "card", TransactionID: "CARD-1", CustomerPhone: "999"}
	if _, err := f.payment.Finalize(ctx, req); !errors.Is(err, ErrInvalidBillStatus) {
		t.Fatalf("expected ErrInvalidBillStatus, got %v", err)
	}

	if _, err := f.resume.Resume(ctx, ResumeRequest{CustomerName: "Alice", Role: entities.RoleStaff}); err != nil {
		t.Fatalf("resume: %v", err)
	}
	txn, err := f.payment.Finalize(ctx, req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if txn.CustomerName != "Alice" {
		t.Fatalf("expected customer name from the bill, got %q", txn.CustomerName)
	}
	if got, _ := f.store.GetHold(ctx, h.ID); got.ID != "" {
		t.Fatalf("no hold may survive payment")
	}
}

func TestPaymentUseCase_DuplicateTransactionID(t *testing.T) {
	ctx := context.Background()

	t.Run("sequential", func(t *testing.T) {
		f := newFixture(t, at(12, 0))
		first := f.draft(t)
		second := f.draft(t)

		if _, err := f.payment.Finalize(ctx, FinalizeRequest{BillID: first.ID, PaymentMode: "cash", TransactionID: "T1", CustomerPhone: "1"}); err != nil {
			t.Fatalf("first: %v", err)
		}
		for _, billID := range []string{first.ID, second.ID} {
			if _, err := f.payment.Finalize(ctx, FinalizeRequest{BillID: billID, PaymentMode: "cash", TransactionID: "T1", CustomerPhone: "1"}); !errors.Is(err, ErrDuplicateTransactionID) {
				t.Fatalf("bill %s: expected ErrDuplicateTransactionID, got %v", billID, err)
			}
		}

		txns, _ := f.store.ListTransactionsByDayWindow(ctx, f.calendar.WindowOf(at(12, 0)))
		if len(txns) != 1 || txns[0].BillID != first.ID {
			t.Fatalf("expected exactly one transaction, got %+v", txns)
		}
		stored, _ := f.store.GetBill(ctx, second.ID)
		if stored.Status != entities.BillStatusDraft {
			t.Fatalf("second bill must stay draft, got %s", stored.Status)
		}
	})

	t.Run("concurrent", func(t *testing.T) {
		f := newFixture(t, at(12, 0))
		bills := []entities.Bill{f.draft(t), f.draft(t), f.draft(t), f.draft(t)}

		var wg sync.WaitGroup
		results := make([]error, len(bills))
		start := make(chan struct{})
		for i, b := range bills {
			wg.Add(1)
			go func(i int, billID string) {
				defer wg.Done()
				<-start
				_, results[i] = f.payment.Finalize(ctx, FinalizeRequest{BillID: billID, PaymentMode: "card", TransactionID: "SAME", CustomerPhone: "1"})
			}(i, b.ID)
		}
		close(start)
		wg.Wait()

		ok := 0
		for _, err := range results {
			switch {
			case err == nil:
				ok++
			case errors.Is(err, ErrDuplicateTransactionID):
			default:
				t.Fatalf("unexpected error %v", err)
			}
		}
		if ok != 1 {
			t.Fatalf("expected exactly one success, got %d", ok)
		}
		txns, _ := f.store.ListTransactionsByDayWindow(ctx, f.calendar.WindowOf(at(12, 0)))
		if len(txns) != 1 {
			t.Fatalf("expected exactly one transaction, got %d", len(txns))
		}
	})
}

func TestPaymentUseCase_Verification(t *testing.T) {
	ctx := context.Background()
	policy := entities.DefaultPaymentPolicy()
	policy.VerifyModes = []entities.PaymentMode{entities.PaymentModeUPI}

	setup := func(t *testing.T) (*PaymentUseCase, *mock_interfaces.MockIPaymentVerifier, *repository.MemoryStore, entities.Bill) {
		ctrl := gomock.NewController(t)
		t.Cleanup(ctrl.Finish)
		verifier := mock_interfaces.NewMockIPaymentVerifier(ctrl)
		store := repository.NewMemoryStore()
		bill := entities.Bill{
			ID:     "b1",
			Status: entities.BillStatusDraft,
			Items:  []entities.LineItem{{MenuItemID: "burger", UnitPriceCents: 500, Quantity: 2}},
		}
		if err := store.SaveBill(ctx, bill); err != nil {
			t.Fatalf("seed: %v", err)
		}
		uc := NewPaymentUseCase(store, store, verifier, FixedPaymentPolicy(policy), entities.NewDayWindowCalendar(time.UTC, 15), clock.NewFakeClock(at(12, 0)), nil, zap.NewNop())
		return uc, verifier, store, bill
	}

	t.Run("approved payment stores provider payload", func(t *testing.T) {
		uc, verifier, _, bill := setup(t)
		verifier.EXPECT().VerifyPayment(gomock.Any(), "123", int64(1000)).Return(true, "approved", json.RawMessage(`{"id":123}`), nil)

		txn, err := uc.Finalize(ctx, FinalizeRequest{BillID: bill.ID, PaymentMode: "upi", TransactionID: "123", CustomerPhone: "1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if txn.ProviderStatus != "approved" || string(txn.ProviderPayload) != `{"id":123}` {
			t.Fatalf("unexpected provider data %+v", txn)
		}
	})

	t.Run("pending payment is rejected", func(t *testing.T) {
		uc, verifier, store, bill := setup(t)
		verifier.EXPECT().VerifyPayment(gomock.Any(), "123", int64(1000)).Return(false, "pending", nil, nil)

		if _, err := uc.Finalize(ctx, FinalizeRequest{BillID: bill.ID, PaymentMode: "upi", TransactionID: "123", CustomerPhone: "1"}); !errors.Is(err, ErrPaymentNotVerified) {
			t.Fatalf("expected ErrPaymentNotVerified, got %v", err)
		}
		if got, _ := store.GetTransaction(ctx, "123"); got.TransactionID != "" {
			t.Fatalf("no transaction may be recorded")
		}
	})

	t.Run("no verifier configured", func(t *testing.T) {
		_, _, store, bill := setup(t)
		uc := NewPaymentUseCase(store, store, nil, FixedPaymentPolicy(policy), entities.NewDayWindowCalendar(time.UTC, 15), clock.NewFakeClock(at(12, 0)), nil, zap.NewNop())
		if _, err := uc.Finalize(ctx, FinalizeRequest{BillID: bill.ID, PaymentMode: "upi", TransactionID: "123", CustomerPhone: "1"}); !errors.Is(err, ErrPaymentNotVerified) {
			t.Fatalf("expected ErrPaymentNotVerified, got %v", err)
		}
	})

	t.Run("cash skips verification", func(t *testing.T) {
		uc, _, _, bill := setup(t)
		if _, err := uc.Finalize(ctx, FinalizeRequest{BillID: bill.ID, PaymentMode: "cash", TransactionID: "CASH-1", CustomerPhone: "1", CashDetails: "2x500"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_LedgerConflictsAreMapped(t *testing.T) {
	ctx := context.Background()
	cases := []struct {
		name    string
		repoErr error
		want    error
	}{
		{"transaction inserted concurrently", interfaces.ErrTransactionExists, ErrDuplicateTransactionID},
		{"bill changed concurrently", interfaces.ErrBillStateConflict, ErrInvalidBillStatus},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			bills := mock_interfaces.NewMockIBillRepository(ctrl)
			ledger := mock_interfaces.NewMockIPaymentTransactionRepository(ctrl)
			uc := NewPaymentUseCase(bills, ledger, nil, FixedPaymentPolicy(entities.DefaultPaymentPolicy()), entities.NewDayWindowCalendar(time.UTC, 15), clock.NewFakeClock(at(12, 0)), nil, zap.NewNop())

			ledger.EXPECT().GetTransaction(gomock.Any(), "T1").Return(entities.PaymentTransaction{}, nil)
			bills.EXPECT().GetBill(gomock.Any(), "b1").Return(entities.Bill{
				ID:            "b1",
				Status:        entities.BillStatusDraft,
				CustomerPhone: "1",
				Items:         []entities.LineItem{{MenuItemID: "x", UnitPriceCents: 100, Quantity: 1}},
			}, nil)
			ledger.EXPECT().FinalizeBill(gomock.Any(), gomock.Any(), gomock.Any()).Return(tc.repoErr)

			if _, err := uc.Finalize(ctx, FinalizeRequest{BillID: "b1", PaymentMode: "cash", TransactionID: "T1"}); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
