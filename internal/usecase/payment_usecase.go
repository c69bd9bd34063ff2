package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"thirupugazh_pos/internal/clock"
	"thirupugazh_pos/internal/domain/cart"
	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrTransactionIDRequired  = errors.New("transaction id required")
	ErrDuplicateTransactionID = errors.New("transaction id already used")
	ErrInvalidPaymentMode     = errors.New("invalid payment mode")
	ErrPaymentNotVerified     = errors.New("payment not approved by provider")
)

// FinalizeRequest carries the mandatory payment metadata. Empty customer fields fall back to the
// values already on the bill.
type FinalizeRequest struct {
	BillID        string
	PaymentMode   string
	TransactionID string
	CustomerName  string
	CustomerPhone string
	CashDetails   string
}

// IPaymentUseCase closes bills into immutable payment transactions.
//
// Requested behavior:
//   - transaction ids are unique across the ledger;
//   - paid is terminal, the bill cannot be held or resumed afterwards;
//   - any hold still pointing at the bill is removed in the same step.
type IPaymentUseCase interface {
	Finalize(ctx context.Context, req FinalizeRequest) (entities.PaymentTransaction, error)
	GetTransaction(ctx context.Context, transactionID string) (entities.PaymentTransaction, error)
}

type PaymentUseCase struct {
	bills    interfaces.IBillRepository
	ledger   interfaces.IPaymentTransactionRepository
	verifier interfaces.IPaymentVerifier
	policy   interfaces.IPaymentPolicyProvider
	calendar entities.DayWindowCalendar
	clock    clock.Clock
	metrics  interfaces.IBillingMetrics
	log      *zap.Logger
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	bills interfaces.IBillRepository,
	ledger interfaces.IPaymentTransactionRepository,
	verifier interfaces.IPaymentVerifier,
	policy interfaces.IPaymentPolicyProvider,
	calendar entities.DayWindowCalendar,
	clk clock.Clock,
	metrics interfaces.IBillingMetrics,
	log *zap.Logger,
) *PaymentUseCase {
	return &PaymentUseCase{
		bills:    bills,
		ledger:   ledger,
		verifier: verifier,
		policy:   policy,
		calendar: calendar,
		clock:    clk,
		metrics:  metricsOrNop(metrics),
		log:      log.Named("payment.usecase"),
	}
}

func (u *PaymentUseCase) Finalize(ctx context.Context, req FinalizeRequest) (entities.PaymentTransaction, error) {
	txnID := strings.TrimSpace(req.TransactionID)
	billID := strings.TrimSpace(req.BillID)
	mode := entities.NormalizePaymentMode(req.PaymentMode)
	u.log.Info("finalize start", zap.String("bill_id", billID), zap.String("transaction_id", txnID), zap.String("payment_mode", string(mode)))

	if txnID == "" {
		return entities.PaymentTransaction{}, ErrTransactionIDRequired
	}
	existing, err := u.ledger.GetTransaction(ctx, txnID)
	if err != nil {
		return entities.PaymentTransaction{}, fmt.Errorf("load transaction: %w", err)
	}
	if existing.TransactionID != "" {
		u.log.Info("finalize rejected: duplicate transaction id", zap.String("transaction_id", txnID), zap.String("existing_bill_id", existing.BillID))
		return entities.PaymentTransaction{}, ErrDuplicateTransactionID
	}

	policy := u.policy.PaymentPolicy()
	if !policy.Allows(mode) {
		return entities.PaymentTransaction{}, ErrInvalidPaymentMode
	}

	if billID == "" {
		return entities.PaymentTransaction{}, ErrBillNotFound
	}
	bill, err := u.bills.GetBill(ctx, billID)
	if err != nil {
		return entities.PaymentTransaction{}, fmt.Errorf("load bill: %w", err)
	}
	if bill.ID == "" {
		return entities.PaymentTransaction{}, ErrBillNotFound
	}

	name := firstNonEmpty(req.CustomerName, bill.CustomerName)
	phone := firstNonEmpty(req.CustomerPhone, bill.CustomerPhone)
	if policy.RequireCustomerPhone && phone == "" {
		return entities.PaymentTransaction{}, ErrCustomerFieldRequired
	}
	if policy.RequireCustomerName && name == "" {
		return entities.PaymentTransaction{}, ErrCustomerFieldRequired
	}

	if !bill.Status.Payable() {
		u.log.Info("finalize rejected", zap.String("bill_id", billID), zap.String("status", string(bill.Status)))
		return entities.PaymentTransaction{}, ErrInvalidBillStatus
	}
	if cart.IsEmpty(bill) {
		return entities.PaymentTransaction{}, ErrEmptyBill
	}

	totals := cart.ComputeTotal(bill)
	now := u.clock.Now()
	txn := entities.PaymentTransaction{
		TransactionID:   txnID,
		BillID:          bill.ID,
		PaymentMode:     mode,
		SubtotalCents:   totals.SubtotalCents,
		DiscountCents:   totals.DiscountCents,
		FinalTotalCents: totals.TotalCents,
		CustomerName:    name,
		CustomerPhone:   phone,
		CashDetails:     strings.TrimSpace(req.CashDetails),
		DayWindowID:     u.calendar.WindowOf(now),
		ClosedAt:        now.UTC(),
	}

	if policy.RequiresVerification(mode) {
		if u.verifier == nil {
			return entities.PaymentTransaction{}, fmt.Errorf("%w: no verifier configured", ErrPaymentNotVerified)
		}
		approved, status, payload, err := u.verifier.VerifyPayment(ctx, txnID, totals.TotalCents)
		if err != nil {
			u.log.Error("verify payment failed", zap.String("transaction_id", txnID), zap.Error(err))
			return entities.PaymentTransaction{}, err
		}
		txn.ProviderStatus = status
		txn.ProviderPayload = payload
		if !approved {
			u.log.Info("finalize rejected: provider status", zap.String("transaction_id", txnID), zap.String("provider_status", status))
			return entities.PaymentTransaction{}, ErrPaymentNotVerified
		}
	}

	bill.Status = entities.BillStatusPaid
	bill.CustomerName = name
	bill.CustomerPhone = phone
	bill.UpdatedAt = now.UTC()

	if err := u.ledger.FinalizeBill(ctx, txn, bill); err != nil {
		switch {
		case errors.Is(err, interfaces.ErrTransactionExists):
			return entities.PaymentTransaction{}, ErrDuplicateTransactionID
		case errors.Is(err, interfaces.ErrBillStateConflict):
			return entities.PaymentTransaction{}, ErrInvalidBillStatus
		}
		u.log.Error("finalize failed", zap.String("bill_id", billID), zap.String("transaction_id", txnID), zap.Error(err))
		return entities.PaymentTransaction{}, fmt.Errorf("finalize bill: %w", err)
	}

	u.metrics.PaymentFinalized(mode, txn.FinalTotalCents)
	u.log.Info("finalize success",
		zap.String("bill_id", billID),
		zap.String("transaction_id", txnID),
		zap.Int64("final_total_cents", txn.FinalTotalCents),
		zap.String("day_window_id", txn.DayWindowID.String()),
	)
	return txn, nil
}

func (u *PaymentUseCase) GetTransaction(ctx context.Context, transactionID string) (entities.PaymentTransaction, error) {
	transactionID = strings.TrimSpace(transactionID)
	if transactionID == "" {
		return entities.PaymentTransaction{}, ErrTransactionIDRequired
	}
	return u.ledger.GetTransaction(ctx, transactionID)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
