package interfaces

import (
	"context"

	"thirupugazh_pos/internal/domain/entities"
)

// IPaymentTransactionRepository is the transaction ledger.
//
// FinalizeBill inserts txn, marks the bill paid and deletes any hold still pointing at it as one
// unit. It fails with ErrTransactionExists when txn.TransactionID was used before and with
// ErrBillStateConflict when the stored bill is no longer payable.
type IPaymentTransactionRepository interface {
	GetTransaction(ctx context.Context, transactionID string) (entities.PaymentTransaction, error)
	FinalizeBill(ctx context.Context, txn entities.PaymentTransaction, b entities.Bill) error
	ListTransactionsByDayWindow(ctx context.Context, id entities.DayWindowID) ([]entities.PaymentTransaction, error)
}
