package interfaces

import (
	"context"
	"encoding/json"
)

// IPaymentVerifier confirms an externally supplied transaction id with the payment provider
// (e.g. Mercado Pago) before the bill is closed.
//
// approved is false when the provider knows the payment but has not settled it.
type IPaymentVerifier interface {
	VerifyPayment(ctx context.Context, transactionID string, amountCents int64) (approved bool, providerStatus string, providerResponse json.RawMessage, err error)
}
