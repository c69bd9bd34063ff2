package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// PaymentMode is how the customer settled the bill.
type PaymentMode string

const (
	PaymentModeCash PaymentMode = "cash"
	PaymentModeCard PaymentMode = "card"
	PaymentModeUPI  PaymentMode = "upi"
)

func NormalizePaymentMode(raw string) PaymentMode {
	return PaymentMode(strings.ToLower(strings.TrimSpace(raw)))
}

// PaymentTransaction is the immutable record of a finalized bill.
//
// Storage model (DynamoDB):
//   - PK: transaction_id
//   - GSI day_window_id-index: day_window_id
//
// ProviderPayloadRaw keeps the payment provider response when the transaction was verified.
type PaymentTransaction struct {
	TransactionID   string          `json:"transaction_id"`
	BillID          string          `json:"bill_id"`
	PaymentMode     PaymentMode     `json:"payment_mode"`
	SubtotalCents   int64           `json:"subtotal_cents"`
	DiscountCents   int64           `json:"discount_cents"`
	FinalTotalCents int64           `json:"final_total_cents"`
	CustomerName    string          `json:"customer_name,omitempty"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	CashDetails     string          `json:"cash_details,omitempty"`
	DayWindowID     DayWindowID     `json:"day_window_id"`
	ClosedAt        time.Time       `json:"closed_at"`
	ProviderStatus  string          `json:"provider_status,omitempty"`
	ProviderPayload json.RawMessage `json:"provider_payload_raw,omitempty"`
}

// PaymentPolicy is the configurable part of finalization.
type PaymentPolicy struct {
	Modes                []PaymentMode
	VerifyModes          []PaymentMode
	RequireCustomerPhone bool
	RequireCustomerName  bool
}

func (p PaymentPolicy) Allows(mode PaymentMode) bool {
	for _, m := range p.Modes {
		if m == mode {
			return true
		}
	}
	return false
}

func (p PaymentPolicy) RequiresVerification(mode PaymentMode) bool {
	for _, m := range p.VerifyModes {
		if m == mode {
			return true
		}
	}
	return false
}

// DefaultPaymentPolicy mirrors the counter setup: cash, card and UPI, phone mandatory.
func DefaultPaymentPolicy() PaymentPolicy {
	return PaymentPolicy{
		Modes:                []PaymentMode{PaymentModeCash, PaymentModeCard, PaymentModeUPI},
		RequireCustomerPhone: true,
	}
}

// DailyReport summarizes the transactions closed inside one or more day windows.
type DailyReport struct {
	From             DayWindowID         `json:"from"`
	To               DayWindowID         `json:"to"`
	TransactionCount int                 `json:"transaction_count"`
	TotalCents       int64               `json:"total_cents"`
	ByPaymentMode    []PaymentModeTotals `json:"by_payment_mode"`
}

type PaymentModeTotals struct {
	PaymentMode      PaymentMode `json:"payment_mode"`
	TransactionCount int         `json:"transaction_count"`
	TotalCents       int64       `json:"total_cents"`
}
