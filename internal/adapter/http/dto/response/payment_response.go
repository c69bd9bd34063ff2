package response

import (
	"encoding/json"
	"time"

	"thirupugazh_pos/internal/domain/entities"
)

type TransactionResponse struct {
	TransactionID   string          `json:"transaction_id"`
	BillID          string          `json:"bill_id"`
	PaymentMode     string          `json:"payment_mode"`
	SubtotalCents   int64           `json:"subtotal_cents"`
	DiscountCents   int64           `json:"discount_cents"`
	FinalTotalCents int64           `json:"final_total_cents"`
	FinalTotal      string          `json:"final_total"`
	CustomerName    string          `json:"customer_name,omitempty"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	CashDetails     string          `json:"cash_details,omitempty"`
	DayWindowID     string          `json:"day_window_id"`
	ClosedAt        time.Time       `json:"closed_at"`
	ProviderStatus  string          `json:"provider_status,omitempty"`
	ProviderPayload json.RawMessage `json:"provider_payload,omitempty"`
}

func FromTransaction(t entities.PaymentTransaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   t.TransactionID,
		BillID:          t.BillID,
		PaymentMode:     string(t.PaymentMode),
		SubtotalCents:   t.SubtotalCents,
		DiscountCents:   t.DiscountCents,
		FinalTotalCents: t.FinalTotalCents,
		FinalTotal:      formatAmount(t.FinalTotalCents),
		CustomerName:    t.CustomerName,
		CustomerPhone:   t.CustomerPhone,
		CashDetails:     t.CashDetails,
		DayWindowID:     t.DayWindowID.String(),
		ClosedAt:        t.ClosedAt,
		ProviderStatus:  t.ProviderStatus,
		ProviderPayload: t.ProviderPayload,
	}
}

type PaymentModeTotalsResponse struct {
	PaymentMode      string `json:"payment_mode"`
	TransactionCount int    `json:"transaction_count"`
	TotalCents       int64  `json:"total_cents"`
	Total            string `json:"total"`
}

type ReportResponse struct {
	From             string                      `json:"from"`
	To               string                      `json:"to"`
	TransactionCount int                         `json:"transaction_count"`
	TotalCents       int64                       `json:"total_cents"`
	Total            string                      `json:"total"`
	ByPaymentMode    []PaymentModeTotalsResponse `json:"by_payment_mode"`
}

func FromReport(r entities.DailyReport) ReportResponse {
	modes := make([]PaymentModeTotalsResponse, 0, len(r.ByPaymentMode))
	for _, m := range r.ByPaymentMode {
		modes = append(modes, PaymentModeTotalsResponse{
			PaymentMode:      string(m.PaymentMode),
			TransactionCount: m.TransactionCount,
			TotalCents:       m.TotalCents,
			Total:            formatAmount(m.TotalCents),
		})
	}
	return ReportResponse{
		From:             r.From.String(),
		To:               r.To.String(),
		TransactionCount: r.TransactionCount,
		TotalCents:       r.TotalCents,
		Total:            formatAmount(r.TotalCents),
		ByPaymentMode:    modes,
	}
}
