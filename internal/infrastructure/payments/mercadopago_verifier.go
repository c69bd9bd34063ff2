package payments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"thirupugazh_pos/internal/usecase/interfaces"

	"github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrMissingMercadoPagoAccessToken    = errors.New("missing mercado pago access token")
	ErrMercadoPagoVerifierNotConfigured = errors.New("mercado pago verifier not configured")
	ErrInvalidProviderTransactionID     = errors.New("transaction id is not a mercado pago payment id")
)

const statusApproved = "approved"

// paymentGetter is the slice of payment.Client the verifier needs.
type paymentGetter interface {
	Get(ctx context.Context, id int) (*payment.Response, error)
}

// MercadoPagoVerifier looks up a payment by the transaction id the cashier typed in and accepts
// it only when the provider reports it approved for the bill's exact amount.
type MercadoPagoVerifier struct {
	client   paymentGetter
	mockMode bool
	log      *zap.Logger
}

var _ interfaces.IPaymentVerifier = (*MercadoPagoVerifier)(nil)

func NewMercadoPagoVerifier(accessToken string, mock bool, log *zap.Logger) (*MercadoPagoVerifier, error) {
	log = log.Named("payments.mercadopago")
	if mock {
		log.Info("mock mode enabled")
		return &MercadoPagoVerifier{mockMode: true, log: log}, nil
	}

	if strings.TrimSpace(accessToken) == "" {
		log.Error("missing access token")
		return nil, ErrMissingMercadoPagoAccessToken
	}

	cfg, err := config.New(accessToken)
	if err != nil {
		log.Error("failed creating sdk config", zap.Error(err))
		return nil, err
	}
	log.Info("client initialized")

	return &MercadoPagoVerifier{client: payment.NewClient(cfg), log: log}, nil
}

func (v *MercadoPagoVerifier) VerifyPayment(ctx context.Context, transactionID string, amountCents int64) (bool, string, json.RawMessage, error) {
	if v != nil && v.mockMode {
		return v.mockVerify(transactionID, amountCents)
	}
	if v == nil || v.client == nil {
		return false, "", nil, ErrMercadoPagoVerifierNotConfigured
	}

	v.log.Info("verify start", zap.String("transaction_id", transactionID), zap.Int64("amount_cents", amountCents))

	id, err := strconv.Atoi(strings.TrimSpace(transactionID))
	if err != nil || id <= 0 {
		v.log.Warn("verify rejected", zap.String("transaction_id", transactionID), zap.Error(ErrInvalidProviderTransactionID))
		return false, "", nil, ErrInvalidProviderTransactionID
	}

	resp, err := v.client.Get(ctx, id)
	if err != nil {
		v.log.Error("sdk get failed", zap.String("transaction_id", transactionID), zap.Error(err))
		return false, "", nil, fmt.Errorf("mercado pago get payment %d: %w", id, err)
	}

	raw, err := json.Marshal(resp)
	if err != nil {
		v.log.Error("response marshal failed", zap.Error(err))
		return false, "", nil, err
	}

	paidCents := decimal.NewFromFloat(resp.TransactionAmount).Shift(2).Round(0).IntPart()
	approved := resp.Status == statusApproved && paidCents == amountCents

	v.log.Info("verify success",
		zap.String("transaction_id", transactionID),
		zap.String("provider_status", resp.Status),
		zap.Int64("provider_amount_cents", paidCents),
		zap.Bool("approved", approved),
	)
	return approved, resp.Status, raw, nil
}

func (v *MercadoPagoVerifier) mockVerify(transactionID string, amountCents int64) (bool, string, json.RawMessage, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	resp := map[string]any{
		"id":                 transactionID,
		"status":             statusApproved,
		"status_detail":      "accredited",
		"transaction_amount": decimal.New(amountCents, -2).StringFixed(2),
		"date_created":       now,
		"date_approved":      now,
	}

	b, err := json.Marshal(resp)
	if err != nil {
		v.log.Error("mock response marshal failed", zap.Error(err))
		return false, "", nil, err
	}

	v.log.Info("mock verify success", zap.String("transaction_id", transactionID), zap.String("provider_status", statusApproved))
	return true, statusApproved, b, nil
}
