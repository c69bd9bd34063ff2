package interfaces

import "thirupugazh_pos/internal/domain/entities"

// IBillingMetrics records counter-level business events.
type IBillingMetrics interface {
	HoldCreated()
	ResumeAttempt(outcome entities.ResumeOutcome, overrideUsed bool)
	PaymentFinalized(mode entities.PaymentMode, totalCents int64)
}
