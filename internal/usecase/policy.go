package usecase

import (
	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase/interfaces"
)

type fixedPaymentPolicy entities.PaymentPolicy

func (p fixedPaymentPolicy) PaymentPolicy() entities.PaymentPolicy { return entities.PaymentPolicy(p) }

// FixedPaymentPolicy serves p for the lifetime of the process.
func FixedPaymentPolicy(p entities.PaymentPolicy) interfaces.IPaymentPolicyProvider {
	return fixedPaymentPolicy(p)
}

type nopMetrics struct{}

func (nopMetrics) HoldCreated()                                 {}
func (nopMetrics) ResumeAttempt(entities.ResumeOutcome, bool)   {}
func (nopMetrics) PaymentFinalized(entities.PaymentMode, int64) {}

func metricsOrNop(m interfaces.IBillingMetrics) interfaces.IBillingMetrics {
	if m == nil {
		return nopMetrics{}
	}
	return m
}
