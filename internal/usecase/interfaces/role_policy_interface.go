package interfaces

import "thirupugazh_pos/internal/domain/entities"

// IRolePolicy is the single place role privileges are decided.
type IRolePolicy interface {
	Allowed(role entities.Role, action entities.Action) bool
}

// IPaymentPolicyProvider returns the payment policy in force right now.
type IPaymentPolicyProvider interface {
	PaymentPolicy() entities.PaymentPolicy
}
