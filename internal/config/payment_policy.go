package config

import (
	"errors"
	"fmt"
	"sync/atomic"

	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase/interfaces"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// paymentPolicyConfig is read key by key so a partial payment block in pos.yml keeps the
// defaults of the keys it omits.
type paymentPolicyConfig struct {
	Modes                []string
	VerifyModes          []string
	RequireCustomerPhone bool
	RequireCustomerName  bool
}

// PaymentPolicyHolder serves the payment policy and swaps it when pos.yml changes on disk.
type PaymentPolicyHolder struct {
	current atomic.Value // holds entities.PaymentPolicy
	log     *zap.Logger
}

var _ interfaces.IPaymentPolicyProvider = (*PaymentPolicyHolder)(nil)

func NewPaymentPolicyHolder(v *viper.Viper, log *zap.Logger) (*PaymentPolicyHolder, error) {
	holder := &PaymentPolicyHolder{log: log.Named("config.payment_policy")}
	if err := holder.reload(v); err != nil {
		return nil, err
	}

	if v.ConfigFileUsed() != "" {
		v.OnConfigChange(func(e fsnotify.Event) {
			if err := holder.reload(v); err != nil {
				holder.log.Warn("invalid payment policy ignored", zap.String("file", e.Name), zap.Error(err))
				return
			}
			holder.log.Info("payment policy reloaded", zap.String("file", e.Name))
		})
		v.WatchConfig()
	}
	return holder, nil
}

func (h *PaymentPolicyHolder) PaymentPolicy() entities.PaymentPolicy {
	return h.current.Load().(entities.PaymentPolicy)
}

func (h *PaymentPolicyHolder) reload(v *viper.Viper) error {
	raw := paymentPolicyConfig{
		Modes:                v.GetStringSlice("payment.modes"),
		VerifyModes:          v.GetStringSlice("payment.verify_modes"),
		RequireCustomerPhone: v.GetBool("payment.require_customer_phone"),
		RequireCustomerName:  v.GetBool("payment.require_customer_name"),
	}
	policy, err := raw.toPolicy()
	if err != nil {
		return err
	}
	h.current.Store(policy)
	return nil
}

func (c paymentPolicyConfig) toPolicy() (entities.PaymentPolicy, error) {
	known := map[entities.PaymentMode]bool{
		entities.PaymentModeCash: true,
		entities.PaymentModeCard: true,
		entities.PaymentModeUPI:  true,
	}
	policy := entities.PaymentPolicy{
		RequireCustomerPhone: c.RequireCustomerPhone,
		RequireCustomerName:  c.RequireCustomerName,
	}
	for _, raw := range c.Modes {
		m := entities.NormalizePaymentMode(raw)
		if !known[m] {
			return entities.PaymentPolicy{}, fmt.Errorf("payment.modes: unknown mode %q", raw)
		}
		policy.Modes = append(policy.Modes, m)
	}
	if len(policy.Modes) == 0 {
		return entities.PaymentPolicy{}, errors.New("payment.modes cannot be empty")
	}
	for _, raw := range c.VerifyModes {
		m := entities.NormalizePaymentMode(raw)
		if !policy.Allows(m) {
			return entities.PaymentPolicy{}, fmt.Errorf("payment.verify_modes: %q is not an enabled mode", raw)
		}
		policy.VerifyModes = append(policy.VerifyModes, m)
	}
	return policy, nil
}
