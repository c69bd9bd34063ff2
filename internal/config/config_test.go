package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"thirupugazh_pos/internal/domain/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "pos.yml"), []byte(body), 0o600))
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	v, err := New(t.TempDir())
	require.NoError(t, err)

	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, entities.DefaultCutoverHour, cfg.Calendar.CutoverHour)
	assert.Equal(t, "Asia/Kolkata", cfg.Calendar.TimeZone)
	assert.Equal(t, 30*time.Minute, cfg.Storage.ConnMaxLifetime)
	assert.Equal(t, "holds", cfg.DynamoDB.HoldsTable)

	menu, err := cfg.MenuItems()
	require.NoError(t, err)
	assert.Nil(t, menu)
}

func TestLoad_FileAndEnv(t *testing.T) {
	dir := writeConfig(t, `
storage:
  driver: SQLite
  sqlite_path: /tmp/pos-test.db
calendar:
  time_zone: UTC
  cutover_hour: 15
menu:
  - name: Full Ticket
    price: "580.00"
  - id: half
    name: Half Ticket
    price: "300.5"
`)
	t.Setenv("POS_HTTP_PORT", "9090")

	v, err := New(dir)
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)

	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/pos-test.db", cfg.Storage.SQLitePath)
	assert.Equal(t, "9090", cfg.HTTP.Port)

	menu, err := cfg.MenuItems()
	require.NoError(t, err)
	require.Len(t, menu, 2)
	assert.Equal(t, entities.MenuItem{Name: "Full Ticket", PriceCents: 58000}, menu[0])
	assert.Equal(t, entities.MenuItem{ID: "half", Name: "Half Ticket", PriceCents: 30050}, menu[1])

	cal, err := cfg.DayWindowCalendar()
	require.NoError(t, err)
	assert.Equal(t, entities.DayWindowID("2026-10-16"), cal.WindowOf(time.Date(2026, 10, 17, 14, 59, 0, 0, time.UTC)))
}

func TestLoad_MidnightCutover(t *testing.T) {
	v, err := New(writeConfig(t, "calendar:\n  time_zone: UTC\n  cutover_hour: 0\n"))
	require.NoError(t, err)
	cfg, err := Load(v)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Calendar.CutoverHour)

	cal, err := cfg.DayWindowCalendar()
	require.NoError(t, err)
	assert.Equal(t, entities.DayWindowID("2026-10-17"), cal.WindowOf(time.Date(2026, 10, 17, 10, 0, 0, 0, time.UTC)))
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]string{
		"driver":  "storage:\n  driver: oracle\n",
		"cutover": "calendar:\n  cutover_hour: 24\n",
		"zone":    "calendar:\n  time_zone: Mars/Olympus\n",
		"price":   "menu:\n  - name: Tea\n    price: abc\n",
		"name":    "menu:\n  - price: \"1\"\n",
		"huge":    "menu:\n  - name: Tea\n    price: \"99999999999999999\"\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			v, err := New(writeConfig(t, body))
			require.NoError(t, err)
			_, err = Load(v)
			assert.Error(t, err)
		})
	}
}

func TestPaymentPolicyHolder(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		v, err := New(t.TempDir())
		require.NoError(t, err)
		holder, err := NewPaymentPolicyHolder(v, zap.NewNop())
		require.NoError(t, err)

		policy := holder.PaymentPolicy()
		assert.Equal(t, entities.DefaultPaymentPolicy().Modes, policy.Modes)
		assert.True(t, policy.RequireCustomerPhone)
		assert.False(t, policy.RequiresVerification(entities.PaymentModeUPI))
	})

	t.Run("from file", func(t *testing.T) {
		v, err := New(writeConfig(t, `
payment:
  modes: [cash, UPI]
  verify_modes: [upi]
  require_customer_phone: false
  require_customer_name: true
`))
		require.NoError(t, err)
		holder, err := NewPaymentPolicyHolder(v, zap.NewNop())
		require.NoError(t, err)

		policy := holder.PaymentPolicy()
		assert.Equal(t, []entities.PaymentMode{entities.PaymentModeCash, entities.PaymentModeUPI}, policy.Modes)
		assert.False(t, policy.Allows(entities.PaymentModeCard))
		assert.True(t, policy.RequiresVerification(entities.PaymentModeUPI))
		assert.True(t, policy.RequireCustomerName)
		assert.False(t, policy.RequireCustomerPhone)
	})

	t.Run("rejects unknown modes", func(t *testing.T) {
		v, err := New(writeConfig(t, "payment:\n  modes: [cheque]\n"))
		require.NoError(t, err)
		_, err = NewPaymentPolicyHolder(v, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("verify mode must be enabled", func(t *testing.T) {
		v, err := New(writeConfig(t, "payment:\n  modes: [cash]\n  verify_modes: [card]\n"))
		require.NoError(t, err)
		_, err = NewPaymentPolicyHolder(v, zap.NewNop())
		assert.Error(t, err)
	})

	t.Run("invalid reload keeps the previous policy", func(t *testing.T) {
		v, err := New(t.TempDir())
		require.NoError(t, err)
		holder, err := NewPaymentPolicyHolder(v, zap.NewNop())
		require.NoError(t, err)

		v.Set("payment.modes", []string{})
		assert.Error(t, holder.reload(v))
		assert.Len(t, holder.PaymentPolicy().Modes, 3)

		v.Set("payment.modes", []string{"card"})
		require.NoError(t, holder.reload(v))
		assert.Equal(t, []entities.PaymentMode{entities.PaymentModeCard}, holder.PaymentPolicy().Modes)
	})
}
