package authz

import (
	"testing"

	"thirupugazh_pos/internal/domain/entities"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func TestRolePolicy_Allowed(t *testing.T) {
	enforcer, err := NewEnforcer(nil)
	require.NoError(t, err)
	policy := NewRolePolicy(enforcer, zap.NewNop())

	cases := []struct {
		role   entities.Role
		action entities.Action
		want   bool
	}{
		{entities.RoleStaff, entities.ActionHoldResume, true},
		{entities.RoleStaff, entities.ActionReportView, true},
		{entities.RoleStaff, entities.ActionHoldOverrideExpiry, false},
		{entities.RoleStaff, entities.ActionHoldViewExpired, false},
		{entities.RoleStaff, entities.ActionHoldAuditView, false},
		{entities.RoleAdmin, entities.ActionHoldResume, true},
		{entities.RoleAdmin, entities.ActionReportView, true},
		{entities.RoleAdmin, entities.ActionHoldOverrideExpiry, true},
		{entities.RoleAdmin, entities.ActionHoldViewExpired, true},
		{"", entities.ActionReportView, false},
		{"cashier", entities.ActionReportView, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.role)+"/"+string(tc.action), func(t *testing.T) {
			require.Equal(t, tc.want, policy.Allowed(tc.role, tc.action))
		})
	}
}

func TestNewEnforcer_GormAdapterSeedsOnce(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:authz?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	first, err := NewEnforcer(db)
	require.NoError(t, err)
	require.True(t, NewRolePolicy(first, zap.NewNop()).Allowed(entities.RoleAdmin, entities.ActionHoldResume))

	second, err := NewEnforcer(db)
	require.NoError(t, err)
	rules, err := second.GetPolicy()
	require.NoError(t, err)
	require.Len(t, rules, len(defaultPolicies))
}
