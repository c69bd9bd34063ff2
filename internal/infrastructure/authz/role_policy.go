package authz

import (
	_ "embed"
	"fmt"

	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase/interfaces"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:embed model.conf
var modelText string

// Default grants. Admin inherits everything staff can do.
var defaultPolicies = [][]string{
	{subject(entities.RoleStaff), string(entities.ActionHoldResume)},
	{subject(entities.RoleStaff), string(entities.ActionReportView)},

	{subject(entities.RoleAdmin), string(entities.ActionHoldOverrideExpiry)},
	{subject(entities.RoleAdmin), string(entities.ActionHoldViewExpired)},
	{subject(entities.RoleAdmin), string(entities.ActionHoldAuditView)},
}

var defaultGroupings = [][]string{
	{subject(entities.RoleAdmin), subject(entities.RoleStaff)},
}

// NewEnforcer builds the role enforcer. With a non-nil db the policy lives in the casbin_rule
// table so grants can be changed without a deploy; otherwise it is kept in memory. The default
// grants are added when missing.
func NewEnforcer(db *gorm.DB) (*casbin.SyncedEnforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	var enforcer *casbin.SyncedEnforcer
	if db != nil {
		adapter, err := gormadapter.NewAdapterByDB(db)
		if err != nil {
			return nil, fmt.Errorf("casbin gorm adapter: %w", err)
		}
		enforcer, err = casbin.NewSyncedEnforcer(m, adapter)
		if err != nil {
			return nil, err
		}
		enforcer.EnableAutoSave(true)
		if err := enforcer.LoadPolicy(); err != nil {
			return nil, err
		}
	} else {
		enforcer, err = casbin.NewSyncedEnforcer(m)
		if err != nil {
			return nil, err
		}
	}
	enforcer.EnableAutoBuildRoleLinks(true)

	if _, err := enforcer.AddPoliciesEx(defaultPolicies); err != nil {
		return nil, fmt.Errorf("seed policies: %w", err)
	}
	if _, err := enforcer.AddGroupingPoliciesEx(defaultGroupings); err != nil {
		return nil, fmt.Errorf("seed role links: %w", err)
	}
	if err := enforcer.BuildRoleLinks(); err != nil {
		return nil, err
	}
	return enforcer, nil
}

// RolePolicy answers role checks for the resume controller, the hold listing and the reports.
type RolePolicy struct {
	enforcer *casbin.SyncedEnforcer
	log      *zap.Logger
}

var _ interfaces.IRolePolicy = (*RolePolicy)(nil)

func NewRolePolicy(enforcer *casbin.SyncedEnforcer, log *zap.Logger) *RolePolicy {
	return &RolePolicy{enforcer: enforcer, log: log.Named("authz.policy")}
}

func (p *RolePolicy) Allowed(role entities.Role, action entities.Action) bool {
	if role == "" {
		return false
	}
	ok, err := p.enforcer.Enforce(subject(role), string(action))
	if err != nil {
		p.log.Error("enforce failed", zap.String("role", string(role)), zap.String("action", string(action)), zap.Error(err))
		return false
	}
	return ok
}

func subject(r entities.Role) string {
	return "role:" + string(r)
}
