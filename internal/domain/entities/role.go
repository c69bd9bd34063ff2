package entities

import (
	"errors"
	"strings"
)

var ErrUnknownRole = errors.New("unknown role")

// Role is supplied by the auth provider for every request. It is never stored on a bill.
type Role string

const (
	RoleStaff Role = "staff"
	RoleAdmin Role = "admin"
)

func ParseRole(raw string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(raw))) {
	case RoleStaff:
		return RoleStaff, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", ErrUnknownRole
	}
}

// Action names a privilege checked by the role policy.
type Action string

const (
	ActionHoldResume         Action = "hold.resume"
	ActionHoldOverrideExpiry Action = "hold.override_expiry"
	ActionHoldViewExpired    Action = "hold.view_expired"
	ActionHoldAuditView      Action = "hold.audit_view"
	ActionReportView         Action = "report.view"
)
