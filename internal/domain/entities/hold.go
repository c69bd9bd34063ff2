package entities

import (
	"strings"
	"time"
)

// HoldRecord parks a bill under a customer name until it is resumed or paid.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI customer_key-index: customer_key
//   - GSI bill_id-index: bill_id
//
// Several holds may share a customer key; they are told apart by HeldAt and ID.
type HoldRecord struct {
	ID           string      `json:"id"`
	BillID       string      `json:"bill_id"`
	CustomerName string      `json:"customer_name"`
	CustomerKey  string      `json:"customer_key"`
	HeldAt       time.Time   `json:"held_at"`
	DayWindowID  DayWindowID `json:"day_window_id"`
}

// HeldBill is a hold annotated against the caller's current day window.
type HeldBill struct {
	HoldRecord
	IsExpired bool `json:"is_expired"`
}

// HoldTimestamp normalizes a hold time to UTC milliseconds, the precision every backend keeps.
// HeldAt is a lookup key, so it must read back exactly as it was returned.
func HoldTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Millisecond)
}

// CustomerKey normalizes a customer name for lookups.
func CustomerKey(name string) string {
	return strings.ToLower(strings.Join(strings.Fields(name), " "))
}

// ResumeOutcome is the terminal state of a resume attempt that found a hold.
type ResumeOutcome string

const (
	ResumeOutcomeGranted        ResumeOutcome = "granted"
	ResumeOutcomeExpiredBlocked ResumeOutcome = "expired_blocked"
)

// ResumeEvent is the audit trail of resume attempts against a hold.
type ResumeEvent struct {
	ID           string        `json:"id"`
	HoldID       string        `json:"hold_id"`
	BillID       string        `json:"bill_id"`
	CustomerKey  string        `json:"customer_key"`
	Role         Role          `json:"role"`
	Outcome      ResumeOutcome `json:"outcome"`
	OverrideUsed bool          `json:"override_used"`
	At           time.Time     `json:"at"`
}
