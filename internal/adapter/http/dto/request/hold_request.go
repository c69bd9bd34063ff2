package request

import "time"

type HoldRequest struct {
	CustomerName string `json:"customer_name"`
}

// ResumeRequest looks a hold up by customer name. hold_id or held_at pick one hold when the
// name is shared.
type ResumeRequest struct {
	CustomerName string     `json:"customer_name"`
	HoldID       string     `json:"hold_id"`
	HeldAt       *time.Time `json:"held_at"`
}
