package response

import (
	"time"

	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/pkg"
)

type HoldResponse struct {
	ID           string    `json:"id"`
	BillID       string    `json:"bill_id"`
	CustomerName string    `json:"customer_name"`
	HeldAt       time.Time `json:"held_at"`
	DayWindowID  string    `json:"day_window_id"`
}

func FromHold(h entities.HoldRecord) HoldResponse {
	return HoldResponse{
		ID:           h.ID,
		BillID:       h.BillID,
		CustomerName: h.CustomerName,
		HeldAt:       h.HeldAt,
		DayWindowID:  h.DayWindowID.String(),
	}
}

func FromHolds(holds []entities.HoldRecord) []HoldResponse {
	out := make([]HoldResponse, 0, len(holds))
	for _, h := range holds {
		out = append(out, FromHold(h))
	}
	return out
}

type HeldBillResponse struct {
	HoldResponse
	IsExpired bool `json:"is_expired"`
}

// HeldBillsResponse is the hold listing as seen from the current day window.
type HeldBillsResponse struct {
	DayWindowID string             `json:"day_window_id"`
	Holds       []HeldBillResponse `json:"holds"`
}

func FromHeldBills(current entities.DayWindowID, held []entities.HeldBill) HeldBillsResponse {
	out := HeldBillsResponse{DayWindowID: current.String(), Holds: make([]HeldBillResponse, 0, len(held))}
	for _, hb := range held {
		out.Holds = append(out.Holds, HeldBillResponse{HoldResponse: FromHold(hb.HoldRecord), IsExpired: hb.IsExpired})
	}
	return out
}

type ResumeResponse struct {
	Bill         BillResponse `json:"bill"`
	HoldID       string       `json:"hold_id"`
	OverrideUsed bool         `json:"override_used"`
}

func FromResume(bill entities.PricedBill, hold entities.HoldRecord, overrideUsed bool) ResumeResponse {
	return ResumeResponse{Bill: FromPricedBill(bill), HoldID: hold.ID, OverrideUsed: overrideUsed}
}

// AmbiguousHoldResponse is the error body for a customer name that matches several holds.
type AmbiguousHoldResponse struct {
	pkg.HTTPError
	Candidates []HoldResponse `json:"candidates"`
}

type ResumeEventResponse struct {
	ID           string    `json:"id"`
	HoldID       string    `json:"hold_id"`
	BillID       string    `json:"bill_id"`
	Role         string    `json:"role"`
	Outcome      string    `json:"outcome"`
	OverrideUsed bool      `json:"override_used"`
	At           time.Time `json:"at"`
}

func FromResumeEvents(events []entities.ResumeEvent) []ResumeEventResponse {
	out := make([]ResumeEventResponse, 0, len(events))
	for _, e := range events {
		out = append(out, ResumeEventResponse{
			ID:           e.ID,
			HoldID:       e.HoldID,
			BillID:       e.BillID,
			Role:         string(e.Role),
			Outcome:      string(e.Outcome),
			OverrideUsed: e.OverrideUsed,
			At:           e.At,
		})
	}
	return out
}
