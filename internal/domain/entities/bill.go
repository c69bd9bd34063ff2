package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// BillStatus represents the lifecycle of a bill at the counter.
//
// Allowed transitions:
//   - draft -> held (hold) | paid (finalize)
//   - held -> resumed (resume)
//   - resumed -> paid (finalize)
//
// paid is terminal.
type BillStatus string

const (
	BillStatusDraft   BillStatus = "draft"
	BillStatusHeld    BillStatus = "held"
	BillStatusResumed BillStatus = "resumed"
	BillStatusPaid    BillStatus = "paid"
)

// Editable reports whether cart operations may change the bill.
func (s BillStatus) Editable() bool {
	return s == BillStatusDraft || s == BillStatusResumed
}

// Payable reports whether the bill can be finalized.
func (s BillStatus) Payable() bool {
	return s == BillStatusDraft || s == BillStatusResumed
}

// LineItem is one menu item on a bill. Quantity is always positive on a stored bill.
//
// Monetary representation:
//   - UnitPriceCents is expressed in the currency minor unit.
type LineItem struct {
	MenuItemID     string `json:"menu_item_id"`
	Name           string `json:"name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

// Bill is the cart being built at a terminal.
//
// Ownership:
//   - draft/resumed bills belong to the terminal editing them;
//   - held bills belong to the hold store until resumed.
type Bill struct {
	ID              string          `json:"id"`
	Items           []LineItem      `json:"items"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	CustomerName    string          `json:"customer_name,omitempty"`
	CustomerPhone   string          `json:"customer_phone,omitempty"`
	Status          BillStatus      `json:"status"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// Clone returns a copy that shares no item storage with b.
func (b Bill) Clone() Bill {
	out := b
	if b.Items != nil {
		out.Items = make([]LineItem, len(b.Items))
		copy(out.Items, b.Items)
	}
	return out
}

// Totals is the priced view of a bill, in minor units.
type Totals struct {
	SubtotalCents int64 `json:"subtotal_cents"`
	DiscountCents int64 `json:"discount_cents"`
	TotalCents    int64 `json:"total_cents"`
}

// PricedBill is a bill together with its computed totals.
type PricedBill struct {
	Bill   Bill   `json:"bill"`
	Totals Totals `json:"totals"`
}
