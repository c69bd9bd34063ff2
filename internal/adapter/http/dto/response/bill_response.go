package response

import (
	"time"

	"thirupugazh_pos/internal/domain/entities"
)

type MenuItemResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Price      string `json:"price"`
}

func FromMenuItem(m entities.MenuItem) MenuItemResponse {
	return MenuItemResponse{
		ID:         m.ID,
		Name:       m.Name,
		PriceCents: m.PriceCents,
		Price:      formatAmount(m.PriceCents),
	}
}

func FromMenuItems(items []entities.MenuItem) []MenuItemResponse {
	out := make([]MenuItemResponse, 0, len(items))
	for _, m := range items {
		out = append(out, FromMenuItem(m))
	}
	return out
}

type LineItemResponse struct {
	MenuItemID     string `json:"menu_item_id"`
	Name           string `json:"name"`
	Quantity       int    `json:"quantity"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	LineTotalCents int64  `json:"line_total_cents"`
}

// BillResponse is a bill with its totals. Amount strings are for display; clients should do
// arithmetic on the *_cents fields.
type BillResponse struct {
	ID              string             `json:"id"`
	Status          string             `json:"status"`
	Items           []LineItemResponse `json:"items"`
	DiscountPercent string             `json:"discount_percent"`
	SubtotalCents   int64              `json:"subtotal_cents"`
	DiscountCents   int64              `json:"discount_cents"`
	TotalCents      int64              `json:"total_cents"`
	Total           string             `json:"total"`
	CustomerName    string             `json:"customer_name,omitempty"`
	CustomerPhone   string             `json:"customer_phone,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func FromPricedBill(pb entities.PricedBill) BillResponse {
	items := make([]LineItemResponse, 0, len(pb.Bill.Items))
	for _, it := range pb.Bill.Items {
		items = append(items, LineItemResponse{
			MenuItemID:     it.MenuItemID,
			Name:           it.Name,
			Quantity:       it.Quantity,
			UnitPriceCents: it.UnitPriceCents,
			LineTotalCents: it.UnitPriceCents * int64(it.Quantity),
		})
	}
	return BillResponse{
		ID:              pb.Bill.ID,
		Status:          string(pb.Bill.Status),
		Items:           items,
		DiscountPercent: pb.Bill.DiscountPercent.String(),
		SubtotalCents:   pb.Totals.SubtotalCents,
		DiscountCents:   pb.Totals.DiscountCents,
		TotalCents:      pb.Totals.TotalCents,
		Total:           formatAmount(pb.Totals.TotalCents),
		CustomerName:    pb.Bill.CustomerName,
		CustomerPhone:   pb.Bill.CustomerPhone,
		CreatedAt:       pb.Bill.CreatedAt,
		UpdatedAt:       pb.Bill.UpdatedAt,
	}
}
