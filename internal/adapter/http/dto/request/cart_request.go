package request

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidDiscountValue = errors.New("invalid discount value")

// AddItemRequest adds quantity units of a menu item. A missing quantity means one.
type AddItemRequest struct {
	MenuItemID string `json:"menu_item_id" binding:"required"`
	Quantity   *int   `json:"quantity"`
}

func (r AddItemRequest) ResolveQuantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

// DiscountRequest carries the percent as text ("12.5") so no precision is lost on the way in.
type DiscountRequest struct {
	Percent string `json:"percent" binding:"required"`
}

func (r DiscountRequest) ResolvePercent() (decimal.Decimal, error) {
	v, err := decimal.NewFromString(strings.TrimSpace(r.Percent))
	if err != nil {
		return decimal.Zero, ErrInvalidDiscountValue
	}
	return v, nil
}
