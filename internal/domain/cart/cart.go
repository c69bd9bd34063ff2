// Package cart holds the pure cart arithmetic. Every function takes a bill by value and
// returns the updated copy; nothing here touches storage or the clock.
package cart

import (
	"errors"

	"thirupugazh_pos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrItemNotFound    = errors.New("item not found on bill")
	ErrInvalidDiscount = errors.New("discount percent must be between 0 and 100")
)

// MaxLineQuantity caps the units on a single line.
const MaxLineQuantity = 9999

var hundred = decimal.NewFromInt(100)

// AddItem merges qty units of item into the bill, appending a new line when the item is not
// on the bill yet. A line never exceeds MaxLineQuantity.
func AddItem(b entities.Bill, item entities.MenuItem, qty int) (entities.Bill, error) {
	if qty <= 0 || qty > MaxLineQuantity {
		return b, ErrInvalidQuantity
	}
	out := b.Clone()
	for i := range out.Items {
		if out.Items[i].MenuItemID == item.ID {
			if out.Items[i].Quantity > MaxLineQuantity-qty {
				return b, ErrInvalidQuantity
			}
			out.Items[i].Quantity += qty
			return out, nil
		}
	}
	out.Items = append(out.Items, entities.LineItem{
		MenuItemID:     item.ID,
		Name:           item.Name,
		UnitPriceCents: item.PriceCents,
		Quantity:       qty,
	})
	return out, nil
}

// RemoveItem takes qty units off the line for menuItemID and drops the line once it reaches zero.
func RemoveItem(b entities.Bill, menuItemID string, qty int) (entities.Bill, error) {
	if qty <= 0 {
		return b, ErrInvalidQuantity
	}
	out := b.Clone()
	for i := range out.Items {
		if out.Items[i].MenuItemID != menuItemID {
			continue
		}
		out.Items[i].Quantity -= qty
		if out.Items[i].Quantity <= 0 {
			out.Items = append(out.Items[:i], out.Items[i+1:]...)
		}
		return out, nil
	}
	return b, ErrItemNotFound
}

// ApplyDiscount replaces the bill discount.
func ApplyDiscount(b entities.Bill, percent decimal.Decimal) (entities.Bill, error) {
	if percent.IsNegative() || percent.GreaterThan(hundred) {
		return b, ErrInvalidDiscount
	}
	out := b.Clone()
	out.DiscountPercent = percent
	return out, nil
}

// ComputeTotal prices the bill. The total is round-half-up(subtotal * (1 - pct/100)) in minor
// units and the discount is whatever the rounding leaves between subtotal and total.
func ComputeTotal(b entities.Bill) entities.Totals {
	sum := decimal.Zero
	for _, it := range b.Items {
		sum = sum.Add(decimal.NewFromInt(it.UnitPriceCents).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}

	factor := hundred.Sub(b.DiscountPercent).Div(hundred)
	subtotal := sum.IntPart()
	total := sum.Mul(factor).Round(0).IntPart()

	return entities.Totals{
		SubtotalCents: subtotal,
		DiscountCents: subtotal - total,
		TotalCents:    total,
	}
}

// IsEmpty reports whether the bill has no lines.
func IsEmpty(b entities.Bill) bool {
	return len(b.Items) == 0
}
