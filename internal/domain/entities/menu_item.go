package entities

// MenuItem is what the catalog resolves a menu item id to.
type MenuItem struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
}

// MaxPriceCents bounds a configured unit price so line totals stay within int64.
const MaxPriceCents int64 = 100_000_000_000
