package repository

import (
	"context"
	"strings"

	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase/interfaces"

	"github.com/gosimple/slug"
)

// DefaultMenu is served when no menu is configured.
func DefaultMenu() []entities.MenuItem {
	return []entities.MenuItem{
		{Name: "Full Ticket", PriceCents: 58000},
		{Name: "Half Ticket", PriceCents: 30000},
		{Name: "Three Ticket", PriceCents: 15000},
	}
}

// StaticMenuCatalog is a read-only catalog loaded once at startup. Items without an id get the
// slug of their name.
type StaticMenuCatalog struct {
	items []entities.MenuItem
	byID  map[string]entities.MenuItem
}

var _ interfaces.IMenuCatalog = (*StaticMenuCatalog)(nil)

func NewStaticMenuCatalog(items []entities.MenuItem) *StaticMenuCatalog {
	c := &StaticMenuCatalog{byID: make(map[string]entities.MenuItem, len(items))}
	for _, it := range items {
		it.Name = strings.TrimSpace(it.Name)
		if it.ID = strings.TrimSpace(it.ID); it.ID == "" {
			it.ID = slug.Make(it.Name)
		}
		if _, dup := c.byID[it.ID]; dup {
			continue
		}
		c.byID[it.ID] = it
		c.items = append(c.items, it)
	}
	return c
}

func (c *StaticMenuCatalog) GetMenuItem(_ context.Context, id string) (entities.MenuItem, error) {
	return c.byID[id], nil
}

func (c *StaticMenuCatalog) ListMenuItems(_ context.Context) ([]entities.MenuItem, error) {
	out := make([]entities.MenuItem, len(c.items))
	copy(out, c.items)
	return out, nil
}
