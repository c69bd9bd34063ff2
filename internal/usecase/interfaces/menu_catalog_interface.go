package interfaces

import (
	"context"

	"thirupugazh_pos/internal/domain/entities"
)

// IMenuCatalog resolves menu item ids. GetMenuItem returns a zero MenuItem for unknown ids.
type IMenuCatalog interface {
	GetMenuItem(ctx context.Context, id string) (entities.MenuItem, error)
	ListMenuItems(ctx context.Context) ([]entities.MenuItem, error)
}
