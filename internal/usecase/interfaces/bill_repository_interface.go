package interfaces

import (
	"context"

	"thirupugazh_pos/internal/domain/entities"
)

// IBillRepository persists bills while they are being edited.
//
// GetBill returns a zero Bill (empty ID) when the id is unknown.
// SaveBill upserts, but only while the stored bill is missing or still editable; otherwise it
// returns ErrBillStateConflict.
type IBillRepository interface {
	SaveBill(ctx context.Context, b entities.Bill) error
	GetBill(ctx context.Context, id string) (entities.Bill, error)
}
