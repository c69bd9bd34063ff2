package interfaces

import (
	"context"
	"time"

	"thirupugazh_pos/internal/domain/entities"
)

// IHoldRepository is the hold store.
//
// Atomic operations:
//   - CreateHold stores h and rewrites the bill (already flipped to held by the caller) only if
//     the stored bill is still draft; ErrBillStateConflict otherwise.
//   - ClaimHold removes the hold and moves its bill from held to resumed in one step and returns
//     the resumed bill. A hold that is already gone yields ErrHoldClaimed.
//
// ListHoldsPage walks every hold ordered by HeldAt; an empty next cursor ends the walk.
type IHoldRepository interface {
	CreateHold(ctx context.Context, h entities.HoldRecord, b entities.Bill) error
	GetHold(ctx context.Context, id string) (entities.HoldRecord, error)
	FindHoldsByCustomerKey(ctx context.Context, customerKey string) ([]entities.HoldRecord, error)
	ListHoldsPage(ctx context.Context, cursor string, limit int) (holds []entities.HoldRecord, next string, err error)
	ClaimHold(ctx context.Context, holdID string, resumedAt time.Time) (entities.Bill, error)
}
