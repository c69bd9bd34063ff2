package interfaces

import (
	"context"

	"thirupugazh_pos/internal/domain/entities"
)

// IResumeAuditRepository keeps the append-only log of resume attempts.
type IResumeAuditRepository interface {
	AppendResumeEvent(ctx context.Context, e entities.ResumeEvent) error
	ListResumeEvents(ctx context.Context, holdID string) ([]entities.ResumeEvent, error)
}
