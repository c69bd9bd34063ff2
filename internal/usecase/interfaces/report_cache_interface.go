package interfaces

import (
	"context"

	"thirupugazh_pos/internal/domain/entities"
)

// IReportCache stores reports of day windows that are already closed.
type IReportCache interface {
	GetReport(ctx context.Context, key string) (entities.DailyReport, bool, error)
	PutReport(ctx context.Context, key string, r entities.DailyReport) error
}
