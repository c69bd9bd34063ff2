package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"thirupugazh_pos/internal/clock"
	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrInvalidDayWindow = errors.New("invalid day window")

// IReportUseCase aggregates finalized transactions per business day.
type IReportUseCase interface {
	Aggregate(ctx context.Context, role entities.Role, window string) (entities.DailyReport, error)
	AggregateMonth(ctx context.Context, role entities.Role, year, month int) (entities.DailyReport, error)
}

type ReportUseCase struct {
	ledger   interfaces.IPaymentTransactionRepository
	policy   interfaces.IRolePolicy
	cache    interfaces.IReportCache
	calendar entities.DayWindowCalendar
	clock    clock.Clock
	log      *zap.Logger
}

var _ IReportUseCase = (*ReportUseCase)(nil)

// NewReportUseCase builds the aggregator. cache may be nil.
func NewReportUseCase(
	ledger interfaces.IPaymentTransactionRepository,
	policy interfaces.IRolePolicy,
	cache interfaces.IReportCache,
	calendar entities.DayWindowCalendar,
	clk clock.Clock,
	log *zap.Logger,
) *ReportUseCase {
	return &ReportUseCase{ledger: ledger, policy: policy, cache: cache, calendar: calendar, clock: clk, log: log.Named("report.usecase")}
}

// Aggregate reports on one day window. An empty window means the one open right now.
func (u *ReportUseCase) Aggregate(ctx context.Context, role entities.Role, window string) (entities.DailyReport, error) {
	if !u.policy.Allowed(role, entities.ActionReportView) {
		return entities.DailyReport{}, ErrForbidden
	}

	var id entities.DayWindowID
	if window = strings.TrimSpace(window); window == "" {
		id = u.calendar.WindowOf(u.clock.Now())
	} else {
		parsed, err := entities.ParseDayWindowID(window)
		if err != nil {
			return entities.DailyReport{}, ErrInvalidDayWindow
		}
		id = parsed
	}

	return u.windowReport(ctx, id)
}

// AggregateMonth sums every window that opens during the given calendar month.
func (u *ReportUseCase) AggregateMonth(ctx context.Context, role entities.Role, year, month int) (entities.DailyReport, error) {
	if !u.policy.Allowed(role, entities.ActionReportView) {
		return entities.DailyReport{}, ErrForbidden
	}
	if month < 1 || month > 12 || year < 1 {
		return entities.DailyReport{}, ErrInvalidDayWindow
	}

	windows := u.calendar.WindowsInMonth(year, time.Month(month))
	parts := make([]entities.DailyReport, 0, len(windows))
	for _, id := range windows {
		r, err := u.windowReport(ctx, id)
		if err != nil {
			return entities.DailyReport{}, err
		}
		parts = append(parts, r)
	}
	report := merge(windows[0], windows[len(windows)-1], parts)
	u.log.Debug("monthly report", zap.Int("year", year), zap.Int("month", month), zap.Int("transactions", report.TransactionCount))
	return report, nil
}

// windowReport summarizes the transactions closed inside id. Windows that already ended can no
// longer change, so their reports go through the cache when one is configured.
func (u *ReportUseCase) windowReport(ctx context.Context, id entities.DayWindowID) (entities.DailyReport, error) {
	_, end, err := u.calendar.Bounds(id)
	if err != nil {
		return entities.DailyReport{}, ErrInvalidDayWindow
	}
	closed := !u.clock.Now().Before(end)
	key := "report:daily:" + id.String()

	if closed && u.cache != nil {
		cached, ok, err := u.cache.GetReport(ctx, key)
		if err != nil {
			u.log.Warn("report cache read failed", zap.String("day_window_id", id.String()), zap.Error(err))
		} else if ok {
			return cached, nil
		}
	}

	txns, err := u.ledger.ListTransactionsByDayWindow(ctx, id)
	if err != nil {
		return entities.DailyReport{}, fmt.Errorf("list transactions: %w", err)
	}
	inWindow := make([]entities.PaymentTransaction, 0, len(txns))
	for _, t := range txns {
		if !u.calendar.Contains(id, t.ClosedAt) {
			continue
		}
		inWindow = append(inWindow, t)
	}
	report := summarize(id, id, inWindow)

	if closed && u.cache != nil {
		if err := u.cache.PutReport(ctx, key, report); err != nil {
			u.log.Warn("report cache write failed", zap.String("day_window_id", id.String()), zap.Error(err))
		}
	}
	return report, nil
}

func summarize(from, to entities.DayWindowID, txns []entities.PaymentTransaction) entities.DailyReport {
	report := entities.DailyReport{From: from, To: to, ByPaymentMode: []entities.PaymentModeTotals{}}
	byMode := map[entities.PaymentMode]*entities.PaymentModeTotals{}
	for _, t := range txns {
		report.TransactionCount++
		report.TotalCents += t.FinalTotalCents
		m, ok := byMode[t.PaymentMode]
		if !ok {
			m = &entities.PaymentModeTotals{PaymentMode: t.PaymentMode}
			byMode[t.PaymentMode] = m
		}
		m.TransactionCount++
		m.TotalCents += t.FinalTotalCents
	}
	for _, m := range byMode {
		report.ByPaymentMode = append(report.ByPaymentMode, *m)
	}
	sortModes(report.ByPaymentMode)
	return report
}

func merge(from, to entities.DayWindowID, parts []entities.DailyReport) entities.DailyReport {
	report := entities.DailyReport{From: from, To: to}
	byMode := map[entities.PaymentMode]entities.PaymentModeTotals{}
	for _, p := range parts {
		report.TransactionCount += p.TransactionCount
		report.TotalCents += p.TotalCents
		for _, m := range p.ByPaymentMode {
			agg := byMode[m.PaymentMode]
			agg.PaymentMode = m.PaymentMode
			agg.TransactionCount += m.TransactionCount
			agg.TotalCents += m.TotalCents
			byMode[m.PaymentMode] = agg
		}
	}
	report.ByPaymentMode = make([]entities.PaymentModeTotals, 0, len(byMode))
	for _, m := range byMode {
		report.ByPaymentMode = append(report.ByPaymentMode, m)
	}
	sortModes(report.ByPaymentMode)
	return report
}

func sortModes(modes []entities.PaymentModeTotals) {
	sort.Slice(modes, func(i, j int) bool { return modes[i].PaymentMode < modes[j].PaymentMode })
}
