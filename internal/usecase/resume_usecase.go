package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"thirupugazh_pos/internal/clock"
	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase/interfaces"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

var (
	ErrHoldNotFound   = errors.New("hold not found")
	ErrAmbiguousHold  = errors.New("several holds match this customer")
	ErrAlreadyResumed = errors.New("hold already resumed")
	ErrHoldExpired    = errors.New("hold expired")
	ErrForbidden      = errors.New("role not allowed")
)

// AmbiguousHoldError lists the holds sharing a customer key so the caller can pick one.
type AmbiguousHoldError struct {
	CustomerKey string
	Candidates  []entities.HoldRecord
}

func (e *AmbiguousHoldError) Error() string {
	return fmt.Sprintf("%s: %q has %d holds", ErrAmbiguousHold, e.CustomerKey, len(e.Candidates))
}

func (e *AmbiguousHoldError) Unwrap() error { return ErrAmbiguousHold }

// ResumeRequest identifies the hold to bring back. HoldID or HeldAt narrow the lookup when a
// customer name has more than one hold.
type ResumeRequest struct {
	CustomerName string
	HoldID       string
	HeldAt       *time.Time
	Role         entities.Role
}

type ResumeResult struct {
	Bill         entities.Bill
	Hold         entities.HoldRecord
	OverrideUsed bool
}

// IResumeUseCase resolves a hold back into an editable bill.
//
// Outcomes:
//   - granted: the hold is removed and the bill becomes resumed (at most once per hold);
//   - expired_blocked: the hold crossed a day-window cutover and the role cannot override;
//   - not found: nothing matches.
type IResumeUseCase interface {
	Resume(ctx context.Context, req ResumeRequest) (ResumeResult, error)
	ListResumeEvents(ctx context.Context, role entities.Role, holdID string) ([]entities.ResumeEvent, error)
}

type ResumeUseCase struct {
	holds    interfaces.IHoldRepository
	audit    interfaces.IResumeAuditRepository
	policy   interfaces.IRolePolicy
	calendar entities.DayWindowCalendar
	clock    clock.Clock
	ids      *snowflake.Node
	metrics  interfaces.IBillingMetrics
	log      *zap.Logger
}

var _ IResumeUseCase = (*ResumeUseCase)(nil)

func NewResumeUseCase(
	holds interfaces.IHoldRepository,
	audit interfaces.IResumeAuditRepository,
	policy interfaces.IRolePolicy,
	calendar entities.DayWindowCalendar,
	clk clock.Clock,
	ids *snowflake.Node,
	metrics interfaces.IBillingMetrics,
	log *zap.Logger,
) *ResumeUseCase {
	return &ResumeUseCase{
		holds:    holds,
		audit:    audit,
		policy:   policy,
		calendar: calendar,
		clock:    clk,
		ids:      ids,
		metrics:  metricsOrNop(metrics),
		log:      log.Named("resume.usecase"),
	}
}

func (u *ResumeUseCase) Resume(ctx context.Context, req ResumeRequest) (ResumeResult, error) {
	key := entities.CustomerKey(req.CustomerName)
	holdID := strings.TrimSpace(req.HoldID)
	u.log.Info("resume start", zap.String("customer_key", key), zap.String("hold_id", holdID), zap.String("role", string(req.Role)))

	if key == "" {
		return ResumeResult{}, ErrCustomerFieldRequired
	}
	if !u.policy.Allowed(req.Role, entities.ActionHoldResume) {
		return ResumeResult{}, ErrForbidden
	}

	candidates, err := u.holds.FindHoldsByCustomerKey(ctx, key)
	if err != nil {
		return ResumeResult{}, fmt.Errorf("find holds: %w", err)
	}
	hold, err := pickHold(key, candidates, holdID, req.HeldAt)
	if err != nil {
		u.log.Info("resume lookup failed", zap.String("customer_key", key), zap.Int("candidates", len(candidates)), zap.Error(err))
		return ResumeResult{}, err
	}

	now := u.clock.Now()
	expired := u.calendar.WindowOf(hold.HeldAt) != u.calendar.WindowOf(now)
	if expired && !u.policy.Allowed(req.Role, entities.ActionHoldOverrideExpiry) {
		u.record(ctx, hold, req.Role, entities.ResumeOutcomeExpiredBlocked, false, now)
		u.log.Info("resume blocked: hold expired",
			zap.String("hold_id", hold.ID),
			zap.String("held_window", u.calendar.WindowOf(hold.HeldAt).String()),
			zap.String("current_window", u.calendar.WindowOf(now).String()),
		)
		return ResumeResult{}, ErrHoldExpired
	}

	bill, err := u.holds.ClaimHold(ctx, hold.ID, now.UTC())
	if err != nil {
		if errors.Is(err, interfaces.ErrHoldClaimed) {
			u.log.Info("resume lost race", zap.String("hold_id", hold.ID))
			return ResumeResult{}, ErrAlreadyResumed
		}
		u.log.Error("claim hold failed", zap.String("hold_id", hold.ID), zap.Error(err))
		return ResumeResult{}, fmt.Errorf("claim hold: %w", err)
	}

	u.record(ctx, hold, req.Role, entities.ResumeOutcomeGranted, expired, now)
	u.log.Info("resume success", zap.String("hold_id", hold.ID), zap.String("bill_id", bill.ID), zap.Bool("override_used", expired))
	return ResumeResult{Bill: bill, Hold: hold, OverrideUsed: expired}, nil
}

func (u *ResumeUseCase) ListResumeEvents(ctx context.Context, role entities.Role, holdID string) ([]entities.ResumeEvent, error) {
	if !u.policy.Allowed(role, entities.ActionHoldAuditView) {
		return nil, ErrForbidden
	}
	holdID = strings.TrimSpace(holdID)
	if holdID == "" {
		return nil, ErrHoldNotFound
	}
	return u.audit.ListResumeEvents(ctx, holdID)
}

// record appends the audit event. The outcome has already happened, so a failed append is
// logged and not returned.
func (u *ResumeUseCase) record(ctx context.Context, hold entities.HoldRecord, role entities.Role, outcome entities.ResumeOutcome, override bool, at time.Time) {
	u.metrics.ResumeAttempt(outcome, override)
	if u.audit == nil {
		return
	}
	event := entities.ResumeEvent{
		ID:           u.ids.Generate().String(),
		HoldID:       hold.ID,
		BillID:       hold.BillID,
		CustomerKey:  hold.CustomerKey,
		Role:         role,
		Outcome:      outcome,
		OverrideUsed: override,
		At:           at.UTC(),
	}
	if err := u.audit.AppendResumeEvent(ctx, event); err != nil {
		u.log.Error("append resume event failed", zap.String("hold_id", hold.ID), zap.Error(err))
	}
}

func pickHold(key string, candidates []entities.HoldRecord, holdID string, heldAt *time.Time) (entities.HoldRecord, error) {
	if len(candidates) == 0 {
		return entities.HoldRecord{}, ErrHoldNotFound
	}
	if holdID == "" && heldAt == nil {
		if len(candidates) > 1 {
			return entities.HoldRecord{}, &AmbiguousHoldError{CustomerKey: key, Candidates: candidates}
		}
		return candidates[0], nil
	}

	var matched []entities.HoldRecord
	for _, h := range candidates {
		if holdID != "" && h.ID != holdID {
			continue
		}
		if heldAt != nil && !entities.HoldTimestamp(h.HeldAt).Equal(entities.HoldTimestamp(*heldAt)) {
			continue
		}
		matched = append(matched, h)
	}
	switch len(matched) {
	case 0:
		return entities.HoldRecord{}, ErrHoldNotFound
	case 1:
		return matched[0], nil
	default:
		return entities.HoldRecord{}, &AmbiguousHoldError{CustomerKey: key, Candidates: matched}
	}
}
