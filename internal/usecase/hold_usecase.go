package usecase

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"strings"
	"time"

	"thirupugazh_pos/internal/clock"
	"thirupugazh_pos/internal/domain/cart"
	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase/interfaces"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

var ErrCustomerFieldRequired = errors.New("customer field required")

const defaultHoldPageSize = 50

// IHoldUseCase parks draft bills under a customer name and lists what is parked.
type IHoldUseCase interface {
	Hold(ctx context.Context, billID, customerName string) (entities.HoldRecord, error)
	ListHeld(ctx context.Context, role entities.Role) iter.Seq2[entities.HeldBill, error]
	DayWindowOf(t time.Time) entities.DayWindowID
}

type HoldUseCase struct {
	bills    interfaces.IBillRepository
	holds    interfaces.IHoldRepository
	policy   interfaces.IRolePolicy
	calendar entities.DayWindowCalendar
	clock    clock.Clock
	metrics  interfaces.IBillingMetrics
	log      *zap.Logger
	pageSize int
}

var _ IHoldUseCase = (*HoldUseCase)(nil)

func NewHoldUseCase(
	bills interfaces.IBillRepository,
	holds interfaces.IHoldRepository,
	policy interfaces.IRolePolicy,
	calendar entities.DayWindowCalendar,
	clk clock.Clock,
	metrics interfaces.IBillingMetrics,
	log *zap.Logger,
) *HoldUseCase {
	return &HoldUseCase{
		bills:    bills,
		holds:    holds,
		policy:   policy,
		calendar: calendar,
		clock:    clk,
		metrics:  metricsOrNop(metrics),
		log:      log.Named("hold.usecase"),
		pageSize: defaultHoldPageSize,
	}
}

// WithPageSize overrides how many holds ListHeld reads per round trip.
func (u *HoldUseCase) WithPageSize(n int) *HoldUseCase {
	if n > 0 {
		u.pageSize = n
	}
	return u
}

func (u *HoldUseCase) DayWindowOf(t time.Time) entities.DayWindowID {
	return u.calendar.WindowOf(t)
}

func (u *HoldUseCase) Hold(ctx context.Context, billID, customerName string) (entities.HoldRecord, error) {
	billID = strings.TrimSpace(billID)
	customerName = strings.TrimSpace(customerName)
	key := entities.CustomerKey(customerName)
	u.log.Info("hold start", zap.String("bill_id", billID), zap.String("customer_key", key))

	if key == "" {
		return entities.HoldRecord{}, ErrCustomerFieldRequired
	}
	if billID == "" {
		return entities.HoldRecord{}, ErrBillNotFound
	}

	bill, err := u.bills.GetBill(ctx, billID)
	if err != nil {
		return entities.HoldRecord{}, fmt.Errorf("load bill: %w", err)
	}
	if bill.ID == "" {
		return entities.HoldRecord{}, ErrBillNotFound
	}
	if bill.Status != entities.BillStatusDraft {
		u.log.Info("hold rejected", zap.String("bill_id", billID), zap.String("status", string(bill.Status)))
		return entities.HoldRecord{}, ErrInvalidBillStatus
	}
	if cart.IsEmpty(bill) {
		return entities.HoldRecord{}, ErrEmptyBill
	}

	now := u.clock.Now()
	hold := entities.HoldRecord{
		ID:           ulid.Make().String(),
		BillID:       bill.ID,
		CustomerName: customerName,
		CustomerKey:  key,
		HeldAt:       entities.HoldTimestamp(now),
		DayWindowID:  u.calendar.WindowOf(now),
	}
	bill.Status = entities.BillStatusHeld
	bill.CustomerName = customerName
	bill.UpdatedAt = now.UTC()

	if err := u.holds.CreateHold(ctx, hold, bill); err != nil {
		if errors.Is(err, interfaces.ErrBillStateConflict) {
			return entities.HoldRecord{}, ErrInvalidBillStatus
		}
		u.log.Error("hold failed", zap.String("bill_id", billID), zap.Error(err))
		return entities.HoldRecord{}, fmt.Errorf("create hold: %w", err)
	}

	u.metrics.HoldCreated()
	u.log.Info("hold success",
		zap.String("bill_id", billID),
		zap.String("hold_id", hold.ID),
		zap.String("day_window_id", hold.DayWindowID.String()),
	)
	return hold, nil
}

// ListHeld yields every hold visible to role, flagged against the current day window. The
// sequence reads the store lazily page by page and starts over on every range, so it always
// reflects the store at iteration time. Roles without the expired-hold privilege only see holds
// from the current window.
func (u *HoldUseCase) ListHeld(ctx context.Context, role entities.Role) iter.Seq2[entities.HeldBill, error] {
	return func(yield func(entities.HeldBill, error) bool) {
		current := u.calendar.WindowOf(u.clock.Now())
		showExpired := u.policy.Allowed(role, entities.ActionHoldViewExpired)

		cursor := ""
		for {
			page, next, err := u.holds.ListHoldsPage(ctx, cursor, u.pageSize)
			if err != nil {
				yield(entities.HeldBill{}, fmt.Errorf("list holds: %w", err))
				return
			}
			for _, h := range page {
				expired := u.calendar.WindowOf(h.HeldAt) != current
				if expired && !showExpired {
					continue
				}
				if !yield(entities.HeldBill{HoldRecord: h, IsExpired: expired}, nil) {
					return
				}
			}
			if next == "" {
				return
			}
			cursor = next
		}
	}
}
