package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"thirupugazh_pos/internal/clock"
	"thirupugazh_pos/internal/domain/cart"
	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrBillNotFound      = errors.New("bill not found")
	ErrMenuItemNotFound  = errors.New("menu item not found")
	ErrInvalidBillStatus = errors.New("operation not allowed in current bill status")
	ErrEmptyBill         = errors.New("bill has no items")
)

// ICartUseCase exposes the cart engine to terminals.
//
// A bill is created as draft by the first AddItem call without a bill id. Items and discount can
// only change while the bill is draft or resumed.
type ICartUseCase interface {
	AddItem(ctx context.Context, billID, menuItemID string, qty int) (entities.PricedBill, error)
	RemoveItem(ctx context.Context, billID, menuItemID string, qty int) (entities.PricedBill, error)
	ApplyDiscount(ctx context.Context, billID string, percent decimal.Decimal) (entities.PricedBill, error)
	GetBill(ctx context.Context, billID string) (entities.PricedBill, error)
	ListMenu(ctx context.Context) ([]entities.MenuItem, error)
}

type CartUseCase struct {
	bills   interfaces.IBillRepository
	catalog interfaces.IMenuCatalog
	clock   clock.Clock
	log     *zap.Logger
}

var _ ICartUseCase = (*CartUseCase)(nil)

func NewCartUseCase(bills interfaces.IBillRepository, catalog interfaces.IMenuCatalog, clk clock.Clock, log *zap.Logger) *CartUseCase {
	return &CartUseCase{bills: bills, catalog: catalog, clock: clk, log: log.Named("cart.usecase")}
}

func (u *CartUseCase) AddItem(ctx context.Context, billID, menuItemID string, qty int) (entities.PricedBill, error) {
	billID = strings.TrimSpace(billID)
	menuItemID = strings.TrimSpace(menuItemID)

	item, err := u.catalog.GetMenuItem(ctx, menuItemID)
	if err != nil {
		return entities.PricedBill{}, fmt.Errorf("resolve menu item: %w", err)
	}
	if item.ID == "" {
		u.log.Info("menu item not found", zap.String("menu_item_id", menuItemID))
		return entities.PricedBill{}, ErrMenuItemNotFound
	}

	var bill entities.Bill
	if billID == "" {
		now := u.clock.Now().UTC()
		bill = entities.Bill{
			ID:              uuid.NewString(),
			DiscountPercent: decimal.Zero,
			Status:          entities.BillStatusDraft,
			CreatedAt:       now,
		}
	} else {
		bill, err = u.loadEditable(ctx, billID)
		if err != nil {
			return entities.PricedBill{}, err
		}
	}

	updated, err := cart.AddItem(bill, item, qty)
	if err != nil {
		return entities.PricedBill{}, err
	}
	return u.save(ctx, updated, "add-item")
}

func (u *CartUseCase) RemoveItem(ctx context.Context, billID, menuItemID string, qty int) (entities.PricedBill, error) {
	bill, err := u.loadEditable(ctx, strings.TrimSpace(billID))
	if err != nil {
		return entities.PricedBill{}, err
	}
	updated, err := cart.RemoveItem(bill, strings.TrimSpace(menuItemID), qty)
	if err != nil {
		return entities.PricedBill{}, err
	}
	return u.save(ctx, updated, "remove-item")
}

func (u *CartUseCase) ApplyDiscount(ctx context.Context, billID string, percent decimal.Decimal) (entities.PricedBill, error) {
	bill, err := u.loadEditable(ctx, strings.TrimSpace(billID))
	if err != nil {
		return entities.PricedBill{}, err
	}
	updated, err := cart.ApplyDiscount(bill, percent)
	if err != nil {
		return entities.PricedBill{}, err
	}
	return u.save(ctx, updated, "apply-discount")
}

func (u *CartUseCase) GetBill(ctx context.Context, billID string) (entities.PricedBill, error) {
	bill, err := u.load(ctx, strings.TrimSpace(billID))
	if err != nil {
		return entities.PricedBill{}, err
	}
	return entities.PricedBill{Bill: bill, Totals: cart.ComputeTotal(bill)}, nil
}

func (u *CartUseCase) ListMenu(ctx context.Context) ([]entities.MenuItem, error) {
	return u.catalog.ListMenuItems(ctx)
}

func (u *CartUseCase) load(ctx context.Context, billID string) (entities.Bill, error) {
	if billID == "" {
		return entities.Bill{}, ErrBillNotFound
	}
	bill, err := u.bills.GetBill(ctx, billID)
	if err != nil {
		return entities.Bill{}, fmt.Errorf("load bill: %w", err)
	}
	if bill.ID == "" {
		return entities.Bill{}, ErrBillNotFound
	}
	return bill, nil
}

func (u *CartUseCase) loadEditable(ctx context.Context, billID string) (entities.Bill, error) {
	bill, err := u.load(ctx, billID)
	if err != nil {
		return entities.Bill{}, err
	}
	if !bill.Status.Editable() {
		u.log.Info("bill not editable", zap.String("bill_id", bill.ID), zap.String("status", string(bill.Status)))
		return entities.Bill{}, ErrInvalidBillStatus
	}
	return bill, nil
}

func (u *CartUseCase) save(ctx context.Context, bill entities.Bill, action string) (entities.PricedBill, error) {
	bill.UpdatedAt = u.clock.Now().UTC()
	if err := u.bills.SaveBill(ctx, bill); err != nil {
		if errors.Is(err, interfaces.ErrBillStateConflict) {
			return entities.PricedBill{}, ErrInvalidBillStatus
		}
		u.log.Error("save bill failed", zap.String("action", action), zap.String("bill_id", bill.ID), zap.Error(err))
		return entities.PricedBill{}, fmt.Errorf("save bill: %w", err)
	}
	totals := cart.ComputeTotal(bill)
	u.log.Debug("bill updated",
		zap.String("action", action),
		zap.String("bill_id", bill.ID),
		zap.Int("lines", len(bill.Items)),
		zap.Int64("total_cents", totals.TotalCents),
	)
	return entities.PricedBill{Bill: bill, Totals: totals}, nil
}
