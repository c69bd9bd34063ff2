package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/infrastructure/database"
	"thirupugazh_pos/internal/usecase/interfaces"

	"gorm.io/gorm"
)

var (
	editableStatuses = []string{string(entities.BillStatusDraft), string(entities.BillStatusResumed)}
	payableStatuses  = []string{string(entities.BillStatusDraft), string(entities.BillStatusResumed)}
)

// GormStore persists the counter state in a SQL database (postgres, mysql or sqlite). Every
// cross-entity change runs in one transaction guarded by a status predicate on the bill row.
type GormStore struct {
	db *gorm.DB
}

var (
	_ interfaces.IBillRepository               = (*GormStore)(nil)
	_ interfaces.IHoldRepository               = (*GormStore)(nil)
	_ interfaces.IPaymentTransactionRepository = (*GormStore)(nil)
	_ interfaces.IResumeAuditRepository        = (*GormStore)(nil)
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Migrate creates or updates the tables.
func (s *GormStore) Migrate(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(Models()...)
}

func (s *GormStore) SaveBill(ctx context.Context, b entities.Bill) error {
	rec, err := toBillRecord(b)
	if err != nil {
		return err
	}

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var cur billRecord
		err := tx.Where("id = ?", b.ID).First(&cur).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			if err := tx.Create(&rec).Error; err != nil {
				if database.IsDuplicateKeyErr(err) {
					return interfaces.ErrBillStateConflict
				}
				return err
			}
			return nil
		}
		if err != nil {
			return err
		}

		res := tx.Model(&billRecord{}).
			Where("id = ? AND status IN ?", b.ID, editableStatuses).
			Updates(billColumns(rec))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 && !entities.BillStatus(cur.Status).Editable() {
			return interfaces.ErrBillStateConflict
		}
		return nil
	})
}

func (s *GormStore) GetBill(ctx context.Context, id string) (entities.Bill, error) {
	var rec billRecord
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.Bill{}, nil
	}
	if err != nil {
		return entities.Bill{}, err
	}
	return fromBillRecord(rec)
}

func (s *GormStore) CreateHold(ctx context.Context, h entities.HoldRecord, b entities.Bill) error {
	rec, err := toBillRecord(b)
	if err != nil {
		return err
	}
	hold := toHoldRecord(h)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&billRecord{}).
			Where("id = ? AND status = ?", b.ID, string(entities.BillStatusDraft)).
			Updates(billColumns(rec))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrBillStateConflict
		}
		return tx.Create(&hold).Error
	})
}

func (s *GormStore) GetHold(ctx context.Context, id string) (entities.HoldRecord, error) {
	var rec holdRecord
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.HoldRecord{}, nil
	}
	if err != nil {
		return entities.HoldRecord{}, err
	}
	return fromHoldRecord(rec), nil
}

func (s *GormStore) FindHoldsByCustomerKey(ctx context.Context, customerKey string) ([]entities.HoldRecord, error) {
	var recs []holdRecord
	err := s.db.WithContext(ctx).
		Where("customer_key = ?", customerKey).
		Order("held_at ASC, id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	out := make([]entities.HoldRecord, 0, len(recs))
	for _, r := range recs {
		out = append(out, fromHoldRecord(r))
	}
	return out, nil
}

func (s *GormStore) ListHoldsPage(ctx context.Context, cursor string, limit int) ([]entities.HoldRecord, string, error) {
	q := s.db.WithContext(ctx).Model(&holdRecord{}).Order("held_at ASC, id ASC").Limit(limit + 1)
	if after, ok := parseHoldCursor(cursor); ok {
		at := after.HeldAt.UTC()
		q = q.Where("held_at > ? OR (held_at = ? AND id > ?)", at, at, after.ID)
	}

	var recs []holdRecord
	if err := q.Find(&recs).Error; err != nil {
		return nil, "", err
	}

	next := ""
	if len(recs) > limit {
		recs = recs[:limit]
		next = holdCursor(fromHoldRecord(recs[limit-1]))
	}
	page := make([]entities.HoldRecord, 0, len(recs))
	for _, r := range recs {
		page = append(page, fromHoldRecord(r))
	}
	return page, next, nil
}

func (s *GormStore) ClaimHold(ctx context.Context, holdID string, resumedAt time.Time) (entities.Bill, error) {
	var out entities.Bill
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var hold holdRecord
		err := tx.Where("id = ?", holdID).First(&hold).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return interfaces.ErrHoldClaimed
		}
		if err != nil {
			return err
		}

		del := tx.Where("id = ?", holdID).Delete(&holdRecord{})
		if del.Error != nil {
			return del.Error
		}
		if del.RowsAffected == 0 {
			return interfaces.ErrHoldClaimed
		}

		upd := tx.Model(&billRecord{}).
			Where("id = ? AND status = ?", hold.BillID, string(entities.BillStatusHeld)).
			Updates(map[string]any{
				"status":     string(entities.BillStatusResumed),
				"updated_at": resumedAt.UTC(),
			})
		if upd.Error != nil {
			return upd.Error
		}
		if upd.RowsAffected == 0 {
			return interfaces.ErrBillStateConflict
		}

		var rec billRecord
		if err := tx.Where("id = ?", hold.BillID).First(&rec).Error; err != nil {
			return err
		}
		out, err = fromBillRecord(rec)
		return err
	})
	if err != nil {
		return entities.Bill{}, err
	}
	return out, nil
}

func (s *GormStore) GetTransaction(ctx context.Context, transactionID string) (entities.PaymentTransaction, error) {
	var rec transactionRecord
	err := s.db.WithContext(ctx).Where("transaction_id = ?", transactionID).First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return entities.PaymentTransaction{}, nil
	}
	if err != nil {
		return entities.PaymentTransaction{}, err
	}
	return fromTransactionRecord(rec), nil
}

func (s *GormStore) FinalizeBill(ctx context.Context, txn entities.PaymentTransaction, b entities.Bill) error {
	rec, err := toBillRecord(b)
	if err != nil {
		return err
	}
	txnRec := toTransactionRecord(txn)

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&txnRec).Error; err != nil {
			if database.IsDuplicateKeyErr(err) {
				return interfaces.ErrTransactionExists
			}
			return fmt.Errorf("insert transaction: %w", err)
		}

		res := tx.Model(&billRecord{}).
			Where("id = ? AND status IN ?", b.ID, payableStatuses).
			Updates(billColumns(rec))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return interfaces.ErrBillStateConflict
		}

		return tx.Where("bill_id = ?", b.ID).Delete(&holdRecord{}).Error
	})
}

func (s *GormStore) ListTransactionsByDayWindow(ctx context.Context, id entities.DayWindowID) ([]entities.PaymentTransaction, error) {
	var recs []transactionRecord
	err := s.db.WithContext(ctx).
		Where("day_window_id = ?", id.String()).
		Order("closed_at ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	out := make([]entities.PaymentTransaction, 0, len(recs))
	for _, r := range recs {
		out = append(out, fromTransactionRecord(r))
	}
	return out, nil
}

func (s *GormStore) AppendResumeEvent(ctx context.Context, e entities.ResumeEvent) error {
	rec := toResumeEventRecord(e)
	return s.db.WithContext(ctx).Create(&rec).Error
}

func (s *GormStore) ListResumeEvents(ctx context.Context, holdID string) ([]entities.ResumeEvent, error) {
	var recs []resumeEventRecord
	err := s.db.WithContext(ctx).
		Where("hold_id = ?", holdID).
		Order("occurred_at ASC, id ASC").
		Find(&recs).Error
	if err != nil {
		return nil, err
	}

	out := make([]entities.ResumeEvent, 0, len(recs))
	for _, r := range recs {
		out = append(out, fromResumeEventRecord(r))
	}
	return out, nil
}

// billColumns lists every mutable column so zero values (an emptied cart, a cleared discount)
// are written too.
func billColumns(r billRecord) map[string]any {
	return map[string]any{
		"items":            r.Items,
		"discount_percent": r.DiscountPercent,
		"customer_name":    r.CustomerName,
		"customer_phone":   r.CustomerPhone,
		"status":           r.Status,
		"updated_at":       r.UpdatedAt,
	}
}
