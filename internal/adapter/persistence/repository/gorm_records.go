package repository

import (
	"encoding/json"
	"time"

	"thirupugazh_pos/internal/domain/entities"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type billRecord struct {
	ID              string         `gorm:"primaryKey;size:64"`
	Items           datatypes.JSON `gorm:"not null"`
	DiscountPercent string         `gorm:"size:16;not null;default:'0'"`
	CustomerName    string         `gorm:"size:255"`
	CustomerPhone   string         `gorm:"size:32"`
	Status          string         `gorm:"size:16;not null;index"`
	CreatedAt       time.Time      `gorm:"autoCreateTime:false"`
	UpdatedAt       time.Time      `gorm:"autoUpdateTime:false"`
}

func (billRecord) TableName() string { return "bills" }

type holdRecord struct {
	ID           string    `gorm:"primaryKey;size:64"`
	BillID       string    `gorm:"size:64;not null;index"`
	CustomerName string    `gorm:"size:255;not null"`
	CustomerKey  string    `gorm:"size:255;not null;index"`
	HeldAt       time.Time `gorm:"not null;index"`
	DayWindowID  string    `gorm:"size:10;not null"`
}

func (holdRecord) TableName() string { return "holds" }

type transactionRecord struct {
	TransactionID   string `gorm:"primaryKey;size:128"`
	BillID          string `gorm:"size:64;not null;index"`
	PaymentMode     string `gorm:"size:16;not null"`
	SubtotalCents   int64  `gorm:"not null"`
	DiscountCents   int64  `gorm:"not null"`
	FinalTotalCents int64  `gorm:"not null"`
	CustomerName    string `gorm:"size:255"`
	CustomerPhone   string `gorm:"size:32"`
	CashDetails     string `gorm:"size:255"`
	DayWindowID     string `gorm:"size:10;not null;index"`
	ClosedAt        time.Time
	ProviderStatus  string `gorm:"size:64"`
	ProviderPayload datatypes.JSON
}

func (transactionRecord) TableName() string { return "payment_transactions" }

type resumeEventRecord struct {
	ID           string `gorm:"primaryKey;size:32"`
	HoldID       string `gorm:"size:64;not null;index"`
	BillID       string `gorm:"size:64;not null"`
	CustomerKey  string `gorm:"size:255;not null"`
	Role         string `gorm:"size:16;not null"`
	Outcome      string `gorm:"size:32;not null"`
	OverrideUsed bool
	At           time.Time `gorm:"column:occurred_at;not null"`
}

func (resumeEventRecord) TableName() string { return "resume_events" }

// Models lists the tables GormStore needs, for AutoMigrate.
func Models() []any {
	return []any{&billRecord{}, &holdRecord{}, &transactionRecord{}, &resumeEventRecord{}}
}

func toBillRecord(b entities.Bill) (billRecord, error) {
	items := b.Items
	if items == nil {
		items = []entities.LineItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return billRecord{}, err
	}
	return billRecord{
		ID:              b.ID,
		Items:           datatypes.JSON(raw),
		DiscountPercent: b.DiscountPercent.String(),
		CustomerName:    b.CustomerName,
		CustomerPhone:   b.CustomerPhone,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt.UTC(),
		UpdatedAt:       b.UpdatedAt.UTC(),
	}, nil
}

func fromBillRecord(r billRecord) (entities.Bill, error) {
	var items []entities.LineItem
	if len(r.Items) > 0 {
		if err := json.Unmarshal(r.Items, &items); err != nil {
			return entities.Bill{}, err
		}
	}
	pct, err := decimal.NewFromString(r.DiscountPercent)
	if err != nil {
		return entities.Bill{}, err
	}
	return entities.Bill{
		ID:              r.ID,
		Items:           items,
		DiscountPercent: pct,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		Status:          entities.BillStatus(r.Status),
		CreatedAt:       r.CreatedAt.UTC(),
		UpdatedAt:       r.UpdatedAt.UTC(),
	}, nil
}

func toHoldRecord(h entities.HoldRecord) holdRecord {
	return holdRecord{
		ID:           h.ID,
		BillID:       h.BillID,
		CustomerName: h.CustomerName,
		CustomerKey:  h.CustomerKey,
		HeldAt:       entities.HoldTimestamp(h.HeldAt),
		DayWindowID:  h.DayWindowID.String(),
	}
}

func fromHoldRecord(r holdRecord) entities.HoldRecord {
	return entities.HoldRecord{
		ID:           r.ID,
		BillID:       r.BillID,
		CustomerName: r.CustomerName,
		CustomerKey:  r.CustomerKey,
		HeldAt:       r.HeldAt.UTC(),
		DayWindowID:  entities.DayWindowID(r.DayWindowID),
	}
}

func toTransactionRecord(t entities.PaymentTransaction) transactionRecord {
	return transactionRecord{
		TransactionID:   t.TransactionID,
		BillID:          t.BillID,
		PaymentMode:     string(t.PaymentMode),
		SubtotalCents:   t.SubtotalCents,
		DiscountCents:   t.DiscountCents,
		FinalTotalCents: t.FinalTotalCents,
		CustomerName:    t.CustomerName,
		CustomerPhone:   t.CustomerPhone,
		CashDetails:     t.CashDetails,
		DayWindowID:     t.DayWindowID.String(),
		ClosedAt:        t.ClosedAt.UTC(),
		ProviderStatus:  t.ProviderStatus,
		ProviderPayload: datatypes.JSON(t.ProviderPayload),
	}
}

func fromTransactionRecord(r transactionRecord) entities.PaymentTransaction {
	var payload json.RawMessage
	if len(r.ProviderPayload) > 0 {
		payload = json.RawMessage(r.ProviderPayload)
	}
	return entities.PaymentTransaction{
		TransactionID:   r.TransactionID,
		BillID:          r.BillID,
		PaymentMode:     entities.PaymentMode(r.PaymentMode),
		SubtotalCents:   r.SubtotalCents,
		DiscountCents:   r.DiscountCents,
		FinalTotalCents: r.FinalTotalCents,
		CustomerName:    r.CustomerName,
		CustomerPhone:   r.CustomerPhone,
		CashDetails:     r.CashDetails,
		DayWindowID:     entities.DayWindowID(r.DayWindowID),
		ClosedAt:        r.ClosedAt.UTC(),
		ProviderStatus:  r.ProviderStatus,
		ProviderPayload: payload,
	}
}

func toResumeEventRecord(e entities.ResumeEvent) resumeEventRecord {
	return resumeEventRecord{
		ID:           e.ID,
		HoldID:       e.HoldID,
		BillID:       e.BillID,
		CustomerKey:  e.CustomerKey,
		Role:         string(e.Role),
		Outcome:      string(e.Outcome),
		OverrideUsed: e.OverrideUsed,
		At:           e.At.UTC(),
	}
}

func fromResumeEventRecord(r resumeEventRecord) entities.ResumeEvent {
	return entities.ResumeEvent{
		ID:           r.ID,
		HoldID:       r.HoldID,
		BillID:       r.BillID,
		CustomerKey:  r.CustomerKey,
		Role:         entities.Role(r.Role),
		Outcome:      entities.ResumeOutcome(r.Outcome),
		OverrideUsed: r.OverrideUsed,
		At:           r.At.UTC(),
	}
}
