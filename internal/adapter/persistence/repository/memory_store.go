package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase/interfaces"
)

// MemoryStore keeps bills, holds, transactions and resume events in process memory. One mutex
// guards every map, so the cross-entity operations (CreateHold, ClaimHold, FinalizeBill) are
// single critical sections.
type MemoryStore struct {
	mu     sync.Mutex
	bills  map[string]entities.Bill
	holds  map[string]entities.HoldRecord
	txns   map[string]entities.PaymentTransaction
	events []entities.ResumeEvent
}

var (
	_ interfaces.IBillRepository               = (*MemoryStore)(nil)
	_ interfaces.IHoldRepository               = (*MemoryStore)(nil)
	_ interfaces.IPaymentTransactionRepository = (*MemoryStore)(nil)
	_ interfaces.IResumeAuditRepository        = (*MemoryStore)(nil)
)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		bills: map[string]entities.Bill{},
		holds: map[string]entities.HoldRecord{},
		txns:  map[string]entities.PaymentTransaction{},
	}
}

func (s *MemoryStore) SaveBill(_ context.Context, b entities.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, ok := s.bills[b.ID]; ok && !cur.Status.Editable() {
		return interfaces.ErrBillStateConflict
	}
	s.bills[b.ID] = b.Clone()
	return nil
}

func (s *MemoryStore) GetBill(_ context.Context, id string) (entities.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bills[id].Clone(), nil
}

func (s *MemoryStore) CreateHold(_ context.Context, h entities.HoldRecord, b entities.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur, ok := s.bills[b.ID]
	if !ok || cur.Status != entities.BillStatusDraft {
		return interfaces.ErrBillStateConflict
	}
	s.bills[b.ID] = b.Clone()
	h.HeldAt = entities.HoldTimestamp(h.HeldAt)
	s.holds[h.ID] = h
	return nil
}

func (s *MemoryStore) GetHold(_ context.Context, id string) (entities.HoldRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.holds[id], nil
}

func (s *MemoryStore) FindHoldsByCustomerKey(_ context.Context, customerKey string) ([]entities.HoldRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entities.HoldRecord
	for _, h := range s.holds {
		if h.CustomerKey == customerKey {
			out = append(out, h)
		}
	}
	sortHolds(out)
	return out, nil
}

func (s *MemoryStore) ListHoldsPage(_ context.Context, cursor string, limit int) ([]entities.HoldRecord, string, error) {
	s.mu.Lock()
	all := make([]entities.HoldRecord, 0, len(s.holds))
	for _, h := range s.holds {
		all = append(all, h)
	}
	s.mu.Unlock()

	page, next := pageHolds(all, cursor, limit)
	return page, next, nil
}

func (s *MemoryStore) ClaimHold(_ context.Context, holdID string, resumedAt time.Time) (entities.Bill, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	h, ok := s.holds[holdID]
	if !ok {
		return entities.Bill{}, interfaces.ErrHoldClaimed
	}
	b, ok := s.bills[h.BillID]
	if !ok || b.Status != entities.BillStatusHeld {
		return entities.Bill{}, interfaces.ErrBillStateConflict
	}
	delete(s.holds, holdID)
	b.Status = entities.BillStatusResumed
	b.UpdatedAt = resumedAt
	s.bills[b.ID] = b
	return b.Clone(), nil
}

func (s *MemoryStore) GetTransaction(_ context.Context, transactionID string) (entities.PaymentTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.txns[transactionID], nil
}

func (s *MemoryStore) FinalizeBill(_ context.Context, txn entities.PaymentTransaction, b entities.Bill) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.txns[txn.TransactionID]; ok {
		return interfaces.ErrTransactionExists
	}
	cur, ok := s.bills[b.ID]
	if !ok || !cur.Status.Payable() {
		return interfaces.ErrBillStateConflict
	}
	s.txns[txn.TransactionID] = txn
	s.bills[b.ID] = b.Clone()
	for id, h := range s.holds {
		if h.BillID == b.ID {
			delete(s.holds, id)
		}
	}
	return nil
}

func (s *MemoryStore) ListTransactionsByDayWindow(_ context.Context, id entities.DayWindowID) ([]entities.PaymentTransaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entities.PaymentTransaction
	for _, t := range s.txns {
		if t.DayWindowID == id {
			out = append(out, t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ClosedAt.Before(out[j].ClosedAt) })
	return out, nil
}

func (s *MemoryStore) AppendResumeEvent(_ context.Context, e entities.ResumeEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return nil
}

func (s *MemoryStore) ListResumeEvents(_ context.Context, holdID string) ([]entities.ResumeEvent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entities.ResumeEvent
	for _, e := range s.events {
		if e.HoldID == holdID {
			out = append(out, e)
		}
	}
	return out, nil
}
