package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"thirupugazh_pos/internal/clock"
	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/usecase/interfaces"
	mock_interfaces "thirupugazh_pos/internal/usecase/interfaces/mocks"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestResumeUseCase_Lookup(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t, at(12, 0))
		if _, err := f.resume.Resume(ctx, ResumeRequest{CustomerName: "nobody", Role: entities.RoleAdmin}); !errors.Is(err, ErrHoldNotFound) {
			t.Fatalf("expected ErrHoldNotFound, got %v", err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		f := newFixture(t, at(12, 0))
		if _, err := f.resume.Resume(ctx, ResumeRequest{Role: entities.RoleAdmin}); !errors.Is(err, ErrCustomerFieldRequired) {
			t.Fatalf("expected ErrCustomerFieldRequired, got %v", err)
		}
	})

	t.Run("unknown role", func(t *testing.T) {
		f := newFixture(t, at(12, 0))
		f.held(t, "Alice")
		if _, err := f.resume.Resume(ctx, ResumeRequest{CustomerName: "Alice", Role: "guest"}); !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})

	t.Run("duplicate names are ambiguous until disambiguated", func(t *testing.T) {
		f := newFixture(t, at(12, 0))
		_, first := f.held(t, "Alice")
		f.clock.Advance(time.Minute)
		secondBill, second := f.held(t, "alice")

		_, err := f.resume.Resume(ctx, ResumeRequest{CustomerName: "ALICE", Role: entities.RoleStaff})
		var amb *AmbiguousHoldError
		if !errors.As(err, &amb) || !errors.Is(err, ErrAmbiguousHold) {
			t.Fatalf("expected AmbiguousHoldError, got %v", err)
		}
		if len(amb.Candidates) != 2 || amb.Candidates[0].ID != first.ID {
			t.Fatalf("unexpected candidates %+v", amb.Candidates)
		}

		heldAt := second.HeldAt
		res, err := f.resume.Resume(ctx, ResumeRequest{CustomerName: "Alice", HeldAt: &heldAt, Role: entities.RoleStaff})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Bill.ID != secondBill.ID || res.Hold.ID != second.ID {
			t.Fatalf("resumed the wrong hold %+v", res.Hold)
		}

		// only one left, so the name alone resolves it
		res, err = f.resume.Resume(ctx, ResumeRequest{CustomerName: "Alice", Role: entities.RoleStaff})
		if err != nil || res.Hold.ID != first.ID {
			t.Fatalf("unexpected result hold=%+v err=%v", res.Hold, err)
		}
	})

	t.Run("held_at returned by hold selects it", func(t *testing.T) {
		f := newFixture(t, at(12, 0).Add(123456789*time.Nanosecond))
		_, first := f.held(t, "Alice")
		f.clock.Advance(time.Millisecond + 321*time.Nanosecond)
		_, second := f.held(t, "Alice")

		for _, h := range []entities.HoldRecord{first, second} {
			if h.HeldAt.Nanosecond()%int(time.Millisecond) != 0 {
				t.Fatalf("held_at %s carries sub-millisecond precision", h.HeldAt)
			}
		}

		heldAt := first.HeldAt
		res, err := f.resume.Resume(ctx, ResumeRequest{CustomerName: "Alice", HeldAt: &heldAt, Role: entities.RoleStaff})
		if err != nil || res.Hold.ID != first.ID {
			t.Fatalf("unexpected result hold=%+v err=%v", res.Hold, err)
		}
	})

	t.Run("selector matching nothing", func(t *testing.T) {
		f := newFixture(t, at(12, 0))
		f.held(t, "Alice")
		if _, err := f.resume.Resume(ctx, ResumeRequest{CustomerName: "Alice", HoldID: "other", Role: entities.RoleStaff}); !errors.Is(err, ErrHoldNotFound) {
			t.Fatalf("expected ErrHoldNotFound, got %v", err)
		}
	})
}

func TestResumeUseCase_ExpiryAcrossCutover(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t, at(14, 59))
	b, h := f.held(t, "Alice")
	f.clock.Set(at(15, 1))

	_, err := f.resume.Resume(ctx, ResumeRequest{CustomerName: "Alice", Role: entities.RoleStaff})
	if !errors.Is(err, ErrHoldExpired) {
		t.Fatalf("staff: expected ErrHoldExpired, got %v", err)
	}
	if got, _ := f.store.GetHold(ctx, h.ID); got.ID != h.ID {
		t.Fatalf("hold must be retained after a blocked resume")
	}

	res, err := f.resume.Resume(ctx, ResumeRequest{CustomerName: "Alice", Role: entities.RoleAdmin})
	if err != nil {
		t.Fatalf("admin: unexpected error: %v", err)
	}
	if !res.OverrideUsed || res.Bill.ID != b.ID || res.Bill.Status != entities.BillStatusResumed {
		t.Fatalf("unexpected result %+v", res)
	}
	if got, _ := f.store.GetHold(ctx, h.ID); got.ID != "" {
		t.Fatalf("hold must be removed after override")
	}

	events, err := f.resume.ListResumeEvents(ctx, entities.RoleAdmin, h.ID)
	if err != nil {
		t.Fatalf("list events: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].Outcome != entities.ResumeOutcomeExpiredBlocked || events[0].Role != entities.RoleStaff || events[0].OverrideUsed {
		t.Fatalf("unexpected first event %+v", events[0])
	}
	if events[1].Outcome != entities.ResumeOutcomeGranted || !events[1].OverrideUsed || events[1].ID == "" {
		t.Fatalf("unexpected second event %+v", events[1])
	}

	if _, err := f.resume.ListResumeEvents(ctx, entities.RoleStaff, h.ID); !errors.Is(err, ErrForbidden) {
		t.Fatalf("expected ErrForbidden for staff audit view, got %v", err)
	}
}

func TestResumeUseCase_AcrossDayWindows(t *testing.T) {
	ctx := context.Background()
	// W1 opens 2026-10-16 15:00, W2 opens 2026-10-17 15:00
	for _, role := range []entities.Role{entities.RoleStaff, entities.RoleAdmin} {
		t.Run(string(role), func(t *testing.T) {
			f := newFixture(t, at(10, 0))
			_, h := f.held(t, "Alice")
			f.clock.Set(at(10, 0).Add(26 * time.Hour))

			res, err := f.resume.Resume(ctx, ResumeRequest{CustomerName: "Alice", Role: role})
			remaining, _ := f.store.GetHold(ctx, h.ID)
			switch role {
			case entities.RoleStaff:
				if !errors.Is(err, ErrHoldExpired) || remaining.ID == "" {
					t.Fatalf("expected ErrHoldExpired with hold kept, got err=%v hold=%+v", err, remaining)
				}
			case entities.RoleAdmin:
				if err != nil || !res.OverrideUsed || remaining.ID != "" {
					t.Fatalf("expected override with hold removed, got err=%v res=%+v hold=%+v", err, res, remaining)
				}
			}
		})
	}
}

func TestResumeUseCase_SameWindowNoOverride(t *testing.T) {
	f := newFixture(t, at(15, 0))
	f.held(t, "Alice")
	f.clock.Set(at(15, 0).Add(23*time.Hour + 59*time.Minute))

	res, err := f.resume.Resume(context.Background(), ResumeRequest{CustomerName: "Alice", Role: entities.RoleStaff})
	if err != nil || res.OverrideUsed {
		t.Fatalf("unexpected result %+v err=%v", res, err)
	}
}

func TestResumeUseCase_ConcurrentResumeGrantsOnce(t *testing.T) {
	f := newFixture(t, at(12, 0))
	b, _ := f.held(t, "Alice")

	const attempts = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		granted []entities.Bill
		errs    []error
	)
	start := make(chan struct{})
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			res, err := f.resume.Resume(context.Background(), ResumeRequest{CustomerName: "Alice", Role: entities.RoleStaff})
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				errs = append(errs, err)
				return
			}
			granted = append(granted, res.Bill)
		}()
	}
	close(start)
	wg.Wait()

	if len(granted) != 1 || granted[0].ID != b.ID {
		t.Fatalf("expected exactly one grant, got %d", len(granted))
	}
	for _, err := range errs {
		if !errors.Is(err, ErrAlreadyResumed) && !errors.Is(err, ErrHoldNotFound) {
			t.Fatalf("unexpected error %v", err)
		}
	}
}

func TestResumeUseCase_ClaimRace(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	holds := mock_interfaces.NewMockIHoldRepository(ctrl)
	audit := mock_interfaces.NewMockIResumeAuditRepository(ctrl)
	policy := mock_interfaces.NewMockIRolePolicy(ctrl)
	metrics := mock_interfaces.NewMockIBillingMetrics(ctrl)
	node, _ := snowflake.NewNode(2)
	uc := NewResumeUseCase(holds, audit, policy, entities.NewDayWindowCalendar(time.UTC, 15), clock.NewFakeClock(at(12, 0)), node, metrics, zap.NewNop())

	hold := entities.HoldRecord{ID: "h1", BillID: "b1", CustomerKey: "alice", HeldAt: at(11, 0)}
	policy.EXPECT().Allowed(entities.RoleStaff, entities.ActionHoldResume).Return(true)
	holds.EXPECT().FindHoldsByCustomerKey(gomock.Any(), "alice").Return([]entities.HoldRecord{hold}, nil)
	holds.EXPECT().ClaimHold(gomock.Any(), "h1", gomock.Any()).Return(entities.Bill{}, interfaces.ErrHoldClaimed)

	_, err := uc.Resume(context.Background(), ResumeRequest{CustomerName: "Alice", Role: entities.RoleStaff})
	if !errors.Is(err, ErrAlreadyResumed) {
		t.Fatalf("expected ErrAlreadyResumed, got %v", err)
	}
}

func TestResumeUseCase_AuditFailureDoesNotFailResume(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	holds := mock_interfaces.NewMockIHoldRepository(ctrl)
	audit := mock_interfaces.NewMockIResumeAuditRepository(ctrl)
	policy := mock_interfaces.NewMockIRolePolicy(ctrl)
	metrics := mock_interfaces.NewMockIBillingMetrics(ctrl)
	node, _ := snowflake.NewNode(3)
	uc := NewResumeUseCase(holds, audit, policy, entities.NewDayWindowCalendar(time.UTC, 15), clock.NewFakeClock(at(12, 0)), node, metrics, zap.NewNop())

	hold := entities.HoldRecord{ID: "h1", BillID: "b1", CustomerKey: "alice", HeldAt: at(11, 0)}
	policy.EXPECT().Allowed(entities.RoleStaff, entities.ActionHoldResume).Return(true)
	holds.EXPECT().FindHoldsByCustomerKey(gomock.Any(), "alice").Return([]entities.HoldRecord{hold}, nil)
	holds.EXPECT().ClaimHold(gomock.Any(), "h1", gomock.Any()).Return(entities.Bill{ID: "b1", Status: entities.BillStatusResumed}, nil)
	metrics.EXPECT().ResumeAttempt(entities.ResumeOutcomeGranted, false)
	audit.EXPECT().AppendResumeEvent(gomock.Any(), gomock.Any()).Return(errors.New("audit down"))

	res, err := uc.Resume(context.Background(), ResumeRequest{CustomerName: "Alice", Role: entities.RoleStaff})
	if err != nil || res.Bill.ID != "b1" {
		t.Fatalf("unexpected result %+v err=%v", res, err)
	}
}
