package usecase

import (
	"context"
	"testing"
	"time"

	"thirupugazh_pos/internal/adapter/persistence/repository"
	"thirupugazh_pos/internal/clock"
	"thirupugazh_pos/internal/domain/entities"
	"thirupugazh_pos/internal/infrastructure/authz"

	"github.com/bwmarrin/snowflake"
	"go.uber.org/zap"
)

var testMenu = []entities.MenuItem{
	{ID: "burger", Name: "Burger", PriceCents: 500},
	{ID: "fries", Name: "Fries", PriceCents: 300},
}

type fixture struct {
	store    *repository.MemoryStore
	clock    *clock.FakeClock
	calendar entities.DayWindowCalendar
	cart     *CartUseCase
	hold     *HoldUseCase
	resume   *ResumeUseCase
	payment  *PaymentUseCase
	report   *ReportUseCase
}

func newFixture(t *testing.T, start time.Time) *fixture {
	t.Helper()
	enforcer, err := authz.NewEnforcer(nil)
	if err != nil {
		t.Fatalf("enforcer: %v", err)
	}
	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("snowflake: %v", err)
	}

	log := zap.NewNop()
	store := repository.NewMemoryStore()
	clk := clock.NewFakeClock(start)
	cal := entities.NewDayWindowCalendar(time.UTC, 15)
	policy := authz.NewRolePolicy(enforcer, log)
	catalog := repository.NewStaticMenuCatalog(testMenu)

	return &fixture{
		store:    store,
		clock:    clk,
		calendar: cal,
		cart:     NewCartUseCase(store, catalog, clk, log),
		hold:     NewHoldUseCase(store, store, policy, cal, clk, nil, log),
		resume:   NewResumeUseCase(store, store, policy, cal, clk, node, nil, log),
		payment:  NewPaymentUseCase(store, store, nil, FixedPaymentPolicy(entities.DefaultPaymentPolicy()), cal, clk, nil, log),
		report:   NewReportUseCase(store, policy, nil, cal, clk, log),
	}
}

// draft builds a draft bill with two burgers and one fries.
func (f *fixture) draft(t *testing.T) entities.Bill {
	t.Helper()
	ctx := context.Background()
	pb, err := f.cart.AddItem(ctx, "", "burger", 2)
	if err != nil {
		t.Fatalf("add burger: %v", err)
	}
	pb, err = f.cart.AddItem(ctx, pb.Bill.ID, "fries", 1)
	if err != nil {
		t.Fatalf("add fries: %v", err)
	}
	return pb.Bill
}

func (f *fixture) held(t *testing.T, customer string) (entities.Bill, entities.HoldRecord) {
	t.Helper()
	b := f.draft(t)
	h, err := f.hold.Hold(context.Background(), b.ID, customer)
	if err != nil {
		t.Fatalf("hold: %v", err)
	}
	return b, h
}

func at(hour, minute int) time.Time {
	return time.Date(2026, 10, 17, hour, minute, 0, 0, time.UTC)
}
