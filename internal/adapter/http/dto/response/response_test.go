package response

import (
	"encoding/json"
	"testing"
	"time"

	"thirupugazh_pos/internal/domain/entities"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	cases := map[int64]string{0: "0.00", 5: "0.05", 1170: "11.70", 58000: "580.00", -250: "-2.50"}
	for cents, want := range cases {
		if got := formatAmount(cents); got != want {
			t.Fatalf("formatAmount(%d): expected %s, got %s", cents, want, got)
		}
	}
}

func TestFromPricedBill(t *testing.T) {
	now := time.Now().UTC()
	pb := entities.PricedBill{
		Bill: entities.Bill{
			ID:              "bill-1",
			Items:           []entities.LineItem{{MenuItemID: "burger", Name: "Burger", UnitPriceCents: 500, Quantity: 2}},
			DiscountPercent: decimal.RequireFromString("10"),
			Status:          entities.BillStatusDraft,
			CreatedAt:       now,
		},
		Totals: entities.Totals{SubtotalCents: 1000, DiscountCents: 100, TotalCents: 900},
	}

	res := FromPricedBill(pb)
	if res.ID != "bill-1" || res.Status != "draft" || res.DiscountPercent != "10" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if len(res.Items) != 1 || res.Items[0].LineTotalCents != 1000 {
		t.Fatalf("unexpected items: %+v", res.Items)
	}
	if res.TotalCents != 900 || res.Total != "9.00" {
		t.Fatalf("unexpected totals: %+v", res)
	}
}

func TestFromHeldBills(t *testing.T) {
	held := []entities.HeldBill{
		{HoldRecord: entities.HoldRecord{ID: "h1", BillID: "b1", CustomerName: "Alice", DayWindowID: "2026-10-16"}, IsExpired: true},
	}
	res := FromHeldBills("2026-10-17", held)
	if res.DayWindowID != "2026-10-17" || len(res.Holds) != 1 {
		t.Fatalf("unexpected listing: %+v", res)
	}
	if !res.Holds[0].IsExpired || res.Holds[0].ID != "h1" {
		t.Fatalf("unexpected hold: %+v", res.Holds[0])
	}

	raw, err := json.Marshal(res.Holds[0])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var flat map[string]any
	_ = json.Unmarshal(raw, &flat)
	if flat["id"] != "h1" || flat["is_expired"] != true {
		t.Fatalf("expected embedded fields to be flattened, got %s", raw)
	}

	if empty := FromHeldBills("2026-10-17", nil); empty.Holds == nil {
		t.Fatalf("expected an empty list, not null")
	}
}

func TestFromTransaction(t *testing.T) {
	txn := entities.PaymentTransaction{
		TransactionID:   "T1",
		BillID:          "b1",
		PaymentMode:     entities.PaymentModeUPI,
		FinalTotalCents: 1170,
		DayWindowID:     "2026-10-17",
		ProviderPayload: json.RawMessage(`{"id":1}`),
	}
	res := FromTransaction(txn)
	if res.PaymentMode != "upi" || res.FinalTotal != "11.70" || res.DayWindowID != "2026-10-17" {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if string(res.ProviderPayload) != `{"id":1}` {
		t.Fatalf("unexpected payload %s", res.ProviderPayload)
	}
}

func TestFromReport(t *testing.T) {
	res := FromReport(entities.DailyReport{
		From:             "2026-10-01",
		To:               "2026-10-31",
		TransactionCount: 2,
		TotalCents:       3000,
		ByPaymentMode:    []entities.PaymentModeTotals{{PaymentMode: entities.PaymentModeCash, TransactionCount: 2, TotalCents: 3000}},
	})
	if res.Total != "30.00" || len(res.ByPaymentMode) != 1 || res.ByPaymentMode[0].Total != "30.00" {
		t.Fatalf("unexpected report: %+v", res)
	}
}
