package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/NoahPeres/ti4engine/internal/game/audit"
	"github.com/NoahPeres/ti4engine/internal/game/notes"
	"github.com/NoahPeres/ti4engine/internal/game/trade"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "deals.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("Close() error = %v", err)
		}
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("Open() expected error for blank path")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	created := time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC)
	original := trade.Transaction{
		ID:       "deal-000001",
		Proposer: "sol",
		Target:   "xxcha",
		Offer: trade.Offer{
			TradeGoods: 3,
			Note: &notes.Note{
				Kind:     notes.KindSupportForThrone,
				Issuer:   "sol",
				Receiver: "xxcha",
			},
		},
		Request: trade.Offer{
			Commodities:    2,
			RelicFragments: 1,
		},
		Status:    trade.StatusPending,
		CreatedAt: created,
	}

	if err := store.Put(ctx, original); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, err := store.Get(ctx, original.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Proposer != "sol" || got.Target != "xxcha" {
		t.Errorf("Get() players = %q/%q, want sol/xxcha", got.Proposer, got.Target)
	}
	if got.Status != trade.StatusPending {
		t.Errorf("Get() status = %q, want %q", got.Status, trade.StatusPending)
	}
	if !got.CreatedAt.Equal(created) {
		t.Errorf("Get() created at = %v, want %v", got.CreatedAt, created)
	}
	if got.CompletedAt != nil {
		t.Errorf("Get() completed at = %v, want nil", got.CompletedAt)
	}
	if got.Offer.TradeGoods != 3 {
		t.Errorf("Get() offer trade goods = %d, want 3", got.Offer.TradeGoods)
	}
	if got.Offer.Note == nil {
		t.Fatal("Get() offer note missing")
	}
	if got.Offer.Note.Kind != notes.KindSupportForThrone || got.Offer.Note.Issuer != "sol" {
		t.Errorf("Get() offer note = %+v", got.Offer.Note)
	}
	if got.Request.Commodities != 2 || got.Request.RelicFragments != 1 {
		t.Errorf("Get() request = %+v", got.Request)
	}
}

func TestPutReplacesExistingDeal(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	created := time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC)
	tx := trade.Transaction{
		ID:        "deal-000001",
		Proposer:  "sol",
		Target:    "xxcha",
		Offer:     trade.Offer{TradeGoods: 1},
		Request:   trade.Offer{Commodities: 1},
		Status:    trade.StatusPending,
		CreatedAt: created,
	}
	if err := store.Put(ctx, tx); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	completed := created.Add(time.Minute)
	tx.Status = trade.StatusAccepted
	tx.CompletedAt = &completed
	if err := store.Put(ctx, tx); err != nil {
		t.Fatalf("Put() replace error = %v", err)
	}

	got, err := store.Get(ctx, tx.ID)
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got.Status != trade.StatusAccepted {
		t.Errorf("Get() status = %q, want %q", got.Status, trade.StatusAccepted)
	}
	if got.CompletedAt == nil || !got.CompletedAt.Equal(completed) {
		t.Errorf("Get() completed at = %v, want %v", got.CompletedAt, completed)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != 1 {
		t.Errorf("List() returned %d deals, want 1", len(list))
	}
}

func TestGetMissingDeal(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get(context.Background(), "deal-999999")
	if !errors.Is(err, trade.ErrNotFound) {
		t.Fatalf("Get() error = %v, want %v", err, trade.ErrNotFound)
	}
}

func TestListReturnsCreationOrder(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	base := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	ids := []string{"deal-000001", "deal-000002", "deal-000003"}
	for i, id := range ids {
		tx := trade.Transaction{
			ID:        id,
			Proposer:  "sol",
			Target:    "xxcha",
			Offer:     trade.Offer{TradeGoods: 1},
			Request:   trade.Offer{Commodities: 1},
			Status:    trade.StatusPending,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}
		if err := store.Put(ctx, tx); err != nil {
			t.Fatalf("Put(%s) error = %v", id, err)
		}
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(list) != len(ids) {
		t.Fatalf("List() returned %d deals, want %d", len(list), len(ids))
	}
	for i, id := range ids {
		if list[i].ID != id {
			t.Errorf("List()[%d] = %q, want %q", i, list[i].ID, id)
		}
	}
}

func TestAppendAuditEvent(t *testing.T) {
	store := openTestStore(t)

	evt := audit.Event{
		EventName: "deal.accepted",
		Severity:  audit.SeverityInfo,
		DealID:    "deal-000001",
		Attributes: map[string]string{
			"proposer": "sol",
		},
		Timestamp: time.Date(2024, 3, 10, 12, 30, 0, 0, time.UTC),
	}
	if err := store.AppendAuditEvent(context.Background(), evt); err != nil {
		t.Fatalf("AppendAuditEvent() error = %v", err)
	}
}
