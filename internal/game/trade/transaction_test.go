package trade

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/NoahPeres/ti4engine/internal/platform/errors"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNewTransaction(t *testing.T) {
	created := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	tx, err := NewTransaction(NewTransactionInput{
		Proposer: "  sol ",
		Target:   "xxcha",
		Offer:    Offer{TradeGoods: 3},
		Request:  Offer{Commodities: 2},
	}, fixedClock(created))
	if err != nil {
		t.Fatalf("NewTransaction() error = %v", err)
	}

	if tx.Proposer != "sol" {
		t.Errorf("proposer = %q, want trimmed %q", tx.Proposer, "sol")
	}
	if tx.Status != StatusPending {
		t.Errorf("status = %s, want %s", tx.Status, StatusPending)
	}
	if tx.ID != "" {
		t.Errorf("ID = %q, want empty before storage", tx.ID)
	}
	if !tx.CreatedAt.Equal(created) {
		t.Errorf("created at = %v, want %v", tx.CreatedAt, created)
	}
	if tx.CompletedAt != nil {
		t.Errorf("completed at = %v, want nil", tx.CompletedAt)
	}
}

func TestNewTransactionRejectsSamePlayer(t *testing.T) {
	_, err := NewTransaction(NewTransactionInput{Proposer: "sol", Target: "sol"}, nil)
	if !errors.Is(err, ErrSamePlayer) {
		t.Fatalf("NewTransaction() error = %v, want %v", err, ErrSamePlayer)
	}
}

func TestNewTransactionRejectsEmptyPlayers(t *testing.T) {
	tests := []struct {
		name     string
		proposer string
		target   string
	}{
		{name: "empty proposer", proposer: "", target: "xxcha"},
		{name: "blank target", proposer: "sol", target: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransaction(NewTransactionInput{Proposer: tt.proposer, Target: tt.target}, nil)
			if !errors.Is(err, ErrEmptyPlayerID) {
				t.Fatalf("NewTransaction() error = %v, want %v", err, ErrEmptyPlayerID)
			}
		})
	}
}

func TestNewTransactionRejectsNegativeAmounts(t *testing.T) {
	tests := []struct {
		name    string
		offer   Offer
		request Offer
	}{
		{name: "negative offer trade goods", offer: Offer{TradeGoods: -3}, request: Offer{TradeGoods: 1}},
		{name: "negative request commodities", offer: Offer{TradeGoods: 1}, request: Offer{Commodities: -1}},
		{name: "negative relic fragments", offer: Offer{RelicFragments: -2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTransaction(NewTransactionInput{
				Proposer: "sol",
				Target:   "xxcha",
				Offer:    tt.offer,
				Request:  tt.request,
			}, nil)
			if !errors.Is(err, ErrNegativeAmount) {
				t.Fatalf("NewTransaction() error = %v, want %v", err, ErrNegativeAmount)
			}
		})
	}
}

func TestTransactionNames(t *testing.T) {
	tx := Transaction{Proposer: "sol", Target: "xxcha"}

	if !tx.Names("sol") || !tx.Names("xxcha") {
		t.Error("Names() = false for a party to the deal")
	}
	if tx.Names("hacan") {
		t.Error("Names() = true for an uninvolved player")
	}
}

func TestTransitionStatusSetsCompletedAt(t *testing.T) {
	created := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	completed := created.Add(5 * time.Minute)

	tx := Transaction{ID: "deal-000001", Status: StatusPending, CreatedAt: created}
	updated, err := TransitionStatus(tx, StatusAccepted, fixedClock(completed))
	if err != nil {
		t.Fatalf("TransitionStatus() error = %v", err)
	}

	if updated.Status != StatusAccepted {
		t.Errorf("status = %s, want %s", updated.Status, StatusAccepted)
	}
	if updated.CompletedAt == nil || !updated.CompletedAt.Equal(completed) {
		t.Errorf("completed at = %v, want %v", updated.CompletedAt, completed)
	}
	if tx.Status != StatusPending {
		t.Errorf("original snapshot mutated: status = %s", tx.Status)
	}
}

func TestTransitionStatusClampsCompletedAt(t *testing.T) {
	created := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	earlier := created.Add(-time.Minute)

	tx := Transaction{Status: StatusPending, CreatedAt: created}
	updated, err := TransitionStatus(tx, StatusRejected, fixedClock(earlier))
	if err != nil {
		t.Fatalf("TransitionStatus() error = %v", err)
	}
	if updated.CompletedAt == nil || updated.CompletedAt.Before(created) {
		t.Errorf("completed at = %v, want not before %v", updated.CompletedAt, created)
	}
}

func TestTransitionStatusRejectsTerminalSource(t *testing.T) {
	tx := Transaction{Status: StatusAccepted, CreatedAt: time.Now()}

	_, err := TransitionStatus(tx, StatusCancelled, nil)
	if !apperrors.IsCode(err, apperrors.CodeDealInvalidStatusTransition) {
		t.Fatalf("TransitionStatus() error = %v, want code %s", err, apperrors.CodeDealInvalidStatusTransition)
	}

	metadata := apperrors.GetMetadata(err)
	if metadata["FromStatus"] != "ACCEPTED" || metadata["ToStatus"] != "CANCELLED" {
		t.Errorf("metadata = %v", metadata)
	}
}
