package trade

import (
	"fmt"
	"strings"
	"time"

	apperrors "github.com/NoahPeres/ti4engine/internal/platform/errors"
)

var (
	// ErrSamePlayer indicates a deal proposed between a player and themselves.
	ErrSamePlayer = apperrors.New(apperrors.CodeDealSamePlayer, "a deal needs two different players")
	// ErrEmptyPlayerID indicates a deal with an unnamed party.
	ErrEmptyPlayerID = apperrors.New(apperrors.CodeDealEmptyPlayerID, "both players must be named in a deal")
)

// Transaction is an immutable snapshot of a deal between two players.
//
// The manager owns the registry of transactions; a status change replaces
// the stored snapshot rather than mutating it, so a Transaction handed to a
// caller is always safe to keep.
type Transaction struct {
	// ID is assigned by the manager and never changes.
	ID string
	// Proposer initiated the deal and is the only party who may cancel it.
	Proposer string
	// Target is the other party; always distinct from Proposer.
	Target string
	// Offer is what the proposer gives.
	Offer Offer
	// Request is what the proposer wants back.
	Request Offer
	// Status is the current lifecycle phase.
	Status Status
	// CreatedAt is when the deal was proposed.
	CreatedAt time.Time
	// CompletedAt is set once the deal leaves pending.
	CompletedAt *time.Time
}

// NewTransactionInput describes a candidate deal before validation.
type NewTransactionInput struct {
	Proposer string
	Target   string
	Offer    Offer
	Request  Offer
}

// NewTransaction builds a pending candidate deal. The ID is left empty; the
// manager assigns it when the deal is actually stored.
func NewTransaction(input NewTransactionInput, now func() time.Time) (Transaction, error) {
	if now == nil {
		now = time.Now
	}

	proposer := strings.TrimSpace(input.Proposer)
	target := strings.TrimSpace(input.Target)
	if proposer == "" || target == "" {
		return Transaction{}, ErrEmptyPlayerID
	}
	if proposer == target {
		return Transaction{}, ErrSamePlayer
	}
	if err := input.Offer.validate(); err != nil {
		return Transaction{}, err
	}
	if err := input.Request.validate(); err != nil {
		return Transaction{}, err
	}

	return Transaction{
		Proposer:  proposer,
		Target:    target,
		Offer:     input.Offer.Clone(),
		Request:   input.Request.Clone(),
		Status:    StatusPending,
		CreatedAt: now().UTC(),
	}, nil
}

// Names reports whether the deal involves the player as either party.
func (t Transaction) Names(player string) bool {
	return t.Proposer == player || t.Target == player
}

// TransitionStatus applies a status transition, returning the updated
// snapshot. Leaving pending sets CompletedAt.
func TransitionStatus(tx Transaction, target Status, now func() time.Time) (Transaction, error) {
	if now == nil {
		now = time.Now
	}
	if !isStatusTransitionAllowed(tx.Status, target) {
		fromStatus := StatusLabel(tx.Status)
		toStatus := StatusLabel(target)
		return Transaction{}, apperrors.WithMetadata(
			apperrors.CodeDealInvalidStatusTransition,
			fmt.Sprintf("deal status transition not allowed: %s -> %s", fromStatus, toStatus),
			map[string]string{"FromStatus": fromStatus, "ToStatus": toStatus},
		)
	}

	updated := tx
	updated.Status = target
	if tx.Status == StatusPending && updated.CompletedAt == nil {
		completedAt := now().UTC()
		if completedAt.Before(tx.CreatedAt) {
			completedAt = tx.CreatedAt
		}
		updated.CompletedAt = &completedAt
	}
	return updated, nil
}
