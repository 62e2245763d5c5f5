package trade

import (
	"fmt"

	"github.com/NoahPeres/ti4engine/internal/game/economy"
	"github.com/NoahPeres/ti4engine/internal/game/notes"
	apperrors "github.com/NoahPeres/ti4engine/internal/platform/errors"
)

// ValidationResult accumulates rule violations instead of failing fast.
// It is the expected return path for "this proposal violates the rules";
// errors are reserved for programming mistakes and mid-execution failures.
type ValidationResult struct {
	errors   []string
	warnings []string
}

// AddError records a rule violation.
func (r *ValidationResult) AddError(message string) {
	r.errors = append(r.errors, message)
}

// AddWarning records a non-blocking observation about the deal.
func (r *ValidationResult) AddWarning(message string) {
	r.warnings = append(r.warnings, message)
}

// IsValid reports whether no error has been recorded.
func (r ValidationResult) IsValid() bool {
	return len(r.errors) == 0
}

// Errors returns the accumulated rule violations.
func (r ValidationResult) Errors() []string {
	return append([]string(nil), r.errors...)
}

// Warnings returns the accumulated warnings.
func (r ValidationResult) Warnings() []string {
	return append([]string(nil), r.warnings...)
}

// NeighborOracle answers whether two players are adjacent on the board.
type NeighborOracle interface {
	AreNeighbors(playerA, playerB string) bool
}

// BalanceReader exposes the ledger balances the validator checks against.
type BalanceReader interface {
	Balance(player string) (economy.Balance, error)
}

// NoteOwnership answers whether a player currently holds a note.
type NoteOwnership interface {
	Owns(player string, note notes.Note) bool
}

// Validator checks candidate deals against the trade rules.
type Validator struct {
	board  NeighborOracle
	ledger BalanceReader
	notes  NoteOwnership
}

// NewValidator creates a validator over the given collaborators.
func NewValidator(board NeighborOracle, ledger BalanceReader, registry NoteOwnership) *Validator {
	return &Validator{board: board, ledger: ledger, notes: registry}
}

// Validate collects every rule violation in the candidate deal. It returns
// an error only for malformed input, never for rule violations.
func (v *Validator) Validate(tx Transaction) (ValidationResult, error) {
	var result ValidationResult

	if v == nil || v.board == nil || v.ledger == nil || v.notes == nil {
		return result, apperrors.New(apperrors.CodeUnknown, "validator collaborators are not configured")
	}
	if tx.Proposer == "" || tx.Target == "" {
		return result, ErrEmptyPlayerID
	}
	if err := tx.Offer.validate(); err != nil {
		return result, err
	}
	if err := tx.Request.validate(); err != nil {
		return result, err
	}

	if !v.board.AreNeighbors(tx.Proposer, tx.Target) {
		result.AddError(fmt.Sprintf("%s and %s are not neighbors", tx.Proposer, tx.Target))
	}

	v.checkSide(&result, tx.Proposer, tx.Offer)
	v.checkSide(&result, tx.Target, tx.Request)

	if tx.Offer.IsEmpty() && tx.Request.IsEmpty() {
		result.AddError("the deal moves nothing in either direction")
	} else if tx.Offer.IsEmpty() || tx.Request.IsEmpty() {
		result.AddWarning("the deal is one-sided")
	}

	return result, nil
}

// checkSide verifies one player can cover the assets they are staking.
func (v *Validator) checkSide(result *ValidationResult, player string, offer Offer) {
	balance, err := v.ledger.Balance(player)
	if err != nil {
		result.AddError(fmt.Sprintf("%s is not registered in the ledger", player))
		return
	}

	if offer.TradeGoods > balance.TradeGoods {
		result.AddError(fmt.Sprintf("%s has %d trade goods but staked %d",
			player, balance.TradeGoods, offer.TradeGoods))
	}
	if offer.Commodities > balance.Commodities {
		result.AddError(fmt.Sprintf("%s has %d commodities but staked %d",
			player, balance.Commodities, offer.Commodities))
	}
	if offer.RelicFragments > balance.RelicFragments {
		result.AddError(fmt.Sprintf("%s has %d relic fragments but staked %d",
			player, balance.RelicFragments, offer.RelicFragments))
	}
	if offer.Note != nil && !v.notes.Owns(player, *offer.Note) {
		result.AddError(fmt.Sprintf("%s does not hold the %s note", player, offer.Note.Label()))
	}
}
