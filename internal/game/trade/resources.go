package trade

import (
	"github.com/NoahPeres/ti4engine/internal/game/economy"
	"github.com/NoahPeres/ti4engine/internal/game/notes"
	apperrors "github.com/NoahPeres/ti4engine/internal/platform/errors"
)

var (
	// ErrTransferSamePlayer indicates a transfer between a player and themselves.
	ErrTransferSamePlayer = apperrors.New(apperrors.CodeTransferSamePlayer, "cannot transfer assets from a player to themselves")
	// ErrTransferInvalidAmount indicates a non-positive transfer amount.
	ErrTransferInvalidAmount = apperrors.New(apperrors.CodeTransferInvalidAmount, "transfer amount must be greater than zero")
)

// ResourceMover is the transfer surface deal execution and compensation run
// against. ResourceManager is the production implementation.
type ResourceMover interface {
	TransferTradeGoods(from, to string, amount int) error
	TransferCommodities(from, to string, amount int) error
	TransferRelicFragments(from, to string, amount int) error
	TransferNote(from, to string, note notes.Note) error
}

// ResourceManager performs single-asset transfers against the ledger and
// note registry. Each primitive either completes fully or returns an error
// leaving both players untouched; deciding whether to compensate is the
// caller's job.
type ResourceManager struct {
	ledger   *economy.Ledger
	registry *notes.Registry
}

// NewResourceManager creates a resource manager over the shared ledger and
// note registry.
func NewResourceManager(ledger *economy.Ledger, registry *notes.Registry) *ResourceManager {
	return &ResourceManager{ledger: ledger, registry: registry}
}

// TransferTradeGoods moves trade goods from one player to another.
func (m *ResourceManager) TransferTradeGoods(from, to string, amount int) error {
	if err := m.checkParties(from, to, amount); err != nil {
		return err
	}
	// Verify both sides before mutating so a failed credit cannot strand
	// the debit.
	if _, err := m.ledger.Balance(to); err != nil {
		return err
	}
	if err := m.ledger.DebitTradeGoods(from, amount); err != nil {
		return err
	}
	return m.ledger.CreditTradeGoods(to, amount)
}

// TransferCommodities moves commodities out of the giver's pool and credits
// the receiver's trade goods. The conversion is deliberate: commodities
// become trade goods the moment they change hands, which is also why a
// commodity transfer cannot be losslessly reversed.
func (m *ResourceManager) TransferCommodities(from, to string, amount int) error {
	if err := m.checkParties(from, to, amount); err != nil {
		return err
	}
	if _, err := m.ledger.Balance(to); err != nil {
		return err
	}
	if err := m.ledger.DebitCommodities(from, amount); err != nil {
		return err
	}
	return m.ledger.CreditTradeGoods(to, amount)
}

// TransferRelicFragments moves relic fragments from one player to another.
func (m *ResourceManager) TransferRelicFragments(from, to string, amount int) error {
	if err := m.checkParties(from, to, amount); err != nil {
		return err
	}
	if _, err := m.ledger.Balance(to); err != nil {
		return err
	}
	if err := m.ledger.DebitRelicFragments(from, amount); err != nil {
		return err
	}
	return m.ledger.CreditRelicFragments(to, amount)
}

// TransferNote reassigns a promissory note between two players' hands.
// The giver must currently hold the note.
func (m *ResourceManager) TransferNote(from, to string, note notes.Note) error {
	if from == to {
		return ErrTransferSamePlayer
	}
	if !m.registry.Owns(from, note) {
		return apperrors.WithMetadata(apperrors.CodeNoteNotInHand,
			"note is not in the player's hand",
			map[string]string{"Player": from, "Note": note.Label()})
	}
	if m.registry.Owns(to, note) {
		return apperrors.WithMetadata(apperrors.CodeNoteDuplicate,
			"note is already in the player's hand",
			map[string]string{"Player": to, "Note": note.Label()})
	}
	if err := m.registry.RemoveFromHand(from, note); err != nil {
		return err
	}
	return m.registry.AddToHand(to, note)
}

func (m *ResourceManager) checkParties(from, to string, amount int) error {
	if from == to {
		return ErrTransferSamePlayer
	}
	if amount <= 0 {
		return ErrTransferInvalidAmount
	}
	return nil
}
