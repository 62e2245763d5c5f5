package economy

import apperrors "github.com/NoahPeres/ti4engine/internal/platform/errors"

// ErrUnknownPlayer indicates a ledger operation against an unregistered player.
var ErrUnknownPlayer = apperrors.New(apperrors.CodeLedgerUnknownPlayer, "player is not registered in the ledger")

// Ledger tracks resource balances for every player in the game.
//
// Balances are immutable snapshots: a mutation replaces the stored value for
// that player, so a Balance handed to a caller never aliases ledger state.
type Ledger struct {
	balances map[string]Balance
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{balances: map[string]Balance{}}
}

// AddPlayer registers a player with an opening balance. Registering an
// existing player replaces their balance.
func (l *Ledger) AddPlayer(player string, opening Balance) {
	l.balances[player] = opening
}

// Balance returns the current balance snapshot for the player.
func (l *Ledger) Balance(player string) (Balance, error) {
	balance, ok := l.balances[player]
	if !ok {
		return Balance{}, apperrors.WithMetadata(apperrors.CodeLedgerUnknownPlayer,
			"player is not registered in the ledger",
			map[string]string{"Player": player})
	}
	return balance, nil
}

// CreditTradeGoods increases the player's trade goods.
func (l *Ledger) CreditTradeGoods(player string, amount int) error {
	return l.apply(player, amount, ApplyTradeGoodsGain)
}

// DebitTradeGoods decreases the player's trade goods.
func (l *Ledger) DebitTradeGoods(player string, amount int) error {
	return l.apply(player, amount, ApplyTradeGoodsSpend)
}

// CreditCommodities increases the player's commodities up to their ceiling.
func (l *Ledger) CreditCommodities(player string, amount int) error {
	return l.apply(player, amount, ApplyCommoditiesGain)
}

// DebitCommodities decreases the player's commodities.
func (l *Ledger) DebitCommodities(player string, amount int) error {
	return l.apply(player, amount, ApplyCommoditiesSpend)
}

// CreditRelicFragments increases the player's relic fragments.
func (l *Ledger) CreditRelicFragments(player string, amount int) error {
	return l.apply(player, amount, ApplyRelicFragmentsGain)
}

// DebitRelicFragments decreases the player's relic fragments.
func (l *Ledger) DebitRelicFragments(player string, amount int) error {
	return l.apply(player, amount, ApplyRelicFragmentsSpend)
}

func (l *Ledger) apply(player string, amount int, op func(Balance, int) (Balance, int, int, error)) error {
	balance, err := l.Balance(player)
	if err != nil {
		return err
	}
	updated, _, _, err := op(balance, amount)
	if err != nil {
		return err
	}
	l.balances[player] = updated
	return nil
}
