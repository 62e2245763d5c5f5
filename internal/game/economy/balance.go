// Package economy models player resource balances: trade goods, commodities,
// and relic fragments.
package economy

import apperrors "github.com/NoahPeres/ti4engine/internal/platform/errors"

var (
	// ErrInvalidAmount indicates a non-positive balance mutation amount.
	ErrInvalidAmount = apperrors.New(apperrors.CodeLedgerInvalidAmount, "ledger amount must be greater than zero")
	// ErrInsufficientTradeGoods indicates the player has too few trade goods to spend.
	ErrInsufficientTradeGoods = apperrors.New(apperrors.CodeLedgerInsufficientTradeGoods, "trade goods are insufficient")
	// ErrInsufficientCommodities indicates the player has too few commodities to spend.
	ErrInsufficientCommodities = apperrors.New(apperrors.CodeLedgerInsufficientCommodities, "commodities are insufficient")
	// ErrInsufficientFragments indicates the player has too few relic fragments to spend.
	ErrInsufficientFragments = apperrors.New(apperrors.CodeLedgerInsufficientFragments, "relic fragments are insufficient")
	// ErrCommoditiesExceedCap indicates a commodity gain beyond the player's ceiling.
	ErrCommoditiesExceedCap = apperrors.New(apperrors.CodeLedgerCommoditiesExceedCap, "commodities exceed the player's ceiling")
)

// Balance represents one player's resource pools.
//
// Commodities are capped by the player's ceiling; trade goods and relic
// fragments are unbounded. Commodities convert to trade goods when they
// change hands, so only gains into the commodity pool check the ceiling.
type Balance struct {
	TradeGoods       int
	Commodities      int
	CommodityCeiling int
	RelicFragments   int
}

// ApplyTradeGoodsGain returns a Balance with increased trade goods.
// Amount must be greater than zero.
func ApplyTradeGoodsGain(balance Balance, amount int) (Balance, int, int, error) {
	if amount <= 0 {
		return Balance{}, 0, 0, ErrInvalidAmount
	}
	before := balance.TradeGoods
	updated := balance
	updated.TradeGoods = before + amount
	return updated, before, updated.TradeGoods, nil
}

// ApplyTradeGoodsSpend returns a Balance with reduced trade goods.
// Amount must be greater than zero and cannot exceed the current pool.
func ApplyTradeGoodsSpend(balance Balance, amount int) (Balance, int, int, error) {
	if amount <= 0 {
		return Balance{}, 0, 0, ErrInvalidAmount
	}
	if balance.TradeGoods < amount {
		return Balance{}, 0, 0, ErrInsufficientTradeGoods
	}
	before := balance.TradeGoods
	updated := balance
	updated.TradeGoods = before - amount
	return updated, before, updated.TradeGoods, nil
}

// ApplyCommoditiesGain returns a Balance with increased commodities.
// Amount must be greater than zero and cannot push the pool over the ceiling.
func ApplyCommoditiesGain(balance Balance, amount int) (Balance, int, int, error) {
	if amount <= 0 {
		return Balance{}, 0, 0, ErrInvalidAmount
	}
	before := balance.Commodities
	after := before + amount
	if after > balance.CommodityCeiling {
		return Balance{}, 0, 0, ErrCommoditiesExceedCap
	}
	updated := balance
	updated.Commodities = after
	return updated, before, updated.Commodities, nil
}

// ApplyCommoditiesSpend returns a Balance with reduced commodities.
// Amount must be greater than zero and cannot exceed the current pool.
func ApplyCommoditiesSpend(balance Balance, amount int) (Balance, int, int, error) {
	if amount <= 0 {
		return Balance{}, 0, 0, ErrInvalidAmount
	}
	if balance.Commodities < amount {
		return Balance{}, 0, 0, ErrInsufficientCommodities
	}
	before := balance.Commodities
	updated := balance
	updated.Commodities = before - amount
	return updated, before, updated.Commodities, nil
}

// ApplyRelicFragmentsGain returns a Balance with increased relic fragments.
// Amount must be greater than zero.
func ApplyRelicFragmentsGain(balance Balance, amount int) (Balance, int, int, error) {
	if amount <= 0 {
		return Balance{}, 0, 0, ErrInvalidAmount
	}
	before := balance.RelicFragments
	updated := balance
	updated.RelicFragments = before + amount
	return updated, before, updated.RelicFragments, nil
}

// ApplyRelicFragmentsSpend returns a Balance with reduced relic fragments.
// Amount must be greater than zero and cannot exceed the current pool.
func ApplyRelicFragmentsSpend(balance Balance, amount int) (Balance, int, int, error) {
	if amount <= 0 {
		return Balance{}, 0, 0, ErrInvalidAmount
	}
	if balance.RelicFragments < amount {
		return Balance{}, 0, 0, ErrInsufficientFragments
	}
	before := balance.RelicFragments
	updated := balance
	updated.RelicFragments = before - amount
	return updated, before, updated.RelicFragments, nil
}
