// Package trade implements the player-to-player deal engine: proposal,
// multi-error validation, atomic execution with compensation, and the
// pending/history registry.
package trade

import (
	"github.com/NoahPeres/ti4engine/internal/game/notes"
	apperrors "github.com/NoahPeres/ti4engine/internal/platform/errors"
)

var (
	// ErrNegativeAmount indicates a negative quantity in an offer.
	ErrNegativeAmount = apperrors.New(apperrors.CodeOfferNegativeAmount, "offer amounts cannot be negative")
	// ErrTooManyNotes indicates more than one promissory note in an offer.
	ErrTooManyNotes = apperrors.New(apperrors.CodeOfferTooManyNotes, "an offer can include at most one promissory note")
)

// Offer describes one side's stake in a deal. It is a pure value: build it
// with NewOffer and copy it freely; nothing mutates an offer after creation.
type Offer struct {
	TradeGoods     int
	Commodities    int
	RelicFragments int
	// Note is the at-most-one promissory note in this offer.
	Note *notes.Note
}

// OfferInput describes the assets for one side of a deal.
type OfferInput struct {
	TradeGoods     int
	Commodities    int
	RelicFragments int
	Notes          []notes.Note
}

// NewOffer validates and builds an offer. Quantities cannot be negative and
// at most one note is allowed.
func NewOffer(input OfferInput) (Offer, error) {
	offer := Offer{
		TradeGoods:     input.TradeGoods,
		Commodities:    input.Commodities,
		RelicFragments: input.RelicFragments,
	}
	if err := offer.validate(); err != nil {
		return Offer{}, err
	}
	if len(input.Notes) > 1 {
		return Offer{}, ErrTooManyNotes
	}
	if len(input.Notes) == 1 {
		note := input.Notes[0]
		offer.Note = &note
	}
	return offer, nil
}

// validate rejects negative quantities. Offer is a plain value a caller can
// build without NewOffer, so the check runs again wherever an offer enters
// the engine.
func (o Offer) validate() error {
	if o.TradeGoods < 0 || o.Commodities < 0 || o.RelicFragments < 0 {
		return ErrNegativeAmount
	}
	return nil
}

// IsEmpty reports whether the offer stakes nothing at all.
func (o Offer) IsEmpty() bool {
	return o.TradeGoods == 0 && o.Commodities == 0 && o.RelicFragments == 0 && o.Note == nil
}

// Clone returns a deep copy of the offer. Every transaction owns its own
// offer copies so a stored deal never aliases caller state.
func (o Offer) Clone() Offer {
	cloned := o
	if o.Note != nil {
		note := *o.Note
		cloned.Note = &note
	}
	return cloned
}
