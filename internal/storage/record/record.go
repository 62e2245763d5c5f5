// Package record defines the persisted shapes shared by the storage
// backends, kept separate from the domain types so schema evolution stays
// deliberate.
package record

import (
	"fmt"

	"github.com/NoahPeres/ti4engine/internal/game/notes"
	"github.com/NoahPeres/ti4engine/internal/game/trade"
)

// Offer is the persisted shape of one side of a deal.
type Offer struct {
	TradeGoods     int   `json:"trade_goods"`
	Commodities    int   `json:"commodities"`
	RelicFragments int   `json:"relic_fragments"`
	Note           *Note `json:"note,omitempty"`
}

// Note is the persisted shape of a promissory note.
type Note struct {
	Kind     string `json:"kind"`
	Issuer   string `json:"issuer"`
	Receiver string `json:"receiver,omitempty"`
}

// FromOffer converts a domain offer into its persisted shape.
func FromOffer(offer trade.Offer) Offer {
	r := Offer{
		TradeGoods:     offer.TradeGoods,
		Commodities:    offer.Commodities,
		RelicFragments: offer.RelicFragments,
	}
	if offer.Note != nil {
		r.Note = &Note{
			Kind:     notes.KindLabel(offer.Note.Kind),
			Issuer:   offer.Note.Issuer,
			Receiver: offer.Note.Receiver,
		}
	}
	return r
}

// ToOffer converts the persisted shape back into a domain offer.
func (r Offer) ToOffer() (trade.Offer, error) {
	offer := trade.Offer{
		TradeGoods:     r.TradeGoods,
		Commodities:    r.Commodities,
		RelicFragments: r.RelicFragments,
	}
	if r.Note != nil {
		kind, ok := notes.NormalizeKindLabel(r.Note.Kind)
		if !ok {
			return trade.Offer{}, fmt.Errorf("unknown note kind %q", r.Note.Kind)
		}
		offer.Note = &notes.Note{
			Kind:     kind,
			Issuer:   r.Note.Issuer,
			Receiver: r.Note.Receiver,
		}
	}
	return offer, nil
}
