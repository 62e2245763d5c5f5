// Package notes models promissory notes and the per-player hands that hold them.
package notes

import (
	"strings"

	apperrors "github.com/NoahPeres/ti4engine/internal/platform/errors"
)

// Kind describes the promissory note kind label used by domain decisions.
type Kind string

const (
	KindUnspecified      Kind = ""
	KindSupportForThrone Kind = "support_for_the_throne"
	KindTradeAgreement   Kind = "trade_agreement"
	KindCeasefire        Kind = "ceasefire"
	KindPoliticalSecret  Kind = "political_secret"
	KindMilitaryAlliance Kind = "military_alliance"
)

// ErrUnknownKind indicates a note kind outside the enumerated set.
var ErrUnknownKind = apperrors.New(apperrors.CodeNoteUnknownKind, "unknown promissory note kind")

// HasImmediateEffect reports whether exchanging a note of this kind triggers
// a side effect the moment it changes hands.
func (k Kind) HasImmediateEffect() bool {
	return k == KindSupportForThrone
}

// KindLabel returns a stable label for a note kind.
func KindLabel(kind Kind) string {
	switch kind {
	case KindSupportForThrone:
		return "SUPPORT_FOR_THE_THRONE"
	case KindTradeAgreement:
		return "TRADE_AGREEMENT"
	case KindCeasefire:
		return "CEASEFIRE"
	case KindPoliticalSecret:
		return "POLITICAL_SECRET"
	case KindMilitaryAlliance:
		return "MILITARY_ALLIANCE"
	default:
		return "UNSPECIFIED"
	}
}

// NormalizeKindLabel canonicalizes note kind labels for persistence round-trips.
func NormalizeKindLabel(value string) (Kind, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return KindUnspecified, false
	}
	switch strings.ToUpper(trimmed) {
	case "SUPPORT_FOR_THE_THRONE", "NOTE_KIND_SUPPORT_FOR_THE_THRONE":
		return KindSupportForThrone, true
	case "TRADE_AGREEMENT", "NOTE_KIND_TRADE_AGREEMENT":
		return KindTradeAgreement, true
	case "CEASEFIRE", "NOTE_KIND_CEASEFIRE":
		return KindCeasefire, true
	case "POLITICAL_SECRET", "NOTE_KIND_POLITICAL_SECRET":
		return KindPoliticalSecret, true
	case "MILITARY_ALLIANCE", "NOTE_KIND_MILITARY_ALLIANCE":
		return KindMilitaryAlliance, true
	default:
		return KindUnspecified, false
	}
}

// Note is a tradeable promissory instrument. Identity is by value: two notes
// with the same kind and issuer are the same note regardless of holder.
type Note struct {
	// Kind is the enumerated note kind.
	Kind Kind
	// Issuer is the player who printed the note.
	Issuer string
	// Receiver is the player the note is currently assigned to, if any.
	Receiver string
}

// New creates a note of the given kind issued by the given player.
func New(kind Kind, issuer string) (Note, error) {
	if _, ok := NormalizeKindLabel(KindLabel(kind)); !ok {
		return Note{}, ErrUnknownKind
	}
	return Note{Kind: kind, Issuer: issuer}, nil
}

// Same reports whether two notes are the same instrument (kind + issuer).
func (n Note) Same(other Note) bool {
	return n.Kind == other.Kind && n.Issuer == other.Issuer
}

// Label returns a display label for the note.
func (n Note) Label() string {
	return KindLabel(n.Kind) + "/" + n.Issuer
}
