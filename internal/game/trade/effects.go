package trade

import (
	"fmt"

	"github.com/NoahPeres/ti4engine/internal/game/notes"
	apperrors "github.com/NoahPeres/ti4engine/internal/platform/errors"
)

// ScoreTracker is the victory-track surface the effect activator consumes.
type ScoreTracker interface {
	Score(player string) (int, error)
	MaxScore() int
	AwardPoint(player string) (int, error)
}

// EffectOutcome reports whether a note's immediate effect fired on exchange.
type EffectOutcome struct {
	Note      notes.Note
	Receiver  string
	Activated bool
	Reason    string
}

// EffectActivator applies note side effects that fire the instant a note
// changes hands. It runs only after the ownership transfer has already
// succeeded; a refused activation does not undo the transfer.
type EffectActivator struct {
	tracker ScoreTracker
}

// NewEffectActivator creates an activator over the victory tracker.
func NewEffectActivator(tracker ScoreTracker) *EffectActivator {
	return &EffectActivator{tracker: tracker}
}

// Activate runs the note's immediate effect for its new holder, if any.
// A bound violation (receiver already at the maximum score) is an expected
// outcome, not an error.
func (a *EffectActivator) Activate(note notes.Note, receiver string) (EffectOutcome, error) {
	outcome := EffectOutcome{Note: note, Receiver: receiver}

	if !note.Kind.HasImmediateEffect() {
		outcome.Reason = "note carries no immediate effect"
		return outcome, nil
	}
	if a == nil || a.tracker == nil {
		return outcome, apperrors.New(apperrors.CodeUnknown, "effect activator tracker is not configured")
	}

	score, err := a.tracker.Score(receiver)
	if err != nil {
		return outcome, err
	}
	if score >= a.tracker.MaxScore() {
		outcome.Reason = fmt.Sprintf("%s is already at the maximum score", receiver)
		return outcome, nil
	}

	if _, err := a.tracker.AwardPoint(receiver); err != nil {
		return outcome, err
	}
	outcome.Activated = true
	outcome.Reason = "victory point awarded"
	return outcome, nil
}
