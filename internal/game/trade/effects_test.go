package trade

import (
	"strings"
	"testing"

	"github.com/NoahPeres/ti4engine/internal/game/notes"
	"github.com/NoahPeres/ti4engine/internal/game/victory"
)

func newEffectFixture(t *testing.T, max int) (*EffectActivator, *victory.Tracker) {
	t.Helper()

	tracker, err := victory.NewTracker(max)
	if err != nil {
		t.Fatalf("NewTracker() error = %v", err)
	}
	tracker.AddPlayer("xxcha")
	return NewEffectActivator(tracker), tracker
}

func TestActivateSupportForThrone(t *testing.T) {
	activator, tracker := newEffectFixture(t, 10)

	note, err := notes.New(notes.KindSupportForThrone, "sol")
	if err != nil {
		t.Fatalf("notes.New() error = %v", err)
	}

	outcome, err := activator.Activate(note, "xxcha")
	if err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if !outcome.Activated {
		t.Fatalf("Activate() outcome = %+v, want activated", outcome)
	}
	if score, _ := tracker.Score("xxcha"); score != 1 {
		t.Errorf("score = %d, want 1", score)
	}
}

func TestActivateNoteWithoutEffect(t *testing.T) {
	activator, tracker := newEffectFixture(t, 10)

	note, err := notes.New(notes.KindTradeAgreement, "sol")
	if err != nil {
		t.Fatalf("notes.New() error = %v", err)
	}

	outcome, err := activator.Activate(note, "xxcha")
	if err != nil {
		t.Fatalf("Activate() error = %v", err)
	}
	if outcome.Activated {
		t.Fatalf("Activate() outcome = %+v, want no activation", outcome)
	}
	if score, _ := tracker.Score("xxcha"); score != 0 {
		t.Errorf("score = %d, want 0", score)
	}
}

func TestActivateAtMaximumScore(t *testing.T) {
	activator, tracker := newEffectFixture(t, 1)
	if _, err := tracker.AwardPoint("xxcha"); err != nil {
		t.Fatalf("AwardPoint() error = %v", err)
	}

	note, err := notes.New(notes.KindSupportForThrone, "sol")
	if err != nil {
		t.Fatalf("notes.New() error = %v", err)
	}

	// At the ceiling the effect simply does not fire; the exchange itself
	// already happened and stands.
	outcome, activateErr := activator.Activate(note, "xxcha")
	if activateErr != nil {
		t.Fatalf("Activate() error = %v", activateErr)
	}
	if outcome.Activated {
		t.Fatalf("Activate() outcome = %+v, want no activation", outcome)
	}
	if !strings.Contains(outcome.Reason, "maximum score") {
		t.Errorf("Activate() reason = %q", outcome.Reason)
	}
	if score, _ := tracker.Score("xxcha"); score != 1 {
		t.Errorf("score = %d, want unchanged 1", score)
	}
}

func TestActivateUnknownReceiver(t *testing.T) {
	activator, _ := newEffectFixture(t, 10)

	note, err := notes.New(notes.KindSupportForThrone, "sol")
	if err != nil {
		t.Fatalf("notes.New() error = %v", err)
	}

	if _, err := activator.Activate(note, "ghost"); err == nil {
		t.Fatal("Activate() expected error for unknown receiver")
	}
}
