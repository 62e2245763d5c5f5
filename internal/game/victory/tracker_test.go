package victory

import (
	"errors"
	"testing"
)

func TestNewTrackerRejectsInvalidMax(t *testing.T) {
	if _, err := NewTracker(0); !errors.Is(err, ErrInvalidMax) {
		t.Fatalf("expected invalid max, got %v", err)
	}
}

func TestAwardPointUpToMax(t *testing.T) {
	tracker, err := NewTracker(2)
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	tracker.AddPlayer("sol")

	if score, err := tracker.AwardPoint("sol"); err != nil || score != 1 {
		t.Fatalf("expected score 1, got %d (%v)", score, err)
	}
	if score, err := tracker.AwardPoint("sol"); err != nil || score != 2 {
		t.Fatalf("expected score 2, got %d (%v)", score, err)
	}

	score, err := tracker.AwardPoint("sol")
	if !errors.Is(err, ErrAtMax) {
		t.Fatalf("expected at-max error, got %v", err)
	}
	if score != 2 {
		t.Fatalf("expected score to stay at 2, got %d", score)
	}
}

func TestScoreUnknownPlayer(t *testing.T) {
	tracker, err := NewTracker(10)
	if err != nil {
		t.Fatalf("new tracker: %v", err)
	}
	if _, err := tracker.Score("ghost"); !errors.Is(err, ErrUnknownPlayer) {
		t.Fatalf("expected unknown player, got %v", err)
	}
}
