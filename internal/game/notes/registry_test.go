package notes

import (
	"errors"
	"testing"
)

func TestAddAndRemoveFromHand(t *testing.T) {
	registry := NewRegistry()
	note := Note{Kind: KindTradeAgreement, Issuer: "hacan"}

	if err := registry.AddToHand("sol", note); err != nil {
		t.Fatalf("add to hand: %v", err)
	}
	if !registry.Owns("sol", note) {
		t.Fatal("expected sol to own the note")
	}

	hand := registry.Hand("sol")
	if len(hand) != 1 {
		t.Fatalf("expected 1 note in hand, got %d", len(hand))
	}
	if hand[0].Receiver != "sol" {
		t.Fatalf("expected receiver sol, got %q", hand[0].Receiver)
	}

	if err := registry.RemoveFromHand("sol", note); err != nil {
		t.Fatalf("remove from hand: %v", err)
	}
	if registry.Owns("sol", note) {
		t.Fatal("expected note to be gone")
	}
}

func TestAddDuplicateFails(t *testing.T) {
	registry := NewRegistry()
	note := Note{Kind: KindCeasefire, Issuer: "sol"}

	if err := registry.AddToHand("hacan", note); err != nil {
		t.Fatalf("add to hand: %v", err)
	}
	err := registry.AddToHand("hacan", note)
	if !errors.Is(err, ErrDuplicate) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestRemoveMissingFails(t *testing.T) {
	registry := NewRegistry()
	note := Note{Kind: KindCeasefire, Issuer: "sol"}

	err := registry.RemoveFromHand("hacan", note)
	if !errors.Is(err, ErrNotInHand) {
		t.Fatalf("expected not-in-hand error, got %v", err)
	}
}

func TestHandReturnsCopy(t *testing.T) {
	registry := NewRegistry()
	note := Note{Kind: KindPoliticalSecret, Issuer: "xxcha"}
	if err := registry.AddToHand("sol", note); err != nil {
		t.Fatalf("add to hand: %v", err)
	}

	hand := registry.Hand("sol")
	hand[0].Issuer = "mutated"

	if !registry.Owns("sol", note) {
		t.Fatal("expected registry state to be unaffected by caller mutation")
	}
}
