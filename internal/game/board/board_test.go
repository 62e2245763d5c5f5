package board

import (
	"errors"
	"testing"
)

func TestAreNeighborsSharedSystem(t *testing.T) {
	b := New()
	b.PlacePlayer("sol", "mecatol")
	b.PlacePlayer("hacan", "mecatol")

	if !b.AreNeighbors("sol", "hacan") {
		t.Fatal("expected players sharing a system to be neighbors")
	}
}

func TestAreNeighborsLinkedSystems(t *testing.T) {
	b := New()
	b.LinkSystems("jord", "quann")
	b.PlacePlayer("sol", "jord")
	b.PlacePlayer("xxcha", "quann")

	if !b.AreNeighbors("sol", "xxcha") {
		t.Fatal("expected players in linked systems to be neighbors")
	}
	if !b.AreNeighbors("xxcha", "sol") {
		t.Fatal("expected neighbor relation to be symmetric")
	}
}

func TestAreNeighborsDisconnected(t *testing.T) {
	b := New()
	b.LinkSystems("jord", "quann")
	b.PlacePlayer("sol", "jord")
	b.PlacePlayer("hacan", "arretze")

	if b.AreNeighbors("sol", "hacan") {
		t.Fatal("expected players in disconnected systems not to be neighbors")
	}
	if b.AreNeighbors("sol", "sol") {
		t.Fatal("expected a player not to neighbor themselves")
	}
}

func TestSystemsUnknownPlayer(t *testing.T) {
	b := New()
	if _, err := b.Systems("ghost"); !errors.Is(err, ErrUnknownPlayer) {
		t.Fatalf("expected unknown player, got %v", err)
	}
}

func TestRemovePlayerClearsPresence(t *testing.T) {
	b := New()
	b.PlacePlayer("sol", "jord")
	b.PlacePlayer("hacan", "jord")
	b.RemovePlayer("sol")

	if b.AreNeighbors("sol", "hacan") {
		t.Fatal("expected removed player to neighbor nobody")
	}
}
