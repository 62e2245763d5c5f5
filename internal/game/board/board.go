// Package board tracks galaxy topology and player presence for adjacency checks.
package board

import apperrors "github.com/NoahPeres/ti4engine/internal/platform/errors"

// ErrUnknownPlayer indicates a presence lookup for a player with no units on the board.
var ErrUnknownPlayer = apperrors.New(apperrors.CodeBoardUnknownPlayer, "player has no presence on the board")

// Board is a galaxy graph of systems plus the systems each player occupies.
//
// Two players are neighbors when they occupy the same system or systems
// joined by a hyperlane edge. Topology computation beyond that (wormholes,
// anomaly pathing) belongs to the movement subsystem, not the board.
type Board struct {
	edges    map[string]map[string]bool
	presence map[string]map[string]bool
}

// New creates an empty board.
func New() *Board {
	return &Board{
		edges:    map[string]map[string]bool{},
		presence: map[string]map[string]bool{},
	}
}

// LinkSystems records a bidirectional hyperlane between two systems.
func (b *Board) LinkSystems(a, c string) {
	if a == "" || c == "" || a == c {
		return
	}
	if b.edges[a] == nil {
		b.edges[a] = map[string]bool{}
	}
	if b.edges[c] == nil {
		b.edges[c] = map[string]bool{}
	}
	b.edges[a][c] = true
	b.edges[c][a] = true
}

// PlacePlayer records the player's presence in a system.
func (b *Board) PlacePlayer(player, system string) {
	if player == "" || system == "" {
		return
	}
	if b.presence[player] == nil {
		b.presence[player] = map[string]bool{}
	}
	b.presence[player][system] = true
}

// RemovePlayer clears all of a player's presence, e.g. on elimination.
func (b *Board) RemovePlayer(player string) {
	delete(b.presence, player)
}

// Systems returns the systems the player currently occupies.
func (b *Board) Systems(player string) ([]string, error) {
	occupied := b.presence[player]
	if len(occupied) == 0 {
		return nil, apperrors.WithMetadata(apperrors.CodeBoardUnknownPlayer,
			"player has no presence on the board",
			map[string]string{"Player": player})
	}
	systems := make([]string, 0, len(occupied))
	for system := range occupied {
		systems = append(systems, system)
	}
	return systems, nil
}

// AreNeighbors reports whether two players share a system or occupy systems
// joined by a hyperlane. A player with no presence neighbors nobody.
func (b *Board) AreNeighbors(playerA, playerB string) bool {
	if playerA == playerB {
		return false
	}
	for systemA := range b.presence[playerA] {
		for systemB := range b.presence[playerB] {
			if systemA == systemB || b.edges[systemA][systemB] {
				return true
			}
		}
	}
	return false
}
