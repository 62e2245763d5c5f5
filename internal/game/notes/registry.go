package notes

import apperrors "github.com/NoahPeres/ti4engine/internal/platform/errors"

var (
	// ErrNotInHand indicates a note operation against a player who does not hold it.
	ErrNotInHand = apperrors.New(apperrors.CodeNoteNotInHand, "note is not in the player's hand")
	// ErrDuplicate indicates the same instrument would be held twice by one player.
	ErrDuplicate = apperrors.New(apperrors.CodeNoteDuplicate, "note is already in the player's hand")
)

// Registry tracks which player currently holds each promissory note.
type Registry struct {
	hands map[string][]Note
}

// NewRegistry creates an empty note registry.
func NewRegistry() *Registry {
	return &Registry{hands: map[string][]Note{}}
}

// Hand returns a copy of the notes currently held by the player.
func (r *Registry) Hand(player string) []Note {
	held := r.hands[player]
	if len(held) == 0 {
		return nil
	}
	return append([]Note(nil), held...)
}

// Owns reports whether the player currently holds the given instrument.
func (r *Registry) Owns(player string, note Note) bool {
	for _, held := range r.hands[player] {
		if held.Same(note) {
			return true
		}
	}
	return false
}

// AddToHand assigns the note to the player's hand.
func (r *Registry) AddToHand(player string, note Note) error {
	if r.Owns(player, note) {
		return apperrors.WithMetadata(apperrors.CodeNoteDuplicate,
			"note is already in the player's hand",
			map[string]string{"Player": player, "Note": note.Label()})
	}
	note.Receiver = player
	r.hands[player] = append(r.hands[player], note)
	return nil
}

// RemoveFromHand removes the note from the player's hand.
func (r *Registry) RemoveFromHand(player string, note Note) error {
	held := r.hands[player]
	for i, candidate := range held {
		if candidate.Same(note) {
			r.hands[player] = append(append([]Note(nil), held[:i]...), held[i+1:]...)
			return nil
		}
	}
	return apperrors.WithMetadata(apperrors.CodeNoteNotInHand,
		"note is not in the player's hand",
		map[string]string{"Player": player, "Note": note.Label()})
}
