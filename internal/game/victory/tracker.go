// Package victory tracks player scores against the game's winning threshold.
package victory

import apperrors "github.com/NoahPeres/ti4engine/internal/platform/errors"

var (
	// ErrInvalidMax indicates a non-positive maximum score.
	ErrInvalidMax = apperrors.New(apperrors.CodeScoreInvalidMax, "maximum score must be greater than zero")
	// ErrUnknownPlayer indicates a score lookup for an unregistered player.
	ErrUnknownPlayer = apperrors.New(apperrors.CodeScoreUnknownPlayer, "player is not on the victory track")
	// ErrAtMax indicates a point award that would exceed the maximum score.
	ErrAtMax = apperrors.New(apperrors.CodeScoreAtMax, "player is already at the maximum score")
)

// Tracker records each player's victory points.
type Tracker struct {
	max    int
	scores map[string]int
}

// NewTracker creates a tracker with the given maximum achievable score.
func NewTracker(max int) (*Tracker, error) {
	if max <= 0 {
		return nil, ErrInvalidMax
	}
	return &Tracker{max: max, scores: map[string]int{}}, nil
}

// AddPlayer registers a player at zero points. Re-adding resets their score.
func (t *Tracker) AddPlayer(player string) {
	t.scores[player] = 0
}

// MaxScore returns the maximum achievable score.
func (t *Tracker) MaxScore() int {
	return t.max
}

// Score returns a player's current score.
func (t *Tracker) Score(player string) (int, error) {
	score, ok := t.scores[player]
	if !ok {
		return 0, apperrors.WithMetadata(apperrors.CodeScoreUnknownPlayer,
			"player is not on the victory track",
			map[string]string{"Player": player})
	}
	return score, nil
}

// AwardPoint grants one victory point and returns the new score.
// Awarding beyond the maximum fails and leaves the score unchanged.
func (t *Tracker) AwardPoint(player string) (int, error) {
	score, err := t.Score(player)
	if err != nil {
		return 0, err
	}
	if score >= t.max {
		return score, apperrors.WithMetadata(apperrors.CodeScoreAtMax,
			"player is already at the maximum score",
			map[string]string{"Player": player})
	}
	t.scores[player] = score + 1
	return score + 1, nil
}
