package storage

import "github.com/vovakirdan/flapper/internal/core"

// Recorder saves the score of every finished run exactly once. Feed it the
// game state after each tick; a run is finished while GameOver is set.
type Recorder struct {
	store      *Store
	gameID     string
	difficulty string
	saved      bool
}

// NewRecorder creates a recorder for one game variant. A nil store makes
// Observe a no-op.
func NewRecorder(store *Store, gameID, difficulty string) *Recorder {
	return &Recorder{store: store, gameID: gameID, difficulty: difficulty}
}

// Observe saves the score on the first game-over state it sees after a
// run. Zero scores are not kept. It reports the board rank of a saved
// score, or 0 when nothing was saved.
func (r *Recorder) Observe(st core.GameState) (int, error) {
	if !st.GameOver {
		r.saved = false
		return 0, nil
	}
	if r.saved {
		return 0, nil
	}
	r.saved = true

	if r.store == nil || st.Score <= 0 {
		return 0, nil
	}

	rank, err := r.store.Rank(r.gameID, st.Score)
	if err != nil {
		return 0, err
	}
	if _, err := r.store.SaveScore(r.gameID, st.Score, r.difficulty); err != nil {
		return 0, err
	}
	return rank, nil
}
