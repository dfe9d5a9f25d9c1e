package scores

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// Entry holds a single high score record.
type Entry struct {
	Value int    `json:"value"`
	Date  string `json:"date"`
}

// GameScores stores high scores for every (difficulty, policy)
// combination a player has completed, keyed by Key. Lower is better
// for both metrics: seconds elapsed and cells revealed to reach a win.
type GameScores struct {
	FastestTime   map[string]*Entry `json:"fastest_time,omitempty"`
	FewestReveals map[string]*Entry `json:"fewest_reveals,omitempty"`
}

// Key builds the map key identifying one (difficulty, policy) pairing.
func Key(difficulty, policy string) string {
	return fmt.Sprintf("%s:%s", difficulty, policy)
}

// Store manages high score persistence.
type Store struct {
	path   string
	Scores GameScores
}

// Load reads the high scores file. Returns an empty store if the file
// doesn't exist.
func Load() (*Store, error) {
	return LoadFrom("")
}

// LoadFrom reads scores from a specific path. If path is empty, uses
// the default location (~/.mineoracle/scores.json).
func LoadFrom(path string) (*Store, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return &Store{Scores: GameScores{}}, errors.Wrap(err, "scores: resolve home directory")
		}
		path = filepath.Join(home, ".mineoracle", "scores.json")
	}

	s := &Store{path: path, Scores: GameScores{}}

	data, err := os.ReadFile(path) //nolint:gosec // G304: path is from UserHomeDir or test-controlled input
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, errors.Wrapf(err, "scores: read %s", path)
	}

	if err := json.Unmarshal(data, &s.Scores); err != nil {
		return s, errors.Wrapf(err, "scores: decode %s", path)
	}
	return s, nil
}

// Save writes the high scores to disk.
func (s *Store) Save() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return errors.Wrapf(err, "scores: create %s", dir)
	}
	data, err := json.MarshalIndent(s.Scores, "", "  ")
	if err != nil {
		return errors.Wrap(err, "scores: encode scores")
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrapf(err, "scores: write %s", s.path)
	}
	return nil
}

// UpdateTime records a completion time in seconds for key if it beats
// the existing fastest time. Returns true if a new record was set.
func (s *Store) UpdateTime(key string, seconds int) bool {
	if s.Scores.FastestTime == nil {
		s.Scores.FastestTime = make(map[string]*Entry)
	}
	return updateLowerIsBetter(s.Scores.FastestTime, key, seconds)
}

// UpdateReveals records the number of cells revealed to reach a win
// for key if it beats the existing record. Returns true if a new
// record was set.
func (s *Store) UpdateReveals(key string, reveals int) bool {
	if s.Scores.FewestReveals == nil {
		s.Scores.FewestReveals = make(map[string]*Entry)
	}
	return updateLowerIsBetter(s.Scores.FewestReveals, key, reveals)
}

func updateLowerIsBetter(m map[string]*Entry, key string, value int) bool {
	if current, ok := m[key]; ok && value >= current.Value {
		return false
	}
	m[key] = &Entry{Value: value, Date: time.Now().Format("2006-01-02")}
	return true
}

// GetTime returns the fastest-time record for key, or nil.
func (s *Store) GetTime(key string) *Entry {
	if s.Scores.FastestTime == nil {
		return nil
	}
	return s.Scores.FastestTime[key]
}

// GetReveals returns the fewest-reveals record for key, or nil.
func (s *Store) GetReveals(key string) *Entry {
	if s.Scores.FewestReveals == nil {
		return nil
	}
	return s.Scores.FewestReveals[key]
}
