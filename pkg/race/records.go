package race

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"
	"time"

	"github.com/samber/lo"
)

// Record is the best lap set on one track.
type Record struct {
	BestLap   time.Duration `json:"best_lap"`
	Laps      int           `json:"laps"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// Records holds lap records keyed by track name.
type Records struct {
	Tracks map[string]Record `json:"tracks"`
}

// NewRecords creates an empty record book
func NewRecords() *Records {
	return &Records{Tracks: map[string]Record{}}
}

// LoadRecords reads a record book from a JSON file. A missing file yields an
// empty book.
func LoadRecords(filename string) (*Records, error) {
	data, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return NewRecords(), nil
	}
	if err != nil {
		return nil, err
	}

	var r Records
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("failed to parse records %s: %w", filename, err)
	}
	if r.Tracks == nil {
		r.Tracks = map[string]Record{}
	}
	return &r, nil
}

// SaveToFile writes the record book as indented JSON
func (r *Records) SaveToFile(filename string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0o644)
}

// Best returns the record for a track
func (r *Records) Best(track string) (Record, bool) {
	rec, ok := r.Tracks[track]
	return rec, ok
}

// Submit folds the result of a session into the book and reports whether it
// set a new best lap. Sessions without a completed lap only add to the lap
// count.
func (r *Records) Submit(track string, snap Snapshot) bool {
	rec := r.Tracks[track]
	rec.Laps += snap.Laps
	improved := snap.BestLap > 0 && (rec.BestLap == 0 || snap.BestLap < rec.BestLap)
	if improved {
		rec.BestLap = snap.BestLap
	}
	if improved || snap.Laps > 0 {
		rec.UpdatedAt = time.Now()
	}
	r.Tracks[track] = rec
	return improved
}

// Names returns the tracks in the book in alphabetical order
func (r *Records) Names() []string {
	names := lo.Keys(r.Tracks)
	slices.Sort(names)
	return names
}
