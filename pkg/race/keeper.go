package race

import (
	"github.com/golangdaddy/circuit/log"
)

// Keeper submits every session it is handed to a record book exactly once,
// either when the session finishes or when another session replaces it.
type Keeper struct {
	records *Records
	file    string
	active  *Session
	log     *log.Logger
}

// NewKeeper creates a keeper for records, saved to file after every
// submission. A nil book disables recording; an empty file keeps it in memory.
func NewKeeper(records *Records, file string) *Keeper {
	return &Keeper{
		records: records,
		file:    file,
		log:     log.Default().Named("race.records"),
	}
}

// Start makes s the active session, recording the one it replaces.
func (k *Keeper) Start(s *Session) error {
	err := k.Finish()
	k.active = s
	return err
}

// Finish records the active session, if any, and clears it.
func (k *Keeper) Finish() error {
	s := k.active
	k.active = nil
	if s == nil || k.records == nil {
		return nil
	}

	track := s.Track().Name
	snap := s.Snapshot()
	if k.records.Submit(track, snap) {
		k.log.Info("new track record", log.String("track", track), log.Duration("lap", snap.BestLap))
	}
	if k.file == "" {
		return nil
	}
	return k.records.SaveToFile(k.file)
}

// Best returns the record for a track.
func (k *Keeper) Best(track string) (Record, bool) {
	if k.records == nil {
		return Record{}, false
	}
	return k.records.Best(track)
}
