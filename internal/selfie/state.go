package selfie

import (
	"context"
	"log"
	"time"

	"github.com/keshon/datastore"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04:05"
	supplementKey   = "supplement_timer"
	dayKeyPrefix    = "day:"
)

// State is the trigger bookkeeping that lives outside the schedule files:
// which fixed times already fired on a date, and the supplement interval
// timer. It survives restarts so a relaunched bot neither re-posts a
// consumed slot nor fires a burst of supplements.
type State struct {
	ds     *datastore.DataStore
	cancel context.CancelFunc
}

type dayRecord struct {
	FiredTimes map[string]string `json:"fired_times"` // time point -> fired at
}

type supplementRecord struct {
	LastAt string `json:"last_at"`
}

func NewState(filePath string) (*State, error) {
	ctx, cancel := context.WithCancel(context.Background())
	ds, err := datastore.New(ctx, filePath, datastore.WithSaveInterval(time.Minute))
	if err != nil {
		cancel()
		return nil, err
	}
	return &State{ds: ds, cancel: cancel}, nil
}

// Close flushes a final snapshot. The store's Close waits for its autosave
// goroutine, which only exits on context cancel, so cancel comes first.
func (s *State) Close() error {
	s.cancel()
	return s.ds.Close()
}

func (s *State) dayRecord(date string) (*dayRecord, error) {
	record := dayRecord{FiredTimes: map[string]string{}}
	if _, err := s.ds.Get(dayKeyPrefix+date, &record); err != nil {
		return nil, err
	}
	if record.FiredTimes == nil {
		record.FiredTimes = map[string]string{}
	}
	return &record, nil
}

// HasFired reports whether the fixed time point already fired on date.
func (s *State) HasFired(date, timePoint string) bool {
	record, err := s.dayRecord(date)
	if err != nil {
		log.Printf("[WARN] trigger state unreadable for %s: %v", date, err)
		return false
	}
	_, fired := record.FiredTimes[timePoint]
	return fired
}

// MarkFired records that the fixed time point fired on date.
func (s *State) MarkFired(date, timePoint string, now time.Time) error {
	record, err := s.dayRecord(date)
	if err != nil {
		return err
	}
	record.FiredTimes[timePoint] = now.Format(timestampLayout)
	return s.ds.Set(dayKeyPrefix+date, record)
}

// LastSupplementAt returns the supplement interval timer, false when it was
// never set.
func (s *State) LastSupplementAt() (time.Time, bool) {
	var record supplementRecord
	exists, err := s.ds.Get(supplementKey, &record)
	if err != nil {
		log.Printf("[WARN] supplement timer unreadable: %v", err)
		return time.Time{}, false
	}
	if !exists || record.LastAt == "" {
		return time.Time{}, false
	}
	t, err := time.ParseInLocation(timestampLayout, record.LastAt, time.Local)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// SetLastSupplementAt stamps the supplement interval timer. Scheduled and
// fixed-time posts never touch it; only a delivered supplement and the
// first-run seeding do.
func (s *State) SetLastSupplementAt(t time.Time) error {
	return s.ds.Set(supplementKey, &supplementRecord{LastAt: t.Format(timestampLayout)})
}

// CleanupOld drops day records older than retentionDays before currentDate.
func (s *State) CleanupOld(currentDate string, retentionDays int) {
	base, err := time.Parse(dateLayout, currentDate)
	if err != nil {
		return
	}
	if retentionDays < 0 {
		retentionDays = 0
	}
	// Probing the retention horizon one day at a time is enough here: day
	// records only ever exist for dates the bot was running.
	for i := retentionDays + 1; i <= retentionDays+60; i++ {
		d := base.AddDate(0, 0, -i).Format(dateLayout)
		if err := s.ds.Delete(dayKeyPrefix + d); err != nil {
			return
		}
	}
}
