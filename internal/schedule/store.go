package schedule

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
)

const (
	scheduleFilePrefix = "daily_schedule_"
	scheduleFileSuffix = ".json"
	dateLayout         = "2006-01-02"
)

// Store persists one JSON schedule file per calendar date under a data
// directory. Writes are whole-file overwrites; there are no partial updates.
type Store struct {
	dir string
}

// NewStore creates a Store rooted at dir (created on first save).
func NewStore(dir string) *Store {
	if dir == "" {
		dir = "data"
	}
	return &Store{dir: dir}
}

// FilePath returns the schedule file path for a date.
func (st *Store) FilePath(date string) string {
	return filepath.Join(st.dir, scheduleFilePrefix+date+scheduleFileSuffix)
}

// Load reads the schedule for date. A missing file returns (nil, nil);
// corrupt files return an error and are treated by callers as a cache miss.
func (st *Store) Load(date string) (*DailySchedule, error) {
	b, err := os.ReadFile(st.FilePath(date))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read schedule file: %w", err)
	}
	var s DailySchedule
	if err := json.Unmarshal(b, &s); err != nil {
		return nil, fmt.Errorf("decode schedule file: %w", err)
	}
	return &s, nil
}

// Save writes the schedule to its date-keyed file.
func (st *Store) Save(s *DailySchedule) error {
	if err := os.MkdirAll(st.dir, 0755); err != nil {
		return fmt.Errorf("create schedule dir: %w", err)
	}
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encode schedule: %w", err)
	}
	if err := os.WriteFile(st.FilePath(s.Date), b, 0644); err != nil {
		return fmt.Errorf("write schedule file: %w", err)
	}
	return nil
}

// CleanupOld deletes schedule files older than retentionDays before
// currentDate. The retention window itself is kept because RecentDigest
// reads it to suppress cross-day repetition.
func (st *Store) CleanupOld(currentDate string, retentionDays int) {
	base, err := time.Parse(dateLayout, currentDate)
	if err != nil {
		log.Printf("[WARN] skip schedule cleanup, bad date %q: %v", currentDate, err)
		return
	}
	if retentionDays < 0 {
		retentionDays = 0
	}
	keepFrom := base.AddDate(0, 0, -retentionDays)

	entries, err := os.ReadDir(st.dir)
	if err != nil {
		return
	}

	deleted := 0
	for _, ent := range entries {
		name := ent.Name()
		if !strings.HasPrefix(name, scheduleFilePrefix) || !strings.HasSuffix(name, scheduleFileSuffix) {
			continue
		}
		dateStr := strings.TrimSuffix(strings.TrimPrefix(name, scheduleFilePrefix), scheduleFileSuffix)
		fileDate, err := time.Parse(dateLayout, dateStr)
		if err != nil {
			// Not a date-keyed schedule file, leave it alone.
			continue
		}
		if fileDate.Before(keepFrom) {
			if err := os.Remove(filepath.Join(st.dir, name)); err != nil {
				log.Printf("[WARN] remove old schedule file %s: %v", name, err)
				continue
			}
			deleted++
		}
	}
	if deleted > 0 {
		log.Printf("[SCHEDULE] cleaned %d old schedule files (keeping last %d days)", deleted, retentionDays)
	}
}

// RecentDigest builds a compact summary of the last N days of schedules
// (time, activity and location only) for injection into the generation
// prompt. Returns "" when there is no usable history.
func (st *Store) RecentDigest(date string, days int) string {
	base, err := time.Parse(dateLayout, date)
	if err != nil {
		return ""
	}

	var summaries []string
	for i := 1; i <= days; i++ {
		d := base.AddDate(0, 0, -i).Format(dateLayout)
		s, err := st.Load(d)
		if err != nil || s == nil || len(s.Entries) == 0 {
			continue
		}
		items := make([]string, 0, len(s.Entries))
		for j, e := range s.Entries {
			if j >= 12 {
				break
			}
			items = append(items, fmt.Sprintf("[%s] %s @ %s", e.TimePoint, e.ActivityDescription, e.Location))
		}
		summaries = append(summaries, d+": "+strings.Join(items, "; "))
	}

	if len(summaries) == 0 {
		return ""
	}
	return "\n## Last days recap (for variety)\n" +
		"Recent schedules are listed below. Avoid planning a day that closely repeats these activity combinations or scenes:\n" +
		strings.Join(summaries, "\n") + "\n"
}
