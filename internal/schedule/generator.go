package schedule

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"selfie-bot/internal/ai"
)

// Failure reasons recorded when a day degrades to template fallback.
const (
	FailureEmptyResponse    = "llm_empty_response"
	FailureParseFailed      = "parse_failed"
	FailureValidationFailed = "validation_failed"
	FailureException        = "exception"
)

// ModelChain is the slice of ai.Chain the generator needs.
type ModelChain interface {
	Generate(ctx context.Context, requested string, messages []ai.Message) (*ai.Result, error)
}

// GeneratorConfig is the static configuration of a Generator.
type GeneratorConfig struct {
	Model         string // preferred model, may be ""
	PersonaText   string
	Lifestyle     string
	RetentionDays int
	DigestDays    int
	FailureDir    string // where degraded-day diagnostic packages go
}

// Generator produces (or loads) the day plan for a date. Generation is
// model-first with a deterministic template fallback, so a schedule always
// exists after GetOrGenerate returns.
type Generator struct {
	store *Store
	chain ModelChain
	cfg   GeneratorConfig

	mu sync.Mutex
}

func NewGenerator(store *Store, chain ModelChain, cfg GeneratorConfig) *Generator {
	if cfg.RetentionDays <= 0 {
		cfg.RetentionDays = 7
	}
	if cfg.DigestDays <= 0 {
		cfg.DigestDays = 3
	}
	if cfg.FailureDir == "" {
		cfg.FailureDir = filepath.Join("data", "fallback_packages", "schedule")
	}
	return &Generator{store: store, chain: chain, cfg: cfg}
}

// PersonaSignature fingerprints the persona configuration. A cached schedule
// generated under a different signature is discarded and rebuilt.
func (g *Generator) PersonaSignature() string {
	sum := md5.Sum([]byte(g.cfg.PersonaText + "\x00" + g.cfg.Lifestyle))
	return hex.EncodeToString(sum[:])
}

// GetOrGenerate returns the schedule for date, generating and persisting it
// when no valid cached plan exists. Saturdays and Sundays count as holidays
// even when isHoliday is false. The returned schedule is never nil on a nil
// error: when every model attempt fails the hand-authored templates fill in.
func (g *Generator) GetOrGenerate(ctx context.Context, date string, triggerTimes []string, weather string, isHoliday bool) (*DailySchedule, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.store.CleanupOld(date, g.cfg.RetentionDays)

	signature := g.PersonaSignature()
	if cached, err := g.store.Load(date); err != nil {
		log.Printf("[WARN] schedule cache unreadable for %s: %v", date, err)
	} else if cached != nil {
		if cached.CharacterPersona == signature {
			return cached, nil
		}
		log.Printf("[SCHEDULE] persona changed since %s was generated, regenerating", date)
	}

	day, err := time.Parse(dateLayout, date)
	if err != nil {
		return nil, fmt.Errorf("bad schedule date %q: %w", date, err)
	}
	if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
		isHoliday = true
	}
	dayOfWeek := day.Weekday().String()

	prompt := BuildSchedulePrompt(PromptInput{
		Date:         date,
		DayOfWeek:    dayOfWeek,
		IsHoliday:    isHoliday,
		Weather:      weather,
		TriggerTimes: triggerTimes,
		PersonaText:  g.cfg.PersonaText,
		Lifestyle:    g.cfg.Lifestyle,
		RecentDigest: g.store.RecentDigest(date, g.cfg.DigestDays),
	})

	s := g.generate(ctx, prompt, date, triggerTimes, isHoliday)
	s.Date = date
	s.DayOfWeek = dayOfWeek
	s.IsHoliday = isHoliday
	s.Weather = weather
	s.CharacterPersona = signature
	s.GeneratedAt = time.Now().Format(timestampLayout)

	// a failed write is not fatal: the day is usable in memory and the next
	// regeneration will try the disk again
	if err := g.store.Save(s); err != nil {
		log.Printf("[WARN] schedule save failed for %s, serving from memory: %v", date, err)
	}
	log.Printf("[SCHEDULE] %s ready: %d entries, model=%s", date, len(s.Entries), s.ModelUsed)
	return s, nil
}

// generate runs the model chain and parses its answer, degrading to the
// template fallback on any failure. It fills only the generation-dependent
// fields; the caller stamps date metadata.
func (g *Generator) generate(ctx context.Context, prompt, date string, triggerTimes []string, isHoliday bool) *DailySchedule {
	messages := []ai.Message{
		{Role: "system", Content: "You write structured life-simulation data. Answer with JSON only."},
		{Role: "user", Content: prompt},
	}

	res, err := g.chain.Generate(ctx, g.cfg.Model, messages)
	if res == nil {
		res = &ai.Result{}
	}
	if err != nil || strings.TrimSpace(res.Text) == "" {
		detail := "model chain produced no text"
		if err != nil {
			detail = err.Error()
		}
		return g.fallback(date, triggerTimes, isHoliday, failureReport{
			Reason: FailureEmptyResponse, Prompt: prompt, Error: detail, Attempts: res.Attempts,
		})
	}

	raw, diag := ExtractJSONArray(res.Text)
	if raw == "" {
		return g.fallback(date, triggerTimes, isHoliday, failureReport{
			Reason: FailureParseFailed, Prompt: prompt, Response: res.Text, Error: diag, Attempts: res.Attempts,
		})
	}

	var parsed []ScheduleEntry
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return g.fallback(date, triggerTimes, isHoliday, failureReport{
			Reason: FailureParseFailed, Prompt: prompt, Response: res.Text, Error: err.Error(), Attempts: res.Attempts,
		})
	}

	entries, problems := normalizeEntries(parsed)
	if len(entries) == 0 {
		return g.fallback(date, triggerTimes, isHoliday, failureReport{
			Reason: FailureValidationFailed, Prompt: prompt, Response: res.Text,
			Error: strings.Join(problems, "; "), Attempts: res.Attempts,
		})
	}
	for _, p := range problems {
		log.Printf("[WARN] schedule entry dropped: %s", p)
	}

	return &DailySchedule{Entries: entries, ModelUsed: res.Model}
}

// normalizeEntries validates and cleans parsed entries. Entries missing the
// required fields are dropped with a reason; the rest get default windows,
// normalized caption types and sanitized text.
func normalizeEntries(parsed []ScheduleEntry) ([]ScheduleEntry, []string) {
	var entries []ScheduleEntry
	var problems []string
	seen := make(map[string]bool)

	for i := range parsed {
		e := parsed[i]
		switch {
		case !ValidClock(e.TimePoint):
			problems = append(problems, fmt.Sprintf("entry %d: bad time_point %q", i, e.TimePoint))
			continue
		case e.ActivityType == "":
			problems = append(problems, fmt.Sprintf("entry %d: missing activity_type", i))
			continue
		case strings.TrimSpace(e.ActivityDescription) == "":
			problems = append(problems, fmt.Sprintf("entry %d: missing activity_description", i))
			continue
		}

		if seen[e.TimePoint] {
			log.Printf("[WARN] duplicate schedule time point %s, keeping both", e.TimePoint)
		}
		seen[e.TimePoint] = true

		if !ValidClock(e.TimeRangeStart) {
			e.TimeRangeStart = AdjustClock(e.TimePoint, -5)
		}
		if !ValidClock(e.TimeRangeEnd) {
			e.TimeRangeEnd = AdjustClock(e.TimePoint, 5)
		}
		e.CaptionType = NormalizeCaptionType(e.CaptionType)
		e.IsCompleted = false
		e.CompletedAt = ""
		for j := range e.SceneVariations {
			if e.SceneVariations[j].VariationID == "" {
				e.SceneVariations[j].VariationID = fmt.Sprintf("v%d", j+1)
			}
			e.SceneVariations[j].Reset()
		}
		sanitizeEntry(&e)
		entries = append(entries, e)
	}
	return entries, problems
}

// fallback builds the deterministic template day and writes the diagnostic
// failure package next to it.
func (g *Generator) fallback(date string, triggerTimes []string, isHoliday bool, report failureReport) *DailySchedule {
	report.Date = date
	pkgPath := g.writeFailurePackage(report)
	log.Printf("[WARN] schedule generation degraded (%s), using templates for %s", report.Reason, date)

	mode := DetectPersonaMode(g.cfg.PersonaText)
	scenes := SelectFallbackScenes(date, mode, isHoliday)

	entries := make([]ScheduleEntry, 0, len(triggerTimes))
	for _, t := range triggerTimes {
		if !ValidClock(t) {
			log.Printf("[WARN] skipping bad trigger time %q", t)
			continue
		}
		entries = append(entries, ClosestFallbackScene(scenes, t))
	}

	return &DailySchedule{
		Entries:                entries,
		ModelUsed:              "fallback",
		FallbackReason:         report.Reason,
		FallbackFailurePackage: pkgPath,
	}
}

type failureReport struct {
	ID        string       `json:"id"`
	Date      string       `json:"date"`
	Reason    string       `json:"reason"`
	Prompt    string       `json:"prompt"`
	Response  string       `json:"response,omitempty"`
	Error     string       `json:"error,omitempty"`
	Attempts  []ai.Attempt `json:"attempts,omitempty"`
	CreatedAt string       `json:"created_at"`
}

// writeFailurePackage persists the full diagnostic context of a degraded
// generation. Returns the package path, or "" when even that write failed.
func (g *Generator) writeFailurePackage(report failureReport) string {
	report.ID = uuid.NewString()[:8]
	report.CreatedAt = time.Now().Format(timestampLayout)

	if err := os.MkdirAll(g.cfg.FailureDir, 0755); err != nil {
		log.Printf("[ERR] create failure package dir: %v", err)
		return ""
	}
	path := filepath.Join(g.cfg.FailureDir, fmt.Sprintf("%s_%s_%s.json", report.Date, report.Reason, report.ID))
	b, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Printf("[ERR] encode failure package: %v", err)
		return ""
	}
	if err := os.WriteFile(path, b, 0644); err != nil {
		log.Printf("[ERR] write failure package: %v", err)
		return ""
	}
	return path
}
