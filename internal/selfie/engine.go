package selfie

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"selfie-bot/internal/schedule"
)

// DecisionKind says what a tick resolved to.
type DecisionKind string

const (
	DecideNone       DecisionKind = "none"
	DecideEntry      DecisionKind = "entry"
	DecideSupplement DecisionKind = "supplement"
	DecideLegacy     DecisionKind = "legacy"
)

// Decision is a fully resolved trigger: what to post and which state to
// consume once the post is confirmed sent. Nothing is mutated until Commit,
// so a failed render or send leaves the slot available for the next tick.
type Decision struct {
	Kind     DecisionKind
	Reason   string
	Schedule *schedule.DailySchedule
	Entry    *schedule.ScheduleEntry
	Relation schedule.TimeRelation

	VariationID string
	ResetPool   bool // variation pool was exhausted; reset it before marking

	TimePoint string // legacy decisions: the fixed time that fired
	Prompt    string
	At        time.Time
}

// EngineConfig is the trigger policy.
type EngineConfig struct {
	TriggerTimes []string
	Weather      string
	Holiday      bool // forced holiday regardless of weekday

	SupplementEnabled  bool
	SupplementInterval time.Duration // minimum gap since the last post
	SupplementChance   float64       // probability once all gates pass
	ExclusionMargin    time.Duration // keep supplements away from scheduled points
	LegacyWindow       time.Duration // half-width of the fixed-time match window

	SleepStart string // "23:00"
	SleepEnd   string // "07:00"
}

// ScheduleSource yields the day plan for a date, creating it when needed.
// Implemented by schedule.Generator.
type ScheduleSource interface {
	GetOrGenerate(ctx context.Context, date string, triggerTimes []string, weather string, isHoliday bool) (*schedule.DailySchedule, error)
}

// Engine turns wall-clock ticks into post decisions against the day's
// schedule. Decide is read-only; Commit is the only path that consumes
// schedule slots, variations and trigger state.
type Engine struct {
	gen   ScheduleSource
	store *schedule.Store
	state *State
	cfg   EngineConfig

	mu  sync.Mutex
	rng *rand.Rand
}

func NewEngine(gen ScheduleSource, store *schedule.Store, state *State, cfg EngineConfig) *Engine {
	if cfg.SupplementInterval <= 0 {
		cfg.SupplementInterval = 120 * time.Minute
	}
	if cfg.SupplementChance <= 0 {
		cfg.SupplementChance = 0.3
	}
	if cfg.ExclusionMargin <= 0 {
		cfg.ExclusionMargin = 30 * time.Minute
	}
	if cfg.LegacyWindow <= 0 {
		cfg.LegacyWindow = 2 * time.Minute
	}
	return &Engine{
		gen:   gen,
		store: store,
		state: state,
		cfg:   cfg,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// Decide resolves the current tick. It consumes nothing: a non-none
// Decision must be passed to Commit after the post is confirmed delivered.
// The only state it writes is the first-run seeding of the supplement
// timer, which fires no post.
func (e *Engine) Decide(ctx context.Context, now time.Time) (*Decision, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	clock := now.Format("15:04")
	if schedule.ClockInRange(clock, e.cfg.SleepStart, e.cfg.SleepEnd) {
		return &Decision{Kind: DecideNone, Reason: "sleep window", At: now}, nil
	}

	date := now.Format(dateLayout)
	sched, err := e.gen.GetOrGenerate(ctx, date, e.cfg.TriggerTimes, e.cfg.Weather, e.cfg.Holiday)
	if err != nil {
		return nil, fmt.Errorf("resolve schedule: %w", err)
	}

	if entry := sched.CurrentEntry(now); entry != nil {
		d := &Decision{
			Kind:     DecideEntry,
			Reason:   "schedule window",
			Schedule: sched,
			Entry:    entry,
			Relation: schedule.RelationWithin,
			At:       now,
		}
		e.pickVariation(d)
		return d, nil
	}

	if len(sched.Entries) == 0 {
		if d := e.legacyDecision(sched, date, now, clock); d != nil {
			return d, nil
		}
		return &Decision{Kind: DecideNone, Reason: "empty schedule", At: now}, nil
	}

	if d := e.supplementDecision(sched, now, clock); d != nil {
		return d, nil
	}
	return &Decision{Kind: DecideNone, Reason: "no gate passed", At: now}, nil
}

// Commit consumes the state a decision reserved. Call it only after the
// post was delivered to at least one destination.
func (e *Engine) Commit(d *Decision) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	switch d.Kind {
	case DecideNone:
		return nil

	case DecideEntry:
		e.consumeVariation(d)
		d.Schedule.MarkEntryCompleted(d.Entry.TimePoint, d.At)
		return e.store.Save(d.Schedule)

	case DecideSupplement:
		e.consumeVariation(d)
		d.Entry.RecordIntervalUse(d.At)
		if err := e.store.Save(d.Schedule); err != nil {
			return err
		}
		// the interval timer belongs to supplements alone; scheduled and
		// fixed-time posts must not push the next supplement back
		return e.state.SetLastSupplementAt(d.At)

	case DecideLegacy:
		return e.state.MarkFired(d.At.Format(dateLayout), d.TimePoint, d.At)
	}
	return fmt.Errorf("unknown decision kind %q", d.Kind)
}

// pickVariation chooses a scene variation for the decision's entry, flagging
// a pool reset when every variation has been consumed. The entry itself is
// untouched until Commit.
func (e *Engine) pickVariation(d *Decision) {
	entry := d.Entry
	if len(entry.SceneVariations) == 0 {
		d.Prompt = entry.ImagePrompt()
		return
	}

	unused := entry.UnusedVariations()
	if len(unused) == 0 {
		d.ResetPool = true
		unused = make([]int, len(entry.SceneVariations))
		for i := range unused {
			unused[i] = i
		}
	}
	v := &entry.SceneVariations[unused[e.rng.Intn(len(unused))]]
	d.VariationID = v.VariationID
	d.Prompt = entry.VariationImagePrompt(v)
}

func (e *Engine) consumeVariation(d *Decision) {
	if d.VariationID == "" {
		return
	}
	if d.ResetPool {
		d.Entry.ResetVariations()
		log.Printf("[SELFIE] variation pool reset for %s", d.Entry.TimePoint)
	}
	if !d.Entry.MarkVariationUsed(d.VariationID, d.At) {
		log.Printf("[WARN] variation %s not found on entry %s", d.VariationID, d.Entry.TimePoint)
	}
}

// supplementDecision applies the off-schedule gates in order: distance from
// every configured trigger time, the minimum interval since the last
// supplement, a probability roll, then the same interval again with a ±20%
// jitter. The supplement reuses the scene of the entry closest to now.
func (e *Engine) supplementDecision(sched *schedule.DailySchedule, now time.Time, clock string) *Decision {
	if !e.cfg.SupplementEnabled {
		return nil
	}

	margin := int(e.cfg.ExclusionMargin.Minutes())
	for _, t := range e.cfg.TriggerTimes {
		if schedule.ClockDistance(clock, t) <= margin {
			return nil
		}
	}

	last, ok := e.state.LastSupplementAt()
	if !ok {
		// first run: backdate the timer by a random slice of the interval
		// so the first supplement lands somewhere inside it instead of on
		// the first eligible tick
		wait := time.Duration(e.rng.Float64() * float64(e.cfg.SupplementInterval))
		if err := e.state.SetLastSupplementAt(now.Add(wait - e.cfg.SupplementInterval)); err != nil {
			log.Printf("[WARN] supplement timer seeding failed: %v", err)
			return nil
		}
		log.Printf("[SELFIE] supplement timer seeded, first check in %.0f min", wait.Minutes())
		return nil
	}

	elapsed := now.Sub(last)
	if elapsed < e.cfg.SupplementInterval {
		return nil
	}

	if e.rng.Float64() >= e.cfg.SupplementChance {
		return nil
	}

	offset := time.Duration((e.rng.Float64()*0.4 - 0.2) * float64(e.cfg.SupplementInterval))
	if elapsed < e.cfg.SupplementInterval+offset {
		return nil
	}

	entry, relation := sched.ClosestEntry(now)
	if entry == nil {
		return nil
	}

	d := &Decision{
		Kind:     DecideSupplement,
		Reason:   "interval supplement",
		Schedule: sched,
		Entry:    entry,
		Relation: relation,
		At:       now,
	}
	e.pickVariation(d)
	return d
}

// legacyDecision matches now against the fixed trigger times within a small
// window. Used only when the day has no schedule entries at all.
func (e *Engine) legacyDecision(sched *schedule.DailySchedule, date string, now time.Time, clock string) *Decision {
	window := int(e.cfg.LegacyWindow.Minutes())
	for _, t := range e.cfg.TriggerTimes {
		if schedule.ClockDistance(clock, t) > window {
			continue
		}
		if e.state.HasFired(date, t) {
			continue
		}
		return &Decision{
			Kind:      DecideLegacy,
			Reason:    "fixed time point",
			Schedule:  sched,
			TimePoint: t,
			At:        now,
			Prompt:    legacyPrompt(now),
		}
	}
	return nil
}

// legacyPrompt is the bare scene used when no schedule exists: a neutral
// indoor self-portrait appropriate for the hour.
func legacyPrompt(now time.Time) string {
	h := now.Hour()
	scene := "cozy room, daylight, casual clothes"
	switch {
	case h < 10:
		scene = "bedroom, morning light, casual clothes"
	case h >= 19:
		scene = "living room, warm evening light, loungewear"
	}
	return "(1girl:1.4), (solo:1.3), " + scene + ", front camera view, looking at camera, selfie POV"
}
