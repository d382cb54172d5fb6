package schedule

import (
	"hash/fnv"
	"log"
	"strings"
)

// Canonical default times of the hand-authored fallback scenes. The Nth
// scene in every template set corresponds to the Nth slot here.
var fallbackSceneTimes = []string{
	"07:30", "09:00", "10:30", "12:00",
	"14:00", "16:00", "18:00", "20:00", "22:00",
}

// PersonaMode is the coarse identity bucket derived from the persona text.
// It picks which flavor of fallback templates to use and adds identity
// constraints to the generation prompt.
type PersonaMode string

const (
	PersonaStudent PersonaMode = "student"
	PersonaWorker  PersonaMode = "worker"
	PersonaGeneric PersonaMode = "generic"
)

var studentKeywords = []string{
	"student", "college", "university", "campus", "freshman",
	"sophomore", "junior year", "senior year", "grad school", "high school",
}

var workerKeywords = []string{
	"office", "company", "work", "corporate", "employee",
	"clerk", "programmer", "designer", "coworker", "9-to-5",
}

// DetectPersonaMode buckets a free-text persona description. Student
// keywords win over worker keywords, matching the prompt constraints.
func DetectPersonaMode(personaText string) PersonaMode {
	l := strings.ToLower(personaText)
	student := containsAny(l, studentKeywords)
	worker := containsAny(l, workerKeywords)
	switch {
	case student && !worker:
		return PersonaStudent
	case worker:
		return PersonaWorker
	default:
		return PersonaGeneric
	}
}

func containsAny(s string, keys []string) bool {
	for _, k := range keys {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// SelectFallbackScenes returns the template scene set for a day. The choice
// between the base set and the persona-flavored variant is deterministic in
// (date, persona mode, holiday flag), so regenerating the same day never
// jumps between sets. Every returned scene is sanitized against the banned
// vocabulary.
func SelectFallbackScenes(date string, mode PersonaMode, isHoliday bool) []ScheduleEntry {
	var base, variant []ScheduleEntry
	if isHoliday {
		base = cloneScenes(holidayBaseScenes)
		variant = holidayVariantScenes(mode)
	} else {
		base = cloneScenes(workdayBaseScenes)
		variant = workdayVariantScenes(mode)
	}

	candidates := [][]ScheduleEntry{base, variant}
	dayKind := "workday"
	if isHoliday {
		dayKind = "holiday"
	}
	key := date + "|" + string(mode) + "|" + dayKind
	h := fnv.New32a()
	h.Write([]byte(key))
	selected := int(h.Sum32()) % len(candidates)
	if selected < 0 {
		selected += len(candidates)
	}
	log.Printf("[SCHEDULE] fallback template set: kind=%s persona=%s set=%d/%d", dayKind, mode, selected+1, len(candidates))

	scenes := candidates[selected]
	for i := range scenes {
		sanitizeEntry(&scenes[i])
	}
	return scenes
}

// ClosestFallbackScene returns a copy of the scene whose canonical default
// time is nearest to triggerTime by absolute minute distance, instantiated
// at triggerTime with a ±5 minute window.
func ClosestFallbackScene(scenes []ScheduleEntry, triggerTime string) ScheduleEntry {
	targetMins := clockToMinutes(triggerTime)
	best := 0
	minDiff := minutesPerDay
	for i := range scenes {
		if i >= len(fallbackSceneTimes) {
			break
		}
		diff := clockToMinutes(fallbackSceneTimes[i]) - targetMins
		if diff < 0 {
			diff = -diff
		}
		if diff < minDiff {
			minDiff = diff
			best = i
		}
	}

	entry := cloneScene(scenes[best])
	entry.TimePoint = triggerTime
	entry.TimeRangeStart = AdjustClock(triggerTime, -5)
	entry.TimeRangeEnd = AdjustClock(triggerTime, 5)
	return entry
}

func cloneScenes(scenes []ScheduleEntry) []ScheduleEntry {
	out := make([]ScheduleEntry, len(scenes))
	for i := range scenes {
		out[i] = cloneScene(scenes[i])
	}
	return out
}

func cloneScene(s ScheduleEntry) ScheduleEntry {
	c := s
	c.SceneVariations = make([]SceneVariation, len(s.SceneVariations))
	copy(c.SceneVariations, s.SceneVariations)
	return c
}

// workdayVariantScenes derives the second workday template set from the base
// one: the student flavor swaps the office slots for campus life, the worker
// flavor shuffles a few slots toward common office rituals so consecutive
// fallback days read differently.
func workdayVariantScenes(mode PersonaMode) []ScheduleEntry {
	variant := cloneScenes(workdayBaseScenes)

	if mode == PersonaStudent {
		variant[1] = studentScene(ActivityStudying, "Morning lecture",
			"First class of the day, trying to keep up with notes",
			"Lecture hall", "lecture hall, rows of desks, morning",
			"sitting at desk", "taking notes", "holding pen", "focused", "focused",
			CaptionMonologue, "Morning class grind",
			[]SceneVariation{
				{VariationID: "v1", Description: "Scribbling notes", Pose: "leaning over notebook", BodyAction: "writing quickly", HandAction: "gripping pen", Expression: "concentrated", Mood: "focused", CaptionTheme: "So much to write down"},
				{VariationID: "v2", Description: "Listening to the lecturer", Pose: "chin resting on hand", BodyAction: "listening attentively", HandAction: "resting head on hand", Expression: "thoughtful", Mood: "calm", CaptionTheme: "Interesting topic today"},
			})
		variant[3] = studentScene(ActivityEating, "Cafeteria lunch",
			"Class is out, grabbing lunch at the cafeteria",
			"School cafeteria", "school cafeteria, lunch time, bright",
			"sitting at table", "having lunch", "holding chopsticks", "happy", "happy",
			CaptionShare, "What's on the cafeteria menu",
			[]SceneVariation{
				{VariationID: "v1", Description: "Digging in", Pose: "sitting at table", BodyAction: "eating happily", HandAction: "picking up food", Expression: "content smile", Mood: "happy", CaptionTheme: "Lunch win"},
				{VariationID: "v2", Description: "Chatting between bites", Pose: "leaning forward slightly", BodyAction: "pausing mid-meal", HandAction: "resting chopsticks on tray", Expression: "laughing", Mood: "cheerful", CaptionTheme: "Cafeteria gossip"},
			})
		variant[4] = studentScene(ActivityStudying, "Library study session",
			"Afternoon at the library, homework and revision",
			"Library", "library, study desk, quiet atmosphere",
			"sitting at desk", "studying, reading", "holding pen", "focused", "focused",
			CaptionMonologue, "Study session, wish me luck",
			[]SceneVariation{
				{VariationID: "v1", Description: "Deep in a textbook", Pose: "hunched over book", BodyAction: "reading closely", HandAction: "turning page", Expression: "absorbed", Mood: "focused", CaptionTheme: "Almost through this chapter"},
				{VariationID: "v2", Description: "Stretching between chapters", Pose: "leaning back in chair", BodyAction: "stretching arms", HandAction: "arms raised", Expression: "tired smile", Mood: "tired", CaptionTheme: "Brain needs a break"},
			})
		variant[5] = studentScene(ActivityRelaxing, "Campus cafe break",
			"Studied too long, grabbing a drink to recharge",
			"Campus cafe corner", "campus cafe corner, afternoon, cozy",
			"sitting, relaxed", "taking a short break", "holding drink", "relieved", "relaxed",
			CaptionShare, "Recharging",
			[]SceneVariation{
				{VariationID: "v1", Description: "First sip", Pose: "cup raised to lips", BodyAction: "sipping drink", HandAction: "holding cup with both hands", Expression: "satisfied", Mood: "content", CaptionTheme: "Needed this"},
				{VariationID: "v2", Description: "People-watching", Pose: "leaning on table", BodyAction: "gazing out the window", HandAction: "fingers around cup", Expression: "daydreaming", Mood: "calm", CaptionTheme: "Campus afternoons"},
			})
		variant[6] = studentScene(ActivityCommuting, "Walking back to the dorm",
			"Classes done, strolling back across campus",
			"Campus path", "campus path, sunset, walking",
			"walking, relaxed", "walking back", "carrying bag", "tired but content", "relaxed",
			CaptionNarrative, "Heading back to rest",
			[]SceneVariation{
				{VariationID: "v1", Description: "Golden hour stroll", Pose: "mid-stride", BodyAction: "walking slowly", HandAction: "holding bag strap", Expression: "soft smile", Mood: "peaceful", CaptionTheme: "Sunset on campus"},
				{VariationID: "v2", Description: "Pausing under the trees", Pose: "standing, looking up", BodyAction: "pausing on the path", HandAction: "hand shielding eyes", Expression: "squinting at the light", Mood: "calm", CaptionTheme: "Pretty light today"},
			})
		variant[7] = studentScene(ActivityRelaxing, "Dorm downtime",
			"Back in the dorm, flopping down for a while",
			"Dorm room", "dorm room, cozy, evening",
			"lounging on bed", "relaxing", "head propped on hand", "relieved", "relaxed",
			CaptionMonologue, "Finally off my feet",
			[]SceneVariation{
				{VariationID: "v1", Description: "Starfish on the bed", Pose: "lying on back", BodyAction: "sprawled out", HandAction: "arms spread", Expression: "eyes closed, smiling", Mood: "relaxed", CaptionTheme: "Horizontal at last"},
				{VariationID: "v2", Description: "Wrapped in a blanket", Pose: "curled up", BodyAction: "snuggling into blanket", HandAction: "hugging pillow", Expression: "cozy smile", Mood: "cozy", CaptionTheme: "Blanket burrito"},
			})
		return variant
	}

	// Worker / generic flavor: nudge a few slots toward different office
	// rituals without rebuilding the whole day.
	variant[3].ActivityDetail = "Stepping out for something light at lunch, getting some air"
	variant[3].SuggestedCaptionTheme = "Small lunch joys"
	variant[5].ActivityDescription = "Afternoon tea slack-off"
	variant[5].ActivityDetail = "Work got heavy, stealing a tea break"
	variant[5].CaptionType = CaptionShare
	variant[5].SuggestedCaptionTheme = "Tea break revival"
	variant[7].ActivityDescription = "Cooking dinner at home"
	variant[7].ActivityDetail = "Off work, throwing together something simple"
	variant[7].Location = "Home kitchen"
	variant[7].LocationPrompt = "home kitchen, evening, warm light"
	variant[7].HandAction = "holding cooking utensil"
	variant[7].CaptionType = CaptionShare
	variant[7].SuggestedCaptionTheme = "What's for dinner tonight"
	return variant
}

// holidayVariantScenes derives the second holiday set: an outdoor-leaning
// day versus the homebody base.
func holidayVariantScenes(mode PersonaMode) []ScheduleEntry {
	variant := cloneScenes(holidayBaseScenes)

	variant[2].ActivityDescription = "Morning market stroll"
	variant[2].ActivityDetail = "Wandering the weekend market for snacks and flowers"
	variant[2].ActivityType = ActivitySocializing
	variant[2].Location = "Weekend market"
	variant[2].LocationPrompt = "open-air market, stalls, morning crowd"
	variant[2].Pose = "standing at a stall"
	variant[2].BodyAction = "browsing the stalls"
	variant[2].HandAction = "holding a small paper bag"
	variant[2].SuggestedCaptionTheme = "Market finds"

	variant[4].ActivityDescription = "Park picnic"
	variant[4].ActivityDetail = "Taking the afternoon slow on a picnic blanket"
	variant[4].ActivityType = ActivityRelaxing
	variant[4].Location = "City park"
	variant[4].LocationPrompt = "city park, picnic blanket, afternoon sun"
	variant[4].Pose = "sitting on blanket"
	variant[4].BodyAction = "enjoying the sun"
	variant[4].HandAction = "holding a sandwich"
	variant[4].SuggestedCaptionTheme = "Picnic weather"

	if mode == PersonaStudent {
		variant[6].ActivityDescription = "Browsing a bookstore"
		variant[6].ActivityDetail = "Drifting through shelves, hunting for something new to read"
		variant[6].ActivityType = ActivityHobby
		variant[6].Location = "Bookstore"
		variant[6].LocationPrompt = "bookstore aisles, warm shelves, soft light"
		variant[6].Pose = "standing by a shelf"
		variant[6].BodyAction = "flipping through a book"
		variant[6].HandAction = "holding an open book"
		variant[6].SuggestedCaptionTheme = "Found a good one"
	}
	return variant
}

func studentScene(at ActivityType, desc, detail, location, locationPrompt, pose, body, hand, expr, mood, captionType, theme string, vars []SceneVariation) ScheduleEntry {
	return ScheduleEntry{
		ActivityType:          at,
		ActivityDescription:   desc,
		ActivityDetail:        detail,
		Location:              location,
		LocationPrompt:        locationPrompt,
		Pose:                  pose,
		BodyAction:            body,
		HandAction:            hand,
		Expression:            expr,
		Mood:                  mood,
		Outfit:                "casual student outfit",
		Environment:           locationPrompt,
		Lighting:              "natural light",
		CaptionType:           captionType,
		SuggestedCaptionTheme: theme,
		SceneVariations:       vars,
	}
}
