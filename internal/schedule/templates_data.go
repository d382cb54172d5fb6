package schedule

// Hand-authored fallback scenes, one per canonical slot in
// fallbackSceneTimes order. These fire only when every model in the chain
// failed, so they stay deliberately ordinary: a believable day, no events
// that would need explaining in later captions.

var workdayBaseScenes = []ScheduleEntry{
	{ // 07:30
		ActivityType:        ActivityWakingUp,
		ActivityDescription: "Just woke up",
		ActivityDetail:      "Alarm went off, still half asleep and messy-haired",
		Location:            "Bedroom",
		LocationPrompt:      "bedroom, morning light through curtains",
		Pose:                "sitting up in bed",
		BodyAction:          "rubbing eyes",
		HandAction:          "hand in messy hair",
		Expression:          "sleepy, half-open eyes",
		Mood:                "drowsy",
		Outfit:              "pajamas",
		Environment:         "cozy bedroom, soft blanket",
		Lighting:            "soft morning light",
		CaptionType:         CaptionMonologue,
		SuggestedCaptionTheme: "Five more minutes please",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "Still tangled in the blanket", Pose: "lying on side", BodyAction: "hugging blanket", HandAction: "pulling blanket up", Expression: "eyes barely open", Mood: "sleepy", CaptionTheme: "Not ready for today"},
			{VariationID: "v2", Description: "Big morning stretch", Pose: "sitting on edge of bed", BodyAction: "stretching arms overhead", HandAction: "arms raised", Expression: "yawning", Mood: "waking up", CaptionTheme: "Okay, okay, I'm up"},
		},
	},
	{ // 09:00
		ActivityType:        ActivityWorking,
		ActivityDescription: "Starting the workday",
		ActivityDetail:      "At the desk, going through the morning task list",
		Location:            "Office",
		LocationPrompt:      "office desk, monitor, documents",
		Pose:                "sitting at desk",
		BodyAction:          "settling into work",
		HandAction:          "holding a coffee mug",
		Expression:          "composed",
		Mood:                "focused",
		Outfit:              "office blouse",
		Environment:         "bright open office",
		Lighting:            "office lighting",
		CaptionType:         CaptionShare,
		SuggestedCaptionTheme: "Morning mode on",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "First coffee of the day", Pose: "leaning back in chair", BodyAction: "sipping coffee", HandAction: "mug at lips", Expression: "content", Mood: "calm", CaptionTheme: "Fuel acquired"},
			{VariationID: "v2", Description: "Reviewing the to-do list", Pose: "leaning toward desk", BodyAction: "reading notes", HandAction: "pen tapping notepad", Expression: "slightly frowning", Mood: "focused", CaptionTheme: "Busy one today"},
		},
	},
	{ // 10:30
		ActivityType:        ActivityWorking,
		ActivityDescription: "Mid-morning work stretch",
		ActivityDetail:      "Deep into tasks, taking a tiny pause to breathe",
		Location:            "Office",
		LocationPrompt:      "office desk, paperwork, mid-morning",
		Pose:                "sitting, half turned from desk",
		BodyAction:          "taking a short breather",
		HandAction:          "fingers laced behind head",
		Expression:          "small tired smile",
		Mood:                "steady",
		Outfit:              "office blouse",
		Environment:         "office, colleagues in background blur",
		Lighting:            "office lighting",
		CaptionType:         CaptionMonologue,
		SuggestedCaptionTheme: "Halfway to lunch",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "Neck stretch at the desk", Pose: "tilting head to one side", BodyAction: "stretching neck", HandAction: "hand on shoulder", Expression: "relieved", Mood: "loosening up", CaptionTheme: "Desk life"},
			{VariationID: "v2", Description: "Staring at the task pile", Pose: "chin on folded hands", BodyAction: "contemplating the paperwork", HandAction: "hands folded under chin", Expression: "deadpan", Mood: "resigned", CaptionTheme: "It keeps multiplying"},
		},
	},
	{ // 12:00
		ActivityType:        ActivityEating,
		ActivityDescription: "Lunch break",
		ActivityDetail:      "Out with coworkers for a proper lunch",
		Location:            "Restaurant near the office",
		LocationPrompt:      "small restaurant, lunch crowd, table setting",
		Pose:                "sitting at table",
		BodyAction:          "about to eat",
		HandAction:          "holding chopsticks",
		Expression:          "bright smile",
		Mood:                "happy",
		Outfit:              "office blouse",
		Environment:         "cozy restaurant interior",
		Lighting:            "warm interior light",
		CaptionType:         CaptionShare,
		SuggestedCaptionTheme: "Lunch report",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "Food just arrived", Pose: "leaning over the dish", BodyAction: "admiring the food", HandAction: "hands clasped", Expression: "delighted", Mood: "excited", CaptionTheme: "Look at this"},
			{VariationID: "v2", Description: "Mid-meal happiness", Pose: "sitting upright", BodyAction: "chewing happily", HandAction: "chopsticks in hand", Expression: "puffed cheeks", Mood: "content", CaptionTheme: "So good"},
			{VariationID: "v3", Description: "Dessert negotiation", Pose: "head tilted", BodyAction: "eyeing the dessert menu", HandAction: "finger on menu", Expression: "tempted", Mood: "playful", CaptionTheme: "Do I deserve dessert"},
		},
	},
	{ // 14:00
		ActivityType:        ActivityWorking,
		ActivityDescription: "Afternoon meeting",
		ActivityDetail:      "Post-lunch meeting, fighting the food coma",
		Location:            "Meeting room",
		LocationPrompt:      "meeting room, whiteboard, afternoon",
		Pose:                "sitting at conference table",
		BodyAction:          "listening to the discussion",
		HandAction:          "pen resting on notebook",
		Expression:          "attentive but sleepy",
		Mood:                "drowsy",
		Outfit:              "office blouse",
		Environment:         "glass-walled meeting room",
		Lighting:            "bright office lighting",
		CaptionType:         CaptionMonologue,
		SuggestedCaptionTheme: "Meetings after lunch should be illegal",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "Note-taking autopilot", Pose: "leaning on one elbow", BodyAction: "writing slowly", HandAction: "pen moving on paper", Expression: "glazed", Mood: "sleepy", CaptionTheme: "Taking very important notes"},
			{VariationID: "v2", Description: "Nodding along", Pose: "sitting straight", BodyAction: "nodding at the speaker", HandAction: "hands folded on table", Expression: "polite smile", Mood: "patient", CaptionTheme: "Agreeing professionally"},
		},
	},
	{ // 16:00
		ActivityType:        ActivityRelaxing,
		ActivityDescription: "Afternoon coffee break",
		ActivityDetail:      "Sneaking off to the pantry for a pick-me-up",
		Location:            "Office pantry",
		LocationPrompt:      "office pantry, coffee machine, window",
		Pose:                "leaning against counter",
		BodyAction:          "taking a break",
		HandAction:          "holding paper cup",
		Expression:          "relaxed",
		Mood:                "recharging",
		Outfit:              "office blouse",
		Environment:         "small pantry, afternoon sun",
		Lighting:            "warm afternoon light",
		CaptionType:         CaptionAsk,
		SuggestedCaptionTheme: "Coffee or tea person?",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "Watching the coffee drip", Pose: "leaning on counter", BodyAction: "waiting for coffee", HandAction: "chin in palm", Expression: "spacing out", Mood: "idle", CaptionTheme: "The wait is part of it"},
			{VariationID: "v2", Description: "Window gazing with cup", Pose: "standing by window", BodyAction: "looking outside", HandAction: "cup held with both hands", Expression: "wistful", Mood: "calm", CaptionTheme: "Almost evening"},
		},
	},
	{ // 18:00
		ActivityType:        ActivityCommuting,
		ActivityDescription: "Heading home",
		ActivityDetail:      "Finally off work, walking to the station",
		Location:            "City street",
		LocationPrompt:      "city street, dusk, commuters",
		Pose:                "walking",
		BodyAction:          "heading home",
		HandAction:          "holding bag strap",
		Expression:          "relieved smile",
		Mood:                "free",
		Outfit:              "office blouse, light coat",
		Environment:         "evening street, shop lights turning on",
		Lighting:            "dusk, warm street lights",
		CaptionType:         CaptionNarrative,
		SuggestedCaptionTheme: "Clocked out",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "Sunset over the crossing", Pose: "standing at crosswalk", BodyAction: "waiting for the light", HandAction: "hand tucking hair behind ear", Expression: "soft smile", Mood: "peaceful", CaptionTheme: "The sky tonight"},
			{VariationID: "v2", Description: "Detour past the bakery", Pose: "standing by shop window", BodyAction: "peering at the display", HandAction: "pointing at pastry", Expression: "tempted grin", Mood: "playful", CaptionTheme: "It called my name"},
		},
	},
	{ // 20:00
		ActivityType:        ActivityRelaxing,
		ActivityDescription: "Evening wind-down at home",
		ActivityDetail:      "Dinner done, melting into the couch",
		Location:            "Living room",
		LocationPrompt:      "living room, couch, warm lamp",
		Pose:                "curled up on couch",
		BodyAction:          "lounging",
		HandAction:          "hugging a cushion",
		Expression:          "relaxed",
		Mood:                "cozy",
		Outfit:              "loungewear",
		Environment:         "cozy living room, soft blanket",
		Lighting:            "warm lamp light",
		CaptionType:         CaptionShare,
		SuggestedCaptionTheme: "Couch potato hours",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "Show night", Pose: "sitting cross-legged", BodyAction: "watching a show", HandAction: "holding snack bowl", Expression: "absorbed", Mood: "comfy", CaptionTheme: "One more episode"},
			{VariationID: "v2", Description: "Blanket cocoon", Pose: "lying on couch", BodyAction: "wrapped in blanket", HandAction: "only face peeking out", Expression: "lazy smile", Mood: "snug", CaptionTheme: "Not moving until tomorrow"},
		},
	},
	{ // 22:00
		ActivityType:        ActivitySelfCare,
		ActivityDescription: "Night skincare routine",
		ActivityDetail:      "Going through the skincare steps before bed",
		Location:            "Bathroom",
		LocationPrompt:      "bathroom mirror, skincare bottles",
		Pose:                "standing at mirror",
		BodyAction:          "doing skincare",
		HandAction:          "patting cream on cheek",
		Expression:          "calm",
		Mood:                "unwinding",
		Outfit:              "pajamas, hair band",
		Environment:         "tidy bathroom counter",
		Lighting:            "soft vanity light",
		CaptionType:         CaptionMonologue,
		SuggestedCaptionTheme: "Self-maintenance hour",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "Sheet mask on", Pose: "facing mirror", BodyAction: "wearing sheet mask", HandAction: "peace sign", Expression: "eyes smiling through mask", Mood: "silly", CaptionTheme: "Do not be alarmed"},
			{VariationID: "v2", Description: "Brushing before bed", Pose: "leaning toward mirror", BodyAction: "brushing hair", HandAction: "holding hairbrush", Expression: "sleepy contentment", Mood: "calm", CaptionTheme: "Almost bedtime"},
		},
	},
}

var holidayBaseScenes = []ScheduleEntry{
	{ // 07:30: holidays start slow; this slot only fires if a trigger lands here
		ActivityType:        ActivitySleeping,
		ActivityDescription: "Sleeping in",
		ActivityDetail:      "No alarm today, drifting in and out of sleep",
		Location:            "Bedroom",
		LocationPrompt:      "bedroom, closed curtains, dim morning",
		Pose:                "lying in bed",
		BodyAction:          "dozing",
		HandAction:          "arm over eyes",
		Expression:          "peaceful, eyes closed",
		Mood:                "lazy",
		Outfit:              "pajamas",
		Environment:         "dark cozy bedroom",
		Lighting:            "dim light through curtains",
		CaptionType:         CaptionNone,
		SuggestedCaptionTheme: "",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "Half-awake peek", Pose: "face half in pillow", BodyAction: "peeking from pillow", HandAction: "clutching pillow corner", Expression: "one eye open", Mood: "groggy", CaptionTheme: "Is it still morning"},
		},
	},
	{ // 09:00
		ActivityType:        ActivityWakingUp,
		ActivityDescription: "Slow holiday morning",
		ActivityDetail:      "Finally up, shuffling around in pajamas",
		Location:            "Bedroom",
		LocationPrompt:      "bedroom, bright late morning",
		Pose:                "sitting on bed edge",
		BodyAction:          "waking up slowly",
		HandAction:          "stretching one arm",
		Expression:          "lazy smile",
		Mood:                "unhurried",
		Outfit:              "pajamas",
		Environment:         "sunlit bedroom",
		Lighting:            "bright morning light",
		CaptionType:         CaptionMonologue,
		SuggestedCaptionTheme: "No alarms, best feeling",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "Bedhead reveal", Pose: "sitting cross-legged on bed", BodyAction: "showing off messy hair", HandAction: "hand lifting a strand of hair", Expression: "amused", Mood: "playful", CaptionTheme: "The natural look"},
			{VariationID: "v2", Description: "Curtain opening moment", Pose: "standing at window", BodyAction: "pulling curtains open", HandAction: "hand on curtain", Expression: "squinting at the sun", Mood: "fresh", CaptionTheme: "Good morning world"},
		},
	},
	{ // 10:30
		ActivityType:        ActivityEating,
		ActivityDescription: "Late breakfast at home",
		ActivityDetail:      "Making an unhurried brunch, maybe pancakes",
		Location:            "Kitchen",
		LocationPrompt:      "home kitchen, brunch plates, late morning",
		Pose:                "standing at counter",
		BodyAction:          "plating breakfast",
		HandAction:          "holding spatula",
		Expression:          "pleased",
		Mood:                "cheerful",
		Outfit:              "oversized shirt, apron",
		Environment:         "sunny kitchen",
		Lighting:            "natural light",
		CaptionType:         CaptionShare,
		SuggestedCaptionTheme: "Brunch attempt",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "Pancake flip attempt", Pose: "poised at stove", BodyAction: "flipping a pancake", HandAction: "gripping pan handle", Expression: "tongue-out concentration", Mood: "determined", CaptionTheme: "Nailed it (mostly)"},
			{VariationID: "v2", Description: "First bite verdict", Pose: "sitting at kitchen table", BodyAction: "tasting breakfast", HandAction: "fork at lips", Expression: "thumbs-up face", Mood: "satisfied", CaptionTheme: "Chef approves"},
		},
	},
	{ // 12:00
		ActivityType:        ActivityHobby,
		ActivityDescription: "Hobby time",
		ActivityDetail:      "A quiet stretch with a book and music",
		Location:            "Living room",
		LocationPrompt:      "living room reading nook, plants, daylight",
		Pose:                "curled in armchair",
		BodyAction:          "reading",
		HandAction:          "holding open book",
		Expression:          "absorbed",
		Mood:                "serene",
		Outfit:              "comfy knit sweater",
		Environment:         "reading nook with plants",
		Lighting:            "soft daylight",
		CaptionType:         CaptionShare,
		SuggestedCaptionTheme: "Current read",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "Plot twist reaction", Pose: "sitting up suddenly", BodyAction: "gripping the book", HandAction: "hand over mouth", Expression: "wide-eyed", Mood: "shocked", CaptionTheme: "I did not see that coming"},
			{VariationID: "v2", Description: "Dozing off mid-chapter", Pose: "slumped in armchair", BodyAction: "book resting on chest", HandAction: "loose grip on book", Expression: "drifting off", Mood: "drowsy", CaptionTheme: "The book won"},
		},
	},
	{ // 14:00
		ActivityType:        ActivityExercising,
		ActivityDescription: "Light afternoon workout",
		ActivityDetail:      "Home yoga session to shake off the laziness",
		Location:            "Living room",
		LocationPrompt:      "living room, yoga mat, afternoon",
		Pose:                "sitting on yoga mat",
		BodyAction:          "stretching",
		HandAction:          "reaching for toes",
		Expression:          "slightly strained smile",
		Mood:                "energized",
		Outfit:              "workout clothes",
		Environment:         "cleared living room floor",
		Lighting:            "bright afternoon light",
		CaptionType:         CaptionMonologue,
		SuggestedCaptionTheme: "Attempting flexibility",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "Post-stretch collapse", Pose: "lying flat on mat", BodyAction: "sprawled after workout", HandAction: "arms spread", Expression: "exhausted grin", Mood: "accomplished", CaptionTheme: "That counts as exercise"},
			{VariationID: "v2", Description: "Water break", Pose: "sitting cross-legged", BodyAction: "drinking water", HandAction: "holding water bottle", Expression: "flushed", Mood: "refreshed", CaptionTheme: "Hydration check"},
		},
	},
	{ // 16:00
		ActivityType:        ActivityRelaxing,
		ActivityDescription: "Cafe afternoon",
		ActivityDetail:      "Treating myself to a cafe corner and a sweet drink",
		Location:            "Neighborhood cafe",
		LocationPrompt:      "cozy cafe, window seat, afternoon",
		Pose:                "sitting at window seat",
		BodyAction:          "enjoying a drink",
		HandAction:          "stirring drink with straw",
		Expression:          "content",
		Mood:                "relaxed",
		Outfit:              "casual dress, cardigan",
		Environment:         "warm cafe interior",
		Lighting:            "golden afternoon light",
		CaptionType:         CaptionAsk,
		SuggestedCaptionTheme: "What's your cafe order",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "Latte art appreciation", Pose: "leaning over cup", BodyAction: "admiring the latte art", HandAction: "hands cupping the mug", Expression: "delighted", Mood: "charmed", CaptionTheme: "Too pretty to drink"},
			{VariationID: "v2", Description: "Window daydream", Pose: "chin on hand", BodyAction: "watching the street", HandAction: "fingers on cup rim", Expression: "dreamy", Mood: "mellow", CaptionTheme: "Afternoons like this"},
		},
	},
	{ // 18:00
		ActivityType:        ActivitySocializing,
		ActivityDescription: "Dinner with a friend",
		ActivityDetail:      "Meeting a friend for dinner, catching up",
		Location:            "Restaurant",
		LocationPrompt:      "lively restaurant, evening, shared dishes",
		Pose:                "sitting at table",
		BodyAction:          "chatting over dinner",
		HandAction:          "raising a glass",
		Expression:          "laughing",
		Mood:                "joyful",
		Outfit:              "casual dress",
		Environment:         "warm restaurant, evening buzz",
		Lighting:            "warm pendant lights",
		CaptionType:         CaptionNarrative,
		SuggestedCaptionTheme: "Long overdue catch-up",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "Cheers moment", Pose: "glass raised", BodyAction: "toasting", HandAction: "holding glass up", Expression: "big smile", Mood: "festive", CaptionTheme: "To good company"},
			{VariationID: "v2", Description: "Stealing food off the shared plate", Pose: "reaching across table", BodyAction: "grabbing the last bite", HandAction: "chopsticks mid-steal", Expression: "mischievous", Mood: "playful", CaptionTheme: "Fair game"},
		},
	},
	{ // 20:00
		ActivityType:        ActivityRelaxing,
		ActivityDescription: "Evening walk home",
		ActivityDetail:      "Walking off dinner under the city lights",
		Location:            "Riverside promenade",
		LocationPrompt:      "riverside walk, night, city lights reflection",
		Pose:                "leaning on railing",
		BodyAction:          "taking in the night view",
		HandAction:          "hands resting on railing",
		Expression:          "serene",
		Mood:                "peaceful",
		Outfit:              "casual dress, light jacket",
		Environment:         "river at night, city skyline",
		Lighting:            "city lights, night",
		CaptionType:         CaptionNarrative,
		SuggestedCaptionTheme: "Night air fixes everything",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "Wind in hair moment", Pose: "standing, hair blowing", BodyAction: "holding hair back", HandAction: "hand holding hair", Expression: "eyes closed, smiling", Mood: "free", CaptionTheme: "The breeze tonight"},
			{VariationID: "v2", Description: "Skyline backdrop", Pose: "half turned toward water", BodyAction: "posing with the skyline", HandAction: "small wave", Expression: "gentle smile", Mood: "content", CaptionTheme: "City looks good tonight"},
		},
	},
	{ // 22:00
		ActivityType:        ActivitySelfCare,
		ActivityDescription: "Cozy night in",
		ActivityDetail:      "Tea, warm light and winding down for bed",
		Location:            "Bedroom",
		LocationPrompt:      "bedroom, fairy lights, night",
		Pose:                "sitting on bed",
		BodyAction:          "sipping tea",
		HandAction:          "holding warm mug",
		Expression:          "soft sleepy smile",
		Mood:                "cozy",
		Outfit:              "pajamas",
		Environment:         "bedroom with fairy lights",
		Lighting:            "warm string lights",
		CaptionType:         CaptionMonologue,
		SuggestedCaptionTheme: "Good day, good night",
		SceneVariations: []SceneVariation{
			{VariationID: "v1", Description: "Journal before bed", Pose: "cross-legged on bed", BodyAction: "writing in journal", HandAction: "pen on page", Expression: "thoughtful", Mood: "reflective", CaptionTheme: "Logging today"},
			{VariationID: "v2", Description: "Lights-out countdown", Pose: "tucked under blanket", BodyAction: "settling in", HandAction: "reaching for the lamp", Expression: "drowsy", Mood: "sleepy", CaptionTheme: "Goodnight"},
		},
	},
}
