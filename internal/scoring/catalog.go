package scoring

// ValueInsight is the static text attached to one value category: what it
// means in a dating context plus the flag and strategy lists it feeds.
type ValueInsight struct {
	Description string   `json:"description"`
	Meaning     string   `json:"meaning"`
	RedFlags    []string `json:"red_flags"`
	GreenFlags  []string `json:"green_flags"`
	Strategies  []string `json:"strategies"`
}

// ValueCatalog maps value category keys to their insight text.
type ValueCatalog map[string]ValueInsight

// Lookup is total: unknown keys resolve to the generic fallback entry.
func (c ValueCatalog) Lookup(key string) ValueInsight {
	if insight, exists := c[key]; exists {
		return insight
	}
	return fallbackInsight
}

var fallbackInsight = ValueInsight{
	Description: "A personal value that shapes what you look for in a partner.",
	Meaning:     "Pay attention to whether a potential partner respects this in everyday choices, not just in words.",
	RedFlags:    []string{"They dismiss or ridicule what matters to you"},
	GreenFlags:  []string{"They ask follow-up questions about what matters to you"},
	Strategies:  []string{"Bring this value up naturally within the first few dates"},
}

// DefaultValueCatalog returns the built-in catalog used in production.
func DefaultValueCatalog() ValueCatalog {
	return ValueCatalog{
		"honesty": {
			Description: "Truthfulness and transparency, even when it is uncomfortable.",
			Meaning:     "You lose trust quickly when stories shift or details get polished.",
			RedFlags: []string{
				"Small inconsistencies between what they say and what they do",
				"White lies framed as politeness",
			},
			GreenFlags: []string{
				"They volunteer inconvenient truths unprompted",
				"Their friends describe them the same way they describe themselves",
			},
			Strategies: []string{
				"Share something honest and slightly vulnerable early, and watch the response",
			},
		},
		"loyalty": {
			Description: "Commitment and reliability toward the people they choose.",
			Meaning:     "You want a partner who stays consistent when things get hard.",
			RedFlags: []string{
				"They speak poorly of every ex without self-reflection",
				"Plans with you are the first thing dropped under pressure",
			},
			GreenFlags: []string{
				"Long friendships that survived rough patches",
				"They defend absent friends in conversation",
			},
			Strategies: []string{
				"Notice how they treat standing commitments that do not involve you",
			},
		},
		"adventure": {
			Description: "Novelty, spontaneity and shared new experiences.",
			Meaning:     "Routine without variation drains the relationship for you.",
			RedFlags: []string{
				"Every suggestion outside their comfort zone gets deflected",
			},
			GreenFlags: []string{
				"They propose plans you would not have thought of",
				"They say yes to your ideas before knowing every detail",
			},
			Strategies: []string{
				"Make one early date something neither of you has done before",
			},
		},
		"ambition": {
			Description: "Drive, direction and investment in personal goals.",
			Meaning:     "You respect partners who are building something, whatever its size.",
			RedFlags: []string{
				"Talking about goals without any step taken toward them",
			},
			GreenFlags: []string{
				"Concrete progress they can describe without embellishment",
				"Curiosity about your goals, not competition with them",
			},
			Strategies: []string{
				"Ask what they are working toward and listen for specifics",
			},
		},
		"family": {
			Description: "Closeness with family and intent to build one.",
			Meaning:     "Long-term compatibility hinges on aligned family expectations.",
			RedFlags: []string{
				"They avoid every question about the longer term",
			},
			GreenFlags: []string{
				"They speak warmly and realistically about their family",
				"Their timeline questions mirror yours",
			},
			Strategies: []string{
				"Raise family expectations before exclusivity, not after",
			},
		},
		"humor": {
			Description: "Play, lightness and laughing at the same things.",
			Meaning:     "Shared humor is how you build intimacy and defuse conflict.",
			RedFlags: []string{
				"Their jokes mostly land at someone else's expense",
			},
			GreenFlags: []string{
				"They laugh at themselves easily",
				"Banter flows without anyone keeping score",
			},
			Strategies: []string{
				"Trust early laughter more than early chemistry",
			},
		},
		"independence": {
			Description: "Room for separate lives inside the relationship.",
			Meaning:     "You need a partner who has their own world and respects yours.",
			RedFlags: []string{
				"Discomfort whenever you have plans that exclude them",
			},
			GreenFlags: []string{
				"Hobbies and friendships they maintain without prompting",
			},
			Strategies: []string{
				"Keep your own rhythms in the first months and watch their reaction",
			},
		},
		"growth": {
			Description: "Self-awareness and willingness to change.",
			Meaning:     "You are drawn to people who work on themselves without being told.",
			RedFlags: []string{
				"Every past conflict is entirely someone else's fault",
			},
			GreenFlags: []string{
				"They can name something they handled badly and what changed",
			},
			Strategies: []string{
				"Ask what they learned from their last relationship",
			},
		},
		"stability": {
			Description: "Predictability, security and a calm baseline.",
			Meaning:     "Emotional rollercoasters read as incompatibility to you, not passion.",
			RedFlags: []string{
				"Intensity that swings between extremes week to week",
			},
			GreenFlags: []string{
				"Consistent communication without games",
				"A life with structure they chose, not stumbled into",
			},
			Strategies: []string{
				"Favor steady warmth over dramatic sparks when they conflict",
			},
		},
		"empathy": {
			Description: "Sensitivity to feelings, yours and other people's.",
			Meaning:     "You need to feel understood, not just accommodated.",
			RedFlags: []string{
				"Rudeness to service staff or strangers",
			},
			GreenFlags: []string{
				"They notice mood shifts before you name them",
			},
			Strategies: []string{
				"Watch how they respond the first time you are visibly off balance",
			},
		},
	}
}
