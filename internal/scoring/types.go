package scoring

type EnergyProfile string

const (
	ProfileIntrovert EnergyProfile = "introvert"
	ProfileAmbivert  EnergyProfile = "ambivert"
	ProfileExtrovert EnergyProfile = "extrovert"
)

type AttachmentStyle string

const (
	StyleSecure   AttachmentStyle = "secure"
	StyleAnxious  AttachmentStyle = "anxious"
	StyleAvoidant AttachmentStyle = "avoidant"
	StyleFearful  AttachmentStyle = "fearful"
)

type Pacing string

const (
	PacingSlow   Pacing = "slow"
	PacingNormal Pacing = "normal"
	PacingFast   Pacing = "fast"
)

// Post-date recovery preferences (categorical answer values).
const (
	PostDateAloneTime = "alone_time"
	PostDateDepends   = "depends"
	PostDateGroup     = "group"
)

// EnergyInputs carries the four energy-section answers. A zero numeric value
// means the question was skipped and contributes nothing to the score.
type EnergyInputs struct {
	EnergyAfterSocial     int    `json:"energy_after_social"`     // 1-5
	CallPreparation       int    `json:"call_preparation"`        // 1-5
	PostDateNeed          string `json:"post_date_need"`          // alone_time / depends / group
	SocialBatteryCapacity int    `json:"social_battery_capacity"` // 1-10
}

// AttachmentInputs carries the seven attachment-section answers, all on a
// 1-5 Likert scale. Zero means unanswered.
type AttachmentInputs struct {
	AbandonmentFear    int `json:"abandonment_fear"`
	Trust              int `json:"trust"`
	IntimacyComfort    int `json:"intimacy_comfort"`
	ValidationSeeking  int `json:"validation_seeking"`
	WithdrawalTendency int `json:"withdrawal_tendency"`
	IndependenceNeed   int `json:"independence_need"`
	ClosenessDesire    int `json:"closeness_desire"`
}

// RankedResponse is one categorized answer tagged with an importance rating,
// input to the rule-based values synthesis.
type RankedResponse struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	Importance int    `json:"importance"`
}

// AssessmentInputs is the complete, already-validated input record for one
// scoring run. Fields the form left unanswered arrive zero-valued.
type AssessmentInputs struct {
	Energy     EnergyInputs     `json:"energy"`
	Attachment AttachmentInputs `json:"attachment"`
	Values     []RankedResponse `json:"values"`
}

type Classification struct {
	Name       string `json:"name"`
	Value      string `json:"value"`
	Confidence int    `json:"confidence"`
}

type PersonalizationFlags struct {
	NeedsExtraSupport     bool   `json:"needs_extra_support"`
	NeedsReassurance      bool   `json:"needs_reassurance"`
	PrefersLowStimulation bool   `json:"prefers_low_stimulation"`
	Pacing                Pacing `json:"pacing"`
}

type CoreValue struct {
	Key         string `json:"key"`
	Label       string `json:"label"`
	Importance  int    `json:"importance"`
	Description string `json:"description"`
	Meaning     string `json:"meaning"`
}

// Synthesis is the output of the rule-based fallback path: core values with
// their catalog text plus the aggregated flag/strategy lists.
type Synthesis struct {
	CoreValues []CoreValue `json:"core_values"`
	RedFlags   []string    `json:"red_flags"`
	GreenFlags []string    `json:"green_flags"`
	Strategies []string    `json:"strategies"`
}

// Result is the full scoring output for one assessment.
type Result struct {
	SubScores       map[string]int       `json:"sub_scores"`
	Classifications []Classification     `json:"classifications"`
	Recommendations []string             `json:"recommendations"`
	Synthesis       *Synthesis           `json:"synthesis,omitempty"`
	Flags           PersonalizationFlags `json:"flags"`
}

// Config holds the scoring thresholds and caps.
type Config struct {
	IntrovertThreshold int     `json:"introvert_threshold"` // score >= threshold -> introvert
	ExtrovertThreshold int     `json:"extrovert_threshold"` // score <= threshold -> extrovert
	AxisThreshold      float64 `json:"axis_threshold"`      // attachment axis mean >= threshold -> elevated
	CoreValueLimit     int     `json:"core_value_limit"`
	ListLimit          int     `json:"list_limit"`
}

// DefaultConfig returns the production thresholds.
func DefaultConfig() *Config {
	return &Config{
		IntrovertThreshold: 65,
		ExtrovertThreshold: 35,
		AxisThreshold:      3.5,
		CoreValueLimit:     7,
		ListLimit:          5,
	}
}
