package models

import "time"

type Classification struct {
	Name       string `bson:"name" json:"name"`
	Value      string `bson:"value" json:"value"`
	Confidence int    `bson:"confidence" json:"confidence"`
}

type PersonalizationFlags struct {
	NeedsExtraSupport     bool   `bson:"needs_extra_support" json:"needs_extra_support"`
	NeedsReassurance      bool   `bson:"needs_reassurance" json:"needs_reassurance"`
	PrefersLowStimulation bool   `bson:"prefers_low_stimulation" json:"prefers_low_stimulation"`
	Pacing                string `bson:"pacing" json:"pacing"`
}

type CoreValue struct {
	Key         string `bson:"key" json:"key"`
	Label       string `bson:"label" json:"label"`
	Importance  int    `bson:"importance" json:"importance"`
	Description string `bson:"description" json:"description"`
	Meaning     string `bson:"meaning" json:"meaning"`
}

type AssessmentResult struct {
	ID              string               `bson:"_id,omitempty" json:"id"`
	AssessmentID    string               `bson:"assessment_id" json:"assessment_id"`
	UserID          string               `bson:"user_id" json:"user_id"`
	SubScores       map[string]int       `bson:"sub_scores" json:"sub_scores"`
	Classifications []Classification     `bson:"classifications" json:"classifications"`
	Recommendations []string             `bson:"recommendations" json:"recommendations"`
	CoreValues      []CoreValue          `bson:"core_values,omitempty" json:"core_values,omitempty"`
	RedFlags        []string             `bson:"red_flags,omitempty" json:"red_flags,omitempty"`
	GreenFlags      []string             `bson:"green_flags,omitempty" json:"green_flags,omitempty"`
	Strategies      []string             `bson:"strategies,omitempty" json:"strategies,omitempty"`
	Flags           PersonalizationFlags `bson:"flags" json:"flags"`
	ComputedAt      time.Time            `bson:"computed_at" json:"computed_at"`
	Final           bool                 `bson:"final" json:"final"`
}

// Classification returns the value of the named classification, or "" when absent.
func (r *AssessmentResult) Classification(name string) string {
	for _, c := range r.Classifications {
		if c.Name == name {
			return c.Value
		}
	}
	return ""
}
