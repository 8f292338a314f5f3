package scoring

import "math"

// Engine computes assessment results. It is pure: no I/O, no hidden state,
// identical inputs always produce identical outputs.
type Engine struct {
	config *Config
}

// NewEngine creates a scoring engine
func NewEngine(config *Config) *Engine {
	if config == nil {
		config = DefaultConfig()
	}
	return &Engine{config: config}
}

// ComputeIntrovertScore sums the weighted energy-section contributions and
// clamps the total to [0, 100]. Skipped questions (zero values) contribute
// nothing; answered out-of-range values pass through the linear formula and
// rely on the final clamp.
func (e *Engine) ComputeIntrovertScore(in EnergyInputs) int {
	score := 0

	if in.EnergyAfterSocial > 0 {
		score += (6 - in.EnergyAfterSocial) * 15
	}
	if in.CallPreparation > 0 {
		score += in.CallPreparation * 5
	}
	switch in.PostDateNeed {
	case PostDateAloneTime:
		score += 15
	case PostDateDepends:
		score += 8
	}
	if in.SocialBatteryCapacity > 0 {
		score += (11 - in.SocialBatteryCapacity) * 2
	}

	return clampScore(score)
}

// DetermineEnergyProfile buckets an introvert score. Both boundaries are
// closed: exactly 65 is introvert, exactly 35 is extrovert.
func (e *Engine) DetermineEnergyProfile(score int) EnergyProfile {
	if score >= e.config.IntrovertThreshold {
		return ProfileIntrovert
	}
	if score <= e.config.ExtrovertThreshold {
		return ProfileExtrovert
	}
	return ProfileAmbivert
}

// energyConfidence scales the distance from the bucket boundary into a
// 50-100 confidence. Scores deep inside a bucket read as more certain.
func (e *Engine) energyConfidence(score int, profile EnergyProfile) int {
	hi := float64(e.config.IntrovertThreshold)
	lo := float64(e.config.ExtrovertThreshold)
	s := float64(score)

	var ratio float64
	switch profile {
	case ProfileIntrovert:
		ratio = (s - hi) / (100 - hi)
	case ProfileExtrovert:
		ratio = (lo - s) / lo
	default:
		mid := (hi + lo) / 2
		half := (hi - lo) / 2
		ratio = 1 - math.Abs(s-mid)/half
	}

	return clampScore(50 + int(math.Round(ratio*50)))
}

// ClassifyAttachmentStyle maps the seven attachment items onto anxiety and
// avoidance axes (reverse-scoring trust, intimacy comfort and closeness
// desire) and buckets the two axis means into one of four styles. The
// function is total: with no answered items both axes sit at the scale
// midpoint and the style is secure.
func (e *Engine) ClassifyAttachmentStyle(in AttachmentInputs) (AttachmentStyle, int) {
	anxiety := axisMean([]int{
		in.AbandonmentFear,
		in.ValidationSeeking,
		reverseScore(in.Trust),
	})
	avoidance := axisMean([]int{
		in.WithdrawalTendency,
		in.IndependenceNeed,
		reverseScore(in.IntimacyComfort),
		reverseScore(in.ClosenessDesire),
	})

	threshold := e.config.AxisThreshold
	anxious := anxiety >= threshold
	avoidant := avoidance >= threshold

	var style AttachmentStyle
	switch {
	case anxious && avoidant:
		style = StyleFearful
	case anxious:
		style = StyleAnxious
	case avoidant:
		style = StyleAvoidant
	default:
		style = StyleSecure
	}

	// Each axis can sit at most 2.5 points from the threshold, so the
	// summed distance normalizes against 5.
	distance := math.Abs(anxiety-threshold) + math.Abs(avoidance-threshold)
	confidence := clampScore(int(math.Round(distance / 5.0 * 100)))

	return style, confidence
}

// DerivePersonalizationFlags maps the classifications onto the pacing enum
// and support booleans the presentation layer reads.
func (e *Engine) DerivePersonalizationFlags(profile EnergyProfile, style AttachmentStyle) PersonalizationFlags {
	flags := PersonalizationFlags{
		NeedsExtraSupport:     style == StyleAnxious || style == StyleFearful,
		NeedsReassurance:      style == StyleAnxious,
		PrefersLowStimulation: profile == ProfileIntrovert,
		Pacing:                PacingNormal,
	}

	switch profile {
	case ProfileIntrovert:
		flags.Pacing = PacingSlow
	case ProfileExtrovert:
		flags.Pacing = PacingFast
	}
	if style == StyleFearful {
		flags.Pacing = PacingSlow
	}

	return flags
}

// Score runs the full pipeline over one assessment's inputs.
func (e *Engine) Score(in AssessmentInputs) *Result {
	introvertScore := e.ComputeIntrovertScore(in.Energy)
	profile := e.DetermineEnergyProfile(introvertScore)
	style, styleConfidence := e.ClassifyAttachmentStyle(in.Attachment)
	flags := e.DerivePersonalizationFlags(profile, style)

	result := &Result{
		SubScores: map[string]int{
			"introvert": introvertScore,
		},
		Classifications: []Classification{
			{Name: "energy_profile", Value: string(profile), Confidence: e.energyConfidence(introvertScore, profile)},
			{Name: "attachment_style", Value: string(style), Confidence: styleConfidence},
		},
		Recommendations: e.recommendations(profile, style),
		Flags:           flags,
	}

	if len(in.Values) > 0 {
		result.Synthesis = e.GenerateRuleBasedSynthesis(in.Values, nil)
	}

	return result
}

func (e *Engine) recommendations(profile EnergyProfile, style AttachmentStyle) []string {
	recs := []string{}

	switch profile {
	case ProfileIntrovert:
		recs = append(recs,
			"Plan quieter first dates with built-in recovery time afterwards",
			"Favor one-on-one settings over group activities early on")
	case ProfileExtrovert:
		recs = append(recs,
			"Use activity-based dates where your social energy works for you",
			"Watch for partners who need more downtime than you do")
	default:
		recs = append(recs,
			"Alternate between social and low-key dates to match your range")
	}

	switch style {
	case StyleAnxious:
		recs = append(recs, "Agree on check-in rhythms early instead of reading silences")
	case StyleAvoidant:
		recs = append(recs, "Name your need for space before it reads as withdrawal")
	case StyleFearful:
		recs = append(recs, "Take pacing slow and revisit comfort levels out loud")
	}

	return recs
}

func axisMean(items []int) float64 {
	sum, n := 0, 0
	for _, v := range items {
		if v > 0 {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 3.0 // scale midpoint when nothing answered
	}
	return float64(sum) / float64(n)
}

// reverseScore flips a 1-5 Likert value; zero (unanswered) stays zero so it
// keeps dropping out of the axis mean.
func reverseScore(v int) int {
	if v <= 0 {
		return 0
	}
	if v > 5 {
		v = 5
	}
	return 6 - v
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
