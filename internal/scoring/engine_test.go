package scoring

import (
	"reflect"
	"testing"
)

func TestComputeIntrovertScore(t *testing.T) {
	engine := NewEngine(nil)

	testCases := []struct {
		name     string
		inputs   EnergyInputs
		expected int
	}{
		{
			// (6-1)*15 + 5*5 + 15 + (11-1)*2 = 135, clamped
			name: "strong introvert clamps to 100",
			inputs: EnergyInputs{
				EnergyAfterSocial:     1,
				CallPreparation:       5,
				PostDateNeed:          PostDateAloneTime,
				SocialBatteryCapacity: 1,
			},
			expected: 100,
		},
		{
			// (6-5)*15 + 1*5 + 0 + (11-10)*2 = 22
			name: "strong extrovert",
			inputs: EnergyInputs{
				EnergyAfterSocial:     5,
				CallPreparation:       1,
				PostDateNeed:          PostDateGroup,
				SocialBatteryCapacity: 10,
			},
			expected: 22,
		},
		{
			name:     "all questions skipped",
			inputs:   EnergyInputs{},
			expected: 0,
		},
		{
			// only post-date answer present
			name:     "depends alone",
			inputs:   EnergyInputs{PostDateNeed: PostDateDepends},
			expected: 8,
		},
		{
			// (6-3)*15 + 3*5 + 8 + (11-5)*2 = 80
			name: "middle of the road",
			inputs: EnergyInputs{
				EnergyAfterSocial:     3,
				CallPreparation:       3,
				PostDateNeed:          PostDateDepends,
				SocialBatteryCapacity: 5,
			},
			expected: 80,
		},
		{
			// out-of-range values pass through the formula; clamp is aggregate-only
			name: "out of range passthrough",
			inputs: EnergyInputs{
				EnergyAfterSocial: 7, // contributes (6-7)*15 = -15
				CallPreparation:   2, // contributes 10
			},
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.ComputeIntrovertScore(tc.inputs)
			if got != tc.expected {
				t.Errorf("ComputeIntrovertScore(%+v) = %d, want %d", tc.inputs, got, tc.expected)
			}
		})
	}
}

func TestComputeIntrovertScoreRange(t *testing.T) {
	engine := NewEngine(nil)
	postDates := []string{PostDateAloneTime, PostDateDepends, PostDateGroup, ""}

	for energy := 1; energy <= 5; energy++ {
		for prep := 1; prep <= 5; prep++ {
			for battery := 1; battery <= 10; battery++ {
				for _, pd := range postDates {
					score := engine.ComputeIntrovertScore(EnergyInputs{
						EnergyAfterSocial:     energy,
						CallPreparation:       prep,
						PostDateNeed:          pd,
						SocialBatteryCapacity: battery,
					})
					if score < 0 || score > 100 {
						t.Fatalf("score %d out of range for energy=%d prep=%d battery=%d pd=%q",
							score, energy, prep, battery, pd)
					}
				}
			}
		}
	}
}

func TestDetermineEnergyProfile(t *testing.T) {
	engine := NewEngine(nil)

	testCases := []struct {
		score    int
		expected EnergyProfile
	}{
		{0, ProfileExtrovert},
		{22, ProfileExtrovert},
		{35, ProfileExtrovert}, // closed boundary
		{36, ProfileAmbivert},
		{50, ProfileAmbivert},
		{64, ProfileAmbivert},
		{65, ProfileIntrovert}, // closed boundary
		{100, ProfileIntrovert},
	}

	for _, tc := range testCases {
		if got := engine.DetermineEnergyProfile(tc.score); got != tc.expected {
			t.Errorf("DetermineEnergyProfile(%d) = %s, want %s", tc.score, got, tc.expected)
		}
	}
}

func TestEnergyProfileBucketsOrdered(t *testing.T) {
	engine := NewEngine(nil)
	order := map[EnergyProfile]int{
		ProfileExtrovert: 0,
		ProfileAmbivert:  1,
		ProfileIntrovert: 2,
	}

	previous := -1
	for score := 0; score <= 100; score++ {
		rank := order[engine.DetermineEnergyProfile(score)]
		if rank < previous {
			t.Fatalf("profile rank regressed at score %d", score)
		}
		previous = rank
	}
}

func TestClassifyAttachmentStyle(t *testing.T) {
	engine := NewEngine(nil)

	testCases := []struct {
		name          string
		inputs        AttachmentInputs
		expectedStyle AttachmentStyle
		expectedConf  int
	}{
		{
			name: "secure",
			inputs: AttachmentInputs{
				AbandonmentFear: 1, Trust: 5, IntimacyComfort: 5,
				ValidationSeeking: 1, WithdrawalTendency: 1,
				IndependenceNeed: 1, ClosenessDesire: 5,
			},
			expectedStyle: StyleSecure,
			expectedConf:  100,
		},
		{
			name: "anxious",
			inputs: AttachmentInputs{
				AbandonmentFear: 5, Trust: 1, IntimacyComfort: 5,
				ValidationSeeking: 5, WithdrawalTendency: 1,
				IndependenceNeed: 1, ClosenessDesire: 5,
			},
			expectedStyle: StyleAnxious,
			expectedConf:  80,
		},
		{
			name: "avoidant",
			inputs: AttachmentInputs{
				AbandonmentFear: 1, Trust: 5, IntimacyComfort: 1,
				ValidationSeeking: 1, WithdrawalTendency: 5,
				IndependenceNeed: 5, ClosenessDesire: 1,
			},
			expectedStyle: StyleAvoidant,
			expectedConf:  80,
		},
		{
			name: "fearful",
			inputs: AttachmentInputs{
				AbandonmentFear: 5, Trust: 1, IntimacyComfort: 1,
				ValidationSeeking: 5, WithdrawalTendency: 5,
				IndependenceNeed: 5, ClosenessDesire: 1,
			},
			expectedStyle: StyleFearful,
			expectedConf:  60,
		},
		{
			name:          "nothing answered defaults to secure",
			inputs:        AttachmentInputs{},
			expectedStyle: StyleSecure,
			expectedConf:  20,
		},
		{
			name:          "single answer still classifies",
			inputs:        AttachmentInputs{AbandonmentFear: 5},
			expectedStyle: StyleAnxious,
			expectedConf:  40,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			style, conf := engine.ClassifyAttachmentStyle(tc.inputs)
			if style != tc.expectedStyle {
				t.Errorf("style = %s, want %s", style, tc.expectedStyle)
			}
			if conf != tc.expectedConf {
				t.Errorf("confidence = %d, want %d", conf, tc.expectedConf)
			}
			if conf < 0 || conf > 100 {
				t.Errorf("confidence %d out of range", conf)
			}
		})
	}
}

func TestEnergyConfidence(t *testing.T) {
	engine := NewEngine(nil)

	testCases := []struct {
		score    int
		profile  EnergyProfile
		expected int
	}{
		{65, ProfileIntrovert, 50},
		{100, ProfileIntrovert, 100},
		{35, ProfileExtrovert, 50},
		{0, ProfileExtrovert, 100},
		{50, ProfileAmbivert, 100},
	}

	for _, tc := range testCases {
		if got := engine.energyConfidence(tc.score, tc.profile); got != tc.expected {
			t.Errorf("energyConfidence(%d, %s) = %d, want %d", tc.score, tc.profile, got, tc.expected)
		}
	}
}

func TestDerivePersonalizationFlags(t *testing.T) {
	engine := NewEngine(nil)

	testCases := []struct {
		name     string
		profile  EnergyProfile
		style    AttachmentStyle
		expected PersonalizationFlags
	}{
		{
			name:    "introvert anxious",
			profile: ProfileIntrovert,
			style:   StyleAnxious,
			expected: PersonalizationFlags{
				NeedsExtraSupport:     true,
				NeedsReassurance:      true,
				PrefersLowStimulation: true,
				Pacing:                PacingSlow,
			},
		},
		{
			name:    "extrovert secure",
			profile: ProfileExtrovert,
			style:   StyleSecure,
			expected: PersonalizationFlags{Pacing: PacingFast},
		},
		{
			name:    "ambivert avoidant",
			profile: ProfileAmbivert,
			style:   StyleAvoidant,
			expected: PersonalizationFlags{Pacing: PacingNormal},
		},
		{
			// fearful always slows pacing, regardless of energy profile
			name:    "extrovert fearful",
			profile: ProfileExtrovert,
			style:   StyleFearful,
			expected: PersonalizationFlags{
				NeedsExtraSupport: true,
				Pacing:            PacingSlow,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := engine.DerivePersonalizationFlags(tc.profile, tc.style)
			if got != tc.expected {
				t.Errorf("flags = %+v, want %+v", got, tc.expected)
			}
		})
	}
}

func TestScoreIdempotent(t *testing.T) {
	engine := NewEngine(nil)
	inputs := AssessmentInputs{
		Energy: EnergyInputs{
			EnergyAfterSocial:     2,
			CallPreparation:       4,
			PostDateNeed:          PostDateAloneTime,
			SocialBatteryCapacity: 3,
		},
		Attachment: AttachmentInputs{
			AbandonmentFear: 4, Trust: 2, IntimacyComfort: 3,
			ValidationSeeking: 4, WithdrawalTendency: 2,
			IndependenceNeed: 3, ClosenessDesire: 4,
		},
		Values: []RankedResponse{
			{Key: "honesty", Label: "Honesty", Importance: 9},
			{Key: "humor", Label: "Humor", Importance: 7},
		},
	}

	first := engine.Score(inputs)
	second := engine.Score(inputs)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("Score is not deterministic:\nfirst:  %+v\nsecond: %+v", first, second)
	}
}

func TestScorePipeline(t *testing.T) {
	engine := NewEngine(nil)
	result := engine.Score(AssessmentInputs{
		Energy: EnergyInputs{
			EnergyAfterSocial:     1,
			CallPreparation:       5,
			PostDateNeed:          PostDateAloneTime,
			SocialBatteryCapacity: 1,
		},
	})

	if result.SubScores["introvert"] != 100 {
		t.Errorf("introvert sub-score = %d, want 100", result.SubScores["introvert"])
	}
	if got := result.Classifications[0]; got.Name != "energy_profile" || got.Value != string(ProfileIntrovert) {
		t.Errorf("unexpected energy classification: %+v", got)
	}
	if result.Flags.Pacing != PacingSlow {
		t.Errorf("pacing = %s, want %s", result.Flags.Pacing, PacingSlow)
	}
	if len(result.Recommendations) == 0 {
		t.Error("expected recommendations for a classified profile")
	}
	if result.Synthesis != nil {
		t.Error("expected no synthesis without ranked values")
	}
	for _, c := range result.Classifications {
		if c.Confidence < 0 || c.Confidence > 100 {
			t.Errorf("classification %s confidence %d out of range", c.Name, c.Confidence)
		}
	}
}
