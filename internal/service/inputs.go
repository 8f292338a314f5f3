package service

import (
	"assessment-service/internal/models"
	"assessment-service/internal/scoring"
)

// Question IDs the scoring engine consumes. The onboarding form uses the
// same keys, so responses map onto engine inputs without translation tables.
const (
	QuestionEnergyAfterSocial = "energy_after_social"
	QuestionCallPreparation   = "call_preparation"
	QuestionPostDateNeed      = "post_date_need"
	QuestionSocialBattery     = "social_battery_capacity"

	QuestionAbandonmentFear    = "abandonment_fear"
	QuestionTrust              = "trust"
	QuestionIntimacyComfort    = "intimacy_comfort"
	QuestionValidationSeeking  = "validation_seeking"
	QuestionWithdrawalTendency = "withdrawal_tendency"
	QuestionIndependenceNeed   = "independence_need"
	QuestionClosenessDesire    = "closeness_desire"
)

// buildAssessmentInputs assembles the engine input record from raw
// responses. Unknown question IDs are ignored; missing ones leave their
// field zero-valued, which the engine treats as unanswered.
func buildAssessmentInputs(responses []models.QuestionnaireResponse) scoring.AssessmentInputs {
	var inputs scoring.AssessmentInputs

	for _, resp := range responses {
		switch resp.QuestionID {
		case QuestionEnergyAfterSocial:
			inputs.Energy.EnergyAfterSocial = resp.NumericValue
		case QuestionCallPreparation:
			inputs.Energy.CallPreparation = resp.NumericValue
		case QuestionPostDateNeed:
			inputs.Energy.PostDateNeed = resp.TextValue
		case QuestionSocialBattery:
			inputs.Energy.SocialBatteryCapacity = resp.NumericValue
		case QuestionAbandonmentFear:
			inputs.Attachment.AbandonmentFear = resp.NumericValue
		case QuestionTrust:
			inputs.Attachment.Trust = resp.NumericValue
		case QuestionIntimacyComfort:
			inputs.Attachment.IntimacyComfort = resp.NumericValue
		case QuestionValidationSeeking:
			inputs.Attachment.ValidationSeeking = resp.NumericValue
		case QuestionWithdrawalTendency:
			inputs.Attachment.WithdrawalTendency = resp.NumericValue
		case QuestionIndependenceNeed:
			inputs.Attachment.IndependenceNeed = resp.NumericValue
		case QuestionClosenessDesire:
			inputs.Attachment.ClosenessDesire = resp.NumericValue
		default:
			if resp.Section == models.SectionValues && resp.TextValue != "" {
				inputs.Values = append(inputs.Values, scoring.RankedResponse{
					Key:        resp.TextValue,
					Label:      resp.TextValue,
					Importance: resp.Importance,
				})
			}
		}
	}

	return inputs
}
