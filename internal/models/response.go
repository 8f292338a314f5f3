package models

import "time"

// Questionnaire sections. Each question belongs to exactly one section and
// the scoring engine consumes sections independently.
const (
	SectionEnergy     = "energy"
	SectionAttachment = "attachment"
	SectionValues     = "values"
	SectionPainPoints = "pain_points"
	SectionGoals      = "goals"
)

type QuestionnaireResponse struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	AssessmentID string    `bson:"assessment_id" json:"assessment_id"`
	QuestionID   string    `bson:"question_id" json:"question_id"`
	Section      string    `bson:"section" json:"section"`
	NumericValue int       `bson:"numeric_value,omitempty" json:"numeric_value,omitempty"`
	TextValue    string    `bson:"text_value,omitempty" json:"text_value,omitempty"`
	MultiValue   []string  `bson:"multi_value,omitempty" json:"multi_value,omitempty"`
	Importance   int       `bson:"importance,omitempty" json:"importance,omitempty"`
	AnsweredAt   time.Time `bson:"answered_at" json:"answered_at"`
}
