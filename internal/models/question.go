package models

import "time"

type Option struct {
	ID   string `bson:"id" json:"id"`
	Text string `bson:"text" json:"text"`
}

// Question is a questionnaire definition entry. The onboarding form renders
// questions in order; the assessment service uses them to decide which
// responses are required before an assessment may complete.
type Question struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Prompt    string    `bson:"prompt" json:"prompt"`
	Type      string    `bson:"type" json:"type"` // likert5, likert10, choice, multi_choice, ranked
	Section   string    `bson:"section" json:"section"`
	Options   []Option  `bson:"options,omitempty" json:"options,omitempty"`
	Required  bool      `bson:"required" json:"required"`
	Sequence  int       `bson:"sequence" json:"sequence"`
	IsActive  bool      `bson:"is_active" json:"is_active"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Questionnaire groups an ordered set of questions into one assessment run.
type Questionnaire struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	QuestionIDs []string  `bson:"question_ids" json:"question_ids"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}
