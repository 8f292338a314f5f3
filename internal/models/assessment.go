package models

import "time"

const (
	StatusIntake     = "intake"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
)

type Assessment struct {
	ID              string    `bson:"_id,omitempty" json:"id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	QuestionnaireID string    `bson:"questionnaire_id" json:"questionnaire_id"`
	Status          string    `bson:"status" json:"status"`
	ResponseCount   int       `bson:"response_count" json:"response_count"`
	StartedAt       time.Time `bson:"started_at" json:"started_at"`
	CompletedAt     time.Time `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
}

// IsClosed reports whether the assessment no longer accepts responses.
func (a *Assessment) IsClosed() bool {
	return a.Status == StatusCompleted
}
