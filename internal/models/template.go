package models

import "time"

// MessageTemplate is one of a small static set of coaching messages. A
// template matches when the named result field equals the condition value;
// the highest priority among matching templates wins.
type MessageTemplate struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	Name           string    `bson:"name" json:"name"`
	Body           string    `bson:"body" json:"body"`
	Priority       int       `bson:"priority" json:"priority"`
	ConditionField string    `bson:"condition_field,omitempty" json:"condition_field,omitempty"`
	ConditionValue string    `bson:"condition_value,omitempty" json:"condition_value,omitempty"`
	IsDefault      bool      `bson:"is_default" json:"is_default"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at" json:"updated_at"`
}
