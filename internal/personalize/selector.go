package personalize

import "strings"

// Condition is a single equality check against one named result field.
type Condition struct {
	Field  string `json:"field"`
	Equals string `json:"equals"`
}

// Template is one candidate coaching message. Templates without a condition
// never match by rule; one of them should be marked as the default.
type Template struct {
	Name      string     `json:"name"`
	Body      string     `json:"body"`
	Priority  int        `json:"priority"`
	Condition *Condition `json:"condition,omitempty"`
	IsDefault bool       `json:"is_default"`
}

// ResultFields is the flattened view of an assessment result the selector
// evaluates conditions against (e.g. "energy_profile" -> "introvert").
type ResultFields map[string]string

// SelectTemplate returns the highest-priority template whose condition
// matches the result fields. Equal priorities resolve to the earlier entry.
// When nothing matches, the designated default template is returned, or nil
// if no default exists.
func SelectTemplate(fields ResultFields, templates []Template) *Template {
	var best *Template
	for i := range templates {
		tpl := &templates[i]
		if tpl.Condition == nil {
			continue
		}
		if fields[tpl.Condition.Field] != tpl.Condition.Equals {
			continue
		}
		if best == nil || tpl.Priority > best.Priority {
			best = tpl
		}
	}
	if best != nil {
		return best
	}
	for i := range templates {
		if templates[i].IsDefault {
			return &templates[i]
		}
	}
	return nil
}

// Render substitutes {token} placeholders in a template body. Unknown
// tokens are left untouched so missing variables stay visible downstream.
func Render(body string, vars map[string]string) string {
	if len(vars) == 0 {
		return body
	}
	pairs := make([]string, 0, len(vars)*2)
	for token, value := range vars {
		pairs = append(pairs, "{"+token+"}", value)
	}
	return strings.NewReplacer(pairs...).Replace(body)
}
