package personalize

import "testing"

func templateFixture() []Template {
	return []Template{
		{
			Name:     "introvert_welcome",
			Body:     "Hi {name}, we'll keep the pace gentle.",
			Priority: 10,
			Condition: &Condition{
				Field:  "energy_profile",
				Equals: "introvert",
			},
		},
		{
			Name:     "introvert_deep",
			Body:     "Hi {name}, depth over volume from here on.",
			Priority: 12,
			Condition: &Condition{
				Field:  "energy_profile",
				Equals: "introvert",
			},
		},
		{
			Name:     "anxious_support",
			Body:     "Hi {name}, we'll work on {primary_pain_point_text} together.",
			Priority: 20,
			Condition: &Condition{
				Field:  "attachment_style",
				Equals: "anxious",
			},
		},
		{
			Name:      "generic_welcome",
			Body:      "Hi {name}, welcome aboard.",
			IsDefault: true,
		},
	}
}

func TestSelectTemplatePriority(t *testing.T) {
	// two templates match the same condition; the higher priority wins
	selected := SelectTemplate(ResultFields{"energy_profile": "introvert"}, templateFixture())
	if selected == nil || selected.Name != "introvert_deep" {
		t.Fatalf("selected = %v, want introvert_deep", selected)
	}
}

func TestSelectTemplateHighestAcrossFields(t *testing.T) {
	fields := ResultFields{
		"energy_profile":   "introvert",
		"attachment_style": "anxious",
	}
	selected := SelectTemplate(fields, templateFixture())
	if selected == nil || selected.Name != "anxious_support" {
		t.Fatalf("selected = %v, want anxious_support", selected)
	}
}

func TestSelectTemplateDefault(t *testing.T) {
	selected := SelectTemplate(ResultFields{"energy_profile": "extrovert"}, templateFixture())
	if selected == nil || selected.Name != "generic_welcome" {
		t.Fatalf("selected = %v, want generic_welcome", selected)
	}
}

func TestSelectTemplateNoDefault(t *testing.T) {
	templates := []Template{
		{
			Name:      "only",
			Priority:  1,
			Condition: &Condition{Field: "pacing", Equals: "slow"},
		},
	}
	if selected := SelectTemplate(ResultFields{"pacing": "fast"}, templates); selected != nil {
		t.Fatalf("selected = %v, want nil", selected)
	}
}

func TestSelectTemplateTieKeepsFirst(t *testing.T) {
	templates := []Template{
		{Name: "first", Priority: 5, Condition: &Condition{Field: "pacing", Equals: "slow"}},
		{Name: "second", Priority: 5, Condition: &Condition{Field: "pacing", Equals: "slow"}},
	}
	selected := SelectTemplate(ResultFields{"pacing": "slow"}, templates)
	if selected == nil || selected.Name != "first" {
		t.Fatalf("selected = %v, want first", selected)
	}
}

func TestRender(t *testing.T) {
	body := "Hi {name}, we'll work on {primary_pain_point_text} together."
	got := Render(body, map[string]string{
		"name":                    "Sam",
		"primary_pain_point_text": "approach anxiety",
	})
	want := "Hi Sam, we'll work on approach anxiety together."
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRenderLeavesUnknownTokens(t *testing.T) {
	got := Render("Hi {name}, see {unknown}.", map[string]string{"name": "Sam"})
	if got != "Hi Sam, see {unknown}." {
		t.Errorf("Render = %q", got)
	}
}
