package scoring

import "testing"

func rankedFixture() []RankedResponse {
	return []RankedResponse{
		{Key: "honesty", Label: "Honesty", Importance: 9},
		{Key: "loyalty", Label: "Loyalty", Importance: 8},
		{Key: "adventure", Label: "Adventure", Importance: 8},
		{Key: "ambition", Label: "Ambition", Importance: 7},
		{Key: "family", Label: "Family", Importance: 6},
		{Key: "humor", Label: "Humor", Importance: 6},
		{Key: "independence", Label: "Independence", Importance: 5},
		{Key: "growth", Label: "Growth", Importance: 4},
		{Key: "stability", Label: "Stability", Importance: 3},
	}
}

func TestSynthesisCoreValueCap(t *testing.T) {
	engine := NewEngine(nil)
	synthesis := engine.GenerateRuleBasedSynthesis(rankedFixture(), nil)

	if len(synthesis.CoreValues) != 7 {
		t.Errorf("core values = %d, want 7", len(synthesis.CoreValues))
	}
	if synthesis.CoreValues[0].Key != "honesty" {
		t.Errorf("top core value = %s, want honesty", synthesis.CoreValues[0].Key)
	}
	// lowest-ranked entries fall off
	for _, cv := range synthesis.CoreValues {
		if cv.Key == "growth" || cv.Key == "stability" {
			t.Errorf("value %s should not have made the cut", cv.Key)
		}
	}
}

func TestSynthesisFewerThanCap(t *testing.T) {
	engine := NewEngine(nil)
	ranked := []RankedResponse{
		{Key: "honesty", Label: "Honesty", Importance: 8},
		{Key: "humor", Label: "Humor", Importance: 5},
	}

	synthesis := engine.GenerateRuleBasedSynthesis(ranked, nil)
	if len(synthesis.CoreValues) != 2 {
		t.Errorf("core values = %d, want 2", len(synthesis.CoreValues))
	}

	synthesis = engine.GenerateRuleBasedSynthesis(nil, nil)
	if len(synthesis.CoreValues) != 0 {
		t.Errorf("core values from empty input = %d, want 0", len(synthesis.CoreValues))
	}
}

func TestSynthesisTieBreakStable(t *testing.T) {
	engine := NewEngine(nil)
	ranked := []RankedResponse{
		{Key: "humor", Label: "Humor", Importance: 5},
		{Key: "family", Label: "Family", Importance: 5},
		{Key: "loyalty", Label: "Loyalty", Importance: 5},
	}

	synthesis := engine.GenerateRuleBasedSynthesis(ranked, nil)
	expectedOrder := []string{"humor", "family", "loyalty"}
	for i, key := range expectedOrder {
		if synthesis.CoreValues[i].Key != key {
			t.Errorf("position %d = %s, want %s (input order must survive equal importance)",
				i, synthesis.CoreValues[i].Key, key)
		}
	}
}

func TestSynthesisListCaps(t *testing.T) {
	engine := NewEngine(nil)
	// catalog whose entries would overflow every list if uncapped
	catalog := ValueCatalog{
		"a": {
			RedFlags:   []string{"r1", "r2", "r3"},
			GreenFlags: []string{"g1", "g2", "g3"},
			Strategies: []string{"s1", "s2", "s3"},
		},
		"b": {
			RedFlags:   []string{"r4", "r5", "r6"},
			GreenFlags: []string{"g4", "g5", "g6"},
			Strategies: []string{"s4", "s5", "s6"},
		},
		"c": {
			RedFlags:   []string{"r7", "r8"},
			GreenFlags: []string{"g7", "g8"},
			Strategies: []string{"s7", "s8"},
		},
	}
	ranked := []RankedResponse{
		{Key: "a", Importance: 9},
		{Key: "b", Importance: 8},
		{Key: "c", Importance: 7},
	}

	synthesis := engine.GenerateRuleBasedSynthesis(ranked, catalog)
	if len(synthesis.RedFlags) != 5 {
		t.Errorf("red flags = %d, want 5", len(synthesis.RedFlags))
	}
	if len(synthesis.GreenFlags) != 5 {
		t.Errorf("green flags = %d, want 5", len(synthesis.GreenFlags))
	}
	if len(synthesis.Strategies) != 5 {
		t.Errorf("strategies = %d, want 5", len(synthesis.Strategies))
	}
	// higher-importance entries fill the lists first
	if synthesis.RedFlags[0] != "r1" || synthesis.RedFlags[4] != "r5" {
		t.Errorf("unexpected red flag order: %v", synthesis.RedFlags)
	}
}

func TestSynthesisDeduplicatesListEntries(t *testing.T) {
	engine := NewEngine(nil)
	catalog := ValueCatalog{
		"a": {RedFlags: []string{"same flag"}},
		"b": {RedFlags: []string{"same flag", "other flag"}},
	}
	ranked := []RankedResponse{
		{Key: "a", Importance: 9},
		{Key: "b", Importance: 8},
	}

	synthesis := engine.GenerateRuleBasedSynthesis(ranked, catalog)
	if len(synthesis.RedFlags) != 2 {
		t.Errorf("red flags = %v, want deduplicated pair", synthesis.RedFlags)
	}
}

func TestSynthesisUnknownKeyFallsBack(t *testing.T) {
	engine := NewEngine(nil)
	synthesis := engine.GenerateRuleBasedSynthesis([]RankedResponse{
		{Key: "does_not_exist", Label: "Mystery", Importance: 10},
	}, nil)

	if len(synthesis.CoreValues) != 1 {
		t.Fatalf("core values = %d, want 1", len(synthesis.CoreValues))
	}
	if synthesis.CoreValues[0].Description == "" {
		t.Error("fallback entry must still carry description text")
	}
}

func TestCatalogLookupTotal(t *testing.T) {
	catalog := DefaultValueCatalog()

	if insight := catalog.Lookup("honesty"); insight.Description == "" {
		t.Error("known key returned empty insight")
	}
	if insight := catalog.Lookup("never_heard_of_it"); insight.Description == "" {
		t.Error("unknown key must resolve to the fallback entry")
	}
}
