package scoring

import "sort"

// GenerateRuleBasedSynthesis is the non-AI fallback path: it ranks the
// value responses by importance, keeps the top entries as core values and
// aggregates their catalog text into capped flag and strategy lists.
//
// Ties in importance preserve input order. Fewer ranked responses than the
// core-value cap is fine: everything available is returned. A nil catalog
// falls back to the built-in one.
func (e *Engine) GenerateRuleBasedSynthesis(responses []RankedResponse, catalog ValueCatalog) *Synthesis {
	if catalog == nil {
		catalog = DefaultValueCatalog()
	}

	ranked := make([]RankedResponse, len(responses))
	copy(ranked, responses)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Importance > ranked[j].Importance
	})

	limit := e.config.CoreValueLimit
	if len(ranked) < limit {
		limit = len(ranked)
	}
	ranked = ranked[:limit]

	synthesis := &Synthesis{
		CoreValues: make([]CoreValue, 0, limit),
		RedFlags:   []string{},
		GreenFlags: []string{},
		Strategies: []string{},
	}

	for _, r := range ranked {
		insight := catalog.Lookup(r.Key)
		synthesis.CoreValues = append(synthesis.CoreValues, CoreValue{
			Key:         r.Key,
			Label:       r.Label,
			Importance:  r.Importance,
			Description: insight.Description,
			Meaning:     insight.Meaning,
		})
		synthesis.RedFlags = appendCapped(synthesis.RedFlags, insight.RedFlags, e.config.ListLimit)
		synthesis.GreenFlags = appendCapped(synthesis.GreenFlags, insight.GreenFlags, e.config.ListLimit)
		synthesis.Strategies = appendCapped(synthesis.Strategies, insight.Strategies, e.config.ListLimit)
	}

	return synthesis
}

// appendCapped appends entries until the list reaches its cap, skipping
// exact duplicates so repeated catalog text does not crowd out variety.
func appendCapped(list []string, entries []string, limit int) []string {
	for _, entry := range entries {
		if len(list) >= limit {
			break
		}
		duplicate := false
		for _, existing := range list {
			if existing == entry {
				duplicate = true
				break
			}
		}
		if !duplicate {
			list = append(list, entry)
		}
	}
	return list
}
