package planner

import "strings"

// TargetCount is how many destinations a trip of this shape should hold.
func TargetCount(prefs Preferences, tuning Tuning) int {
	return tuning.Styles.For(prefs.TravelStyle).Targets.For(prefs.Duration)
}

// AvailableCategories returns the distinct category names of the catalog,
// in first-seen order.
func AvailableCategories(catalog []Destination) []string {
	seen := make(map[string]bool)
	var out []string
	for _, d := range catalog {
		key := strings.ToLower(d.CategoryName)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, d.CategoryName)
	}
	return out
}

// SelectCandidates builds the destination pool for one run: the user's picks
// first, then catalog padding filtered and ranked by preference, and finally
// a culinary guarantee.
func SelectCandidates(preselected, catalog []Destination, prefs Preferences, tuning Tuning) []Destination {
	target := TargetCount(prefs, tuning)

	pool := make([]Destination, 0, target+1)
	included := make(map[string]bool)
	for _, d := range preselected {
		if included[d.ID] {
			continue
		}
		included[d.ID] = true
		pool = append(pool, d)
	}

	if len(pool) < target {
		candidates := make([]Destination, 0, len(catalog))
		for _, d := range catalog {
			if !included[d.ID] {
				candidates = append(candidates, d)
			}
		}

		if len(prefs.Category) > 0 && !coversAll(prefs.Category, AvailableCategories(catalog)) {
			candidates = filter(candidates, func(d Destination) bool { return d.matchesCategory(prefs.Category) })
		}

		if prefs.Environment != "" && prefs.Environment != EnvironmentBoth {
			candidates = filter(candidates, func(d Destination) bool {
				return d.Setting == EnvironmentBoth || d.Setting == prefs.Environment
			})
		}

		if prefs.Budget != "" && len(candidates) > target {
			byTier := filter(candidates, func(d Destination) bool {
				return priceTier(d.Amount, tuning.BudgetTiers) == prefs.Budget
			})
			if len(byTier) >= (target+1)/2 {
				candidates = byTier
			}
		}

		candidates = rankByPriority(candidates, prefs.Priority)

		for _, d := range candidates {
			if len(pool) >= target {
				break
			}
			if included[d.ID] {
				continue
			}
			included[d.ID] = true
			pool = append(pool, d)
		}
	}

	if len(pool) > 0 && !hasCulinary(pool) {
		pool = append(pool, pickCulinary(catalog, included))
	}
	return pool
}

func coversAll(selected, available []string) bool {
	if len(available) == 0 {
		return true
	}
	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		chosen[strings.ToLower(strings.TrimSpace(s))] = true
	}
	for _, a := range available {
		if !chosen[strings.ToLower(a)] {
			return false
		}
	}
	return true
}

func priceTier(amount int64, bounds TierBounds) BudgetTier {
	switch {
	case amount < bounds.LowBelow:
		return BudgetLow
	case amount > bounds.HighAbove:
		return BudgetHigh
	default:
		return BudgetMedium
	}
}

// rankByPriority is a stable partition: matches first, order kept within
// each half.
func rankByPriority(dests []Destination, priority Priority) []Destination {
	var match func(Destination) bool
	switch priority {
	case PriorityPhoto:
		match = func(d Destination) bool { return d.descriptionHas("instagrammable", "foto", "photo") }
	case PriorityCulinary:
		match = func(d Destination) bool { return d.Category == CategoryCulinary }
	case PriorityRelax:
		match = func(d Destination) bool { return d.Category == CategoryNature || d.descriptionHas("relax", "spa") }
	case PriorityActivities:
		match = func(d Destination) bool { return d.Category == CategoryRecreation || d.descriptionHas("aktivitas", "activity") }
	default:
		return dests
	}

	ranked := make([]Destination, 0, len(dests))
	var rest []Destination
	for _, d := range dests {
		if match(d) {
			ranked = append(ranked, d)
		} else {
			rest = append(rest, d)
		}
	}
	return append(ranked, rest...)
}

func hasCulinary(dests []Destination) bool {
	for _, d := range dests {
		if d.Category == CategoryCulinary {
			return true
		}
	}
	return false
}

func pickCulinary(catalog []Destination, included map[string]bool) Destination {
	for _, d := range catalog {
		if d.Category == CategoryCulinary && !included[d.ID] {
			included[d.ID] = true
			return d
		}
	}
	return dummyCulinary()
}

func filter(dests []Destination, keep func(Destination) bool) []Destination {
	out := make([]Destination, 0, len(dests))
	for _, d := range dests {
		if keep(d) {
			out = append(out, d)
		}
	}
	return out
}
