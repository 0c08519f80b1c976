package planner

type areaGroup struct {
	area    Area
	members []Destination
	visited bool
}

// OptimizeRoute orders destinations so each area is visited as one block,
// hopping greedily to the closest remaining area. A non-empty startHint picks
// the first area; otherwise the most populated area goes first.
// The result is always a permutation of the input.
func OptimizeRoute(dests []Destination, startHint Area) []Destination {
	if len(dests) <= 1 {
		return append([]Destination(nil), dests...)
	}

	groups := make([]*areaGroup, 0, 6)
	index := make(map[Area]*areaGroup)
	for _, d := range dests {
		area := d.Area
		if area == "" {
			area = ResolveArea(d.Location)
		}
		g, ok := index[area]
		if !ok {
			g = &areaGroup{area: area}
			index[area] = g
			groups = append(groups, g)
		}
		g.members = append(g.members, d)
	}

	current := startHint
	if current == "" {
		var largest *areaGroup
		for _, g := range groups {
			if largest == nil || len(g.members) > len(largest.members) {
				largest = g
			}
		}
		current = largest.area
	}

	out := make([]Destination, 0, len(dests))
	for {
		if g, ok := index[current]; ok && !g.visited {
			out = append(out, g.members...)
			g.visited = true
		}

		var next *areaGroup
		bestScore := 0.0
		for _, g := range groups {
			if g.visited {
				continue
			}
			score := float64(AreaDistance(current, g.area)) - 0.5*float64(len(g.members))
			if next == nil || score < bestScore {
				next, bestScore = g, score
			}
		}
		if next == nil {
			break
		}
		current = next.area
	}
	return out
}

// CountAreaChanges counts adjacent pairs whose areas differ.
func CountAreaChanges(items []ItineraryItem) int {
	changes := 0
	for i := 1; i < len(items); i++ {
		if items[i].Area != items[i-1].Area {
			changes++
		}
	}
	return changes
}
