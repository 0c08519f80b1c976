package planner

import "strings"

// Area is one of the coarse Jakarta zones used for routing.
type Area string

const (
	AreaCentral Area = "Central"
	AreaNorth   Area = "North"
	AreaWest    Area = "West"
	AreaSouth   Area = "South"
	AreaEast    Area = "East"
	AreaUnknown Area = "Unknown"
)

// defaultDistance applies to any pair missing from the matrix.
const defaultDistance = 3

type areaKeywords struct {
	area     Area
	keywords []string
}

// Checked in order; the first area with a matching keyword wins.
var areaTable = []areaKeywords{
	{AreaCentral, []string{"jakarta pusat", "pusat", "central jakarta", "menteng", "gambir", "tanah abang", "kemayoran", "sawah besar", "cempaka putih"}},
	{AreaNorth, []string{"jakarta utara", "utara", "north jakarta", "ancol", "kelapa gading", "sunter", "tanjung priok", "penjaringan", "pademangan"}},
	{AreaWest, []string{"jakarta barat", "barat", "west jakarta", "grogol", "cengkareng", "kalideres", "kebon jeruk", "kembangan", "palmerah", "taman sari", "tambora"}},
	{AreaSouth, []string{"jakarta selatan", "selatan", "south jakarta", "kebayoran", "cilandak", "jagakarsa", "mampang", "pancoran", "pasar minggu", "pesanggrahan", "setiabudi", "tebet"}},
	{AreaEast, []string{"jakarta timur", "timur", "east jakarta", "cakung", "cipayung", "ciracas", "duren sawit", "jatinegara", "kramat jati", "makasar", "matraman", "pasar rebo", "pulogadung"}},
}

type areaPair struct{ a, b Area }

var areaDistances = map[areaPair]int{
	{AreaCentral, AreaNorth}:   1,
	{AreaCentral, AreaWest}:    2,
	{AreaCentral, AreaSouth}:   2,
	{AreaCentral, AreaEast}:    2,
	{AreaCentral, AreaUnknown}: 1,
	{AreaNorth, AreaWest}:      2,
	{AreaNorth, AreaSouth}:     3,
	{AreaNorth, AreaEast}:      2,
	{AreaNorth, AreaUnknown}:   1,
	{AreaWest, AreaSouth}:      2,
	{AreaWest, AreaEast}:       4,
	{AreaWest, AreaUnknown}:    2,
	{AreaSouth, AreaEast}:      2,
	{AreaSouth, AreaUnknown}:   2,
	{AreaEast, AreaUnknown}:    2,
}

// ResolveArea maps a free-text location to an Area by keyword match.
func ResolveArea(location string) Area {
	loc := strings.ToLower(strings.TrimSpace(location))
	if loc == "" {
		return AreaUnknown
	}
	for _, entry := range areaTable {
		for _, kw := range entry.keywords {
			if strings.Contains(loc, kw) {
				return entry.area
			}
		}
	}
	return AreaUnknown
}

// AreaDistance returns the symmetric ordinal distance between two areas.
func AreaDistance(a, b Area) int {
	if a == b {
		return 0
	}
	if d, ok := areaDistances[areaPair{a, b}]; ok {
		return d
	}
	if d, ok := areaDistances[areaPair{b, a}]; ok {
		return d
	}
	return defaultDistance
}

// Label is the display name used in notes and trip details.
func (a Area) Label() string {
	switch a {
	case AreaCentral, AreaNorth, AreaWest, AreaSouth, AreaEast:
		return string(a) + " Jakarta"
	default:
		return "Unknown Area"
	}
}

// Known reports whether the area resolved to one of the five zones.
func (a Area) Known() bool {
	return a != "" && a != AreaUnknown
}

// AllAreas lists the zones in resolution order, Unknown last.
func AllAreas() []Area {
	return []Area{AreaCentral, AreaNorth, AreaWest, AreaSouth, AreaEast, AreaUnknown}
}
