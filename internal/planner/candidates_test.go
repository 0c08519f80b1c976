package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetCount(t *testing.T) {
	tuning := DefaultTuning()
	tests := []struct {
		style    TravelStyle
		duration Duration
		want     int
	}{
		{StyleRelaxed, DurationHalfDay, 2},
		{StyleRelaxed, DurationFullDay, 3},
		{StyleRelaxed, DurationWeekend, 5},
		{StyleBalanced, DurationHalfDay, 3},
		{StyleBalanced, DurationFullDay, 4},
		{StyleBalanced, DurationWeekend, 8},
		{StyleIntensive, DurationHalfDay, 4},
		{StyleIntensive, DurationFullDay, 6},
		{StyleIntensive, DurationWeekend, 10},
	}
	for _, tt := range tests {
		prefs := Preferences{TravelStyle: tt.style, Duration: tt.duration}
		assert.Equal(t, tt.want, TargetCount(prefs, tuning), "%s/%s", tt.style, tt.duration)
	}
}

func TestSelectCandidates_PadsFromCatalog(t *testing.T) {
	catalog := NormalizeCatalog(sampleCatalog())
	preselected := NormalizePreselected([]RawDestination{
		{ID: "p1", Label: "Soto Betawi", Category: "Kuliner", Price: "Rp 50.000", Location: "Menteng"},
	})
	prefs := Preferences{}.WithDefaults()

	pool := SelectCandidates(preselected, catalog, prefs, DefaultTuning())
	assert.Equal(t, []string{"p1", "w1", "t1", "m1"}, ids(pool))
}

func TestSelectCandidates_PreselectedAboveTargetKept(t *testing.T) {
	var pre []Destination
	for _, id := range []string{"a", "b", "c", "d", "e"} {
		pre = append(pre, dest(id, CategoryHistory, AreaCentral))
	}
	pre = append(pre, dest("f", CategoryCulinary, AreaCentral))
	prefs := Preferences{TravelStyle: StyleRelaxed, Duration: DurationFullDay}.WithDefaults()

	pool := SelectCandidates(pre, nil, prefs, DefaultTuning())
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, ids(pool))
}

func TestSelectCandidates_CategoryFilter(t *testing.T) {
	catalog := NormalizeCatalog(sampleCatalog())
	prefs := Preferences{Category: []string{"Sejarah", "Alam"}}.WithDefaults()

	pool := SelectCandidates(nil, catalog, prefs, DefaultTuning())
	// m1 and h1 pass the filter; w1 is the culinary guarantee.
	assert.Equal(t, []string{"m1", "h1", "w1"}, ids(pool))
}

func TestSelectCandidates_AllCategoriesSkipsFilter(t *testing.T) {
	catalog := NormalizeCatalog(sampleCatalog())
	prefs := Preferences{Category: []string{"Kuliner", "Rekreasi", "Sejarah", "Alam", "Cafe"}}.WithDefaults()

	pool := SelectCandidates(nil, catalog, prefs, DefaultTuning())
	assert.Equal(t, []string{"w1", "t1", "m1", "h1"}, ids(pool))
}

func TestSelectCandidates_EnvironmentFilterIsGentle(t *testing.T) {
	catalog := NormalizeCatalog(sampleCatalog())
	catalog = append(catalog, NormalizeCatalog([]RawDestination{{ID: "x1", Name: "Anywhere", Category: "Venue"}})...)
	prefs := Preferences{Environment: EnvironmentOutdoor}.WithDefaults()

	pool := SelectCandidates(nil, catalog, prefs, DefaultTuning())
	// outdoor t1, h1, unspecified x1, plus the culinary guarantee.
	assert.Equal(t, []string{"t1", "h1", "x1", "w1"}, ids(pool))
}

func TestSelectCandidates_BudgetFilterNeedsHalfTarget(t *testing.T) {
	var catalog []Destination
	for i, amount := range []int64{50000, 150000, 400000, 20000, 30000, 60000} {
		d := dest(string(rune('a'+i)), CategoryHistory, AreaCentral)
		d.Amount = amount
		catalog = append(catalog, d)
	}
	catalog = append(catalog, dest("food", CategoryCulinary, AreaCentral))

	// Only one high-tier destination; balanced/full-day needs at least 2.
	high := Preferences{Budget: BudgetHigh}.WithDefaults()
	pool := SelectCandidates(nil, catalog, high, DefaultTuning())
	assert.Equal(t, []string{"a", "b", "c", "d", "food"}, ids(pool))

	low := Preferences{Budget: BudgetLow}.WithDefaults()
	pool = SelectCandidates(nil, catalog, low, DefaultTuning())
	assert.Equal(t, []string{"a", "d", "e", "f", "food"}, ids(pool))
}

func TestSelectCandidates_PriorityIsStablePartition(t *testing.T) {
	catalog := NormalizeCatalog(sampleCatalog())

	photo := Preferences{Priority: PriorityPhoto}.WithDefaults()
	pool := SelectCandidates(nil, catalog, photo, DefaultTuning())
	assert.Equal(t, []string{"k1", "w1", "t1", "m1"}, ids(pool))

	relax := Preferences{Priority: PriorityRelax}.WithDefaults()
	pool = SelectCandidates(nil, catalog, relax, DefaultTuning())
	assert.Equal(t, []string{"h1", "w1", "t1", "m1"}, ids(pool))

	culinary := Preferences{Priority: PriorityCulinary, TravelStyle: StyleRelaxed, Duration: DurationHalfDay}.WithDefaults()
	pool = SelectCandidates(nil, catalog, culinary, DefaultTuning())
	assert.Equal(t, []string{"w1", "t1"}, ids(pool))
}

func TestSelectCandidates_CulinaryGuarantee(t *testing.T) {
	pre := []Destination{dest("a", CategoryHistory, AreaNorth)}
	prefs := Preferences{}.WithDefaults()

	pool := SelectCandidates(pre, nil, prefs, DefaultTuning())
	require.Len(t, pool, 2)
	assert.Equal(t, dummyCulinaryID, pool[1].ID)
	assert.Equal(t, CategoryCulinary, pool[1].Category)
	assert.Equal(t, AreaCentral, pool[1].Area)

	catalog := []Destination{dest("c1", CategoryCulinary, AreaSouth)}
	pool = SelectCandidates(pre, catalog, Preferences{Category: []string{"History"}}.WithDefaults(), DefaultTuning())
	require.Len(t, pool, 2)
	assert.Equal(t, "c1", pool[1].ID)
}

func TestSelectCandidates_EmptyInputsGiveEmptyPool(t *testing.T) {
	pool := SelectCandidates(nil, nil, Preferences{}.WithDefaults(), DefaultTuning())
	assert.Empty(t, pool)
}

func TestAvailableCategories(t *testing.T) {
	catalog := NormalizeCatalog(sampleCatalog())
	catalog = append(catalog, catalog[0])
	assert.Equal(t, []string{"Kuliner", "Rekreasi", "Sejarah", "Alam", "Cafe"}, AvailableCategories(catalog))
}
