package planner

import "strings"

// Category is the closed set of destination kinds the scheduler branches on.
type Category string

const (
	CategoryCulinary   Category = "Culinary"
	CategoryRecreation Category = "Recreation"
	CategoryHistory    Category = "History"
	CategoryShopping   Category = "Shopping"
	CategoryEducation  Category = "Education"
	CategoryNature     Category = "Nature"
	CategoryCafe       Category = "Cafe"
	CategoryVenue      Category = "Venue"
	CategoryCulture    Category = "Culture"
	CategoryGeneral    Category = "General"
	CategoryOther      Category = "Other"
)

var categoryAliases = map[string]Category{
	"culinary":   CategoryCulinary,
	"kuliner":    CategoryCulinary,
	"food":       CategoryCulinary,
	"recreation": CategoryRecreation,
	"rekreasi":   CategoryRecreation,
	"history":    CategoryHistory,
	"sejarah":    CategoryHistory,
	"shopping":   CategoryShopping,
	"belanja":    CategoryShopping,
	"education":  CategoryEducation,
	"edukasi":    CategoryEducation,
	"nature":     CategoryNature,
	"alam":       CategoryNature,
	"cafe":       CategoryCafe,
	"kafe":       CategoryCafe,
	"venue":      CategoryVenue,
	"culture":    CategoryCulture,
	"budaya":     CategoryCulture,
	"general":    CategoryGeneral,
}

var categoryEmoji = map[Category]string{
	CategoryCulinary:   "🍜",
	CategoryRecreation: "🎡",
	CategoryHistory:    "🏛️",
	CategoryShopping:   "🛍️",
	CategoryEducation:  "📚",
	CategoryNature:     "🌳",
	CategoryCafe:       "☕",
	CategoryVenue:      "🏞️",
	CategoryCulture:    "🎭",
}

// ParseCategory accepts English and Indonesian names, case-insensitively.
// Empty input is General; anything unrecognised is Other.
func ParseCategory(raw string) Category {
	key := strings.ToLower(strings.TrimSpace(raw))
	if key == "" {
		return CategoryGeneral
	}
	if c, ok := categoryAliases[key]; ok {
		return c
	}
	return CategoryOther
}

// Emoji returns the display glyph for the category.
func (c Category) Emoji() string {
	if e, ok := categoryEmoji[c]; ok {
		return e
	}
	return "📍"
}

// activityBonus reports whether the category earns the longer visit.
func (c Category) activityBonus() bool {
	return c == CategoryRecreation || c == CategoryNature
}

// eveningFriendly reports whether the category suits the evening slots.
func (c Category) eveningFriendly() bool {
	return c == CategoryShopping || c == CategoryCafe
}
