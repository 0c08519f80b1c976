package planner

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// FlexString decodes from either a JSON string or a JSON number.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

// RawDestination is the loose upstream shape of a catalog row or a trip item.
type RawDestination struct {
	ID            string     `json:"id"`
	Name          string     `json:"name,omitempty"`
	Label         string     `json:"label,omitempty"`
	Category      string     `json:"category,omitempty"`
	Price         FlexString `json:"price,omitempty"`
	Location      string     `json:"location,omitempty"`
	Address       string     `json:"address,omitempty"`
	IndoorOutdoor string     `json:"indoorOutdoor,omitempty"`
	Description   string     `json:"description,omitempty"`
}

// Destination is the canonical record every planner stage works on.
type Destination struct {
	ID           string      `json:"id"`
	Label        string      `json:"label"`
	Category     Category    `json:"category"`
	CategoryName string      `json:"categoryName"`
	Price        string      `json:"price"`
	Amount       int64       `json:"amount"`
	Location     string      `json:"location"`
	Area         Area        `json:"area"`
	Setting      Environment `json:"indoorOutdoor"`
	Description  string      `json:"description,omitempty"`
}

const (
	unnamedLabel        = "Unnamed Destination"
	defaultLocation     = "Jakarta"
	freePrice           = "Free"
	priceNotAvailable   = "Price not available"
	dummyCulinaryID     = "dummy-culinary"
	dummyCulinaryLabel  = "Local Eatery"
	dummyCulinaryPrice  = "Rp 15.000"
	dummyCulinaryAmount = 15000
	dummyCulinaryPlace  = "Jakarta Pusat"
)

var (
	priceDigits  = regexp.MustCompile(`\d+[\d.,]*`)
	numericPrice = regexp.MustCompile(`^\d+(\.\d+)?$`)
)

// ParsePrice extracts the first run of digits from a price string,
// ignoring thousands separators. Unparsable input yields 0.
func ParsePrice(price string) int64 {
	match := priceDigits.FindString(price)
	if match == "" {
		return 0
	}
	cleaned := strings.NewReplacer(".", "", ",", "").Replace(match)
	n, err := strconv.ParseInt(cleaned, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// NormalizePreselected converts the user's trip list into canonical records.
func NormalizePreselected(raw []RawDestination) []Destination {
	out := make([]Destination, 0, len(raw))
	for _, r := range raw {
		out = append(out, normalize(r, firstNonEmpty(r.Label, r.Name), "", priceNotAvailable))
	}
	return out
}

// NormalizeCatalog converts catalog rows into canonical records.
func NormalizeCatalog(raw []RawDestination) []Destination {
	out := make([]Destination, 0, len(raw))
	for _, r := range raw {
		out = append(out, normalize(r, firstNonEmpty(r.Name, r.Label), defaultLocation, freePrice))
	}
	return out
}

func normalize(r RawDestination, label, locationFallback, missingPrice string) Destination {
	d := Destination{
		ID:           strings.TrimSpace(r.ID),
		Label:        label,
		CategoryName: strings.TrimSpace(r.Category),
		Location:     firstNonEmpty(r.Location, r.Address, locationFallback),
		Setting:      parseEnvironment(r.IndoorOutdoor),
		Description:  r.Description,
	}
	if d.ID == "" {
		d.ID = "dest-" + uuid.NewString()
	}
	if d.Label == "" {
		d.Label = unnamedLabel
	}
	d.Category = ParseCategory(d.CategoryName)
	if d.CategoryName == "" {
		d.CategoryName = string(CategoryGeneral)
	}

	price := strings.TrimSpace(string(r.Price))
	switch {
	case price == "":
		d.Price = missingPrice
	case numericPrice.MatchString(price):
		d.Amount = ParsePrice(strings.SplitN(price, ".", 2)[0])
		d.Price = FormatRupiah(d.Amount)
	default:
		d.Price = price
		d.Amount = ParsePrice(price)
	}

	if d.Location == "" {
		d.Area = AreaUnknown
	} else {
		d.Area = ResolveArea(d.Location)
	}
	return d
}

func dummyCulinary() Destination {
	return Destination{
		ID:           dummyCulinaryID,
		Label:        dummyCulinaryLabel,
		Category:     CategoryCulinary,
		CategoryName: string(CategoryCulinary),
		Price:        dummyCulinaryPrice,
		Amount:       dummyCulinaryAmount,
		Location:     dummyCulinaryPlace,
		Area:         AreaCentral,
		Setting:      EnvironmentBoth,
	}
}

// matchesCategory reports whether the destination belongs to any of the
// selected category names.
func (d Destination) matchesCategory(selected []string) bool {
	for _, s := range selected {
		if strings.EqualFold(strings.TrimSpace(s), d.CategoryName) {
			return true
		}
		if c := ParseCategory(s); c != CategoryOther && c == d.Category {
			return true
		}
	}
	return false
}

func (d Destination) descriptionHas(words ...string) bool {
	desc := strings.ToLower(d.Description)
	for _, w := range words {
		if strings.Contains(desc, w) {
			return true
		}
	}
	return false
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}
