package planner

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MealCounts tallies meals that still need paying for: placeholder meals
// without a destination, plus every snack.
type MealCounts struct {
	Breakfast int
	Lunch     int
	Dinner    int
	Snack     int
}

// CountMeals scans an itinerary for placeholder meals and snacks.
func CountMeals(items []ItineraryItem) MealCounts {
	var c MealCounts
	for _, item := range items {
		switch item.Kind {
		case SlotSnack:
			c.Snack++
		case SlotBreakfast:
			if item.IsPlaceholder() {
				c.Breakfast++
			}
		case SlotLunch:
			if item.IsPlaceholder() {
				c.Lunch++
			}
		case SlotDinner:
			if item.IsPlaceholder() {
				c.Dinner++
			}
		}
	}
	return c
}

// BudgetInput is everything the estimator looks at.
type BudgetInput struct {
	Used           []Destination
	Transport      TransportMethod
	AreaChanges    int
	Trips          int
	Meals          MealCounts
	MealPreference MealPreference
}

// Budget is a per-person low/high estimate in Rupiah.
type Budget struct {
	Low  decimal.Decimal
	High decimal.Decimal
}

// String renders "Rp 170.000 - Rp 230.000/pax".
func (b Budget) String() string {
	return fmt.Sprintf("%s - %s/pax", FormatRupiah(b.Low.Round(0).IntPart()), FormatRupiah(b.High.Round(0).IntPart()))
}

// EstimateBudget sums destination prices, transport and unpaid meals, then
// applies the floor and incidentals.
func EstimateBudget(in BudgetInput, tuning Tuning) Budget {
	bt := tuning.Budget
	low, high := decimal.Zero, decimal.Zero

	buffer := decimal.NewFromFloat(bt.ItemBuffer)
	for _, d := range in.Used {
		price := decimal.NewFromInt(d.Amount)
		low = low.Add(price)
		high = high.Add(price.Mul(buffer))
	}

	rate := bt.Transport.For(in.Transport)
	units := in.Trips
	if in.Transport == TransportPrivate || in.Transport == "" {
		units = len(in.Used)
	}
	units = max(units, rate.MinUnits)
	changes := decimal.NewFromInt(int64(in.AreaChanges))
	n := decimal.NewFromInt(int64(units))
	low = low.Add(decimal.NewFromInt(rate.Base.Low)).
		Add(decimal.NewFromInt(rate.PerUnit.Low).Mul(n)).
		Add(decimal.NewFromInt(rate.PerAreaChange.Low).Mul(changes))
	high = high.Add(decimal.NewFromInt(rate.Base.High)).
		Add(decimal.NewFromInt(rate.PerUnit.High).Mul(n)).
		Add(decimal.NewFromInt(rate.PerAreaChange.High).Mul(changes))

	meals := bt.Meals.For(in.MealPreference)
	for _, charge := range []struct {
		price PriceRange
		count int
	}{
		{meals.Breakfast, in.Meals.Breakfast},
		{meals.Lunch, max(1, in.Meals.Lunch)},
		{meals.Dinner, max(1, in.Meals.Dinner)},
		{meals.Snack, in.Meals.Snack},
	} {
		count := decimal.NewFromInt(int64(charge.count))
		low = low.Add(decimal.NewFromInt(charge.price.Low).Mul(count))
		high = high.Add(decimal.NewFromInt(charge.price.High).Mul(count))
	}

	floor := decimal.NewFromInt(bt.FloorLow)
	if low.LessThan(floor) {
		low = floor
	}
	if minHigh := low.Mul(decimal.NewFromFloat(bt.HighFloorRatio)); high.LessThan(minHigh) {
		high = minHigh
	}

	low = low.Add(decimal.NewFromInt(bt.Incidentals.Low))
	high = high.Add(decimal.NewFromInt(bt.Incidentals.High))
	return Budget{Low: low, High: high}
}

// TripCount is the number of legs charged for public and shared transport.
func TripCount(items []ItineraryItem, areaChanges int) int {
	return max(len(items)-1, areaChanges)
}
