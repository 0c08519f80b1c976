package planner

import "math"

const (
	fallbackLocation = "Jakarta Pusat"
	snackLocation    = "Jakarta"
	snackPrice       = "Rp 15.000 - 30.000"
	breakfastPrice   = priceNotAvailable
	lunchPrice       = "Rp 25.000 - 50.000"
	dinnerPrice      = "Rp 35.000 - 75.000"
	museumPrice      = "Rp 20.000 - 50.000"
	variesPrice      = "Varies"

	// minutesPerDay caps the day: no slot runs past midnight.
	minutesPerDay = 24 * 60
)

// day is the scheduler's running state for one generation.
type day struct {
	tuning  Tuning
	timing  StyleTiming
	prefs   Preferences
	start   int
	end     int
	clock   int
	route   []Destination
	meals   []Destination
	used    map[string]bool
	current *Destination
	items   []ItineraryItem
	snacked bool
}

// Schedule walks a clock from the start time through the day, placing meals
// and activities from the pool. The pool's non-culinary part is routed with
// OptimizeRoute from startHint. Display fields are not rendered here.
func Schedule(pool []Destination, prefs Preferences, startHint Area, tuning Tuning) ([]ItineraryItem, error) {
	start, err := ParseClock(prefs.StartTime)
	if err != nil {
		return nil, err
	}
	d := &day{
		tuning: tuning,
		timing: tuning.Styles.For(prefs.TravelStyle),
		prefs:  prefs,
		start:  start,
		end:    EndMinute(start, prefs.Duration, tuning),
		clock:  start,
		used:   make(map[string]bool),
	}

	var regular []Destination
	for _, dest := range pool {
		if dest.Category == CategoryCulinary {
			d.meals = append(d.meals, dest)
		} else {
			regular = append(regular, dest)
		}
	}
	d.route = OptimizeRoute(regular, startHint)

	if len(pool) > 0 {
		d.simulate()
	}

	if len(d.items) == 0 {
		d.items = defaultDay(start)
	}
	if len(d.items) < 2 {
		free := freeTimeAfter(d.items[len(d.items)-1], tuning.Gaps)
		if fits(free.StartMinute, free.DurationMinutes) {
			d.items = append(d.items, free)
		} else {
			d.items = defaultDay(start)
		}
	}

	sortByStart(d.items)
	annotateMoves(d.items)
	return d.items, nil
}

// EndMinute is the trip's closing clock for the given start and duration.
func EndMinute(start int, duration Duration, tuning Tuning) int {
	return start + tuning.DurationHours.For(duration)*60
}

// fits reports whether a slot of length minutes starting at start ends by midnight.
func fits(start, length int) bool {
	return start+length <= minutesPerDay
}

func (d *day) simulate() {
	t := d.tuning
	g := t.Gaps
	activity := d.timing.ActivityMinutes

	if d.clock < t.BreakfastBefore {
		d.meal(SlotBreakfast, PhaseBreakfast, false)
	}

	d.activities(PhaseMorning, t.Lunch.Target-activity)

	if d.clock < t.Lunch.Target-g.PreLunchSlack {
		if d.clock > d.start+g.MorningSnackAfter {
			d.snack(PhaseMorningSnack)
			if buffer := min(t.Lunch.Target-d.clock, g.MorningSnackBuffer); buffer > g.MinMorningBuffer {
				d.clock += buffer
			}
		} else {
			d.clock += min(t.Lunch.Target-d.clock, g.MorningPlainBuffer)
		}
	}

	d.windowedMeal(SlotLunch, PhaseLunch, t.Lunch, t.Lunch.contains(d.clock))

	d.activities(PhaseAfternoon, t.Dinner.Target-activity)

	if !d.snacked && d.clock < t.Dinner.Target-g.AfternoonSnackLead && d.clock > t.AfternoonSnackAt {
		d.snack(PhaseAfternoonSnack)
	}

	if d.clock < t.Dinner.Target-activity {
		if next := d.nextStop(true); next != nil {
			d.visit(*next, PhaseEvening, activity, false)
		}
	}

	if d.clock < t.Dinner.Target-g.DinnerBufferLead {
		d.clock += min(t.Dinner.Target-d.clock, g.DinnerBuffer)
	}

	mealEnd := d.end - d.timing.MealMinutes
	if d.clock < mealEnd {
		d.windowedMeal(SlotDinner, PhaseDinner, t.Dinner, t.Dinner.contains(d.clock))
	}

	if d.clock < d.end-activity/2 {
		if next := d.nextStop(true); next != nil {
			transit := d.transitTo(*next)
			d.clock += transit
			length := min(activity, d.end-d.clock-g.FinalActivityMargin)
			if length >= t.MinFinalActivity && fits(d.clock, length) {
				d.push(*next, SlotActivity, PhaseNight, length, transit, false)
			}
		}
	}
}

// activities fills up to the style's cap, stopping once the clock reaches gate
// or the next visit would run past midnight.
func (d *day) activities(phase Phase, gate int) {
	for added := 0; added < d.timing.ActivityCap && d.clock < gate; added++ {
		next := d.nextStop(false)
		if next == nil {
			return
		}
		length := d.timing.ActivityMinutes
		if next.Category.activityBonus() {
			length += d.tuning.ActivityBonus
		}
		if !d.visit(*next, phase, length, added > 0) {
			return
		}
	}
}

// visit leaves the clock untouched when the stop does not fit before midnight.
func (d *day) visit(dest Destination, phase Phase, length int, continued bool) bool {
	transit := d.transitTo(dest)
	if !fits(d.clock+transit, length) {
		return false
	}
	d.clock += transit
	d.push(dest, SlotActivity, phase, length, transit, continued)
	d.clock += length
	return true
}

func (d *day) push(dest Destination, kind SlotKind, phase Phase, length, transit int, continued bool) {
	location := firstNonEmpty(dest.Location, defaultLocation)
	area := dest.Area
	if area == "" {
		area = ResolveArea(location)
	}
	d.items = append(d.items, ItineraryItem{
		Kind:            kind,
		Phase:           phase,
		DestinationID:   dest.ID,
		Label:           dest.Label,
		Category:        dest.Category,
		CategoryName:    dest.CategoryName,
		Price:           firstNonEmpty(dest.Price, priceNotAvailable),
		Location:        location,
		Area:            area,
		StartMinute:     d.clock,
		DurationMinutes: length,
		TransitMinutes:  transit,
		Continued:       continued,
	})
	d.used[dest.ID] = true
	stop := dest
	stop.Location, stop.Area = location, area
	d.current = &stop
}

// nextStop returns the first unused routed destination, preferring
// evening-friendly categories when asked.
func (d *day) nextStop(evening bool) *Destination {
	if evening {
		for i := range d.route {
			if !d.used[d.route[i].ID] && d.route[i].Category.eveningFriendly() {
				return &d.route[i]
			}
		}
	}
	for i := range d.route {
		if !d.used[d.route[i].ID] {
			return &d.route[i]
		}
	}
	return nil
}

// mealPlace picks an unused culinary destination, trying the current area
// first when sameArea is set.
func (d *day) mealPlace(sameArea bool) *Destination {
	if sameArea && d.current != nil {
		for i := range d.meals {
			if !d.used[d.meals[i].ID] && d.meals[i].Area == d.current.Area {
				return &d.meals[i]
			}
		}
	}
	for i := range d.meals {
		if !d.used[d.meals[i].ID] {
			return &d.meals[i]
		}
	}
	return nil
}

// windowedMeal nudges toward the ideal start when inside the window; outside
// it the meal is still placed, without the same-area preference.
func (d *day) windowedMeal(kind SlotKind, phase Phase, window MealWindow, inWindow bool) {
	if inWindow && d.clock < window.Target {
		d.clock += min(window.Target-d.clock, d.tuning.MaxNudge)
	}
	d.meal(kind, phase, inWindow)
}

func (d *day) meal(kind SlotKind, phase Phase, sameArea bool) {
	length := d.timing.MealMinutes
	place := d.mealPlace(sameArea)
	if place != nil {
		transit := d.transitTo(*place)
		if !fits(d.clock+transit, length) {
			return
		}
		d.clock += transit
		d.push(*place, kind, phase, length, transit, false)
		d.clock += length
		return
	}
	if !fits(d.clock, length) {
		return
	}

	location, area := fallbackLocation, AreaCentral
	if d.current != nil {
		location, area = d.current.Location, d.current.Area
	}
	d.items = append(d.items, ItineraryItem{
		Kind:            kind,
		Phase:           phase,
		Price:           placeholderMealPrice(kind),
		Location:        location,
		Area:            area,
		StartMinute:     d.clock,
		DurationMinutes: length,
	})
	d.clock += length
}

func (d *day) snack(phase Phase) {
	if !fits(d.clock, d.tuning.SnackMinutes) {
		return
	}
	location, area := snackLocation, AreaCentral
	if d.current != nil {
		location, area = d.current.Location, d.current.Area
	}
	d.items = append(d.items, ItineraryItem{
		Kind:            SlotSnack,
		Phase:           phase,
		Price:           snackPrice,
		Location:        location,
		Area:            area,
		StartMinute:     d.clock,
		DurationMinutes: d.tuning.SnackMinutes,
	})
	d.clock += d.tuning.SnackMinutes
	d.snacked = true
}

// transitTo is zero until the day has a current stop.
func (d *day) transitTo(dest Destination) int {
	if d.current == nil {
		return 0
	}
	return TransitMinutes(d.current.Area, dest.Area, d.prefs, d.tuning)
}

// TransitMinutes is the travel time between two areas for the given style
// and transport method.
func TransitMinutes(from, to Area, prefs Preferences, tuning Tuning) int {
	timing := tuning.Styles.For(prefs.TravelStyle)
	base := timing.TransitOther
	if prefs.TransportMethod == TransportPrivate {
		base = timing.TransitPrivate
	}
	base += tuning.penalty(AreaDistance(from, to))
	multiplier := tuning.Budget.Transport.For(prefs.TransportMethod).Multiplier
	if multiplier <= 0 {
		multiplier = 1
	}
	return int(math.Round(float64(base) * multiplier))
}

func placeholderMealPrice(kind SlotKind) string {
	switch kind {
	case SlotBreakfast:
		return breakfastPrice
	case SlotDinner:
		return dinnerPrice
	default:
		return lunchPrice
	}
}

// defaultDay is the fixed museum, lunch, shopping, dinner plan used when
// nothing could be scheduled.
func defaultDay(start int) []ItineraryItem {
	lunchAt := min(start/60+3, 13) * 60
	central := func(item ItineraryItem) ItineraryItem {
		item.Phase = PhaseDefault
		item.Location = fallbackLocation
		item.Area = AreaCentral
		return item
	}
	return []ItineraryItem{
		central(ItineraryItem{
			Kind: SlotActivity, Label: "Museum Nasional", Category: CategoryHistory,
			CategoryName: string(CategoryHistory), Price: museumPrice,
			StartMinute: start, DurationMinutes: min(120, minutesPerDay-start),
		}),
		central(ItineraryItem{
			Kind: SlotLunch, Price: lunchPrice,
			StartMinute: lunchAt, DurationMinutes: 60,
		}),
		central(ItineraryItem{
			Kind: SlotActivity, Label: "Mall or Traditional Market", Category: CategoryShopping,
			CategoryName: string(CategoryShopping), Price: variesPrice,
			StartMinute: lunchAt + 90, DurationMinutes: 120,
		}),
		central(ItineraryItem{
			Kind: SlotDinner, Price: dinnerPrice,
			StartMinute: 18*60 + 30, DurationMinutes: 90,
		}),
	}
}

func freeTimeAfter(last ItineraryItem, gaps Gaps) ItineraryItem {
	location := firstNonEmpty(last.Location, fallbackLocation)
	area := last.Area
	if area == "" {
		area = AreaCentral
	}
	return ItineraryItem{
		Kind:            SlotFreeTime,
		Phase:           PhaseDefault,
		Price:           variesPrice,
		Location:        location,
		Area:            area,
		StartMinute:     last.StartMinute + gaps.FreeTimeOffset,
		DurationMinutes: gaps.FreeTimeMinutes,
	}
}
