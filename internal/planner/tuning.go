package planner

import (
	"errors"
	"fmt"
)

// StyleTiming sizes every slot for one travel style, in minutes.
type StyleTiming struct {
	ActivityMinutes int            `mapstructure:"activity_minutes" yaml:"activity_minutes"`
	TransitPrivate  int            `mapstructure:"transit_private" yaml:"transit_private"`
	TransitOther    int            `mapstructure:"transit_other" yaml:"transit_other"`
	MealMinutes     int            `mapstructure:"meal_minutes" yaml:"meal_minutes"`
	ActivityCap     int            `mapstructure:"activity_cap" yaml:"activity_cap"`
	Targets         DurationCounts `mapstructure:"targets" yaml:"targets"`
}

// DurationCounts holds one value per trip duration class.
type DurationCounts struct {
	HalfDay int `mapstructure:"half_day" yaml:"half_day"`
	FullDay int `mapstructure:"full_day" yaml:"full_day"`
	Weekend int `mapstructure:"weekend" yaml:"weekend"`
}

func (d DurationCounts) For(duration Duration) int {
	switch duration {
	case DurationHalfDay:
		return d.HalfDay
	case DurationWeekend:
		return d.Weekend
	default:
		return d.FullDay
	}
}

type StyleTable struct {
	Relaxed   StyleTiming `mapstructure:"relaxed" yaml:"relaxed"`
	Balanced  StyleTiming `mapstructure:"balanced" yaml:"balanced"`
	Intensive StyleTiming `mapstructure:"intensive" yaml:"intensive"`
}

func (s StyleTable) For(style TravelStyle) StyleTiming {
	switch style {
	case StyleRelaxed:
		return s.Relaxed
	case StyleIntensive:
		return s.Intensive
	default:
		return s.Balanced
	}
}

// MealWindow is a meal's acceptable start range with its ideal start.
type MealWindow struct {
	Start  int `mapstructure:"start" yaml:"start"`
	Target int `mapstructure:"target" yaml:"target"`
	End    int `mapstructure:"end" yaml:"end"`
}

func (w MealWindow) contains(clock int) bool {
	return clock >= w.Start && clock <= w.End
}

// PriceRange is a low/high Rupiah pair.
type PriceRange struct {
	Low  int64 `mapstructure:"low" yaml:"low"`
	High int64 `mapstructure:"high" yaml:"high"`
}

// TransportRate prices one transport method. Units are parking stops for
// private vehicles and trips for everything else.
type TransportRate struct {
	Multiplier    float64    `mapstructure:"multiplier" yaml:"multiplier"`
	Base          PriceRange `mapstructure:"base" yaml:"base"`
	PerUnit       PriceRange `mapstructure:"per_unit" yaml:"per_unit"`
	MinUnits      int        `mapstructure:"min_units" yaml:"min_units"`
	PerAreaChange PriceRange `mapstructure:"per_area_change" yaml:"per_area_change"`
}

type TransportTable struct {
	Private     TransportRate `mapstructure:"private" yaml:"private"`
	Public      TransportRate `mapstructure:"public" yaml:"public"`
	RideSharing TransportRate `mapstructure:"ride_sharing" yaml:"ride_sharing"`
}

func (t TransportTable) For(method TransportMethod) TransportRate {
	switch method {
	case TransportPublic:
		return t.Public
	case TransportRideSharing:
		return t.RideSharing
	default:
		return t.Private
	}
}

// MealRate prices placeholder meals for one meal preference.
type MealRate struct {
	Breakfast PriceRange `mapstructure:"breakfast" yaml:"breakfast"`
	Lunch     PriceRange `mapstructure:"lunch" yaml:"lunch"`
	Dinner    PriceRange `mapstructure:"dinner" yaml:"dinner"`
	Snack     PriceRange `mapstructure:"snack" yaml:"snack"`
}

type MealTable struct {
	Local         MealRate `mapstructure:"local" yaml:"local"`
	International MealRate `mapstructure:"international" yaml:"international"`
	Both          MealRate `mapstructure:"both" yaml:"both"`
}

func (m MealTable) For(pref MealPreference) MealRate {
	switch pref {
	case MealLocal:
		return m.Local
	case MealInternational:
		return m.International
	default:
		return m.Both
	}
}

// BudgetTuning holds the estimator constants.
type BudgetTuning struct {
	ItemBuffer     float64        `mapstructure:"item_buffer" yaml:"item_buffer"`
	FloorLow       int64          `mapstructure:"floor_low" yaml:"floor_low"`
	HighFloorRatio float64        `mapstructure:"high_floor_ratio" yaml:"high_floor_ratio"`
	Incidentals    PriceRange     `mapstructure:"incidentals" yaml:"incidentals"`
	Transport      TransportTable `mapstructure:"transport" yaml:"transport"`
	Meals          MealTable      `mapstructure:"meals" yaml:"meals"`
}

// TierBounds splits destinations into low/medium/high price tiers.
type TierBounds struct {
	LowBelow  int64 `mapstructure:"low_below" yaml:"low_below"`
	HighAbove int64 `mapstructure:"high_above" yaml:"high_above"`
}

// Gaps are the slack rules the scheduler applies around meals, in minutes.
type Gaps struct {
	// PreLunchSlack: no morning filler once lunch is this close.
	PreLunchSlack       int `mapstructure:"pre_lunch_slack" yaml:"pre_lunch_slack"`
	MorningSnackAfter   int `mapstructure:"morning_snack_after" yaml:"morning_snack_after"`
	MorningSnackBuffer  int `mapstructure:"morning_snack_buffer" yaml:"morning_snack_buffer"`
	MinMorningBuffer    int `mapstructure:"min_morning_buffer" yaml:"min_morning_buffer"`
	MorningPlainBuffer  int `mapstructure:"morning_plain_buffer" yaml:"morning_plain_buffer"`
	AfternoonSnackLead  int `mapstructure:"afternoon_snack_lead" yaml:"afternoon_snack_lead"`
	DinnerBufferLead    int `mapstructure:"dinner_buffer_lead" yaml:"dinner_buffer_lead"`
	DinnerBuffer        int `mapstructure:"dinner_buffer" yaml:"dinner_buffer"`
	FinalActivityMargin int `mapstructure:"final_activity_margin" yaml:"final_activity_margin"`
	FreeTimeOffset      int `mapstructure:"free_time_offset" yaml:"free_time_offset"`
	FreeTimeMinutes     int `mapstructure:"free_time_minutes" yaml:"free_time_minutes"`
}

func (g Gaps) negative() bool {
	for _, v := range []int{
		g.PreLunchSlack, g.MorningSnackAfter, g.MorningSnackBuffer, g.MinMorningBuffer,
		g.MorningPlainBuffer, g.AfternoonSnackLead, g.DinnerBufferLead, g.DinnerBuffer,
		g.FinalActivityMargin, g.FreeTimeOffset,
	} {
		if v < 0 {
			return true
		}
	}
	return false
}

// Tuning carries every timing and pricing constant the planner uses.
type Tuning struct {
	Styles            StyleTable     `mapstructure:"styles" yaml:"styles"`
	DurationHours     DurationCounts `mapstructure:"duration_hours" yaml:"duration_hours"`
	AreaChangePenalty []int          `mapstructure:"area_change_penalty" yaml:"area_change_penalty"`
	ActivityBonus     int            `mapstructure:"activity_bonus" yaml:"activity_bonus"`
	BreakfastBefore   int            `mapstructure:"breakfast_before" yaml:"breakfast_before"`
	Lunch             MealWindow     `mapstructure:"lunch" yaml:"lunch"`
	Dinner            MealWindow     `mapstructure:"dinner" yaml:"dinner"`
	MaxNudge          int            `mapstructure:"max_nudge" yaml:"max_nudge"`
	SnackMinutes      int            `mapstructure:"snack_minutes" yaml:"snack_minutes"`
	AfternoonSnackAt  int            `mapstructure:"afternoon_snack_at" yaml:"afternoon_snack_at"`
	MinFinalActivity  int            `mapstructure:"min_final_activity" yaml:"min_final_activity"`
	Gaps              Gaps           `mapstructure:"gaps" yaml:"gaps"`
	BudgetTiers       TierBounds     `mapstructure:"budget_tiers" yaml:"budget_tiers"`
	Budget            BudgetTuning   `mapstructure:"budget" yaml:"budget"`
}

// DefaultTuning returns the stock constants.
func DefaultTuning() Tuning {
	return Tuning{
		Styles: StyleTable{
			Relaxed: StyleTiming{
				ActivityMinutes: 120, TransitPrivate: 35, TransitOther: 45, MealMinutes: 90, ActivityCap: 1,
				Targets: DurationCounts{HalfDay: 2, FullDay: 3, Weekend: 5},
			},
			Balanced: StyleTiming{
				ActivityMinutes: 90, TransitPrivate: 25, TransitOther: 35, MealMinutes: 60, ActivityCap: 2,
				Targets: DurationCounts{HalfDay: 3, FullDay: 4, Weekend: 8},
			},
			Intensive: StyleTiming{
				ActivityMinutes: 60, TransitPrivate: 15, TransitOther: 25, MealMinutes: 45, ActivityCap: 3,
				Targets: DurationCounts{HalfDay: 4, FullDay: 6, Weekend: 10},
			},
		},
		DurationHours:     DurationCounts{HalfDay: 5, FullDay: 10, Weekend: 20},
		AreaChangePenalty: []int{0, 10, 20, 30},
		ActivityBonus:     30,
		BreakfastBefore:   9 * 60,
		Lunch:             MealWindow{Start: 11 * 60, Target: 12 * 60, End: 14*60 + 30},
		Dinner:            MealWindow{Start: 17 * 60, Target: 18 * 60, End: 20*60 + 30},
		MaxNudge:          30,
		SnackMinutes:      30,
		AfternoonSnackAt:  15 * 60,
		MinFinalActivity:  45,
		BudgetTiers:       TierBounds{LowBelow: 100000, HighAbove: 300000},
		Gaps: Gaps{
			PreLunchSlack:       30,
			MorningSnackAfter:   120,
			MorningSnackBuffer:  45,
			MinMorningBuffer:    15,
			MorningPlainBuffer:  60,
			AfternoonSnackLead:  45,
			DinnerBufferLead:    30,
			DinnerBuffer:        60,
			FinalActivityMargin: 15,
			FreeTimeOffset:      90,
			FreeTimeMinutes:     120,
		},
		Budget: BudgetTuning{
			ItemBuffer:     1.1,
			FloorLow:       150000,
			HighFloorRatio: 1.2,
			Incidentals:    PriceRange{Low: 20000, High: 50000},
			Transport: TransportTable{
				Private: TransportRate{
					Multiplier: 1.0, Base: PriceRange{15000, 30000}, PerUnit: PriceRange{10000, 15000},
					MinUnits: 1, PerAreaChange: PriceRange{15000, 25000},
				},
				Public: TransportRate{
					Multiplier: 1.5, PerUnit: PriceRange{5000, 10000},
					MinUnits: 2, PerAreaChange: PriceRange{8000, 15000},
				},
				RideSharing: TransportRate{
					Multiplier: 1.2, PerUnit: PriceRange{20000, 35000},
					MinUnits: 2, PerAreaChange: PriceRange{25000, 40000},
				},
			},
			Meals: MealTable{
				Local: MealRate{
					Breakfast: PriceRange{15000, 25000}, Lunch: PriceRange{25000, 35000},
					Dinner: PriceRange{35000, 50000}, Snack: PriceRange{10000, 15000},
				},
				International: MealRate{
					Breakfast: PriceRange{25000, 40000}, Lunch: PriceRange{40000, 60000},
					Dinner: PriceRange{60000, 80000}, Snack: PriceRange{15000, 25000},
				},
				Both: MealRate{
					Breakfast: PriceRange{20000, 30000}, Lunch: PriceRange{30000, 45000},
					Dinner: PriceRange{45000, 65000}, Snack: PriceRange{12000, 20000},
				},
			},
		},
	}
}

// Validate rejects tables the scheduler cannot run on.
func (t Tuning) Validate() error {
	styles := []struct {
		name   string
		timing StyleTiming
	}{
		{"relaxed", t.Styles.Relaxed},
		{"balanced", t.Styles.Balanced},
		{"intensive", t.Styles.Intensive},
	}
	for _, s := range styles {
		if s.timing.ActivityMinutes <= 0 || s.timing.MealMinutes <= 0 {
			return fmt.Errorf("style %s: activity and meal minutes must be positive", s.name)
		}
		if s.timing.TransitPrivate < 0 || s.timing.TransitOther < 0 || s.timing.ActivityCap < 0 {
			return fmt.Errorf("style %s: transit and cap must not be negative", s.name)
		}
	}
	if t.DurationHours.HalfDay <= 0 || t.DurationHours.FullDay <= 0 || t.DurationHours.Weekend <= 0 {
		return errors.New("duration hours must be positive")
	}
	if len(t.AreaChangePenalty) == 0 {
		return errors.New("area change penalty table is empty")
	}
	for _, w := range []MealWindow{t.Lunch, t.Dinner} {
		if w.Start > w.Target || w.Target > w.End {
			return fmt.Errorf("meal window %d-%d-%d is not ordered", w.Start, w.Target, w.End)
		}
	}
	if t.Lunch.End >= t.Dinner.Start {
		return errors.New("lunch window must close before dinner window opens")
	}
	if t.Gaps.negative() {
		return errors.New("gap minutes must not be negative")
	}
	if t.Gaps.FreeTimeMinutes <= 0 {
		return errors.New("free time minutes must be positive")
	}
	if t.BudgetTiers.LowBelow > t.BudgetTiers.HighAbove {
		return errors.New("budget tier bounds are inverted")
	}
	return nil
}

func (t Tuning) penalty(distance int) int {
	if distance < 0 {
		distance = 0
	}
	if distance >= len(t.AreaChangePenalty) {
		return t.AreaChangePenalty[len(t.AreaChangePenalty)-1]
	}
	return t.AreaChangePenalty[distance]
}
