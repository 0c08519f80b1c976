package planner

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var rupiahPrinter = message.NewPrinter(language.Indonesian)

// FormatRupiah renders an amount with Indonesian grouping, e.g. "Rp 50.000".
func FormatRupiah(amount int64) string {
	return rupiahPrinter.Sprintf("Rp %d", amount)
}

// FormatClock renders minutes after midnight as "HH:MM", wrapping past 24h.
func FormatClock(minutes int) string {
	minutes = ((minutes % minutesPerDay) + minutesPerDay) % minutesPerDay
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatDuration renders a minute count like "1 hr 30 min".
func FormatDuration(minutes int) string {
	h, m := minutes/60, minutes%60
	switch {
	case h == 0:
		return fmt.Sprintf("%d min", m)
	case m == 0:
		return fmt.Sprintf("%d hr", h)
	default:
		return fmt.Sprintf("%d hr %d min", h, m)
	}
}

// TransportNote is the hint appended when the next stop is in another area.
func TransportNote(method TransportMethod, to Area) string {
	switch method {
	case TransportPublic:
		return fmt.Sprintf("Take public transit to %s.", to.Label())
	case TransportRideSharing:
		return fmt.Sprintf("Order a Gojek/Grab ride to %s.", to.Label())
	default:
		return fmt.Sprintf("Use your private vehicle to %s.", to.Label())
	}
}

// Render fills the display fields of every item in place.
func Render(items []ItineraryItem, method TransportMethod) {
	for i := range items {
		item := &items[i]
		item.Time = FormatClock(item.StartMinute)
		item.Duration = FormatDuration(item.DurationMinutes)
		item.Activity = activityLabel(*item)
		item.Notes = notes(*item, method)
	}
}

func activityLabel(item ItineraryItem) string {
	withPlace := func(base string) string {
		if item.Label == "" {
			return base
		}
		return base + " - " + item.Label
	}
	switch item.Kind {
	case SlotBreakfast:
		return withPlace("🍳 Breakfast")
	case SlotLunch:
		return withPlace("🍜 Lunch")
	case SlotDinner:
		return withPlace("🍽️ Dinner")
	case SlotSnack:
		return "☕ Snack Break"
	case SlotFreeTime:
		return "🛍️ Free Time for Shopping or Relaxing"
	}
	if item.DestinationID == "" {
		return fmt.Sprintf("%s Visit to %s", item.Category.Emoji(), item.Label)
	}
	return fmt.Sprintf("%s %s - %s", item.Category.Emoji(), firstNonEmpty(item.CategoryName, string(item.Category)), item.Label)
}

func notes(item ItineraryItem, method TransportMethod) string {
	area := item.Area.Label()
	var base string
	switch item.Phase {
	case PhaseBreakfast:
		base = "Start the day with breakfast in " + area
	case PhaseMorning:
		base = "Morning activity" + continued(item) + " in " + area
	case PhaseMorningSnack:
		base = "Short coffee or tea break before lunch"
	case PhaseLunch:
		base = "Lunch break to recharge in " + area
	case PhaseAfternoon:
		base = "Afternoon activity" + continued(item) + " in " + area
	case PhaseAfternoonSnack:
		base = "Afternoon coffee or tea break"
	case PhaseEvening:
		base = "Early evening activity in " + area
	case PhaseDinner:
		base = "Dinner to close the trip in " + area
	case PhaseNight:
		base = "Night activity to end the day in " + area
	default:
		base = defaultNote(item, area)
	}

	var b strings.Builder
	b.WriteString(base)
	if item.TransitMinutes > 0 {
		fmt.Fprintf(&b, " (%d min travel)", item.TransitMinutes)
	}
	if item.MoveTo != "" {
		b.WriteString(". ")
		b.WriteString(TransportNote(method, item.MoveTo))
	}
	return b.String()
}

func defaultNote(item ItineraryItem, area string) string {
	switch item.Kind {
	case SlotLunch:
		return "Lunch and local food in " + area
	case SlotDinner:
		return "Dinner to close the trip in " + area
	case SlotFreeTime:
		return "Time for souvenir shopping or relaxing"
	}
	if item.Category == CategoryShopping {
		return "Explore a shopping centre or traditional market in " + area
	}
	return "Start the day exploring a museum in " + area
}

func continued(item ItineraryItem) string {
	if item.Continued {
		return " (continued)"
	}
	return ""
}

// TripTitle is e.g. "Jakarta Trip - Full Day (09:00 - 19:00)".
func TripTitle(duration Duration, start, end int) string {
	name := "Full Day"
	switch duration {
	case DurationHalfDay:
		name = "Half Day"
	case DurationWeekend:
		name = "Weekend"
	}
	return fmt.Sprintf("Jakarta Trip - %s (%s - %s)", name, FormatClock(start), FormatClock(end))
}
