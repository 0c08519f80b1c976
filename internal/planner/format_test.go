package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatRupiah(t *testing.T) {
	assert.Equal(t, "Rp 0", FormatRupiah(0))
	assert.Equal(t, "Rp 15.000", FormatRupiah(15000))
	assert.Equal(t, "Rp 1.250.000", FormatRupiah(1250000))
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "09:00", FormatClock(540))
	assert.Equal(t, "00:15", FormatClock(24*60+15))
	assert.Equal(t, "23:59", FormatClock(1439))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45 min", FormatDuration(45))
	assert.Equal(t, "1 hr", FormatDuration(60))
	assert.Equal(t, "1 hr 30 min", FormatDuration(90))
	assert.Equal(t, "2 hr 30 min", FormatDuration(150))
}

func TestTripTitle(t *testing.T) {
	assert.Equal(t, "Jakarta Trip - Half Day (08:00 - 13:00)", TripTitle(DurationHalfDay, 480, 780))
	assert.Equal(t, "Jakarta Trip - Weekend (09:00 - 05:00)", TripTitle(DurationWeekend, 540, 540+20*60))
}

func TestTransportNote(t *testing.T) {
	assert.Equal(t, "Use your private vehicle to West Jakarta.", TransportNote(TransportPrivate, AreaWest))
	assert.Equal(t, "Take public transit to South Jakarta.", TransportNote(TransportPublic, AreaSouth))
	assert.Equal(t, "Order a Gojek/Grab ride to East Jakarta.", TransportNote(TransportRideSharing, AreaEast))
}

func TestRender_Labels(t *testing.T) {
	items := []ItineraryItem{
		{Kind: SlotActivity, Phase: PhaseMorning, DestinationID: "a", Label: "Ancol", Category: CategoryRecreation, CategoryName: "Rekreasi", Area: AreaNorth, StartMinute: 540, DurationMinutes: 120},
		{Kind: SlotActivity, Phase: PhaseMorning, Continued: true, DestinationID: "b", Label: "Sea World", Category: CategoryOther, CategoryName: "Aquarium", Area: AreaNorth, StartMinute: 685, DurationMinutes: 90, TransitMinutes: 25},
		{Kind: SlotBreakfast, Phase: PhaseBreakfast, Area: AreaCentral, StartMinute: 450, DurationMinutes: 60},
		{Kind: SlotFreeTime, Phase: PhaseDefault, Area: AreaCentral, StartMinute: 900, DurationMinutes: 120},
	}
	Render(items, TransportPrivate)

	assert.Equal(t, "🎡 Rekreasi - Ancol", items[0].Activity)
	assert.Equal(t, "Morning activity in North Jakarta", items[0].Notes)
	assert.Equal(t, "📍 Aquarium - Sea World", items[1].Activity)
	assert.Equal(t, "Morning activity (continued) in North Jakarta (25 min travel)", items[1].Notes)
	assert.Equal(t, "🍳 Breakfast", items[2].Activity)
	assert.Equal(t, "07:30", items[2].Time)
	assert.Equal(t, "🛍️ Free Time for Shopping or Relaxing", items[3].Activity)
	assert.Equal(t, "Time for souvenir shopping or relaxing", items[3].Notes)
}
