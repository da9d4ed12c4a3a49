package schedule

import (
	"time"

	"docgrow-server/internal/models"
)

// dateKeyLayout formats a local calendar day as a fixed-width sortable key.
const dateKeyLayout = "2006-01-02"

// DateKey returns the local calendar-day aggregation key for t.
func DateKey(t time.Time) string {
	return t.Local().Format(dateKeyLayout)
}

// DayCounts maps each local calendar day carrying at least one appointment to
// the number of appointments on it. Days without appointments are absent from
// the map, never zero-valued.
func DayCounts(appts []models.Appointment) map[string]int {
	counts := make(map[string]int, len(appts))
	for _, a := range appts {
		counts[DateKey(a.Time)]++
	}
	return counts
}

// Tier classifies how booked a calendar day is.
type Tier string

const (
	TierAvailable   Tier = "available"
	TierPartial     Tier = "partial"
	TierFullyBooked Tier = "fully-booked"
)

// DayDensity pairs a tier with the light/dark color pair the calendar renders
// it with.
type DayDensity struct {
	Tier           Tier   `json:"tier"`
	BackgroundHint string `json:"backgroundHint"`
	TextHint       string `json:"textHint"`
}

// ClassifyDay buckets a day's appointment count: 0-2 available, 3-5 partial,
// 6 and up fully booked.
func ClassifyDay(count int) DayDensity {
	switch {
	case count >= 6:
		return DayDensity{Tier: TierFullyBooked, BackgroundHint: "#FECACA", TextHint: "#991B1B"}
	case count >= 3:
		return DayDensity{Tier: TierPartial, BackgroundHint: "#FEF3C7", TextHint: "#92400E"}
	default:
		return DayDensity{Tier: TierAvailable, BackgroundHint: "#DCFCE7", TextHint: "#065F46"}
	}
}

// DayMarker is the full per-day calendar payload: the appointment count plus
// its density classification.
type DayMarker struct {
	Count int `json:"count"`
	DayDensity
}

// DayMarkers joins DayCounts with their density classification.
func DayMarkers(appts []models.Appointment) map[string]DayMarker {
	counts := DayCounts(appts)
	markers := make(map[string]DayMarker, len(counts))
	for key, count := range counts {
		markers[key] = DayMarker{Count: count, DayDensity: ClassifyDay(count)}
	}
	return markers
}
