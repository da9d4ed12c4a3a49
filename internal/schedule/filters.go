package schedule

import (
	"sort"
	"strings"
	"time"

	"docgrow-server/internal/models"
)

// Window selects appointments relative to a reference calendar day.
type Window string

const (
	WindowToday    Window = "today"
	WindowUpcoming Window = "upcoming"
	WindowPast     Window = "past"
)

// ParseWindow maps a raw query value onto a Window.
func ParseWindow(raw string) (Window, bool) {
	switch Window(raw) {
	case WindowToday, WindowUpcoming, WindowPast:
		return Window(raw), true
	}
	return "", false
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Local().Date()
	by, bm, bd := b.Local().Date()
	return ay == by && am == bm && ad == bd
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Local().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// ByDay returns the appointments falling on the same local calendar day as
// target, earliest first.
func ByDay(appts []models.Appointment, target time.Time) []models.Appointment {
	var out []models.Appointment
	for _, a := range appts {
		if sameDay(a.Time, target) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	return out
}

// ByWindow filters by calendar-day position relative to the reference day,
// keeping store order.
func ByWindow(appts []models.Appointment, reference time.Time, window Window) []models.Appointment {
	ref := startOfDay(reference)
	var out []models.Appointment
	for _, a := range appts {
		day := startOfDay(a.Time)
		switch window {
		case WindowToday:
			if day.Equal(ref) {
				out = append(out, a)
			}
		case WindowUpcoming:
			if day.After(ref) {
				out = append(out, a)
			}
		case WindowPast:
			if day.Before(ref) {
				out = append(out, a)
			}
		}
	}
	return out
}

// Search narrows appts to those whose patient name or symptom contains the
// query, case-insensitively. A blank query returns the input untouched.
func Search(appts []models.Appointment, query string) []models.Appointment {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return appts
	}
	var out []models.Appointment
	for _, a := range appts {
		if strings.Contains(strings.ToLower(a.PatientName), q) ||
			strings.Contains(strings.ToLower(a.Symptom), q) {
			out = append(out, a)
		}
	}
	return out
}

// TodaysCount counts appointments on the same local calendar day as now.
func TodaysCount(appts []models.Appointment, now time.Time) int {
	n := 0
	for _, a := range appts {
		if sameDay(a.Time, now) {
			n++
		}
	}
	return n
}

// DistinctPatients counts unique patient names by exact string equality.
// Different capitalizations count separately; merging them would risk
// conflating genuinely different patients.
func DistinctPatients(appts []models.Appointment) int {
	seen := make(map[string]struct{}, len(appts))
	for _, a := range appts {
		seen[a.PatientName] = struct{}{}
	}
	return len(seen)
}

// NextUpcoming returns up to limit appointments strictly after now, soonest
// first. A negative limit means no truncation.
func NextUpcoming(appts []models.Appointment, now time.Time, limit int) []models.Appointment {
	var out []models.Appointment
	for _, a := range appts {
		if a.Time.After(now) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Time.Before(out[j].Time) })
	if limit >= 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
