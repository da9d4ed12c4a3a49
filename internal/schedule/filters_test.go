package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docgrow-server/internal/models"
)

func TestByDaySortsAscending(t *testing.T) {
	target := localDate(2025, time.March, 10, 0, 0)
	appts := []models.Appointment{
		apptOn("late", localDate(2025, time.March, 10, 16, 0)),
		apptOn("other-day", localDate(2025, time.March, 11, 8, 0)),
		apptOn("early", localDate(2025, time.March, 10, 8, 30)),
		apptOn("noon", localDate(2025, time.March, 10, 12, 0)),
	}

	got := ByDay(appts, target)

	require.Len(t, got, 3)
	assert.Equal(t, "early", got[0].ID)
	assert.Equal(t, "noon", got[1].ID)
	assert.Equal(t, "late", got[2].ID)
}

func TestByDayEmptyWhenNoMatch(t *testing.T) {
	appts := []models.Appointment{apptOn("1", localDate(2025, time.March, 10, 9, 0))}
	assert.Empty(t, ByDay(appts, localDate(2025, time.March, 11, 9, 0)))
}

func TestByWindowCalendarDaySemantics(t *testing.T) {
	reference := localDate(2025, time.March, 10, 14, 0)
	appts := []models.Appointment{
		apptOn("today-early", localDate(2025, time.March, 10, 8, 0)),
		apptOn("today-late", localDate(2025, time.March, 10, 23, 30)),
		apptOn("tomorrow", localDate(2025, time.March, 11, 0, 30)),
		apptOn("yesterday", localDate(2025, time.March, 9, 23, 59)),
	}

	today := ByWindow(appts, reference, WindowToday)
	require.Len(t, today, 2)
	// earlier today is still "today", not "past"; later today is not "upcoming"
	assert.Equal(t, "today-early", today[0].ID)
	assert.Equal(t, "today-late", today[1].ID)

	upcoming := ByWindow(appts, reference, WindowUpcoming)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "tomorrow", upcoming[0].ID)

	past := ByWindow(appts, reference, WindowPast)
	require.Len(t, past, 1)
	assert.Equal(t, "yesterday", past[0].ID)
}

func TestByWindowKeepsStoreOrder(t *testing.T) {
	reference := localDate(2025, time.March, 10, 9, 0)
	appts := []models.Appointment{
		apptOn("b", localDate(2025, time.March, 12, 9, 0)),
		apptOn("a", localDate(2025, time.March, 11, 9, 0)),
	}

	got := ByWindow(appts, reference, WindowUpcoming)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, "a", got[1].ID)
}

func TestParseWindow(t *testing.T) {
	for _, valid := range []string{"today", "upcoming", "past"} {
		w, ok := ParseWindow(valid)
		assert.True(t, ok)
		assert.Equal(t, Window(valid), w)
	}
	_, ok := ParseWindow("tomorrow")
	assert.False(t, ok)
}

func TestSearchEmptyQueryIsIdentity(t *testing.T) {
	appts := []models.Appointment{
		apptOn("1", localDate(2025, time.March, 10, 9, 0)),
		apptOn("2", localDate(2025, time.March, 11, 9, 0)),
	}

	assert.Equal(t, appts, Search(appts, ""))
	assert.Equal(t, appts, Search(appts, "   "))
}

func TestSearchMatchesNameOrSymptomCaseInsensitive(t *testing.T) {
	appts := []models.Appointment{
		{ID: "1", PatientName: "Jane Doe", Symptom: "fever"},
		{ID: "2", PatientName: "Amit Shah", Symptom: "Persistent Cough"},
		{ID: "3", PatientName: "Maria Santos", Symptom: "back pain"},
	}

	byName := Search(appts, "JANE")
	require.Len(t, byName, 1)
	assert.Equal(t, "1", byName[0].ID)

	bySymptom := Search(appts, "cough")
	require.Len(t, bySymptom, 1)
	assert.Equal(t, "2", bySymptom[0].ID)

	assert.Empty(t, Search(appts, "headache"))
}

func TestSearchComposesWithWindow(t *testing.T) {
	reference := localDate(2025, time.March, 10, 9, 0)
	appts := []models.Appointment{
		{ID: "1", PatientName: "Jane Doe", Symptom: "fever", Time: localDate(2025, time.March, 10, 9, 0)},
		{ID: "2", PatientName: "Jane Doe", Symptom: "fever", Time: localDate(2025, time.March, 12, 9, 0)},
	}

	got := Search(ByWindow(appts, reference, WindowToday), "fever")
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func TestTodaysCount(t *testing.T) {
	now := localDate(2025, time.March, 10, 12, 0)
	appts := []models.Appointment{
		apptOn("1", localDate(2025, time.March, 10, 9, 0)),
		apptOn("2", localDate(2025, time.March, 10, 18, 0)),
		apptOn("3", localDate(2025, time.March, 11, 9, 0)),
	}

	assert.Equal(t, 2, TodaysCount(appts, now))
	assert.Equal(t, 0, TodaysCount(nil, now))
}

func TestDistinctPatientsExactEquality(t *testing.T) {
	appts := []models.Appointment{
		{ID: "1", PatientName: "Jane Doe"},
		{ID: "2", PatientName: "Jane Doe"},
		{ID: "3", PatientName: "jane doe"},
	}

	// exact string equality: differing capitalization counts as two patients
	assert.Equal(t, 2, DistinctPatients(appts))
}

func TestNextUpcomingSortsAndTruncates(t *testing.T) {
	now := localDate(2025, time.March, 10, 12, 0)
	appts := []models.Appointment{
		apptOn("far", localDate(2025, time.March, 20, 9, 0)),
		apptOn("past", localDate(2025, time.March, 9, 9, 0)),
		apptOn("soon", localDate(2025, time.March, 10, 14, 0)),
		apptOn("mid", localDate(2025, time.March, 12, 9, 0)),
	}

	got := NextUpcoming(appts, now, 3)
	require.Len(t, got, 3)
	assert.Equal(t, "soon", got[0].ID)
	assert.Equal(t, "mid", got[1].ID)
	assert.Equal(t, "far", got[2].ID)

	next := NextUpcoming(appts, now, 1)
	require.Len(t, next, 1)
	assert.Equal(t, "soon", next[0].ID)
}

func TestNextUpcomingStrictlyAfterNow(t *testing.T) {
	now := localDate(2025, time.March, 10, 9, 0)
	appts := []models.Appointment{apptOn("exact", now)}

	assert.Empty(t, NextUpcoming(appts, now, 3))
}

// Scenario from the product brief: two visits by the same patient today.
func TestSameDaySamePatientScenario(t *testing.T) {
	today := localDate(2025, time.March, 10, 0, 0)
	appts := []models.Appointment{
		{ID: "1", PatientName: "Jane Doe", Symptom: "fever", Time: localDate(2025, time.March, 10, 9, 0), Status: models.StatusConfirmed},
		{ID: "2", PatientName: "Jane Doe", Symptom: "cough", Time: localDate(2025, time.March, 10, 10, 0), Status: models.StatusPending},
	}

	assert.Equal(t, 1, DistinctPatients(appts))

	windowed := ByWindow(appts, today, WindowToday)
	require.Len(t, windowed, 2)
	assert.Equal(t, "1", windowed[0].ID)
	assert.Equal(t, "2", windowed[1].ID)
}
