package data

import (
	"time"

	"github.com/google/uuid"

	"docgrow-server/internal/models"
)

// DemoAppointments builds the data set the app boots with: a spread of past,
// same-day and future visits, including days busy enough to light up every
// calendar density tier.
func DemoAppointments(now time.Time) []models.Appointment {
	at := func(dayOffset, hour, min int) time.Time {
		d := now.AddDate(0, 0, dayOffset)
		return time.Date(d.Year(), d.Month(), d.Day(), hour, min, 0, 0, time.Local)
	}
	appt := func(name string, t time.Time, symptom string, status models.Status, notes string) models.Appointment {
		return models.Appointment{
			ID:          uuid.New().String(),
			PatientName: name,
			Time:        t,
			Symptom:     symptom,
			Status:      status,
			Notes:       models.Note{Text: notes},
		}
	}

	return []models.Appointment{
		// today
		appt("Jane Doe", at(0, 9, 0), "Fever", models.StatusConfirmed, ""),
		appt("Arjun Mehta", at(0, 11, 30), "Back pain", models.StatusPending, "Prefers morning slots"),
		appt("Maria Santos", at(0, 15, 0), "Follow-up", models.StatusConfirmed, ""),
		// recent past
		appt("Tom Becker", at(-1, 10, 0), "Cough", models.StatusConfirmed, "Prescribed rest"),
		appt("Alice Wong", at(-3, 14, 0), "Migraine", models.StatusCanceled, ""),
		appt("Jane Doe", at(-7, 9, 30), "Fever", models.StatusConfirmed, "Responded well to treatment"),
		// near future, sparse
		appt("Peter Ivanov", at(1, 10, 0), "Annual checkup", models.StatusConfirmed, ""),
		appt("Sofia Rossi", at(2, 13, 30), "Skin rash", models.StatusPending, ""),
		// a partial day
		appt("Liam O'Brien", at(5, 9, 0), "Knee pain", models.StatusConfirmed, ""),
		appt("Emma Novak", at(5, 10, 30), "Allergy", models.StatusConfirmed, ""),
		appt("Noah Kim", at(5, 12, 0), "Headache", models.StatusPending, ""),
		appt("Ava Haddad", at(5, 16, 0), "Fatigue", models.StatusConfirmed, ""),
		// a fully booked day
		appt("Lucas Silva", at(14, 8, 0), "Checkup", models.StatusConfirmed, ""),
		appt("Mia Tanaka", at(14, 9, 0), "Flu", models.StatusConfirmed, ""),
		appt("Oliver Smith", at(14, 10, 0), "Sore throat", models.StatusPending, ""),
		appt("Isabella Costa", at(14, 11, 0), "Checkup", models.StatusConfirmed, ""),
		appt("Ethan Wright", at(14, 14, 0), "Chest pain", models.StatusConfirmed, "Bring previous ECG"),
		appt("Amelia Dubois", at(14, 15, 0), "Dizziness", models.StatusPending, ""),
	}
}
