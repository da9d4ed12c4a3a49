package schedule

import (
	"sync"

	"docgrow-server/internal/models"
)

// Store owns the in-memory appointment collection. Reads hand out snapshot
// copies so the pure view functions never alias the live backing slice;
// writes go through the copy-on-write mutators under the lock.
type Store struct {
	mu    sync.RWMutex
	appts []models.Appointment
}

// NewStore creates a store pre-populated with seed, in seed order.
func NewStore(seed []models.Appointment) *Store {
	s := &Store{appts: make([]models.Appointment, len(seed))}
	copy(s.appts, seed)
	return s
}

// Snapshot returns a copy of the current collection in store order.
func (s *Store) Snapshot() []models.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Appointment, len(s.appts))
	copy(out, s.appts)
	return out
}

// Len reports the number of stored appointments.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.appts)
}

// Add prepends a newly created appointment.
func (s *Store) Add(a models.Appointment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appts = append([]models.Appointment{a}, s.appts...)
}

// Get looks up one appointment by id.
func (s *Store) Get(id string) (models.Appointment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lookup(id)
}

// SetStatus replaces the status of the appointment matching id and returns
// the updated record. ok is false when no record matches; the collection is
// then left as it was.
func (s *Store) SetStatus(id string, status models.Status) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appts = UpdateStatus(s.appts, id, status)
	return s.lookup(id)
}

// SetNotes replaces the notes of the appointment matching id, marking them
// reviewed, and returns the updated record. ok is false when no record
// matches.
func (s *Store) SetNotes(id, text string) (models.Appointment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.appts = UpdateNotes(s.appts, id, text)
	return s.lookup(id)
}

// lookup must be called with the lock held.
func (s *Store) lookup(id string) (models.Appointment, bool) {
	for _, a := range s.appts {
		if a.ID == id {
			return a, true
		}
	}
	return models.Appointment{}, false
}
