package internal

import (
	"encoding/base64"
	"fmt"
	"sync"
)

// SessionState is the slot sheet a manager works on before submitting.
// It only lives in memory: submitted slots are cleared, abandoned ones die
// with the session. Handlers share one state per cookie, so duplicate tabs
// hit it concurrently; every handler-facing method takes the lock.
type SessionState struct {
	mu           sync.Mutex
	BoundTeam    int // team the credential is bound to, 0 for admins
	ActiveTeam   int // team selector in the UI
	Participants []Participant
}

func emptyParticipant() Participant {
	return Participant{
		Sports: make([]string, MaxSportsPerEntry),
		Diet:   "Veg",
	}
}

// AddSlots appends n empty slots and returns the new total.
func (s *SessionState) AddSlots(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		s.Participants = append(s.Participants, emptyParticipant())
	}
	return len(s.Participants)
}

func (s *SessionState) SetField(i int, field, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.Participants) {
		return fmt.Errorf("no participant %d", i+1)
	}
	p := &s.Participants[i]
	switch field {
	case "name":
		p.Name = value
	case "gender":
		p.Gender = value
	case "age":
		p.Age = value
	case "designation":
		p.Designation = value
	case "phone":
		p.Phone = value
	case "diet":
		p.Diet = value
	case "bloodType":
		p.BloodType = value
	default:
		return fmt.Errorf("unknown field %q", field)
	}
	return nil
}

// SetSport writes one sport selector slot. Duplicates are allowed at edit
// time and only caught by validation.
func (s *SessionState) SetSport(i, slot int, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.Participants) {
		return fmt.Errorf("no participant %d", i+1)
	}
	if slot < 0 || slot >= MaxSportsPerEntry {
		return fmt.Errorf("sport slot out of range")
	}
	s.Participants[i].Sports[slot] = value
	return nil
}

func (s *SessionState) SetPhoto(i int, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.Participants) {
		return fmt.Errorf("no participant %d", i+1)
	}
	s.Participants[i].PhotoBase64 = base64.StdEncoding.EncodeToString(data)
	s.Participants[i].PhotoName = name
	return nil
}

func (s *SessionState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Participants = nil
}

func (s *SessionState) SelectTeam(n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ActiveTeam = n
}

func (s *SessionState) Teams() (bound, active int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.BoundTeam, s.ActiveTeam
}

// Roster returns a copy of the current slots so callers can read and
// serialize outside the lock.
func (s *SessionState) Roster() []Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Participants == nil {
		return nil
	}
	out := make([]Participant, len(s.Participants))
	copy(out, s.Participants)
	return out
}

// CheckRoster runs the validate-all preconditions under the session lock:
// correct team selected, at least one slot, explicit age-class derivation,
// then the pure field validation.
func (s *SessionState) CheckRoster() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ActiveTeam != s.BoundTeam {
		return fmt.Sprintf("You are manager for Team %d. Switch to Team %d.", s.BoundTeam, s.ActiveTeam), false
	}
	if len(s.Participants) == 0 {
		return "No participant slots created.", false
	}
	DeriveAgeClasses(s.Participants)
	if err := ValidateParticipants(s.Participants); err != nil {
		return err.Error(), false
	}
	return "", true
}

// SessionStore keeps per-session state in memory, keyed by the session id
// carried in the JWT.
type SessionStore struct {
	mu sync.Mutex
	m  map[string]*SessionState
}

func NewSessionStore() *SessionStore {
	return &SessionStore{m: map[string]*SessionState{}}
}

func (st *SessionStore) Create(sid string, boundTeam int) {
	st.mu.Lock()
	defer st.mu.Unlock()
	active := boundTeam
	if active == 0 {
		active = 1
	}
	st.m[sid] = &SessionState{BoundTeam: boundTeam, ActiveTeam: active}
}

// Get returns the state for sid, recreating an empty one if the server
// restarted under a still-valid cookie.
func (st *SessionStore) Get(sid string, boundTeam int) *SessionState {
	st.mu.Lock()
	defer st.mu.Unlock()
	s, ok := st.m[sid]
	if !ok {
		active := boundTeam
		if active == 0 {
			active = 1
		}
		s = &SessionState{BoundTeam: boundTeam, ActiveTeam: active}
		st.m[sid] = s
	}
	return s
}

func (st *SessionStore) Drop(sid string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.m, sid)
}
