package internal

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
)

// slotIndex reads the 0-based participant index from the :i route param.
func slotIndex(c *gin.Context) int {
	i, err := strconv.Atoi(c.Param("i"))
	if err != nil {
		return -1
	}
	return i
}

// GET /api/catalog
// Fixed form vocabulary the frontend renders its selects from.
func Catalog() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"teams":        TeamCount,
			"maxPerTeam":   MaxPerTeam,
			"maxSports":    MaxSportsPerEntry,
			"sports":       Sports,
			"designations": Designations,
			"bloodTypes":   BloodTypes,
		})
	}
}

// ------------------- Manager workflow -------------------

// POST /api/team  {team}
func SelectTeam(sessions *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Team int `json:"team"`
		}
		if err := c.BindJSON(&req); err != nil || req.Team < 1 || req.Team > TeamCount {
			c.JSON(400, gin.H{"error": "bad team number"})
			return
		}
		st := sessions.Get(sid(c), team(c))
		st.SelectTeam(req.Team)
		c.JSON(200, gin.H{"ok": true, "team": req.Team})
	}
}

// GET /api/slots
func ListSlots(sessions *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := sessions.Get(sid(c), team(c))
		_, active := st.Teams()
		c.JSON(200, gin.H{"team": active, "participants": st.Roster()})
	}
}

// POST /api/slots  {count}
// Checks the remote count first so already-submitted players count against
// the cap. The check is advisory: concurrent sessions can still race past it.
func CreateSlots(sessions *SessionStore, store *ScriptStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := sessions.Get(sid(c), team(c))
		bound, active := st.Teams()
		if active != bound {
			c.JSON(400, gin.H{"error": fmt.Sprintf(
				"You are logged in as Team %d. Switch to Team %d to add slots.", bound, active)})
			return
		}

		var req struct {
			Count int `json:"count"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": "bad json"})
			return
		}
		want := clampInt(req.Count, 0, MaxPerTeam)

		current, err := store.TeamCount(c.Request.Context(), bound)
		if err != nil {
			c.JSON(502, gin.H{"error": "Unable to check team count: " + err.Error()})
			return
		}
		if current+want > MaxPerTeam {
			c.JSON(400, gin.H{"error": fmt.Sprintf(
				"Cannot add %d slots. Team already has %d players. Max allowed per team is %d.",
				want, current, MaxPerTeam)})
			return
		}

		total := st.AddSlots(want)
		c.JSON(200, gin.H{
			"ok":      true,
			"message": fmt.Sprintf("Created %d slots.", want),
			"total":   total,
		})
	}
}

// POST /api/participants/:i  {field, value}
func UpdateParticipant(sessions *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Field string `json:"field"`
			Value string `json:"value"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": "bad json"})
			return
		}
		st := sessions.Get(sid(c), team(c))
		if err := st.SetField(slotIndex(c), req.Field, req.Value); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"ok": true})
	}
}

// POST /api/participants/:i/sports  {slot, value}
func UpdateSport(sessions *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req struct {
			Slot  int    `json:"slot"`
			Value string `json:"value"`
		}
		if err := c.BindJSON(&req); err != nil {
			c.JSON(400, gin.H{"error": "bad json"})
			return
		}
		st := sessions.Get(sid(c), team(c))
		if err := st.SetSport(slotIndex(c), req.Slot, req.Value); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"ok": true})
	}
}

// POST /api/participants/:i/photo  (multipart, field "photo")
func UploadPhoto(sessions *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		fh, err := c.FormFile("photo")
		if err != nil {
			c.JSON(400, gin.H{"error": "photo file required"})
			return
		}
		f, err := fh.Open()
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		defer func() {
			_ = f.Close()
		}()
		data, err := io.ReadAll(f)
		if err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		st := sessions.Get(sid(c), team(c))
		if err := st.SetPhoto(slotIndex(c), fh.Filename, data); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}
		c.JSON(200, gin.H{"ok": true, "photoName": fh.Filename})
	}
}

// POST /api/validate
func ValidateAll(sessions *SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := sessions.Get(sid(c), team(c))
		if msg, ok := st.CheckRoster(); !ok {
			c.JSON(400, gin.H{"error": msg})
			return
		}
		c.JSON(200, gin.H{"ok": true})
	}
}

// POST /api/submit
func SubmitAll(sessions *SessionStore, store *ScriptStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := sessions.Get(sid(c), team(c))
		if msg, ok := st.CheckRoster(); !ok {
			c.JSON(400, gin.H{"error": msg})
			return
		}
		bound, _ := st.Teams()
		roster := st.Roster()

		// Re-check the remote count right before posting. Closes part of the
		// create/submit race window, not all of it.
		current, err := store.TeamCount(c.Request.Context(), bound)
		if err != nil {
			c.JSON(502, gin.H{"error": "Unable to verify current team count before submit: " + err.Error()})
			return
		}
		if current+len(roster) > MaxPerTeam {
			c.JSON(400, gin.H{"error": fmt.Sprintf(
				"Submitting %d would exceed team limit. Team currently has %d players. Max %d.",
				len(roster), current, MaxPerTeam)})
			return
		}

		payload := buildPayload(bound, username(c), roster)
		msg, err := store.Submit(c.Request.Context(), payload)
		if err != nil {
			// No rollback here: on a garbled success body the roster may
			// already be stored upstream even though we report failure.
			c.JSON(502, gin.H{"error": submitErrorMessage(err)})
			return
		}

		st.Clear()
		if msg == "" {
			msg = "Submitted successfully."
		}
		c.JSON(200, gin.H{"ok": true, "message": msg})
	}
}

func buildPayload(teamNum int, manager string, ps []Participant) SubmitPayload {
	out := make([]Participant, 0, len(ps))
	for _, p := range ps {
		p.Sports = selectedSports(p)
		if p.Diet == "" {
			p.Diet = "Veg"
		}
		p.AgeClass = ComputeAgeClass(p.Gender, p.Age)
		out = append(out, p)
	}
	return SubmitPayload{
		Team:         fmt.Sprintf("Team %d", teamNum),
		TeamNumber:   teamNum,
		Manager:      manager,
		Timestamp:    time.Now().UTC().Format(time.RFC3339),
		Participants: out,
	}
}

func submitErrorMessage(err error) string {
	var se *SubmitStatusError
	if errors.As(err, &se) {
		return fmt.Sprintf("Submission failed: server %d. See console.", se.Status)
	}
	if errors.Is(err, ErrInvalidResponse) {
		return "Invalid JSON response from server."
	}
	return "Submission failed: " + err.Error()
}
