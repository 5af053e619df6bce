package internal

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var phoneRe = regexp.MustCompile(`^[0-9]{6,15}$`)

// ComputeAgeClass derives the seeding category from gender and age.
// Unparseable ages count as 0, unknown genders fall into the open class.
func ComputeAgeClass(gender, age string) string {
	a, _ := strconv.ParseFloat(strings.TrimSpace(age), 64)
	switch strings.ToLower(gender) {
	case "male":
		if a >= 53 {
			return "Men Senior Veteran"
		}
		if a >= 45 {
			return "Men Veteran"
		}
		return "Men Open"
	case "female":
		if a >= 40 {
			return "Women Veteran"
		}
		return "Women Open"
	}
	return "Open"
}

// DeriveAgeClasses is the explicit derivation step run before validation,
// so ValidateParticipants itself stays a pure check.
func DeriveAgeClasses(ps []Participant) {
	for i := range ps {
		ps[i].AgeClass = ComputeAgeClass(ps[i].Gender, ps[i].Age)
	}
}

// selectedSports drops blank slots and truncates to the per-entry limit.
func selectedSports(p Participant) []string {
	out := []string{}
	for _, s := range p.Sports {
		if s == "" {
			continue
		}
		out = append(out, s)
		if len(out) == MaxSportsPerEntry {
			break
		}
	}
	return out
}

// ValidateParticipants checks each participant in order and stops at the
// first failure. The message names the 1-based participant index.
func ValidateParticipants(ps []Participant) error {
	for i, p := range ps {
		n := i + 1
		if strings.TrimSpace(p.Name) == "" {
			return fmt.Errorf("Participant %d: name required.", n)
		}
		if age, err := strconv.ParseFloat(strings.TrimSpace(p.Age), 64); err != nil || age <= 0 {
			return fmt.Errorf("Participant %d: valid age required.", n)
		}
		if !phoneRe.MatchString(strings.TrimSpace(p.Phone)) {
			return fmt.Errorf("Participant %d: enter valid phone.", n)
		}
		sel := selectedSports(p)
		if len(sel) == 0 {
			return fmt.Errorf("Participant %d: select at least 1 sport.", n)
		}
		seen := map[string]bool{}
		for _, s := range sel {
			if seen[s] {
				return fmt.Errorf("Participant %d: duplicate sports selected.", n)
			}
			seen[s] = true
		}
		if !inList(BloodTypes, p.BloodType) {
			return fmt.Errorf("Participant %d: select blood type.", n)
		}
		if !inList(Designations, p.Designation) {
			return fmt.Errorf("Participant %d: select designation.", n)
		}
	}
	return nil
}
