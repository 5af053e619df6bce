package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validParticipant() Participant {
	return Participant{
		Name:        "Ravi Kumar",
		Gender:      "Male",
		Age:         "34",
		Designation: "RFO",
		Phone:       "9876543210",
		Sports:      []string{"Chess", "", ""},
		Diet:        "Veg",
		BloodType:   "B+",
	}
}

func TestComputeAgeClass(t *testing.T) {
	cases := []struct {
		gender string
		age    string
		want   string
	}{
		{"Male", "53", "Men Senior Veteran"},
		{"Male", "52", "Men Veteran"},
		{"Male", "45", "Men Veteran"},
		{"Male", "44", "Men Open"},
		{"male", "60", "Men Senior Veteran"}, // case-insensitive
		{"Female", "40", "Women Veteran"},
		{"Female", "39", "Women Open"},
		{"female", "41", "Women Veteran"},
		{"Other", "70", "Open"},
		{"", "30", "Open"},
		{"Male", "", "Men Open"}, // unparseable age counts as 0
		{"Female", "not-a-number", "Women Open"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, ComputeAgeClass(tc.gender, tc.age), "gender=%q age=%q", tc.gender, tc.age)
	}
}

func TestDeriveAgeClasses(t *testing.T) {
	ps := []Participant{
		{Gender: "Male", Age: "53"},
		{Gender: "Female", Age: "39"},
	}
	DeriveAgeClasses(ps)
	assert.Equal(t, "Men Senior Veteran", ps[0].AgeClass)
	assert.Equal(t, "Women Open", ps[1].AgeClass)
}

func TestValidateParticipantsOK(t *testing.T) {
	require.NoError(t, ValidateParticipants([]Participant{validParticipant()}))
}

func TestValidateParticipantsFirstFailureWins(t *testing.T) {
	bad := validParticipant()
	bad.Name = "  "
	bad.Phone = "abc" // also invalid, but name is reported first
	err := ValidateParticipants([]Participant{bad})
	require.Error(t, err)
	assert.Equal(t, "Participant 1: name required.", err.Error())
}

func TestValidateParticipantsReportsIndex(t *testing.T) {
	second := validParticipant()
	second.Phone = "12345" // too short
	err := ValidateParticipants([]Participant{validParticipant(), second})
	require.Error(t, err)
	assert.Equal(t, "Participant 2: enter valid phone.", err.Error())
}

func TestValidateParticipantsFieldChecks(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Participant)
		want   string
	}{
		{"zero age", func(p *Participant) { p.Age = "0" }, "Participant 1: valid age required."},
		{"negative age", func(p *Participant) { p.Age = "-3" }, "Participant 1: valid age required."},
		{"non-numeric phone", func(p *Participant) { p.Phone = "98765x3210" }, "Participant 1: enter valid phone."},
		{"phone too long", func(p *Participant) { p.Phone = "1234567890123456" }, "Participant 1: enter valid phone."},
		{"no sports", func(p *Participant) { p.Sports = []string{"", "", ""} }, "Participant 1: select at least 1 sport."},
		{"duplicate sports", func(p *Participant) { p.Sports = []string{"Chess", "Chess", ""} }, "Participant 1: duplicate sports selected."},
		{"bad blood type", func(p *Participant) { p.BloodType = "C+" }, "Participant 1: select blood type."},
		{"empty blood type", func(p *Participant) { p.BloodType = "" }, "Participant 1: select blood type."},
		{"bad designation", func(p *Participant) { p.Designation = "Chief" }, "Participant 1: select designation."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validParticipant()
			tc.mutate(&p)
			err := ValidateParticipants([]Participant{p})
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())
		})
	}
}

func TestValidateDuplicateSportsEvenWhenRestValid(t *testing.T) {
	p := validParticipant()
	p.Sports = []string{"Chess", "Squash", "Chess"}
	err := ValidateParticipants([]Participant{p})
	require.Error(t, err)
	assert.Equal(t, "Participant 1: duplicate sports selected.", err.Error())
}

func TestValidateIsPure(t *testing.T) {
	p := validParticipant()
	require.NoError(t, ValidateParticipants([]Participant{p}))
	assert.Empty(t, p.AgeClass, "validation must not assign the age class")
}

func TestSelectedSportsTruncatesAndDropsBlanks(t *testing.T) {
	p := Participant{Sports: []string{"", "Chess", "Squash", "Football", "Quiz"}}
	assert.Equal(t, []string{"Chess", "Squash", "Football"}, selectedSports(p))
}
