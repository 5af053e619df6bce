package internal

const (
	TeamCount         = 13
	MaxPerTeam        = 80 // across all submissions, not just one
	MaxSportsPerEntry = 3
)

var Sports = []string{
	"100 m", "200 m", "400 m", "800 m", "1500 m", "5000 m", "4x100 m relay",
	"Long Jump", "High Jump", "Triple Jump", "Discuss Throw", "Shotput", "Javelin throw",
	"400 m walking", "800 m walking",
	"Squash", "Chess", "Carrom (Singles)", "Carrom (Doubles)",
	"Table Tennis (Singles)", "Table Tennis (Doubles)", "Table Tennis (Mixed Doubles)",
	"Badminton (Singles)", "Badminton (Doubles)", "Badminton (Mixed Doubles)",
	"Volleyball (Men)", "Kabaddi (Men)", "Basketball (Men)", "Tug of War", "Football", "Lawn Tennis", "Quiz",
}

var Designations = []string{
	"CCF and above",
	"CF",
	"DCF/DFO",
	"RFO",
	"Block Officer/Forest Guard",
	"Ministerial Staff",
	"Others",
}

var BloodTypes = []string{"A+", "A-", "B+", "B-", "AB+", "AB-", "O+", "O-"}
