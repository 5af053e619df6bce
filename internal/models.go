package internal

type Participant struct {
	Name        string   `json:"name"`
	Gender      string   `json:"gender"` // Male|Female|Other or empty
	Age         string   `json:"age"`
	AgeClass    string   `json:"ageClass"` // derived, never user-entered
	Designation string   `json:"designation"`
	Phone       string   `json:"phone"`
	Sports      []string `json:"sports"`
	Diet        string   `json:"diet"` // Veg|Non-Veg
	BloodType   string   `json:"bloodType"`
	PhotoBase64 string   `json:"photoBase64"`
	PhotoName   string   `json:"photoName"`
}

type SubmitPayload struct {
	Team         string        `json:"team"`
	TeamNumber   int           `json:"teamNumber"`
	Manager      string        `json:"manager"`
	Timestamp    string        `json:"timestamp"`
	Participants []Participant `json:"participants"`
}

// Row is one record of the upstream export. The sheet schema is not fixed,
// so rows stay schemaless.
type Row map[string]any

type TeamTally struct {
	Team  string `json:"team"`
	Count int    `json:"count"`
}
