package models

import "time"

const (
	KindAlumni = "alumni"
	KindMentor = "mentor"
)

type Experience struct {
	Company     string `json:"company"`
	Position    string `json:"position"`
	Duration    string `json:"duration,omitempty"`
	Description string `json:"description,omitempty"`
}

type Alumni struct {
	ID                       string       `json:"id"`
	UserID                   string       `json:"userId,omitempty"`
	Name                     string       `json:"name"`
	Email                    string       `json:"email"`
	GradYear                 int          `json:"gradYear"`
	Degree                   string       `json:"degree"`
	Company                  string       `json:"company"`
	Position                 string       `json:"position,omitempty"`
	Location                 string       `json:"location,omitempty"`
	Industry                 string       `json:"industry"`
	Skills                   []string     `json:"skills"`
	Bio                      string       `json:"bio"`
	IsAvailableForMentorship bool         `json:"isAvailableForMentorship"`
	Experience               []Experience `json:"experience,omitempty"`
	Achievements             []string     `json:"achievements,omitempty"`
	Interests                []string     `json:"interests,omitempty"`
	JoinedDate               string       `json:"joinedDate,omitempty"`
	LastActive               string       `json:"lastActive,omitempty"`
	CreatedAt                time.Time    `json:"createdAt"`
}

// Mentor is the directory card listed by GET /mentors.
type Mentor struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Position     string   `json:"position"`
	Company      string   `json:"company"`
	Industry     string   `json:"industry"`
	Expertise    []string `json:"expertise"`
	Experience   int      `json:"experience"`
	Rating       float64  `json:"rating"`
	TotalMentees int      `json:"totalMentees"`
	Bio          string   `json:"bio"`
	Availability string   `json:"availability"` // available | busy | unavailable
	Location     string   `json:"location"`
}
