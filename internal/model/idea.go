package model

import "time"

type Idea struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category"`
	TeamSize     int       `json:"teamSize"`
	CreatedBy    string    `json:"createdBy"`
	CreatedAt    time.Time `json:"createdAt"`
	PitchDeckURL string    `json:"pitchDeckUrl,omitempty"`
	LookingFor   []string  `json:"lookingFor,omitempty"`
}

// IdeaCategories is the fixed allowed set for idea submission.
var IdeaCategories = []string{
	"FinTech", "HealthTech", "EdTech", "E-commerce", "Social Impact",
	"Environment", "Food Tech", "Entertainment", "Productivity", "AI/ML", "Other",
}

func IsIdeaCategory(category string) bool {
	for _, c := range IdeaCategories {
		if c == category {
			return true
		}
	}
	return false
}

const (
	MinIdeaDescriptionLen = 50
	MinIdeaTeamSize       = 2
	MaxIdeaTeamSize       = 6
)
