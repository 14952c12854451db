package model

// Team is read-only fixture data; there is no create or edit path.
type Team struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Members     []*TeamMember `json:"members"`
	ProjectURL  string        `json:"projectUrl,omitempty"`
	Category    string        `json:"category"`
	IsWinner    bool          `json:"isWinner,omitempty"`
}

type TeamMember struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Avatar string `json:"avatar"`
}
