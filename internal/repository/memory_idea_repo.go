package repository

import (
	"context"
	"time"
)

type Idea struct {
	ID           string
	Title        string
	Description  string
	Category     string
	TeamSize     int
	CreatedBy    string
	CreatedAt    time.Time
	PitchDeckURL string
	LookingFor   []string
}

// IdeaRepository is read-only: the seed list never changes, so created and
// deleted ideas cannot leak between calls.
type IdeaRepository interface {
	List(ctx context.Context) ([]*Idea, error)
	Get(ctx context.Context, ideaID string) (*Idea, error)
}

type memoryIdeaRepository struct {
	ideas []*Idea
}

func NewMemoryIdeaRepository() IdeaRepository {
	return &memoryIdeaRepository{ideas: []*Idea{
		{
			ID:           "1",
			Title:        "EcoTrack",
			Description:  "A mobile app that helps users track and reduce their carbon footprint through daily activities.",
			Category:     "Environment",
			TeamSize:     4,
			CreatedBy:    "1",
			CreatedAt:    time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC),
			PitchDeckURL: "#",
		},
		{
			ID:           "2",
			Title:        "MealPrep AI",
			Description:  "AI-powered meal planning and grocery shopping assistant that reduces food waste.",
			Category:     "Food Tech",
			TeamSize:     3,
			CreatedBy:    "2",
			CreatedAt:    time.Date(2023, time.March, 14, 0, 0, 0, 0, time.UTC),
			PitchDeckURL: "#",
		},
	}}
}

func (m *memoryIdeaRepository) List(_ context.Context) ([]*Idea, error) {
	ideas := make([]*Idea, 0, len(m.ideas))
	for _, idea := range m.ideas {
		copied := *idea
		ideas = append(ideas, &copied)
	}
	return ideas, nil
}

func (m *memoryIdeaRepository) Get(_ context.Context, ideaID string) (*Idea, error) {
	for _, idea := range m.ideas {
		if idea.ID == ideaID {
			copied := *idea
			return &copied, nil
		}
	}
	return nil, ErrNotFound
}
