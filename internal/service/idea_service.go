package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/surhub/startup-weekend/internal/model"
	"github.com/surhub/startup-weekend/internal/repository"
	"github.com/surhub/startup-weekend/pkg/logger"
)

// IdeaService simulates the idea backend over the fixed seed list. Created
// and updated records are fabricated without mutating the seeds, so repeated
// calls do not accumulate.
type IdeaService struct {
	ideas repository.IdeaRepository

	latency time.Duration
	now     func() time.Time
}

func NewIdeaService() *IdeaService {
	return &IdeaService{now: time.Now}
}

// IdeaInput carries submission fields. Constraints are checked by
// ValidateIdea rather than struct tags so partial updates stay expressible.
type IdeaInput struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Category     string   `json:"category"`
	TeamSize     int      `json:"teamSize"`
	PitchDeckURL string   `json:"pitchDeckUrl,omitempty"`
	LookingFor   []string `json:"lookingFor,omitempty"`
}

// ValidateIdea returns field-keyed bundle keys for every failing constraint.
func ValidateIdea(input IdeaInput) map[string]string {
	fields := make(map[string]string)

	if strings.TrimSpace(input.Title) == "" {
		fields["title"] = "idea_title_required"
	}

	switch {
	case strings.TrimSpace(input.Description) == "":
		fields["description"] = "idea_description_required"
	case len(input.Description) < model.MinIdeaDescriptionLen:
		fields["description"] = "idea_description_length"
	}

	if !model.IsIdeaCategory(input.Category) {
		fields["category"] = "idea_category_required"
	}

	if input.TeamSize < model.MinIdeaTeamSize || input.TeamSize > model.MaxIdeaTeamSize {
		fields["teamSize"] = "idea_team_size_invalid"
	}

	return fields
}

func (s *IdeaService) List(ctx context.Context) ([]*model.Idea, *Error) {
	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, NewError(ErrorCodeUnspecified, "listing interrupted")
	}

	records, err := s.ideas.List(ctx)
	if err != nil {
		return nil, NewError(ErrorCodeUnspecified, "failed to list ideas")
	}

	ideas := make([]*model.Idea, 0, len(records))
	for _, record := range records {
		ideas = append(ideas, toIdea(record))
	}
	return ideas, nil
}

func (s *IdeaService) GetByID(ctx context.Context, ideaID string) (*model.Idea, *Error) {
	l := logger.FromContext(ctx)

	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, NewError(ErrorCodeUnspecified, "lookup interrupted")
	}

	record, err := s.ideas.Get(ctx, ideaID)
	if errors.Is(err, repository.ErrNotFound) {
		l.Warn("idea not found", zap.String("idea_id", ideaID))
		return nil, NewError(ErrorCodeNotFound, "idea_not_found")
	}
	if err != nil {
		return nil, NewError(ErrorCodeUnspecified, "failed to get idea")
	}

	return toIdea(record), nil
}

// Create validates the submission and returns a new record with a generated
// id and the current timestamp. The seed list is left untouched.
func (s *IdeaService) Create(ctx context.Context, createdBy string, input IdeaInput) (*model.Idea, *Error) {
	l := logger.FromContext(ctx)
	l.Info("creating idea", zap.String("title", input.Title), zap.String("created_by", createdBy))

	if fields := ValidateIdea(input); len(fields) > 0 {
		return nil, NewValidationError("idea validation failed", fields)
	}

	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, NewError(ErrorCodeUnspecified, "creation interrupted")
	}

	return &model.Idea{
		ID:           uuid.NewString(),
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		TeamSize:     input.TeamSize,
		CreatedBy:    createdBy,
		CreatedAt:    s.now(),
		PitchDeckURL: input.PitchDeckURL,
		LookingFor:   input.LookingFor,
	}, nil
}

// Update merges the input onto a copy of the stored record; the seed list is
// left untouched.
func (s *IdeaService) Update(ctx context.Context, ideaID string, input IdeaInput) (*model.Idea, *Error) {
	l := logger.FromContext(ctx)
	l.Info("updating idea", zap.String("idea_id", ideaID))

	if fields := ValidateIdea(input); len(fields) > 0 {
		return nil, NewValidationError("idea validation failed", fields)
	}

	if err := simulateLatency(ctx, s.latency); err != nil {
		return nil, NewError(ErrorCodeUnspecified, "update interrupted")
	}

	record, err := s.ideas.Get(ctx, ideaID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, NewError(ErrorCodeNotFound, "idea_not_found")
	}
	if err != nil {
		return nil, NewError(ErrorCodeUnspecified, "failed to get idea")
	}

	updated := toIdea(record)
	updated.Title = input.Title
	updated.Description = input.Description
	updated.Category = input.Category
	updated.TeamSize = input.TeamSize
	if input.PitchDeckURL != "" {
		updated.PitchDeckURL = input.PitchDeckURL
	}
	if input.LookingFor != nil {
		updated.LookingFor = input.LookingFor
	}
	return updated, nil
}

// Delete reports success without checking existence.
func (s *IdeaService) Delete(ctx context.Context, ideaID string) *Error {
	l := logger.FromContext(ctx)
	l.Info("deleting idea", zap.String("idea_id", ideaID))

	if err := simulateLatency(ctx, s.latency); err != nil {
		return NewError(ErrorCodeUnspecified, "deletion interrupted")
	}
	return nil
}

func (s *IdeaService) WithIdeaRepo(r repository.IdeaRepository) *IdeaService {
	s.ideas = r
	return s
}

func (s *IdeaService) WithLatency(d time.Duration) *IdeaService {
	s.latency = d
	return s
}

func (s *IdeaService) WithClock(now func() time.Time) *IdeaService {
	s.now = now
	return s
}

func toIdea(record *repository.Idea) *model.Idea {
	return &model.Idea{
		ID:           record.ID,
		Title:        record.Title,
		Description:  record.Description,
		Category:     record.Category,
		TeamSize:     record.TeamSize,
		CreatedBy:    record.CreatedBy,
		CreatedAt:    record.CreatedAt,
		PitchDeckURL: record.PitchDeckURL,
		LookingFor:   record.LookingFor,
	}
}
