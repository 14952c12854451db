package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surhub/startup-weekend/internal/repository"
)

func newIdeaService() *IdeaService {
	return NewIdeaService().WithIdeaRepo(repository.NewMemoryIdeaRepository())
}

func validIdeaInput() IdeaInput {
	return IdeaInput{
		Title:       "X",
		Description: strings.Repeat("a sufficiently long description ", 3),
		Category:    "FinTech",
		TeamSize:    3,
	}
}

func TestIdeaService_List(t *testing.T) {
	svc := newIdeaService()

	ideas, err := svc.List(context.Background())
	require.Nil(t, err)
	require.Len(t, ideas, 2)
	assert.Equal(t, "EcoTrack", ideas[0].Title)
	assert.Equal(t, "MealPrep AI", ideas[1].Title)
}

func TestIdeaService_GetByID(t *testing.T) {
	svc := newIdeaService()
	ctx := context.Background()

	idea, err := svc.GetByID(ctx, "1")
	require.Nil(t, err)
	assert.Equal(t, "EcoTrack", idea.Title)

	idea, err = svc.GetByID(ctx, "missing")
	require.NotNil(t, err)
	assert.Equal(t, ErrorCodeNotFound, err.Code)
	assert.Nil(t, idea)
}

func TestIdeaService_Create(t *testing.T) {
	now := time.Date(2025, time.September, 1, 12, 0, 0, 0, time.UTC)
	svc := newIdeaService().WithClock(func() time.Time { return now })
	ctx := context.Background()

	idea, err := svc.Create(ctx, "1", validIdeaInput())
	require.Nil(t, err)
	require.NotNil(t, idea)

	assert.NotEmpty(t, idea.ID)
	assert.NotEqual(t, "1", idea.ID)
	assert.NotEqual(t, "2", idea.ID)
	assert.Equal(t, now, idea.CreatedAt)
	assert.Equal(t, "1", idea.CreatedBy)

	// Creation must not leak into the seed list.
	ideas, listErr := svc.List(ctx)
	require.Nil(t, listErr)
	assert.Len(t, ideas, 2)
}

func TestIdeaService_CreateValidation(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*IdeaInput)
		expectedField string
	}{
		{
			name:          "empty title",
			mutate:        func(in *IdeaInput) { in.Title = "   " },
			expectedField: "title",
		},
		{
			name:          "empty description",
			mutate:        func(in *IdeaInput) { in.Description = "" },
			expectedField: "description",
		},
		{
			name:          "short description",
			mutate:        func(in *IdeaInput) { in.Description = "too short" },
			expectedField: "description",
		},
		{
			name:          "unknown category",
			mutate:        func(in *IdeaInput) { in.Category = "Blockchain" },
			expectedField: "category",
		},
		{
			name:          "team too small",
			mutate:        func(in *IdeaInput) { in.TeamSize = 1 },
			expectedField: "teamSize",
		},
		{
			name:          "team too large",
			mutate:        func(in *IdeaInput) { in.TeamSize = 7 },
			expectedField: "teamSize",
		},
	}

	svc := newIdeaService()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validIdeaInput()
			tt.mutate(&input)

			idea, err := svc.Create(context.Background(), "1", input)
			require.NotNil(t, err)
			assert.Equal(t, ErrorCodeValidation, err.Code)
			assert.Contains(t, err.Fields, tt.expectedField)
			assert.Nil(t, idea)
		})
	}
}

func TestIdeaService_Update(t *testing.T) {
	svc := newIdeaService()
	ctx := context.Background()

	input := validIdeaInput()
	input.Title = "EcoTrack v2"

	updated, err := svc.Update(ctx, "1", input)
	require.Nil(t, err)
	assert.Equal(t, "EcoTrack v2", updated.Title)
	assert.Equal(t, "1", updated.ID)

	// The stored seed is unchanged.
	original, getErr := svc.GetByID(ctx, "1")
	require.Nil(t, getErr)
	assert.Equal(t, "EcoTrack", original.Title)

	_, err = svc.Update(ctx, "missing", input)
	require.NotNil(t, err)
	assert.Equal(t, ErrorCodeNotFound, err.Code)
}

func TestIdeaService_DeleteAlwaysSucceeds(t *testing.T) {
	svc := newIdeaService()
	ctx := context.Background()

	require.Nil(t, svc.Delete(ctx, "1"))
	require.Nil(t, svc.Delete(ctx, "never-existed"))

	ideas, err := svc.List(ctx)
	require.Nil(t, err)
	assert.Len(t, ideas, 2)
}
