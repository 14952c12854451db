package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surhub/startup-weekend/internal/i18n"
	"github.com/surhub/startup-weekend/internal/localstore"
	"github.com/surhub/startup-weekend/internal/repository"
)

func newTeamService(t *testing.T) *TeamService {
	t.Helper()

	resolver, err := i18n.NewResolver(context.Background(), localstore.NewMemory())
	require.NoError(t, err)

	return NewTeamService().
		WithTeamRepo(repository.NewMemoryTeamRepository()).
		WithResolver(resolver)
}

func TestTeamService_List(t *testing.T) {
	tests := []struct {
		name          string
		lang          i18n.Language
		query         TeamQuery
		expectedCount int
		expectedFirst string
	}{
		{
			name:          "all teams, english",
			lang:          i18n.LanguageEnglish,
			expectedCount: 6,
			expectedFirst: "EcoTrack",
		},
		{
			name:          "all teams, arabic",
			lang:          i18n.LanguageArabic,
			expectedCount: 6,
			expectedFirst: "إيكو تراك",
		},
		{
			name:          "search matches name case-insensitively",
			lang:          i18n.LanguageEnglish,
			query:         TeamQuery{Search: "ecotrack"},
			expectedCount: 1,
			expectedFirst: "EcoTrack",
		},
		{
			name:          "search matches description",
			lang:          i18n.LanguageEnglish,
			query:         TeamQuery{Search: "food waste"},
			expectedCount: 1,
			expectedFirst: "MealPrep AI",
		},
		{
			name:          "category filter is exact",
			lang:          i18n.LanguageEnglish,
			query:         TeamQuery{Category: "EdTech"},
			expectedCount: 2,
			expectedFirst: "StudyBuddy",
		},
		{
			name:          "search and category combine",
			lang:          i18n.LanguageEnglish,
			query:         TeamQuery{Search: "mentorship", Category: "EdTech"},
			expectedCount: 1,
			expectedFirst: "CodeMentor",
		},
		{
			name:          "no matches",
			lang:          i18n.LanguageEnglish,
			query:         TeamQuery{Search: "zzz"},
			expectedCount: 0,
		},
	}

	svc := newTeamService(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teams, err := svc.List(context.Background(), tt.lang, tt.query)
			require.Nil(t, err)
			require.Len(t, teams, tt.expectedCount)

			if tt.expectedCount > 0 {
				assert.Equal(t, tt.expectedFirst, teams[0].Name)
			}
		})
	}
}

func TestTeamService_ListLocalizesMembers(t *testing.T) {
	svc := newTeamService(t)

	teams, err := svc.List(context.Background(), i18n.LanguageArabic, TeamQuery{})
	require.Nil(t, err)
	require.NotEmpty(t, teams)

	winner := teams[0]
	assert.True(t, winner.IsWinner)
	require.Len(t, winner.Members, 4)
	assert.Equal(t, "سارة جونسون", winner.Members[0].Name)
	assert.Equal(t, "مدير منتج", winner.Members[0].Role)
}

func TestTeamService_Categories(t *testing.T) {
	svc := newTeamService(t)

	categories, err := svc.Categories(context.Background(), i18n.LanguageEnglish)
	require.Nil(t, err)
	assert.Equal(t, []string{"Environment", "Food Tech", "EdTech", "HealthTech", "E-commerce"}, categories)
}
