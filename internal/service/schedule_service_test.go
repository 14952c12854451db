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

func TestScheduleService_Days(t *testing.T) {
	resolver, err := i18n.NewResolver(context.Background(), localstore.NewMemory())
	require.NoError(t, err)

	svc := NewScheduleService().
		WithScheduleRepo(repository.NewMemoryScheduleRepository()).
		WithResolver(resolver)

	days, svcErr := svc.Days(context.Background(), i18n.LanguageEnglish)
	require.Nil(t, svcErr)
	require.Len(t, days, 3)

	assert.Equal(t, 1, days[0].Day)
	assert.Len(t, days[0].Events, 9)
	assert.Equal(t, "16:00", days[0].Events[0].Time)
	assert.Equal(t, "Check-in", days[0].Events[0].Title)
	assert.Equal(t, "Main Hall", days[0].Events[0].Location)

	arabic, svcErr := svc.Days(context.Background(), i18n.LanguageArabic)
	require.Nil(t, svcErr)
	assert.Equal(t, "التسجيل", arabic[0].Events[0].Title)
	assert.Equal(t, "القاعة الرئيسية", arabic[0].Events[0].Location)

	// Days are ordered and dated.
	assert.True(t, days[0].Date.Before(days[1].Date))
	assert.True(t, days[1].Date.Before(days[2].Date))
}
