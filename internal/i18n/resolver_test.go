package i18n

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surhub/startup-weekend/internal/localstore"
)

func newTestResolver(t *testing.T) (*Resolver, localstore.KV) {
	t.Helper()

	store := localstore.NewMemory()
	resolver, err := NewResolver(context.Background(), store)
	require.NoError(t, err)
	return resolver, store
}

func TestResolveFallbackChain(t *testing.T) {
	resolver, _ := newTestResolver(t)

	tests := []struct {
		name     string
		lang     Language
		key      string
		expected string
	}{
		{
			name:     "active bundle hit",
			lang:     LanguageArabic,
			key:      "location_main_hall",
			expected: "القاعة الرئيسية",
		},
		{
			name:     "default bundle hit",
			lang:     LanguageEnglish,
			key:      "team_ecotrack_name",
			expected: "EcoTrack",
		},
		{
			name:     "unknown key returns key unchanged",
			lang:     LanguageEnglish,
			key:      "no_such_key",
			expected: "no_such_key",
		},
		{
			name:     "unsupported language falls back to english",
			lang:     Language("fr"),
			key:      "nav_home",
			expected: "Home",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resolver.ResolveIn(tt.lang, tt.key)
			assert.Equal(t, tt.expected, got)
			assert.NotEmpty(t, got)
		})
	}
}

func TestResolveNeverEmpty(t *testing.T) {
	resolver, _ := newTestResolver(t)

	for key := range resolver.bundles[LanguageArabic] {
		assert.NotEmpty(t, resolver.ResolveIn(LanguageArabic, key))
	}
}

// Every Arabic key must resolve in English too: the default bundle is the
// universal fallback and has to be a superset.
func TestEnglishBundleIsSuperset(t *testing.T) {
	resolver, _ := newTestResolver(t)

	en := resolver.bundles[LanguageEnglish]
	for key := range resolver.bundles[LanguageArabic] {
		_, ok := en[key]
		assert.Truef(t, ok, "key %q missing from the English bundle", key)
	}
}

func TestSetLanguagePersists(t *testing.T) {
	ctx := context.Background()
	resolver, store := newTestResolver(t)

	assert.Equal(t, LanguageEnglish, resolver.Language())
	assert.Equal(t, DirectionLTR, resolver.Dir())

	require.NoError(t, resolver.SetLanguage(ctx, LanguageArabic))
	assert.Equal(t, LanguageArabic, resolver.Language())
	assert.Equal(t, DirectionRTL, resolver.Dir())

	// A fresh hydration from the same store reads back the same language.
	rehydrated, err := NewResolver(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, LanguageArabic, rehydrated.Language())
}

func TestSetLanguageRejectsUnsupported(t *testing.T) {
	ctx := context.Background()
	resolver, _ := newTestResolver(t)

	err := resolver.SetLanguage(ctx, Language("fr"))
	assert.ErrorIs(t, err, ErrUnsupportedLanguage)
	assert.Equal(t, LanguageEnglish, resolver.Language())
}

func TestInvalidPersistedLanguageFallsBack(t *testing.T) {
	ctx := context.Background()
	store := localstore.NewMemory()
	require.NoError(t, store.Put(ctx, localstore.KeyLanguage, "xx"))

	resolver, err := NewResolver(ctx, store)
	require.NoError(t, err)
	assert.Equal(t, LanguageEnglish, resolver.Language())
}
