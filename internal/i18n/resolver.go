// Package i18n resolves symbolic keys to localized strings. The English bundle
// is the universal fallback and must contain every key the rest of the
// application requests.
package i18n

import (
	"context"
	"embed"
	"encoding/json"
	"sync"

	"github.com/pkg/errors"

	"github.com/surhub/startup-weekend/internal/localstore"
)

type Language string

const (
	LanguageEnglish Language = "en"
	LanguageArabic  Language = "ar"

	DefaultLanguage = LanguageEnglish
)

type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

var ErrUnsupportedLanguage = errors.New("unsupported language")

// Bundle is a complete set of key to string translations for one language.
type Bundle map[string]string

//go:embed locales/en.json locales/ar.json
var localeFS embed.FS

type Resolver struct {
	mu      sync.RWMutex
	store   localstore.KV
	bundles map[Language]Bundle
	active  Language
}

// NewResolver parses both bundles and restores the persisted language choice.
// Construction fails if a bundle cannot be loaded, so callers never serve raw
// keys. A missing or invalid persisted choice falls back to English.
func NewResolver(ctx context.Context, store localstore.KV) (*Resolver, error) {
	bundles := make(map[Language]Bundle, 2)
	for _, lang := range []Language{LanguageEnglish, LanguageArabic} {
		raw, err := localeFS.ReadFile("locales/" + string(lang) + ".json")
		if err != nil {
			return nil, errors.Wrapf(err, "failed to read %s bundle", lang)
		}

		bundle := Bundle{}
		if err = json.Unmarshal(raw, &bundle); err != nil {
			return nil, errors.Wrapf(err, "failed to parse %s bundle", lang)
		}
		bundles[lang] = bundle
	}

	active := DefaultLanguage
	if persisted, err := store.Get(ctx, localstore.KeyLanguage); err == nil {
		if _, ok := bundles[Language(persisted)]; ok {
			active = Language(persisted)
		}
	}

	return &Resolver{
		store:   store,
		bundles: bundles,
		active:  active,
	}, nil
}

// Resolve looks key up in the active bundle, then the English bundle, and
// finally returns the key itself. It never fails.
func (r *Resolver) Resolve(key string) string {
	r.mu.RLock()
	active := r.active
	r.mu.RUnlock()

	return r.ResolveIn(active, key)
}

// ResolveIn resolves with an explicit language, used for per-request overrides.
// Unsupported languages fall through to the English bundle.
func (r *Resolver) ResolveIn(lang Language, key string) string {
	if s, ok := r.bundles[lang][key]; ok {
		return s
	}
	if s, ok := r.bundles[DefaultLanguage][key]; ok {
		return s
	}
	return key
}

// SetLanguage switches the active language and persists the choice so it
// survives a restart.
func (r *Resolver) SetLanguage(ctx context.Context, lang Language) error {
	if _, ok := r.bundles[lang]; !ok {
		return errors.Wrap(ErrUnsupportedLanguage, string(lang))
	}

	if err := r.store.Put(ctx, localstore.KeyLanguage, string(lang)); err != nil {
		return errors.Wrap(err, "failed to persist language")
	}

	r.mu.Lock()
	r.active = lang
	r.mu.Unlock()

	return nil
}

func (r *Resolver) Language() Language {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.active
}

// Dir is the text direction of the active language, used by the rendering
// layer for layout mirroring.
func (r *Resolver) Dir() Direction {
	return DirOf(r.Language())
}

func DirOf(lang Language) Direction {
	if lang == LanguageArabic {
		return DirectionRTL
	}
	return DirectionLTR
}

// Supported reports whether lang is one of the shipped locales.
func Supported(lang Language) bool {
	return lang == LanguageEnglish || lang == LanguageArabic
}
