package core

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"lactamira.uz/backend/internal/provider"
)

type fakeProvider struct {
	name   string
	text   string
	err    error
	prompt string // last prompt seen
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) Generate(ctx context.Context, prompt string) (string, error) {
	f.prompt = prompt
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("fake: %w: %v", provider.ErrUpstream, err)
	}
	return f.text, f.err
}

func newTestService(p provider.Provider) *GuidanceService {
	reg := provider.Registry{}
	reg.Add(p)
	svc := NewGuidanceService(reg, p.Name())
	svc.now = func() time.Time { return time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) }
	return svc
}

func TestGenerateLiveText(t *testing.T) {
	fake := &fakeProvider{name: "openai", text: "Hello world"}
	svc := newTestService(fake)

	doc := svc.Generate(context.Background(), &Profile{YearOfBirth: 1990, PreferredLanguage: "en"}, "")

	assert.Equal(t, "Hello world", doc.Text)
	assert.Equal(t, LanguageEnglish, doc.Language)
	assert.False(t, doc.Fallback)
	assert.Contains(t, fake.prompt, "Current age: 36")
}

func TestGenerateTrimsWhitespaceOnly(t *testing.T) {
	fake := &fakeProvider{name: "openai", text: "  Hello world \n"}
	svc := newTestService(fake)

	doc := svc.Generate(context.Background(), &Profile{PreferredLanguage: "en"}, "")
	assert.Equal(t, "Hello world", doc.Text)
	assert.False(t, doc.Fallback)
}

func TestGenerateFallbackOnProviderError(t *testing.T) {
	for _, provErr := range []error{
		provider.ErrNotConfigured,
		provider.ErrUpstream,
		provider.ErrMalformedResponse,
		errors.New("connection reset"),
	} {
		fake := &fakeProvider{name: "openai", err: provErr}
		svc := newTestService(fake)

		doc := svc.Generate(context.Background(), &Profile{PreferredLanguage: "uz"}, "")

		require.True(t, doc.Fallback, "error %v", provErr)
		assert.Equal(t, LanguageUzbek, doc.Language)
		assert.Equal(t, FallbackText(LanguageUzbek), doc.Text)
	}
}

func TestGenerateFallbackOnEmptyText(t *testing.T) {
	fake := &fakeProvider{name: "openai", text: "   \n\t "}
	svc := newTestService(fake)

	doc := svc.Generate(context.Background(), &Profile{PreferredLanguage: "ru"}, "")
	assert.True(t, doc.Fallback)
	assert.Equal(t, FallbackText(LanguageRussian), doc.Text)
}

func TestGenerateFallbackOnTimeout(t *testing.T) {
	fake := &fakeProvider{name: "openai", text: "never seen"}
	svc := newTestService(fake)

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // simulate an already-expired deadline

	doc := svc.Generate(ctx, &Profile{PreferredLanguage: "en"}, "")
	assert.True(t, doc.Fallback)
	assert.Equal(t, FallbackText(LanguageEnglish), doc.Text)
}

func TestGenerateUnknownProviderServesFallback(t *testing.T) {
	fake := &fakeProvider{name: "openai", text: "live"}
	svc := newTestService(fake)

	doc := svc.Generate(context.Background(), &Profile{PreferredLanguage: "ru"}, "claude")
	assert.True(t, doc.Fallback)
	assert.Equal(t, FallbackText(LanguageRussian), doc.Text)
}

func TestGenerateUnsupportedLanguageFallsBackInEnglish(t *testing.T) {
	fake := &fakeProvider{name: "openai", err: provider.ErrUpstream}
	svc := newTestService(fake)

	doc := svc.Generate(context.Background(), &Profile{PreferredLanguage: "fr"}, "")
	assert.True(t, doc.Fallback)
	assert.Equal(t, LanguageEnglish, doc.Language)
	assert.Equal(t, FallbackText(LanguageEnglish), doc.Text)
}

func TestGenerateProviderSelection(t *testing.T) {
	openai := &fakeProvider{name: "openai", text: "from openai"}
	gemini := &fakeProvider{name: "gemini", text: "from gemini"}
	reg := provider.Registry{}
	reg.Add(openai)
	reg.Add(gemini)
	svc := NewGuidanceService(reg, "openai")

	// Explicit name wins over everything.
	doc := svc.Generate(context.Background(), &Profile{PreferredProvider: "openai"}, "gemini")
	assert.Equal(t, "from gemini", doc.Text)

	// Profile preference wins over the default.
	doc = svc.Generate(context.Background(), &Profile{PreferredProvider: "gemini"}, "")
	assert.Equal(t, "from gemini", doc.Text)

	// Default applies when nothing else is set.
	doc = svc.Generate(context.Background(), &Profile{}, "")
	assert.Equal(t, "from openai", doc.Text)
}

func TestFallbackTextsAreStablePerLanguage(t *testing.T) {
	assert.NotEqual(t, FallbackText(LanguageEnglish), FallbackText(LanguageRussian))
	assert.NotEqual(t, FallbackText(LanguageRussian), FallbackText(LanguageUzbek))

	// Identical inputs always yield the identical fallback document.
	fake := &fakeProvider{name: "openai", err: provider.ErrUpstream}
	svc := newTestService(fake)
	p := &Profile{PreferredLanguage: "uz"}
	first := svc.Generate(context.Background(), p, "")
	second := svc.Generate(context.Background(), p, "")
	assert.Equal(t, first, second)
}
