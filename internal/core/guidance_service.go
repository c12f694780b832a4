package core

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"lactamira.uz/backend/internal/provider"
)

// GuidanceDocument is the generated guidance text, tagged with the language
// it is written in and whether it is a live generation or the pre-written
// fallback. Constructed fresh per request and never mutated afterwards.
type GuidanceDocument struct {
	Text     string
	Language Language
	Fallback bool
}

// GuidanceService produces a GuidanceDocument from a Profile. It is a total
// operation: any provider failure is absorbed into the per-language fallback
// document and no error ever reaches the caller. The service holds no
// mutable state and is safe for concurrent use.
type GuidanceService struct {
	providers       provider.Registry
	defaultProvider string
	now             func() time.Time
}

func NewGuidanceService(providers provider.Registry, defaultProvider string) *GuidanceService {
	return &GuidanceService{
		providers:       providers,
		defaultProvider: defaultProvider,
		now:             time.Now,
	}
}

// Generate builds the prompt for the profile, dispatches it to the named
// provider (or the configured default when name is empty) and returns either
// the live text or the language's fallback document. The provider call is
// the single point that may block; bound it through ctx.
func (s *GuidanceService) Generate(ctx context.Context, p *Profile, providerName string) GuidanceDocument {
	p.Normalize()
	lang := p.Language()

	if providerName == "" {
		providerName = p.PreferredProvider
	}
	if providerName == "" {
		providerName = s.defaultProvider
	}

	prov, ok := s.providers.Get(providerName)
	if !ok {
		log.Printf("Unknown guidance provider %q, serving fallback", providerName)
		return FallbackDocument(lang)
	}

	prompt := BuildPrompt(p, s.now().Year())

	text, err := prov.Generate(ctx, prompt)
	if err != nil {
		logProviderFailure(providerName, err)
		return FallbackDocument(lang)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		log.Printf("Provider %s returned empty text, serving fallback", providerName)
		return FallbackDocument(lang)
	}

	return GuidanceDocument{Text: text, Language: lang}
}

// logProviderFailure records which branch of the error taxonomy fired. The
// classification stays in the logs; callers only ever see the fallback flag.
func logProviderFailure(name string, err error) {
	switch {
	case errors.Is(err, provider.ErrNotConfigured):
		log.Printf("Provider %s is not configured, serving fallback", name)
	case errors.Is(err, provider.ErrMalformedResponse):
		log.Printf("Provider %s returned an unusable response, serving fallback: %v", name, err)
	default:
		log.Printf("Provider %s call failed, serving fallback: %v", name, err)
	}
}
