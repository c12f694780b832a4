// Package provider contains the text-generation integrations. Every
// implementation shares one contract so the guidance flow never has to know
// which upstream it is talking to; adding a provider means adding one file
// and one registry entry.
package provider

import (
	"context"
	"errors"
)

var (
	// ErrNotConfigured means the provider's credential is absent. The call
	// must not be attempted.
	ErrNotConfigured = errors.New("provider credential not configured")

	// ErrUpstream covers transport failures and non-success HTTP statuses
	// from the upstream service.
	ErrUpstream = errors.New("upstream provider request failed")

	// ErrMalformedResponse means the upstream replied successfully but the
	// reply carried no usable text.
	ErrMalformedResponse = errors.New("upstream response contained no usable text")
)

// Provider generates free-form text from a prompt. Implementations perform
// at most one network attempt per call; the caller bounds latency through
// ctx and decides what to do on failure.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Registry maps provider names to implementations.
type Registry map[string]Provider

func (r Registry) Add(p Provider) {
	r[p.Name()] = p
}

func (r Registry) Get(name string) (Provider, bool) {
	p, ok := r[name]
	return p, ok
}
