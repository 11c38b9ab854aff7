package news

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a detail lookup exhausted every provider
// without a match, or when one provider has no result for an identifier.
var ErrNotFound = errors.New("article not found")

// ErrNoProviders is returned by the aggregator when every provider failed in
// the same request. Callers treat it as degradation, not as a hard failure.
var ErrNoProviders = errors.New("no news provider available")

// ErrInvalidIdentifier is returned when the incoming article identifier
// cannot be percent-decoded. Unlike provider outages this is a caller bug.
var ErrInvalidIdentifier = errors.New("invalid article identifier")

// ProviderError marks a provider call that contributed nothing: a transport
// failure, a non-2xx status, or a payload the adapter could not parse.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

func providerErr(name string, err error) *ProviderError {
	return &ProviderError{Provider: name, Err: err}
}
