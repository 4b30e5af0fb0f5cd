// Package llm turns free-form profile text into a structured profile using a chat
// completion provider.
package llm

import (
	"context"

	"resumeapi/internal/model"
)

// Outcome tells the caller how a parse attempt ended.
type Outcome int

const (
	OutcomeParsed Outcome = iota
	// OutcomeProviderError covers transport failures, non-2xx replies and empty choices.
	OutcomeProviderError
	// OutcomeDecodeError means the provider answered but the content was not a usable profile.
	OutcomeDecodeError
	// OutcomeMissingCredential means no API key is configured; nothing was sent.
	OutcomeMissingCredential
)

func (o Outcome) String() string {
	switch o {
	case OutcomeParsed:
		return "parsed"
	case OutcomeProviderError:
		return "provider_error"
	case OutcomeDecodeError:
		return "decode_error"
	case OutcomeMissingCredential:
		return "missing_credential"
	default:
		return "unknown"
	}
}

// Result carries the outcome. Profile is only meaningful for OutcomeParsed; Err holds
// the underlying cause for the failure outcomes.
type Result struct {
	Outcome Outcome
	Profile model.ParsedProfile
	Err     error
}

// Parser is implemented by profile parsing providers.
type Parser interface {
	Parse(ctx context.Context, profileText string) Result
}
