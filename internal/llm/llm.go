package llm

import (
	"context"
	"fmt"
)

// Role values for chat messages, mirroring the OpenAI-style contract every
// provider here speaks.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatClient is one text-generation provider. Implementations perform a
// single authenticated HTTP call per invocation; retries and fallback belong
// to the Cascade, not here.
type ChatClient interface {
	// CreateChatCompletion returns the first completion's text.
	CreateChatCompletion(ctx context.Context, messages []Message) (string, error)
	// Name identifies the provider in results and logs.
	Name() string
}

// ProviderError is a failed call against a single provider: transport
// failure, non-2xx status, or a response envelope missing the expected
// fields.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s returned status %d: %s", e.Provider, e.StatusCode, e.Body)
	}
	if e.Err != nil {
		return fmt.Sprintf("%s request failed: %v", e.Provider, e.Err)
	}
	return fmt.Sprintf("%s returned a malformed response", e.Provider)
}

func (e *ProviderError) Unwrap() error { return e.Err }
