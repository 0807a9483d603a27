package llm

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Completion is the text a provider produced, tagged with which provider
// served it.
type Completion struct {
	Text     string
	Provider string
}

// ExhaustedError means every provider in the cascade failed. It carries all
// underlying errors in attempt order.
type ExhaustedError struct {
	Errs []error
}

func (e *ExhaustedError) Error() string {
	parts := make([]string, 0, len(e.Errs))
	for _, err := range e.Errs {
		parts = append(parts, err.Error())
	}
	return "all providers failed: " + strings.Join(parts, "; ")
}

func (e *ExhaustedError) Unwrap() []error { return e.Errs }

// Cascade tries an ordered list of providers, stopping at the first success.
// The two-provider primary/secondary case is the usual configuration, but
// any length works.
type Cascade struct {
	clients []ChatClient
	logger  *slog.Logger
}

func NewCascade(logger *slog.Logger, clients ...ChatClient) *Cascade {
	return &Cascade{clients: clients, logger: logger}
}

// Generate runs the cascade. When preferSecondary is true the attempt order
// is reversed, which is how the client's "regenerate with the other
// provider" action is expressed. Every provider failure triggers the next
// attempt; only total exhaustion is returned as an error.
func (c *Cascade) Generate(ctx context.Context, messages []Message, preferSecondary bool) (*Completion, error) {
	if len(c.clients) == 0 {
		return nil, errors.New("no providers configured")
	}

	order := make([]ChatClient, len(c.clients))
	copy(order, c.clients)
	if preferSecondary {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	var attempts []error
	for _, client := range order {
		text, err := client.CreateChatCompletion(ctx, messages)
		if err != nil {
			c.logger.Warn("provider failed, trying next",
				"provider", client.Name(),
				"error", err,
			)
			attempts = append(attempts, fmt.Errorf("%s: %w", client.Name(), err))
			continue
		}
		return &Completion{Text: text, Provider: client.Name()}, nil
	}

	return nil, &ExhaustedError{Errs: attempts}
}
