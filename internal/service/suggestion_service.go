package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tyonekura/koibumi/internal/domain"
	"github.com/tyonekura/koibumi/internal/llm"
	"github.com/tyonekura/koibumi/internal/prompt"
)

// completionCascade is the subset of llm.Cascade that SuggestionService
// requires.
type completionCascade interface {
	Generate(ctx context.Context, messages []llm.Message, preferSecondary bool) (*llm.Completion, error)
}

// GenerateRequest is one reply-suggestion request.
type GenerateRequest struct {
	RecognizedText       string
	PartnerName          string
	Tone                 domain.Tone
	TextLength           int
	UseSecondaryProvider bool
}

// GenerateResult carries the parsed candidates and which provider produced
// them.
type GenerateResult struct {
	Messages []string
	Provider string
}

type SuggestionService struct {
	cascade completionCascade
	logger  *slog.Logger
}

func NewSuggestionService(cascade completionCascade, logger *slog.Logger) *SuggestionService {
	return &SuggestionService{cascade: cascade, logger: logger}
}

// ValidateTone rejects slider values outside the 1..3 scale before any
// network call is made.
func ValidateTone(t domain.Tone) error {
	for _, v := range []int{t.FormalityLevel, t.FriendlinessLevel, t.HumorLevel} {
		if v < 1 || v > 3 {
			return fmt.Errorf("tone levels must be between 1 and 3, got %d", v)
		}
	}
	return nil
}

// Generate derives the tone profile, builds the prompt, runs the provider
// cascade, and parses the completion into candidate messages.
func (s *SuggestionService) Generate(ctx context.Context, req GenerateRequest) (*GenerateResult, error) {
	if err := ValidateTone(req.Tone); err != nil {
		return nil, err
	}

	profile := prompt.DeriveToneProfile(req.Tone)
	sentences := prompt.SentenceCount(req.TextLength)
	userPrompt := prompt.Build(profile, req.RecognizedText, req.PartnerName, sentences)

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: prompt.SystemPrompt},
		{Role: llm.RoleUser, Content: userPrompt},
	}

	completion, err := s.cascade.Generate(ctx, messages, req.UseSecondaryProvider)
	if err != nil {
		return nil, err
	}

	candidates, err := prompt.ParseCandidates(completion.Text, prompt.MaxCandidates)
	if err != nil {
		s.logger.Error("completion had no parseable candidates",
			"provider", completion.Provider,
			"completion_len", len(completion.Text),
		)
		return nil, err
	}

	s.logger.Info("generated suggestions",
		"provider", completion.Provider,
		"tone", profile.Type,
		"purpose", profile.Purpose,
		"count", len(candidates),
	)

	return &GenerateResult{Messages: candidates, Provider: completion.Provider}, nil
}
