package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tyonekura/koibumi/internal/domain"
	"github.com/tyonekura/koibumi/internal/llm"
	"github.com/tyonekura/koibumi/internal/prompt"
)

// stubCascade records the prompt it was handed and returns a canned
// completion.
type stubCascade struct {
	completion      *llm.Completion
	err             error
	gotMessages     []llm.Message
	gotPreferSecond bool
}

func (c *stubCascade) Generate(_ context.Context, messages []llm.Message, preferSecondary bool) (*llm.Completion, error) {
	c.gotMessages = messages
	c.gotPreferSecond = preferSecondary
	if c.err != nil {
		return nil, c.err
	}
	return c.completion, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSuggestionServiceGenerate(t *testing.T) {
	cascade := &stubCascade{completion: &llm.Completion{
		Text:     "(1) おはよう (2) 元気? (3) また話そう",
		Provider: "grok",
	}}
	svc := NewSuggestionService(cascade, discardLogger())

	result, err := svc.Generate(context.Background(), GenerateRequest{
		RecognizedText: "カフェ巡りが好きです",
		Tone:           domain.Tone{FormalityLevel: 1, FriendlinessLevel: 1, HumorLevel: 1},
		TextLength:     50,
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"おはよう", "元気?", "また話そう"}, result.Messages)
	assert.Equal(t, "grok", result.Provider)

	// The cascade receives a system prompt plus the built user prompt.
	require.Len(t, cascade.gotMessages, 2)
	assert.Equal(t, llm.RoleSystem, cascade.gotMessages[0].Role)
	assert.Equal(t, prompt.SystemPrompt, cascade.gotMessages[0].Content)
	assert.Equal(t, llm.RoleUser, cascade.gotMessages[1].Role)
	assert.True(t, strings.Contains(cascade.gotMessages[1].Content, "カフェ巡りが好きです"))
	assert.False(t, cascade.gotPreferSecond)
}

func TestSuggestionServiceGenerateSecondaryProvider(t *testing.T) {
	cascade := &stubCascade{completion: &llm.Completion{Text: "(1) a", Provider: "deepseek"}}
	svc := NewSuggestionService(cascade, discardLogger())

	result, err := svc.Generate(context.Background(), GenerateRequest{
		Tone:                 domain.Tone{FormalityLevel: 2, FriendlinessLevel: 1, HumorLevel: 1},
		TextLength:           100,
		UseSecondaryProvider: true,
	})
	require.NoError(t, err)
	assert.True(t, cascade.gotPreferSecond)
	assert.Equal(t, "deepseek", result.Provider)
}

func TestSuggestionServiceGenerateInvalidTone(t *testing.T) {
	cascade := &stubCascade{}
	svc := NewSuggestionService(cascade, discardLogger())

	_, err := svc.Generate(context.Background(), GenerateRequest{
		Tone:       domain.Tone{FormalityLevel: 0, FriendlinessLevel: 1, HumorLevel: 1},
		TextLength: 50,
	})
	assert.Error(t, err)
	// Validation failures never reach the providers.
	assert.Nil(t, cascade.gotMessages)
}

func TestSuggestionServiceGenerateExhausted(t *testing.T) {
	cascade := &stubCascade{err: &llm.ExhaustedError{}}
	svc := NewSuggestionService(cascade, discardLogger())

	_, err := svc.Generate(context.Background(), GenerateRequest{
		Tone:       domain.Tone{FormalityLevel: 1, FriendlinessLevel: 1, HumorLevel: 1},
		TextLength: 50,
	})
	var exhausted *llm.ExhaustedError
	assert.ErrorAs(t, err, &exhausted)
}

func TestSuggestionServiceGenerateUnparseable(t *testing.T) {
	cascade := &stubCascade{completion: &llm.Completion{Text: "番号のない返事", Provider: "grok"}}
	svc := NewSuggestionService(cascade, discardLogger())

	_, err := svc.Generate(context.Background(), GenerateRequest{
		Tone:       domain.Tone{FormalityLevel: 1, FriendlinessLevel: 1, HumorLevel: 1},
		TextLength: 50,
	})
	assert.ErrorIs(t, err, prompt.ErrNoCandidates)
}

func TestValidateTone(t *testing.T) {
	assert.NoError(t, ValidateTone(domain.Tone{FormalityLevel: 1, FriendlinessLevel: 2, HumorLevel: 3}))
	assert.Error(t, ValidateTone(domain.Tone{FormalityLevel: 4, FriendlinessLevel: 2, HumorLevel: 1}))
	assert.Error(t, ValidateTone(domain.Tone{}))
}
