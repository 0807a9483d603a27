package service

import (
	"context"
	"log/slog"

	"github.com/tyonekura/koibumi/internal/llm"
)

const dateSpotSystemPrompt = `You are a helpful AI assistant specializing in recommending date spots in Japan.
Rules:
1. Provide a structured response with a clear title and detailed description.
2. Do not include any explanation of your thought process.
3. Format your response with a title on the first line, followed by a detailed description.
4. Use line breaks to separate paragraphs for better readability.

Response Format:
1. First line: A catchy title or name of the recommended spot/activity
2. Following paragraphs: Detailed description including:
   - What makes this spot special
   - Atmosphere and ambiance
   - What couples can do there
   - Best time to visit
   - Any special tips
3. If suggesting multiple options, separate each with two newlines.`

// DateSpotService answers place-recommendation queries through the
// search-augmented provider.
type DateSpotService struct {
	client llm.ChatClient
	logger *slog.Logger
}

func NewDateSpotService(client llm.ChatClient, logger *slog.Logger) *DateSpotService {
	return &DateSpotService{client: client, logger: logger}
}

func (s *DateSpotService) Search(ctx context.Context, query string) (string, error) {
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: dateSpotSystemPrompt},
		{Role: llm.RoleUser, Content: query},
	}

	answer, err := s.client.CreateChatCompletion(ctx, messages)
	if err != nil {
		return "", err
	}

	s.logger.Info("date spot search answered", "provider", s.client.Name(), "answer_len", len(answer))
	return answer, nil
}
