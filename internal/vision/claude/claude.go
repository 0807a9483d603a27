package claude

import (
	"context"
	"fmt"

	"github.com/liushuangls/go-anthropic/v2"
)

// maxTokens bounds one vision call; a full screenshot reading fits well
// within it.
const maxTokens = 1024

type ClaudeModel struct {
	client *anthropic.Client
	model  anthropic.Model
}

func NewClaudeModel(apiKey, model string, opts ...anthropic.ClientOption) *ClaudeModel {
	return &ClaudeModel{
		client: anthropic.NewClient(apiKey, opts...),
		model:  anthropic.Model(model),
	}
}

func (m *ClaudeModel) DescribeImage(ctx context.Context, instruction, imageBase64 string) (string, error) {
	resp, err := m.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     m.model,
		MaxTokens: maxTokens,
		Messages: []anthropic.Message{
			{
				Role: anthropic.RoleUser,
				Content: []anthropic.MessageContent{
					anthropic.NewImageMessageContent(anthropic.NewMessageContentSource(
						anthropic.MessagesContentSourceTypeBase64, "image/jpeg", imageBase64,
					)),
					anthropic.NewTextMessageContent(instruction),
				},
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call claude: %w", err)
	}
	return firstText(resp)
}

func (m *ClaudeModel) Complete(ctx context.Context, instruction, input string) (string, error) {
	resp, err := m.client.CreateMessages(ctx, anthropic.MessagesRequest{
		Model:     m.model,
		MaxTokens: maxTokens,
		Messages: []anthropic.Message{
			anthropic.NewUserTextMessage(instruction + "\n\n" + input),
		},
	})
	if err != nil {
		return "", fmt.Errorf("failed to call claude: %w", err)
	}
	return firstText(resp)
}

func firstText(resp anthropic.MessagesResponse) (string, error) {
	text := resp.GetFirstContentText()
	if text == "" {
		return "", fmt.Errorf("claude response contains no text content")
	}
	return text, nil
}
