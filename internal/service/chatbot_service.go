package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tyonekura/koibumi/internal/llm"
)

const chatbotSystemPrompt = `あなたはマッチングアプリユーザーの多目的アシスタントです。
ユーザーの質問や悩みに対して、柔軟かつ簡潔に応答してください。

以下のガイドラインに従ってください：
1. ユーザーの質問内容に合わせて柔軟に対応する
2. 応答は簡潔にし、必要最小限の情報を提供する（長文は避ける）
3. マッチングアプリに関する質問には具体的なアドバイスを提供する
4. 一般的な質問には直接回答する
5. 相手のプロフィール情報や会話履歴は参考程度に留め、過度な分析は避ける
6. 常に親しみやすく自然な会話を心がける

重要：応答は3-4文程度の簡潔な内容にとどめ、箇条書きや長いリストは避けてください。`

type ChatbotService struct {
	client llm.ChatClient
	logger *slog.Logger
}

func NewChatbotService(client llm.ChatClient, logger *slog.Logger) *ChatbotService {
	return &ChatbotService{client: client, logger: logger}
}

// Respond answers a free-form user question, grounding the answer on
// whatever partner context is available. Empty context fields are rendered
// as explicit "no information" markers rather than omitted.
func (s *ChatbotService) Respond(ctx context.Context, userMessage, partnerName, profileInfo, history string) (string, error) {
	if profileInfo == "" {
		profileInfo = "情報なし"
	}
	if history == "" {
		history = "情報なし"
	}

	userPrompt := fmt.Sprintf(`【ユーザーの質問】
%s

【参考情報】
相手の名前: %s
プロフィール: %s
過去の会話: %s

上記を踏まえて、ユーザーの質問に直接答えてください。マッチングアプリに関する質問であれば適切なアドバイスを、一般的な質問であれば直接回答を提供してください。

重要: 回答は3-4文程度の簡潔な内容にし、箇条書きは避けてください。自然な会話のように応答してください。`,
		userMessage, partnerName, profileInfo, history)

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: chatbotSystemPrompt},
		{Role: llm.RoleUser, Content: userPrompt},
	}

	answer, err := s.client.CreateChatCompletion(ctx, messages)
	if err != nil {
		return "", err
	}

	s.logger.Info("chatbot response generated", "provider", s.client.Name(), "answer_len", len(answer))
	return answer, nil
}
