package deepseek

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/tyonekura/koibumi/internal/llm"
)

const defaultAPIURL = "https://api.deepseek.com/v1/chat/completions"

const requestTimeout = 30 * time.Second

type request struct {
	Model       string        `json:"model"`
	Messages    []llm.Message `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type response struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type Client struct {
	apiKey  string
	model   string
	client  *http.Client
	baseURL string
}

func NewClient(apiKey, model string) *Client {
	return &Client{
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: requestTimeout},
		baseURL: defaultAPIURL,
	}
}

func (c *Client) Name() string { return "deepseek" }

func (c *Client) CreateChatCompletion(ctx context.Context, messages []llm.Message) (string, error) {
	body := request{
		Model:       c.model,
		Messages:    messages,
		Temperature: 0.9,
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &llm.ProviderError{Provider: c.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		errBody, _ := io.ReadAll(resp.Body)
		return "", &llm.ProviderError{Provider: c.Name(), StatusCode: resp.StatusCode, Body: string(errBody)}
	}

	var respBody response
	if err := json.NewDecoder(resp.Body).Decode(&respBody); err != nil {
		return "", &llm.ProviderError{Provider: c.Name(), Err: fmt.Errorf("failed to decode response: %w", err)}
	}
	if len(respBody.Choices) == 0 {
		return "", &llm.ProviderError{Provider: c.Name(), Err: fmt.Errorf("response contains no choices")}
	}

	return respBody.Choices[0].Message.Content, nil
}
