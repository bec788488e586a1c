// internal/client/openai.go
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lingualearn/internal/config"
)

// SentenceGenerator は練習用例文の生成を担います
//
//go:generate mockery --name SentenceGenerator --output ./mocks --outpkg mocks --case=underscore
type SentenceGenerator interface {
	GenerateSentences(ctx context.Context, languageName, difficulty string, count int) ([]string, error)
}

// OpenAIClient はOpenAI互換の chat/completions エンドポイントを叩く薄いクライアントです。
// base_url を差し替えることで互換プロバイダにも接続できます。
type OpenAIClient struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client
}

func NewOpenAIClient(cfg config.GeneratorConfig) *OpenAIClient {
	return &OpenAIClient{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Enabled はAPIキーが設定済みかを返します。未設定の環境では生成機能を無効化します。
func (c *OpenAIClient) Enabled() bool {
	return c.apiKey != ""
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error"`
}

// GenerateSentences は指定言語・難易度の例文を生成し、1例文1行で返します。
// 各行は "例文 | 訳" 形式になるようプロンプトで指示します。空行は除去済みです。
func (c *OpenAIClient) GenerateSentences(ctx context.Context, languageName, difficulty string, count int) ([]string, error) {
	prompt := fmt.Sprintf(
		"Generate %d short %s-level practice sentences in %s for a language learner. "+
			"Respond with exactly one sentence per line, in the format: sentence | English translation. "+
			"No numbering, no extra commentary.",
		count, difficulty, languageName,
	)

	reqBody := chatCompletionRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "user", Content: prompt},
		},
		Temperature: 0.7,
	}
	payload, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("OpenAIClient.GenerateSentences: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("OpenAIClient.GenerateSentences: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OpenAIClient.GenerateSentences: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("OpenAIClient.GenerateSentences: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var data chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("OpenAIClient.GenerateSentences: decode response: %w", err)
	}
	if data.Error != nil {
		return nil, fmt.Errorf("OpenAIClient.GenerateSentences: API error: %s", data.Error.Message)
	}
	if len(data.Choices) == 0 {
		return nil, fmt.Errorf("OpenAIClient.GenerateSentences: empty choices")
	}

	var lines []string
	for _, line := range strings.Split(data.Choices[0].Message.Content, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines, nil
}
