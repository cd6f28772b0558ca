package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"
)

const (
	// DefaultAPIURL OpenAI-совместимый chat-completions endpoint
	DefaultAPIURL = "https://api.groq.com/openai/v1/chat/completions"
	DefaultModel  = "llama-3.3-70b-versatile"

	// Повторы при 429: экспоненциальная пауза от базовой,
	// Retry-After сервера уважается, но не дольше потолка
	maxRateLimitRetries = 3
	backoffBase         = 500 * time.Millisecond
	backoffCap          = 10 * time.Second
)

// Client - клиент chat-completions API
type Client struct {
	baseURL    string
	apiKey     string
	model      string
	httpClient *http.Client

	// Тестовый крючок: пауза между повторами
	wait func(ctx context.Context, d time.Duration) error
}

// Message - сообщение для чата
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest - запрос к API
type ChatRequest struct {
	Model       string    `json:"model"`
	Messages    []Message `json:"messages"`
	Temperature float64   `json:"temperature,omitempty"`
	MaxTokens   int       `json:"max_tokens,omitempty"`
}

// ChatResponse - ответ от API
type ChatResponse struct {
	ID      string `json:"id"`
	Choices []struct {
		Message      Message `json:"message"`
		FinishReason string  `json:"finish_reason"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
		Type    string `json:"type"`
	} `json:"error,omitempty"`
}

// NewClient создаёт новый клиент
func NewClient(baseURL, apiKey, model string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		model:   model,
		httpClient: &http.Client{
			Timeout: 60 * time.Second,
		},
		wait: ctxWait,
	}
}

// ctxWait блокируется на delay или до отмены контекста —
// отменённый вызов не должен досыпать паузу между повторами
func ctxWait(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// SetModel устанавливает модель
func (c *Client) SetModel(model string) {
	c.model = model
}

// Chat отправляет сообщения и возвращает текст ответа.
// При 429 повторяет с экспоненциальной паузой.
func (c *Client) Chat(ctx context.Context, messages []Message, temperature float64) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRateLimitRetries; attempt++ {
		content, retryAfter, err := c.doChat(ctx, messages, temperature)
		if err == nil {
			return content, nil
		}
		lastErr = err
		if retryAfter < 0 {
			return "", err // Не rate limit, повторять бессмысленно
		}
		if attempt == maxRateLimitRetries {
			break
		}
		if err := c.wait(ctx, backoffDelay(attempt, retryAfter)); err != nil {
			return "", err
		}
	}
	return "", fmt.Errorf("лимит запросов не отпустил после %d повторов: %w", maxRateLimitRetries, lastErr)
}

// doChat один запрос. retryAfter >= 0 означает 429: пауза, подсказанная
// сервером (0, если сервер её не прислал).
func (c *Client) doChat(ctx context.Context, messages []Message, temperature float64) (content string, retryAfter time.Duration, err error) {
	req := ChatRequest{
		Model:       c.model,
		Messages:    messages,
		Temperature: temperature,
		MaxTokens:   4096,
	}

	jsonData, err := json.Marshal(req)
	if err != nil {
		return "", -1, fmt.Errorf("ошибка сериализации: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", -1, fmt.Errorf("ошибка создания запроса: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", -1, fmt.Errorf("ошибка запроса: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", -1, fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	if resp.StatusCode == http.StatusTooManyRequests {
		return "", parseRetryAfter(resp.Header.Get("Retry-After")), fmt.Errorf("лимит запросов (429)")
	}
	if resp.StatusCode != http.StatusOK {
		return "", -1, fmt.Errorf("ошибка API: статус %d: %s", resp.StatusCode, truncate(string(body), 200))
	}

	var chatResp ChatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return "", -1, fmt.Errorf("ошибка парсинга ответа: %w", err)
	}
	if chatResp.Error != nil {
		return "", -1, fmt.Errorf("ошибка API: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return "", -1, fmt.Errorf("пустой ответ от API")
	}

	return chatResp.Choices[0].Message.Content, -1, nil
}

// SimpleChat - простой запрос с одним сообщением
func (c *Client) SimpleChat(ctx context.Context, systemPrompt, userMessage string) (string, error) {
	messages := []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userMessage},
	}
	return c.Chat(ctx, messages, 0.7)
}

// backoffDelay выбирает паузу перед повтором: подсказка сервера,
// если она есть, иначе экспонента от базы. В обоих случаях не выше потолка.
func backoffDelay(attempt int, retryAfter time.Duration) time.Duration {
	delay := backoffBase << attempt
	if retryAfter > 0 {
		delay = retryAfter
	}
	if delay > backoffCap {
		delay = backoffCap
	}
	return delay
}

// parseRetryAfter разбирает заголовок Retry-After (секунды)
func parseRetryAfter(h string) time.Duration {
	if h == "" {
		return 0
	}
	secs, err := strconv.Atoi(h)
	if err != nil || secs < 0 {
		return 0
	}
	return time.Duration(secs) * time.Second
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
