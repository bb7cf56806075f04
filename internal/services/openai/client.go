package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"stampvoice/internal/services"
)

const (
	jsonResponseType   = "json_object"
	defaultBaseURL     = "https://api.openai.com/v1"
	defaultHTTPTimeout = 120 * time.Second
)

// Config captures the runtime settings required to reach the API.
type Config struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

// Client talks to an OpenAI-compatible API.
type Client struct {
	cfg        Config
	httpClient *http.Client
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// NewClient constructs an API client using the supplied configuration.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	client := &Client{
		cfg: Config{
			APIKey:  strings.TrimSpace(cfg.APIKey),
			BaseURL: strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
			Timeout: timeout,
		},
		httpClient: &http.Client{Timeout: timeout},
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.cfg.BaseURL == "" {
		client.cfg.BaseURL = defaultBaseURL
	}
	if client.httpClient == nil {
		client.httpClient = &http.Client{Timeout: timeout}
	}
	return client
}

// Message is a single chat turn. Content is either a plain string or a slice
// of ContentPart values for multimodal turns.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// ContentPart is one element of a multimodal user turn.
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL carries an inline data URL or remote image reference.
type ImageURL struct {
	URL string `json:"url"`
}

// TextPart builds a text content part.
func TextPart(text string) ContentPart {
	return ContentPart{Type: "text", Text: text}
}

// ImagePart builds an image_url content part.
func ImagePart(dataURL string) ContentPart {
	return ContentPart{Type: "image_url", ImageURL: &ImageURL{URL: dataURL}}
}

// ChatRequest describes a single chat-completions call.
type ChatRequest struct {
	Model       string
	Messages    []Message
	Temperature float64
	JSONOnly    bool
}

type chatCompletionRequest struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format,omitempty"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message *struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// ChatCompletion issues one chat request and returns the trimmed content of
// the first choice. Missing choices, a missing message, or blank content are
// tagged with services.ErrEmptyResponse.
func (c *Client) ChatCompletion(ctx context.Context, request ChatRequest) (string, error) {
	payload := chatCompletionRequest{
		Model:       request.Model,
		Messages:    request.Messages,
		Temperature: request.Temperature,
	}
	if request.JSONOnly {
		payload.ResponseFormat = map[string]string{"type": jsonResponseType}
	}

	body, err := c.post(ctx, "/chat/completions", payload, "application/json")
	if err != nil {
		return "", err
	}

	var completion chatCompletionResponse
	if err := json.Unmarshal(body, &completion); err != nil {
		return "", fmt.Errorf("openai chat: decode response: %w", err)
	}
	if completion.Error != nil {
		return "", fmt.Errorf("openai chat: api error: %s", strings.TrimSpace(completion.Error.Message))
	}
	if len(completion.Choices) == 0 {
		return "", services.Wrap(services.ErrEmptyResponse, "openai", "chat", "no choices returned", nil)
	}
	message := completion.Choices[0].Message
	if message == nil {
		return "", services.Wrap(services.ErrEmptyResponse, "openai", "chat", "choice has no message", nil)
	}
	content := strings.TrimSpace(message.Content)
	if content == "" {
		return "", services.Wrap(services.ErrEmptyResponse, "openai", "chat", "empty content", nil)
	}
	return content, nil
}

// SpeechRequest describes a single speech-synthesis call.
type SpeechRequest struct {
	Model  string
	Voice  string
	Input  string
	Format string
}

type speechRequest struct {
	Model          string `json:"model"`
	Voice          string `json:"voice"`
	Input          string `json:"input"`
	ResponseFormat string `json:"response_format"`
}

// Speech issues one speech-synthesis request and returns the raw audio bytes.
// An empty payload is tagged with services.ErrEmptyAudio.
func (c *Client) Speech(ctx context.Context, request SpeechRequest) ([]byte, error) {
	payload := speechRequest{
		Model:          request.Model,
		Voice:          request.Voice,
		Input:          request.Input,
		ResponseFormat: request.Format,
	}
	body, err := c.post(ctx, "/audio/speech", payload, "*/*")
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, services.Wrap(services.ErrEmptyAudio, "openai", "speech", "no audio bytes returned", nil)
	}
	return body, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, accept string) ([]byte, error) {
	endpoint, err := url.JoinPath(c.cfg.BaseURL, path)
	if err != nil {
		return nil, fmt.Errorf("openai request: build url: %w", err)
	}
	encoded, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("openai request: encode body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(encoded))
	if err != nil {
		return nil, fmt.Errorf("openai request: new request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", accept)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openai request: http error: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("openai request: read body: %w", err)
	}
	if resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("openai request: http %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}
