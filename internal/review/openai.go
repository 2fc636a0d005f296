package review

import (
	"context"
	"errors"
	"time"

	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"golang.org/x/time/rate"
)

// Defaults for the OpenAI-backed classifier.
const (
	DefaultModel   = "gpt-4.1-mini"
	DefaultTimeout = 20 * time.Second
)

// OpenAIClassifier implements TextClassifier using the official openai-go
// SDK (chat completions). One request per paragraph, bounded timeout, no
// retries: a transient failure just forfeits that paragraph's verdict.
type OpenAIClassifier struct {
	model   string
	opts    []option.RequestOption
	timeout time.Duration
	limiter *rate.Limiter
}

// OpenAIConfig configures the classifier.
type OpenAIConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
	// RPS caps outbound calls per second; zero disables limiting.
	RPS int
}

// NewOpenAIClassifier builds a classifier from config. The API key is
// required; everything else has defaults.
func NewOpenAIClassifier(cfg OpenAIConfig) (*OpenAIClassifier, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("openai api key missing")
	}
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	model := cfg.Model
	if model == "" {
		model = DefaultModel
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	c := &OpenAIClassifier{
		model:   model,
		opts:    opts,
		timeout: timeout,
	}
	if cfg.RPS > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RPS), cfg.RPS)
	}
	return c, nil
}

// Classify sends one paragraph to the completion service and parses the
// JSON verdict from the response.
func (c *OpenAIClassifier) Classify(ctx context.Context, text string) (*Verdict, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	client := openai.NewClient(c.opts...)
	resp, err := client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(c.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(buildPrompt(text)),
		},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("openai: empty choices")
	}
	return parseVerdict(resp.Choices[0].Message.Content)
}
