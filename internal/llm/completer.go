package llm

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"time"

	"github.com/destars/debox-chat-go/internal/metrics"
	"github.com/kelseyhightower/envconfig"
	"github.com/sashabaranov/go-openai"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

var ErrEmptyCompletion = errors.New("chat model returned no choices")

//go:generate mockgen -package mockllm -destination ./mock/mockllm.go . CompleterProvider
type CompleterProvider interface {
	Complete(ctx context.Context, message string) (string, error)
}

var _ CompleterProvider = (*Completer)(nil)

// Completer answers a single user message with an OpenAI compatible chat
// model. Each call carries only the system prompt and that message.
type Completer struct {
	client                 *openai.Client
	model                  string
	systemPrompt           string
	host                   string
	circuitBreakerRegistry *CircuitBreakerRegistry
	metricsCollector       *metrics.HTTPClientCollector
	logger                 *zap.Logger
}

type CompleterConfig struct {
	APIKey       string        `envconfig:"LLM_API_KEY" required:"true"`
	BaseURL      string        `envconfig:"LLM_BASE_URL" default:"https://api.deepseek.com"`
	Model        string        `envconfig:"LLM_MODEL" default:"deepseek-chat"`
	SystemPrompt string        `envconfig:"LLM_SYSTEM_PROMPT" default:"You are a helpful assistant."`
	Timeout      time.Duration `envconfig:"LLM_TIMEOUT" default:"60s"`
}

type CompleterParams struct {
	fx.In

	Config                 CompleterConfig
	CircuitBreakerRegistry *CircuitBreakerRegistry
	MetricsCollector       *metrics.HTTPClientCollector
	Logger                 *zap.Logger
}

func NewCompleter(params CompleterParams) (*Completer, error) {
	host, err := extractHost(params.Config.BaseURL)
	if err != nil {
		return nil, err
	}

	cfg := openai.DefaultConfig(params.Config.APIKey)
	cfg.BaseURL = params.Config.BaseURL
	cfg.HTTPClient = &http.Client{
		Timeout: params.Config.Timeout,
	}

	return &Completer{
		client:                 openai.NewClientWithConfig(cfg),
		model:                  params.Config.Model,
		systemPrompt:           params.Config.SystemPrompt,
		host:                   host,
		circuitBreakerRegistry: params.CircuitBreakerRegistry,
		metricsCollector:       params.MetricsCollector,
		logger:                 params.Logger,
	}, nil
}

func NewCompleterConfig() CompleterConfig {
	var cfg CompleterConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

func (c *Completer) Complete(ctx context.Context, message string) (string, error) {
	start := time.Now()

	circuitBreaker := c.circuitBreakerRegistry.GetOrCreate(c.host)
	c.metricsCollector.RecordCircuitBreakerState(ctx, c.host, circuitBreaker.State().String())

	req := openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: c.systemPrompt,
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: message,
			},
		},
		Stream: false,
	}

	reply, err := circuitBreaker.Execute(func() (string, error) {
		resp, err := c.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return "", err
		}
		if len(resp.Choices) == 0 {
			return "", ErrEmptyCompletion
		}
		return resp.Choices[0].Message.Content, nil
	})

	statusCode := http.StatusOK
	if err != nil {
		statusCode = statusCodeOf(err)
		c.logger.Error("chat completion failed",
			zap.String("host", c.host),
			zap.String("model", c.model),
			zap.Error(err),
		)
	}
	c.metricsCollector.RecordRequest(ctx, http.MethodPost, c.host, statusCode, time.Since(start), err)

	return reply, err
}

func statusCodeOf(err error) int {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		return apiErr.HTTPStatusCode
	}
	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.HTTPStatusCode
	}
	if errors.Is(err, ErrEmptyCompletion) {
		return http.StatusOK
	}
	return 0
}

func extractHost(u string) (string, error) {
	parsed, err := url.Parse(u)
	if err != nil {
		return "", err
	}
	return parsed.Host, nil
}
