package llm

import (
	"context"
	"sync"
	"time"

	"github.com/destars/debox-chat-go/internal/metrics"
	"github.com/kelseyhightower/envconfig"
	"github.com/sony/gobreaker/v2"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// CircuitBreakerRegistry keeps one breaker per chat model host, so a failing
// model stops being called while the webhook keeps answering commands.
type CircuitBreakerRegistry struct {
	breakers *sync.Map
	settings gobreaker.Settings
}

type CircuitBreakerRegistryParams struct {
	fx.In

	Config           CircuitBreakerRegistryConfig
	MetricsCollector *metrics.HTTPClientCollector `optional:"true"`
	Logger           *zap.Logger                  `optional:"true"`
}

func NewCircuitBreakerRegistry(params CircuitBreakerRegistryParams) *CircuitBreakerRegistry {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	collector := params.MetricsCollector

	return &CircuitBreakerRegistry{
		breakers: &sync.Map{},
		settings: gobreaker.Settings{
			MaxRequests: params.Config.MaxHalfOpenRequests,
			Timeout:     params.Config.OpenStateTimeout,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)

				return counts.Requests >= params.Config.MinRequestsBeforeTrip &&
					failureRatio >= (params.Config.FailureThresholdPercent/100)
			},
			OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
				logger.Warn("chat model circuit breaker state changed",
					zap.String("host", name),
					zap.String("from", from.String()),
					zap.String("to", to.String()),
				)
				if collector != nil {
					collector.RecordCircuitBreakerStateChange(context.Background(), name, from.String(), to.String())
				}
			},
		},
	}
}

type CircuitBreakerRegistryConfig struct {
	MaxHalfOpenRequests     uint32        `envconfig:"CIRCUIT_BREAKER_MAX_HALF_OPEN_REQUESTS" default:"1"`
	OpenStateTimeout        time.Duration `envconfig:"CIRCUIT_BREAKER_OPEN_STATE_TIMEOUT" default:"30s"`
	MinRequestsBeforeTrip   uint32        `envconfig:"CIRCUIT_BREAKER_MIN_REQUESTS_BEFORE_TRIP" default:"3"`
	FailureThresholdPercent float64       `envconfig:"CIRCUIT_BREAKER_FAILURE_THRESHOLD_PERCENT" default:"60"`
}

func NewCircuitBreakerRegistryConfig() CircuitBreakerRegistryConfig {
	var cfg CircuitBreakerRegistryConfig
	envconfig.MustProcess("", &cfg)

	return cfg
}

func (r *CircuitBreakerRegistry) GetOrCreate(host string) *gobreaker.CircuitBreaker[string] {
	if cb, ok := r.breakers.Load(host); ok {
		return cb.(*gobreaker.CircuitBreaker[string])
	}

	settings := r.settings
	settings.Name = host

	cb := gobreaker.NewCircuitBreaker[string](settings)

	actual, _ := r.breakers.LoadOrStore(host, cb)
	return actual.(*gobreaker.CircuitBreaker[string])
}
