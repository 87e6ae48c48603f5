package llm

import "go.uber.org/fx"

var Module = fx.Module("llm",
	fx.Provide(
		fx.Annotate(
			NewCompleter,
			fx.As(new(CompleterProvider)),
		),
		NewCompleterConfig,
		NewCircuitBreakerRegistry,
		NewCircuitBreakerRegistryConfig,
	),
)
