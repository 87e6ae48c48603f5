package client

import "go.uber.org/fx"

var Module = fx.Module("debox_client",
	fx.Provide(
		fx.Annotate(
			NewDeBoxClient,
			fx.As(new(DeBoxProvider)),
		),
		NewDeBoxConfig,
	),
)
