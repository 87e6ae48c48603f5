package repository

import "go.uber.org/fx"

var Module = fx.Module("repository",
	sessionModule,
)

var (
	sessionModule = fx.Provide(
		fx.Annotate(
			NewSessionStore,
			fx.As(new(SessionProvider)),
		),
		NewSessionStoreConfig,
	)
)
