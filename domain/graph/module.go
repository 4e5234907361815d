package graph

import (
	"go.uber.org/fx"
)

// Module provides the graph domain
var Module = fx.Module("graph",
	fx.Provide(
		fx.Annotate(NewRepository, fx.As(new(Store))),
		NewService,
		NewHandler,
	),
	fx.Invoke(RegisterRoutes),
)
