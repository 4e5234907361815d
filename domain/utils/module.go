package utils

import (
	"go.uber.org/fx"
)

// Module provides the utility routes
var Module = fx.Module("utils",
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)
