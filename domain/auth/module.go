package auth

import (
	"go.uber.org/fx"
)

// Module provides the auth domain
var Module = fx.Module("auth",
	fx.Provide(NewService),
	fx.Provide(NewHandler),
	fx.Invoke(RegisterRoutes),
)
