package server

import (
	"go.uber.org/fx"

	"xivfinder.app/backend/internal/server/httpserver"
	"xivfinder.app/backend/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
