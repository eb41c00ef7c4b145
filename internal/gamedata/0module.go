package gamedata

import (
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module("gamedata", fx.Provide(
		New,
	))
}
