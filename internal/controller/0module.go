package controller

import (
	"go.uber.org/fx"

	controllermeta "xivfinder.app/backend/internal/controller/meta"
	controllerv1 "xivfinder.app/backend/internal/controller/v1"
)

func Module() fx.Option {
	return fx.Module("controller",
		controllerv1.Module(),
		controllermeta.Module(),
	)
}
