package meta

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"xivfinder.app/backend/internal/app/appconfig"
	"xivfinder.app/backend/internal/model/cache"
	"xivfinder.app/backend/internal/model/types"
	"xivfinder.app/backend/internal/pkg/pferr"
	"xivfinder.app/backend/internal/server/svr"
	"xivfinder.app/backend/internal/util/rekuest"
)

type Admin struct {
	fx.In

	Config *appconfig.Config
}

func RegisterAdmin(meta *svr.Meta, c Admin) {
	// operational helper; only exposed on dev deployments since there is no
	// authentication layer in front of it.
	if c.Config.DevMode {
		meta.Post("/purge", c.PurgeCache)
	}
}

func (c *Admin) PurgeCache(ctx *fiber.Ctx) error {
	var request types.PurgeCacheRequest
	if err := rekuest.ValidBody(ctx, &request); err != nil {
		return err
	}
	for _, pair := range request.Pairs {
		if err := cache.Delete(pair.Name, pair.Key); err != nil {
			return pferr.ErrInternalError.Msg("failed to purge cache %s: %s", pair.Name, err)
		}
	}
	return ctx.SendStatus(fiber.StatusNoContent)
}
