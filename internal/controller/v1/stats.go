package v1

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/fx"

	"xivfinder.app/backend/internal/server/svr"
	"xivfinder.app/backend/internal/service"
)

type Stats struct {
	fx.In

	StatsService *service.Stats
}

func RegisterStats(v1 *svr.V1, c Stats) {
	v1.Get("/stats", c.GetStats)
}

// GetStats returns the last computed aggregate snapshot.
//
// @Summary   Get usage statistics
// @Tags      Stats
// @Produce   json
// @Success   200  {object}  modelv1.Stats
// @Router    /api/v1/stats [GET]
func (c *Stats) GetStats(ctx *fiber.Ctx) error {
	stats, err := c.StatsService.Get(ctx.UserContext())
	if err != nil {
		return err
	}

	return ctx.JSON(stats)
}
