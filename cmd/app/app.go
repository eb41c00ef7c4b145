package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"xivfinder.app/backend/cmd/app/server"
	"xivfinder.app/backend/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "xivfinder",
		Description: "The XIV Finder backend: aggregates in-game Party Finder recruitment listings. Built with Go, fiber, bun and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
