package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-lens-pathtracer/web/server"
)

// Serve starts the HTTP render server.
func Serve(ctx *cli.Context) error {
	setupLogging(ctx)

	s := server.NewServer(ctx.Int("port"), ctx.String("dir"))
	logger.Noticef("visit http://localhost:%d/api/scenes to list scenes", ctx.Int("port"))
	return s.Start()
}
