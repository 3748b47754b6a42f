package cmd

import (
	"github.com/urfave/cli"

	"github.com/df07/go-lens-pathtracer/pkg/log"
)

var logger = log.New("lens")

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}
