package main

import (
	"flag"

	"go.uber.org/fx"

	"github.com/matheus3301/chardetect/internal/daemon"
	"github.com/matheus3301/chardetect/internal/paths"
)

func main() {
	homeFlag := flag.String("home", "", "data directory (default $"+paths.HomeEnv+" or ~/.chardetect)")
	levelFlag := flag.String("log-level", "", "minimum log level (debug, info, warn, error)")
	flag.Parse()

	app := fx.New(
		daemon.Module(daemon.Params{
			Home:     paths.Resolve(*homeFlag),
			LogLevel: *levelFlag,
		}),
	)

	app.Run()
}
