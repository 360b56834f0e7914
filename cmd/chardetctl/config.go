package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matheus3301/chardetect/internal/config"
	"github.com/matheus3301/chardetect/internal/paths"
)

func cmdConfig(e *env, args []string) {
	sub := "show"
	if len(args) > 0 {
		sub = args[0]
	}
	path := paths.ConfigPath(e.home)
	switch sub {
	case "show":
		if e.jsonOut {
			outputJSON(e.cfg)
			return
		}
		fmt.Printf("# %s\n", path)
		if err := toml.NewEncoder(os.Stdout).Encode(e.cfg); err != nil {
			fatalf("%v", err)
		}
	case "init":
		if _, err := os.Stat(path); err == nil {
			fatalf("%s already exists", path)
		}
		if err := config.Save(path, config.Default()); err != nil {
			fatalf("%v", err)
		}
		fmt.Printf("Wrote %s\n", path)
	default:
		fatalf("unknown config subcommand: %s", sub)
	}
}
