package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/matheus3301/chardetect/internal/config"
	"github.com/matheus3301/chardetect/internal/paths"
	"github.com/matheus3301/chardetect/internal/tui"
	"github.com/matheus3301/chardetect/internal/tui/client"
)

func main() {
	homeFlag := flag.String("home", "", "data directory (default $"+paths.HomeEnv+" or ~/.chardetect)")
	flag.Parse()

	home := paths.Resolve(*homeFlag)
	cfg, err := config.LoadOrDefault(paths.ConfigPath(home))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	// Starts the daemon when none is answering on the socket.
	c, err := client.Ensure(home, paths.SocketPath(home), 10*time.Second)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = c.Close() }()

	app := tui.NewApp(c, cfg, home)
	if err := app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
