package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/matheus3301/chardetect/internal/config"
	"github.com/matheus3301/chardetect/internal/paths"
	"github.com/matheus3301/chardetect/internal/tui/client"
)

type env struct {
	home    string
	jsonOut bool
	cfg     *config.Config
	client  *client.Client
}

// dial connects to the daemon on first use; share and config commands work
// without one.
func (e *env) dial() *client.Client {
	if e.client != nil {
		return e.client
	}
	c, err := client.New(paths.SocketPath(e.home))
	if err != nil {
		fatalf("cannot connect to daemon in %s: %v", e.home, err)
	}
	e.client = c
	return c
}

func main() {
	homeFlag := flag.String("home", "", "data directory (default $"+paths.HomeEnv+" or ~/.chardetect)")
	jsonFlag := flag.Bool("json", false, "output in JSON format")
	flag.Usage = printUsage
	flag.Parse()

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(1)
	}

	home := paths.Resolve(*homeFlag)
	cfg, err := config.LoadOrDefault(paths.ConfigPath(home))
	if err != nil {
		fatalf("load config: %v", err)
	}

	e := &env{home: home, jsonOut: *jsonFlag, cfg: cfg}
	defer func() {
		if e.client != nil {
			_ = e.client.Close()
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "status":
		cmdStatus(ctx, e)
	case "classify":
		cmdClassify(ctx, e, rest)
	case "describe":
		cmdDescribe(ctx, e, rest)
	case "blocks":
		cmdBlocks(ctx, e, rest)
	case "history":
		if len(rest) == 0 {
			rest = []string{"list"}
		}
		if rest[0] == "watch" {
			// Watching runs until interrupted.
			cancel()
			cmdHistoryWatch(e)
			return
		}
		cmdHistory(ctx, e, rest[0], rest[1:])
	case "share":
		cmdShare(e, rest)
	case "open":
		cmdOpen(ctx, e, rest)
	case "config":
		cmdConfig(e, rest)
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: chardetctl [--home <dir>] [--json] <command>")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  status                        Show daemon status")
	fmt.Fprintln(os.Stderr, "  classify [--save] [--id ID] [text]")
	fmt.Fprintln(os.Stderr, "                                Classify text (stdin when omitted)")
	fmt.Fprintln(os.Stderr, "  describe <char|U+XXXX>...     Describe single characters")
	fmt.Fprintln(os.Stderr, "  blocks [filter]               List Unicode blocks")
	fmt.Fprintln(os.Stderr, "  history list [--limit N] [--offset N]")
	fmt.Fprintln(os.Stderr, "  history show <id>")
	fmt.Fprintln(os.Stderr, "  history search [--block NAME] [query]")
	fmt.Fprintln(os.Stderr, "  history delete <id>")
	fmt.Fprintln(os.Stderr, "  history stats [--limit N]")
	fmt.Fprintln(os.Stderr, "  history watch                 Stream sample changes")
	fmt.Fprintln(os.Stderr, "  share [--qr] [text]           Print a share link for text")
	fmt.Fprintln(os.Stderr, "  open <token|link>             Classify the text of a share link")
	fmt.Fprintln(os.Stderr, "  config [show|init]            Show or write the configuration")
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}

// textArg joins the positional arguments, or reads stdin when there are none.
func textArg(args []string) string {
	if len(args) > 0 {
		return strings.Join(args, " ")
	}
	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		fatalf("read stdin: %v", err)
	}
	return strings.TrimSuffix(string(b), "\n")
}

func outputJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "json encode error: %v\n", err)
	}
}
