package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/matheus3301/chardetect/internal/share"
	chardetv1 "github.com/matheus3301/chardetect/internal/wire/chardetv1"
)

func cmdStatus(ctx context.Context, e *env) {
	resp, err := e.dial().Detector.GetStatus(ctx, &chardetv1.GetStatusRequest{})
	if err != nil {
		fatalf("%v", err)
	}
	if e.jsonOut {
		outputJSON(resp)
		return
	}
	fmt.Printf("Status:      %s\n", resp.Status)
	if resp.StatusMessage != "" {
		fmt.Printf("Reason:      %s\n", resp.StatusMessage)
	}
	fmt.Printf("PID:         %d\n", resp.Pid)
	fmt.Printf("Uptime:      %s\n", (time.Duration(resp.UptimeMs) * time.Millisecond).Round(time.Second))
	fmt.Printf("Blocks:      %d\n", resp.BlockCount)
	fmt.Printf("Samples:     %d\n", resp.SampleCount)
	fmt.Printf("Placeholder: %s\n", resp.Placeholder)
	fmt.Printf("Watchers:    %d\n", resp.Watchers)
}

func cmdClassify(ctx context.Context, e *env, args []string) {
	fs := flag.NewFlagSet("classify", flag.ExitOnError)
	save := fs.Bool("save", false, "store the text in the history")
	id := fs.String("id", "", "sample id to save under (implies --save)")
	_ = fs.Parse(args)

	req := &chardetv1.ClassifyRequest{
		Text:     textArg(fs.Args()),
		Save:     *save || *id != "",
		SampleId: *id,
	}
	classify(ctx, e, req)
}

func classify(ctx context.Context, e *env, req *chardetv1.ClassifyRequest) {
	resp, err := e.dial().Detector.Classify(ctx, req)
	if err != nil {
		fatalf("%v", err)
	}
	if e.jsonOut {
		outputJSON(resp)
		return
	}
	printCharacters(os.Stdout, resp.Characters)
	fmt.Println()
	printBlockSummaries(os.Stdout, resp.Blocks)
	fmt.Printf("\n%d characters, %d blocks, %d substituted\n", len(resp.Characters), len(resp.Blocks), resp.Substitutions)
	if resp.SampleId != "" {
		fmt.Printf("Saved as %s\n", resp.SampleId)
	}
}

// parseCodePoint accepts U+XXXX, u+XXXX and 0xXXXX notation.
func parseCodePoint(s string) (rune, bool) {
	var hex string
	switch {
	case len(s) > 2 && (strings.HasPrefix(s, "U+") || strings.HasPrefix(s, "u+")):
		hex = s[2:]
	case len(s) > 2 && (strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")):
		hex = s[2:]
	default:
		return 0, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, false
	}
	r := rune(n)
	if !utf8.ValidRune(r) {
		return 0, false
	}
	return r, true
}

// describeText turns describe arguments into the text to classify: code
// point notation becomes that character, anything else is taken literally.
func describeText(args []string) string {
	var sb strings.Builder
	for _, a := range args {
		if r, ok := parseCodePoint(a); ok {
			sb.WriteRune(r)
			continue
		}
		sb.WriteString(a)
	}
	return sb.String()
}

func cmdDescribe(ctx context.Context, e *env, args []string) {
	if len(args) == 0 {
		fatalf("usage: chardetctl describe <char|U+XXXX>...")
	}
	resp, err := e.dial().Detector.Classify(ctx, &chardetv1.ClassifyRequest{Text: describeText(args)})
	if err != nil {
		fatalf("%v", err)
	}
	if e.jsonOut {
		outputJSON(resp.Characters)
		return
	}
	blocks := make(map[string]*chardetv1.Block, len(resp.Blocks))
	for _, s := range resp.Blocks {
		blocks[s.Block.Name] = s.Block
	}
	for i, c := range resp.Characters {
		if i > 0 {
			fmt.Println()
		}
		fmt.Printf("Character:  %s\n", c.Visual)
		fmt.Printf("Code point: %s\n", c.CodePoint)
		fmt.Printf("Name:       %s\n", c.Name)
		fmt.Printf("Kind:       %s\n", c.Kind)
		b := blocks[c.Block]
		if b == nil {
			fmt.Printf("Block:      %s\n", c.Block)
			continue
		}
		fmt.Printf("Block:      %s (%s)\n", b.Name, b.Range)
		if b.Reference != "" {
			fmt.Printf("Reference:  %s\n", b.Reference)
		}
	}
}

func cmdBlocks(ctx context.Context, e *env, args []string) {
	resp, err := e.dial().Detector.ListBlocks(ctx, &chardetv1.ListBlocksRequest{Query: strings.Join(args, " ")})
	if err != nil {
		fatalf("%v", err)
	}
	if e.jsonOut {
		outputJSON(resp)
		return
	}
	if len(resp.Blocks) == 0 {
		fmt.Println("No blocks match.")
		return
	}
	printBlocks(os.Stdout, resp.Blocks)
}

func cmdShare(e *env, args []string) {
	fs := flag.NewFlagSet("share", flag.ExitOnError)
	qr := fs.Bool("qr", false, "also print the link as a QR code")
	_ = fs.Parse(args)

	text := textArg(fs.Args())
	link, err := share.Link(e.cfg.ShareBaseURL, text)
	if err != nil {
		fatalf("%v", err)
	}
	if e.jsonOut {
		outputJSON(map[string]string{"token": share.Encode(text), "link": link})
		return
	}
	fmt.Println(link)
	if *qr {
		art, err := share.RenderQR(link)
		if err != nil {
			fatalf("%v", err)
		}
		fmt.Print(art)
	}
}

func cmdOpen(ctx context.Context, e *env, args []string) {
	if len(args) != 1 {
		fatalf("usage: chardetctl open <token|link>")
	}
	text, err := share.Open(args[0])
	if err != nil {
		fatalf("%v", err)
	}
	classify(ctx, e, &chardetv1.ClassifyRequest{Text: text})
}
