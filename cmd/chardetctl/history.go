package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"google.golang.org/grpc/codes"
	grpcstatus "google.golang.org/grpc/status"

	chardetv1 "github.com/matheus3301/chardetect/internal/wire/chardetv1"
)

func cmdHistory(ctx context.Context, e *env, sub string, args []string) {
	h := e.dial().History
	switch sub {
	case "list":
		fs := flag.NewFlagSet("history list", flag.ExitOnError)
		limit := fs.Int("limit", 20, "maximum number of samples")
		offset := fs.Int("offset", 0, "samples to skip")
		_ = fs.Parse(args)

		resp, err := h.ListSamples(ctx, &chardetv1.ListSamplesRequest{Limit: int32(*limit), Offset: int32(*offset)})
		if err != nil {
			fatalf("%v", err)
		}
		if e.jsonOut {
			outputJSON(resp)
			return
		}
		if len(resp.Samples) == 0 {
			fmt.Println("No saved samples.")
			return
		}
		printSamples(os.Stdout, resp.Samples)
		if resp.HasMore {
			fmt.Printf("%d of %d shown, use --offset %d for more\n", len(resp.Samples), resp.Total, *offset+len(resp.Samples))
		}

	case "show":
		if len(args) != 1 {
			fatalf("usage: chardetctl history show <id>")
		}
		resp, err := h.GetSample(ctx, &chardetv1.GetSampleRequest{Id: args[0]})
		if err != nil {
			fatalf("%v", err)
		}
		if e.jsonOut {
			outputJSON(resp)
			return
		}
		s := resp.Sample
		fmt.Printf("ID:       %s\n", s.Id)
		fmt.Printf("Created:  %s\n", formatTime(s.CreatedAt))
		fmt.Printf("Updated:  %s\n", formatTime(s.UpdatedAt))
		fmt.Printf("Chars:    %d (%d substituted)\n", s.CharCount, s.SubstitutedCount)
		fmt.Printf("Token:    %s\n", s.ShareToken)
		fmt.Printf("Text:     %s\n", preview(s.Body, 200))
		for _, b := range s.Blocks {
			fmt.Printf("  %-40s %5d  first at %d\n", b.BlockName, b.CharCount, b.FirstIndex)
		}

	case "search":
		fs := flag.NewFlagSet("history search", flag.ExitOnError)
		block := fs.String("block", "", "only samples containing this block")
		limit := fs.Int("limit", 20, "maximum number of results")
		_ = fs.Parse(args)

		resp, err := h.SearchSamples(ctx, &chardetv1.SearchSamplesRequest{
			Query: strings.Join(fs.Args(), " "),
			Block: *block,
			Limit: int32(*limit),
		})
		if err != nil {
			fatalf("%v", err)
		}
		if e.jsonOut {
			outputJSON(resp)
			return
		}
		if len(resp.Results) == 0 {
			fmt.Println("No matches.")
			return
		}
		printSearchResults(os.Stdout, resp.Results)

	case "delete":
		if len(args) != 1 {
			fatalf("usage: chardetctl history delete <id>")
		}
		resp, err := h.DeleteSample(ctx, &chardetv1.DeleteSampleRequest{Id: args[0]})
		if err != nil {
			fatalf("%v", err)
		}
		if e.jsonOut {
			outputJSON(resp)
			return
		}
		fmt.Printf("Deleted %s\n", args[0])

	case "stats":
		fs := flag.NewFlagSet("history stats", flag.ExitOnError)
		limit := fs.Int("limit", 20, "maximum number of blocks")
		_ = fs.Parse(args)

		resp, err := h.BlockStats(ctx, &chardetv1.BlockStatsRequest{Limit: int32(*limit)})
		if err != nil {
			fatalf("%v", err)
		}
		if e.jsonOut {
			outputJSON(resp)
			return
		}
		if len(resp.Stats) == 0 {
			fmt.Println("No saved samples.")
			return
		}
		printBlockStats(os.Stdout, resp.Stats)

	default:
		fatalf("unknown history subcommand: %s", sub)
	}
}

func cmdHistoryWatch(e *env) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	stream, err := e.dial().History.WatchSamples(ctx, &chardetv1.WatchSamplesRequest{})
	if err != nil {
		fatalf("%v", err)
	}
	for {
		evt, err := stream.Recv()
		if err != nil {
			if errors.Is(err, io.EOF) || grpcstatus.Code(err) == codes.Canceled {
				return
			}
			fatalf("%v", err)
		}
		if e.jsonOut {
			outputJSON(evt)
			continue
		}
		fmt.Printf("%s  %-15s %s", time.UnixMilli(evt.Timestamp).Local().Format("15:04:05"), evt.Kind, evt.SampleId)
		if evt.CharCount > 0 {
			fmt.Printf("  (%d chars, %d blocks)", evt.CharCount, evt.BlockCount)
		}
		fmt.Println()
	}
}
