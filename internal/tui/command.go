package tui

import (
	"fmt"
	"strings"

	"github.com/matheus3301/chardetect/internal/blocks"
)

// Command represents a parsed command.
type Command struct {
	Name string
	Args string
}

// ParseCommand parses a command string (without the leading ':').
func ParseCommand(input string) Command {
	input = strings.TrimSpace(input)
	parts := strings.SplitN(input, " ", 2)
	cmd := Command{Name: strings.ToLower(parts[0])}
	if len(parts) > 1 {
		cmd.Args = strings.TrimSpace(parts[1])
	}
	return cmd
}

// commandHelp lists the prompt commands for the help page.
var commandHelp = [][2]string{
	{":text <text>", "Replace the text"},
	{":open <token|link>", "Load a shared text"},
	{":save", "Save the text to the history"},
	{":load <id>", "Load a saved sample"},
	{":delete <id>", "Delete a saved sample"},
	{":search <query>", "Search saved samples"},
	{":hl <block>", "Highlight a block"},
	{":nohl", "Clear the highlight"},
	{":blocks [filter]", "Show the block catalog"},
	{":history", "Show saved samples"},
	{":share", "Show the share link"},
	{":reset", "Restore the default text"},
	{":help", "Show this help"},
	{":quit / :q", "Quit"},
}

// resolveBlock finds the block a user typed: an exact name, a name that
// differs only in case, or the only block whose name contains the input.
func resolveBlock(table *blocks.Table, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("block name required")
	}
	if b, ok := table.Lookup(input); ok {
		return b.Name, nil
	}
	matches := table.Filter(input)
	for _, b := range matches {
		if strings.EqualFold(b.Name, input) {
			return b.Name, nil
		}
	}
	switch len(matches) {
	case 0:
		return "", fmt.Errorf("no block matches %q", input)
	case 1:
		return matches[0].Name, nil
	}
	names := make([]string, 0, 3)
	for _, b := range matches[:min(3, len(matches))] {
		names = append(names, b.Name)
	}
	return "", fmt.Errorf("%q is ambiguous: %s...", input, strings.Join(names, ", "))
}

func (a *App) runCommand(cmd Command) {
	switch cmd.Name {
	case "q", "quit", "exit":
		a.Stop()
	case "help", "?":
		a.openPage(pageHelp)
	case "history":
		a.openHistory()
	case "blocks":
		a.openCatalog(cmd.Args)
	case "search":
		a.openSearch(cmd.Args)
	case "share":
		a.openShare()
	case "save", "w":
		a.save()
	case "reset":
		a.reset()
	case "nohl":
		a.clearHighlight()
	case "text":
		a.vm.Detach()
		a.setText(cmd.Args)
	case "open":
		a.openShared(cmd.Args)
	case "load":
		if cmd.Args == "" {
			a.flash.Warn("usage: :load <id>")
			break
		}
		a.loadSample(cmd.Args)
	case "delete":
		if cmd.Args == "" {
			a.flash.Warn("usage: :delete <id>")
			break
		}
		a.deleteSample(cmd.Args)
	case "hl":
		name, err := resolveBlock(blocks.Default(), cmd.Args)
		if err != nil {
			a.flash.Warn(err.Error())
			break
		}
		a.toggleHighlight(name)
	default:
		a.flash.Warn("unknown command: " + cmd.Name)
	}
	a.flashBar.Update(a.flash.Current())
}
