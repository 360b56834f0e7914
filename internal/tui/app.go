package tui

import (
	"context"
	"errors"
	"io"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/matheus3301/chardetect/internal/bus"
	"github.com/matheus3301/chardetect/internal/config"
	"github.com/matheus3301/chardetect/internal/glyph"
	"github.com/matheus3301/chardetect/internal/share"
	"github.com/matheus3301/chardetect/internal/tui/client"
	"github.com/matheus3301/chardetect/internal/tui/keys"
	"github.com/matheus3301/chardetect/internal/tui/model"
	"github.com/matheus3301/chardetect/internal/tui/ui"
	"github.com/matheus3301/chardetect/internal/tui/views"
	chardetv1 "github.com/matheus3301/chardetect/internal/wire/chardetv1"
)

const (
	pageDetect  = "Detect"
	pageHistory = "History"
	pageSearch  = "Search"
	pageShare   = "Share"
	pageCatalog = "Blocks"
	pageHelp    = "Help"

	classifyDelay   = 150 * time.Millisecond
	rpcTimeout      = 5 * time.Second
	statusInterval  = 5 * time.Second
	watchRetryDelay = 2 * time.Second
)

// App is the main TUI application shell.
type App struct {
	app      *tview.Application
	cfg      *config.Config
	home     string
	theme    *ui.Theme
	vm       *model.ViewModel
	grpc     *client.Client
	registry *keys.Registry
	flash    *ui.FlashModel

	header    *ui.Header
	crumbs    *ui.Crumbs
	pages     *ui.Pages
	prompt    *ui.Prompt
	flashBar  *ui.FlashBar
	statusBar *views.StatusBar
	layout    *tview.Flex

	detect  *views.DetectPage
	history *views.HistoryView
	search  *views.SearchView
	share   *views.ShareView
	catalog *views.CatalogView
	help    *views.HelpView

	debounceMu sync.Mutex
	debounce   *time.Timer
	classifyMu sync.Mutex
	generation atomic.Uint64

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the TUI application.
func NewApp(c *client.Client, cfg *config.Config, home string) *App {
	ctx, cancel := context.WithCancel(context.Background())
	theme := ui.DefaultTheme()
	mapper, err := cfg.Mapper()
	if err != nil {
		mapper = glyph.Default()
	}

	a := &App{
		app:       tview.NewApplication(),
		cfg:       cfg,
		home:      home,
		theme:     theme,
		vm:        model.NewViewModel(c),
		grpc:      c,
		registry:  keys.NewRegistry(),
		flash:     ui.NewFlashModel(),
		header:    ui.NewHeader(theme),
		crumbs:    ui.NewCrumbs(theme),
		pages:     ui.NewPages(),
		prompt:    ui.NewPrompt(theme),
		flashBar:  ui.NewFlashBar(theme),
		statusBar: views.NewStatusBar(theme),
		detect:    views.NewDetectPage(theme, cfg.GridColumns, cfg.DimFactor),
		history:   views.NewHistoryView(theme, mapper),
		search:    views.NewSearchView(theme, mapper),
		share:     views.NewShareView(theme),
		catalog:   views.NewCatalogView(theme),
		help:      views.NewHelpView(theme),
		ctx:       ctx,
		cancel:    cancel,
	}

	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()
	a.help.SetSections(a.helpSections())

	return a
}

func (a *App) setupBindings() {
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: 'q', Description: "Quit/Back", Visible: true,
		Handler: a.back,
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyEscape, Label: "esc", Description: "Back",
		Handler: func() { a.pages.Pop() },
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: ':', Description: "Command", Visible: true,
		Handler: func() { a.showPrompt(ui.PromptCommand, "") },
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyCtrlS, Label: "ctrl-s", Description: "Save", Visible: true,
		Handler: a.save,
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: 'h', Description: "History", Visible: true, Page: true,
		Handler: a.openHistory,
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: 'f', Description: "Search", Visible: true, Page: true,
		Handler: func() { a.openSearch("") },
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: 'b', Description: "Blocks", Visible: true, Page: true,
		Handler: func() { a.openCatalog(a.catalog.Filter()) },
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: 's', Description: "Share", Visible: true, Page: true,
		Handler: a.openShare,
	})
	a.registry.AddGlobal(&keys.Action{
		Key: tcell.KeyRune, Rune: '?', Description: "Help", Visible: true, Page: true,
		Handler: func() { a.openPage(pageHelp) },
	})

	a.registry.AddView(pageDetect, &keys.Action{
		Key: tcell.KeyRune, Rune: 'e', Description: "Edit", Visible: true,
		Handler: func() { a.app.SetFocus(a.detect.Editor) },
	})
	a.registry.AddView(pageDetect, &keys.Action{
		Key: tcell.KeyRune, Rune: 'i', Description: "Edit",
		Handler: func() { a.app.SetFocus(a.detect.Editor) },
	})
	a.registry.AddView(pageDetect, &keys.Action{
		Key: tcell.KeyRune, Rune: 'c', Description: "Clear highlight", Visible: true,
		Handler: a.clearHighlight,
	})
	a.registry.AddView(pageDetect, &keys.Action{
		Key: tcell.KeyRune, Rune: 'r', Description: "Reset", Visible: true,
		Handler: a.reset,
	})
	a.registry.AddView(pageDetect, &keys.Action{
		Key: tcell.KeyTab, Label: "tab",
		Handler: func() { a.app.SetFocus(a.detect.NextPane(false)) },
	})
	a.registry.AddView(pageDetect, &keys.Action{
		Key: tcell.KeyBacktab, Label: "shift-tab",
		Handler: func() { a.app.SetFocus(a.detect.NextPane(true)) },
	})

	a.registry.AddView(pageHistory, &keys.Action{
		Key: tcell.KeyRune, Rune: 'd', Description: "Delete", Visible: true,
		Handler: func() {
			if s := a.history.Selected(); s != nil {
				a.deleteSample(s.Id)
			}
		},
	})
	a.registry.AddView(pageHistory, &keys.Action{
		Key: tcell.KeyRune, Rune: 'r', Description: "Reload", Visible: true,
		Handler: a.openHistory,
	})
	a.registry.AddView(pageHistory, &keys.Action{
		Key: tcell.KeyRune, Rune: '/', Description: "Filter",
		Handler: func() { a.showPrompt(ui.PromptFilter, a.history.Filter()) },
	})
	a.registry.AddView(pageCatalog, &keys.Action{
		Key: tcell.KeyRune, Rune: '/', Description: "Filter",
		Handler: func() { a.showPrompt(ui.PromptFilter, a.catalog.Filter()) },
	})
	a.registry.AddView(pageCatalog, &keys.Action{
		Key: tcell.KeyRune, Rune: 'c', Description: "Clear highlight", Visible: true,
		Handler: a.clearHighlight,
	})
}

func (a *App) setupCallbacks() {
	a.detect.Editor.SetOnChange(a.scheduleClassify)

	a.detect.Grid.SetOnSelect(func(c *chardetv1.Character) {
		var b *chardetv1.Block
		if s := a.vm.Summary(c.Block); s != nil {
			b = s.Block
		}
		a.detect.Detail.ShowCharacter(c, b)
	})
	a.detect.Grid.SetOnToggle(func(c *chardetv1.Character) { a.toggleHighlight(c.Block) })

	a.detect.Blocks.SetOnSelect(func(s *chardetv1.BlockSummary) {
		name, _ := a.vm.Highlighted()
		a.detect.Detail.ShowBlock(s, name == s.Block.Name)
	})
	a.detect.Blocks.SetOnToggle(func(s *chardetv1.BlockSummary) { a.toggleHighlight(s.Block.Name) })

	a.catalog.SetOnToggle(func(b *chardetv1.Block) { a.toggleHighlight(b.Name) })
	a.history.SetOnOpen(a.loadSample)

	a.search.SetFocusFunc(func(p tview.Primitive) { a.app.SetFocus(p) })
	a.search.SetOnCancel(func() { a.pages.Pop() })
	a.search.SetOnOpen(a.loadSample)
	a.search.SetOnQuery(func(query, block string) {
		if query == "" && block == "" {
			a.flash.Warn("enter text or a block to search for")
			a.flashBar.Update(a.flash.Current())
			return
		}
		go func() {
			ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
			defer cancel()
			results, err := a.vm.Search(ctx, query, block)
			if err != nil {
				a.fail(err)
				return
			}
			a.app.QueueUpdateDraw(func() {
				a.search.Update(results)
				if len(results) > 0 {
					a.app.SetFocus(a.search.Results())
				}
			})
		}()
	})

	a.prompt.SetOnSubmit(func(mode ui.PromptMode, text string) {
		a.hidePrompt()
		switch mode {
		case ui.PromptCommand:
			a.runCommand(ParseCommand(text))
		case ui.PromptFilter:
			a.applyFilter(text)
		}
	})
	a.prompt.SetOnCancel(a.hidePrompt)

	a.pages.SetOnChange(func(top ui.Component, stack []string) {
		a.crumbs.Update(stack)
		a.header.SetHints(a.hints(top))
		a.app.SetFocus(top.Primary())
	})
}

func (a *App) setupLayout() {
	for _, c := range []ui.Component{a.detect, a.history, a.search, a.share, a.catalog, a.help} {
		a.pages.Add(c)
	}

	a.layout = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.header, 7, 0, false).
		AddItem(a.prompt, 0, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(a.flashBar, 1, 0, false).
		AddItem(a.statusBar, 1, 0, false)
	a.layout.SetBackgroundColor(a.theme.BgColor)

	a.app.SetRoot(a.layout, true)
	a.app.EnablePaste(true)
	a.app.SetInputCapture(a.handleKey)

	a.header.SetDaemon(nil)
	a.statusBar.SetStatus("CONNECTING")
	a.pages.Open(pageDetect)
}

func (a *App) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() == tcell.KeyCtrlC {
		a.Stop()
		return nil
	}

	// Text inputs handle their own keys; they report Esc and Tab through
	// their done funcs.
	if a.prompt.HasFocus() || a.search.InputFocused() {
		return ev
	}

	if a.detect.EditorFocused() {
		switch ev.Key() {
		case tcell.KeyTab, tcell.KeyBacktab:
			a.app.SetFocus(a.detect.NextPane(ev.Key() == tcell.KeyBacktab))
			return nil
		case tcell.KeyEscape:
			a.app.SetFocus(a.detect.Grid)
			return nil
		case tcell.KeyCtrlS:
			a.save()
			return nil
		}
		return ev
	}

	if a.registry.HandleEvent(a.pages.Current(), ev) {
		return nil
	}
	return ev
}

func (a *App) hints(c ui.Component) []ui.MenuHint {
	hints := c.Hints()
	for _, act := range a.registry.Hints(c.Name()) {
		hints = append(hints, ui.MenuHint{Key: actionLabel(act), Description: act.Description, Page: act.Page})
	}
	return hints
}

func (a *App) helpSections() []views.HelpSection {
	global := a.registry.Hints("")
	section := func(title, view string) views.HelpSection {
		s := views.HelpSection{Title: title}
		for _, act := range a.registry.Hints(view) {
			if view != "" && slices.Contains(global, act) {
				continue
			}
			s.Keys = append(s.Keys, [2]string{actionLabel(act), act.Description})
		}
		return s
	}
	return []views.HelpSection{
		section("Global", ""),
		section("Text", pageDetect),
		{Title: "Panes", Keys: [][2]string{
			{"tab / shift-tab", "Next / previous pane"},
			{"esc", "Leave the editor"},
			{"enter", "Toggle the block highlight"},
		}},
		section("History", pageHistory),
		{Title: "Commands", Keys: commandHelp},
	}
}

func actionLabel(act *keys.Action) string {
	if act.Label != "" {
		return act.Label
	}
	return string(act.Rune)
}

func (a *App) openPage(name string) {
	a.pages.Open(name)
}

func (a *App) back() {
	if !a.pages.Pop() {
		a.Stop()
	}
}

func (a *App) showPrompt(mode ui.PromptMode, initial string) {
	a.prompt.Activate(mode, initial)
	a.layout.ResizeItem(a.prompt, 3, 0)
	a.app.SetFocus(a.prompt)
}

func (a *App) hidePrompt() {
	a.layout.ResizeItem(a.prompt, 0, 0)
	if top := a.pages.Top(); top != nil {
		a.app.SetFocus(top.Primary())
	}
}

func (a *App) applyFilter(text string) {
	switch a.pages.Current() {
	case pageHistory:
		a.history.SetFilter(text)
	case pageCatalog:
		a.openCatalog(text)
	}
}

// fail reports err in the flash bar from any goroutine.
func (a *App) fail(err error) {
	if a.ctx.Err() != nil {
		return
	}
	a.flash.Err(err)
	a.app.QueueUpdateDraw(func() { a.flashBar.Update(a.flash.Current()) })
}

func (a *App) scheduleClassify(text string) {
	gen := a.generation.Add(1)
	a.debounceMu.Lock()
	defer a.debounceMu.Unlock()
	if a.debounce != nil {
		a.debounce.Stop()
	}
	a.debounce = time.AfterFunc(classifyDelay, func() { a.classify(gen, text) })
}

func (a *App) classify(gen uint64, text string) {
	a.classifyMu.Lock()
	defer a.classifyMu.Unlock()
	if gen != a.generation.Load() {
		return
	}
	ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
	defer cancel()
	if err := a.vm.Classify(ctx, text); err != nil {
		a.fail(err)
		return
	}
	a.app.QueueUpdateDraw(a.renderDetect)
}

// setText replaces the editor text. The change triggers a classification.
func (a *App) setText(text string) {
	a.pages.Open(pageDetect)
	a.detect.Editor.Replace(text)
}

func (a *App) renderDetect() {
	res := a.vm.Result()
	hl, _ := a.vm.Highlighted()
	var summaries []*chardetv1.BlockSummary
	var subs int32
	if res != nil {
		summaries = res.Blocks
		subs = res.Substitutions
	}
	a.detect.Blocks.Update(summaries, hl)
	a.detect.Grid.Update(res, a.vm.Active, hl)
	if a.detect.Blocks.HasFocus() {
		if s := a.detect.Blocks.Selected(); s != nil {
			a.detect.Detail.ShowBlock(s, s.Block.Name == hl)
		}
	}
	a.statusBar.SetSubstitutions(subs)
	a.statusBar.SetSample(a.vm.SampleID())
}

func (a *App) toggleHighlight(name string) {
	if a.vm.ToggleHighlight(name) {
		a.flash.Infof("highlighting %s", name)
	} else {
		a.flash.Info("highlight cleared")
	}
	a.renderHighlight()
}

func (a *App) clearHighlight() {
	a.vm.ClearHighlight()
	a.flash.Info("highlight cleared")
	a.renderHighlight()
}

func (a *App) renderHighlight() {
	a.renderDetect()
	hl, _ := a.vm.Highlighted()
	a.catalog.Update(a.vm.Catalog(), a.catalog.Filter(), hl)
	a.flashBar.Update(a.flash.Current())
}

func (a *App) reset() {
	a.vm.Detach()
	a.vm.ClearHighlight()
	a.setText(a.cfg.DefaultText)
	a.flash.Info("text reset")
	a.flashBar.Update(a.flash.Current())
}

func (a *App) save() {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		sample, created, err := a.vm.Save(ctx)
		if err != nil {
			a.fail(err)
			return
		}
		if created {
			a.flash.Infof("saved as %s", sample.Id)
		} else {
			a.flash.Infof("updated %s", sample.Id)
		}
		a.app.QueueUpdateDraw(func() {
			a.statusBar.SetSample(a.vm.SampleID())
			a.flashBar.Update(a.flash.Current())
		})
	}()
}

func (a *App) loadSample(id string) {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		text, err := a.vm.OpenSample(ctx, id)
		if err != nil {
			a.fail(err)
			return
		}
		a.flash.Infof("loaded %s", id)
		a.app.QueueUpdateDraw(func() {
			a.setText(text)
			a.app.SetFocus(a.detect.Grid)
			a.flashBar.Update(a.flash.Current())
		})
	}()
}

func (a *App) deleteSample(id string) {
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		if err := a.vm.DeleteSample(ctx, id); err != nil {
			a.fail(err)
			return
		}
		a.flash.Infof("deleted %s", id)
		a.refreshHistory(ctx)
	}()
}

func (a *App) openShared(arg string) {
	if arg == "" {
		a.flash.Warn("usage: :open <token|link>")
		return
	}
	text, err := share.Open(arg)
	if err != nil {
		a.flash.Err(err)
		return
	}
	a.vm.Detach()
	a.setText(text)
	a.flash.Info("opened shared text")
}

func (a *App) openHistory() {
	a.pages.Open(pageHistory)
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		a.refreshHistory(ctx)
	}()
}

func (a *App) refreshHistory(ctx context.Context) {
	if err := a.vm.LoadSamples(ctx); err != nil {
		a.fail(err)
		return
	}
	a.app.QueueUpdateDraw(func() {
		a.history.Update(a.vm.Samples())
		a.flashBar.Update(a.flash.Current())
	})
}

func (a *App) openCatalog(filter string) {
	a.pages.Open(pageCatalog)
	go func() {
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		defer cancel()
		if err := a.vm.LoadCatalog(ctx, filter); err != nil {
			a.fail(err)
			return
		}
		a.app.QueueUpdateDraw(func() {
			hl, _ := a.vm.Highlighted()
			a.catalog.Update(a.vm.Catalog(), filter, hl)
		})
	}()
}

func (a *App) openSearch(query string) {
	a.pages.Open(pageSearch)
	if query == "" {
		return
	}
	a.search.Prefill(query, "")
	a.search.Submit()
}

func (a *App) openShare() {
	link, err := a.vm.ShareLink(a.cfg.ShareBaseURL)
	if err != nil {
		a.flash.Err(err)
		a.flashBar.Update(a.flash.Current())
		return
	}
	a.share.Show(a.vm.Text(), link)
	a.pages.Open(pageShare)
}

// Run starts the TUI application.
func (a *App) Run() error {
	a.detect.Editor.Replace(a.cfg.DefaultText)
	go a.refreshStatus()
	go a.statusLoop()
	go a.watchSamples()
	return a.app.Run()
}

func (a *App) refreshStatus() {
	ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
	defer cancel()
	if err := a.vm.LoadStatus(ctx); err != nil {
		a.app.QueueUpdateDraw(func() {
			a.header.SetDaemon(nil)
			a.statusBar.SetStatus("UNREACHABLE")
		})
		return
	}
	st := a.vm.Status()
	a.app.QueueUpdateDraw(func() {
		a.header.SetDaemon(&ui.DaemonData{
			Home:        a.home,
			Status:      st.Status,
			Samples:     st.SampleCount,
			Blocks:      st.BlockCount,
			Placeholder: st.Placeholder,
			Watchers:    st.Watchers,
			Uptime:      time.Duration(st.UptimeMs) * time.Millisecond,
		})
		a.statusBar.SetStatus(st.Status)
	})
}

// statusLoop polls the daemon status and expires flash messages.
func (a *App) statusLoop() {
	status := time.NewTicker(statusInterval)
	defer status.Stop()
	tick := time.NewTicker(time.Second)
	defer tick.Stop()
	for {
		select {
		case <-status.C:
			a.refreshStatus()
		case <-tick.C:
			a.app.QueueUpdateDraw(func() { a.flashBar.Update(a.flash.Current()) })
		case <-a.ctx.Done():
			return
		}
	}
}

// watchSamples follows history changes made by any client and keeps the
// history page current. The stream is reopened after errors.
func (a *App) watchSamples() {
	for {
		err := a.followSamples()
		if a.ctx.Err() != nil {
			return
		}
		if err != nil && !errors.Is(err, io.EOF) {
			a.fail(err)
		}
		select {
		case <-time.After(watchRetryDelay):
		case <-a.ctx.Done():
			return
		}
	}
}

func (a *App) followSamples() error {
	stream, err := a.grpc.History.WatchSamples(a.ctx, &chardetv1.WatchSamplesRequest{})
	if err != nil {
		return err
	}
	for {
		ev, err := stream.Recv()
		if err != nil {
			return err
		}
		if ev.Kind == bus.KindSampleDeleted && ev.SampleId == a.vm.SampleID() {
			a.vm.Detach()
		}
		ctx, cancel := context.WithTimeout(a.ctx, rpcTimeout)
		a.refreshHistory(ctx)
		cancel()
		a.app.QueueUpdateDraw(func() { a.statusBar.SetSample(a.vm.SampleID()) })
	}
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.cancel()
	a.app.Stop()
}
