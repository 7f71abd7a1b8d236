package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/search"
)

// Interactive commands; any other line is typed into the search input.
const (
	openCommand   = ":open"
	closeCommand  = ":close"
	submitCommand = ":go"
	quitCommand   = ":quit"
)

// Run executes the interactive command.
func (c *InteractiveCmd) Run(deps *Dependencies) error {
	view := newTerminalView(deps.Stdout, deps.Converter)
	ctrl := search.NewController(view, deps.Loader, deps.Renderer, deps.Translator,
		search.WithDebounce(deps.Config.Debounce),
		search.WithControllerLogger(deps.Logger),
	)
	ctrl.Preload(deps.Ctx, c.Page)

	fmt.Fprintf(deps.Stderr, "Type to search. %s submits, %s clears, %s exits.\n", submitCommand, closeCommand, quitCommand)

	scanner := bufio.NewScanner(deps.Stdin)
	for scanner.Scan() {
		if deps.Ctx.Err() != nil {
			break
		}
		line := scanner.Text()
		switch strings.TrimSpace(line) {
		case quitCommand:
			ctrl.Close()
			ctrl.Wait()
			return nil
		case openCommand:
			ctrl.Toggle(deps.Ctx)
		case closeCommand:
			ctrl.Close()
		case submitCommand:
			ctrl.Submit(deps.Ctx)
		default:
			if !ctrl.Visible() {
				ctrl.Toggle(deps.Ctx)
			}
			view.SetQuery(line)
			ctrl.Input(deps.Ctx)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	// Input ended; search whatever was typed last before leaving.
	if ctrl.Visible() {
		ctrl.Submit(deps.Ctx)
	}
	ctrl.Wait()
	return nil
}

// terminalView is a sitesearch.SearchView printing results to a writer.
type terminalView struct {
	out       io.Writer
	converter sitesearch.Converter

	mu    sync.Mutex
	query string
	shown string
}

func newTerminalView(out io.Writer, converter sitesearch.Converter) *terminalView {
	return &terminalView{out: out, converter: converter}
}

// SetQuery replaces the text of the search input.
func (v *terminalView) SetQuery(q string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.query = q
}

func (v *terminalView) Query() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.query
}

func (v *terminalView) ShowSearch() {}

func (v *terminalView) HideSearch() {}

func (v *terminalView) SetExpanded(bool) {}

func (v *terminalView) FocusInput() {}

func (v *terminalView) ClearInput() {
	v.SetQuery("")
}

// ShowResults prints markup as Markdown, skipping repeats of what is
// already on screen.
func (v *terminalView) ShowResults(markup string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if markup == v.shown {
		return
	}
	v.shown = markup

	text := markup
	if v.converter != nil {
		if md, err := v.converter.Convert(markup); err == nil {
			text = md
		}
	}
	fmt.Fprintf(v.out, "%s\n\n", strings.TrimSpace(text))
}

func (v *terminalView) HideResults() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.shown = ""
}
