package main

import (
	"context"
	"io"
	"io/fs"
	"log/slog"

	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/i18n"
	"github.com/fwojciec/sitesearch/prometheus"
	"github.com/fwojciec/sitesearch/search"
	"github.com/fwojciec/sitesearch/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Config      *sitesearch.SiteConfig
	Catalog     *i18n.Catalog
	Language    *i18n.Manager
	Translator  sitesearch.Translator
	Preferences *sqlite.PreferenceService

	// Site is the local site directory; nil when pages are fetched over HTTP.
	Site      fs.FS
	Fetcher   sitesearch.Fetcher
	Loader    *search.Loader
	Renderer  sitesearch.ResultRenderer
	Converter sitesearch.Converter
	Metrics   *prometheus.Metrics
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `short:"c" default:"sitesearch.yaml" help:"Site configuration file"`
	BaseURL string `name:"base-url" help:"Fetch pages from this URL instead of base_url"`
	Dir     string `short:"d" help:"Read pages from a local site directory"`
	Lang    string `short:"l" help:"Display language for this run, without saving it"`
	DB      string `name:"db" help:"Preferences database path (default: $SITESEARCH_DB or ~/.sitesearch/prefs.db)"`
	Verbose bool   `short:"v" help:"Log debug output to stderr"`

	Search      SearchCmd      `cmd:"" help:"Search every page of the site"`
	Index       IndexCmd       `cmd:"" help:"Show the searchable fragments of the site"`
	Outline     OutlineCmd     `cmd:"" help:"Show the page map of a page"`
	Resolve     ResolveCmd     `cmd:"" help:"Resolve a deep link such as index.html#graduado-0"`
	Language    LangCmd        `cmd:"" name:"lang" help:"Show or change the display language"`
	Interactive InteractiveCmd `cmd:"" help:"Search as you type, one query per line"`
	Serve       ServeCmd       `cmd:"" help:"Serve the site with search"`
	Export      ExportCmd      `cmd:"" help:"Write the translated site for every language"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query  string `arg:"" help:"Search query"`
	Format string `short:"f" enum:"text,markdown,html,json" default:"text" help:"Output format (text, markdown, html, json)"`
}

// IndexCmd is the "index" subcommand.
type IndexCmd struct {
	Page string `arg:"" optional:"" help:"Only this page"`
	JSON bool   `help:"Print fragments as JSON"`
}

// OutlineCmd is the "outline" subcommand.
type OutlineCmd struct {
	Page string `arg:"" default:"index.html" help:"Page file name"`
}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Link string `arg:"" help:"Page and fragment, as page.html#fragment"`
}

// LangCmd is the "lang" subcommand group.
type LangCmd struct {
	Get   LangGetCmd   `cmd:"" default:"1" help:"Show the display language"`
	Set   LangSetCmd   `cmd:"" help:"Change and save the display language"`
	Reset LangResetCmd `cmd:"" help:"Forget the saved display language"`
}

// LangGetCmd is the "lang get" subcommand.
type LangGetCmd struct{}

// LangSetCmd is the "lang set" subcommand.
type LangSetCmd struct {
	Code string `arg:"" help:"Language code"`
}

// LangResetCmd is the "lang reset" subcommand.
type LangResetCmd struct{}

// InteractiveCmd is the "interactive" subcommand.
type InteractiveCmd struct {
	Page string `default:"index.html" help:"Page being viewed, loaded first"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `short:"a" default:":8080" help:"Listen address"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Out string `short:"o" required:"" help:"Output directory"`
}
