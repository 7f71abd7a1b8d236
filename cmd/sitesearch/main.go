package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/sitesearch"
	sitefs "github.com/fwojciec/sitesearch/fs"
	"github.com/fwojciec/sitesearch/goquery"
	"github.com/fwojciec/sitesearch/html"
	"github.com/fwojciec/sitesearch/htmltomarkdown"
	sitehttp "github.com/fwojciec/sitesearch/http"
	"github.com/fwojciec/sitesearch/i18n"
	sitekoanf "github.com/fwojciec/sitesearch/koanf"
	"github.com/fwojciec/sitesearch/prometheus"
	"github.com/fwojciec/sitesearch/search"
	siteslog "github.com/fwojciec/sitesearch/slog"
	"github.com/fwojciec/sitesearch/sqlite"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// Locale is the system language, such as "en_US.UTF-8", used to pick a
	// display language when none is stored.
	Locale string

	// Stdin feeds the interactive command.
	Stdin io.Reader

	// SQLite database holding user preferences.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Locale: os.Getenv("LANG"),
		Stdin:  os.Stdin,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("sitesearch"),
		kong.Description("Search, translate and serve a small static site"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'sitesearch --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := sitekoanf.LoadSiteConfig(cli.Config)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	if cli.BaseURL != "" {
		cfg.BaseURL = cli.BaseURL
	}
	deps.Config = cfg

	catalog, err := i18n.NewCatalog()
	if err != nil {
		return fmt.Errorf("failed to load dictionaries: %w", err)
	}
	if catalog, err = catalog.WithDefault(cfg.DefaultLanguage); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}
	deps.Catalog = catalog

	// Open database
	dbPath := m.DBPath
	if cli.DB != "" {
		dbPath = cli.DB
	}
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITESEARCH_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", dbPath, err)
	}
	defer m.Close()

	deps.Preferences = sqlite.NewPreferenceService(m.DB)
	deps.Language = i18n.NewManager(catalog, siteslog.NewLoggingPreferenceStore(deps.Preferences, deps.Logger), deps.Logger)
	deps.Language.Init(ctx, m.Locale)

	deps.Translator = deps.Language
	if cli.Lang != "" {
		if !catalog.Has(cli.Lang) {
			err := sitesearch.Errorf(sitesearch.EINVALID, "unsupported language %q (available: %s)", cli.Lang, strings.Join(catalog.Languages(), ", "))
			fmt.Fprintf(stderr, "error: %s\n", sitesearch.ErrorMessage(err))
			return err
		}
		deps.Translator = catalog.Dictionary(cli.Lang)
	}

	if cmd == "lang" {
		return kongCtx.Run(deps)
	}

	// Wire the site source and the index over it
	var fetcher sitesearch.Fetcher
	switch {
	case cli.Dir != "":
		deps.Site = os.DirFS(cli.Dir)
		fetcher = sitefs.NewFetcher(deps.Site)
	case cfg.BaseURL != "":
		base, err := url.Parse(cfg.BaseURL)
		if err != nil {
			return fmt.Errorf("invalid base URL %q: %w", cfg.BaseURL, err)
		}
		fetcher = sitehttp.NewFetcher(
			sitehttp.WithBaseURL(base),
			sitehttp.WithTimeout(cfg.Timeout),
			sitehttp.WithRequestsPerSecond(cfg.RequestsPerSecond),
		)
	default:
		err := sitesearch.Errorf(sitesearch.EINVALID, "no site to read: pass --dir or set base_url")
		fmt.Fprintf(stderr, "error: %s\n", sitesearch.ErrorMessage(err))
		return err
	}

	if cmd == "serve" {
		deps.Metrics = prometheus.NewMetrics()
		fetcher = prometheus.NewInstrumentedFetcher(fetcher, deps.Metrics)
	}

	deps.Fetcher = siteslog.NewLoggingFetcher(fetcher, deps.Logger)
	deps.Loader = search.NewLoader(cfg.Pages, deps.Fetcher,
		siteslog.NewLoggingExtractor(goquery.NewExtractor(), deps.Logger),
		search.WithConcurrency(cfg.Concurrency),
		search.WithLogger(deps.Logger),
	)
	deps.Renderer = html.NewRenderer()
	deps.Converter = htmltomarkdown.NewConverter()

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("SITESEARCH_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "sitesearch.db"
	}
	dir := filepath.Join(home, ".sitesearch")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "prefs.db")
}
