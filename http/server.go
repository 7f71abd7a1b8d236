package http

import (
	"context"
	"encoding/json"
	"errors"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/sitesearch"
	"github.com/fwojciec/sitesearch/goquery"
	"github.com/fwojciec/sitesearch/i18n"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// LanguageCookie carries the visitor's chosen language between requests.
const LanguageCookie = sitesearch.LanguagePreferenceKey

// ContactSentKey is the translation key of the contact form confirmation.
const ContactSentKey = "contacto.enviado"

const contactSentText = "Formulario enviado!"

// Searcher answers queries against the site index.
type Searcher interface {
	Search(ctx context.Context, tr sitesearch.Translator, query string) ([]sitesearch.SearchResult, error)
}

// Server serves the static site with its pages translated and given a page
// map, plus the search endpoint and the contact form stub.
type Server struct {
	Site     fs.FS
	Searcher Searcher
	Catalog  *i18n.Catalog
	Renderer sitesearch.ResultRenderer

	// Metrics, when set, is served at /metrics.
	Metrics http.Handler

	// Middleware wraps every route, after the request logger.
	Middleware []func(http.Handler) http.Handler

	Logger *slog.Logger

	httpServer *http.Server
}

// searchResponse is the JSON body of /search.
type searchResponse struct {
	Query    string                    `json:"query"`
	Language string                    `json:"language"`
	Total    int                       `json:"total"`
	Results  []sitesearch.SearchResult `json:"results"`
	HTML     string                    `json:"html,omitempty"`
}

// Handler returns the router serving every route.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	for _, mw := range s.Middleware {
		r.Use(mw)
	}

	r.Get("/search", s.handleSearch)
	r.Post("/contact", s.handleContact)
	r.Post("/language", s.handleLanguage)
	if s.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.Metrics)
	}
	r.Get("/*", s.handleSite)

	return r
}

// ListenAndServe serves Handler on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger().Info("listening", "addr", addr)
		errCh <- s.httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

// translator picks the request's language: the lang query parameter, then
// the language cookie, then Accept-Language, then the default language.
func (s *Server) translator(r *http.Request) *i18n.Dictionary {
	if lang := r.URL.Query().Get("lang"); s.Catalog.Has(lang) {
		return s.Catalog.Dictionary(lang)
	}
	if c, err := r.Cookie(LanguageCookie); err == nil && s.Catalog.Has(c.Value) {
		return s.Catalog.Dictionary(c.Value)
	}
	if lang := i18n.MatchLanguage(r.Header.Get("Accept-Language"), s.Catalog.Languages()); lang != "" {
		return s.Catalog.Dictionary(lang)
	}
	return s.Catalog.Dictionary(s.Catalog.Default())
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	tr := s.translator(r)
	raw := r.URL.Query().Get("q")

	results, err := s.Searcher.Search(r.Context(), tr, raw)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	if results == nil {
		results = []sitesearch.SearchResult{}
	}

	query, ok := sitesearch.NormalizeQuery(raw)
	resp := searchResponse{
		Query:    query,
		Language: tr.Language(),
		Total:    sitesearch.TotalMatches(results),
		Results:  results,
	}
	if ok && s.Renderer != nil {
		resp.HTML = s.Renderer.Render(results, query, tr)
	}

	if r.URL.Query().Get("format") == "html" {
		writeCached(w, r, "text/html; charset=utf-8", []byte(resp.HTML))
		return
	}

	body, err := json.Marshal(resp)
	if err != nil {
		s.Error(w, r, err)
		return
	}
	writeCached(w, r, "application/json", body)
}

// writeCached writes body with a content hash ETag, answering 304 when the
// client already holds it.
func writeCached(w http.ResponseWriter, r *http.Request, contentType string, body []byte) {
	etag := `"` + strconv.FormatUint(xxhash.Sum64(body), 16) + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Vary", "Accept-Language, Cookie")
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(body)
}

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		s.Error(w, r, sitesearch.Errorf(sitesearch.EINVALID, "invalid form"))
		return
	}
	s.logger().Info("form submitted",
		"name", r.PostForm.Get("nombre"),
		"email", r.PostForm.Get("email"),
		"message_bytes", len(r.PostForm.Get("mensaje")),
	)

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(sitesearch.TranslateOr(s.translator(r), ContactSentKey, contactSentText)))
}

// handleLanguage stores the chosen language in a cookie and sends the
// visitor back to the page they came from on this site.
func (s *Server) handleLanguage(w http.ResponseWriter, r *http.Request) {
	lang := r.FormValue("lang")
	if !s.Catalog.Has(lang) {
		s.Error(w, r, sitesearch.Errorf(sitesearch.EINVALID, "unsupported language %q", lang))
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     LanguageCookie,
		Value:    lang,
		Path:     "/",
		MaxAge:   365 * 24 * 60 * 60,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, sameHostReferer(r), http.StatusSeeOther)
}

// sameHostReferer returns the path of the referring page when it is on
// this host, and "/" otherwise.
func sameHostReferer(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Host != r.Host || ref.Path == "" {
		return "/"
	}
	return ref.RequestURI()
}

func (s *Server) handleSite(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimPrefix(path.Clean("/"+chi.URLParam(r, "*")), "/")
	if name == "" || strings.HasSuffix(r.URL.Path, "/") {
		name = path.Join(name, sitesearch.IndexPage)
	}

	if path.Ext(name) != ".html" {
		http.ServeFileFS(w, r, s.Site, name)
		return
	}

	data, err := fs.ReadFile(s.Site, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.Error(w, r, sitesearch.Errorf(sitesearch.ENOTFOUND, "page %q not found", name))
			return
		}
		s.Error(w, r, err)
		return
	}

	page, err := goquery.EnhancePage(string(data), s.translator(r))
	if err != nil {
		s.Error(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Vary", "Accept-Language, Cookie")
	_, _ = w.Write([]byte(page))
}
