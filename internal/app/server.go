package app

import (
	"encoding/json"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/zacademygit/Zacademy-sub001/internal/actions"
	"github.com/zacademygit/Zacademy-sub001/internal/clock"
	"github.com/zacademygit/Zacademy-sub001/internal/content"
	"github.com/zacademygit/Zacademy-sub001/internal/logging"
)

// Catalog is the article listing the blog index renders.
type Catalog interface {
	content.Store
	List() []content.ArticleRecord
	Len() int
}

// Deps are the collaborators a Server is built from.
type Deps struct {
	Site     content.Site
	Articles Catalog
	Defaults content.Defaults
	Gateway  *actions.Gateway
	Logger   *slog.Logger
	Clock    clock.Clock
}

// Server wires handlers, templates, and content together.
type Server struct {
	cfg       Config
	site      content.Site
	articles  Catalog
	resolver  *content.Resolver
	gateway   *actions.Gateway
	reveal    revealSets
	templates map[string]*template.Template
	markdown  goldmark.Markdown
	logger    *slog.Logger
	mux       *http.ServeMux
}

var pageTemplates = []string{"home.gohtml", "blog.gohtml", "article.gohtml", "register.gohtml"}

// NewServer constructs an HTTP handler ready to serve the site.
func NewServer(cfg Config, deps Deps) (*Server, error) {
	if deps.Articles == nil {
		return nil, fmt.Errorf("missing article catalog")
	}
	if deps.Logger == nil {
		deps.Logger = logging.Discard()
	}
	if deps.Clock == nil {
		deps.Clock = clock.Real()
	}
	if deps.Defaults.Content.Introduction == "" {
		deps.Defaults = content.DefaultTemplate()
	}
	if deps.Gateway == nil {
		deps.Gateway = actions.NewGateway(nil, actions.WithLogger(deps.Logger))
	}

	templates, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	srv := &Server{
		cfg:       cfg,
		site:      deps.Site,
		articles:  deps.Articles,
		resolver:  content.NewResolver(deps.Articles, deps.Defaults, deps.Logger.With("component", "resolver")),
		gateway:   deps.Gateway,
		reveal:    newRevealSets(cfg.Reveal, deps.Clock),
		templates: templates,
		markdown:  newMarkdown(),
		logger:    deps.Logger,
		mux:       http.NewServeMux(),
	}

	srv.mux.HandleFunc("GET /{$}", srv.handleIndex)
	srv.mux.HandleFunc("GET /blog", srv.handleBlog)
	srv.mux.HandleFunc("GET /blog/{id}", srv.handleArticle)
	srv.mux.HandleFunc("POST /blog/{id}/share", srv.handleShare)
	srv.mux.HandleFunc("POST /blog/{id}/bookmark", srv.handleBookmark)
	srv.mux.HandleFunc("GET /register", srv.handleRegister)
	srv.mux.HandleFunc("GET /register/{role}", srv.handleRegisterRole)
	srv.mux.HandleFunc("GET /healthz", srv.handleHealth)
	srv.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServerFS(static)))

	return srv, nil
}

func parseTemplates() (map[string]*template.Template, error) {
	templates := make(map[string]*template.Template, len(pageTemplates))
	for _, name := range pageTemplates {
		tmpl, err := template.New(name).ParseFS(templateFS, "templates/layout.gohtml", "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		templates[name] = tmpl
	}
	return templates, nil
}

// ServeHTTP satisfies http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// Gateway returns the action gateway so the caller can drain it on
// shutdown.
func (s *Server) Gateway() *actions.Gateway {
	return s.gateway
}

// page is the data every template's layout needs.
type page struct {
	Title       string
	SiteName    string
	Description string
	Interactive bool
	NoIndex     bool
}

func (s *Server) page(r *http.Request, title, description string) page {
	full := s.site.Name
	if title != "" {
		full = title + " | " + s.site.Name
	}
	return page{
		Title:       full,
		SiteName:    s.site.Name,
		Description: description,
		Interactive: hasViewport(r),
	}
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := s.templates[name]
	if !ok {
		s.logger.Error("unknown template", "template", name)
		http.Error(w, "template missing", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Accept-CH", "Sec-CH-Prefers-Reduced-Motion")
	w.Header().Add("Vary", "Sec-CH-Prefers-Reduced-Motion")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		s.logger.Error("render page", "template", name, "error", err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	p := s.page(r, "", s.site.Hero.Subtitle)
	data := struct {
		page
		Hero            content.Hero
		ValueProps      region[content.Feature]
		Differentiators region[content.Feature]
		Testimonials    region[content.Testimonial]
		Roles           region[content.Role]
	}{
		page:            p,
		Hero:            s.site.Hero,
		ValueProps:      newRegion(s.reveal, p.Interactive, s.site.ValueProps),
		Differentiators: newRegion(s.reveal, p.Interactive, s.site.Differentiators),
		Testimonials:    newRegion(s.reveal, p.Interactive, s.site.Testimonials),
		Roles:           newRegion(s.reveal, p.Interactive, s.site.Roles),
	}
	s.render(w, "home.gohtml", data)
}

func (s *Server) handleBlog(w http.ResponseWriter, r *http.Request) {
	p := s.page(r, "ბლოგი", "")
	data := struct {
		page
		Articles region[content.ArticleRecord]
	}{
		page:     p,
		Articles: newRegion(s.reveal, p.Interactive, s.articles.List()),
	}
	s.render(w, "blog.gohtml", data)
}

type renderedSection struct {
	Heading string
	Body    template.HTML
}

func (s *Server) handleArticle(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	article := s.resolver.Resolve(id)

	sections := make([]renderedSection, len(article.Content.Sections))
	for i, section := range article.Content.Sections {
		sections[i] = renderedSection{
			Heading: section.Heading,
			Body:    s.renderMarkdown(section.Content, article.ID),
		}
	}

	p := s.page(r, article.Title, article.Excerpt)
	p.NoIndex = article.Synthetic
	data := struct {
		page
		Article      content.ResolvedArticle
		Introduction template.HTML
		Sections     region[renderedSection]
		Conclusion   template.HTML
		Back         string
		ActionBase   string
	}{
		page:         p,
		Article:      article,
		Introduction: s.renderMarkdown(article.Content.Introduction, article.ID),
		Sections:     newRegion(s.reveal, p.Interactive, sections),
		Conclusion:   s.renderMarkdown(article.Content.Conclusion, article.ID),
		Back:         backLink(r),
		ActionBase:   articlePath(id),
	}
	s.render(w, "article.gohtml", data)
}

// backLink navigates to the article the reader came from, or the index.
func backLink(r *http.Request) string {
	from := content.NormalizeID(r.URL.Query().Get("from"))
	if from == "" {
		return "/blog"
	}
	return articlePath(from)
}

func articlePath(id string) string {
	return "/blog/" + url.PathEscape(id)
}

// actionResponse is what the page script applies after an action: an
// optional clipboard write and the confirmations to show. ClipboardFailed
// replaces Messages when the browser refuses the write.
type actionResponse struct {
	Method          actions.Method `json:"method"`
	Clipboard       string         `json:"clipboard,omitempty"`
	ClipboardFailed string         `json:"clipboardFailed,omitempty"`
	Messages        []string       `json:"messages,omitempty"`
}

// responseSurface collects the user-visible effects of an action so the
// browser can apply them.
type responseSurface struct {
	clipboard string
	messages  []string
}

func (s *responseSurface) WriteText(text string) error {
	s.clipboard = text
	return nil
}

func (s *responseSurface) Confirm(message string) {
	s.messages = append(s.messages, message)
}

func (s *Server) handleShare(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	article := s.resolver.Resolve(id)
	payload := actions.Payload{
		Title: article.Title,
		Text:  article.Excerpt,
		URL:   s.absoluteURL(r, articlePath(id)),
	}

	surface := &responseSurface{}
	outcome := s.gateway.Share(r.Context(), payload, surface)
	resp := actionResponse{Method: outcome.Method, Clipboard: surface.clipboard, Messages: surface.messages}
	if resp.Clipboard != "" {
		resp.ClipboardFailed = s.gateway.Messages().CopyFailed
	}
	s.writeJSON(w, resp)
}

func (s *Server) handleBookmark(w http.ResponseWriter, r *http.Request) {
	surface := &responseSurface{}
	outcome := s.gateway.Bookmark(surface)
	s.writeJSON(w, actionResponse{Method: outcome.Method, Messages: surface.messages})
}

// absoluteURL prefers the configured public origin over request headers.
func (s *Server) absoluteURL(r *http.Request, path string) string {
	if s.cfg.BaseURL != "" {
		return s.cfg.BaseURL + path
	}
	scheme := "http"
	if r.TLS != nil || strings.EqualFold(r.Header.Get("X-Forwarded-Proto"), "https") {
		scheme = "https"
	}
	return scheme + "://" + r.Host + path
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	p := s.page(r, "რეგისტრაცია", "")
	data := struct {
		page
		Roles region[content.Role]
	}{
		page:  p,
		Roles: newRegion(s.reveal, p.Interactive, s.site.Roles),
	}
	s.render(w, "register.gohtml", data)
}

func (s *Server) handleRegisterRole(w http.ResponseWriter, r *http.Request) {
	role, ok := s.site.Role(r.PathValue("role"))
	if !ok || role.Path == "" {
		http.Redirect(w, r, "/register", http.StatusFound)
		return
	}
	http.Redirect(w, r, role.Path, http.StatusFound)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, struct {
		Status   string `json:"status"`
		Articles int    `json:"articles"`
	}{Status: "ok", Articles: s.articles.Len()})
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("write json", "error", err)
	}
}
