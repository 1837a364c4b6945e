package httpapi

import (
	"encoding/json"
	"errors"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/fieldside/loanwatch/internal/platform/observability"
	"github.com/fieldside/loanwatch/internal/render/blocks"
	"github.com/fieldside/loanwatch/internal/render/markdown"
	"github.com/fieldside/loanwatch/internal/storage"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100

	dateLayout = "2006-01-02"
)

type newsletterSummary struct {
	ID        uuid.UUID `json:"id"`
	WeekStart string    `json:"weekStart"`
	WeekEnd   string    `json:"weekEnd"`
	Title     string    `json:"title"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"createdAt"`
}

type newsletterPayload struct {
	newsletterSummary
	Content json.RawMessage `json:"content"`
	Blocks  json.RawMessage `json:"blocks,omitempty"`
}

func summarize(n *storage.Newsletter) newsletterSummary {
	return newsletterSummary{
		ID:        n.ID,
		WeekStart: n.WeekStart.Format(dateLayout),
		WeekEnd:   n.WeekEnd.Format(dateLayout),
		Title:     n.Title,
		Published: n.Published,
		CreatedAt: n.CreatedAt,
	}
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	limit := defaultListLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 && parsed <= maxListLimit {
			limit = parsed
		}
	}

	list, err := s.store.ListNewsletters(r.Context(), limit)
	if err != nil {
		s.serverError(w, r, err)

		return
	}

	summaries := make([]newsletterSummary, 0, len(list))
	for i := range list {
		summaries = append(summaries, summarize(&list[i]))
	}

	s.writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	n, err := s.store.LatestNewsletter(r.Context())
	if err != nil {
		s.notFoundOrError(w, r, err)

		return
	}

	s.writeJSON(w, http.StatusOK, payload(n))
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	n, ok := s.loadNewsletter(w, r)
	if !ok {
		return
	}

	s.writeJSON(w, http.StatusOK, payload(n))
}

func payload(n *storage.Newsletter) newsletterPayload {
	p := newsletterPayload{newsletterSummary: summarize(n), Content: n.Content}
	if len(n.Blocks) > 0 {
		p.Blocks = n.Blocks
	}

	return p
}

// handleMarkdown renders the stored document as markdown. The full
// variant serves the precomputed cache when one exists.
func (s *Server) handleMarkdown(w http.ResponseWriter, r *http.Request) {
	n, ok := s.loadNewsletter(w, r)
	if !ok {
		return
	}

	variant := r.URL.Query().Get("variant")
	if variant == "" {
		variant = "full"
	}

	var out string

	timer := prometheus.NewTimer(observability.NewsletterRenderDuration)

	switch variant {
	case "full":
		if n.MarkdownCache != "" {
			out = n.MarkdownCache
		} else {
			opts := markdown.DefaultOptions()
			opts.WebURL = s.webURL
			out = markdown.RenderBytes(n.Content, opts)
		}
	case "compact":
		out = markdown.RenderCompactBytes(n.Content)
	default:
		timer.ObserveDuration()
		http.Error(w, "unknown variant", http.StatusBadRequest)

		return
	}

	timer.ObserveDuration()
	observability.NewsletterRenders.WithLabelValues(variant).Inc()

	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(out))
}

// handlePage serves the web reader view. Issues stored with a block
// list render block by block; older issues fall back to the markdown
// document wrapped in a preformatted section.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	n, ok := s.loadNewsletter(w, r)
	if !ok {
		return
	}

	view := blocks.View{
		PlayerID:     r.URL.Query().Get("player"),
		WeekStart:    n.WeekStart.Format(dateLayout),
		WeekEnd:      n.WeekEnd.Format(dateLayout),
		IsSubscribed: isSubscriber(r),
		Brand:        s.brand,
	}

	var body template.HTML

	if len(n.Blocks) > 0 {
		list, err := blocks.DecodeBlocks(n.Blocks)
		if err != nil {
			s.serverError(w, r, err)

			return
		}

		body = template.HTML(s.renderer.Render(r.Context(), list, view))
		observability.NewsletterRenders.WithLabelValues("blocks").Inc()
	} else {
		opts := markdown.DefaultOptions()
		opts.WebURL = s.webURL
		body = markdownFallback(markdown.RenderBytes(n.Content, opts))
		observability.NewsletterRenders.WithLabelValues("page_fallback").Inc()
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")

	err := pageTmpl.Execute(w, pageData{Title: pageTitle(n, s.brand), Brand: s.brand, Body: body})
	if err != nil {
		s.logger.Error().Err(err).Msg("render newsletter page")
	}
}

func pageTitle(n *storage.Newsletter, brand string) string {
	if n.Title != "" {
		return n.Title
	}

	return brand
}

// isSubscriber trusts the header set by the auth proxy in front of this
// service.
func isSubscriber(r *http.Request) bool {
	switch r.Header.Get("X-Subscriber") {
	case "1", "true":
		return true
	}

	return false
}

func (s *Server) loadNewsletter(w http.ResponseWriter, r *http.Request) (*storage.Newsletter, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid newsletter id", http.StatusBadRequest)

		return nil, false
	}

	n, err := s.store.GetNewsletter(r.Context(), id)
	if err != nil {
		s.notFoundOrError(w, r, err)

		return nil, false
	}

	return n, true
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("encode response")
	}
}

func (s *Server) notFoundOrError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, storage.ErrNotFound) {
		http.Error(w, "newsletter not found", http.StatusNotFound)

		return
	}

	s.serverError(w, r, err)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error().Str("path", r.URL.Path).Err(err).Msg("request failed")
	http.Error(w, "internal error", http.StatusInternalServerError)
}
