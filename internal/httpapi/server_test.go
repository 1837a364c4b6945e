package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fieldside/loanwatch/internal/render/blocks"
	"github.com/fieldside/loanwatch/internal/storage"
)

type fakeStore struct {
	newsletters map[uuid.UUID]*storage.Newsletter
}

func (s *fakeStore) ListNewsletters(_ context.Context, limit int) ([]storage.Newsletter, error) {
	var list []storage.Newsletter
	for _, n := range s.newsletters {
		if len(list) == limit {
			break
		}

		list = append(list, *n)
	}

	return list, nil
}

func (s *fakeStore) GetNewsletter(_ context.Context, id uuid.UUID) (*storage.Newsletter, error) {
	n, ok := s.newsletters[id]
	if !ok {
		return nil, storage.ErrNotFound
	}

	return n, nil
}

func (s *fakeStore) LatestNewsletter(_ context.Context) (*storage.Newsletter, error) {
	for _, n := range s.newsletters {
		return n, nil
	}

	return nil, storage.ErrNotFound
}

const docJSON = `{
	"title": "Loan Watch Week 3",
	"summary": "A strong week for the midfielders.",
	"sections": [{
		"title": "Midfield",
		"items": [{"playerName": "Marc Vidal", "loanTeam": "Preston North End", "canFetchStats": true}]
	}]
}`

const blocksJSON = `[
	{"type": "text", "content": "Editor's intro."},
	{"type": "text", "isPremium": true, "content": "Premium analysis."}
]`

func newTestServer(t *testing.T) (*Server, uuid.UUID, uuid.UUID) {
	t.Helper()

	blockIssue := uuid.New()
	plainIssue := uuid.New()
	week := time.Date(2026, 8, 17, 0, 0, 0, 0, time.UTC)

	store := &fakeStore{newsletters: map[uuid.UUID]*storage.Newsletter{
		blockIssue: {
			ID: blockIssue, WeekStart: week, WeekEnd: week.AddDate(0, 0, 6),
			Title: "Loan Watch Week 3", Content: []byte(docJSON), Blocks: []byte(blocksJSON),
		},
		plainIssue: {
			ID: plainIssue, WeekStart: week, WeekEnd: week.AddDate(0, 0, 6),
			Title: "Loan Watch Week 3", Content: []byte(docJSON),
		},
	}}

	renderer := blocks.NewRenderer(nil, nil)

	return NewServer(store, renderer, "Loan Watch", "https://loanwatch.app", 0, zerolog.Nop()), blockIssue, plainIssue
}

func get(t *testing.T, handler http.Handler, path string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec
}

func TestListNewsletters(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := get(t, srv.Router(), "/api/newsletters", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []newsletterSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	assert.Len(t, summaries, 2)
	assert.Equal(t, "2026-08-17", summaries[0].WeekStart)
}

func TestGetNewsletter(t *testing.T) {
	srv, id, _ := newTestServer(t)

	rec := get(t, srv.Router(), "/api/newsletters/"+id.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var p newsletterPayload
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &p))
	assert.Equal(t, id, p.ID)
	assert.NotEmpty(t, p.Content)
	assert.NotEmpty(t, p.Blocks)
}

func TestGetNewsletterNotFound(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := get(t, srv.Router(), "/api/newsletters/"+uuid.NewString(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetNewsletterBadID(t *testing.T) {
	srv, _, _ := newTestServer(t)

	rec := get(t, srv.Router(), "/api/newsletters/not-a-uuid", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkdownFull(t *testing.T) {
	srv, id, _ := newTestServer(t)

	rec := get(t, srv.Router(), "/api/newsletters/"+id.String()+"/markdown", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "# Loan Watch Week 3")
	assert.Contains(t, body, "Marc Vidal")
}

func TestMarkdownCompact(t *testing.T) {
	srv, id, _ := newTestServer(t)

	rec := get(t, srv.Router(), "/api/newsletters/"+id.String()+"/markdown?variant=compact", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "| Player | Team | Stats |")
}

func TestMarkdownUnknownVariant(t *testing.T) {
	srv, id, _ := newTestServer(t)

	rec := get(t, srv.Router(), "/api/newsletters/"+id.String()+"/markdown?variant=pdf", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPageBlocksPremiumGate(t *testing.T) {
	srv, id, _ := newTestServer(t)

	rec := get(t, srv.Router(), "/newsletters/"+id.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Editor&#39;s intro.")
	assert.NotContains(t, body, "Premium analysis.")
	assert.Contains(t, body, "nl-locked")
}

func TestPageBlocksSubscriber(t *testing.T) {
	srv, id, _ := newTestServer(t)

	rec := get(t, srv.Router(), "/newsletters/"+id.String(), map[string]string{"X-Subscriber": "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, "Premium analysis.")
	assert.NotContains(t, body, "nl-locked")
}

func TestPageMarkdownFallback(t *testing.T) {
	srv, _, plainID := newTestServer(t)

	rec := get(t, srv.Router(), "/newsletters/"+plainID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `<pre class="nl-markdown">`)
	assert.Contains(t, body, "Marc Vidal")
}
