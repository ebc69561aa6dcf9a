package feed

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

func feedServer(t *testing.T, items string) *httptest.Server {
	t.Helper()
	body := fmt.Sprintf(`<?xml version="1.0"?><rss version="2.0"><channel><title>t</title>%s</channel></rss>`, items)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		fmt.Fprint(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func rssItem(title string, published time.Time) string {
	return fmt.Sprintf(`<item><title>%s</title><link>https://example.com/%s</link><pubDate>%s</pubDate></item>`,
		title, title, published.Format(time.RFC1123Z))
}

func TestAggregator_MergesAndSortsNewestFirst(t *testing.T) {
	base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	older := feedServer(t, rssItem("older", base)+rssItem("oldest", base.Add(-time.Hour)))
	newer := feedServer(t, rssItem("newest", base.Add(time.Hour)))

	feeds := map[string][]Source{
		"geral": {
			{Name: "A", URL: older.URL},
			{Name: "B", URL: newer.URL},
		},
	}

	agg := NewAggregator(NewFetcher(), feeds)
	items, category := agg.Fetch(context.Background(), "geral")

	assert.Equal(t, "geral", category)
	assert.Equal(t, 3, len(items))
	assert.Equal(t, "newest", items[0].Title)
	assert.Equal(t, "older", items[1].Title)
	assert.Equal(t, "oldest", items[2].Title)
}

func TestAggregator_CapsAtFifteenItems(t *testing.T) {
	base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	var items string
	for i := 0; i < 20; i++ {
		items += rssItem(fmt.Sprintf("n%d", i), base.Add(time.Duration(i)*time.Minute))
	}
	srv := feedServer(t, items)

	feeds := map[string][]Source{
		"geral": {{Name: "A", URL: srv.URL}},
	}

	agg := NewAggregator(NewFetcher(), feeds)
	got, _ := agg.Fetch(context.Background(), "geral")

	assert.Equal(t, MaxItems, len(got))
	assert.Equal(t, "n19", got[0].Title)
}

func TestAggregator_FailingSourceIsSkipped(t *testing.T) {
	base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	good := feedServer(t, rssItem("ok", base))
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(bad.Close)

	feeds := map[string][]Source{
		"geral": {
			{Name: "Good", URL: good.URL},
			{Name: "Bad", URL: bad.URL},
		},
	}

	agg := NewAggregator(NewFetcher(), feeds)
	items, _ := agg.Fetch(context.Background(), "geral")

	assert.Equal(t, 1, len(items))
	assert.Equal(t, "ok", items[0].Title)
}

func TestAggregator_UnknownCategoryFallsBack(t *testing.T) {
	srv := feedServer(t, rssItem("geral", time.Now()))

	feeds := map[string][]Source{
		"geral": {{Name: "A", URL: srv.URL}},
	}

	agg := NewAggregator(NewFetcher(), feeds)
	items, category := agg.Fetch(context.Background(), "inexistente")

	assert.Equal(t, DefaultCategory, category)
	assert.Equal(t, 1, len(items))
}

func TestAggregator_AllSourcesDownReturnsEmpty(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	t.Cleanup(bad.Close)

	feeds := map[string][]Source{
		"geral": {{Name: "Bad", URL: bad.URL}},
	}

	agg := NewAggregator(NewFetcher(), feeds)
	items, category := agg.Fetch(context.Background(), "geral")

	assert.Equal(t, "geral", category)
	assert.Equal(t, 0, len(items))
}

func TestAggregator_EsportesPartialOutage(t *testing.T) {
	base := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	down := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(down.Close)

	feeds := map[string][]Source{
		"geral": {},
		"esportes": {
			{Name: "ge", URL: feedServer(t, rssItem("gol", base.Add(2*time.Minute))).URL},
			{Name: "Metrópoles Esportes", URL: down.URL},
			{Name: "Folha Esporte", URL: feedServer(t, rssItem("jogo", base.Add(time.Minute))).URL},
			{Name: "Lance", URL: down.URL},
			{Name: "UOL Esporte", URL: feedServer(t, rssItem("tabela", base)).URL},
		},
	}

	agg := NewAggregator(NewFetcher(), feeds)
	items, category := agg.Fetch(context.Background(), "esportes")

	assert.Equal(t, "esportes", category)
	assert.Equal(t, 3, len(items))
	assert.Equal(t, "gol", items[0].Title)
	assert.Equal(t, "jogo", items[1].Title)
	assert.Equal(t, "tabela", items[2].Title)
}

func TestSourcesFor_KnownCategory(t *testing.T) {
	sources, resolved := SourcesFor(Feeds, "esportes")

	assert.Equal(t, "esportes", resolved)
	assert.Equal(t, 5, len(sources))
}

func TestFetchSource_Latin1Feed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/xml; charset=ISO-8859-1")
		w.Write([]byte("<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><rss version=\"2.0\"><channel><title>t</title>" +
			"<item><title>Elei\xe7\xe3o</title><link>https://example.com/e</link></item>" +
			"</channel></rss>"))
	}))
	t.Cleanup(srv.Close)

	f := NewFetcher()
	items, err := f.FetchSource(context.Background(), Source{Name: "Folha", URL: srv.URL, Encoding: "latin1"})

	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(items))
	assert.Equal(t, "Eleição", items[0].Title)
}

func TestFetchSource_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	f := NewFetcher()
	_, err := f.FetchSource(context.Background(), Source{Name: "X", URL: srv.URL})

	assert.NotEqual(t, nil, err)
}
