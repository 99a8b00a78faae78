package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func serveHTML(t *testing.T, html string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestScrape_StructuredDataEndToEnd(t *testing.T) {
	srv := serveHTML(t, `<!doctype html><html><head>
	<script type="application/ld+json">
	{"@type":"Recipe","name":"Weeknight Rice",
	 "recipeIngredient":["1 cup rice","2 cups water"],
	 "recipeInstructions":"Rinse.\nSimmer."}
	</script></head><body></body></html>`)

	a := New(Config{Timeout: 2 * time.Second, MaxAttempts: 1})
	doc, err := a.Scrape(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}
	if doc.Title != "Weeknight Rice" {
		t.Errorf("title = %q", doc.Title)
	}
	if len(doc.Ingredients) != 2 || len(doc.Instructions) != 2 {
		t.Errorf("doc = %+v", doc)
	}
}

func TestScrape_TextScoreFallbackEndToEnd(t *testing.T) {
	srv := serveHTML(t, `<html><body>
	<h1>Family Pasta Night</h1>
	<p>We loved this dish growing up.</p>
	<p>2 tbsp olive oil</p>
	</body></html>`)

	a := New(Config{Timeout: 2 * time.Second, MaxAttempts: 1})
	doc, err := a.Scrape(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}
	if doc.Title != "Family Pasta Night" {
		t.Errorf("title = %q, want heading fallback", doc.Title)
	}
	found := false
	for _, line := range doc.Ingredients {
		if line == "2 tbsp olive oil" {
			found = true
		}
	}
	if !found {
		t.Errorf("ingredients = %v", doc.Ingredients)
	}
}

func TestScrape_TotalFailureIsAggregated(t *testing.T) {
	srv := serveHTML(t, `<html><body><p>Nothing edible here.</p></body></html>`)

	a := New(Config{Timeout: 2 * time.Second, MaxAttempts: 1})
	_, err := a.Scrape(context.Background(), srv.URL)
	if err == nil {
		t.Fatalf("expected total extraction failure")
	}
	msg := err.Error()
	if !strings.Contains(msg, "all extraction tiers failed") {
		t.Fatalf("error = %q", msg)
	}
	for _, tier := range []string{"site-rules", "structured-data", "heuristic-dom", "text-score"} {
		if !strings.Contains(msg, tier) {
			t.Errorf("aggregated error %q missing tier %q", msg, tier)
		}
	}
}

func TestScrape_FetchFailureSurfaces(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	a := New(Config{Timeout: 2 * time.Second, MaxAttempts: 1})
	if _, err := a.Scrape(context.Background(), srv.URL); err == nil || !strings.Contains(err.Error(), "fetch") {
		t.Fatalf("expected fetch error, got %v", err)
	}
}

func TestConvert_DelegatesToUnits(t *testing.T) {
	a := New(Config{})
	out, err := a.Convert([]string{"1 1/2 cups flour"}, "metric")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if out[0] != "354.88 ml flour" {
		t.Fatalf("got %q", out[0])
	}
}

func TestNew_TextScoreOverrides(t *testing.T) {
	a := New(Config{TextScoreMaxLen: 50, TextScoreVocabulary: "saffron"})
	// The override is observable through extraction behavior: only
	// lines matching the custom vocabulary are accepted.
	srv := serveHTML(t, `<html><body>
	<p>2 cups plain rice</p>
	<p>one pinch saffron</p>
	</body></html>`)
	doc, err := a.Scrape(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Scrape: %v", err)
	}
	if len(doc.Ingredients) != 1 || doc.Ingredients[0] != "one pinch saffron" {
		t.Fatalf("ingredients = %v", doc.Ingredients)
	}
}
