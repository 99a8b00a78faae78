package extract

import (
	"errors"
	"strings"
	"testing"

	"github.com/hyperifyio/tempura/internal/recipe"
)

// stub is a scripted strategy for orchestrator tests.
type stub struct {
	name   string
	doc    recipe.Document
	err    error
	called *int
}

func (s stub) Name() string { return s.name }

func (s stub) Extract(Page) (recipe.Document, error) {
	if s.called != nil {
		*s.called++
	}
	return s.doc, s.err
}

func TestOrchestrator_FirstSuccessShortCircuits(t *testing.T) {
	var laterCalls int
	o := &Orchestrator{Strategies: []Strategy{
		stub{name: "first", err: ErrNotFound},
		stub{name: "second", doc: recipe.Document{Title: "Rice", Ingredients: []string{"1 cup rice"}}},
		stub{name: "third", called: &laterCalls, doc: recipe.Document{Ingredients: []string{"never"}}},
	}}

	doc, err := o.Extract(parsePage(t, `<html><body></body></html>`))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if doc.Title != "Rice" {
		t.Errorf("title = %q", doc.Title)
	}
	if laterCalls != 0 {
		t.Errorf("a later tier ran after an earlier success")
	}
}

func TestOrchestrator_EmptyDocumentCountsAsFailure(t *testing.T) {
	o := &Orchestrator{Strategies: []Strategy{
		stub{name: "empty", doc: recipe.Document{Title: "Looks fine"}},
		stub{name: "real", doc: recipe.Document{Ingredients: []string{"1 cup rice"}}},
	}}
	doc, err := o.Extract(parsePage(t, `<html><body></body></html>`))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(doc.Ingredients) != 1 {
		t.Fatalf("expected the second tier's document, got %+v", doc)
	}
}

func TestOrchestrator_AggregatesAllFailures(t *testing.T) {
	o := &Orchestrator{Strategies: []Strategy{
		stub{name: "alpha", err: ErrNotFound},
		stub{name: "beta", err: errors.New("bad json")},
	}}
	_, err := o.Extract(parsePage(t, `<html><body></body></html>`))
	if err == nil {
		t.Fatalf("expected aggregated error")
	}
	msg := err.Error()
	for _, want := range []string{"alpha", "beta", "no recipe found", "bad json"} {
		if !strings.Contains(msg, want) {
			t.Errorf("aggregated error %q missing %q", msg, want)
		}
	}
}

func TestOrchestrator_TitleFallsBackToHeading(t *testing.T) {
	o := &Orchestrator{Strategies: []Strategy{
		stub{name: "anon", doc: recipe.Document{Ingredients: []string{"1 cup rice"}}},
	}}
	doc, err := o.Extract(parsePage(t, `<html><body><h1> Weeknight Rice </h1></body></html>`))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if doc.Title != "Weeknight Rice" {
		t.Errorf("title = %q, want first heading text", doc.Title)
	}
}

func TestOrchestrator_TitleFallsBackToPlaceholder(t *testing.T) {
	o := &Orchestrator{Strategies: []Strategy{
		stub{name: "anon", doc: recipe.Document{Ingredients: []string{"1 cup rice"}}},
	}}
	doc, err := o.Extract(parsePage(t, `<html><body><p>no headings</p></body></html>`))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if doc.Title != "Recipe" {
		t.Errorf("title = %q, want placeholder", doc.Title)
	}
}

func TestOrchestrator_StructuredWinsBeforeHeuristic(t *testing.T) {
	html := `<html><head><script type="application/ld+json">
	{"@type":"Recipe","name":"From Metadata","recipeIngredient":["1 cup rice"]}
	</script></head><body>
	<div class="ingredients"><ul><li>decoy from markup</li></ul></div>
	</body></html>`

	var heuristicCalls int
	o := &Orchestrator{Strategies: []Strategy{
		Structured{},
		stub{name: "heuristic-dom", called: &heuristicCalls, err: ErrNotFound},
	}}
	doc, err := o.Extract(parsePage(t, html))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if doc.Title != "From Metadata" || doc.Ingredients[0] != "1 cup rice" {
		t.Fatalf("doc = %+v", doc)
	}
	if heuristicCalls != 0 {
		t.Errorf("heuristic tier ran despite structured-data success")
	}
}
