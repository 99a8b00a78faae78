package extract

import (
	"errors"
	"testing"
)

func TestHeuristic_AttributeMatchedList(t *testing.T) {
	html := `<html><body>
	<div class="recipe-ingredients">
	  <ul>
	    <li>1 cup rice</li>
	    <li>2 cups water</li>
	    <li>1 cup rice</li>
	  </ul>
	</div>
	</body></html>`

	doc, err := (Heuristic{}).Extract(parsePage(t, html))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	want := []string{"1 cup rice", "2 cups water"}
	if len(doc.Ingredients) != len(want) {
		t.Fatalf("ingredients = %v, want dedupe to %v", doc.Ingredients, want)
	}
	for i := range want {
		if doc.Ingredients[i] != want[i] {
			t.Errorf("ingredient %d = %q, want %q", i, doc.Ingredients[i], want[i])
		}
	}
}

func TestHeuristic_AttributeMatchedTextSplit(t *testing.T) {
	html := `<html><body>
	<div id="ingre-box">1 cup rice
2 cups water</div>
	</body></html>`

	doc, err := (Heuristic{}).Extract(parsePage(t, html))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(doc.Ingredients) != 2 || doc.Ingredients[0] != "1 cup rice" || doc.Ingredients[1] != "2 cups water" {
		t.Fatalf("ingredients = %v", doc.Ingredients)
	}
}

func TestHeuristic_HeaderWithFollowingList(t *testing.T) {
	html := `<html><body>
	<h2>Ingredients</h2>
	<ul>
	  <li>1 cup rice</li>
	  <li>2 cups water</li>
	</ul>
	<h2>Directions</h2>
	<ol>
	  <li>Rinse the rice.</li>
	  <li>Simmer.</li>
	</ol>
	</body></html>`

	doc, err := (Heuristic{}).Extract(parsePage(t, html))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(doc.Ingredients) != 2 {
		t.Fatalf("ingredients = %v", doc.Ingredients)
	}
	if len(doc.Instructions) != 2 || doc.Instructions[0] != "Rinse the rice." {
		t.Fatalf("instructions = %v", doc.Instructions)
	}
}

func TestHeuristic_HeaderSiblingWalk(t *testing.T) {
	html := `<html><body>
	<h3>Ingredient list</h3>
	<div>1 cup rice</div>
	<div>2 cups water</div>
	<div></div>
	<h3>Method</h3>
	<p>Rinse the rice.</p>
	<span>not a paragraph</span>
	<p>Simmer until done.</p>
	</body></html>`

	doc, err := (Heuristic{}).Extract(parsePage(t, html))
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(doc.Ingredients) == 0 || doc.Ingredients[0] != "1 cup rice" {
		t.Fatalf("ingredients = %v", doc.Ingredients)
	}
	if len(doc.Instructions) != 2 || doc.Instructions[0] != "Rinse the rice." || doc.Instructions[1] != "Simmer until done." {
		t.Fatalf("instructions = %v", doc.Instructions)
	}
}

func TestHeuristic_NotFound(t *testing.T) {
	html := `<html><body><p>Just an article about cooking, no lists.</p></body></html>`
	if _, err := (Heuristic{}).Extract(parsePage(t, html)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
