package extract

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hyperifyio/tempura/internal/recipe"
)

// Structured extracts recipes from schema.org JSON-LD blocks embedded
// in the page, independent of visual layout.
type Structured struct{}

func (Structured) Name() string { return "structured-data" }

// Extract scans every ld+json block for a recipe object. An object
// whose @type carries a "recipe" substring wins over an untyped object
// that merely has an ingredient list; within each class, document order
// decides. Objects nested under @graph are flattened first.
func (Structured) Extract(p Page) (recipe.Document, error) {
	var typed, untyped *recipe.Document
	p.Doc.Find(`script[type="application/ld+json"]`).EachWithBreak(func(_ int, s *goquery.Selection) bool {
		for _, obj := range decodeObjects(s.Text()) {
			ings := ingredientsOf(obj)
			if len(ings) == 0 {
				continue
			}
			doc := recipe.Document{
				Title:        titleOf(obj),
				Ingredients:  ings,
				Instructions: instructionsOf(obj),
			}
			if isRecipeType(obj) {
				typed = &doc
				return false
			}
			if untyped == nil {
				untyped = &doc
			}
		}
		return true
	})
	if typed != nil {
		return *typed, nil
	}
	if untyped != nil {
		return *untyped, nil
	}
	return recipe.Document{}, ErrNotFound
}

// decodeObjects parses a JSON-LD payload into a flat list of metadata
// objects: a single object, a top-level list, and any @graph nesting
// all collapse into one slice. Malformed JSON yields nothing.
func decodeObjects(raw string) []map[string]any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil
	}
	var out []map[string]any
	queue := []any{v}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		switch t := cur.(type) {
		case []any:
			queue = append(queue, t...)
		case map[string]any:
			out = append(out, t)
			if graph, ok := t["@graph"]; ok {
				queue = append(queue, graph)
			}
		}
	}
	return out
}

// isRecipeType reports whether the object's @type declares a recipe,
// matching a case-insensitive substring so subtypes qualify too.
func isRecipeType(obj map[string]any) bool {
	switch t := obj["@type"].(type) {
	case string:
		return strings.Contains(strings.ToLower(t), "recipe")
	case []any:
		for _, v := range t {
			if s, ok := v.(string); ok && strings.Contains(strings.ToLower(s), "recipe") {
				return true
			}
		}
	}
	return false
}

func titleOf(obj map[string]any) string {
	for _, key := range []string{"name", "headline"} {
		if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// ingredientsOf reads recipeIngredient (or the legacy ingredients
// field), stringifies each entry and drops empties.
func ingredientsOf(obj map[string]any) []string {
	field, ok := obj["recipeIngredient"]
	if !ok {
		field = obj["ingredients"]
	}
	switch t := field.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, v := range t {
			s, ok := v.(string)
			if !ok {
				s = fmt.Sprint(v)
			}
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
		return out
	case string:
		return splitLines(t)
	}
	return nil
}

// instructionsOf normalizes recipeInstructions from either a single
// text block (split on line breaks) or a list whose entries are plain
// strings, HowToStep objects (text/description) or HowToSection objects
// (itemListElement flattened).
func instructionsOf(obj map[string]any) []string {
	var out []string
	var walk func(v any)
	walk = func(v any) {
		switch t := v.(type) {
		case string:
			out = append(out, splitLines(t)...)
		case []any:
			for _, e := range t {
				walk(e)
			}
		case map[string]any:
			if items, ok := t["itemListElement"]; ok {
				walk(items)
				return
			}
			for _, key := range []string{"text", "description"} {
				if s, ok := t[key].(string); ok && strings.TrimSpace(s) != "" {
					out = append(out, strings.TrimSpace(s))
					return
				}
			}
		}
	}
	walk(obj["recipeInstructions"])
	return out
}
