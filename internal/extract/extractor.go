// Package extract locates recipe content in parsed HTML pages through
// an ordered chain of extraction strategies. Each strategy implements a
// uniform attempt-or-not-found contract; the orchestrator stops at the
// first success and aggregates failure reasons when every tier fails.
package extract

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/tempura/internal/recipe"
)

// ErrNotFound is returned by a strategy that found no recipe content on
// the page. The orchestrator advances to the next strategy.
var ErrNotFound = errors.New("no recipe found")

// Page is a fetched and parsed document handed to each strategy.
type Page struct {
	URL *url.URL
	Doc *goquery.Document
}

// Strategy attempts one extraction approach over a parsed page. A
// strategy that finds nothing returns ErrNotFound rather than an empty
// document.
type Strategy interface {
	Name() string
	Extract(p Page) (recipe.Document, error)
}

// Orchestrator runs strategies in order and short-circuits on the first
// one that yields a non-empty document.
type Orchestrator struct {
	Strategies []Strategy
}

// Extract returns the first non-empty document produced by a strategy.
// When every strategy fails it returns one error combining each tier's
// failure reason; a partial document is never emitted.
func (o *Orchestrator) Extract(p Page) (recipe.Document, error) {
	reasons := make([]string, 0, len(o.Strategies))
	for _, s := range o.Strategies {
		doc, err := s.Extract(p)
		if err != nil {
			log.Debug().Str("strategy", s.Name()).Err(err).Msg("extraction tier failed")
			reasons = append(reasons, fmt.Sprintf("%s: %v", s.Name(), err))
			continue
		}
		if doc.Empty() {
			reasons = append(reasons, fmt.Sprintf("%s: empty ingredient list", s.Name()))
			continue
		}
		if strings.TrimSpace(doc.Title) == "" {
			doc.Title = fallbackTitle(p)
		}
		log.Debug().
			Str("strategy", s.Name()).
			Int("ingredients", len(doc.Ingredients)).
			Int("instructions", len(doc.Instructions)).
			Msg("extraction succeeded")
		return doc, nil
	}
	return recipe.Document{}, fmt.Errorf("all extraction tiers failed: %s", strings.Join(reasons, "; "))
}

// fallbackTitle prefers the page's first top-level heading, else a
// generic placeholder.
func fallbackTitle(p Page) string {
	if h := strings.TrimSpace(p.Doc.Find("h1").First().Text()); h != "" {
		return h
	}
	return "Recipe"
}

// dedupeKeepOrder drops repeated lines while preserving first-seen order.
func dedupeKeepOrder(lines []string) []string {
	seen := make(map[string]struct{}, len(lines))
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if _, ok := seen[line]; ok {
			continue
		}
		seen[line] = struct{}{}
		out = append(out, line)
	}
	return out
}

// splitLines breaks a text block into trimmed, non-empty lines.
func splitLines(text string) []string {
	raw := strings.Split(text, "\n")
	out := make([]string, 0, len(raw))
	for _, line := range raw {
		if s := strings.TrimSpace(line); s != "" {
			out = append(out, s)
		}
	}
	return out
}
