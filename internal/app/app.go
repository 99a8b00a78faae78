package app

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"regexp"

	"github.com/PuerkitoBio/goquery"
	"github.com/rs/zerolog/log"

	"github.com/hyperifyio/tempura/internal/extract"
	"github.com/hyperifyio/tempura/internal/fetch"
	"github.com/hyperifyio/tempura/internal/recipe"
	"github.com/hyperifyio/tempura/internal/sites"
	"github.com/hyperifyio/tempura/internal/units"
)

// App wires fetching, parsing and the extraction tier chain for one
// invocation. It holds no state across calls.
type App struct {
	cfg    Config
	client *fetch.Client
	orch   *extract.Orchestrator
}

// New builds the tier chain in its fixed order: site rules, structured
// data, heuristic DOM, text scoring.
func New(cfg Config) *App {
	ts := extract.NewTextScore()
	if cfg.TextScoreMaxLen > 0 {
		ts.FinalScorer.MaxLen = cfg.TextScoreMaxLen
	}
	if cfg.TextScoreVocabulary != "" {
		if re, err := regexp.Compile(cfg.TextScoreVocabulary); err == nil {
			ts.ListScorer.Vocabulary = re
			ts.FinalScorer.Vocabulary = re
		} else {
			log.Warn().Err(err).Msg("invalid text-score vocabulary; using default")
		}
	}
	return &App{
		cfg: cfg,
		client: &fetch.Client{
			UserAgent:   cfg.UserAgent,
			MaxAttempts: cfg.MaxAttempts,
			Timeout:     cfg.Timeout,
		},
		orch: &extract.Orchestrator{Strategies: []extract.Strategy{
			sites.Registry{},
			extract.Structured{},
			extract.Heuristic{},
			ts,
		}},
	}
}

// Scrape fetches one recipe page and runs the extraction chain over it.
// It either returns a fully populated document or an error; never a
// partial document.
func (a *App) Scrape(ctx context.Context, rawURL string) (recipe.Document, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return recipe.Document{}, fmt.Errorf("parse url: %w", err)
	}
	body, err := a.client.Get(ctx, rawURL)
	if err != nil {
		return recipe.Document{}, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return recipe.Document{}, fmt.Errorf("parse html: %w", err)
	}
	rec, err := a.orch.Extract(extract.Page{URL: u, Doc: doc})
	if err != nil {
		return recipe.Document{}, err
	}
	log.Info().
		Str("url", rawURL).
		Str("title", rec.Title).
		Int("ingredients", len(rec.Ingredients)).
		Msg("recipe extracted")
	return rec, nil
}

// Convert converts an ordered ingredient list to the target system.
// Exposed here so the CLI has one entry point per command.
func (a *App) Convert(lines []string, system string) ([]string, error) {
	return units.ConvertAll(lines, system)
}
