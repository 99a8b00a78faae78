package extract

import (
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/hyperifyio/tempura/internal/recipe"
)

// Scorer gates a candidate text line on measurement vocabulary and
// length. Both thresholds are configuration so tests and callers can
// substitute their own.
type Scorer struct {
	Vocabulary *regexp.Regexp
	MaxLen     int
}

// Accept reports whether the line looks like a probable ingredient.
func (s Scorer) Accept(line string) bool {
	return line != "" && len(line) <= s.MaxLen && s.Vocabulary.MatchString(line)
}

// DefaultVocabulary matches a number, a vulgar fraction, or a common
// measurement word.
var DefaultVocabulary = regexp.MustCompile(`(?i)(\d|[½⅓⅔¼¾⅛⅜⅝⅞]|\b(cups?|tbsp|tablespoons?|tsp|teaspoons?|oz|ounces?|grams?|kg|ml|cloves?|pinch|pounds?|lbs?|slices?)\b)`)

// TextScore is the last-resort extractor: it scans textual blocks and
// keeps lines that score as probable ingredients.
type TextScore struct {
	// ListScorer is applied to paragraph/table/list element candidates.
	ListScorer Scorer
	// FinalScorer is applied to content containers and the raw
	// document text scan.
	FinalScorer Scorer
}

// NewTextScore returns a TextScore with the default vocabulary and the
// standard length gates (2000 for the element scan, 300 for the final
// scan).
func NewTextScore() *TextScore {
	return &TextScore{
		ListScorer:  Scorer{Vocabulary: DefaultVocabulary, MaxLen: 2000},
		FinalScorer: Scorer{Vocabulary: DefaultVocabulary, MaxLen: 300},
	}
}

func (*TextScore) Name() string { return "text-score" }

// contentContainerSelector targets large content wrappers likely to
// hold the recipe body.
const contentContainerSelector = `article, [class*="content"], [class*="entry"], [class*="recipe"], [id*="content"], [id*="recipe"]`

// Extract collects candidate lines from list/paragraph/table elements,
// then from large content containers, then from the full document text,
// stopping at the first stage that yields accepted lines.
func (t *TextScore) Extract(p Page) (recipe.Document, error) {
	lines := t.scanElements(p.Doc)
	if len(lines) == 0 {
		lines = t.scanContainers(p.Doc)
	}
	if len(lines) == 0 {
		lines = t.scanText(p.Doc.Find("body").Text())
	}
	lines = dedupeKeepOrder(lines)
	if len(lines) == 0 {
		return recipe.Document{}, ErrNotFound
	}
	return recipe.Document{Ingredients: lines}, nil
}

func (t *TextScore) scanElements(doc *goquery.Document) []string {
	var out []string
	doc.Find("p, td, li").Each(func(_ int, sel *goquery.Selection) {
		for _, line := range splitLines(sel.Text()) {
			if t.ListScorer.Accept(line) {
				out = append(out, line)
			}
		}
	})
	return out
}

func (t *TextScore) scanContainers(doc *goquery.Document) []string {
	var out []string
	doc.Find(contentContainerSelector).Each(func(_ int, sel *goquery.Selection) {
		for _, line := range splitLines(sel.Text()) {
			if t.FinalScorer.Accept(line) {
				out = append(out, line)
			}
		}
	})
	return out
}

func (t *TextScore) scanText(text string) []string {
	var out []string
	for _, line := range splitLines(text) {
		if t.FinalScorer.Accept(line) {
			out = append(out, line)
		}
	}
	return out
}
