package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hyperifyio/tempura/internal/recipe"
)

// Heuristic locates ingredient and instruction lists by attribute
// patterns and header proximity when a page carries no structured data.
type Heuristic struct{}

func (Heuristic) Name() string { return "heuristic-dom" }

// siblingScanLimit caps how many following siblings a header search
// walks before giving up.
const siblingScanLimit = 30

// ingredientAttrSelector matches elements whose class or id carries an
// "ingre" substring, which covers ingredient/ingredients as well.
const ingredientAttrSelector = `[class*="ingre"], [id*="ingre"]`

var instructionHeaderRe = regexp.MustCompile(`(?i)instruction|direction|method|preparation|step`)

func (h Heuristic) Extract(p Page) (recipe.Document, error) {
	ings := h.ingredients(p.Doc)
	if len(ings) == 0 {
		return recipe.Document{}, ErrNotFound
	}
	return recipe.Document{
		Ingredients:  ings,
		Instructions: h.instructions(p.Doc),
	}, nil
}

// ingredients searches attribute-matched containers first, preferring
// nested list items over raw text, then falls back to headers whose
// text mentions ingredients.
func (h Heuristic) ingredients(doc *goquery.Document) []string {
	var out []string
	doc.Find(ingredientAttrSelector).Each(func(_ int, sel *goquery.Selection) {
		items := sel.Find("li")
		if items.Length() > 0 {
			items.Each(func(_ int, li *goquery.Selection) {
				if s := strings.TrimSpace(li.Text()); s != "" {
					out = append(out, s)
				}
			})
			return
		}
		out = append(out, splitLines(sel.Text())...)
	})
	if len(out) == 0 {
		out = h.headerAdjacent(doc, func(text string) bool {
			return strings.Contains(strings.ToLower(text), "ingredient")
		}, "ul, ol", false)
	}
	return dedupeKeepOrder(out)
}

// instructions searches headers matching instruction-like wording and
// collects the next list's items, else paragraph text from following
// siblings.
func (h Heuristic) instructions(doc *goquery.Document) []string {
	return dedupeKeepOrder(h.headerAdjacent(doc, instructionHeaderRe.MatchString, "ol, ul", true))
}

// headerAdjacent finds headers accepted by match and collects the items
// of the next list sibling, or (when no list follows) the text of up to
// siblingScanLimit following siblings. With paragraphsOnly set, the
// sibling walk keeps only <p> elements.
func (h Heuristic) headerAdjacent(doc *goquery.Document, match func(string) bool, listSelector string, paragraphsOnly bool) []string {
	var out []string
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(_ int, header *goquery.Selection) {
		if !match(header.Text()) {
			return
		}
		list := header.NextAllFiltered(listSelector).First()
		if list.Length() > 0 {
			list.Find("li").Each(func(_ int, li *goquery.Selection) {
				if s := strings.TrimSpace(li.Text()); s != "" {
					out = append(out, s)
				}
			})
			return
		}
		for sib, n := header.Next(), 0; sib.Length() > 0 && n < siblingScanLimit; sib, n = sib.Next(), n+1 {
			if paragraphsOnly && !sib.Is("p") {
				continue
			}
			if s := strings.TrimSpace(sib.Text()); s != "" {
				out = append(out, s)
			}
		}
	})
	return out
}
