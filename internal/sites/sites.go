// Package sites carries per-site extraction rules for known recipe
// publishers and recipe-plugin markup. The registry is the first tier
// the orchestrator tries, before any generic extraction.
package sites

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/hyperifyio/tempura/internal/extract"
	"github.com/hyperifyio/tempura/internal/recipe"
)

// Rule holds the CSS selectors used to lift a recipe from one site's or
// one plugin's markup.
type Rule struct {
	Title        string
	Ingredients  string
	Instructions string
}

// hostRules maps a registrable host suffix to its selector rule.
var hostRules = map[string]Rule{
	"allrecipes.com": {
		Title:        "h1",
		Ingredients:  ".mm-recipes-structured-ingredients__list-item",
		Instructions: ".mm-recipes-steps li",
	},
	"bbcgoodfood.com": {
		Title:        "h1",
		Ingredients:  ".recipe__ingredients li",
		Instructions: ".recipe__method-steps li",
	},
	"seriouseats.com": {
		Title:        "h1",
		Ingredients:  ".structured-ingredients__list-item",
		Instructions: ".structured-project__steps li",
	},
	"simplyrecipes.com": {
		Title:        "h1",
		Ingredients:  ".structured-ingredients__list-item",
		Instructions: ".structured-project__steps li",
	},
}

// pluginRules are tried on any host; they match the markup emitted by
// widespread WordPress recipe plugins.
var pluginRules = []Rule{
	{ // WP Recipe Maker
		Title:        ".wprm-recipe-name",
		Ingredients:  "li.wprm-recipe-ingredient",
		Instructions: "li.wprm-recipe-instruction",
	},
	{ // Tasty Recipes
		Title:        ".tasty-recipes-title",
		Ingredients:  ".tasty-recipes-ingredients li",
		Instructions: ".tasty-recipes-instructions li",
	},
	{ // EasyRecipe
		Title:        ".ERSName",
		Ingredients:  ".ERSIngredients li",
		Instructions: ".ERSInstructions li",
	},
}

// Registry implements extract.Strategy using the rule tables above.
type Registry struct{}

func (Registry) Name() string { return "site-rules" }

// Extract applies the host's rule when the page URL matches a known
// site, then every plugin rule. A rule succeeds only when it yields a
// non-empty ingredient list.
func (Registry) Extract(p extract.Page) (recipe.Document, error) {
	if p.URL != nil {
		host := strings.ToLower(strings.TrimPrefix(p.URL.Hostname(), "www."))
		for suffix, rule := range hostRules {
			if host != suffix && !strings.HasSuffix(host, "."+suffix) {
				continue
			}
			if doc, ok := apply(p.Doc, rule); ok {
				return doc, nil
			}
		}
	}
	for _, rule := range pluginRules {
		if doc, ok := apply(p.Doc, rule); ok {
			return doc, nil
		}
	}
	return recipe.Document{}, extract.ErrNotFound
}

func apply(doc *goquery.Document, r Rule) (recipe.Document, bool) {
	ings := selectLines(doc, r.Ingredients)
	if len(ings) == 0 {
		return recipe.Document{}, false
	}
	return recipe.Document{
		Title:        strings.TrimSpace(doc.Find(r.Title).First().Text()),
		Ingredients:  ings,
		Instructions: selectLines(doc, r.Instructions),
	}, true
}

func selectLines(doc *goquery.Document, selector string) []string {
	if selector == "" {
		return nil
	}
	var out []string
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		if s := strings.TrimSpace(sel.Text()); s != "" {
			out = append(out, s)
		}
	})
	return out
}
