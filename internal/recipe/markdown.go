package recipe

import (
	"fmt"
	"strings"
)

// Markdown renders the document as a Markdown page: title heading,
// source link, bulleted ingredients and numbered instructions. Blank
// instruction lines are skipped without consuming a step number.
func Markdown(d Document, sourceURL string) string {
	var b strings.Builder
	title := strings.TrimSpace(d.Title)
	if title == "" {
		title = "Recipe"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)
	if sourceURL != "" {
		fmt.Fprintf(&b, "Source: <%s>\n\n", sourceURL)
	}
	b.WriteString("---\n\n")

	b.WriteString("## Ingredients\n\n")
	for _, ing := range d.Ingredients {
		fmt.Fprintf(&b, "* %s\n", ing)
	}

	b.WriteString("\n## Instructions\n\n")
	step := 1
	for _, ins := range d.Instructions {
		s := strings.TrimSpace(ins)
		if s == "" {
			continue
		}
		fmt.Fprintf(&b, "%d. %s\n", step, s)
		step++
	}
	return b.String()
}
