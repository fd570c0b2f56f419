package renderer

import (
	"bytes"
	"strings"

	md "github.com/nao1215/markdown"
)

// sectionLabels start the bold lines that are promoted to headings.
var sectionLabels = []string{"**Top", "**Best", "**Alert", "**Verdict", "**Melhor", "**Alerta", "**Veredito"}

// AdvisoryMarkdown normalizes an advisory narrative for display: heading-like
// lines become headings, "- " lines list items, everything else paragraphs
// without bold markers.
func AdvisoryMarkdown(text string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	var items []string
	flush := func() {
		if len(items) > 0 {
			doc.BulletList(items...)
			items = nil
		}
	}
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		switch {
		case isHeading(line):
			flush()
			doc.H3(strings.TrimSpace(strings.NewReplacer("#", "", "**", "").Replace(line)))
		case strings.HasPrefix(line, "- "):
			items = append(items, strings.TrimPrefix(line, "- "))
		case strings.TrimSpace(line) == "":
			flush()
		default:
			flush()
			doc.PlainText(strings.ReplaceAll(line, "**", ""))
		}
	}
	flush()
	return doc.String()
}

func isHeading(line string) bool {
	if strings.HasPrefix(line, "###") {
		return true
	}
	for _, l := range sectionLabels {
		if strings.HasPrefix(line, l) {
			return true
		}
	}
	return false
}
