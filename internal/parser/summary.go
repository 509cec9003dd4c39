package parser

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// SummaryText returns the visible text of a summary that may contain markup,
// with whitespace collapsed. It is meant for terminals; HTML surfaces render
// the summary as-is.
func SummaryText(summary string) string {
	if summary == "" {
		return ""
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(summary))
	if err != nil {
		return strings.Join(strings.Fields(summary), " ")
	}
	return strings.Join(strings.Fields(doc.Text()), " ")
}
