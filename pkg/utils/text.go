package utils

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// HTMLToText strips markup from a feed description and collapses whitespace.
// Input that is not HTML is returned trimmed.
func HTMLToText(raw string) string {
	if !strings.Contains(raw, "<") {
		return CollapseSpaces(raw)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(raw))
	if err != nil {
		return CollapseSpaces(raw)
	}
	return CollapseSpaces(doc.Text())
}

// CollapseSpaces replaces runs of whitespace with a single space.
func CollapseSpaces(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// CleanToValidUTF8 drops invalid byte sequences.
func CleanToValidUTF8(s string) string {
	if utf8.ValidString(s) {
		return s
	}
	return strings.ToValidUTF8(s, "")
}

// SplitMessage cuts text into chunks of at most maxLen bytes, preferring line breaks.
func SplitMessage(text string, maxLen int) []string {
	if maxLen <= 0 || len(text) <= maxLen {
		return []string{text}
	}

	var parts []string
	var current strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		for len(line) > maxLen {
			if current.Len() > 0 {
				parts = append(parts, current.String())
				current.Reset()
			}
			cut := maxLen
			for cut > 0 && !utf8.RuneStart(line[cut]) {
				cut--
			}
			if cut == 0 {
				cut = maxLen
			}
			parts = append(parts, line[:cut])
			line = line[cut:]
		}
		if current.Len()+len(line) > maxLen {
			parts = append(parts, current.String())
			current.Reset()
		}
		current.WriteString(line)
	}
	if current.Len() > 0 {
		parts = append(parts, current.String())
	}
	return parts
}
