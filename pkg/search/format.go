package search

import (
	"fmt"
	"strings"
)

// NoResults is the text returned for a successful search without hits.
func NoResults(query string) string {
	return fmt.Sprintf("no results for %q", query)
}

// Format renders results as a numbered block, one entry per result.
func Format(query string, results []Result) string {
	if len(results) == 0 {
		return NoResults(query)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Search results for %q:\n", query)
	for i, r := range results {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, r.Title)
		fmt.Fprintf(&b, "   URL: %s\n", r.URL)
		if r.Snippet != "" {
			fmt.Fprintf(&b, "   Snippet: %s\n", r.Snippet)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
