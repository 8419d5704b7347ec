package tooling

import (
	"context"

	"github.com/sealor/searchbot/pkg/chat"
)

const WebSearchName = "web_search"

// Searcher runs a web search and renders the outcome as text. It does not
// fail; provider errors are part of the returned text.
type Searcher interface {
	Search(ctx context.Context, query string, count int) string
}

type WebSearch struct {
	searcher Searcher
	count    int
}

func NewWebSearch(searcher Searcher, count int) *WebSearch {
	return &WebSearch{searcher: searcher, count: count}
}

var webSearchDefinition = chat.ToolDefinition{
	Name: WebSearchName,
	Description: "Search the web for current information. Use it for anything involving " +
		"today's date, news, prices, weather or other live data.",
	Parameters: []chat.Parameter{
		{Name: "query", Type: "string", Description: "The search query"},
	},
	Required: []string{"query"},
}

func (w *WebSearch) Definition() chat.ToolDefinition {
	return webSearchDefinition
}

func (w *WebSearch) Call(ctx context.Context, args Arguments) (string, error) {
	return w.searcher.Search(ctx, args.String("query"), w.count), nil
}
