package conversation

import (
	"strings"

	"github.com/sealor/searchbot/pkg/chat"
)

// Directive is the policy installed as system text on every run.
const Directive = `You are an assistant in a group chat. Follow these rules strictly:
1. Never answer time-sensitive factual questions from your internal knowledge.
2. For any question involving the current date or time, news, prices, weather, scores or other live data, call the web_search tool first.
3. Do not mix tool output with your internal knowledge and do not change the facts the tool returned.
4. When you used tool output, end your answer with the source, e.g. "Source: <url>".
5. Answer all other questions normally.`

// InstallDirective puts the directive into the system message at position
// 0, keeping any text the caller had there. Installing twice is a no-op.
func InstallDirective(conv *chat.Conversation) {
	if len(conv.Messages) > 0 && conv.Messages[0].Role == chat.RoleSystem {
		conv.Messages[0].Content = withDirective(conv.Messages[0].Content)
		return
	}
	conv.Messages = append([]chat.Message{chat.SystemMessage(Directive)}, conv.Messages...)
}

func withDirective(original string) string {
	base := strings.TrimSpace(strings.ReplaceAll(original, Directive, ""))
	if base == "" {
		return Directive
	}
	return base + "\n\n" + Directive
}
