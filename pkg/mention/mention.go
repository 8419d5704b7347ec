// Package mention decides whether a chat message addresses the bot
package mention

import (
	"regexp"
	"strings"
)

// Matcher detects mentions of one bot name.
type Matcher struct {
	pattern *regexp.Regexp
}

// NewMatcher compiles the mention pattern for botName. An empty name
// yields a matcher that never matches.
func NewMatcher(botName string) *Matcher {
	if botName == "" {
		return &Matcher{}
	}
	return &Matcher{pattern: regexp.MustCompile(`(?i)(^|[^\w@])@` + regexp.QuoteMeta(botName) + `\b[:,]?`)}
}

// Detect reports whether text mentions the bot and returns the text with
// the mention removed. A mention without any remaining text does not count.
func (m *Matcher) Detect(text string) (string, bool) {
	if m.pattern == nil || !m.pattern.MatchString(text) {
		return "", false
	}

	cleaned := m.pattern.ReplaceAllString(text, "$1")
	cleaned = strings.Join(strings.Fields(cleaned), " ")
	if cleaned == "" {
		return "", false
	}
	return cleaned, true
}

// Detect is a one-off shortcut for NewMatcher(botName).Detect(text).
func Detect(text, botName string) (string, bool) {
	return NewMatcher(botName).Detect(text)
}
