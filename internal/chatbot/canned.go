package chatbot

import (
	"strings"

	"github.com/nicolas2456/Escaleras-Ferre/internal/catalog"
)

// KnowledgeBase answers messages covered by the canned reply table without
// spending model tokens.
type KnowledgeBase struct {
	entries []catalog.CannedEntry
}

// NewKnowledgeBase builds a knowledge base over an ordered canned table.
func NewKnowledgeBase(entries []catalog.CannedEntry) *KnowledgeBase {
	return &KnowledgeBase{entries: entries}
}

// LookupCanned returns the canned reply for a message, or "" when nothing
// matches. Exact normalized match wins first; otherwise the first entry (in
// table order) whose normalized phrase contains the input or is contained by
// it wins. Table order decides ambiguous overlaps, so iteration must stay
// deterministic.
func (kb *KnowledgeBase) LookupCanned(message string) string {
	text := Normalize(message)
	if text == "" {
		return ""
	}

	for _, e := range kb.entries {
		if Normalize(e.Phrase) == text {
			return e.Response
		}
	}

	for _, e := range kb.entries {
		phrase := Normalize(e.Phrase)
		if strings.Contains(text, phrase) || strings.Contains(phrase, text) {
			return e.Response
		}
	}
	return ""
}
