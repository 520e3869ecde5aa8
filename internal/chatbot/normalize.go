// Package chatbot implements the message-routing core: text normalization,
// canned-phrase lookup, the model-eligibility gate, lead-intent
// classification, information extraction and hand-off generation.
package chatbot

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes text and drops combining diacritical marks, so
// "cotización" and "cotizacion" compare equal.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var punctuation = strings.NewReplacer("¿", "", "?", "", "¡", "", "!", "")

// Normalize lower-cases text, strips accents and removes the Spanish
// question/exclamation marks. Idempotent and total. Applied before every
// canned-phrase lookup but NOT before the eligibility gate, which matches
// raw lower-cased text only.
func Normalize(text string) string {
	text = strings.ToLower(strings.TrimSpace(text))
	if stripped, _, err := transform.String(stripMarks, text); err == nil {
		text = stripped
	}
	return strings.TrimSpace(punctuation.Replace(text))
}
