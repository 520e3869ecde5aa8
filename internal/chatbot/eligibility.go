package chatbot

import "strings"

// Rule tables for the eligibility gate. These are data, not code: each list
// can be extended without touching the gate's control flow.
var (
	// basicGreetings never justify a model call.
	basicGreetings = []string{"hola", "hi", "hey", "buenos dias", "buenas tardes", "buenas noches"}

	// contactWords answered locally when the message is short.
	contactWords = []string{"telefono", "direccion", "ubicacion", "donde estan", "contacto"}

	// barePriceQuestions have no context worth sending to the model.
	barePriceQuestions = []string{"precios", "precio", "cuanto cuesta"}

	// productKeywords mark consultations worth a model completion.
	productKeywords = []string{
		"escalera", "metros", "altura", "fibra", "aluminio", "extension", "tijera", "sencilla", "caballete",
		"necesito", "busco", "recomiendan", "diferencia", "mejor", "cual", "capacidad", "peso",
		"alquiler", "alquilar", "rentar", "mantenimiento", "servicio", "certificacion", "normas",
		"trabajo electrico", "industrial", "comercial", "tipo", "modelo",
	}
)

// Gate decides whether a message should be answered by the completion
// provider or locally.
type Gate struct {
	kb *KnowledgeBase
}

// NewGate creates a gate. kb may be nil if the strict variant is not used.
func NewGate(kb *KnowledgeBase) *Gate {
	return &Gate{kb: kb}
}

// Eligible reports whether the message justifies a model completion. Rules
// run in order, first match wins. Matching is on raw lower-cased text:
// accents are deliberately NOT stripped here (normalizing would change
// which keywords fire), unlike the canned lookup.
func (g *Gate) Eligible(message string) bool {
	text := strings.ToLower(strings.TrimSpace(message))

	for _, greeting := range basicGreetings {
		if text == greeting {
			return false
		}
	}

	if containsAny(text, contactWords) && tokenCount(text) <= 3 {
		return false
	}

	for _, q := range barePriceQuestions {
		if text == q && tokenCount(text) <= 2 {
			return false
		}
	}

	return containsAny(text, productKeywords)
}

// EligibleStrict additionally treats "a canned response exists" as automatic
// ineligibility, checked before everything else. The canned match must
// always short-circuit the model.
func (g *Gate) EligibleStrict(message string) bool {
	if g.kb != nil && g.kb.LookupCanned(message) != "" {
		return false
	}
	return g.Eligible(message)
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func tokenCount(text string) int {
	return len(strings.Fields(text))
}
