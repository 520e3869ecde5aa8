package chatbot

import "strings"

// LeadLabel is a coarse purchase-intent classification for one message.
type LeadLabel string

const (
	LeadCold    LeadLabel = "Frio"
	LeadCurious LeadLabel = "Curioso"
	LeadWarm    LeadLabel = "Tibio"
	LeadWarmHot LeadLabel = "Tibio-Caliente"
	LeadHot     LeadLabel = "Caliente"
)

// warmEscalationDepth is the history length past which repeated price
// interest is treated as hotter intent.
const warmEscalationDepth = 4

// Intent keyword tables, checked top to bottom.
var (
	// hotKeywords signal explicit commitment or urgency.
	hotKeywords = []string{
		"quiero comprar", "necesito ya", "lo quiero", "comprar ahora", "me la llevo",
		"urgente", "para hoy", "donde pago", "como pago", "hagamos el pedido",
	}

	// warmKeywords signal price or quote interest.
	warmKeywords = []string{
		"precio", "cuanto cuesta", "cuanto vale", "cotizacion", "cotizar",
		"costo", "presupuesto", "descuento",
	}

	// coldKeywords signal pure information seeking.
	coldKeywords = []string{
		"que es", "como funciona", "informacion", "catalogo",
		"solo quiero saber", "por curiosidad",
	}
)

// ClassifyIntent assigns a lead-temperature label to a message. Matching is
// contains-any over lower-cased text with no accent normalization, first
// rule wins. historyLen is the number of prior conversation turns: warm
// interest deep into a conversation escalates to Tibio-Caliente.
func ClassifyIntent(message string, historyLen int) LeadLabel {
	text := strings.ToLower(message)

	if containsAny(text, hotKeywords) {
		return LeadHot
	}
	if containsAny(text, warmKeywords) {
		if historyLen > warmEscalationDepth {
			return LeadWarmHot
		}
		return LeadWarm
	}
	if containsAny(text, coldKeywords) {
		return LeadCold
	}
	return LeadCurious
}

// IsLead reports whether the label counts toward lead statistics.
func (l LeadLabel) IsLead() bool {
	return l == LeadHot || l == LeadWarm || l == LeadWarmHot
}
