package chatbot

import (
	"fmt"
	"strings"

	"github.com/nicolas2456/Escaleras-Ferre/internal/catalog"
)

// HandoffGenerator builds the WhatsApp hand-off block appended to hot and
// warm-hot responses, pointing the user at a direct human contact.
type HandoffGenerator struct {
	bogota      catalog.Contact
	bucaramanga catalog.Contact
}

// NewHandoffGenerator pulls the contact numbers out of the catalog once.
func NewHandoffGenerator(cat *catalog.Catalog) *HandoffGenerator {
	g := &HandoffGenerator{}
	g.bogota, _ = cat.ContactByKey("bogota")
	g.bucaramanga, _ = cat.ContactByKey("bucaramanga")
	return g
}

// Generate returns the hand-off message for a lead label, or "" for
// Frio/Curioso where no hand-off is warranted. info is accepted so the
// wording can later vary by extracted project details; today only the label
// changes the text.
func (g *HandoffGenerator) Generate(label LeadLabel, info ExtractedInfo) string {
	_ = info

	switch label {
	case LeadHot:
		return strings.Join([]string{
			"🔥 ¡Veo que estás listo para comprar! Te conecto directo con un asesor:",
			"",
			fmt.Sprintf("📱 WhatsApp Bogotá: %s (%s)", g.bogota.Phone, g.bogota.Type),
			fmt.Sprintf("📱 WhatsApp Bucaramanga: %s (%s)", g.bucaramanga.Phone, g.bucaramanga.Address),
			"",
			"Escríbeles ya y cierra tu pedido hoy mismo 😊",
		}, "\n")
	case LeadWarm, LeadWarmHot:
		return strings.Join([]string{
			"💬 Para una cotización exacta, háblanos por WhatsApp:",
			"",
			fmt.Sprintf("📱 Bogotá: %s", g.bogota.Phone),
			fmt.Sprintf("📱 Bucaramanga: %s", g.bucaramanga.Phone),
			"",
			"¿Con cuál sede te conecto? 😊",
		}, "\n")
	default:
		return ""
	}
}
