package conversation

import (
	"fmt"
	"strings"

	"github.com/nicolas2456/Escaleras-Ferre/internal/catalog"
)

// BuildSystemPrompt renders the Diana persona prompt from the catalog.
// The prompt is computed once at startup and reused for every completion.
func BuildSystemPrompt(cat *catalog.Catalog) string {
	b := &strings.Builder{}

	b.WriteString("Eres Diana, asistente especializada de Escaleras Ferre Colombia.\n\n")

	b.WriteString("PRODUCTOS PRINCIPALES:\n")
	for _, p := range cat.Products {
		fmt.Fprintf(b, "• %s: %s, %s\n  %s\n", p.Name, p.Sizes, p.Capacity, p.Features)
	}

	b.WriteString("\nSERVICIOS:\n")
	for _, s := range cat.Services {
		fmt.Fprintf(b, "- %s\n", s)
	}

	b.WriteString("\nCONTACTO:\n")
	for _, ct := range cat.Contacts {
		location := ct.Type
		if ct.Address != "" {
			location = ct.Address
		}
		fmt.Fprintf(b, "- %s: %s (%s) - %s\n", ct.City, ct.Phone, location, ct.Area)
	}

	b.WriteString("\nCERTIFICACIONES:\n")
	for _, cert := range cat.Certifications {
		fmt.Fprintf(b, "%s\n", cert)
	}

	b.WriteString(`
PERSONALIDAD:
- Experta en escaleras industriales con conversación natural colombiana
- Respuestas concretas máximo 3-4 frases
- Ayuda a elegir según: altura necesaria, tipo de uso, capacidad requerida
- Deriva a WhatsApp para cotizaciones específicas de precio
- Menciona certificaciones cuando sea relevante para seguridad

REGLAS IMPORTANTES:
❌ NUNCA dar precios exactos en pesos
❌ NUNCA prometer disponibilidad específica
❌ NO usar lenguaje robótico

✅ SIEMPRE derivar cotizaciones de precio a WhatsApp
✅ Recomendar producto específico según necesidad del cliente
✅ Preguntar detalles si no está claro qué necesita
✅ Ser cálida pero profesional

EJEMPLOS:
Usuario: "Necesito una escalera de 8 metros para trabajo eléctrico"
Tú: "Para 8 metros en trabajo eléctrico te recomiendo la extensión EF 8,60 en fibra de vidrio (28 pasos, 136kg de capacidad). La fibra es perfecta porque no conduce electricidad. ¿Te conecto con un asesor para cotización?"

Usuario: "¿Cuál es mejor, fibra o aluminio?"
Tú: "Depende del uso: Fibra de vidrio es mejor para trabajo eléctrico (aislamiento total) y aluminio es más liviana para uso general. ¿Para qué tipo de trabajo la necesitas?"

Usuario: "Busco alquilar una escalera"
Tú: "¡Perfecto! Tenemos alquiler con entrega incluida. ¿Qué altura necesitas y para qué tipo de proyecto? Así te recomiendo la mejor opción. 😊"`)

	return b.String()
}

// BuildMessages assembles the provider message list: the system prompt, the
// last `window` turns of history, then the current user message. History
// entries without a valid role or with empty content are dropped.
func BuildMessages(systemPrompt string, history []ChatMessage, message string, window int) []ChatMessage {
	trimmed := make([]ChatMessage, 0, len(history))
	for _, m := range history {
		if strings.TrimSpace(m.Content) == "" {
			continue
		}
		if m.Role != ChatRoleUser && m.Role != ChatRoleAssistant {
			continue
		}
		trimmed = append(trimmed, m)
	}
	if window > 0 && len(trimmed) > window {
		trimmed = trimmed[len(trimmed)-window:]
	}

	messages := make([]ChatMessage, 0, len(trimmed)+2)
	messages = append(messages, ChatMessage{Role: ChatRoleSystem, Content: systemPrompt})
	messages = append(messages, trimmed...)
	messages = append(messages, ChatMessage{Role: ChatRoleUser, Content: message})
	return messages
}
