package catalog

// CannedEntry pairs a trigger phrase with its fixed reply.
type CannedEntry struct {
	Phrase   string
	Response string
}

// CannedResponses returns the canned reply table in priority order. The
// lookup is first-match-wins over overlapping phrases, so this must stay an
// ordered slice, never a map.
func CannedResponses() []CannedEntry {
	return []CannedEntry{
		// Saludos
		{"hola", "¡Hola! Soy Diana de Escaleras Ferre 😊 ¿Qué tipo de escalera necesitas?"},
		{"buenos dias", "¡Buenos días! Te saluda Diana de Escaleras Ferre. ¿En qué puedo ayudarte?"},
		{"buenas tardes", "¡Buenas tardes! Soy Diana, ¿qué escalera estás buscando?"},
		{"buenas noches", "¡Buenas noches! Soy Diana de Escaleras Ferre. ¿En qué te puedo ayudar?"},

		// Contacto básico
		{"telefono", "Nuestros números:\n📱 Bogotá: 3008611868 (virtual)\n📱 Bucaramanga: 3181027047 (Cll 34 #11-27)\n¿Con cuál prefieres hablar?"},
		{"direccion", "Sede física: Bucaramanga, Cll 34 #11-27\nAtención virtual: Bogotá 3008611868\n¿Cuál te conviene más?"},
		{"ubicacion", "Tenemos presencia en Bogotá (virtual) y Bucaramanga (física). ¿De qué ciudad me escribes?"},
		{"horario", "Atendemos de lunes a viernes 8am-6pm, sábados 8am-1pm. ¿Qué necesitas?"},

		// Servicios básicos
		{"alquiler", "Alquilamos escaleras extensión, tijera, sencilla y plataforma con entrega incluida. ¿Para qué proyecto las necesitas?"},
		{"mantenimiento", "Ofrecemos mantenimiento preventivo y correctivo por técnicos certificados. ¿Qué escaleras necesitas revisar?"},
		{"venta", "Vendemos escaleras en fibra de vidrio y aluminio con certificaciones internacionales. ¿Qué tipo te interesa?"},

		// Precios generales
		{"precio", "Para cotización exacta necesito saber qué escalera buscas. ¿Te conecto con un asesor por WhatsApp? 😊"},
		{"cotizacion", "Te puedo ayudar a elegir la escalera correcta y conectarte con asesor para precio. ¿Qué altura necesitas?"},
		{"cuanto cuesta", "El precio depende del tipo y tamaño. ¿Buscas fibra o aluminio? ¿Qué altura necesitas?"},

		// Agradecimientos
		{"gracias", "¡Con gusto! Si necesitas algo más sobre nuestras escaleras, aquí estoy 😊"},
		{"muchas gracias", "¡De nada! Estoy aquí para ayudarte con escaleras. ¿Algo más?"},
	}
}
