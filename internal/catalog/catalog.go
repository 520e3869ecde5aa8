// Package catalog holds the static Escaleras Ferre knowledge base: the
// product catalog, contact directory, services, certifications and the
// canned-response table. Everything here is immutable after startup.
package catalog

// Product describes one ladder family.
type Product struct {
	Key      string
	Name     string
	Sizes    string
	Capacity string
	Features string
	Refs     string
}

// Contact describes one service location.
type Contact struct {
	Key     string
	City    string
	Phone   string
	Address string
	Type    string
	Area    string
}

// Catalog is the full knowledge base used to build the model system prompt
// and the hand-off messages.
type Catalog struct {
	CompanyName    string
	Products       []Product
	Services       []string
	Contacts       []Contact
	Certifications []string
}

// Default returns the built-in Escaleras Ferre catalog.
func Default() *Catalog {
	return &Catalog{
		CompanyName: "Escaleras Ferre",
		Products: []Product{
			{
				Key:      "fibra_extension",
				Name:     "Escaleras Fibra - Extensión",
				Sizes:    "5m a 12m (16-40 pasos)",
				Capacity: "136kg - Tipo IA Industrial",
				Features: "Aislamiento eléctrico, peldaños tipo D, resistente UV",
				Refs:     "EF 5,00 hasta EF 12,0",
			},
			{
				Key:      "fibra_tijera",
				Name:     "Escaleras Fibra - Tijera",
				Sizes:    "0.6m a 6m (2-20 pasos)",
				Capacity: "136kg Industrial / 114kg Comercial",
				Features: "Peldaños planos, uso eléctrico, estables",
				Refs:     "TF/TFL 0,60 hasta 6,00",
			},
			{
				Key:      "fibra_sencilla",
				Name:     "Escaleras Fibra - Sencillas",
				Sizes:    "1.5m a 6m (5-20 pasos)",
				Capacity: "136kg Industrial / 114kg Comercial",
				Features: "Un solo cuerpo, peldaños tipo D",
				Refs:     "SF/SFL 1,50 hasta 6,00",
			},
			{
				Key:      "fibra_caballete",
				Name:     "Escaleras Fibra - Caballete",
				Sizes:    "5m a 10m (16-32 pasos)",
				Capacity: "136kg - Tipo IA Industrial",
				Features: "Doble acceso, peldaños tipo D, trabajo a dos manos",
				Refs:     "EFC 5,00 hasta EFC 10,0",
			},
			{
				Key:      "aluminio_extension",
				Name:     "Escaleras Aluminio - Extensión",
				Sizes:    "5m a 12m (16-40 pasos)",
				Capacity: "136kg - Tipo IA Industrial",
				Features: "Livianas, resistente corrosión, peldaños tipo D",
				Refs:     "EA 5,00 hasta EA 12,0",
			},
			{
				Key:      "aluminio_tijera",
				Name:     "Escaleras Aluminio - Tijera",
				Sizes:    "0.6m a 6m (2-20 pasos)",
				Capacity: "136kg Industrial / 102kg Comercial",
				Features: "Ultralivianas, peldaños planos",
				Refs:     "TA/TAL 0,60 hasta 6,00",
			},
			{
				Key:      "aluminio_sencilla",
				Name:     "Escaleras Aluminio - Sencillas",
				Sizes:    "1.5m a 6m (5-20 pasos)",
				Capacity: "136kg - Tipo IA Industrial",
				Features: "Un solo cuerpo, ultraliviana, peldaños tipo D",
				Refs:     "SA 1,50 hasta SA 6,00",
			},
			{
				Key:      "accesorios",
				Name:     "Accesorios para Escaleras",
				Sizes:    "Universal para todas las escaleras",
				Capacity: "Según escalera",
				Features: "Binchas, ganchos bomberos, zapatas niveladoras, plataformas aluminio, ruedas",
			},
		},
		Services: []string{
			"Venta de escaleras certificadas ISO 9001, ANSI 14.5, EN131, OSHA",
			"Alquiler con entrega: extensión, tijera, sencilla, tijera plataforma",
			"Mantenimiento preventivo y correctivo especializado con técnicos certificados",
		},
		Contacts: []Contact{
			{
				Key:   "bogota",
				City:  "Bogotá",
				Phone: "3008611868",
				Type:  "Virtual",
				Area:  "Bogotá y alrededores",
			},
			{
				Key:     "bucaramanga",
				City:    "Bucaramanga",
				Phone:   "3181027047",
				Address: "Cll 34 #11-27",
				Type:    "Física",
				Area:    "Bucaramanga y Santander",
			},
		},
		Certifications: []string{
			"ISO 9001:2015 - Gestión de calidad",
			"ANSI 14.5 - Estándares americanos",
			"EN131 - Normas europeas de seguridad",
			"OSHA - Regulaciones de seguridad ocupacional",
		},
	}
}

// ContactByKey returns the contact entry for a location key.
func (c *Catalog) ContactByKey(key string) (Contact, bool) {
	for _, ct := range c.Contacts {
		if ct.Key == key {
			return ct, true
		}
	}
	return Contact{}, false
}
