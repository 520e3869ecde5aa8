package chatbot

import (
	"regexp"
	"strings"
)

// ExtractedInfo holds sparse facts pulled from a single message. Fields that
// did not match are left empty and omitted from JSON.
type ExtractedInfo struct {
	ProjectType string `json:"tipo_proyecto,omitempty"`
	Urgency     string `json:"urgencia,omitempty"`
	Height      string `json:"altura,omitempty"`
	Material    string `json:"material,omitempty"`
	LadderType  string `json:"tipo_escalera,omitempty"`
}

// Empty reports whether no detector matched.
func (i ExtractedInfo) Empty() bool {
	return i == ExtractedInfo{}
}

// heightRE captures the first "<digits> metros/mts/m" mention.
var heightRE = regexp.MustCompile(`(\d+)\s*(metros?|mts?|m)\b`)

type keywordRule struct {
	keyword string
	value   string
}

// Field detectors, each first-match-wins. Longer phrases go before their
// substrings.
var (
	projectTypeRules = []keywordRule{
		{"trabajo electrico", "electrico"},
		{"electrico", "electrico"},
		{"electricidad", "electrico"},
		{"industrial", "industrial"},
		{"comercial", "comercial"},
		{"construccion", "construccion"},
		{"obra", "construccion"},
		{"pintar", "pintura"},
		{"pintura", "pintura"},
		{"hogar", "hogar"},
		{"casa", "hogar"},
	}

	urgencyRules = []keywordRule{
		{"urgente", "alta"},
		{"inmediato", "alta"},
		{"para hoy", "alta"},
		{"hoy mismo", "alta"},
		{"ahora mismo", "alta"},
		{"esta semana", "media"},
		{"pronto", "media"},
		{"sin afan", "baja"},
		{"cuando se pueda", "baja"},
	}

	materialRules = []keywordRule{
		{"fibra de vidrio", "fibra"},
		{"fibra", "fibra"},
		{"aluminio", "aluminio"},
	}

	ladderTypeRules = []keywordRule{
		{"extension", "extension"},
		{"tijera", "tijera"},
		{"sencilla", "sencilla"},
		{"caballete", "caballete"},
		{"plataforma", "plataforma"},
	}
)

// ExtractInfo runs the five field detectors over a single message. Pure and
// total: unmatched fields stay empty, nothing fails.
func ExtractInfo(message string) ExtractedInfo {
	text := strings.ToLower(message)

	info := ExtractedInfo{
		ProjectType: matchRules(text, projectTypeRules),
		Urgency:     matchRules(text, urgencyRules),
		Material:    matchRules(text, materialRules),
		LadderType:  matchRules(text, ladderTypeRules),
	}
	if m := heightRE.FindString(text); m != "" {
		info.Height = m
	}
	return info
}

func matchRules(text string, rules []keywordRule) string {
	for _, r := range rules {
		if strings.Contains(text, r.keyword) {
			return r.value
		}
	}
	return ""
}
