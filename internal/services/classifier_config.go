package services

// ClassifierConfig is the immutable keyword configuration injected into the
// type classifier at construction time. Keywords map label synonyms onto
// canonical catalog type names; Priorities break ties between keywords of
// equal length (higher wins).
type ClassifierConfig struct {
	Keywords   map[string]string
	Priorities map[string]int
}

// DefaultClassifierConfig returns the keyword table used in production.
// Tests inject alternate tables.
func DefaultClassifierConfig() ClassifierConfig {
	return ClassifierConfig{
		Keywords: map[string]string{
			"PC":           "PC",
			"COMPUTADORA":  "PC",
			"ORDENADOR":    "PC",
			"CPU":          "PC",
			"DESKTOP":      "PC",
			"LAPTOP":       "Laptop",
			"NOTEBOOK":     "Laptop",
			"PORTATIL":     "Laptop",
			"PORTÁTIL":     "Laptop",
			"MONITOR":      "Monitor",
			"PANTALLA":     "Monitor",
			"PROYECTOR":    "Proyector",
			"CAMARA":       "Cámara",
			"CÁMARA":       "Cámara",
			"DVR":          "DVR",
			"NVR":          "DVR",
			"TELEFONO":     "Teléfono",
			"TELÉFONO":     "Teléfono",
			"CELULAR":      "Teléfono",
			"SMARTPHONE":   "Teléfono",
			"IMPRESORA":    "Impresora",
			"PRINTER":      "Impresora",
			"MULTIFUNCION": "Impresora",
			"ESCANER":      "Escáner",
			"ESCÁNER":      "Escáner",
			"SCANNER":      "Escáner",
			"MAQUINARIA":   "Otros",
			"EQUIPO":       "Otros",
		},
		Priorities: map[string]int{
			// Specific device keywords outrank generic ones of the same
			// length, e.g. MONITOR over TELEFONO-style generic labels.
			"MONITOR":   10,
			"IMPRESORA": 10,
			"CAMARA":    5,
			"EQUIPO":    -10,
		},
	}
}
