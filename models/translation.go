package models

// Translation is a single translated text as returned by a translation client
type Translation struct {
	Text         string   `json:"translatedText"`
	Source       string   `json:"source"`
	Target       string   `json:"target"`
	Match        float64  `json:"match"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// LangPair formats two language codes the way MyMemory expects them
func LangPair(source, target string) string {
	return source + "|" + target
}
