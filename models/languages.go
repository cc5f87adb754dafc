package models

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

type Language struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Catalog is the ordered list offered by both language selectors.
var Catalog = []Language{
	{"am-ET", "Amharic"},
	{"ar-SA", "Arabic"},
	{"be-BY", "Belarusian"},
	{"bem-ZM", "Bemba"},
	{"bi-VU", "Bislama"},
	{"bjs-BB", "Bajan"},
	{"bn-IN", "Bengali"},
	{"bo-CN", "Tibetan"},
	{"br-FR", "Breton"},
	{"bs-BA", "Bosnian"},
	{"ca-ES", "Catalan"},
	{"cop-EG", "Coptic"},
	{"cs-CZ", "Czech"},
	{"cy-GB", "Welsh"},
	{"da-DK", "Danish"},
	{"dz-BT", "Dzongkha"},
	{"de-DE", "German"},
	{"dv-MV", "Maldivian"},
	{"el-GR", "Greek"},
	{"en-GB", "English"},
	{"es-ES", "Spanish"},
	{"et-EE", "Estonian"},
	{"eu-ES", "Basque"},
	{"fa-IR", "Persian"},
	{"fi-FI", "Finnish"},
	{"fo-FO", "Faroese"},
	{"fr-FR", "French"},
	{"gl-ES", "Galician"},
	{"gu-IN", "Gujarati"},
	{"ha-NE", "Hausa"},
	{"he-IL", "Hebrew"},
	{"hi-IN", "Hindi"},
	{"hr-HR", "Croatian"},
	{"hu-HU", "Hungarian"},
	{"id-ID", "Indonesian"},
	{"is-IS", "Icelandic"},
	{"it-IT", "Italian"},
	{"ja-JP", "Japanese"},
	{"kk-KZ", "Kazakh"},
	{"km-KM", "Khmer"},
	{"kn-IN", "Kannada"},
	{"ko-KR", "Korean"},
	{"ku-TR", "Kurdish"},
	{"ky-KG", "Kyrgyz"},
	{"la-VA", "Latin"},
	{"lo-LA", "Lao"},
	{"lv-LV", "Latvian"},
	{"men-SL", "Mende"},
	{"mg-MG", "Malagasy"},
	{"mi-NZ", "Maori"},
	{"ms-MY", "Malay"},
	{"mt-MT", "Maltese"},
	{"my-MM", "Burmese"},
	{"ne-NP", "Nepali"},
	{"niu-NU", "Niuean"},
	{"nl-NL", "Dutch"},
	{"no-NO", "Norwegian"},
	{"ny-MW", "Nyanja"},
	{"ur-PK", "Urdu"},
	{"pau-PW", "Palauan"},
	{"pa-IN", "Panjabi"},
	{"ps-PK", "Pashto"},
	{"pis-SB", "Pijin"},
	{"pl-PL", "Polish"},
	{"pt-PT", "Portuguese"},
	{"rn-BI", "Kirundi"},
	{"ro-RO", "Romanian"},
	{"ru-RU", "Russian"},
	{"sg-CF", "Sango"},
	{"si-LK", "Sinhala"},
	{"sk-SK", "Slovak"},
	{"sm-WS", "Samoan"},
	{"sn-ZW", "Shona"},
	{"so-SO", "Somali"},
	{"sq-AL", "Albanian"},
	{"sr-RS", "Serbian"},
	{"sv-SE", "Swedish"},
	{"sw-SZ", "Swahili"},
	{"ta-LK", "Tamil"},
	{"te-IN", "Telugu"},
	{"tet-TL", "Tetum"},
	{"tg-TJ", "Tajik"},
	{"th-TH", "Thai"},
	{"ti-TI", "Tigrinya"},
	{"tk-TM", "Turkmen"},
	{"tl-PH", "Tagalog"},
	{"tn-BW", "Tswana"},
	{"to-TO", "Tongan"},
	{"tr-TR", "Turkish"},
	{"uk-UA", "Ukrainian"},
	{"uz-UZ", "Uzbek"},
	{"vi-VN", "Vietnamese"},
	{"wo-SN", "Wolof"},
	{"xh-ZA", "Xhosa"},
	{"yi-YD", "Yiddish"},
	{"zu-ZA", "Zulu"},
}

func CatalogIndex(code string) int {
	for i, l := range Catalog {
		if l.Code == code {
			return i
		}
	}
	return -1
}

func CatalogNames() []string {
	resp := make([]string, len(Catalog))
	for i, l := range Catalog {
		resp[i] = l.Name
	}
	return resp
}

// LanguageName returns the catalog name of the code; codes outside of the
// catalog fall back to the english display name of the tag.
func LanguageName(code string) string {
	if i := CatalogIndex(code); i >= 0 {
		return Catalog[i].Name
	}
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.English.Tags().Name(tag); name != "" {
		return name
	}
	return code
}

// BaseLanguage strips the region: "en-GB" -> "en". Chinese keeps the
// script-bearing region since speech engines tell the two apart.
func BaseLanguage(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		base, _, _ := strings.Cut(code, "-")
		return strings.ToLower(base)
	}
	base, _ := tag.Base()
	if base.String() == "zh" {
		if region, conf := tag.Region(); conf != language.No && region.String() == "TW" {
			return "zh-TW"
		}
		return "zh-CN"
	}
	return base.String()
}

// ValidateCatalog reports codes that are not of the language-REGION form or
// that repeat
func ValidateCatalog(langs []Language) error {
	seen := make(map[string]struct{}, len(langs))
	for _, l := range langs {
		if _, ok := seen[l.Code]; ok {
			return fmt.Errorf("duplicate language code: %s", l.Code)
		}
		seen[l.Code] = struct{}{}
		base, region, ok := strings.Cut(l.Code, "-")
		if !ok || !isAlpha(base, 2, 3) || !isAlpha(region, 2, 3) {
			return fmt.Errorf("malformed language code: %q", l.Code)
		}
		if l.Name == "" {
			return fmt.Errorf("empty name for language code: %s", l.Code)
		}
	}
	return nil
}

func isAlpha(s string, minLen, maxLen int) bool {
	if len(s) < minLen || len(s) > maxLen {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}
