package portal

import "strings"

// Lang is a 2-letter UI language code.
type Lang string

const (
	LangPT Lang = "pt"
	LangEN Lang = "en"
	LangES Lang = "es"

	// DefaultLang is the language whose field values are mandatory and
	// act as the universal fallback.
	DefaultLang = LangPT
)

// ParseLang normalizes a language code. Unknown codes resolve to the
// default language, which makes them behave exactly like a missing
// translation.
func ParseLang(code string) Lang {
	switch Lang(strings.ToLower(strings.TrimSpace(code))) {
	case LangPT:
		return LangPT
	case LangEN:
		return LangEN
	case LangES:
		return LangES
	}
	return DefaultLang
}

// Text is a localized string keyed by language code. The default-language
// value is expected to be present on every stored record; that is a
// data-entry invariant enforced at write time, not here.
type Text map[Lang]string

// In returns the value for lang when present and non-empty, otherwise the
// default-language value. It never falls through intermediate languages.
func (t Text) In(lang Lang) string {
	if v := t[lang]; v != "" {
		return v
	}
	return t[DefaultLang]
}

func newText(pt, en, es string) Text {
	return Text{LangPT: pt, LangEN: en, LangES: es}
}
