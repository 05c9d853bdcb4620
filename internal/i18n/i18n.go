package i18n

import (
	"fmt"
	"strings"
)

// Language identifies one of the storefront's supported locales.
type Language string

const (
	// ES is European Spanish, the default storefront language.
	ES Language = "es"
	// PT is European Portuguese.
	PT Language = "pt"
)

// All returns every supported language. The slice order is stable.
func All() []Language {
	return []Language{ES, PT}
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == ES || l == PT
}

// Parse resolves a raw language code, falling back to Spanish for anything
// it does not recognise. Malformed input is a normalization condition, not
// an error.
func Parse(raw string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(raw))) {
	case PT:
		return PT
	default:
		return ES
	}
}

// Text maps a language to its rendering of a single piece of copy.
type Text map[Language]string

// Get returns the text for the requested language.
func (t Text) Get(lang Language) string {
	return t[lang]
}

// Complete reports whether the text covers every supported language with a
// non-empty value.
func (t Text) Complete() bool {
	for _, lang := range All() {
		if strings.TrimSpace(t[lang]) == "" {
			return false
		}
	}
	return true
}

// Table is a keyed set of localized labels. Every key must carry every
// supported language; a missing translation is a data defect surfaced by
// Validate at startup rather than papered over at render time.
type Table map[string]Text

// Validate checks the table for missing or empty translations.
func (t Table) Validate() error {
	for key, text := range t {
		for _, lang := range All() {
			if strings.TrimSpace(text[lang]) == "" {
				return fmt.Errorf("label %q missing %s translation", key, lang)
			}
		}
	}
	return nil
}

// Get returns the label for key in the requested language. Callers are
// expected to have validated the table, so a miss returns the key itself to
// keep the defect visible.
func (t Table) Get(key string, lang Language) string {
	if text, ok := t[key]; ok {
		if v := text[lang]; v != "" {
			return v
		}
	}
	return key
}
