// Package names centraliza la normalización de nombres visibles (categorías).
// La regla es fija: trim + minúsculas + title-case según el locale recibido,
// de modo que la comparación de unicidad sea insensible a mayúsculas y espacios.
package names

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NormalizeTitleCase recorta espacios, pasa a minúsculas y aplica title-case
// con el locale indicado. Es función pura: mismo input, mismo output.
func NormalizeTitleCase(tag language.Tag, name string) string {
	trimmed := strings.TrimSpace(name)
	lower := cases.Lower(tag).String(trimmed)
	return cases.Title(tag).String(lower)
}

// OnlyLettersAndSpaces indica si el nombre contiene únicamente letras y espacios.
func OnlyLettersAndSpaces(name string) bool {
	for _, r := range name {
		if !unicode.IsLetter(r) && !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// ParseLocale convierte un código BCP 47 ("es", "pt-BR") en language.Tag.
// Si el código no parsea se usa español como valor por omisión.
func ParseLocale(code string) language.Tag {
	tag, err := language.Parse(code)
	if err != nil {
		return language.Spanish
	}
	return tag
}
