package valueobjects

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nameCaser = cases.Title(language.BrazilianPortuguese)

// lowercaseParticles stay lowercase inside a name ("Maria da Silva").
var lowercaseParticles = map[string]bool{
	"da": true, "das": true, "de": true, "do": true, "dos": true, "e": true,
}

// NormalizeFullName collapses whitespace and title-cases each word using
// pt-BR rules, keeping connecting particles lowercase.
func NormalizeFullName(value string) (string, error) {
	words := strings.Fields(value)
	if len(words) == 0 {
		return "", nil
	}

	for i, w := range words {
		lower := strings.ToLower(w)
		if i > 0 && lowercaseParticles[lower] {
			words[i] = lower
			continue
		}
		words[i] = nameCaser.String(w)
	}

	normalized := strings.Join(words, " ")
	if len([]rune(normalized)) > 150 {
		return "", fmt.Errorf("full name cannot exceed 150 characters")
	}
	return normalized, nil
}
