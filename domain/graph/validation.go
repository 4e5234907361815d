package graph

import (
	"regexp"
	"strings"

	"github.com/evo-kg/evokg-api/pkg/apperror"
)

// Labels, property names, and relationship types arrive as caller-supplied
// strings and are spliced into Cypher text, so they must stay inside a
// conservative identifier alphabet. Values never take this path; they are
// always bound as parameters.
var identifierPattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateIdentifier rejects any name unsafe to interpolate into a query
func ValidateIdentifier(name string) error {
	if !identifierPattern.MatchString(name) {
		return apperror.ErrBadIdentifier.WithMessage("invalid identifier: " + name)
	}
	return nil
}

// bigrams returns the multiset of adjacent character pairs of s
func bigrams(s string) map[string]int {
	grams := make(map[string]int)
	for i := 0; i+2 <= len(s); i++ {
		grams[s[i:i+2]]++
	}
	return grams
}

// DiceCoefficient computes the Sørensen–Dice bigram overlap of two strings,
// case-insensitively. Identical strings score 1; strings without shared
// bigrams score 0.
func DiceCoefficient(a, b string) float64 {
	a = strings.ToLower(a)
	b = strings.ToLower(b)
	if a == b {
		return 1
	}
	if len(a) < 2 || len(b) < 2 {
		return 0
	}

	gramsA := bigrams(a)
	gramsB := bigrams(b)

	overlap := 0
	for gram, countA := range gramsA {
		if countB, ok := gramsB[gram]; ok {
			if countA < countB {
				overlap += countA
			} else {
				overlap += countB
			}
		}
	}

	return 2 * float64(overlap) / float64(len(a)-1+len(b)-1)
}
