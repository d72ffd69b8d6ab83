// Package matcher picks the station name that best interprets a free-form query.
package matcher

import (
	"strings"

	"nexttrain.org/internal/normalize"
)

// Score ladder, highest wins.
const (
	ScoreNone      = 0
	ScoreExact     = 100
	ScorePrefix    = 90
	ScoreSubstring = 80
	ScoreTokens    = 70

	maxTokenBonus = 20
	tokenBonus    = 5
)

// Score rates how well a normalized query matches a normalized candidate.
func Score(query, candidate string) int {
	if query == "" || candidate == "" {
		return ScoreNone
	}
	if query == candidate {
		return ScoreExact
	}
	if strings.HasPrefix(candidate, query) {
		return ScorePrefix
	}
	if strings.Contains(candidate, query) {
		return ScoreSubstring
	}

	queryTokens := normalize.Tokens(query)
	candidateTokens := normalize.Tokens(candidate)
	if len(queryTokens) == 0 {
		return ScoreNone
	}
	for _, qt := range queryTokens {
		if !containedInAny(qt, candidateTokens) {
			return ScoreNone
		}
	}
	return ScoreTokens + min(maxTokenBonus, tokenBonus*len(queryTokens))
}

func containedInAny(token string, tokens []string) bool {
	for _, t := range tokens {
		if strings.Contains(t, token) {
			return true
		}
	}
	return false
}

// Match is the best candidate found for a query.
type Match struct {
	Name  string
	Score int
}

// Best folds over candidates and returns the highest scoring one. A later
// candidate only replaces the current best when its score is strictly higher.
func Best(normalizedQuery string, candidates []string) Match {
	best := Match{}
	for _, candidate := range candidates {
		score := Score(normalizedQuery, normalize.Normalize(candidate))
		if score > best.Score {
			best = Match{Name: candidate, Score: score}
		}
	}
	return best
}

// ResolveNormalized returns the original spelling of the best candidate for an
// already normalized query, or false when nothing scored.
func ResolveNormalized(normalizedQuery string, candidates []string) (string, bool) {
	best := Best(normalizedQuery, candidates)
	if best.Score == ScoreNone {
		return "", false
	}
	return best.Name, true
}

// Resolve normalizes query and resolves it against candidates.
func Resolve(query string, candidates []string) (string, bool) {
	return ResolveNormalized(normalize.Normalize(query), candidates)
}
