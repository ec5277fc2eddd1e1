// Package morphology canonicalizes part-of-speech tags and grammatical
// articles and enforces the noun↔article dependency.
package morphology

import (
	"errors"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Canonical part-of-speech tags. The oracle may propose several tags for a
// word like "schnell" (adjective and adverb); the system keeps a single
// primary tag and truncates the rest.
const (
	Noun         = "noun"
	Verb         = "verb"
	Adjective    = "adjective"
	Adverb       = "adverb"
	Interjection = "interjection"
	Particle     = "particle"
	Conjunction  = "conjunction"
	Preposition  = "preposition"
	Phrase       = "phrase"
)

var canonicalTags = map[string]string{
	Noun:         Noun,
	Verb:         Verb,
	Adjective:    Adjective,
	Adverb:       Adverb,
	Interjection: Interjection,
	Particle:     Particle,
	Conjunction:  Conjunction,
	Preposition:  Preposition,
	Phrase:       Phrase,
}

var articles = map[string]string{
	"der": "der",
	"die": "die",
	"das": "das",
}

var (
	// ErrArticleRequired is returned when a noun entry carries no article.
	ErrArticleRequired = errors.New("article required for nouns")

	// ErrArticleNotAllowed is returned when a non-noun entry carries an
	// article. Violations surface as validation errors, never silently
	// corrected.
	ErrArticleNotAllowed = errors.New("article only allowed for nouns")
)

// NormalizePartOfSpeech canonicalizes tags case-insensitively, drops
// unknown tags, collapses duplicates and truncates the result to the first
// tag. Returns an empty (non-nil) slice when nothing valid remains.
func NormalizePartOfSpeech(input []string) []string {
	out := make([]string, 0, 1)
	seen := make(map[string]struct{}, len(input))
	for _, raw := range input {
		tag, ok := canonicalTags[strings.ToLower(strings.TrimSpace(raw))]
		if !ok {
			continue
		}
		if _, dup := seen[tag]; dup {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	if len(out) > 1 {
		out = out[:1]
	}
	return out
}

// NormalizeArticle canonicalizes a grammatical article. Invalid or empty
// input yields "".
func NormalizeArticle(raw string) string {
	return articles[strings.ToLower(strings.TrimSpace(raw))]
}

// Validate normalizes both values and applies the invariant: the part of
// speech contains "noun" iff an article is set.
func Validate(partOfSpeech []string, article string) ([]string, string, error) {
	pos := NormalizePartOfSpeech(partOfSpeech)
	art := NormalizeArticle(article)

	if IsNoun(pos) {
		if art == "" {
			return nil, "", ErrArticleRequired
		}
		return pos, art, nil
	}
	if art != "" {
		return nil, "", ErrArticleNotAllowed
	}
	return pos, "", nil
}

// IsNoun reports whether the tag set contains the noun tag.
func IsNoun(partOfSpeech []string) bool {
	for _, tag := range partOfSpeech {
		if tag == Noun {
			return true
		}
	}
	return false
}

// CapitalizeFirst uppercases the first rune. German nouns are written
// capitalized, so suggestions and lemmas for noun terms go through this
// before they are shown or stored.
func CapitalizeFirst(text string) string {
	if text == "" {
		return text
	}
	r, size := utf8.DecodeRuneInString(text)
	if r == utf8.RuneError && size <= 1 {
		return text
	}
	upper := unicode.ToUpper(r)
	if upper == r {
		return text
	}
	return string(upper) + text[size:]
}
