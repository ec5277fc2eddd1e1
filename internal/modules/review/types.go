package review

import "errors"

// Entry fields eligible for review.
const (
	FieldTerm       = "term"
	FieldDefinition = "definition"
	FieldExample    = "example"
	FieldSynonyms   = "synonyms"
)

var reviewableFields = map[string]struct{}{
	FieldTerm:       {},
	FieldDefinition: {},
	FieldExample:    {},
	FieldSynonyms:   {},
}

var errNoFields = errors.New("no reviewable fields provided")

type reviewDTO struct {
	// Fields maps field name to the user-entered text. The caller sends
	// only fields the user actually typed; text that came from a prior
	// AI fill stays out so the oracle does not review its own output.
	Fields map[string]string `json:"fields" binding:"required"`
}

// Suggestion is one proposed correction.
type Suggestion struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Reason string `json:"reason"`
}

// FieldResult is the per-field outcome of a review call. Lemma, part of
// speech and article are only filled for the term field. Results are
// transient; nothing here is ever persisted.
type FieldResult struct {
	Corrected    string       `json:"corrected,omitempty"`
	Suggestions  []Suggestion `json:"suggestions"`
	Lemma        string       `json:"lemma,omitempty"`
	PartOfSpeech []string     `json:"part_of_speech,omitempty"`
	Article      string       `json:"article,omitempty"`
}

// reviewResponse is the schema the oracle must return.
type reviewResponse struct {
	Fields map[string]rawFieldResult `json:"fields"`
}

type rawFieldResult struct {
	Corrected    string       `json:"corrected"`
	Suggestions  []Suggestion `json:"suggestions"`
	Lemma        string       `json:"lemma"`
	PartOfSpeech []string     `json:"partOfSpeech"`
	Article      string       `json:"article"`
}
