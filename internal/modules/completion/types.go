package completion

import "errors"

var errNoInput = errors.New("at least one content field must be provided")

// Fields is the mutable slice of an entry the completion engine works on.
// PartOfSpeech and Article are carried so already-confirmed morphology
// survives the round trip.
type Fields struct {
	Term         string   `json:"term"`
	Definition   string   `json:"definition"`
	Example      string   `json:"example"`
	Synonyms     string   `json:"synonyms"`
	PartOfSpeech []string `json:"part_of_speech"`
	Article      string   `json:"article"`
}

func (f Fields) empty() bool {
	return f.Term == "" && f.Definition == "" && f.Example == "" && f.Synonyms == ""
}

type completeDTO struct {
	Fields
	// FocusedField names the field the user is editing. When set, only
	// that field's text is sent to the oracle; the caller clears any
	// non-focused text it wants regenerated before calling.
	FocusedField string `json:"focused_field"`
}

// rawCompletion is the schema the oracle must return.
type rawCompletion struct {
	Term         string   `json:"term"`
	Definition   string   `json:"definition"`
	Example      string   `json:"example"`
	Synonyms     string   `json:"synonyms"`
	PartOfSpeech []string `json:"partOfSpeech"`
	Article      string   `json:"article"`
}
