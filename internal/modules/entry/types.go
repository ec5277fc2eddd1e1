package entry

import (
	"errors"
	"time"

	"github.com/wortkiste/core/internal/models"
)

var (
	ErrDuplicateTerm = errors.New("an entry with this term already exists")
	ErrNotFound      = errors.New("entry not found")
	ErrMissingFields = errors.New("term and definition must not be empty")
)

type entryDTO struct {
	Term         string   `json:"term"       binding:"required"`
	Definition   string   `json:"definition" binding:"required"`
	Example      string   `json:"example"`
	Synonyms     string   `json:"synonyms"`
	PartOfSpeech []string `json:"part_of_speech"`
	Article      string   `json:"article"`
}

type entryResponse struct {
	ID           string    `json:"id"`
	Term         string    `json:"term"`
	Definition   string    `json:"definition"`
	Example      string    `json:"example,omitempty"`
	Synonyms     string    `json:"synonyms,omitempty"`
	PartOfSpeech []string  `json:"part_of_speech"`
	Article      string    `json:"article,omitempty"`
	Created      time.Time `json:"created"`
	Modified     time.Time `json:"modified"`
}

func toResponse(e *models.EntryModel) entryResponse {
	return entryResponse{
		ID:           e.ID,
		Term:         e.Term,
		Definition:   e.Definition,
		Example:      e.Example,
		Synonyms:     e.Synonyms,
		PartOfSpeech: e.PartOfSpeech,
		Article:      e.Article,
		Created:      e.CreatedAt,
		Modified:     e.UpdatedAt,
	}
}
