package review

import (
	"context"
	"strings"

	"github.com/wortkiste/core/internal/modules/ai"
	"github.com/wortkiste/core/internal/modules/morphology"
)

// Oracle is the slice of the AI adapter the reviewer needs.
type Oracle interface {
	Complete(ctx context.Context, task ai.Task, req ai.Request) (*ai.Result, error)
}

// Service requests structured spelling/morphology reviews from the oracle.
// It never writes to storage.
type Service struct {
	oracle Oracle
}

func NewService(oracle Oracle) *Service {
	return &Service{oracle: oracle}
}

// Review checks the given user-entered fields and returns per-field
// correction suggestions. For the term field the result additionally
// carries lemma, part-of-speech and article guesses, with noun
// capitalization merged into the suggestions.
func (s *Service) Review(ctx context.Context, fields map[string]string) (map[string]FieldResult, error) {
	requested := make(map[string]string, len(fields))
	for name, text := range fields {
		if _, ok := reviewableFields[name]; !ok {
			continue
		}
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			requested[name] = trimmed
		}
	}
	if len(requested) == 0 {
		return nil, errNoFields
	}

	systemPrompt, prompt := buildReviewPrompt(requested)
	result, err := s.oracle.Complete(ctx, ai.TaskReview, ai.Request{
		SystemPrompt: systemPrompt,
		Prompt:       prompt,
		Temperature:  0.2,
	})
	if err != nil {
		return nil, err
	}

	var resp reviewResponse
	if err := ai.DecodeJSON(result.Raw, &resp); err != nil {
		return nil, err
	}
	if len(resp.Fields) == 0 {
		return nil, ai.ErrBadResponse
	}

	out := make(map[string]FieldResult, len(requested))
	for name, original := range requested {
		raw := resp.Fields[name]
		fr := FieldResult{
			Corrected:   strings.TrimSpace(raw.Corrected),
			Suggestions: sanitizeSuggestions(raw.Suggestions),
		}
		if name == FieldTerm {
			s.applyTermMorphology(&fr, raw, original)
		}
		out[name] = fr
	}
	return out, nil
}

// applyTermMorphology resolves the morphology guesses for the term field
// and, for nouns, merges the capitalization correction into the result as a
// suggestion of its own, distinct from any spelling correction.
func (s *Service) applyTermMorphology(fr *FieldResult, raw rawFieldResult, original string) {
	fr.Lemma = strings.TrimSpace(raw.Lemma)
	fr.PartOfSpeech = morphology.NormalizePartOfSpeech(raw.PartOfSpeech)
	fr.Article = morphology.NormalizeArticle(raw.Article)

	if !morphology.IsNoun(fr.PartOfSpeech) {
		return
	}

	base := fr.Corrected
	if base == "" {
		base = original
	}
	capitalized := morphology.CapitalizeFirst(base)
	fr.Corrected = capitalized
	if fr.Lemma != "" {
		fr.Lemma = morphology.CapitalizeFirst(fr.Lemma)
	}
	if capitalized != base {
		fr.Suggestions = append(fr.Suggestions, Suggestion{
			From:   original,
			To:     capitalized,
			Reason: "capitalization (noun)",
		})
	}
}

func sanitizeSuggestions(in []Suggestion) []Suggestion {
	out := make([]Suggestion, 0, len(in))
	for _, s := range in {
		if strings.TrimSpace(s.To) == "" {
			continue
		}
		out = append(out, Suggestion{
			From:   strings.TrimSpace(s.From),
			To:     strings.TrimSpace(s.To),
			Reason: strings.TrimSpace(s.Reason),
		})
	}
	return out
}
