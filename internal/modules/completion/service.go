package completion

import (
	"context"
	"strings"

	"github.com/wortkiste/core/internal/modules/ai"
	"github.com/wortkiste/core/internal/modules/morphology"
)

// Oracle is the slice of the AI adapter the completion engine needs.
type Oracle interface {
	Complete(ctx context.Context, task ai.Task, req ai.Request) (*ai.Result, error)
}

type Service struct {
	oracle Oracle
}

func NewService(oracle Oracle) *Service {
	return &Service{oracle: oracle}
}

// Complete asks the oracle to fill in the entry's missing fields. When
// focused names a field, only that field's text reaches the oracle and
// every other field is treated as up for proposal. On any oracle failure
// the input fields come back unchanged alongside the error.
func (s *Service) Complete(ctx context.Context, in Fields, focused string) (Fields, error) {
	in.Term = strings.TrimSpace(in.Term)
	in.Definition = strings.TrimSpace(in.Definition)
	in.Example = strings.TrimSpace(in.Example)
	in.Synonyms = strings.TrimSpace(in.Synonyms)
	in.PartOfSpeech = morphology.NormalizePartOfSpeech(in.PartOfSpeech)
	in.Article = morphology.NormalizeArticle(in.Article)

	if in.empty() {
		return in, errNoInput
	}

	result, err := s.oracle.Complete(ctx, ai.TaskCompletion, ai.Request{
		SystemPrompt: completionSystemPrompt,
		Prompt:       buildCompletionPrompt(in, focused),
		Temperature:  0.4,
	})
	if err != nil {
		return in, err
	}

	var raw rawCompletion
	if err := ai.DecodeJSON(result.Raw, &raw); err != nil {
		return in, err
	}

	return merge(in, raw), nil
}

// merge overlays the oracle's proposal onto the input. Content fields fall
// back to the input when the oracle omitted them; morphology only fills
// values the caller had not resolved yet.
func merge(in Fields, raw rawCompletion) Fields {
	out := in
	if v := strings.TrimSpace(raw.Term); v != "" {
		out.Term = v
	}
	if v := strings.TrimSpace(raw.Definition); v != "" {
		out.Definition = v
	}
	if v := strings.TrimSpace(raw.Example); v != "" {
		out.Example = v
	}
	if v := strings.TrimSpace(raw.Synonyms); v != "" {
		out.Synonyms = v
	}

	if len(out.PartOfSpeech) == 0 {
		out.PartOfSpeech = morphology.NormalizePartOfSpeech(raw.PartOfSpeech)
	}
	if out.Article == "" {
		out.Article = morphology.NormalizeArticle(raw.Article)
	}

	if morphology.IsNoun(out.PartOfSpeech) && out.Term != "" {
		out.Term = morphology.CapitalizeFirst(out.Term)
	}
	return out
}
