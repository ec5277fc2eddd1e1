package alternatives

import (
	"context"
	"fmt"
	"strings"

	"github.com/wortkiste/core/internal/models"
	"github.com/wortkiste/core/internal/modules/ai"
)

// Oracle is the slice of the AI adapter the alternatives engine needs.
type Oracle interface {
	Complete(ctx context.Context, task ai.Task, req ai.Request) (*ai.Result, error)
}

type Service struct {
	oracle Oracle
	store  Store
}

func NewService(oracle Oracle, store Store) *Service {
	return &Service{oracle: oracle, store: store}
}

// Generate asks the oracle for fresh alternatives, stores whatever is
// novel, and returns the full historical aggregate for the item. Two
// concurrent calls for the same item can both decide a text is novel;
// the aggregate read re-deduplicates, so that race is accepted.
func (s *Service) Generate(ctx context.Context, item string) (*View, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return nil, errEmptyItem
	}

	result, err := s.oracle.Complete(ctx, ai.TaskAlternatives, ai.Request{
		SystemPrompt: alternativesSystemPrompt,
		Prompt:       buildAlternativesPrompt(item),
		Temperature:  0.8,
	})
	if err != nil {
		return nil, err
	}

	var raw map[string]any
	if err := ai.DecodeJSON(result.Raw, &raw); err != nil {
		return nil, err
	}

	generated := make(map[string][]string, len(Situations))
	for _, situation := range Situations {
		texts := coerceTexts(raw[situation])
		if len(texts) == 0 {
			return nil, fmt.Errorf("%w: situation %q missing from response", ai.ErrBadResponse, situation)
		}
		generated[situation] = texts
	}

	existing, err := s.store.FindByItem(item)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]map[string]struct{}, len(Situations))
	for _, situation := range Situations {
		seen[situation] = make(map[string]struct{})
	}
	for _, rec := range existing {
		if set, ok := seen[rec.Situation]; ok {
			set[strings.ToLower(rec.Text)] = struct{}{}
		}
	}

	var novel []models.AlternativeModel
	for _, situation := range Situations {
		for _, text := range generated[situation] {
			key := strings.ToLower(text)
			if _, dup := seen[situation][key]; dup {
				continue
			}
			seen[situation][key] = struct{}{}
			novel = append(novel, models.AlternativeModel{
				Item:         item,
				Situation:    situation,
				Text:         text,
				ModelVersion: result.Model,
				Ordinal:      len(novel),
			})
		}
	}

	if err := s.store.InsertBatch(novel); err != nil {
		return nil, err
	}
	return s.Aggregate(item)
}

// Aggregate returns every stored alternative for the item, grouped by
// situation in insertion order, de-duplicated case-insensitively.
func (s *Service) Aggregate(item string) (*View, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return nil, errEmptyItem
	}

	records, err := s.store.FindByItem(item)
	if err != nil {
		return nil, err
	}

	view := emptyView(item)
	seen := make(map[string]map[string]struct{}, len(Situations))
	for _, situation := range Situations {
		seen[situation] = make(map[string]struct{})
	}
	for _, rec := range records {
		set, ok := seen[rec.Situation]
		if !ok {
			continue
		}
		key := strings.ToLower(rec.Text)
		if _, dup := set[key]; dup {
			continue
		}
		set[key] = struct{}{}
		view.Results[rec.Situation] = append(view.Results[rec.Situation], rec.Text)
	}
	return view, nil
}

// DeleteAll removes every stored alternative for the item and returns the
// now-empty aggregate.
func (s *Service) DeleteAll(item string) (*View, error) {
	item = strings.TrimSpace(item)
	if item == "" {
		return nil, errEmptyItem
	}
	if err := s.store.DeleteByItem(item); err != nil {
		return nil, err
	}
	return emptyView(item), nil
}

// Summary reports how many alternatives are stored per item.
func (s *Service) Summary() (map[string]int64, error) {
	return s.store.CountByItem()
}

func emptyView(item string) *View {
	view := &View{Item: item, Results: make(map[string][]string, len(Situations))}
	for _, situation := range Situations {
		view.Results[situation] = []string{}
	}
	return view
}

// coerceTexts accepts a JSON list or a bare string and returns up to
// maxPerSituation trimmed non-empty entries.
func coerceTexts(v any) []string {
	var texts []string
	switch val := v.(type) {
	case []any:
		for _, item := range val {
			if s, ok := item.(string); ok {
				texts = append(texts, s)
			}
		}
	case string:
		texts = []string{val}
	}

	out := make([]string, 0, maxPerSituation)
	for _, t := range texts {
		if trimmed := strings.TrimSpace(t); trimmed != "" {
			out = append(out, trimmed)
		}
		if len(out) == maxPerSituation {
			break
		}
	}
	return out
}
