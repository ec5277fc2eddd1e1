package alternatives

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/wortkiste/core/internal/models"
	"github.com/wortkiste/core/internal/modules/ai"
	"github.com/wortkiste/core/internal/testutil"
)

const fullResponse = `{
	"beim-chef":["Das sehe ich etwas anders.","Da bin ich anderer Meinung."],
	"schwiegereltern":["Interessanter Gedanke."],
	"nachts-um-drei":["Weißt du, eigentlich ist doch alles egal."],
	"stammtisch":["So ein Quatsch!"],
	"amtsdeutsch":["Dem kann nicht entsprochen werden."]
}`

func TestGenerateStoresNovelAndAggregates(t *testing.T) {
	oracle := new(testutil.MockOracle)
	oracle.On("Complete", mock.Anything, ai.TaskAlternatives, mock.Anything).
		Return(&ai.Result{Raw: fullResponse, Model: "gpt-4o-mini"}, nil)

	store := new(testutil.MockAlternativeStore)
	// snapshot read before insert
	store.On("FindByItem", "Quatsch").Return([]models.AlternativeModel{
		{Item: "Quatsch", Situation: SituationStammtisch, Text: "so ein quatsch!"},
	}, nil).Once()

	store.On("InsertBatch", mock.MatchedBy(func(records []models.AlternativeModel) bool {
		// the stammtisch text already exists case-insensitively
		if len(records) != 5 {
			return false
		}
		for _, r := range records {
			if r.Situation == SituationStammtisch || r.ModelVersion != "gpt-4o-mini" {
				return false
			}
		}
		return true
	})).Return(nil).Once()

	// aggregate read after insert
	store.On("FindByItem", "Quatsch").Return([]models.AlternativeModel{
		{Item: "Quatsch", Situation: SituationStammtisch, Text: "so ein quatsch!"},
		{Item: "Quatsch", Situation: SituationBeimChef, Text: "Das sehe ich etwas anders."},
		{Item: "Quatsch", Situation: SituationBeimChef, Text: "Da bin ich anderer Meinung."},
		{Item: "Quatsch", Situation: SituationSchwiegereltern, Text: "Interessanter Gedanke."},
		{Item: "Quatsch", Situation: SituationNachtsUmDrei, Text: "Weißt du, eigentlich ist doch alles egal."},
		{Item: "Quatsch", Situation: SituationAmtsdeutsch, Text: "Dem kann nicht entsprochen werden."},
	}, nil).Once()

	svc := NewService(oracle, store)
	view, err := svc.Generate(context.Background(), "  Quatsch ")
	assert.NoError(t, err)
	assert.Equal(t, "Quatsch", view.Item)
	assert.Equal(t, []string{"Das sehe ich etwas anders.", "Da bin ich anderer Meinung."}, view.Results[SituationBeimChef])
	assert.Equal(t, []string{"so ein quatsch!"}, view.Results[SituationStammtisch])

	store.AssertExpectations(t)
	oracle.AssertExpectations(t)
}

func TestGenerateAssignsBatchOrdinals(t *testing.T) {
	oracle := new(testutil.MockOracle)
	oracle.On("Complete", mock.Anything, ai.TaskAlternatives, mock.Anything).
		Return(&ai.Result{Raw: fullResponse, Model: "gpt-4o-mini"}, nil)

	store := new(testutil.MockAlternativeStore)
	store.On("FindByItem", "Quatsch").Return([]models.AlternativeModel{}, nil)
	store.On("InsertBatch", mock.MatchedBy(func(records []models.AlternativeModel) bool {
		// rows of one batch share a created_at; the ordinal must keep the
		// generator's friendly-to-blunt order reproducible on read
		for i, r := range records {
			if r.Ordinal != i {
				return false
			}
		}
		return len(records) == 6 &&
			records[0].Text == "Das sehe ich etwas anders." &&
			records[1].Text == "Da bin ich anderer Meinung."
	})).Return(nil)

	svc := NewService(oracle, store)
	_, err := svc.Generate(context.Background(), "Quatsch")
	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestGenerateDedupesWithinBatch(t *testing.T) {
	oracle := new(testutil.MockOracle)
	oracle.On("Complete", mock.Anything, ai.TaskAlternatives, mock.Anything).
		Return(&ai.Result{Raw: `{
			"beim-chef":["Verstanden.","verstanden."],
			"schwiegereltern":["Ach so."],
			"nachts-um-drei":["Tja."],
			"stammtisch":["Na und?"],
			"amtsdeutsch":["Zur Kenntnis genommen."]
		}`}, nil)

	store := new(testutil.MockAlternativeStore)
	store.On("FindByItem", "egal").Return([]models.AlternativeModel{}, nil)
	store.On("InsertBatch", mock.MatchedBy(func(records []models.AlternativeModel) bool {
		count := 0
		for _, r := range records {
			if r.Situation == SituationBeimChef {
				count++
			}
		}
		return count == 1
	})).Return(nil)

	svc := NewService(oracle, store)
	_, err := svc.Generate(context.Background(), "egal")
	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestGenerateFailsOnMissingSituation(t *testing.T) {
	oracle := new(testutil.MockOracle)
	oracle.On("Complete", mock.Anything, ai.TaskAlternatives, mock.Anything).
		Return(&ai.Result{Raw: `{"beim-chef":["Hm."],"schwiegereltern":["Aha."],"nachts-um-drei":["Tja."],"stammtisch":["Na."]}`}, nil)

	store := new(testutil.MockAlternativeStore)
	svc := NewService(oracle, store)

	_, err := svc.Generate(context.Background(), "egal")
	assert.ErrorIs(t, err, ai.ErrBadResponse)
	store.AssertNotCalled(t, "InsertBatch", mock.Anything)
}

func TestGenerateCapsAtThreePerSituation(t *testing.T) {
	oracle := new(testutil.MockOracle)
	oracle.On("Complete", mock.Anything, ai.TaskAlternatives, mock.Anything).
		Return(&ai.Result{Raw: `{
			"beim-chef":["a","b","c","d","e"],
			"schwiegereltern":["x"],
			"nachts-um-drei":["x"],
			"stammtisch":["x"],
			"amtsdeutsch":["x"]
		}`}, nil)

	store := new(testutil.MockAlternativeStore)
	store.On("FindByItem", "egal").Return([]models.AlternativeModel{}, nil)
	store.On("InsertBatch", mock.MatchedBy(func(records []models.AlternativeModel) bool {
		count := 0
		for _, r := range records {
			if r.Situation == SituationBeimChef {
				count++
			}
		}
		return count == 3
	})).Return(nil)

	svc := NewService(oracle, store)
	_, err := svc.Generate(context.Background(), "egal")
	assert.NoError(t, err)
	store.AssertExpectations(t)
}

func TestGenerateRejectsEmptyItem(t *testing.T) {
	svc := NewService(new(testutil.MockOracle), new(testutil.MockAlternativeStore))
	_, err := svc.Generate(context.Background(), "   ")
	assert.ErrorIs(t, err, errEmptyItem)
}

func TestAggregateGroupsAndDedupes(t *testing.T) {
	store := new(testutil.MockAlternativeStore)
	store.On("FindByItem", "Feierabend").Return([]models.AlternativeModel{
		{Situation: SituationBeimChef, Text: "Ich mache jetzt Schluss."},
		{Situation: SituationBeimChef, Text: "ich mache jetzt schluss."},
		{Situation: SituationStammtisch, Text: "Ich bin raus!"},
	}, nil)

	svc := NewService(new(testutil.MockOracle), store)
	view, err := svc.Aggregate("Feierabend")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Ich mache jetzt Schluss."}, view.Results[SituationBeimChef])
	assert.Equal(t, []string{"Ich bin raus!"}, view.Results[SituationStammtisch])
	assert.Empty(t, view.Results[SituationAmtsdeutsch])
	assert.Len(t, view.Results, len(Situations))
}

func TestDeleteAllReturnsEmptyView(t *testing.T) {
	store := new(testutil.MockAlternativeStore)
	store.On("DeleteByItem", "Feierabend").Return(nil)

	svc := NewService(new(testutil.MockOracle), store)
	view, err := svc.DeleteAll("Feierabend")
	assert.NoError(t, err)
	assert.Equal(t, "Feierabend", view.Item)
	for _, situation := range Situations {
		assert.Empty(t, view.Results[situation])
	}
	store.AssertExpectations(t)
}
