package entry

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/wortkiste/core/internal/modules/morphology"
	"github.com/wortkiste/core/internal/testutil"
)

type purgerSpy struct {
	items []string
}

func (p *purgerSpy) DeleteByItem(item string) error {
	p.items = append(p.items, item)
	return nil
}

func TestListFiltersAndSorts(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	svc := NewService(db, nil)

	rows := sqlmock.NewRows([]string{"id", "term", "definition"}).
		AddRow("a1", "Haus", "Gebäude zum Wohnen").
		AddRow("b2", "Hausarbeit", "Arbeit im Haushalt")
	mock.ExpectQuery("SELECT \\* FROM `entries` WHERE term LIKE \\? OR definition LIKE \\? ORDER BY term ASC").
		WithArgs("%Haus%", "%Haus%").
		WillReturnRows(rows)

	entries, err := svc.List("  Haus ")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, "Haus", entries[0].Term)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsDuplicateTerm(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	svc := NewService(db, nil)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `entries`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	_, err := svc.Create(&entryDTO{Term: "Haus", Definition: "Gebäude"})
	assert.ErrorIs(t, err, ErrDuplicateTerm)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateRejectsBlankFields(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	svc := NewService(db, nil)

	// whitespace-only values pass the required binding but must not persist
	_, err := svc.Create(&entryDTO{Term: "   ", Definition: " \t "})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(&entryDTO{Term: "Haus", Definition: "   "})
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Create(&entryDTO{Term: " ", Definition: "Gebäude"})
	assert.ErrorIs(t, err, ErrMissingFields)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateRejectsBlankFields(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	svc := NewService(db, nil)

	mock.ExpectQuery("SELECT \\* FROM `entries`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "term", "definition"}).
			AddRow("a1", "Haus", "Gebäude"))

	_, err := svc.Update("a1", &entryDTO{Term: "  ", Definition: "Gebäude"})
	assert.ErrorIs(t, err, ErrMissingFields)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateValidatesMorphologyBeforeStorage(t *testing.T) {
	db, _ := testutil.NewGormMock(t)
	svc := NewService(db, nil)

	_, err := svc.Create(&entryDTO{
		Term:         "Haus",
		Definition:   "Gebäude",
		PartOfSpeech: []string{"noun"},
	})
	assert.ErrorIs(t, err, morphology.ErrArticleRequired)

	_, err = svc.Create(&entryDTO{
		Term:         "laufen",
		Definition:   "rennen",
		PartOfSpeech: []string{"verb"},
		Article:      "der",
	})
	assert.ErrorIs(t, err, morphology.ErrArticleNotAllowed)
}

func TestCreateCapitalizesNounTerm(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	svc := NewService(db, nil)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM `entries`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `entries`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	e, err := svc.Create(&entryDTO{
		Term:         "  haus ",
		Definition:   "Gebäude zum Wohnen",
		PartOfSpeech: []string{"NOUN"},
		Article:      "das",
	})
	assert.NoError(t, err)
	assert.Equal(t, "Haus", e.Term)
	assert.Equal(t, "das", e.Article)
	assert.NotEmpty(t, e.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMissingEntry(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	svc := NewService(db, nil)

	mock.ExpectQuery("SELECT \\* FROM `entries`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := svc.Update("nope", &entryDTO{Term: "Haus", Definition: "Gebäude"})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeletePurgesAlternatives(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	purger := &purgerSpy{}
	svc := NewService(db, purger)

	mock.ExpectQuery("SELECT \\* FROM `entries`").
		WillReturnRows(sqlmock.NewRows([]string{"id", "term"}).AddRow("a1", "Haus"))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `entries`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := svc.Delete("a1")
	assert.NoError(t, err)
	assert.Equal(t, []string{"Haus"}, purger.items)
	assert.NoError(t, mock.ExpectationsWereMet())
}
