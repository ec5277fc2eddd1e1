package alternatives

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/wortkiste/core/internal/testutil"
)

func TestFindByItemOrdersByInsertionThenOrdinal(t *testing.T) {
	db, mock := testutil.NewGormMock(t)
	store := NewStore(db)

	rows := sqlmock.NewRows([]string{"id", "item", "situation", "text", "ordinal"}).
		AddRow("a1", "Quatsch", SituationBeimChef, "Das sehe ich etwas anders.", 0).
		AddRow("a2", "Quatsch", SituationBeimChef, "Da bin ich anderer Meinung.", 1)
	mock.ExpectQuery("SELECT \\* FROM `alternatives` WHERE item = \\? ORDER BY created_at ASC, ordinal ASC").
		WithArgs("Quatsch").
		WillReturnRows(rows)

	records, err := store.FindByItem("Quatsch")
	assert.NoError(t, err)
	assert.Len(t, records, 2)
	assert.Equal(t, "Das sehe ich etwas anders.", records[0].Text)
	assert.NoError(t, mock.ExpectationsWereMet())
}
