package auth

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/wortkiste/core/internal/testutil"
	"golang.org/x/crypto/bcrypt"
)

func newTestService(t *testing.T, password string) (*Service, sqlmock.Sqlmock) {
	db, mock := testutil.NewGormMock(t)
	svc := NewService(db, password)
	svc.failDelay = 0
	return svc, mock
}

func TestLoginIssuesSession(t *testing.T) {
	svc, mock := newTestService(t, "geheim")

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `user_sessions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	token, err := svc.Login("geheim", "127.0.0.1", "test-agent")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newTestService(t, "geheim")

	_, err := svc.Login("falsch", "127.0.0.1", "test-agent")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLoginRejectsWhenNoPasswordConfigured(t *testing.T) {
	svc, _ := newTestService(t, "")

	_, err := svc.Login("", "127.0.0.1", "test-agent")
	assert.ErrorIs(t, err, ErrWrongPassword)
}

func TestLoginBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("geheim"), bcrypt.MinCost)
	assert.NoError(t, err)

	svc, mock := newTestService(t, string(hash))

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `user_sessions`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	token, err := svc.Login("geheim", "127.0.0.1", "test-agent")
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	_, err = svc.Login("falsch", "127.0.0.1", "test-agent")
	assert.ErrorIs(t, err, ErrWrongPassword)
}
