package auth

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_Verify(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	s := NewPostgresStore(sqlDB)
	const q = `SELECT id, username, password FROM users WHERE username = \$1`
	cols := []string{"id", "username", "password"}

	mock.ExpectQuery(q).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(1), "alice", "123"))
	u, err := s.Verify(context.Background(), "alice", "123")
	require.NoError(t, err)
	assert.Equal(t, User{ID: 1, Username: "alice", Password: "123"}, u)

	mock.ExpectQuery(q).WithArgs("alice").
		WillReturnRows(sqlmock.NewRows(cols).AddRow(int64(1), "alice", "123"))
	_, err = s.Verify(context.Background(), "alice", "bad")
	assert.ErrorIs(t, err, ErrWrongPassword)

	mock.ExpectQuery(q).WithArgs("ghost").WillReturnRows(sqlmock.NewRows(cols))
	_, err = s.Verify(context.Background(), "ghost", "123")
	assert.ErrorIs(t, err, ErrUserNotFound)

	require.NoError(t, mock.ExpectationsWereMet())
}
