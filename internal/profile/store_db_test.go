package profile

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostgresStore_Get(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	s := NewPostgresStore(sqlDB)
	const q = `SELECT user_id, full_name, address, phone, email FROM profiles WHERE user_id = \$1`
	cols := []string{"user_id", "full_name", "address", "phone", "email"}

	want := SeedProfiles()[1]
	mock.ExpectQuery(q).WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(want.UserID, want.FullName, want.Address, want.Phone, want.Email))

	got, found, err := s.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, want, got)

	mock.ExpectQuery(q).WithArgs(int64(999)).WillReturnRows(sqlmock.NewRows(cols))
	_, found, err = s.Get(context.Background(), 999)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, mock.ExpectationsWereMet())
}
