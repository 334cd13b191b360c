package postgresql

import (
	"context"
	"regexp"
	"testing"

	"github.com/allahdad01/construction-erp-go/internal/pkg/database"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockDB(t *testing.T) (*database.DB, pgxmock.PgxPoolIface) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return database.NewWithConn(mock), mock
}

func TestCounterNextIsSingleStatement(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCounterRepository(db)

	// The increment must be one upsert, not a read followed by a write.
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO resource_counters`)).
		WithArgs("comp-1", "employee").
		WillReturnRows(pgxmock.NewRows([]string{"last_value"}).AddRow(int64(42)))

	next, err := repo.Next(context.Background(), "comp-1", "employee")
	require.NoError(t, err)

	assert.Equal(t, int64(42), next)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCounterNextScopesByResourceType(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCounterRepository(db)

	// Employee and machine sequences for the same company advance
	// independently.
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO resource_counters`)).
		WithArgs("comp-1", "employee").
		WillReturnRows(pgxmock.NewRows([]string{"last_value"}).AddRow(int64(5)))
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO resource_counters`)).
		WithArgs("comp-1", "machine").
		WillReturnRows(pgxmock.NewRows([]string{"last_value"}).AddRow(int64(1)))

	empSeq, err := repo.Next(context.Background(), "comp-1", "employee")
	require.NoError(t, err)
	machSeq, err := repo.Next(context.Background(), "comp-1", "machine")
	require.NoError(t, err)

	assert.Equal(t, int64(5), empSeq)
	assert.Equal(t, int64(1), machSeq)
	assert.NoError(t, mock.ExpectationsWereMet())
}
