package postgresql

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/attendance"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateIfAbsentReportsInsert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	rec := attendance.Record{
		CompanyID: "comp-1", EmployeeID: "emp-1", Date: day, Status: attendance.StatusPresent,
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO employee_attendance`)).
		WithArgs("comp-1", "emp-1", day, attendance.StatusPresent).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	inserted, err := repo.CreateIfAbsent(context.Background(), rec)
	require.NoError(t, err)
	assert.True(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateIfAbsentReportsConflict(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	rec := attendance.Record{
		CompanyID: "comp-1", EmployeeID: "emp-1", Date: day, Status: attendance.StatusPresent,
	}

	// ON CONFLICT DO NOTHING affects zero rows when the date is taken.
	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO employee_attendance`)).
		WithArgs("comp-1", "emp-1", day, attendance.StatusPresent).
		WillReturnResult(pgxmock.NewResult("INSERT", 0))

	inserted, err := repo.CreateIfAbsent(context.Background(), rec)
	require.NoError(t, err)
	assert.False(t, inserted)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountByStatusCarriesCompanyPredicate(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewAttendanceRepository(db)

	from := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE company_id = $1 AND employee_id = $2 AND status = $3`)).
		WithArgs("comp-1", "emp-1", attendance.StatusPresent, from, to).
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(10)))

	count, err := repo.CountByStatus(context.Background(), "comp-1", "emp-1", attendance.StatusPresent, from, to)
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
