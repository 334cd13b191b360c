package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/allahdad01/construction-erp-go/internal/domain/attendance"
	"github.com/allahdad01/construction-erp-go/internal/domain/auth"
	"github.com/allahdad01/construction-erp-go/internal/domain/employee"
	"github.com/allahdad01/construction-erp-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordKey struct {
	companyID  string
	employeeID string
	date       string
}

// fakeAttendanceRepo keeps records in a map keyed the same way the unique
// index does.
type fakeAttendanceRepo struct {
	records map[recordKey]attendance.Record
}

func newFakeAttendanceRepo() *fakeAttendanceRepo {
	return &fakeAttendanceRepo{records: make(map[recordKey]attendance.Record)}
}

func (f *fakeAttendanceRepo) key(rec attendance.Record) recordKey {
	return recordKey{rec.CompanyID, rec.EmployeeID, rec.Date.Format("2006-01-02")}
}

func (f *fakeAttendanceRepo) CreateIfAbsent(_ context.Context, rec attendance.Record) (bool, error) {
	k := f.key(rec)
	if _, ok := f.records[k]; ok {
		return false, nil
	}
	f.records[k] = rec
	return true, nil
}

func (f *fakeAttendanceRepo) Upsert(_ context.Context, rec attendance.Record) (attendance.Record, error) {
	rec.ID = "rec-" + rec.Date.Format("20060102")
	f.records[f.key(rec)] = rec
	return rec, nil
}

func (f *fakeAttendanceRepo) ListByEmployee(_ context.Context, companyID, employeeID string, from, to time.Time) ([]attendance.Record, error) {
	var out []attendance.Record
	for _, rec := range f.records {
		if rec.CompanyID == companyID && rec.EmployeeID == employeeID &&
			!rec.Date.Before(from) && !rec.Date.After(to) {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (f *fakeAttendanceRepo) CountByStatus(_ context.Context, companyID, employeeID string, status attendance.Status, from, to time.Time) (int64, error) {
	var n int64
	for _, rec := range f.records {
		if rec.CompanyID == companyID && rec.EmployeeID == employeeID && rec.Status == status &&
			!rec.Date.Before(from) && !rec.Date.After(to) {
			n++
		}
	}
	return n, nil
}

func (f *fakeAttendanceRepo) CountAll(_ context.Context, companyID, employeeID string) (int64, error) {
	var n int64
	for _, rec := range f.records {
		if rec.CompanyID == companyID && rec.EmployeeID == employeeID {
			n++
		}
	}
	return n, nil
}

func (f *fakeAttendanceRepo) CountPresent(_ context.Context, companyID, employeeID string) (int64, error) {
	return f.CountByStatus(context.Background(), companyID, employeeID, attendance.StatusPresent, time.Time{}, time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC))
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{employees: make(map[string]employee.Employee)}
}

func (f *fakeEmployeeRepo) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	emp, ok := f.employees[id]
	if !ok || emp.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return emp, nil
}

func (f *fakeEmployeeRepo) GetByCode(_ context.Context, _, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) GetByUserID(_ context.Context, _ string) (employee.Employee, error) {
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (f *fakeEmployeeRepo) Create(_ context.Context, emp employee.Employee) (employee.Employee, error) {
	f.employees[emp.ID] = emp
	return emp, nil
}

func (f *fakeEmployeeRepo) Update(_ context.Context, _, _ string, _ employee.UpdateEmployeeRequest) error {
	return nil
}

func (f *fakeEmployeeRepo) SetStatus(_ context.Context, _, _ string, _ employee.Status) error {
	return nil
}

func (f *fakeEmployeeRepo) Delete(_ context.Context, _, _ string) error { return nil }

func (f *fakeEmployeeRepo) HasLedgerRows(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

func (f *fakeEmployeeRepo) List(_ context.Context, _ string, _ employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

func adminIdentity(companyID string) auth.Identity {
	return auth.Identity{
		UserID:    "user-admin",
		Role:      user.RoleCompanyAdmin,
		CompanyID: &companyID,
	}
}

func TestBackfillSkipsWeekends(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, newFakeEmployeeRepo())

	// Mon 2024-01-01 through Sun 2024-01-07: five business days.
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	result, err := svc.Backfill(context.Background(), "comp-1", "emp-1", from, to)
	require.NoError(t, err)

	assert.Equal(t, 5, result.Inserted)
	assert.Equal(t, 2, result.Skipped)
	assert.Len(t, repo.records, 5)

	for _, rec := range repo.records {
		assert.Equal(t, attendance.StatusPresent, rec.Status)
		assert.True(t, attendance.IsBusinessDay(rec.Date))
	}
}

func TestBackfillIsIdempotent(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, newFakeEmployeeRepo())

	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	first, err := svc.Backfill(context.Background(), "comp-1", "emp-1", from, to)
	require.NoError(t, err)
	require.Equal(t, 5, first.Inserted)

	second, err := svc.Backfill(context.Background(), "comp-1", "emp-1", from, to)
	require.NoError(t, err)

	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 7, second.Skipped)
	assert.Len(t, repo.records, 5)
}

func TestBackfillDoesNotOverwriteCorrections(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, newFakeEmployeeRepo())

	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC) // Wednesday
	_, err := repo.Upsert(context.Background(), attendance.Record{
		CompanyID: "comp-1", EmployeeID: "emp-1", Date: day, Status: attendance.StatusAbsent,
	})
	require.NoError(t, err)

	_, err = svc.Backfill(context.Background(), "comp-1", "emp-1", day, day)
	require.NoError(t, err)

	rec := repo.records[recordKey{"comp-1", "emp-1", "2024-01-03"}]
	assert.Equal(t, attendance.StatusAbsent, rec.Status)
}

func TestBackfillEmptyRange(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, newFakeEmployeeRepo())

	from := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)
	to := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	result, err := svc.Backfill(context.Background(), "comp-1", "emp-1", from, to)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 0, result.Skipped)
}

func TestMarkOverwritesExistingDate(t *testing.T) {
	repo := newFakeAttendanceRepo()
	empRepo := newFakeEmployeeRepo()
	empRepo.employees["emp-1"] = employee.Employee{
		ID: "emp-1", CompanyID: "comp-1", MonthlySalary: decimal.NewFromInt(300),
	}
	svc := NewAttendanceService(repo, empRepo)

	ident := adminIdentity("comp-1")

	_, err := svc.Mark(context.Background(), ident, attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2024-01-03", Status: "present",
	})
	require.NoError(t, err)

	resp, err := svc.Mark(context.Background(), ident, attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2024-01-03", Status: "leave",
	})
	require.NoError(t, err)

	assert.Equal(t, "leave", resp.Status)
	assert.Len(t, repo.records, 1)
}

func TestMarkRejectsNonAdmin(t *testing.T) {
	svc := NewAttendanceService(newFakeAttendanceRepo(), newFakeEmployeeRepo())

	companyID := "comp-1"
	employeeID := "emp-1"
	ident := auth.Identity{
		UserID: "user-1", Role: user.RoleDriver, CompanyID: &companyID, EmployeeID: &employeeID,
	}

	_, err := svc.Mark(context.Background(), ident, attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2024-01-03", Status: "present",
	})
	assert.ErrorIs(t, err, auth.ErrForbidden)
}

func TestMarkRejectsEmployeeFromAnotherCompany(t *testing.T) {
	empRepo := newFakeEmployeeRepo()
	empRepo.employees["emp-1"] = employee.Employee{ID: "emp-1", CompanyID: "comp-2"}
	svc := NewAttendanceService(newFakeAttendanceRepo(), empRepo)

	_, err := svc.Mark(context.Background(), adminIdentity("comp-1"), attendance.MarkAttendanceRequest{
		EmployeeID: "emp-1", Date: "2024-01-03", Status: "present",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestListForEmployeeSelfAccess(t *testing.T) {
	repo := newFakeAttendanceRepo()
	svc := NewAttendanceService(repo, newFakeEmployeeRepo())

	day := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	_, err := repo.Upsert(context.Background(), attendance.Record{
		CompanyID: "comp-1", EmployeeID: "emp-1", Date: day, Status: attendance.StatusPresent,
	})
	require.NoError(t, err)

	companyID := "comp-1"
	selfID := "emp-1"
	ident := auth.Identity{
		UserID: "user-1", Role: user.RoleAssistant, CompanyID: &companyID, EmployeeID: &selfID,
	}

	records, err := svc.ListForEmployee(context.Background(), ident, "emp-1", day)
	require.NoError(t, err)
	assert.Len(t, records, 1)

	_, err = svc.ListForEmployee(context.Background(), ident, "emp-2", day)
	assert.ErrorIs(t, err, auth.ErrResourceNotFound)
}
