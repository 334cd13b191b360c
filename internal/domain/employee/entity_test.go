package employee

import (
	"testing"

	"github.com/allahdad01/construction-erp-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
)

func TestRoleForPosition(t *testing.T) {
	role, ok := RoleForPosition(PositionDriver)
	assert.True(t, ok)
	assert.Equal(t, user.RoleDriver, role)

	for _, p := range []Position{PositionOperator, PositionLaborer, PositionForeman, PositionEngineer} {
		role, ok := RoleForPosition(p)
		assert.True(t, ok, string(p))
		assert.Equal(t, user.RoleAssistant, role, string(p))
	}

	_, ok = RoleForPosition(Position("janitor"))
	assert.False(t, ok)
}

func TestSplitFullName(t *testing.T) {
	first, last := SplitFullName("Ali Rahimi")
	assert.Equal(t, "Ali", first)
	assert.Equal(t, "Rahimi", last)

	first, last = SplitFullName("Ahmad Shah Durrani")
	assert.Equal(t, "Ahmad", first)
	assert.Equal(t, "Shah Durrani", last)

	first, last = SplitFullName("Madonna")
	assert.Equal(t, "Madonna", first)
	assert.Equal(t, "", last)
}

func TestCreateEmployeeRequestValidate(t *testing.T) {
	req := CreateEmployeeRequest{
		FullName:      "Ali Rahimi",
		Position:      "driver",
		MonthlySalary: "9000",
		Currency:      "afn",
		Email:         "ali@example.com",
		HireDate:      "2024-01-01",
	}
	assert.NoError(t, req.Validate())
	assert.Equal(t, "AFN", req.Currency)
	assert.Equal(t, "9000", req.Salary().String())
	assert.Equal(t, 2024, req.ParsedHireDate().Year())

	bad := CreateEmployeeRequest{
		FullName:      " ",
		Position:      "janitor",
		MonthlySalary: "-5",
		Currency:      "afghanis",
		Email:         "not-an-email",
	}
	err := bad.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "full_name")
	assert.Contains(t, err.Error(), "position")
	assert.Contains(t, err.Error(), "monthly_salary")
	assert.Contains(t, err.Error(), "email")
}
