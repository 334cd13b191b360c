package codes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	assert.Equal(t, "ACME-EMP-001", Format("ACME", ResourceEmployee, 1))
	assert.Equal(t, "ACME-MCH-042", Format("ACME", ResourceMachine, 42))
	assert.Equal(t, "BC01-ARE-999", Format("BC01", ResourceRentalArea, 999))
	// Sequences past three digits widen instead of wrapping.
	assert.Equal(t, "ACME-EMP-1000", Format("ACME", ResourceEmployee, 1000))
}

func TestFormatSequentialCodesNeverRepeat(t *testing.T) {
	seen := map[string]bool{}
	for seq := int64(1); seq <= 2000; seq++ {
		code := Format("ACME", ResourceEmployee, seq)
		assert.False(t, seen[code], code)
		seen[code] = true
	}
}
