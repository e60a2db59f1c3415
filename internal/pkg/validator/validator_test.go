package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("عادل حسام"))
	assert.False(t, IsEmpty(" x "))
}

func TestIsValidDate(t *testing.T) {
	_, ok := IsValidDate("2025-01-31")
	assert.True(t, ok)

	_, ok = IsValidDate("2025-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("31/01/2025")
	assert.False(t, ok)
}

func TestIsValidClockTime(t *testing.T) {
	valid := []string{"00:00", "09:30", "9:30", "23:59", "12:05"}
	for _, s := range valid {
		assert.True(t, IsValidClockTime(s), "expected %q to be valid", s)
	}

	invalid := []string{"", "24:00", "12:60", "bad", "12", "12:5", "1200"}
	for _, s := range invalid {
		assert.False(t, IsValidClockTime(s), "expected %q to be invalid", s)
	}
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "is required"},
		{Field: "salary", Message: "must be non-negative"},
	}

	assert.Equal(t, "name: is required; salary: must be non-negative", errs.Error())
	assert.Equal(t, map[string]string{
		"name":   "is required",
		"salary": "must be non-negative",
	}, errs.ToMap())
}
