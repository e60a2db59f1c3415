package record

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateRecordRequest_ValidateParsesDate(t *testing.T) {
	req := CreateRecordRequest{
		EmployeeID: 1,
		Date:       "2026-08-29",
		StartTime:  "17:00",
		EndTime:    "19:00",
		Multiplier: decimal.NewFromInt(1),
	}

	require.NoError(t, req.Validate())
	assert.Equal(t, "2026-08-29", req.Day().Format("2006-01-02"))
}

func TestCreateRecordRequest_Validate_BadDate(t *testing.T) {
	req := CreateRecordRequest{
		EmployeeID: 1,
		Date:       "29/08/2026",
		StartTime:  "17:00",
		EndTime:    "19:00",
		Multiplier: decimal.NewFromInt(1),
	}

	require.Error(t, req.Validate())
	assert.True(t, req.Day().IsZero())
}
