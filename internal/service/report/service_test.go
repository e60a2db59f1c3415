package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/hmaq1985-lang/overtime-system/internal/domain/record"
	"github.com/hmaq1985-lang/overtime-system/internal/domain/report"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleRecords(t *testing.T) []record.OvertimeRecord {
	t.Helper()
	day := func(d string) time.Time {
		parsed, err := time.Parse("2006-01-02", d)
		require.NoError(t, err)
		return parsed
	}

	return []record.OvertimeRecord{
		{
			ID:         11,
			Date:       day("2025-03-01"),
			StartTime:  "17:00",
			EndTime:    "20:00",
			Multiplier: decimal.RequireFromString("1.5"),
			Hours:      decimal.RequireFromString("3"),
			Amount:     decimal.RequireFromString("4.125"),
			Notes:      "صيانة",
		},
		{
			ID:         12,
			Date:       day("2025-03-02"),
			StartTime:  "22:00",
			EndTime:    "06:00",
			Multiplier: decimal.RequireFromString("2"),
			Hours:      decimal.RequireFromString("8"),
			Amount:     decimal.RequireFromString("14.672"),
			Notes:      "",
		},
	}
}

func TestBuildTable(t *testing.T) {
	table := BuildTable("عادل حسام", sampleRecords(t))

	assert.Equal(t, report.TitlePrefix+"عادل حسام", table.Title)
	assert.Equal(t, report.SheetName, table.Sheet)
	assert.Equal(t, report.Headers, table.Headers)
	assert.True(t, table.RightToLeft)

	require.Len(t, table.Rows, 2)
	assert.Equal(t, 1, table.Rows[0].Sequence)
	assert.Equal(t, 2, table.Rows[1].Sequence)
	assert.Equal(t, "2025-03-01", table.Rows[0].Date)
	assert.Equal(t, "20:00", table.Rows[0].EndTime)

	assert.Equal(t, "11.000", table.TotalHours.StringFixed(3))
	assert.Equal(t, "18.797", table.TotalAmount.StringFixed(3))
}

func TestBuildTable_Empty(t *testing.T) {
	table := BuildTable("محمد", nil)

	assert.Empty(t, table.Rows)
	assert.True(t, table.TotalHours.IsZero())
	assert.True(t, table.TotalAmount.IsZero())
}

func TestWriteWorkbook(t *testing.T) {
	table := BuildTable("عادل حسام", sampleRecords(t))

	data, err := writeWorkbook(table)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	require.Contains(t, f.GetSheetList(), report.SheetName)

	title, err := f.GetCellValue(report.SheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, table.Title, title)

	// Header row sits below the merged title.
	firstHeader, err := f.GetCellValue(report.SheetName, "A3")
	require.NoError(t, err)
	assert.Equal(t, report.Headers[0], firstHeader)

	// Totals row follows the two data rows: dashes in text columns,
	// sums in the numeric ones.
	dash, err := f.GetCellValue(report.SheetName, "A6")
	require.NoError(t, err)
	assert.Equal(t, "-", dash)

	totalHours, err := f.GetCellValue(report.SheetName, "F6")
	require.NoError(t, err)
	assert.Equal(t, "11", totalHours)
}
