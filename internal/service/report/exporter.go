package report

import (
	"fmt"

	"github.com/hmaq1985-lang/overtime-system/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

// Spreadsheet layout: merged title on row 1, headers on row 3, data
// from row 4, totals directly after the data.
const (
	titleRow  = 1
	headerRow = 3
)

func writeWorkbook(t report.Table) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := t.Sheet
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	if t.RightToLeft {
		rtl := true
		if err := f.SetSheetView(sheet, 0, &excelize.ViewOptions{RightToLeft: &rtl}); err != nil {
			return nil, err
		}
	}

	lastCol, err := excelize.ColumnNumberToName(len(t.Headers))
	if err != nil {
		return nil, err
	}

	// Merged bold centered title across the full column span.
	if err := f.MergeCell(sheet, fmt.Sprintf("A%d", titleRow), fmt.Sprintf("%s%d", lastCol, titleRow)); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", titleRow), t.Title); err != nil {
		return nil, err
	}
	titleStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Size: 14},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(sheet, fmt.Sprintf("A%d", titleRow), fmt.Sprintf("A%d", titleRow), titleStyle); err != nil {
		return nil, err
	}

	headers := make([]interface{}, len(t.Headers))
	for i, h := range t.Headers {
		headers[i] = h
	}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", headerRow), &headers); err != nil {
		return nil, err
	}

	rowNum := headerRow
	for _, row := range t.Rows {
		rowNum++
		multiplier, _ := row.Multiplier.Float64()
		hours, _ := row.Hours.Float64()
		amount, _ := row.Amount.Float64()
		cells := []interface{}{
			row.Sequence,
			row.Date,
			row.StartTime,
			row.EndTime,
			multiplier,
			hours,
			amount,
			row.Notes,
		}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowNum), &cells); err != nil {
			return nil, err
		}
	}

	// Totals row: dashes in the non-numeric columns.
	totalHours, _ := t.TotalHours.Float64()
	totalAmount, _ := t.TotalAmount.Float64()
	totals := []interface{}{"-", "-", "-", "-", "-", totalHours, totalAmount, "-"}
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", rowNum+1), &totals); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
