package report

import "github.com/shopspring/decimal"

// The export audience reads Arabic, so every user-visible label is
// Arabic and sheets are rendered right-to-left.
const (
	SheetName   = "الساعات الإضافية"
	TitlePrefix = "الساعات الإضافية للموظف: "
)

// Headers is the fixed column order of the export:
// sequence, date, start, end, multiplier, hours, amount, notes.
var Headers = [8]string{
	"التسلسل",
	"التاريخ",
	"من",
	"إلى",
	"مضاعف",
	"الساعات",
	"الساعات الإضافية",
	"الملاحظات",
}

// Row is one ledger entry shaped for export. Sequence is 1-based.
type Row struct {
	Sequence   int             `json:"sequence"`
	Date       string          `json:"date"`
	StartTime  string          `json:"start_time"`
	EndTime    string          `json:"end_time"`
	Multiplier decimal.Decimal `json:"multiplier"`
	Hours      decimal.Decimal `json:"hours"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes"`
}

// Table is the export shape: title header, fixed columns, data rows
// and a trailing totals row (dashes in the non-numeric columns).
type Table struct {
	Title       string          `json:"title"`
	Sheet       string          `json:"sheet"`
	Headers     [8]string       `json:"headers"`
	Rows        []Row           `json:"rows"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	TotalAmount decimal.Decimal `json:"total_amount"`
	RightToLeft bool            `json:"right_to_left"`
}

// SummaryResponse feeds the records view for one employee/period pair.
type SummaryResponse struct {
	EmployeeID  int64           `json:"employee_id"`
	Employee    string          `json:"employee"`
	Salary      decimal.Decimal `json:"salary"`
	HourlyWage  decimal.Decimal `json:"hourly_wage"`
	Rows        []Row           `json:"records"`
	TotalHours  decimal.Decimal `json:"total_hours"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}
