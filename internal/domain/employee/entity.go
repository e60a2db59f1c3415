package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

type Employee struct {
	ID        int64
	Name      string
	JobTitle  string
	Salary    decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}
