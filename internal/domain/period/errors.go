package period

import "errors"

var (
	ErrPeriodNotFound   = errors.New("period not found")
	ErrPeriodNameExists = errors.New("period name already exists")
	ErrNoOpenPeriod     = errors.New("no open period")
)
