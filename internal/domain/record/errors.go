package record

import "errors"

var ErrRecordNotFound = errors.New("overtime record not found")
