package interfaces

import "errors"

// Conditional-write failures reported by every repository implementation.
var (
	ErrHoldClaimed       = errors.New("hold no longer present")
	ErrTransactionExists = errors.New("transaction id already recorded")
	ErrBillStateConflict = errors.New("bill status changed concurrently")
)
