package cashbook

import "errors"

var (
	ErrCashbookNotFound      = errors.New("cashbook not found")
	ErrChitNotFound          = errors.New("chit not found")
	ErrChitLocked            = errors.New("chit is locked")
	ErrDuplicitCategory      = errors.New("category is used by more than one item")
	ErrSingleItemRestriction = errors.New("category allows only a single item per chit")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidChitNumber     = errors.New("invalid chit number")
	ErrInvalidArgument       = errors.New("invalid argument")

	// ErrAmountMustBeGreaterThanZero is returned when the external category
	// ledger rejects a total that passed local validation.
	ErrAmountMustBeGreaterThanZero = errors.New("amount must be greater than zero")
	ErrExternalUnavailable         = errors.New("external system unavailable")

	ErrConcurrencyConflict = errors.New("concurrency conflict: cashbook was modified")
	ErrForbidden           = errors.New("not allowed to edit cashbook")
	ErrPartialMove         = errors.New("move partially persisted")
)
