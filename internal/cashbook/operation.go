package cashbook

import "fmt"

// Operation is the direction of money on a chit.
type Operation string

const (
	OperationIncome  Operation = "income"
	OperationExpense Operation = "expense"
)

func ParseOperation(s string) (Operation, error) {
	op := Operation(s)
	if !op.Valid() {
		return "", fmt.Errorf("%w: unknown operation %q", ErrInvalidArgument, s)
	}

	return op, nil
}

func (o Operation) Valid() bool {
	switch o {
	case OperationIncome, OperationExpense:
		return true
	}

	return false
}

// UndefinedCategoryID returns the sentinel category used for items whose
// category does not exist in a cashbook's catalog.
func (o Operation) UndefinedCategoryID() int {
	switch o {
	case OperationIncome:
		return UndefinedIncomeCategoryID
	case OperationExpense:
		return UndefinedExpenseCategoryID
	}

	panic(fmt.Sprintf("cashbook: unknown operation %q", string(o)))
}

// PaymentMethod is how a chit was settled.
type PaymentMethod string

const (
	PaymentMethodCash PaymentMethod = "cash"
	PaymentMethodBank PaymentMethod = "bank"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	m := PaymentMethod(s)
	if !m.Valid() {
		return "", fmt.Errorf("%w: unknown payment method %q", ErrInvalidArgument, s)
	}

	return m, nil
}

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodBank:
		return true
	}

	return false
}
