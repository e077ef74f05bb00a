package cashbook_test

import (
	"time"

	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
)

var (
	incomeDues    = cashbook.Category{ID: 1, Operation: cashbook.OperationIncome}
	incomeGrant   = cashbook.Category{ID: 2, Operation: cashbook.OperationIncome}
	expenseFood   = cashbook.Category{ID: 9, Operation: cashbook.OperationExpense}
	expenseTravel = cashbook.Category{ID: 10, Operation: cashbook.OperationExpense}
	transfer      = cashbook.Category{ID: 30, Operation: cashbook.OperationExpense, SingleItemOnly: true}

	chitDate = time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
)

// testingT is satisfied by both *testing.T and *rapid.T.
type testingT interface {
	require.TestingT
	Helper()
}

func newItem(t testingT, amount string, category cashbook.Category, purpose string) cashbook.ChitItem {
	t.Helper()

	a, err := cashbook.NewAmount(amount)
	require.NoError(t, err)

	item, err := cashbook.NewChitItem(a, category, purpose)
	require.NoError(t, err)

	return item
}

func newBody(t testingT, number, recipient string) cashbook.ChitBody {
	t.Helper()

	var (
		n *cashbook.ChitNumber
		r *cashbook.Recipient
	)

	if number != "" {
		v, err := cashbook.NewChitNumber(number)
		require.NoError(t, err)

		n = &v
	}

	if recipient != "" {
		v, err := cashbook.NewRecipient(recipient)
		require.NoError(t, err)

		r = &v
	}

	return cashbook.NewChitBody(n, chitDate, r)
}

// persistedCashbook returns a cashbook holding one saved expense chit with
// the given id per entry in ids.
func persistedCashbook(t testingT, ids ...cashbook.ChitID) *cashbook.Cashbook {
	t.Helper()

	chits := make([]*cashbook.Chit, len(ids))
	for i, id := range ids {
		chits[i] = cashbook.RestoreChit(
			id,
			newBody(t, "V01", "Shop"),
			[]cashbook.ChitItem{newItem(t, "100", expenseFood, "food")},
			cashbook.PaymentMethodCash,
			cashbook.Unlocked(),
		)
	}

	return cashbook.Restore(cashbook.NewCashbookID(), cashbook.TypeEvent, 1, chits)
}
