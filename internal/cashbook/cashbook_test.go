package cashbook_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
)

func TestCashbook_AddAndFindChit(t *testing.T) {
	cb := cashbook.New(cashbook.NewCashbookID(), cashbook.TypeUnit)
	body := newBody(t, "V01", "Alice")
	items := []cashbook.ChitItem{newItem(t, "100", incomeDues, "dues")}

	chit, err := cb.AddChit(body, items, cashbook.PaymentMethodCash)
	require.NoError(t, err)

	chit.AssignID(1)

	found, err := cb.FindChit(1)
	require.NoError(t, err)

	assert.Same(t, chit, found)
	assert.Equal(t, body, found.Body())
	assert.Equal(t, items, found.Items())
	assert.Equal(t, cashbook.PaymentMethodCash, found.PaymentMethod())
	assert.Equal(t, cashbook.OperationIncome, found.Operation())
	assert.False(t, found.IsLocked())
}

func TestCashbook_ChitNotFound(t *testing.T) {
	cb := persistedCashbook(t, 1)
	body := newBody(t, "", "")
	items := []cashbook.ChitItem{newItem(t, "1", expenseFood, "food")}

	_, err := cb.FindChit(2)
	assert.ErrorIs(t, err, cashbook.ErrChitNotFound)
	assert.ErrorIs(t, cb.UpdateChit(2, body, items, cashbook.PaymentMethodCash), cashbook.ErrChitNotFound)
	assert.ErrorIs(t, cb.RemoveChit(2), cashbook.ErrChitNotFound)
	assert.ErrorIs(t, cb.LockChit(2, 1), cashbook.ErrChitNotFound)
	assert.ErrorIs(t, cb.UnlockChit(2), cashbook.ErrChitNotFound)
}

func TestCashbook_UpdateChit(t *testing.T) {
	cb := persistedCashbook(t, 1)
	body := newBody(t, "V02/1", "Bob")
	items := []cashbook.ChitItem{
		newItem(t, "10", incomeDues, "dues"),
		newItem(t, "20", incomeGrant, "grant"),
	}

	require.NoError(t, cb.UpdateChit(1, body, items, cashbook.PaymentMethodBank))

	chit, err := cb.FindChit(1)
	require.NoError(t, err)

	assert.Equal(t, body, chit.Body())
	assert.Equal(t, items, chit.Items())
	assert.Equal(t, cashbook.PaymentMethodBank, chit.PaymentMethod())
	assert.Equal(t, cashbook.OperationIncome, chit.Operation())
}

func TestCashbook_UpdateChit_FailureKeepsChit(t *testing.T) {
	cb := persistedCashbook(t, 1)
	before, err := cb.FindChit(1)
	require.NoError(t, err)

	wantBody, wantItems := before.Body(), before.Items()

	err = cb.UpdateChit(1, newBody(t, "X1", ""), []cashbook.ChitItem{
		newItem(t, "1", expenseTravel, "a"),
		newItem(t, "2", expenseTravel, "b"),
	}, cashbook.PaymentMethodBank)
	require.ErrorIs(t, err, cashbook.ErrDuplicitCategory)

	after, err := cb.FindChit(1)
	require.NoError(t, err)

	assert.Equal(t, wantBody, after.Body())
	assert.Equal(t, wantItems, after.Items())
	assert.Equal(t, cashbook.PaymentMethodCash, after.PaymentMethod())
}

func TestCashbook_LockedChit(t *testing.T) {
	cb := persistedCashbook(t, 1)
	require.NoError(t, cb.LockChit(1, 7))

	err := cb.UpdateChit(1, newBody(t, "", ""), []cashbook.ChitItem{newItem(t, "1", expenseFood, "x")}, cashbook.PaymentMethodCash)
	assert.ErrorIs(t, err, cashbook.ErrChitLocked)

	assert.ErrorIs(t, cb.RemoveChit(1), cashbook.ErrChitLocked)
	assert.Len(t, cb.Chits(), 1)
	assert.Empty(t, cb.RemovedChits())
}

func TestCashbook_LockIsIdempotent(t *testing.T) {
	cb := persistedCashbook(t, 1)

	require.NoError(t, cb.LockChit(1, 7))
	require.NoError(t, cb.LockChit(1, 7))
	require.NoError(t, cb.LockChit(1, 8))

	chit, err := cb.FindChit(1)
	require.NoError(t, err)

	holder, locked := chit.Lock().Holder()
	assert.True(t, locked)
	assert.Equal(t, cashbook.UserID(8), holder)

	require.NoError(t, cb.UnlockChit(1))
	require.NoError(t, cb.UnlockChit(1))

	assert.False(t, chit.IsLocked())
	assert.Equal(t, cashbook.Unlocked(), chit.Lock())
}

func TestCashbook_RemoveChit(t *testing.T) {
	cb := persistedCashbook(t, 1, 2)

	require.NoError(t, cb.RemoveChit(1))

	_, err := cb.FindChit(1)
	assert.ErrorIs(t, err, cashbook.ErrChitNotFound)
	assert.Len(t, cb.Chits(), 1)
	assert.Equal(t, []cashbook.ChitID{1}, cb.RemovedChits())

	cb.MarkPersisted(2)
	assert.Empty(t, cb.RemovedChits())
	assert.Equal(t, 2, cb.Version())
}

func TestCashbook_BalanceAndTotals(t *testing.T) {
	cb := cashbook.New(cashbook.NewCashbookID(), cashbook.TypeCamp)

	_, err := cb.AddChit(newBody(t, "", ""), []cashbook.ChitItem{newItem(t, "100", incomeDues, "dues")}, cashbook.PaymentMethodCash)
	require.NoError(t, err)

	_, err = cb.AddChit(newBody(t, "", ""), []cashbook.ChitItem{
		newItem(t, "30", expenseFood, "food"),
		newItem(t, "90.5", expenseTravel, "bus"),
	}, cashbook.PaymentMethodCash)
	require.NoError(t, err)

	assert.Equal(t, "-20.50", cb.Balance().StringFixed(2))

	totals := cb.CategoryTotals()
	assert.Equal(t, "100.00", totals[incomeDues.ID].StringFixed(2))
	assert.Equal(t, "30.00", totals[expenseFood.ID].StringFixed(2))
	assert.Equal(t, "90.50", totals[expenseTravel.ID].StringFixed(2))
}

func TestMoveChits_RemapsMissingCategory(t *testing.T) {
	source := persistedCashbook(t, 5)
	target := cashbook.New(cashbook.NewCashbookID(), cashbook.TypeCamp)

	copies, err := cashbook.MoveChits(source, target, []cashbook.ChitID{5}, cashbook.NewCategorySet(expenseTravel))
	require.NoError(t, err)
	require.Len(t, copies, 1)

	_, err = source.FindChit(5)
	assert.ErrorIs(t, err, cashbook.ErrChitNotFound)
	assert.Equal(t, []cashbook.ChitID{5}, source.RemovedChits())

	moved := target.Chits()
	require.Len(t, moved, 1)

	items := moved[0].Items()
	require.Len(t, items, 1)
	assert.Equal(t, cashbook.UndefinedCategory(cashbook.OperationExpense), items[0].Category)
	assert.Equal(t, "100.00", items[0].Amount.String())
}

func TestMoveChits_KeepsKnownCategory(t *testing.T) {
	source := persistedCashbook(t, 5, 6)
	target := cashbook.New(cashbook.NewCashbookID(), cashbook.TypeEvent)

	_, err := cashbook.MoveChits(source, target, []cashbook.ChitID{6, 5}, cashbook.NewCategorySet(expenseFood))
	require.NoError(t, err)

	assert.Empty(t, source.Chits())
	require.Len(t, target.Chits(), 2)

	for _, chit := range target.Chits() {
		assert.Equal(t, expenseFood, chit.Items()[0].Category)
		assert.Equal(t, cashbook.ChitID(0), chit.ID())
	}
}

func TestMoveChits_BatchIsAtomic(t *testing.T) {
	type testCase struct {
		name    string
		setup   func(t *testing.T, source *cashbook.Cashbook)
		ids     []cashbook.ChitID
		wantErr error
	}

	tests := []testCase{
		{
			name:    "UnknownChit",
			ids:     []cashbook.ChitID{5, 999},
			wantErr: cashbook.ErrChitNotFound,
		},
		{
			name: "LockedChit",
			setup: func(t *testing.T, source *cashbook.Cashbook) {
				require.NoError(t, source.LockChit(6, 1))
			},
			ids:     []cashbook.ChitID{5, 6},
			wantErr: cashbook.ErrChitLocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source := persistedCashbook(t, 5, 6)
			target := cashbook.New(cashbook.NewCashbookID(), cashbook.TypeEvent)

			if tt.setup != nil {
				tt.setup(t, source)
			}

			_, err := cashbook.MoveChits(source, target, tt.ids, cashbook.NewCategorySet(expenseFood))
			require.ErrorIs(t, err, tt.wantErr)

			_, err = source.FindChit(5)
			assert.NoError(t, err)
			assert.Len(t, source.Chits(), 2)
			assert.Empty(t, source.RemovedChits())
			assert.Empty(t, target.Chits())
		})
	}
}

func TestMoveChits_SameCashbook(t *testing.T) {
	cb := persistedCashbook(t, 5)

	_, err := cashbook.MoveChits(cb, cb, []cashbook.ChitID{5}, cashbook.NewCategorySet(expenseFood))
	assert.ErrorIs(t, err, cashbook.ErrInvalidArgument)
}
