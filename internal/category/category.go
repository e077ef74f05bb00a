package category

import (
	"errors"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
)

var ErrNotFound = errors.New("category not found")

// Category is a catalog entry. Chit items only carry the ledger relevant
// part of it, see Ledger.
type Category struct {
	ID             int
	Name           string
	ShortName      string
	Operation      cashbook.Operation
	SingleItemOnly bool
	Priority       int
}

func (c Category) Ledger() cashbook.Category {
	return cashbook.Category{
		ID:             c.ID,
		Operation:      c.Operation,
		SingleItemOnly: c.SingleItemOnly,
	}
}

// Defaults is the catalog used without a database. It mirrors the seed
// data of the categories table.
func Defaults(t cashbook.Type) []Category {
	all := []struct {
		Category
		only cashbook.Type
	}{
		{Category: Category{ID: 1, Name: "Participant fees", ShortName: "pp", Operation: cashbook.OperationIncome, SingleItemOnly: true, Priority: 100}},
		{Category: Category{ID: 2, Name: "Grants", ShortName: "d", Operation: cashbook.OperationIncome, Priority: 90}},
		{Category: Category{ID: 3, Name: "Donations", ShortName: "dar", Operation: cashbook.OperationIncome, Priority: 80}},
		{Category: Category{ID: cashbook.UndefinedExpenseCategoryID, Name: "Undefined expense", ShortName: "un", Operation: cashbook.OperationExpense}},
		{Category: Category{ID: 9, Name: "Food", ShortName: "t", Operation: cashbook.OperationExpense, Priority: 100}},
		{Category: Category{ID: 10, Name: "Travel", ShortName: "c", Operation: cashbook.OperationExpense, Priority: 90}},
		{Category: Category{ID: 11, Name: "Material", ShortName: "m", Operation: cashbook.OperationExpense, Priority: 80}},
		{Category: Category{ID: cashbook.UndefinedIncomeCategoryID, Name: "Undefined income", ShortName: "un", Operation: cashbook.OperationIncome}},
		{Category: Category{ID: 13, Name: "Rent", ShortName: "n", Operation: cashbook.OperationExpense, Priority: 70}, only: cashbook.TypeCamp},
		{Category: Category{ID: 14, Name: "Services", ShortName: "s", Operation: cashbook.OperationExpense, Priority: 60}},
		{Category: Category{ID: 15, Name: "Membership dues", ShortName: "pr", Operation: cashbook.OperationIncome, Priority: 70}, only: cashbook.TypeUnit},
		{Category: Category{ID: 30, Name: "Transfer to unit", ShortName: "tr", Operation: cashbook.OperationExpense, SingleItemOnly: true, Priority: 10}, only: cashbook.TypeEvent},
		{Category: Category{ID: 31, Name: "Transfer from event", ShortName: "tr", Operation: cashbook.OperationIncome, SingleItemOnly: true, Priority: 10}, only: cashbook.TypeUnit},
	}

	var out []Category

	for _, c := range all {
		if c.only == "" || c.only == t {
			out = append(out, c.Category)
		}
	}

	return out
}
