package chitcsv

import "github.com/MrJamesThe3rd/cashbook/internal/cashbook"

// Profile describes the header names of one chit export layout. Adding a
// layout is adding a Profile to profiles.
type Profile struct {
	Name         string
	DateCol      string
	NumberCol    string
	RecipientCol string
	AmountCol    string
	CategoryCol  string
	PurposeCol   string
	MethodCol    string
	// ChitCol groups consecutive rows sharing a value into one chit.
	ChitCol string
	Methods map[string]cashbook.PaymentMethod
}

func (p Profile) requiredCols() []string {
	return []string{p.DateCol, p.AmountCol, p.CategoryCol, p.PurposeCol}
}

var profiles = []Profile{
	{
		Name:         "english",
		DateCol:      "date",
		NumberCol:    "number",
		RecipientCol: "recipient",
		AmountCol:    "amount",
		CategoryCol:  "category",
		PurposeCol:   "purpose",
		MethodCol:    "payment_method",
		ChitCol:      "chit",
		Methods: map[string]cashbook.PaymentMethod{
			"cash": cashbook.PaymentMethodCash,
			"bank": cashbook.PaymentMethodBank,
		},
	},
	{
		Name:         "czech",
		DateCol:      "datum",
		NumberCol:    "číslo dokladu",
		RecipientCol: "komu/od",
		AmountCol:    "částka",
		CategoryCol:  "kategorie",
		PurposeCol:   "účel",
		MethodCol:    "typ platby",
		ChitCol:      "doklad",
		Methods: map[string]cashbook.PaymentMethod{
			"hotově":   cashbook.PaymentMethodCash,
			"hotovost": cashbook.PaymentMethodCash,
			"banka":    cashbook.PaymentMethodBank,
			"převodem": cashbook.PaymentMethodBank,
		},
	},
}
