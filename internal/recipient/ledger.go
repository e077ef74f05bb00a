package recipient

import (
	"context"
	"errors"
	"slices"
	"strings"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
)

// CashbookFinder loads cashbooks by owner.
type CashbookFinder interface {
	cashbook.Repository
	cashbook.OwnerMapper
}

// LedgerRepository reads past recipients from the unit's cashbook. It
// serves backends without a query side, such as the in-memory one.
type LedgerRepository struct {
	cashbooks CashbookFinder
}

func NewLedgerRepository(cashbooks CashbookFinder) *LedgerRepository {
	return &LedgerRepository{cashbooks: cashbooks}
}

func (r *LedgerRepository) RecentRecipients(ctx context.Context, unitID int, query string, limit int) ([]string, error) {
	id, err := r.cashbooks.CashbookIDForOwner(ctx, cashbook.Owner{Type: cashbook.TypeUnit, ID: unitID})
	if errors.Is(err, cashbook.ErrCashbookNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}

	cb, err := r.cashbooks.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	chits := cb.Chits()
	slices.SortStableFunc(chits, func(a, b *cashbook.Chit) int {
		return b.Body().Date.Compare(a.Body().Date)
	})

	needle := strings.ToLower(query)
	seen := make(map[string]struct{})

	var names []string

	for _, chit := range chits {
		if len(names) == limit {
			break
		}

		rec := chit.Body().Recipient
		if rec == nil || !strings.Contains(strings.ToLower(rec.String()), needle) {
			continue
		}

		if _, ok := seen[rec.String()]; ok {
			continue
		}

		seen[rec.String()] = struct{}{}
		names = append(names, rec.String())
	}

	return names, nil
}
