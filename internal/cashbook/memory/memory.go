// Package memory keeps cashbooks in process memory. It backs the
// DATA_BACKEND=memory mode and end-to-end tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
)

type chitRecord struct {
	id     cashbook.ChitID
	body   cashbook.ChitBody
	items  []cashbook.ChitItem
	method cashbook.PaymentMethod
	lock   cashbook.Lock
}

type cashbookRecord struct {
	cashbookType cashbook.Type
	version      int
	chits        []chitRecord
}

// Repository stores snapshots, so changes made to a loaded cashbook are
// invisible to other callers until Save.
type Repository struct {
	mu        sync.RWMutex
	cashbooks map[cashbook.CashbookID]cashbookRecord
	owners    map[cashbook.Owner]cashbook.CashbookID
	lastChit  cashbook.ChitID
}

func NewRepository() *Repository {
	return &Repository{
		cashbooks: make(map[cashbook.CashbookID]cashbookRecord),
		owners:    make(map[cashbook.Owner]cashbook.CashbookID),
	}
}

// Create provisions an empty cashbook for owner.
func (r *Repository) Create(_ context.Context, owner cashbook.Owner) (cashbook.CashbookID, error) {
	if !owner.Type.Valid() {
		return cashbook.CashbookID{}, fmt.Errorf("%w: unknown owner type %q", cashbook.ErrInvalidArgument, owner.Type)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if id, ok := r.owners[owner]; ok {
		return id, nil
	}

	id := cashbook.NewCashbookID()
	r.cashbooks[id] = cashbookRecord{cashbookType: owner.Type, version: 1}
	r.owners[owner] = id

	return id, nil
}

func (r *Repository) CashbookIDForOwner(_ context.Context, owner cashbook.Owner) (cashbook.CashbookID, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.owners[owner]
	if !ok {
		return cashbook.CashbookID{}, fmt.Errorf("%s: %w", owner, cashbook.ErrCashbookNotFound)
	}

	return id, nil
}

func (r *Repository) OwnerOf(_ context.Context, id cashbook.CashbookID) (cashbook.Owner, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for owner, cashbookID := range r.owners {
		if cashbookID == id {
			return owner, nil
		}
	}

	return cashbook.Owner{}, fmt.Errorf("owner of cashbook %s: %w", id, cashbook.ErrCashbookNotFound)
}

func (r *Repository) TypeOf(_ context.Context, id cashbook.CashbookID) (cashbook.Type, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.cashbooks[id]
	if !ok {
		return "", fmt.Errorf("cashbook %s: %w", id, cashbook.ErrCashbookNotFound)
	}

	return rec.cashbookType, nil
}

func (r *Repository) Find(_ context.Context, id cashbook.CashbookID) (*cashbook.Cashbook, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.cashbooks[id]
	if !ok {
		return nil, fmt.Errorf("cashbook %s: %w", id, cashbook.ErrCashbookNotFound)
	}

	chits := make([]*cashbook.Chit, len(rec.chits))
	for i, c := range rec.chits {
		chits[i] = cashbook.RestoreChit(c.id, c.body, c.items, c.method, c.lock)
	}

	return cashbook.Restore(id, rec.cashbookType, rec.version, chits), nil
}

func (r *Repository) Save(ctx context.Context, c *cashbook.Cashbook) error {
	return r.SaveAll(ctx, c)
}

// SaveAll saves every cashbook or, on a version conflict, none.
func (r *Repository) SaveAll(_ context.Context, cashbooks ...*cashbook.Cashbook) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range cashbooks {
		rec, ok := r.cashbooks[c.ID()]
		if !ok {
			return fmt.Errorf("cashbook %s: %w", c.ID(), cashbook.ErrCashbookNotFound)
		}

		if rec.version != c.Version() {
			return fmt.Errorf("cashbook %s: %w", c.ID(), cashbook.ErrConcurrencyConflict)
		}
	}

	for _, c := range cashbooks {
		version := c.Version() + 1
		chits := c.Chits()
		records := make([]chitRecord, len(chits))

		for i, chit := range chits {
			if chit.ID() == 0 {
				r.lastChit++
				chit.AssignID(r.lastChit)
			}

			records[i] = chitRecord{
				id:     chit.ID(),
				body:   chit.Body(),
				items:  chit.Items(),
				method: chit.PaymentMethod(),
				lock:   chit.Lock(),
			}
		}

		r.cashbooks[c.ID()] = cashbookRecord{
			cashbookType: c.Type(),
			version:      version,
			chits:        records,
		}

		c.MarkPersisted(version)
	}

	return nil
}

var (
	_ cashbook.Repository  = (*Repository)(nil)
	_ cashbook.Transactor  = (*Repository)(nil)
	_ cashbook.OwnerMapper = (*Repository)(nil)
)
