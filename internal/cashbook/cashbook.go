package cashbook

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashbookID identifies the ledger of one event, camp or unit.
type CashbookID uuid.UUID

func NewCashbookID() CashbookID {
	return CashbookID(uuid.New())
}

func ParseCashbookID(s string) (CashbookID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return CashbookID{}, fmt.Errorf("%w: cashbook id %q", ErrInvalidArgument, s)
	}

	return CashbookID(id), nil
}

func (id CashbookID) String() string {
	return uuid.UUID(id).String()
}

// Type is the kind of owner a cashbook belongs to.
type Type string

const (
	TypeEvent Type = "event"
	TypeCamp  Type = "camp"
	TypeUnit  Type = "unit"
)

func (t Type) Valid() bool {
	switch t {
	case TypeEvent, TypeCamp, TypeUnit:
		return true
	}

	return false
}

// Owner is the external (membership system) entity a cashbook belongs to.
type Owner struct {
	Type Type
	ID   int
}

func (o Owner) String() string {
	return fmt.Sprintf("%s_%d", o.Type, o.ID)
}

// Cashbook is the aggregate root owning all chits of one owner. Every chit
// mutation goes through it and it is loaded and saved as a whole.
type Cashbook struct {
	id           CashbookID
	cashbookType Type
	version      int
	chits        []*Chit
	removed      []ChitID
}

func New(id CashbookID, t Type) *Cashbook {
	return &Cashbook{id: id, cashbookType: t}
}

// Restore rebuilds a persisted cashbook.
func Restore(id CashbookID, t Type, version int, chits []*Chit) *Cashbook {
	return &Cashbook{
		id:           id,
		cashbookType: t,
		version:      version,
		chits:        chits,
	}
}

func (c *Cashbook) ID() CashbookID { return c.id }
func (c *Cashbook) Type() Type     { return c.cashbookType }

// Version is the optimistic concurrency token the cashbook was loaded with.
func (c *Cashbook) Version() int { return c.version }

func (c *Cashbook) Chits() []*Chit {
	return slices.Clone(c.chits)
}

// RemovedChits lists chits removed since the cashbook was loaded.
func (c *Cashbook) RemovedChits() []ChitID {
	return slices.Clone(c.removed)
}

// MarkPersisted is called by repositories after a successful save.
func (c *Cashbook) MarkPersisted(version int) {
	c.version = version
	c.removed = nil
}

// AddChit appends a new chit. Its ID is zero until the cashbook is saved.
func (c *Cashbook) AddChit(body ChitBody, items []ChitItem, method PaymentMethod) (*Chit, error) {
	chit, err := newChit(body, items, method)
	if err != nil {
		return nil, err
	}

	c.chits = append(c.chits, chit)

	return chit, nil
}

func (c *Cashbook) UpdateChit(id ChitID, body ChitBody, items []ChitItem, method PaymentMethod) error {
	chit, err := c.FindChit(id)
	if err != nil {
		return err
	}

	return chit.update(body, items, method)
}

func (c *Cashbook) RemoveChit(id ChitID) error {
	chit, err := c.FindChit(id)
	if err != nil {
		return err
	}

	if chit.IsLocked() {
		return fmt.Errorf("chit %d: %w", id, ErrChitLocked)
	}

	c.detach(id)

	return nil
}

func (c *Cashbook) LockChit(id ChitID, user UserID) error {
	chit, err := c.FindChit(id)
	if err != nil {
		return err
	}

	chit.lockBy(user)

	return nil
}

func (c *Cashbook) UnlockChit(id ChitID) error {
	chit, err := c.FindChit(id)
	if err != nil {
		return err
	}

	chit.unlock()

	return nil
}

func (c *Cashbook) FindChit(id ChitID) (*Chit, error) {
	if id != 0 {
		for _, chit := range c.chits {
			if chit.id == id {
				return chit, nil
			}
		}
	}

	return nil, fmt.Errorf("chit %d in cashbook %s: %w", id, c.id, ErrChitNotFound)
}

func (c *Cashbook) detach(id ChitID) {
	c.chits = slices.DeleteFunc(c.chits, func(chit *Chit) bool { return chit.id == id })
	c.removed = append(c.removed, id)
}

// CategoryTotals sums item amounts per category id.
func (c *Cashbook) CategoryTotals() map[int]decimal.Decimal {
	totals := make(map[int]decimal.Decimal)

	for _, chit := range c.chits {
		for _, item := range chit.items {
			totals[item.Category.ID] = totals[item.Category.ID].Add(item.Amount.Value())
		}
	}

	return totals
}

// Balance is income minus expense over all chits.
func (c *Cashbook) Balance() decimal.Decimal {
	balance := decimal.Zero

	for _, chit := range c.chits {
		switch chit.Operation() {
		case OperationIncome:
			balance = balance.Add(chit.Total())
		case OperationExpense:
			balance = balance.Sub(chit.Total())
		}
	}

	return balance
}
