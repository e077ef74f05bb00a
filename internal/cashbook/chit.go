package cashbook

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const maxPurposeLength = 120

// ChitID is assigned by the repository when a chit is first saved. Chits
// added in the current unit of work have ID 0.
type ChitID int

type ChitBody struct {
	Number    *ChitNumber
	Date      time.Time
	Recipient *Recipient
}

// NewChitBody truncates date to the calendar day.
func NewChitBody(number *ChitNumber, date time.Time, recipient *Recipient) ChitBody {
	return ChitBody{
		Number:    number,
		Date:      time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC),
		Recipient: recipient,
	}
}

type ChitItem struct {
	Amount   Amount
	Category Category
	Purpose  string
}

func NewChitItem(amount Amount, category Category, purpose string) (ChitItem, error) {
	purpose = strings.TrimSpace(purpose)
	if purpose == "" {
		return ChitItem{}, fmt.Errorf("%w: purpose is empty", ErrInvalidArgument)
	}

	if utf8.RuneCountInString(purpose) > maxPurposeLength {
		return ChitItem{}, fmt.Errorf("%w: purpose is longer than %d characters", ErrInvalidArgument, maxPurposeLength)
	}

	if !category.Operation.Valid() {
		return ChitItem{}, fmt.Errorf("%w: category %d has no operation", ErrInvalidArgument, category.ID)
	}

	return ChitItem{Amount: amount, Category: category, Purpose: purpose}, nil
}

// Chit is one ledger entry. It is only mutated through its Cashbook.
type Chit struct {
	id            ChitID
	body          ChitBody
	items         []ChitItem
	paymentMethod PaymentMethod
	lock          Lock
}

func newChit(body ChitBody, items []ChitItem, method PaymentMethod) (*Chit, error) {
	c := &Chit{}
	if err := c.replace(body, items, method); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreChit rebuilds a persisted chit without validating it.
func RestoreChit(id ChitID, body ChitBody, items []ChitItem, method PaymentMethod, lock Lock) *Chit {
	return &Chit{
		id:            id,
		body:          body,
		items:         append([]ChitItem(nil), items...),
		paymentMethod: method,
		lock:          lock,
	}
}

func (c *Chit) update(body ChitBody, items []ChitItem, method PaymentMethod) error {
	if c.lock.IsLocked() {
		return fmt.Errorf("chit %d: %w", c.id, ErrChitLocked)
	}

	return c.replace(body, items, method)
}

func (c *Chit) replace(body ChitBody, items []ChitItem, method PaymentMethod) error {
	if !method.Valid() {
		return fmt.Errorf("%w: unknown payment method %q", ErrInvalidArgument, method)
	}

	if err := validateItems(items); err != nil {
		return err
	}

	c.body = body
	c.items = append([]ChitItem(nil), items...)
	c.paymentMethod = method

	return nil
}

func validateItems(items []ChitItem) error {
	if len(items) == 0 {
		return fmt.Errorf("%w: chit has no items", ErrInvalidArgument)
	}

	operation := items[0].Category.Operation
	seen := make(map[int]struct{}, len(items))

	for _, item := range items {
		if item.Category.Operation != operation {
			return fmt.Errorf("%w: chit mixes %s and %s items", ErrInvalidArgument, operation, item.Category.Operation)
		}

		if !item.Amount.Value().IsPositive() {
			return fmt.Errorf("%w: item %q has no positive amount", ErrInvalidAmount, item.Purpose)
		}

		if _, dup := seen[item.Category.ID]; dup {
			return fmt.Errorf("category %d: %w", item.Category.ID, ErrDuplicitCategory)
		}

		seen[item.Category.ID] = struct{}{}
	}

	if len(items) == 1 {
		return nil
	}

	for _, item := range items {
		if item.Category.SingleItemOnly {
			return fmt.Errorf("category %d: %w", item.Category.ID, ErrSingleItemRestriction)
		}
	}

	return nil
}

func (c *Chit) lockBy(user UserID) {
	c.lock = LockedBy(user)
}

func (c *Chit) unlock() {
	c.lock = Unlocked()
}

// AssignID is called by repositories once the chit has been persisted.
func (c *Chit) AssignID(id ChitID) {
	c.id = id
}

// CopyToCashbook returns an unlocked, unsaved copy of the chit.
func (c *Chit) CopyToCashbook() *Chit {
	return &Chit{
		body:          c.body,
		items:         append([]ChitItem(nil), c.items...),
		paymentMethod: c.paymentMethod,
	}
}

// CopyToCashbookWithUndefinedCategory is CopyToCashbook for a destination
// whose catalog may lack some of the item categories. Those items get the
// undefined category of their operation; items that end up sharing it are
// merged into one.
func (c *Chit) CopyToCashbookWithUndefinedCategory(destination CategorySet) *Chit {
	items := make([]ChitItem, 0, len(c.items))
	index := make(map[int]int, len(c.items))

	for _, item := range c.items {
		if !destination.Contains(item.Category.ID) {
			item.Category = UndefinedCategory(item.Category.Operation)
		}

		if i, ok := index[item.Category.ID]; ok {
			items[i].Amount = items[i].Amount.Add(item.Amount)
			items[i].Purpose = items[i].Purpose + ", " + item.Purpose

			continue
		}

		index[item.Category.ID] = len(items)
		items = append(items, item)
	}

	return &Chit{
		body:          c.body,
		items:         items,
		paymentMethod: c.paymentMethod,
	}
}

func (c *Chit) ID() ChitID                   { return c.id }
func (c *Chit) Body() ChitBody               { return c.body }
func (c *Chit) PaymentMethod() PaymentMethod { return c.paymentMethod }
func (c *Chit) Lock() Lock                   { return c.lock }
func (c *Chit) IsLocked() bool               { return c.lock.IsLocked() }

func (c *Chit) Items() []ChitItem {
	return append([]ChitItem(nil), c.items...)
}

// Operation is derived from the items, which all share one.
func (c *Chit) Operation() Operation {
	return c.items[0].Category.Operation
}

func (c *Chit) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Amount.Value())
	}

	return total
}

// hasCategoriesIn reports whether every item category exists in set.
func (c *Chit) hasCategoriesIn(set CategorySet) bool {
	for _, item := range c.items {
		if !set.Contains(item.Category.ID) {
			return false
		}
	}

	return true
}
