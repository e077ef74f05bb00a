package cashbook

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=cashbook
type Repository interface {
	Find(ctx context.Context, id CashbookID) (*Cashbook, error)
	// Save persists the cashbook and assigns ids to new chits. It fails with
	// ErrConcurrencyConflict when the stored version is not c.Version().
	Save(ctx context.Context, c *Cashbook) error
}

// Transactor is implemented by repositories able to save several cashbooks
// atomically.
type Transactor interface {
	SaveAll(ctx context.Context, cashbooks ...*Cashbook) error
}

// CategoryCatalog returns the categories usable in a cashbook.
type CategoryCatalog interface {
	Categories(ctx context.Context, id CashbookID) (CategorySet, error)
}

// OwnerMapper resolves which cashbook belongs to an event, camp or unit.
type OwnerMapper interface {
	CashbookIDForOwner(ctx context.Context, owner Owner) (CashbookID, error)
}

type Authorizer interface {
	CanEdit(ctx context.Context, user UserID, owner Owner) (bool, error)
}

// CategoryTotalsUpdater pushes per-category totals of camp cashbooks to the
// external ledger.
type CategoryTotalsUpdater interface {
	UpdateCategoryTotals(ctx context.Context, id CashbookID, totals map[int]decimal.Decimal) error
}

type EventPublisher interface {
	PublishChitChanged(ctx context.Context, event ChitChanged) error
}

type ChangeType string

const (
	ChangeAdded    ChangeType = "added"
	ChangeUpdated  ChangeType = "updated"
	ChangeRemoved  ChangeType = "removed"
	ChangeLocked   ChangeType = "locked"
	ChangeUnlocked ChangeType = "unlocked"
)

type ChitChanged struct {
	CashbookID CashbookID
	ChitID     ChitID
	Type       ChangeType
	OccurredAt time.Time
}

type Service struct {
	repo       Repository
	categories CategoryCatalog
	mapper     OwnerMapper
	authorizer Authorizer
	updater    CategoryTotalsUpdater
	publisher  EventPublisher
}

type Option func(*Service)

// WithOwnerAccess enables moving chits between cashbooks.
func WithOwnerAccess(mapper OwnerMapper, authorizer Authorizer) Option {
	return func(s *Service) {
		s.mapper = mapper
		s.authorizer = authorizer
	}
}

func WithCategoryTotalsUpdater(u CategoryTotalsUpdater) Option {
	return func(s *Service) { s.updater = u }
}

func WithEventPublisher(p EventPublisher) Option {
	return func(s *Service) { s.publisher = p }
}

func NewService(repo Repository, categories CategoryCatalog, opts ...Option) *Service {
	s := &Service{repo: repo, categories: categories}
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ItemInput is a chit item as entered, before its category is resolved
// against the cashbook's catalog. An empty Operation skips the check that
// the category matches it.
type ItemInput struct {
	Amount     Amount
	CategoryID int
	Operation  Operation
	Purpose    string
}

type ChitInput struct {
	Body   ChitBody
	Method PaymentMethod
	Items  []ItemInput
}

type AddChitToCashbook struct {
	CashbookID CashbookID
	Body       ChitBody
	Method     PaymentMethod
	Items      []ItemInput
}

type UpdateChit struct {
	CashbookID CashbookID
	ChitID     ChitID
	Body       ChitBody
	Method     PaymentMethod
	Items      []ItemInput
}

type RemoveChitFromCashbook struct {
	CashbookID CashbookID
	ChitID     ChitID
}

type LockChit struct {
	CashbookID CashbookID
	ChitID     ChitID
	UserID     UserID
}

type UnlockChit struct {
	CashbookID CashbookID
	ChitID     ChitID
}

// Result of a command that adds or edits a chit. NegativeBalance is a
// warning only; the command has been persisted.
type Result struct {
	ChitID          ChitID
	NegativeBalance bool
}

func (s *Service) Get(ctx context.Context, id CashbookID) (*Cashbook, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) FindChit(ctx context.Context, cashbookID CashbookID, chitID ChitID) (*Chit, error) {
	cb, err := s.repo.Find(ctx, cashbookID)
	if err != nil {
		return nil, err
	}

	return cb.FindChit(chitID)
}

func (s *Service) AddChit(ctx context.Context, cmd AddChitToCashbook) (*Result, error) {
	cb, err := s.repo.Find(ctx, cmd.CashbookID)
	if err != nil {
		return nil, err
	}

	items, err := s.resolveItems(ctx, cmd.CashbookID, cmd.Items)
	if err != nil {
		return nil, err
	}

	chit, err := cb.AddChit(cmd.Body, items, cmd.Method)
	if err != nil {
		return nil, err
	}

	if err := s.commit(ctx, cb); err != nil {
		return nil, err
	}

	s.publish(ctx, cb.ID(), chit.ID(), ChangeAdded)

	return s.result(ctx, cb, chit.ID()), nil
}

func (s *Service) UpdateChit(ctx context.Context, cmd UpdateChit) (*Result, error) {
	cb, err := s.repo.Find(ctx, cmd.CashbookID)
	if err != nil {
		return nil, err
	}

	items, err := s.resolveItems(ctx, cmd.CashbookID, cmd.Items)
	if err != nil {
		return nil, err
	}

	if err := cb.UpdateChit(cmd.ChitID, cmd.Body, items, cmd.Method); err != nil {
		return nil, err
	}

	if err := s.commit(ctx, cb); err != nil {
		return nil, err
	}

	s.publish(ctx, cb.ID(), cmd.ChitID, ChangeUpdated)

	return s.result(ctx, cb, cmd.ChitID), nil
}

func (s *Service) RemoveChit(ctx context.Context, cmd RemoveChitFromCashbook) error {
	cb, err := s.repo.Find(ctx, cmd.CashbookID)
	if err != nil {
		return err
	}

	if err := cb.RemoveChit(cmd.ChitID); err != nil {
		return err
	}

	if err := s.commit(ctx, cb); err != nil {
		return err
	}

	s.publish(ctx, cb.ID(), cmd.ChitID, ChangeRemoved)

	return nil
}

func (s *Service) LockChit(ctx context.Context, cmd LockChit) error {
	cb, err := s.repo.Find(ctx, cmd.CashbookID)
	if err != nil {
		return err
	}

	if err := cb.LockChit(cmd.ChitID, cmd.UserID); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, cb); err != nil {
		return fmt.Errorf("saving cashbook %s: %w", cb.ID(), err)
	}

	s.publish(ctx, cb.ID(), cmd.ChitID, ChangeLocked)

	return nil
}

func (s *Service) UnlockChit(ctx context.Context, cmd UnlockChit) error {
	cb, err := s.repo.Find(ctx, cmd.CashbookID)
	if err != nil {
		return err
	}

	if err := cb.UnlockChit(cmd.ChitID); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, cb); err != nil {
		return fmt.Errorf("saving cashbook %s: %w", cb.ID(), err)
	}

	s.publish(ctx, cb.ID(), cmd.ChitID, ChangeUnlocked)

	return nil
}

// ImportChits adds all chits to the cashbook or none of them.
func (s *Service) ImportChits(ctx context.Context, id CashbookID, inputs []ChitInput) ([]ChitID, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	cb, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	chits := make([]*Chit, 0, len(inputs))

	for i, in := range inputs {
		items, err := s.resolveItems(ctx, id, in.Items)
		if err != nil {
			return nil, fmt.Errorf("chit %d: %w", i+1, err)
		}

		chit, err := cb.AddChit(in.Body, items, in.Method)
		if err != nil {
			return nil, fmt.Errorf("chit %d: %w", i+1, err)
		}

		chits = append(chits, chit)
	}

	if err := s.commit(ctx, cb); err != nil {
		return nil, err
	}

	ids := make([]ChitID, len(chits))
	for i, chit := range chits {
		ids[i] = chit.ID()
		s.publish(ctx, id, chit.ID(), ChangeAdded)
	}

	return ids, nil
}

func (s *Service) resolveItems(ctx context.Context, id CashbookID, inputs []ItemInput) ([]ChitItem, error) {
	catalog, err := s.categories.Categories(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("loading categories of cashbook %s: %w", id, err)
	}

	items := make([]ChitItem, 0, len(inputs))

	for _, in := range inputs {
		category, ok := catalog[in.CategoryID]
		if !ok {
			return nil, fmt.Errorf("%w: unknown category %d", ErrInvalidArgument, in.CategoryID)
		}

		if in.Operation != "" && category.Operation != in.Operation {
			return nil, fmt.Errorf("%w: category %d is not an %s category", ErrInvalidArgument, in.CategoryID, in.Operation)
		}

		item, err := NewChitItem(in.Amount, category, in.Purpose)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}

// commit syncs camp totals to the external ledger and saves the cashbook.
// A rejected sync leaves the cashbook unsaved. A failed save after a sync
// resets the ledger to the totals of the stored cashbook.
func (s *Service) commit(ctx context.Context, cb *Cashbook) error {
	pushed, err := s.syncTotals(ctx, cb)
	if err != nil {
		return err
	}

	if err := s.repo.Save(ctx, cb); err != nil {
		s.restoreTotals(ctx, cb.ID(), pushed)
		return fmt.Errorf("saving cashbook %s: %w", cb.ID(), err)
	}

	return nil
}

// syncTotals returns the totals pushed to the ledger, nil when the cashbook
// is not synced.
func (s *Service) syncTotals(ctx context.Context, cb *Cashbook) (map[int]decimal.Decimal, error) {
	if s.updater == nil || cb.Type() != TypeCamp {
		return nil, nil
	}

	totals := cb.CategoryTotals()
	if err := s.updater.UpdateCategoryTotals(ctx, cb.ID(), totals); err != nil {
		return nil, fmt.Errorf("updating category totals of cashbook %s: %w", cb.ID(), err)
	}

	return totals, nil
}

// restoreTotals pushes the totals of the stored cashbook after pushed totals
// were not saved. Categories only present in pushed are reset to zero.
func (s *Service) restoreTotals(ctx context.Context, id CashbookID, pushed map[int]decimal.Decimal) {
	if pushed == nil {
		return
	}

	ctx = context.WithoutCancel(ctx)

	stored, err := s.repo.Find(ctx, id)
	if err != nil {
		slog.WarnContext(ctx, "category totals left out of sync with stored cashbook",
			"cashbook_id", id.String(),
			"error", err,
		)

		return
	}

	totals := stored.CategoryTotals()
	for category := range pushed {
		if _, ok := totals[category]; !ok {
			totals[category] = decimal.Zero
		}
	}

	if err := s.updater.UpdateCategoryTotals(ctx, id, totals); err != nil {
		slog.WarnContext(ctx, "category totals left out of sync with stored cashbook",
			"cashbook_id", id.String(),
			"error", err,
		)
	}
}

func (s *Service) result(ctx context.Context, cb *Cashbook, id ChitID) *Result {
	negative := cb.Balance().IsNegative()
	if negative {
		slog.WarnContext(ctx, "cashbook balance is negative",
			"cashbook_id", cb.ID().String(),
			"balance", cb.Balance().StringFixed(2),
		)
	}

	return &Result{ChitID: id, NegativeBalance: negative}
}

func (s *Service) publish(ctx context.Context, cashbookID CashbookID, chitID ChitID, t ChangeType) {
	if s.publisher == nil {
		return
	}

	event := ChitChanged{
		CashbookID: cashbookID,
		ChitID:     chitID,
		Type:       t,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishChitChanged(ctx, event); err != nil {
		slog.WarnContext(ctx, "failed to publish chit change",
			"cashbook_id", cashbookID.String(),
			"chit_id", int(chitID),
			"type", string(t),
			"error", err,
		)
	}
}
