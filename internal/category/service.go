package category

import (
	"cmp"
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/MrJamesThe3rd/cashbook/internal/cache"
	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=category
type Repository interface {
	ListByType(ctx context.Context, t cashbook.Type) ([]Category, error)
}

// TypeResolver tells which kind of owner a cashbook belongs to.
type TypeResolver interface {
	TypeOf(ctx context.Context, id cashbook.CashbookID) (cashbook.Type, error)
}

type Service struct {
	repo  Repository
	types TypeResolver
	cache *cache.LRU[[]Category]
}

// NewService returns a catalog caching the categories of each cashbook in c.
// A nil c disables caching.
func NewService(repo Repository, types TypeResolver, c *cache.LRU[[]Category]) *Service {
	return &Service{repo: repo, types: types, cache: c}
}

// Categories is the snapshot the cashbook validates chit items against.
func (s *Service) Categories(ctx context.Context, id cashbook.CashbookID) (cashbook.CategorySet, error) {
	categories, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	set := make(cashbook.CategorySet, len(categories))
	for _, c := range categories {
		set[c.ID] = c.Ledger()
	}

	return set, nil
}

// List returns the categories of a cashbook ordered by priority, optionally
// only those of one operation.
func (s *Service) List(ctx context.Context, id cashbook.CashbookID, op *cashbook.Operation) ([]Category, error) {
	categories, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	out := make([]Category, 0, len(categories))

	for _, c := range categories {
		if op == nil || c.Operation == *op {
			out = append(out, c)
		}
	}

	slices.SortStableFunc(out, func(a, b Category) int {
		if n := cmp.Compare(b.Priority, a.Priority); n != 0 {
			return n
		}

		return cmp.Compare(a.Name, b.Name)
	})

	return out, nil
}

// Find returns one category of the cashbook catalog.
func (s *Service) Find(ctx context.Context, id cashbook.CashbookID, categoryID int) (Category, error) {
	categories, err := s.load(ctx, id)
	if err != nil {
		return Category{}, err
	}

	for _, c := range categories {
		if c.ID == categoryID {
			return c, nil
		}
	}

	return Category{}, fmt.Errorf("category %d: %w", categoryID, ErrNotFound)
}

func (s *Service) load(ctx context.Context, id cashbook.CashbookID) ([]Category, error) {
	key := id.String()

	if s.cache != nil {
		if categories, ok := s.cache.Get(key); ok {
			return categories, nil
		}
	}

	t, err := s.types.TypeOf(ctx, id)
	if err != nil {
		return nil, err
	}

	categories, err := s.repo.ListByType(ctx, t)
	if err != nil {
		return nil, fmt.Errorf("listing %s categories: %w", t, err)
	}

	categories = withUndefined(ctx, categories)

	if s.cache != nil {
		s.cache.Set(key, categories)
	}

	return categories, nil
}

// withUndefined adds the undefined categories a catalog lacks, so chits
// moved into any cashbook can be remapped.
func withUndefined(ctx context.Context, categories []Category) []Category {
	for _, op := range []cashbook.Operation{cashbook.OperationExpense, cashbook.OperationIncome} {
		id := op.UndefinedCategoryID()
		if slices.ContainsFunc(categories, func(c Category) bool { return c.ID == id }) {
			continue
		}

		slog.WarnContext(ctx, "category catalog lacks undefined category", "category_id", id)

		categories = append(categories, Category{ID: id, Name: "Undefined " + string(op), Operation: op})
	}

	return categories
}

// StaticRepository serves a fixed catalog.
type StaticRepository struct {
	categories func(cashbook.Type) []Category
}

func NewStaticRepository(categories func(cashbook.Type) []Category) *StaticRepository {
	return &StaticRepository{categories: categories}
}

func (r *StaticRepository) ListByType(_ context.Context, t cashbook.Type) ([]Category, error) {
	return r.categories(t), nil
}

var _ cashbook.CategoryCatalog = (*Service)(nil)
