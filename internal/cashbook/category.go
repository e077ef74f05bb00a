package cashbook

// Sentinel categories present in every catalog.
const (
	UndefinedExpenseCategoryID = 8
	UndefinedIncomeCategoryID  = 12
)

// Category classifies a chit item. SingleItemOnly is set by the category
// catalog for categories (transfers, aggregated participant income) that
// must be the only item on their chit.
type Category struct {
	ID             int
	Operation      Operation
	SingleItemOnly bool
}

func UndefinedCategory(op Operation) Category {
	return Category{ID: op.UndefinedCategoryID(), Operation: op}
}

// CategorySet is a snapshot of the category ids available in one cashbook.
type CategorySet map[int]Category

func NewCategorySet(categories ...Category) CategorySet {
	set := make(CategorySet, len(categories))
	for _, c := range categories {
		set[c.ID] = c
	}

	return set
}

func (s CategorySet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}
