package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
	"github.com/MrJamesThe3rd/cashbook/internal/category"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListByType(ctx context.Context, t cashbook.Type) ([]category.Category, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, short_name, operation, single_item_only, priority
		FROM categories
		WHERE cashbook_type IS NULL OR cashbook_type = $1
		ORDER BY priority DESC, name ASC`, t)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var categories []category.Category

	for rows.Next() {
		var (
			c         category.Category
			operation string
		)

		if err := rows.Scan(&c.ID, &c.Name, &c.ShortName, &operation, &c.SingleItemOnly, &c.Priority); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}

		c.Operation = cashbook.Operation(operation)
		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating categories: %w", err)
	}

	return categories, nil
}
