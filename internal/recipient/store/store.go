package store

import (
	"context"
	"database/sql"
	"fmt"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) RecentRecipients(ctx context.Context, unitID int, query string, limit int) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT c.recipient
		FROM chits c
		JOIN cashbook_owners o ON o.cashbook_id = c.cashbook_id
		WHERE o.owner_type = 'unit'
			AND o.owner_id = $1
			AND c.recipient IS NOT NULL
			AND c.recipient ILIKE '%' || $2 || '%'
		GROUP BY c.recipient
		ORDER BY MAX(c.date) DESC, c.recipient ASC
		LIMIT $3`, unitID, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recipients: %w", err)
	}
	defer rows.Close()

	var names []string

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scanning recipient: %w", err)
		}

		names = append(names, name)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating recipients: %w", err)
	}

	return names, nil
}
