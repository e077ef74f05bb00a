package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/MrJamesThe3rd/cashbook/internal/cashbook"
)

type Store struct {
	db     *sql.DB
	tracer trace.Tracer
}

func New(db *sql.DB) *Store {
	return &Store{
		db:     db,
		tracer: otel.Tracer("cashbook/store"),
	}
}

// Create provisions the cashbook of owner, returning the existing one if
// the owner already has a cashbook.
func (s *Store) Create(ctx context.Context, owner cashbook.Owner) (cashbook.CashbookID, error) {
	if !owner.Type.Valid() {
		return cashbook.CashbookID{}, fmt.Errorf("%w: unknown owner type %q", cashbook.ErrInvalidArgument, owner.Type)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return cashbook.CashbookID{}, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	id := cashbook.NewCashbookID()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO cashbooks (id, type, version) VALUES ($1, $2, 1)`,
		uuid.UUID(id), owner.Type,
	); err != nil {
		return cashbook.CashbookID{}, fmt.Errorf("creating cashbook: %w", err)
	}

	var stored uuid.UUID

	err = tx.QueryRowContext(ctx, `
		INSERT INTO cashbook_owners (owner_type, owner_id, cashbook_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_type, owner_id) DO UPDATE SET owner_id = EXCLUDED.owner_id
		RETURNING cashbook_id`,
		owner.Type, owner.ID, uuid.UUID(id),
	).Scan(&stored)
	if err != nil {
		return cashbook.CashbookID{}, fmt.Errorf("mapping owner %s: %w", owner, err)
	}

	if stored != uuid.UUID(id) {
		// The owner already had a cashbook; drop the one created above.
		return cashbook.CashbookID(stored), nil
	}

	if err := tx.Commit(); err != nil {
		return cashbook.CashbookID{}, fmt.Errorf("committing transaction: %w", err)
	}

	return id, nil
}

func (s *Store) CashbookIDForOwner(ctx context.Context, owner cashbook.Owner) (cashbook.CashbookID, error) {
	var id uuid.UUID

	err := s.db.QueryRowContext(ctx,
		`SELECT cashbook_id FROM cashbook_owners WHERE owner_type = $1 AND owner_id = $2`,
		owner.Type, owner.ID,
	).Scan(&id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cashbook.CashbookID{}, fmt.Errorf("%s: %w", owner, cashbook.ErrCashbookNotFound)
		}

		return cashbook.CashbookID{}, fmt.Errorf("resolving cashbook of %s: %w", owner, err)
	}

	return cashbook.CashbookID(id), nil
}

func (s *Store) OwnerOf(ctx context.Context, id cashbook.CashbookID) (cashbook.Owner, error) {
	var (
		ownerType string
		ownerID   int
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT owner_type, owner_id FROM cashbook_owners WHERE cashbook_id = $1`, uuid.UUID(id),
	).Scan(&ownerType, &ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return cashbook.Owner{}, fmt.Errorf("owner of cashbook %s: %w", id, cashbook.ErrCashbookNotFound)
		}

		return cashbook.Owner{}, fmt.Errorf("getting owner of cashbook %s: %w", id, err)
	}

	return cashbook.Owner{Type: cashbook.Type(ownerType), ID: ownerID}, nil
}

func (s *Store) TypeOf(ctx context.Context, id cashbook.CashbookID) (cashbook.Type, error) {
	var t string

	err := s.db.QueryRowContext(ctx, `SELECT type FROM cashbooks WHERE id = $1`, uuid.UUID(id)).Scan(&t)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", fmt.Errorf("cashbook %s: %w", id, cashbook.ErrCashbookNotFound)
		}

		return "", fmt.Errorf("getting cashbook type: %w", err)
	}

	return cashbook.Type(t), nil
}

// Find loads the cashbook with all its chits and items.
func (s *Store) Find(ctx context.Context, id cashbook.CashbookID) (*cashbook.Cashbook, error) {
	ctx, span := s.tracer.Start(ctx, "cashbook.find",
		trace.WithAttributes(attribute.String("cashbook.id", id.String())),
	)
	defer span.End()

	var (
		cashbookType string
		version      int
	)

	err := s.db.QueryRowContext(ctx,
		`SELECT type, version FROM cashbooks WHERE id = $1`, uuid.UUID(id),
	).Scan(&cashbookType, &version)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("cashbook %s: %w", id, cashbook.ErrCashbookNotFound)
		}

		span.RecordError(err)

		return nil, fmt.Errorf("getting cashbook: %w", err)
	}

	items, err := s.loadItems(ctx, id)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	chits, err := s.loadChits(ctx, id, items)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}

	span.SetAttributes(
		attribute.Int("cashbook.version", version),
		attribute.Int("chit.count", len(chits)),
	)

	return cashbook.Restore(id, cashbook.Type(cashbookType), version, chits), nil
}

func (s *Store) loadChits(ctx context.Context, id cashbook.CashbookID, items map[cashbook.ChitID][]cashbook.ChitItem) ([]*cashbook.Chit, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, number, date, recipient, payment_method, locked_by
		FROM chits
		WHERE cashbook_id = $1
		ORDER BY id ASC`, uuid.UUID(id))
	if err != nil {
		return nil, fmt.Errorf("listing chits: %w", err)
	}
	defer rows.Close()

	var chits []*cashbook.Chit

	for rows.Next() {
		var (
			chitID            int
			number, recipient sql.NullString
			date              time.Time
			method            string
			lockedBy          sql.NullInt64
		)

		if err := rows.Scan(&chitID, &number, &date, &recipient, &method, &lockedBy); err != nil {
			return nil, fmt.Errorf("scanning chit: %w", err)
		}

		body, err := restoreBody(number, date, recipient)
		if err != nil {
			return nil, fmt.Errorf("chit %d: %w", chitID, err)
		}

		lock := cashbook.Unlocked()
		if lockedBy.Valid {
			lock = cashbook.LockedBy(cashbook.UserID(lockedBy.Int64))
		}

		chits = append(chits, cashbook.RestoreChit(
			cashbook.ChitID(chitID),
			body,
			items[cashbook.ChitID(chitID)],
			cashbook.PaymentMethod(method),
			lock,
		))
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chits: %w", err)
	}

	return chits, nil
}

func restoreBody(number sql.NullString, date time.Time, recipient sql.NullString) (cashbook.ChitBody, error) {
	var (
		n *cashbook.ChitNumber
		r *cashbook.Recipient
	)

	if number.Valid {
		v, err := cashbook.NewChitNumber(number.String)
		if err != nil {
			return cashbook.ChitBody{}, err
		}

		n = &v
	}

	if recipient.Valid {
		v, err := cashbook.NewRecipient(recipient.String)
		if err != nil {
			return cashbook.ChitBody{}, err
		}

		r = &v
	}

	return cashbook.NewChitBody(n, date, r), nil
}

func (s *Store) loadItems(ctx context.Context, id cashbook.CashbookID) (map[cashbook.ChitID][]cashbook.ChitItem, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT i.chit_id, i.amount, i.expression, i.category_id, i.operation, i.single_item_only, i.purpose
		FROM chit_items i
		JOIN chits c ON c.id = i.chit_id
		WHERE c.cashbook_id = $1
		ORDER BY i.chit_id ASC, i.position ASC`, uuid.UUID(id))
	if err != nil {
		return nil, fmt.Errorf("listing chit items: %w", err)
	}
	defer rows.Close()

	items := make(map[cashbook.ChitID][]cashbook.ChitItem)

	for rows.Next() {
		var (
			chitID     int
			value      decimal.Decimal
			expression string
			category   cashbook.Category
			operation  string
			purpose    string
		)

		if err := rows.Scan(&chitID, &value, &expression, &category.ID, &operation, &category.SingleItemOnly, &purpose); err != nil {
			return nil, fmt.Errorf("scanning chit item: %w", err)
		}

		amount, err := cashbook.RestoreAmount(value, expression)
		if err != nil {
			return nil, fmt.Errorf("chit %d: %w", chitID, err)
		}

		category.Operation = cashbook.Operation(operation)
		items[cashbook.ChitID(chitID)] = append(items[cashbook.ChitID(chitID)], cashbook.ChitItem{
			Amount:   amount,
			Category: category,
			Purpose:  purpose,
		})
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating chit items: %w", err)
	}

	return items, nil
}

func (s *Store) Save(ctx context.Context, c *cashbook.Cashbook) error {
	return s.SaveAll(ctx, c)
}

// SaveAll writes all cashbooks in one transaction. Each one must still be
// at the version it was loaded with.
func (s *Store) SaveAll(ctx context.Context, cashbooks ...*cashbook.Cashbook) error {
	ctx, span := s.tracer.Start(ctx, "cashbook.save",
		trace.WithAttributes(attribute.Int("cashbook.count", len(cashbooks))),
	)
	defer span.End()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var inserted []insertedChit

	for _, c := range cashbooks {
		ids, err := s.saveCashbook(ctx, tx, c)
		if err != nil {
			if errors.Is(err, cashbook.ErrConcurrencyConflict) {
				span.SetAttributes(attribute.Bool("conflict.detected", true))
			}

			span.SetStatus(codes.Error, err.Error())

			return err
		}

		inserted = append(inserted, ids...)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	for _, in := range inserted {
		in.chit.AssignID(in.id)
	}

	for _, c := range cashbooks {
		c.MarkPersisted(c.Version() + 1)
	}

	return nil
}

type insertedChit struct {
	chit *cashbook.Chit
	id   cashbook.ChitID
}

func (s *Store) saveCashbook(ctx context.Context, tx *sql.Tx, c *cashbook.Cashbook) ([]insertedChit, error) {
	res, err := tx.ExecContext(ctx,
		`UPDATE cashbooks SET version = version + 1 WHERE id = $1 AND version = $2`,
		uuid.UUID(c.ID()), c.Version(),
	)
	if err != nil {
		return nil, fmt.Errorf("updating cashbook version: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("checking rows affected: %w", err)
	}

	if n == 0 {
		var exists bool
		if err := tx.QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM cashbooks WHERE id = $1)`, uuid.UUID(c.ID()),
		).Scan(&exists); err != nil {
			return nil, fmt.Errorf("checking cashbook: %w", err)
		}

		if !exists {
			return nil, fmt.Errorf("cashbook %s: %w", c.ID(), cashbook.ErrCashbookNotFound)
		}

		return nil, fmt.Errorf("cashbook %s: %w", c.ID(), cashbook.ErrConcurrencyConflict)
	}

	if removed := c.RemovedChits(); len(removed) > 0 {
		ids := make([]int64, len(removed))
		for i, id := range removed {
			ids[i] = int64(id)
		}

		if _, err := tx.ExecContext(ctx,
			`DELETE FROM chits WHERE cashbook_id = $1 AND id = ANY($2)`,
			uuid.UUID(c.ID()), ids,
		); err != nil {
			return nil, fmt.Errorf("deleting removed chits: %w", err)
		}
	}

	var inserted []insertedChit

	for _, chit := range c.Chits() {
		id, err := s.saveChit(ctx, tx, c.ID(), chit)
		if err != nil {
			return nil, err
		}

		if chit.ID() == 0 {
			inserted = append(inserted, insertedChit{chit: chit, id: id})
		}

		if err := s.replaceItems(ctx, tx, id, chit.Items()); err != nil {
			return nil, err
		}
	}

	return inserted, nil
}

func (s *Store) saveChit(ctx context.Context, tx *sql.Tx, cashbookID cashbook.CashbookID, chit *cashbook.Chit) (cashbook.ChitID, error) {
	body := chit.Body()

	var number, recipient, lockedBy any
	if body.Number != nil {
		number = body.Number.String()
	}

	if body.Recipient != nil {
		recipient = body.Recipient.String()
	}

	if holder, ok := chit.Lock().Holder(); ok {
		lockedBy = int64(holder)
	}

	if chit.ID() == 0 {
		var id int

		err := tx.QueryRowContext(ctx, `
			INSERT INTO chits (cashbook_id, number, date, recipient, payment_method, locked_by)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
			uuid.UUID(cashbookID), number, body.Date, recipient, chit.PaymentMethod(), lockedBy,
		).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("creating chit: %w", err)
		}

		return cashbook.ChitID(id), nil
	}

	_, err := tx.ExecContext(ctx, `
		UPDATE chits
		SET number = $3, date = $4, recipient = $5, payment_method = $6, locked_by = $7
		WHERE id = $1 AND cashbook_id = $2`,
		int64(chit.ID()), uuid.UUID(cashbookID), number, body.Date, recipient, chit.PaymentMethod(), lockedBy,
	)
	if err != nil {
		return 0, fmt.Errorf("updating chit %d: %w", chit.ID(), err)
	}

	return chit.ID(), nil
}

func (s *Store) replaceItems(ctx context.Context, tx *sql.Tx, chitID cashbook.ChitID, items []cashbook.ChitItem) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM chit_items WHERE chit_id = $1`, int64(chitID)); err != nil {
		return fmt.Errorf("deleting items of chit %d: %w", chitID, err)
	}

	for i, item := range items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO chit_items (chit_id, position, amount, expression, category_id, operation, single_item_only, purpose)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
			int64(chitID), i, item.Amount.Value(), item.Amount.Expression(),
			item.Category.ID, item.Category.Operation, item.Category.SingleItemOnly, item.Purpose,
		)
		if err != nil {
			return fmt.Errorf("inserting item of chit %d: %w", chitID, err)
		}
	}

	return nil
}

var (
	_ cashbook.Repository  = (*Store)(nil)
	_ cashbook.Transactor  = (*Store)(nil)
	_ cashbook.OwnerMapper = (*Store)(nil)
)
