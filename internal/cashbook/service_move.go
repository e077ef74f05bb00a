package cashbook

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
)

type MoveChitsBetweenCashbooks struct {
	Source  Owner
	Target  Owner
	ChitIDs []ChitID
	UserID  UserID
}

// MoveChits moves a batch of chits to the cashbook of another owner. The
// batch is validated as a whole before anything is written.
//
// Two cashbooks are saved. Repositories implementing Transactor save both
// in one transaction; otherwise the target is saved first and a failure to
// save the source afterwards is reported as ErrPartialMove, leaving the
// chits in both cashbooks until the move is retried or cleaned up. Synced
// totals are reset to the stored cashbooks whenever saving fails.
func (s *Service) MoveChits(ctx context.Context, cmd MoveChitsBetweenCashbooks) error {
	if s.mapper == nil || s.authorizer == nil {
		return fmt.Errorf("%w: moving chits is not configured", ErrForbidden)
	}

	if len(cmd.ChitIDs) == 0 {
		return fmt.Errorf("%w: no chits selected", ErrInvalidArgument)
	}

	for _, owner := range []Owner{cmd.Source, cmd.Target} {
		allowed, err := s.authorizer.CanEdit(ctx, cmd.UserID, owner)
		if err != nil {
			return fmt.Errorf("checking access to %s: %w", owner, err)
		}

		if !allowed {
			return fmt.Errorf("%s: %w", owner, ErrForbidden)
		}
	}

	sourceID, err := s.mapper.CashbookIDForOwner(ctx, cmd.Source)
	if err != nil {
		return fmt.Errorf("resolving cashbook of %s: %w", cmd.Source, err)
	}

	targetID, err := s.mapper.CashbookIDForOwner(ctx, cmd.Target)
	if err != nil {
		return fmt.Errorf("resolving cashbook of %s: %w", cmd.Target, err)
	}

	var (
		source, target *Cashbook
		destination    CategorySet
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		source, err = s.repo.Find(gctx, sourceID)
		return err
	})
	g.Go(func() (err error) {
		target, err = s.repo.Find(gctx, targetID)
		return err
	})
	g.Go(func() (err error) {
		destination, err = s.categories.Categories(gctx, targetID)
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	copies, err := MoveChits(source, target, cmd.ChitIDs, destination)
	if err != nil {
		return err
	}

	targetTotals, err := s.syncTotals(ctx, target)
	if err != nil {
		return err
	}

	sourceTotals, err := s.syncTotals(ctx, source)
	if err != nil {
		s.restoreTotals(ctx, targetID, targetTotals)
		return err
	}

	if err := s.persistMove(ctx, source, target); err != nil {
		s.restoreTotals(ctx, targetID, targetTotals)
		s.restoreTotals(ctx, sourceID, sourceTotals)

		return err
	}

	slog.InfoContext(ctx, "moved chits",
		"source_cashbook_id", sourceID.String(),
		"target_cashbook_id", targetID.String(),
		"count", len(copies),
	)

	removed := make(map[ChitID]struct{}, len(copies))

	for _, id := range cmd.ChitIDs {
		if _, ok := removed[id]; ok {
			continue
		}

		removed[id] = struct{}{}
		s.publish(ctx, sourceID, id, ChangeRemoved)
	}

	for _, chit := range copies {
		s.publish(ctx, targetID, chit.ID(), ChangeAdded)
	}

	return nil
}

func (s *Service) persistMove(ctx context.Context, source, target *Cashbook) error {
	if tx, ok := s.repo.(Transactor); ok {
		if err := tx.SaveAll(ctx, target, source); err != nil {
			return fmt.Errorf("saving moved chits: %w", err)
		}

		return nil
	}

	if err := s.repo.Save(ctx, target); err != nil {
		return fmt.Errorf("saving target cashbook %s: %w", target.ID(), err)
	}

	slog.InfoContext(ctx, "moved chits saved to target, removing from source",
		"source_cashbook_id", source.ID().String(),
		"target_cashbook_id", target.ID().String(),
	)

	if err := s.repo.Save(ctx, source); err != nil {
		slog.ErrorContext(ctx, "chits copied to target but not removed from source",
			"source_cashbook_id", source.ID().String(),
			"target_cashbook_id", target.ID().String(),
			"error", err,
		)

		return fmt.Errorf("%w: target %s saved, source %s not: %w", ErrPartialMove, target.ID(), source.ID(), err)
	}

	return nil
}
