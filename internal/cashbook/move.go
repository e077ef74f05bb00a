package cashbook

import "fmt"

// MoveChits copies the chits with the given ids from source to target and
// removes them from source. destination is the target's category catalog;
// chits using a category missing from it are remapped to the undefined
// category. Either every chit is moved or neither cashbook is modified.
func MoveChits(source, target *Cashbook, ids []ChitID, destination CategorySet) ([]*Chit, error) {
	if source.id == target.id {
		return nil, fmt.Errorf("%w: source and target cashbook are the same", ErrInvalidArgument)
	}

	originals := make([]*Chit, 0, len(ids))
	seen := make(map[ChitID]struct{}, len(ids))

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}

		seen[id] = struct{}{}

		chit, err := source.FindChit(id)
		if err != nil {
			return nil, err
		}

		if chit.IsLocked() {
			return nil, fmt.Errorf("chit %d: %w", id, ErrChitLocked)
		}

		originals = append(originals, chit)
	}

	copies := make([]*Chit, 0, len(originals))

	for _, chit := range originals {
		var copied *Chit
		if chit.hasCategoriesIn(destination) {
			copied = chit.CopyToCashbook()
		} else {
			copied = chit.CopyToCashbookWithUndefinedCategory(destination)
		}

		source.detach(chit.id)
		target.chits = append(target.chits, copied)
		copies = append(copies, copied)
	}

	return copies, nil
}
