package actions

import (
	"context"
	"errors"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/storage"
)

var (
	// ErrNotFound is returned when no transaction has the requested id.
	ErrNotFound = errors.New("transaction not found")
	// ErrForbidden is returned when a non-admin caller tries to delete a
	// transaction owned by someone else.
	ErrForbidden = errors.New("not the owner of this transaction")
)

// DeleteTransaction removes a record by id after checking ownership. The
// lookup and the removal run inside the same writer, so the check cannot
// race a concurrent mutation. A nil identity skips the ownership check
// (the unauthenticated surface has no ownership scoping).
type DeleteTransaction struct {
	ID       int64
	Identity *auth.Identity
	IAction
}

func (t *DeleteTransaction) Perform(ctx context.Context, writer storage.Writer) error {
	record, err := writer.FindByID(ctx, t.ID)
	if err != nil {
		return err
	}
	if record == nil {
		return ErrNotFound
	}
	if t.Identity != nil && !t.Identity.CanModify(record.Owner) {
		return ErrForbidden
	}

	found, err := writer.Delete(ctx, t.ID)
	if err != nil {
		return err
	}
	if !found {
		return ErrNotFound
	}
	return nil
}
