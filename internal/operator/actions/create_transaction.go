package actions

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// CreateTransaction appends a record to the ledger. The store assigns the
// id; AssignedID carries it back to the caller after Process returns.
type CreateTransaction struct {
	Create     storage.TransactionCreate
	AssignedID int64
	IAction
}

func (t *CreateTransaction) Perform(ctx context.Context, writer storage.Writer) error {
	id, err := writer.Insert(ctx, &t.Create)
	if err != nil {
		return err
	}
	t.AssignedID = id
	return nil
}
