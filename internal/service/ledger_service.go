package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/operator/actions"
	"github.com/carson-networks/ledger-server/internal/storage"
)

// Ledger error taxonomy, surfaced to handlers.
var (
	ErrNotFound  = actions.ErrNotFound
	ErrForbidden = actions.ErrForbidden
)

// mutationProcessor dispatches an action to the operator queue and waits
// for it to complete.
type mutationProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// LedgerService applies the role/ownership rules of the ledger. Reads go
// straight to the store; mutations are funneled through the operator so
// each one runs as an exclusive critical section.
//
// A nil identity means the guard is not installed (the unauthenticated
// variant): every caller sees everything, records carry no owner, and any
// caller may delete any record.
type LedgerService struct {
	ledger storage.Ledger
	ops    mutationProcessor
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(ledger storage.Ledger, ops mutationProcessor) *LedgerService {
	return &LedgerService{ledger: ledger, ops: ops}
}

// List returns transactions in insertion order. Admin identities see all
// records; user identities see only their own, relative order preserved.
func (s *LedgerService) List(ctx context.Context, identity *auth.Identity) ([]Transaction, error) {
	owner := ""
	if identity != nil && !identity.IsAdmin() {
		owner = identity.Username
	}

	rows, err := s.ledger.List(ctx, owner)
	if err != nil {
		return nil, err
	}

	transactions := make([]Transaction, len(rows))
	for i, row := range rows {
		transactions[i] = Transaction{
			ID:          row.ID,
			Fecha:       row.Fecha,
			Tipo:        row.Tipo,
			Descripcion: row.Descripcion,
			Categoria:   row.Categoria,
			Monto:       row.Monto,
			Owner:       row.Owner,
		}
	}
	return transactions, nil
}

// Add appends a new transaction and returns its assigned id. The owner is
// always the creating identity's username; whatever the client sent is
// ignored upstream.
func (s *LedgerService) Add(ctx context.Context, identity *auth.Identity, draft TransactionDraft) (int64, error) {
	owner := ""
	if identity != nil {
		owner = identity.Username
	}

	action := &actions.CreateTransaction{
		Create: storage.TransactionCreate{
			Fecha:       draft.Fecha,
			Tipo:        draft.Tipo,
			Descripcion: draft.Descripcion,
			Categoria:   draft.Categoria,
			Monto:       draft.Monto,
			Owner:       owner,
		},
	}

	if err := s.ops.Process(ctx, action); err != nil {
		return 0, err
	}
	return action.AssignedID, nil
}

// Delete removes the transaction with the given id. ErrNotFound if no
// such id; ErrForbidden if the identity is neither admin nor the owner.
// Either failure leaves the ledger unchanged.
func (s *LedgerService) Delete(ctx context.Context, identity *auth.Identity, id int64) error {
	return s.ops.Process(ctx, &actions.DeleteTransaction{ID: id, Identity: identity})
}
