package storage

import (
	"context"

	"github.com/shopspring/decimal"
)

// TransactionRecord is a ledger record as stored.
type TransactionRecord struct {
	ID          int64
	Fecha       string
	Tipo        string
	Descripcion string
	Categoria   string
	Monto       decimal.Decimal
	Owner       string
}

// TransactionCreate is the input for appending a new record. The id is
// assigned by the store; Owner is empty on the unauthenticated surface.
type TransactionCreate struct {
	Fecha       string
	Tipo        string
	Descripcion string
	Categoria   string
	Monto       decimal.Decimal
	Owner       string
}

// Writer is an exclusive mutation handle on the ledger. Only one writer
// is active at a time; id assignment and the check-then-remove of a
// delete happen entirely inside it. Commit or Rollback must be called
// exactly once.
type Writer interface {
	Insert(ctx context.Context, create *TransactionCreate) (int64, error)
	FindByID(ctx context.Context, id int64) (*TransactionRecord, error)
	// Delete removes the record with the given id, preserving the order
	// of the remaining records. It reports whether the id existed.
	Delete(ctx context.Context, id int64) (bool, error)
	Commit() error
	Rollback() error
}

// Ledger is the storage interface for the transaction ledger.
// This abstraction allows swapping the implementation (memory, sqlite)
// without changing callers.
type Ledger interface {
	// List returns records in insertion order. An empty owner returns
	// all records; otherwise only records with a matching owner, their
	// relative order preserved.
	List(ctx context.Context, owner string) ([]*TransactionRecord, error)
	FindByID(ctx context.Context, id int64) (*TransactionRecord, error)
	Write(ctx context.Context) (Writer, error)
	Close() error
}
