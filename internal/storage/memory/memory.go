package memory

import (
	"context"
	"sync"

	"github.com/carson-networks/ledger-server/internal/storage"
)

var _ storage.Ledger = (*Ledger)(nil)

// Ledger is the in-memory ledger store: an ordered slice of records plus
// a monotonic id counter, guarded by a single RWMutex. Ids start at 1 and
// are never reused, even after deletes.
type Ledger struct {
	mu      sync.RWMutex
	records []*storage.TransactionRecord
	nextID  int64
}

// NewLedger creates an empty in-memory ledger.
func NewLedger() *Ledger {
	return &Ledger{nextID: 1}
}

// List returns records in insertion order, filtered by owner when set.
func (l *Ledger) List(_ context.Context, owner string) ([]*storage.TransactionRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]*storage.TransactionRecord, 0, len(l.records))
	for _, r := range l.records {
		if owner != "" && r.Owner != owner {
			continue
		}
		copied := *r
		out = append(out, &copied)
	}
	return out, nil
}

// FindByID returns the record with the given id, or nil if absent.
func (l *Ledger) FindByID(_ context.Context, id int64) (*storage.TransactionRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.findLocked(id), nil
}

func (l *Ledger) findLocked(id int64) *storage.TransactionRecord {
	for _, r := range l.records {
		if r.ID == id {
			copied := *r
			return &copied
		}
	}
	return nil
}

// Write takes the write lock and returns a writer bound to it. The lock
// is held until Commit or Rollback, so the sequence and counter cannot be
// observed mid-mutation.
func (l *Ledger) Write(_ context.Context) (storage.Writer, error) {
	l.mu.Lock()
	return &writer{ledger: l}, nil
}

// Close releases nothing; state lives for the process lifetime.
func (l *Ledger) Close() error { return nil }

type writer struct {
	ledger *Ledger
	done   bool
}

func (w *writer) Insert(_ context.Context, create *storage.TransactionCreate) (int64, error) {
	l := w.ledger
	record := &storage.TransactionRecord{
		ID:          l.nextID,
		Fecha:       create.Fecha,
		Tipo:        create.Tipo,
		Descripcion: create.Descripcion,
		Categoria:   create.Categoria,
		Monto:       create.Monto,
		Owner:       create.Owner,
	}
	l.nextID++
	l.records = append(l.records, record)
	return record.ID, nil
}

func (w *writer) FindByID(_ context.Context, id int64) (*storage.TransactionRecord, error) {
	return w.ledger.findLocked(id), nil
}

func (w *writer) Delete(_ context.Context, id int64) (bool, error) {
	l := w.ledger
	for i, r := range l.records {
		if r.ID == id {
			l.records = append(l.records[:i], l.records[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

// Commit releases the write lock. Mutations applied through the writer
// are already visible; there is nothing to flush.
func (w *writer) Commit() error {
	return w.release()
}

// Rollback releases the write lock. Each action performs a single
// mutation as its last step, so a rolled-back writer has changed nothing.
func (w *writer) Rollback() error {
	return w.release()
}

func (w *writer) release() error {
	if w.done {
		return nil
	}
	w.done = true
	w.ledger.mu.Unlock()
	return nil
}
