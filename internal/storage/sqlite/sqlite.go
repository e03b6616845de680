package sqlite

import (
	"context"
	"database/sql"

	"github.com/shopspring/decimal"

	// Import sqlite driver
	_ "modernc.org/sqlite"

	"github.com/carson-networks/ledger-server/internal/storage"
)

var _ storage.Ledger = (*Ledger)(nil)

// Ledger is the sqlite-backed ledger store. It fills the persistence seam
// behind storage.Ledger: same visible semantics as the memory store, but
// records survive a restart. AUTOINCREMENT keeps ids monotonic and never
// reused after deletes; monto is stored as TEXT so decimals stay exact.
type Ledger struct {
	conn *sql.DB
}

// NewLedger opens (or creates) the database at path and runs migrations.
func NewLedger(path string) (*Ledger, error) {
	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if err := conn.Ping(); err != nil {
		return nil, err
	}

	l := &Ledger{conn: conn}
	if err := l.migrate(); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Ledger) migrate() error {
	_, err := l.conn.Exec(`CREATE TABLE IF NOT EXISTS transacciones (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		fecha TEXT NOT NULL,
		tipo TEXT NOT NULL,
		descripcion TEXT NOT NULL,
		categoria TEXT NOT NULL,
		monto TEXT NOT NULL,
		owner TEXT NOT NULL DEFAULT ''
	)`)
	return err
}

const selectColumns = "SELECT id, fecha, tipo, descripcion, categoria, monto, owner FROM transacciones"

// List returns records ordered by id, which is insertion order.
func (l *Ledger) List(ctx context.Context, owner string) ([]*storage.TransactionRecord, error) {
	query := selectColumns + " ORDER BY id"
	args := []any{}
	if owner != "" {
		query = selectColumns + " WHERE owner = ? ORDER BY id"
		args = append(args, owner)
	}

	rows, err := l.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*storage.TransactionRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// FindByID returns the record with the given id, or nil if absent.
func (l *Ledger) FindByID(ctx context.Context, id int64) (*storage.TransactionRecord, error) {
	return findByID(ctx, l.conn, id)
}

// Write starts a transaction and returns a writer bound to it.
func (l *Ledger) Write(ctx context.Context) (storage.Writer, error) {
	tx, err := l.conn.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &writer{tx: tx}, nil
}

// Close closes the underlying database.
func (l *Ledger) Close() error {
	return l.conn.Close()
}

type querier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func findByID(ctx context.Context, q querier, id int64) (*storage.TransactionRecord, error) {
	row := q.QueryRowContext(ctx, selectColumns+" WHERE id = ?", id)
	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return record, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(s scanner) (*storage.TransactionRecord, error) {
	var r storage.TransactionRecord
	var monto string
	if err := s.Scan(&r.ID, &r.Fecha, &r.Tipo, &r.Descripcion, &r.Categoria, &monto, &r.Owner); err != nil {
		return nil, err
	}
	parsed, err := decimal.NewFromString(monto)
	if err != nil {
		return nil, err
	}
	r.Monto = parsed
	return &r, nil
}

type writer struct {
	tx *sql.Tx
}

func (w *writer) Insert(ctx context.Context, create *storage.TransactionCreate) (int64, error) {
	res, err := w.tx.ExecContext(ctx,
		"INSERT INTO transacciones (fecha, tipo, descripcion, categoria, monto, owner) VALUES (?, ?, ?, ?, ?, ?)",
		create.Fecha, create.Tipo, create.Descripcion, create.Categoria, create.Monto.String(), create.Owner,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (w *writer) FindByID(ctx context.Context, id int64) (*storage.TransactionRecord, error) {
	return findByID(ctx, w.tx, id)
}

func (w *writer) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := w.tx.ExecContext(ctx, "DELETE FROM transacciones WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

func (w *writer) Commit() error {
	return w.tx.Commit()
}

func (w *writer) Rollback() error {
	return w.tx.Rollback()
}
