package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/ledger-server/internal/storage"
)

func newTestLedger(t *testing.T) *Ledger {
	t.Helper()
	l, err := NewLedger(filepath.Join(t.TempDir(), "ledger.db"))
	assert.NoError(t, err)
	t.Cleanup(func() { _ = l.Close() })
	return l
}

func insert(t *testing.T, l *Ledger, descripcion, monto, owner string) int64 {
	t.Helper()
	w, err := l.Write(context.Background())
	assert.NoError(t, err)
	id, err := w.Insert(context.Background(), &storage.TransactionCreate{
		Fecha:       "2024-01-01",
		Tipo:        "ingreso",
		Descripcion: descripcion,
		Categoria:   "job",
		Monto:       decimal.RequireFromString(monto),
		Owner:       owner,
	})
	assert.NoError(t, err)
	assert.NoError(t, w.Commit())
	return id
}

func remove(t *testing.T, l *Ledger, id int64) bool {
	t.Helper()
	w, err := l.Write(context.Background())
	assert.NoError(t, err)
	found, err := w.Delete(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, w.Commit())
	return found
}

func TestInsert_AssignsMonotonicIDs(t *testing.T) {
	l := newTestLedger(t)

	assert.Equal(t, int64(1), insert(t, l, "first", "10", ""))
	assert.Equal(t, int64(2), insert(t, l, "second", "20", ""))

	// AUTOINCREMENT: deleting the newest row must not free its id.
	assert.True(t, remove(t, l, 2))
	assert.Equal(t, int64(3), insert(t, l, "third", "30", ""))
}

func TestList_OrderAndOwnerFilter(t *testing.T) {
	l := newTestLedger(t)

	insert(t, l, "a", "1", "user")
	insert(t, l, "b", "2", "admin")
	insert(t, l, "c", "3", "user")

	all, err := l.List(context.Background(), "")
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, []string{"a", "b", "c"}, descriptions(all))

	mine, err := l.List(context.Background(), "user")
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "c"}, descriptions(mine))
}

func TestMonto_ExactDecimalRoundTrip(t *testing.T) {
	l := newTestLedger(t)
	id := insert(t, l, "precise", "0.10", "")

	record, err := l.FindByID(context.Background(), id)
	assert.NoError(t, err)
	assert.NotNil(t, record)
	assert.Equal(t, "0.1", record.Monto.String())
	assert.True(t, record.Monto.Equal(decimal.RequireFromString("0.10")))
}

func TestFindByID_Missing(t *testing.T) {
	l := newTestLedger(t)

	record, err := l.FindByID(context.Background(), 7)
	assert.NoError(t, err)
	assert.Nil(t, record)
}

func TestWriter_RollbackDiscardsInsert(t *testing.T) {
	l := newTestLedger(t)

	w, err := l.Write(context.Background())
	assert.NoError(t, err)
	_, err = w.Insert(context.Background(), &storage.TransactionCreate{
		Fecha: "2024-01-01", Tipo: "gasto", Descripcion: "oops",
		Categoria: "general", Monto: decimal.RequireFromString("5"),
	})
	assert.NoError(t, err)
	assert.NoError(t, w.Rollback())

	rows, err := l.List(context.Background(), "")
	assert.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReopen_KeepsRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.db")

	l, err := NewLedger(path)
	assert.NoError(t, err)
	insert(t, l, "persisted", "99.99", "user")
	assert.NoError(t, l.Close())

	reopened, err := NewLedger(path)
	assert.NoError(t, err)
	defer reopened.Close()

	rows, err := reopened.List(context.Background(), "")
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "persisted", rows[0].Descripcion)
}

func descriptions(rows []*storage.TransactionRecord) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.Descripcion
	}
	return out
}
