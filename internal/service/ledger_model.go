package service

import (
	"github.com/shopspring/decimal"
)

// Transaction represents a ledger record in the service layer.
type Transaction struct {
	ID          int64
	Fecha       string
	Tipo        string
	Descripcion string
	Categoria   string
	Monto       decimal.Decimal
	Owner       string
}

// TransactionDraft is the client-supplied part of a new transaction.
// Id and owner never come from the client: the store assigns the id and
// the service stamps the owner from the authenticated identity.
type TransactionDraft struct {
	Fecha       string
	Tipo        string
	Descripcion string
	Categoria   string
	Monto       decimal.Decimal
}
