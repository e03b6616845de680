package transaction

import (
	"github.com/carson-networks/ledger-server/internal/service"
)

// Transaction is the API response model for a ledger record.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID          int64  `json:"id" doc:"Server-assigned id, 1-based and never reused"`
	Fecha       string `json:"fecha" doc:"Transaction date"`
	Tipo        string `json:"tipo" doc:"Transaction type: ingreso or gasto"`
	Descripcion string `json:"descripcion" doc:"Free-form description"`
	Categoria   string `json:"categoria" doc:"Category label"`
	Monto       string `json:"monto" doc:"Decimal amount"`
	Owner       string `json:"owner,omitempty" doc:"Owning username, absent on the unauthenticated surface"`
}

func fromService(tx service.Transaction) Transaction {
	return Transaction{
		ID:          tx.ID,
		Fecha:       tx.Fecha,
		Tipo:        tx.Tipo,
		Descripcion: tx.Descripcion,
		Categoria:   tx.Categoria,
		Monto:       tx.Monto.String(),
		Owner:       tx.Owner,
	}
}
