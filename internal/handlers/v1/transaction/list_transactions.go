package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/logging"
	"github.com/carson-networks/ledger-server/internal/service"
)

// ListTransactionsOutput is the Huma output for listing transactions.
// The body is the bare array, not wrapped in an envelope.
type ListTransactionsOutput struct {
	Body []Transaction
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	List(ctx context.Context, identity *auth.Identity) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /api/transacciones.
type ListTransactionsHandler struct {
	Ledger transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{Ledger: svc}
}

// Register registers the list endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/api/transacciones",
		Summary:     "List transactions",
		Description: "Returns transactions in insertion order. Admins see every record, users only their own.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *ListTransactionsHandler) handle(ctx context.Context, _ *struct{}) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)
	identity := auth.IdentityFromContext(ctx)

	transactions, err := h.Ledger.List(ctx, identity)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to list transactions", err)
	}

	if logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	body := make([]Transaction, len(transactions))
	for i, tx := range transactions {
		body[i] = fromService(tx)
	}

	return &ListTransactionsOutput{Body: body}, nil
}
