package transaction

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/service"
)

// DeleteTransactionInput is the Huma input for deleting a transaction.
type DeleteTransactionInput struct {
	ID int64 `path:"id" doc:"Transaction id"`
}

// DeleteTransactionResponse is the response body for deleting a transaction.
type DeleteTransactionResponse struct {
	Message string `json:"message" doc:"Confirmation message"`
}

// DeleteTransactionOutput is the Huma output for deleting a transaction.
type DeleteTransactionOutput struct {
	Body DeleteTransactionResponse
}

// transactionDeleter is the interface for removing transactions.
type transactionDeleter interface {
	Delete(ctx context.Context, identity *auth.Identity, id int64) error
}

// DeleteTransactionHandler handles DELETE /api/transacciones/{id}.
type DeleteTransactionHandler struct {
	Ledger transactionDeleter
}

// NewDeleteTransactionHandler creates a new DeleteTransactionHandler.
func NewDeleteTransactionHandler(svc transactionDeleter) *DeleteTransactionHandler {
	return &DeleteTransactionHandler{Ledger: svc}
}

// Register registers the delete endpoint with the Huma API.
func (h *DeleteTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-transaction",
		Method:      http.MethodDelete,
		Path:        "/api/transacciones/{id}",
		Summary:     "Delete transaction",
		Description: "Removes a transaction. Non-admins may only remove their own records.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *DeleteTransactionHandler) handle(ctx context.Context, input *DeleteTransactionInput) (*DeleteTransactionOutput, error) {
	err := h.Ledger.Delete(ctx, auth.IdentityFromContext(ctx), input.ID)
	switch {
	case errors.Is(err, service.ErrNotFound):
		return nil, huma.NewError(http.StatusNotFound, "transaction not found")
	case errors.Is(err, service.ErrForbidden):
		return nil, huma.NewError(http.StatusForbidden, "not allowed to delete this transaction")
	case err != nil:
		return nil, huma.NewError(http.StatusInternalServerError, "failed to delete transaction", err)
	}

	return &DeleteTransactionOutput{Body: DeleteTransactionResponse{
		Message: "Transacción eliminada",
	}}, nil
}
