package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/service"
)

// CreateTransactionBody is the request body for creating a transaction.
// Clients may send id and owner but both are overwritten server-side.
type CreateTransactionBody struct {
	ID          int64  `json:"id,omitempty" doc:"Ignored; the server assigns the id"`
	Fecha       string `json:"fecha" required:"true" doc:"Transaction date"`
	Tipo        string `json:"tipo" required:"true" enum:"ingreso,gasto" doc:"Transaction type"`
	Descripcion string `json:"descripcion" required:"true" doc:"Free-form description"`
	Categoria   string `json:"categoria" required:"true" doc:"Category label"`
	Monto       string `json:"monto" required:"true" doc:"Decimal amount (e.g. '1000' or '12.50')"`
	Owner       string `json:"owner,omitempty" doc:"Ignored; the owner is the authenticated caller"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionResponse is the response body for creating a transaction.
type CreateTransactionResponse struct {
	Message string `json:"message" doc:"Confirmation message"`
	ID      int64  `json:"id" doc:"Assigned transaction id"`
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body CreateTransactionResponse
}

// transactionAdder is the interface for appending transactions.
type transactionAdder interface {
	Add(ctx context.Context, identity *auth.Identity, draft service.TransactionDraft) (int64, error)
}

// CreateTransactionHandler handles POST /api/transacciones.
type CreateTransactionHandler struct {
	Ledger transactionAdder
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionAdder) *CreateTransactionHandler {
	return &CreateTransactionHandler{Ledger: svc}
}

// Register registers the create endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "create-transaction",
		Method:      http.MethodPost,
		Path:        "/api/transacciones",
		Summary:     "Create transaction",
		Description: "Appends a transaction to the ledger and returns its assigned id.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseCreateTransactionInput validates the body fields into a draft.
func parseCreateTransactionInput(input *CreateTransactionInput) (service.TransactionDraft, error) {
	monto, err := decimal.NewFromString(input.Body.Monto)
	if err != nil {
		return service.TransactionDraft{}, huma.NewError(http.StatusBadRequest, "invalid monto", err)
	}

	return service.TransactionDraft{
		Fecha:       input.Body.Fecha,
		Tipo:        input.Body.Tipo,
		Descripcion: input.Body.Descripcion,
		Categoria:   input.Body.Categoria,
		Monto:       monto,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	draft, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	id, err := h.Ledger.Add(ctx, auth.IdentityFromContext(ctx), draft)
	if err != nil {
		return nil, huma.NewError(http.StatusInternalServerError, "failed to create transaction", err)
	}

	return &CreateTransactionOutput{Body: CreateTransactionResponse{
		Message: "Transacción agregada",
		ID:      id,
	}}, nil
}
