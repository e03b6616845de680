package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/service"
)

// mockLedgerService is a mock for the handler-facing service interfaces.
type mockLedgerService struct {
	mock.Mock
}

func (m *mockLedgerService) List(ctx context.Context, identity *auth.Identity) ([]service.Transaction, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Transaction), args.Error(1)
}

func (m *mockLedgerService) Add(ctx context.Context, identity *auth.Identity, draft service.TransactionDraft) (int64, error) {
	args := m.Called(ctx, identity, draft)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLedgerService) Delete(ctx context.Context, identity *auth.Identity, id int64) error {
	args := m.Called(ctx, identity, id)
	return args.Error(0)
}

// newListAPI registers the list handler against a humatest API, with the
// guard attached when a token service is given.
func newListAPI(t *testing.T, svc transactionLister, tokens *auth.TokenService) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	if tokens != nil {
		api.UseMiddleware(auth.NewGuard(tokens).Middleware(api))
	}
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func bearer(t *testing.T, tokens *auth.TokenService, identity auth.Identity) string {
	t.Helper()
	tokenString, err := tokens.Issue(identity)
	assert.NoError(t, err)
	return "Authorization: Bearer " + tokenString
}

func TestHTTP_ListTransactions_Success(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	mockSvc := new(mockLedgerService)
	mockSvc.On("List", mock.Anything, mock.MatchedBy(func(identity *auth.Identity) bool {
		return identity != nil && identity.Username == "user" && identity.Role == auth.RoleUser
	})).Return([]service.Transaction{
		{
			ID:          1,
			Fecha:       "2024-01-01",
			Tipo:        "ingreso",
			Descripcion: "salary",
			Categoria:   "job",
			Monto:       decimal.RequireFromString("1000"),
			Owner:       "user",
		},
	}, nil)

	api := newListAPI(t, mockSvc, tokens)
	resp := api.Get("/api/transacciones", bearer(t, tokens, auth.Identity{Username: "user", Role: auth.RoleUser}))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body []Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body, 1)
	assert.Equal(t, int64(1), body[0].ID)
	assert.Equal(t, "1000", body[0].Monto)
	assert.Equal(t, "user", body[0].Owner)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_EmptyLedger(t *testing.T) {
	tokens := auth.NewTokenService("secret")
	mockSvc := new(mockLedgerService)
	mockSvc.On("List", mock.Anything, mock.Anything).Return([]service.Transaction{}, nil)

	api := newListAPI(t, mockSvc, tokens)
	resp := api.Get("/api/transacciones", bearer(t, tokens, auth.Identity{Username: "admin", Role: auth.RoleAdmin}))

	assert.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestHTTP_ListTransactions_NoToken(t *testing.T) {
	mockSvc := new(mockLedgerService)

	api := newListAPI(t, mockSvc, auth.NewTokenService("secret"))
	resp := api.Get("/api/transacciones")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "List")
}

func TestHTTP_ListTransactions_UnauthenticatedVariant(t *testing.T) {
	// No guard installed: the handler passes a nil identity through.
	mockSvc := new(mockLedgerService)
	mockSvc.On("List", mock.Anything, (*auth.Identity)(nil)).Return([]service.Transaction{}, nil)

	api := newListAPI(t, mockSvc, nil)
	resp := api.Get("/api/transacciones")

	assert.Equal(t, http.StatusOK, resp.Code)
	mockSvc.AssertExpectations(t)
}
