// Package token implements the login endpoint: form-encoded credentials
// in, bearer token out.
package token

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carson-networks/ledger-server/internal/auth"
	"github.com/carson-networks/ledger-server/internal/logging"
)

// LoginResponse is the body returned on successful login.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Handler handles POST /token.
type Handler struct {
	Credentials *auth.CredentialStore
	Tokens      *auth.TokenService
}

// NewHandler creates a new login Handler.
func NewHandler(credentials *auth.CredentialStore, tokens *auth.TokenService) Handler {
	return Handler{Credentials: credentials, Tokens: tokens}
}

// Handler authenticates the form credentials and issues a token over
// {sub, role}. Unknown user and wrong password are indistinguishable to
// the caller: both are a 400.
func (h *Handler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return errors.New("login: method not POST")
	}

	if err := req.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return err
	}

	username := req.PostFormValue("username")
	password := req.PostFormValue("password")
	logData.AddData("username", username)

	credential, err := h.Credentials.Authenticate(username, password)
	if err != nil {
		http.Error(w, "credenciales inválidas", http.StatusBadRequest)
		return err
	}

	tokenString, err := h.Tokens.Issue(auth.Identity{
		Username: credential.Username,
		Role:     credential.Role,
	})
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(LoginResponse{
		AccessToken: tokenString,
		TokenType:   "bearer",
	})
}
