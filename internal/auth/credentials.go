package auth

import "errors"

// ErrInvalidCredentials is returned when the username is unknown or the
// password does not match.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credential is a single entry of the static credential table.
type Credential struct {
	Username string
	Password string
	Role     Role
}

// CredentialStore is the read-only username -> credential mapping, fixed
// at startup. There is deliberately no way to add or remove entries at
// runtime.
type CredentialStore struct {
	byUsername map[string]Credential
}

// NewCredentialStore builds the store from the configured credential set.
func NewCredentialStore(credentials []Credential) *CredentialStore {
	byUsername := make(map[string]Credential, len(credentials))
	for _, c := range credentials {
		byUsername[c.Username] = c
	}
	return &CredentialStore{byUsername: byUsername}
}

// Lookup returns the credential for username, if present.
func (s *CredentialStore) Lookup(username string) (Credential, bool) {
	c, ok := s.byUsername[username]
	return c, ok
}

// Authenticate checks username/password and returns the matching
// credential. The comparison is an exact plaintext match: this is a demo
// credential table, password hashing is out of scope.
func (s *CredentialStore) Authenticate(username, password string) (Credential, error) {
	c, ok := s.byUsername[username]
	if !ok || c.Password != password {
		return Credential{}, ErrInvalidCredentials
	}
	return c, nil
}
