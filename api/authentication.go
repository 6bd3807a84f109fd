package api

import "crypto/subtle"

// Authentication defines an interface for authentication methods.
type Authentication interface {
	// Authenticate checks if the provided token is valid.
	Authenticate(token string) bool
}

// SecretBasedAuthentication implements the Authentication interface by comparing tokens with a
// shared secret.
type SecretBasedAuthentication struct {
	secret []byte
}

// NewSecretBasedAuthentication ...
func NewSecretBasedAuthentication(secret string) *SecretBasedAuthentication {
	return &SecretBasedAuthentication{secret: []byte(secret)}
}

// Authenticate ...
func (a *SecretBasedAuthentication) Authenticate(token string) bool {
	return subtle.ConstantTimeCompare(a.secret, []byte(token)) == 1
}
