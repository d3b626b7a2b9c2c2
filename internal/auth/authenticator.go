package auth

import "strings"

const bearerPrefix = "Bearer "

type verifier interface {
	Verify(token string) (*Claims, error)
}

// Authenticator turns an Authorization header into an optional Identity.
type Authenticator struct {
	tokens verifier
}

func NewAuthenticator(tokens *TokenService) *Authenticator {
	return &Authenticator{tokens: tokens}
}

// Authenticate yields a nil identity for a missing, malformed, expired or
// forged token. The error only explains why, for logging; callers must not
// reject the request on it.
func (a *Authenticator) Authenticate(header string) (*Identity, error) {
	tok, ok := strings.CutPrefix(header, bearerPrefix)
	if !ok {
		return nil, nil
	}
	tok = strings.TrimSpace(tok)
	if tok == "" {
		return nil, nil
	}
	c, err := a.tokens.Verify(tok)
	if err != nil {
		return nil, err
	}
	return &Identity{ID: c.UserID, Email: c.Email, Role: c.Role}, nil
}
