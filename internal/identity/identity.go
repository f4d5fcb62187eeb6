// Package identity resolves bearer credentials issued by the external
// identity provider into local user ids.
//
// Session management and token issuance are the provider's concern; this
// package only verifies what the provider signed.
package identity

import (
	"context"
	"errors"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrNoCredentials      = errors.New("you must provide a bearer token in the Authorization header")
	ErrInvalidCredentials = errors.New("the provided bearer token is invalid")
)

// Resolver resolves a bearer token to the id of the user it was
// issued for.
type Resolver interface {
	Resolve(ctx context.Context, token string) (string, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(ctx context.Context, token string) (string, error)

func (f ResolverFunc) Resolve(ctx context.Context, token string) (string, error) {
	return f(ctx, token)
}

// JWTResolver verifies session tokens signed by the identity provider
// with a shared secret. The subject claim is the user id.
type JWTResolver struct {
	Secret []byte
}

func (r JWTResolver) Resolve(_ context.Context, token string) (string, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return r.Secret, nil
	})
	if err != nil {
		return "", ErrInvalidCredentials
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil || subject == "" {
		return "", ErrInvalidCredentials
	}

	return subject, nil
}
