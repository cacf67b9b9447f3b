package auth

import (
	"context"
	"errors"
)

var ErrInvalidToken = errors.New("invalid token")

// Claims es lo mínimo que necesitamos del token: quién hizo el cálculo.
type Claims struct {
	UserID string
	Email  string
}

// Verifier valida un bearer token. Implementaciones: adapters/auth/remote.
type Verifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}

// VerifierFunc permite usar una función como Verifier (tests, wiring simple).
type VerifierFunc func(ctx context.Context, token string) (Claims, error)

func (f VerifierFunc) Verify(ctx context.Context, token string) (Claims, error) {
	return f(ctx, token)
}
