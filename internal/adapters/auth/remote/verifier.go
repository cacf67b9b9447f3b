package remote

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"edd-calculator/internal/platform/httpclient"
	"edd-calculator/internal/ports/auth"
)

// Verifier implementa auth.Verifier contra un endpoint HTTP externo
// (AUTH_VERIFY_URL). Contrato: POST {"token": "..."} -> 200 {"user_id", "email"}.
type Verifier struct {
	client *httpclient.Client
	path   string
}

type Options struct {
	VerifyURL string
	Timeout   time.Duration
	Transport http.RoundTripper
}

func NewVerifier(opts Options) (*Verifier, error) {
	raw := strings.TrimSpace(opts.VerifyURL)
	if raw == "" {
		return nil, errors.New("remote auth: verify url required")
	}
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("remote auth: invalid verify url %q", raw)
	}

	// host como BaseURL, path+query relativos al cliente
	c, err := httpclient.New(httpclient.Options{
		BaseURL:   u.Scheme + "://" + u.Host,
		Timeout:   opts.Timeout,
		Transport: opts.Transport,
	})
	if err != nil {
		return nil, err
	}
	return &Verifier{client: c, path: u.RequestURI()}, nil
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

func (v *Verifier) Verify(ctx context.Context, token string) (auth.Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, auth.ErrInvalidToken
	}

	var out verifyResponse
	err := v.client.DoJSON(ctx, http.MethodPost, v.path, map[string]string{
		"Authorization": "Bearer " + token,
	}, verifyRequest{Token: token}, &out)
	if err != nil {
		var se *httpclient.StatusError
		if errors.As(err, &se) && (se.StatusCode == http.StatusUnauthorized || se.StatusCode == http.StatusForbidden) {
			return auth.Claims{}, auth.ErrInvalidToken
		}
		return auth.Claims{}, fmt.Errorf("remote auth: %w", err)
	}

	uid := strings.TrimSpace(out.UserID)
	if uid == "" {
		return auth.Claims{}, errors.New("remote auth: response missing user_id")
	}
	return auth.Claims{UserID: uid, Email: strings.TrimSpace(out.Email)}, nil
}
