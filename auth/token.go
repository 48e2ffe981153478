package auth

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/megastudymobile/networkkit/httpclient"
	"github.com/megastudymobile/networkkit/transport"
)

// TokenSource supplies a bearer token. Implementations may suspend (e.g. to
// call a token endpoint) and must be safe for concurrent use.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenSourceFunc adapts a function to the TokenSource interface.
type TokenSourceFunc func(ctx context.Context) (string, error)

// Token implements TokenSource.
func (f TokenSourceFunc) Token(ctx context.Context) (string, error) {
	return f(ctx)
}

// StaticToken returns a source that always yields the same token.
func StaticToken(token string) TokenSource {
	return TokenSourceFunc(func(context.Context) (string, error) {
		return token, nil
	})
}

// FromSource returns an adapter that fetches a token from the source and
// sets it as a bearer credential. The source is consulted on every attempt,
// so a retried request picks up a refreshed token.
func FromSource(src TokenSource) httpclient.Adapter {
	return httpclient.AdapterFunc(func(ctx context.Context, req *transport.Request) (*transport.Request, error) {
		token, err := src.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("auth: fetch token: %w", err)
		}
		req.Headers.Set("Authorization", "Bearer "+token)
		return req, nil
	})
}

// RefreshingJWT is a TokenSource that caches a JWT and refreshes it through
// the supplied function once the cached token is within leeway of its exp
// claim. Tokens without an exp claim are cached indefinitely.
type RefreshingJWT struct {
	refresh func(ctx context.Context) (string, error)
	leeway  time.Duration

	mu     sync.Mutex
	token  string
	expiry time.Time
}

// NewRefreshingJWT creates a refreshing token source. refresh is called to
// obtain a new token whenever the cached one is missing or about to expire.
func NewRefreshingJWT(refresh func(ctx context.Context) (string, error), leeway time.Duration) *RefreshingJWT {
	return &RefreshingJWT{refresh: refresh, leeway: leeway}
}

// Token implements TokenSource.
func (s *RefreshingJWT) Token(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token != "" && (s.expiry.IsZero() || time.Now().Before(s.expiry.Add(-s.leeway))) {
		return s.token, nil
	}

	token, err := s.refresh(ctx)
	if err != nil {
		return "", fmt.Errorf("auth: refresh token: %w", err)
	}

	expiry, err := tokenExpiry(token)
	if err != nil {
		return "", err
	}

	s.token = token
	s.expiry = expiry
	return token, nil
}

// tokenExpiry reads the exp claim without verifying the signature; the
// source only schedules refreshes, it does not authenticate the token.
func tokenExpiry(token string) (time.Time, error) {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}, fmt.Errorf("auth: parse token: %w", err)
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil {
		return time.Time{}, fmt.Errorf("auth: read exp claim: %w", err)
	}
	if exp == nil {
		return time.Time{}, nil
	}
	return exp.Time, nil
}
