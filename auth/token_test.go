package auth

import (
	"context"
	stderrors "errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	claims := jwt.MapClaims{"sub": "test"}
	if !exp.IsZero() {
		claims["exp"] = exp.Unix()
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestFromSourceFetchesPerAttempt(t *testing.T) {
	var calls atomic.Int64
	src := TokenSourceFunc(func(context.Context) (string, error) {
		calls.Add(1)
		return "tok", nil
	})

	adapter := FromSource(src)
	for i := 0; i < 3; i++ {
		req, err := adapter.Adapt(context.Background(), newReq())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got := req.Headers.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("expected bearer header, got %q", got)
		}
	}
	if calls.Load() != 3 {
		t.Errorf("expected the source consulted per attempt, got %d calls", calls.Load())
	}
}

func TestFromSourceError(t *testing.T) {
	srcErr := stderrors.New("token endpoint down")
	adapter := FromSource(TokenSourceFunc(func(context.Context) (string, error) {
		return "", srcErr
	}))

	_, err := adapter.Adapt(context.Background(), newReq())
	if !stderrors.Is(err, srcErr) {
		t.Errorf("expected source error surfaced, got %v", err)
	}
}

func TestRefreshingJWTCachesUntilExpiry(t *testing.T) {
	var refreshes atomic.Int64
	token := signedToken(t, time.Now().Add(time.Hour))

	src := NewRefreshingJWT(func(context.Context) (string, error) {
		refreshes.Add(1)
		return token, nil
	}, 30*time.Second)

	for i := 0; i < 5; i++ {
		got, err := src.Token(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != token {
			t.Errorf("unexpected token %q", got)
		}
	}
	if refreshes.Load() != 1 {
		t.Errorf("expected a single refresh for an unexpired token, got %d", refreshes.Load())
	}
}

func TestRefreshingJWTRefreshesExpiredToken(t *testing.T) {
	var refreshes atomic.Int64
	expired := signedToken(t, time.Now().Add(-time.Minute))

	src := NewRefreshingJWT(func(context.Context) (string, error) {
		refreshes.Add(1)
		return expired, nil
	}, 0)

	for i := 0; i < 3; i++ {
		if _, err := src.Token(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if refreshes.Load() != 3 {
		t.Errorf("expected refresh on every call for an expired token, got %d", refreshes.Load())
	}
}

func TestRefreshingJWTNoExpClaim(t *testing.T) {
	var refreshes atomic.Int64
	token := signedToken(t, time.Time{})

	src := NewRefreshingJWT(func(context.Context) (string, error) {
		refreshes.Add(1)
		return token, nil
	}, 0)

	for i := 0; i < 3; i++ {
		if _, err := src.Token(context.Background()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	// No exp claim: cache indefinitely.
	if refreshes.Load() != 1 {
		t.Errorf("expected a single refresh, got %d", refreshes.Load())
	}
}

func TestRefreshingJWTMalformedToken(t *testing.T) {
	src := NewRefreshingJWT(func(context.Context) (string, error) {
		return "not-a-jwt", nil
	}, 0)

	_, err := src.Token(context.Background())
	if err == nil || !strings.Contains(err.Error(), "parse token") {
		t.Errorf("expected parse error, got %v", err)
	}
}
