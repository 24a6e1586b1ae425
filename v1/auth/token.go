package auth

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/sync/singleflight"
)

// refreshMargin is how long before expiry a cached token is replaced.
const refreshMargin = 60 * time.Second

// token is an access token and its expiry.
type token struct {
	value     string
	expiresAt time.Time
}

func (t token) valid(now time.Time) bool {
	return t.value != "" && now.Add(refreshMargin).Before(t.expiresAt)
}

// tokenManager caches a token and serializes refreshes.
type tokenManager struct {
	fetch func(ctx context.Context) (token, error)
	now   func() time.Time

	mu    sync.RWMutex
	cache token
	group singleflight.Group
}

func newTokenManager(fetch func(ctx context.Context) (token, error)) *tokenManager {
	return &tokenManager{fetch: fetch, now: time.Now}
}

// Token returns a cached token or fetches a new one.
func (m *tokenManager) Token(ctx context.Context) (string, error) {
	m.mu.RLock()
	cached := m.cache
	m.mu.RUnlock()
	if cached.valid(m.now()) {
		return cached.value, nil
	}

	// The shared fetch outlives any single caller; the HTTP client timeout
	// bounds it. Each caller stops waiting when its own ctx is done.
	ch := m.group.DoChan("token", func() (interface{}, error) {
		t, err := m.fetch(context.WithoutCancel(ctx))
		if err != nil {
			return nil, err
		}
		m.mu.Lock()
		m.cache = t
		m.mu.Unlock()
		return t.value, nil
	})

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		return res.Val.(string), nil
	}
}

func (m *tokenManager) authenticate(ctx context.Context, req *http.Request) error {
	tok, err := m.Token(ctx)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+tok)
	return nil
}

// expiryFromJWT reads the exp claim of a JWT without verifying it.
// Tokens that cannot be parsed expire after fallback.
func expiryFromJWT(raw string, now time.Time, fallback time.Duration) time.Time {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, &claims); err == nil && claims.ExpiresAt != nil {
		return claims.ExpiresAt.Time
	}
	return now.Add(fallback)
}
