package store

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/yourname/wearmock/internal"
)

type tokenEntry struct {
	userID    string
	expiresAt time.Time
}

// CreateToken mints an opaque random secret for the user with an
// absolute expiry of now + ttl. Multiple tokens per user may coexist.
func (s *Store) CreateToken(userID string, ttl time.Duration) (string, error) {
	if _, err := s.GetUser(userID); err != nil {
		return "", err
	}

	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", internal.NewAppError(500, "store: failed to generate token: "+err.Error())
	}
	token := hex.EncodeToString(buf)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[token] = tokenEntry{userID: userID, expiresAt: s.now().Add(ttl)}
	return token, nil
}

// ValidateToken returns the owning user id if the token exists and has
// not expired. An expired entry is deleted as a side effect of the
// lookup (read-triggered eviction); there is no background sweeper.
// Callers re-run this on every authenticated request.
func (s *Store) ValidateToken(token string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.tokens[token]
	if !ok {
		return "", internal.AuthenticationError("store: invalid token")
	}
	// Valid up to and including the expiry instant, so a TTL of zero
	// still validates at creation time.
	if s.now().After(entry.expiresAt) {
		delete(s.tokens, token)
		return "", internal.AuthenticationError("store: token expired")
	}
	return entry.userID, nil
}
