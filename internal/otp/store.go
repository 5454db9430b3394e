// Package otp holds the transient email -> one-time code mapping used by the
// auth flow. Entries live in process memory only; codes are short-lived and
// worthless once consumed, so nothing is persisted.
package otp

import (
	"crypto/rand"
	"math/big"
	"sync"
	"time"
)

type entry struct {
	code      string
	expiresAt time.Time
}

type Store struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
}

// NewStore returns a store whose codes expire after ttl. A janitor goroutine
// sweeps expired entries so abandoned requests don't pile up.
func NewStore(ttl time.Duration, cleanupInterval time.Duration) *Store {
	if cleanupInterval == 0 {
		cleanupInterval = time.Minute
	}

	s := &Store{
		entries: make(map[string]entry),
		ttl:     ttl,
	}

	go s.cleanup(cleanupInterval)

	return s
}

// Issue generates a fresh 6 digit code for the email and returns it for
// dispatch. Any previous code for the same email is overwritten, so only the
// latest issued code can ever verify.
func (s *Store) Issue(email string) (string, error) {
	code, err := generateCode()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.entries[email] = entry{
		code:      code,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()

	return code, nil
}

// Verify reports whether a live, unexpired code exists for the email and
// matches exactly. It never mutates the store.
func (s *Store) Verify(email, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[email]
	if !ok || time.Now().After(e.expiresAt) {
		return false
	}

	return e.code == code
}

// Consume drops the entry for the email unconditionally.
func (s *Store) Consume(email string) {
	s.mu.Lock()
	delete(s.entries, email)
	s.mu.Unlock()
}

// VerifyAndConsume is a compare-and-delete under one lock. Two concurrent
// callers presenting the same code can't both succeed, which is what keeps
// the codes one-time.
func (s *Store) VerifyAndConsume(email, code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[email]
	if !ok || time.Now().After(e.expiresAt) {
		return false
	}

	if e.code != code {
		return false
	}

	delete(s.entries, email)
	return true
}

func (s *Store) cleanup(interval time.Duration) {
	for {
		time.Sleep(interval)

		s.mu.Lock()
		now := time.Now()
		for email, e := range s.entries {
			if now.After(e.expiresAt) {
				delete(s.entries, email)
			}
		}
		s.mu.Unlock()
	}
}

// generateCode draws uniformly from [100000, 999999] so codes never need
// zero padding.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}

	return big.NewInt(0).Add(n, big.NewInt(100000)).String(), nil
}
