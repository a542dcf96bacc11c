// Package auth holds the single shared admin credential pair. Every mutating
// operation re-verifies the pair independently; there are no sessions or
// tokens, and a changed password lives only as long as the process.
package auth

import (
	"sync"

	"github.com/innoquest/hackathon-backend/internal/domain"
)

type Gate struct {
	mu       sync.Mutex
	username string
	password string
}

func NewGate(username, password string) *Gate {
	return &Gate{username: username, password: password}
}

// Verify reports whether both halves of the pair match exactly.
func (g *Gate) Verify(username, password string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return username == g.username && password == g.password
}

// Require is Verify returning the canonical authorization error on mismatch.
func (g *Gate) Require(username, password string) error {
	if !g.Verify(username, password) {
		return domain.ErrUnauthorized
	}
	return nil
}

// ChangePassword swaps the in-memory password after re-verifying the current
// pair. The change does not survive a restart.
func (g *Gate) ChangePassword(username, password, newPassword string) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if username != g.username || password != g.password {
		return domain.ErrUnauthorized
	}
	if newPassword == "" {
		return domain.NewValidationError("New password is required")
	}
	g.password = newPassword
	return nil
}
