// Package session holds the single active demo identity. Switching role swaps
// the identity wholesale and persists the choice so a restart comes back in
// the same role.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"hrms/internal/domain/auth"
	"hrms/internal/domain/registry"
	"hrms/internal/platform/statefile"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// DefaultRole is the identity the demo boots into when no role was persisted.
const DefaultRole = registry.RoleHRManager

type Manager struct {
	mu          sync.RWMutex
	current     registry.Identity
	subscribers []func(registry.Identity)

	state        *statefile.Store
	passwordHash string
	loginDelay   time.Duration
	logger       zerolog.Logger
}

// New restores the last selected role from the state file, falling back to
// the default demo role.
func New(state *statefile.Store, passwordHash string, loginDelay time.Duration, logger zerolog.Logger) *Manager {
	m := &Manager{
		state:        state,
		passwordHash: passwordHash,
		loginDelay:   loginDelay,
		logger:       logger,
	}

	role := DefaultRole
	if saved, err := state.LastSelectedRole(); err == nil && saved != "" {
		if parsed, err := registry.ParseRole(saved); err == nil {
			role = parsed
		}
	} else if err != nil {
		logger.Warn().Err(err).Msg("state file unreadable, using default role")
	}

	identity, _ := registry.ResolveIdentity(role)
	m.current = identity
	return m
}

// Current returns the active identity.
func (m *Manager) Current() registry.Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Switch atomically replaces the active identity with the one bound to the
// given role, persists the choice and notifies subscribers.
func (m *Manager) Switch(role registry.Role) (registry.Identity, error) {
	identity, err := registry.ResolveIdentity(role)
	if err != nil {
		return registry.Identity{}, err
	}

	m.mu.Lock()
	m.current = identity
	subscribers := make([]func(registry.Identity), len(m.subscribers))
	copy(subscribers, m.subscribers)
	m.mu.Unlock()

	if err := m.state.SaveLastSelectedRole(string(role)); err != nil {
		m.logger.Warn().Err(err).Msg("persisting last selected role failed")
	}
	for _, fn := range subscribers {
		fn(identity)
	}
	return identity, nil
}

// OnChange registers a callback fired on every identity switch.
func (m *Manager) OnChange(fn func(registry.Identity)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.subscribers = append(m.subscribers, fn)
}

// Login resolves a demo identity by email after an artificial delay. The
// delay imitates a slow identity provider and respects cancellation.
func (m *Manager) Login(ctx context.Context, email, password string) (registry.Identity, error) {
	if m.loginDelay > 0 {
		timer := time.NewTimer(m.loginDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return registry.Identity{}, ctx.Err()
		case <-timer.C:
		}
	}

	identity, ok := registry.FindByEmail(email)
	if !ok {
		return registry.Identity{}, ErrInvalidCredentials
	}
	if err := auth.CheckPassword(m.passwordHash, password); err != nil {
		return registry.Identity{}, ErrInvalidCredentials
	}
	return m.Switch(identity.Role)
}

// Logout drops the persisted role; the in-memory identity stays until the
// next login or switch.
func (m *Manager) Logout() {
	if err := m.state.Clear(); err != nil {
		m.logger.Warn().Err(err).Msg("clearing last selected role failed")
	}
}
