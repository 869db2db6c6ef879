package ratelimit

import (
	"context"
	"sync"
	"time"
)

var _ Limiter = &Memory{}

// Memory keeps a sliding window of admission timestamps per identifier in
// process memory. Suitable for single-instance deployments; use Redis when
// running multiple replicas.
type Memory struct {
	policy Policy

	mu      sync.Mutex
	entries map[string][]time.Time
	swept   time.Time
}

func NewMemory(policy Policy) *Memory {
	return &Memory{
		policy: policy,

		entries: map[string][]time.Time{},
	}
}

func (m *Memory) Allow(_ context.Context, identifier string, now time.Time) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if now.Sub(m.swept) > m.policy.Window {
		m.sweep(now)
	}

	admissions := m.prune(m.entries[identifier], now)

	if len(admissions) >= m.policy.Requests {
		m.entries[identifier] = admissions
		return false
	}

	m.entries[identifier] = append(admissions, now)

	return true
}

// prune drops admissions that have aged out of the window.
func (m *Memory) prune(admissions []time.Time, now time.Time) []time.Time {
	kept := admissions[:0]

	for _, t := range admissions {
		if now.Sub(t) < m.policy.Window {
			kept = append(kept, t)
		}
	}

	return kept
}

// sweep drops identifiers whose whole window has aged out. Callers hold mu.
func (m *Memory) sweep(now time.Time) {
	for identifier, admissions := range m.entries {
		kept := m.prune(admissions, now)

		if len(kept) == 0 {
			delete(m.entries, identifier)
			continue
		}

		m.entries[identifier] = kept
	}

	m.swept = now
}
