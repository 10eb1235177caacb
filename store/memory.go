// Package store implements sdk.AccountStore backends.
package store

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/gagliardetto/solana-go"

	"github.com/smartcontractkit/timelock/sdk"
)

// Memory is an in-process AccountStore.
type Memory struct {
	mu       sync.RWMutex
	accounts map[solana.PublicKey][]byte
}

var _ sdk.AccountStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{accounts: make(map[solana.PublicKey][]byte)}
}

func (m *Memory) GetAccount(_ context.Context, key solana.PublicKey) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.accounts[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", sdk.ErrAccountNotFound, key)
	}

	return slices.Clone(data), nil
}

func (m *Memory) CreateAccount(_ context.Context, key solana.PublicKey, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[key]; ok {
		return fmt.Errorf("%w: %s", sdk.ErrAccountExists, key)
	}
	m.accounts[key] = slices.Clone(data)

	return nil
}

// PutAccount overwrites an existing account.
func (m *Memory) PutAccount(_ context.Context, key solana.PublicKey, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.accounts[key]; !ok {
		return fmt.Errorf("%w: %s", sdk.ErrAccountNotFound, key)
	}
	m.accounts[key] = slices.Clone(data)

	return nil
}
