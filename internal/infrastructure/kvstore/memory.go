// Package kvstore contém implementações de repository.KeyValueStore fora do PostgreSQL.
package kvstore

import (
	"context"
	"sync"

	"github.com/webytehub/ploutosledger-api/internal/domain/repository"
)

var _ repository.KeyValueStore = (*Memory)(nil)

// Memory armazenamento em memória do processo (testes e STORE_DRIVER=memory).
type Memory struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewMemory cria um armazenamento vazio.
func NewMemory() *Memory {
	return &Memory{data: make(map[string]string)}
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
	return nil
}

func (m *Memory) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, key)
	return nil
}

// Len quantidade de chaves armazenadas.
func (m *Memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.data)
}
