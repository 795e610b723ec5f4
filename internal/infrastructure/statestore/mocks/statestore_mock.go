package mocks

import (
	"context"
	"sync"
)

// MockStore is a mock implementation of statestore.Store for testing
type MockStore struct {
	mu   sync.RWMutex
	data map[string][]byte

	// For tracking calls in tests
	PutCalls    []PutCall
	DeleteCalls []string
	PutErr      error
	GetErr      error
}

// PutCall records parameters passed to Put
type PutCall struct {
	Key   string
	Value []byte
}

// NewMockStore creates a new MockStore
func NewMockStore() *MockStore {
	return &MockStore{
		data:     make(map[string][]byte),
		PutCalls: make([]PutCall, 0),
	}
}

// Put stores a value in memory and records the call
func (m *MockStore) Put(ctx context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	buf := make([]byte, len(value))
	copy(buf, value)
	m.PutCalls = append(m.PutCalls, PutCall{Key: key, Value: buf})

	if m.PutErr != nil {
		return m.PutErr
	}

	m.data[key] = buf
	return nil
}

// Get returns a stored value
func (m *MockStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.GetErr != nil {
		return nil, false, m.GetErr
	}

	value, ok := m.data[key]
	return value, ok, nil
}

// Delete removes a stored value and records the call
func (m *MockStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DeleteCalls = append(m.DeleteCalls, key)
	delete(m.data, key)
	return nil
}

// Seed sets a value directly for testing
func (m *MockStore) Seed(key string, value []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

// Reset clears all data and recorded calls
func (m *MockStore) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = make(map[string][]byte)
	m.PutCalls = make([]PutCall, 0)
	m.DeleteCalls = nil
	m.PutErr = nil
	m.GetErr = nil
}
