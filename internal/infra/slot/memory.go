package slot

import (
	"context"
	"sync"
)

type Memory struct {
	mu   sync.Mutex
	data []byte
	set  bool

	// Fail, when set, makes every Write return it.
	Fail error
}

func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryWith returns a slot that already holds data.
func NewMemoryWith(data []byte) *Memory {
	m := &Memory{}
	m.data = append([]byte(nil), data...)
	m.set = true
	return m
}

func (m *Memory) Read(_ context.Context) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.set {
		return nil, ErrEmpty
	}
	return append([]byte(nil), m.data...), nil
}

func (m *Memory) Write(_ context.Context, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.Fail != nil {
		return m.Fail
	}
	m.data = append([]byte(nil), data...)
	m.set = true
	return nil
}

// Bytes returns the last written value, or nil.
func (m *Memory) Bytes() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]byte(nil), m.data...)
}

func (m *Memory) Close() error { return nil }
