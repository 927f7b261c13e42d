package credentials

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultMemorySize bounds the in-process store
const DefaultMemorySize = 4096

// Memory is an in-process LRU store; the least recently used token is
// evicted once size is reached and its user has to log in again
type Memory struct {
	cache *lru.Cache[string, string]
}

// NewMemory builds a Memory store holding at most size entries
func NewMemory(size int) (*Memory, error) {
	if size <= 0 {
		size = DefaultMemorySize
	}
	c, err := lru.New[string, string](size)
	if err != nil {
		return nil, err
	}
	return &Memory{cache: c}, nil
}

func (m *Memory) Get(_ context.Context, key string) (string, bool, error) {
	v, ok := m.cache.Get(key)
	return v, ok, nil
}

func (m *Memory) Set(_ context.Context, key, value string) error {
	m.cache.Add(key, value)
	return nil
}

func (m *Memory) Delete(_ context.Context, key string) error {
	m.cache.Remove(key)
	return nil
}

// Len reports the number of stored entries
func (m *Memory) Len() int { return m.cache.Len() }
