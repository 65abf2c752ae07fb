package kvstore

import "sync"

// MemoryStore keeps values in a map. Used in tests and as the degraded
// fallback when the cart database cannot be opened.
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string][]byte)}
}

// MemoryProvider hands out an independent MemoryStore per bucket name.
type MemoryProvider struct {
	mu      sync.Mutex
	buckets map[string]*MemoryStore
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{buckets: make(map[string]*MemoryStore)}
}

func (p *MemoryProvider) Bucket(name string) Store {
	p.mu.Lock()
	defer p.mu.Unlock()
	if s, ok := p.buckets[name]; ok {
		return s
	}
	s := NewMemoryStore()
	p.buckets[name] = s
	return s
}

func (s *MemoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, nil
}

func (s *MemoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := make([]byte, len(value))
	copy(v, value)
	s.values[key] = v
	return nil
}

func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}
