package fingerprint

import (
	"context"
	"sync"
	"time"

	"WhaleScope/internal/domain/models"
	"WhaleScope/internal/domain/repository"
	"WhaleScope/pkg/util"
)

// MemoryStore is the default bounded in-memory fingerprint store.
// Writes are serialized under one mutex so concurrent classifications
// of the same address cannot lose updates; reads take the read lock
// only. Retention is bounded both per address (oldest evicted) and
// globally.
type MemoryStore struct {
	mu              sync.RWMutex
	data            map[string][]models.EntityFingerprint
	order           []string // append order of owning addresses, for global eviction
	perAddressLimit int
	globalLimit     int
	total           int
}

// NewMemoryStore creates a bounded in-memory store.
func NewMemoryStore(perAddressLimit, globalLimit int) *MemoryStore {
	if perAddressLimit <= 0 {
		perAddressLimit = 5
	}
	if globalLimit <= 0 {
		globalLimit = 10000
	}
	return &MemoryStore{
		data:            make(map[string][]models.EntityFingerprint),
		perAddressLimit: perAddressLimit,
		globalLimit:     globalLimit,
	}
}

func (s *MemoryStore) Backend() string { return "memory" }

// Append stores a fingerprint for the address, evicting the oldest
// entry when either bound is hit.
func (s *MemoryStore) Append(_ context.Context, address string, fp models.EntityFingerprint) error {
	addr := util.NormalizeAddress(address)
	if fp.StoredAt == 0 {
		fp.StoredAt = time.Now().Unix()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	entries := s.data[addr]
	if len(entries) >= s.perAddressLimit {
		entries = entries[1:]
		s.dropOldestOwner(addr)
		s.total--
	}
	s.data[addr] = append(entries, fp)
	s.order = append(s.order, addr)
	s.total++

	for s.total > s.globalLimit && len(s.order) > 0 {
		victim := s.order[0]
		s.order = s.order[1:]
		if v := s.data[victim]; len(v) > 0 {
			if len(v) == 1 {
				delete(s.data, victim)
			} else {
				s.data[victim] = v[1:]
			}
			s.total--
		}
	}
	return nil
}

// List returns stored fingerprints for the address, oldest first.
func (s *MemoryStore) List(_ context.Context, address string) ([]models.EntityFingerprint, error) {
	addr := util.NormalizeAddress(address)

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := s.data[addr]
	out := make([]models.EntityFingerprint, len(entries))
	copy(out, entries)
	return out, nil
}

func (s *MemoryStore) Close() error { return nil }

// dropOldestOwner removes the first occurrence of addr from the
// insertion order, matching the entry evicted from its slice.
func (s *MemoryStore) dropOldestOwner(addr string) {
	for i, a := range s.order {
		if a == addr {
			s.order = append(s.order[:i], s.order[i+1:]...)
			return
		}
	}
}

var _ repository.FingerprintStore = (*MemoryStore)(nil)
