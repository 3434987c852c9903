package profilestore

import (
	"sync"

	"github.com/specialistvlad/toolprofile/internal/profile"
)

// Store caches loaded profiles. Keys are written once and read many times,
// which is the access pattern sync.Map is optimized for.
type Store struct {
	profiles sync.Map // Key: profile reference, Value: *profile.Profile
}

// New creates a new, empty store.
func New() *Store {
	return &Store{}
}

// Get returns the profile stored for ref.
func (s *Store) Get(ref string) (*profile.Profile, bool) {
	p, ok := s.profiles.Load(ref)
	if !ok {
		return nil, false
	}
	return p.(*profile.Profile), true
}

// Put stores p for ref unless another goroutine stored one first, and
// returns the profile that ended up in the store.
func (s *Store) Put(ref string, p *profile.Profile) *profile.Profile {
	actual, _ := s.profiles.LoadOrStore(ref, p)
	return actual.(*profile.Profile)
}

// Len returns the number of stored profiles.
func (s *Store) Len() int {
	n := 0
	s.profiles.Range(func(_, _ any) bool {
		n++
		return true
	})
	return n
}
