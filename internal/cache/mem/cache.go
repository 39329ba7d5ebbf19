package mem

import (
	"sort"
	"sync"

	"github.com/goserg/cricketboard/internal/domain"
	"github.com/goserg/cricketboard/internal/normalize"
)

// Index looks up loaded profiles by id and by folded full name.
type Index struct {
	mu     sync.RWMutex
	valid  bool
	byID   map[int]domain.Profile
	byName map[string][]domain.Profile
}

func New() *Index {
	return &Index{
		byID:   make(map[int]domain.Profile),
		byName: make(map[string][]domain.Profile),
	}
}

// Update replaces the indexed snapshot. Profiles without an id are only
// reachable by name.
func (c *Index) Update(profiles []domain.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.byID = make(map[int]domain.Profile, len(profiles))
	c.byName = make(map[string][]domain.Profile, len(profiles))
	for i := range profiles {
		if profiles[i].HasID {
			if _, ok := c.byID[profiles[i].ID]; !ok {
				c.byID[profiles[i].ID] = profiles[i]
			}
		}
		name := normalize.Name(profiles[i].FullName)
		c.byName[name] = append(c.byName[name], profiles[i])
	}
	c.valid = true
}

func (c *Index) Valid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.valid
}

func (c *Index) GetByID(id int) (domain.Profile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.byID[id]
	return p, ok
}

// GetByName returns every profile whose full name folds to the same key,
// one per country.
func (c *Index) GetByName(name string) []domain.Profile {
	c.mu.RLock()
	defer c.mu.RUnlock()

	found := c.byName[normalize.Name(name)]
	out := make([]domain.Profile, len(found))
	copy(out, found)
	return out
}

// IDs returns the indexed ids in ascending order.
func (c *Index) IDs() []int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	ids := make([]int, 0, len(c.byID))
	for id := range c.byID {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
