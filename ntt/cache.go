package ntt

import (
	"sync"
	"sync/atomic"

	"github.com/xiangxiecrypto/primus-fhe/utils"
	"github.com/xiangxiecrypto/primus-fhe/utils/sampling"
)

// Cache shares immutable transform tables across callers, keyed by logN.
// Lookups of cached sizes are lock free. A single mutex serializes table
// generation, and a new map holding the extra entry is published atomically
// once the table is fully built, so readers never observe a partial table.
// Entries are never evicted.
type Cache struct {
	mu     sync.Mutex
	tables atomic.Pointer[map[int]*Table]
	prng   sampling.PRNG
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	prng, err := sampling.NewPRNG()
	if err != nil {
		panic(err)
	}
	c := &Cache{prng: prng}
	tables := make(map[int]*Table)
	c.tables.Store(&tables)
	return c
}

// Get returns the shared table for transforms of size 2^logN, generating and
// caching it on first use. Callers racing on an uncached size serialize on
// the write lock and the losers reuse the winner's table.
func (c *Cache) Get(logN int) (*Table, error) {

	if table, ok := (*c.tables.Load())[logN]; ok {
		return table, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another writer may have inserted the size while we waited.
	tables := *c.tables.Load()
	if table, ok := tables[logN]; ok {
		return table, nil
	}

	table, err := NewTable(c.prng, logN)
	if err != nil {
		return nil, err
	}

	next := make(map[int]*Table, len(tables)+1)
	for k, v := range tables {
		next[k] = v
	}
	next[logN] = table
	c.tables.Store(&next)

	return table, nil
}

// Init eagerly generates the tables for all the given sizes, skipping those
// already cached. On error the cache is left unchanged, so either every
// missing size becomes available or none does.
func (c *Cache) Init(logNs []int) error {

	c.mu.Lock()
	defer c.mu.Unlock()

	tables := *c.tables.Load()

	missing := make(map[int]bool)
	for _, logN := range logNs {
		if _, ok := tables[logN]; !ok {
			missing[logN] = true
		}
	}
	if len(missing) == 0 {
		return nil
	}

	next := make(map[int]*Table, len(tables)+len(missing))
	for k, v := range tables {
		next[k] = v
	}
	for logN := range missing {
		table, err := NewTable(c.prng, logN)
		if err != nil {
			return err
		}
		next[logN] = table
	}
	c.tables.Store(&next)

	return nil
}

// LogNs returns the cached sizes in increasing order.
func (c *Cache) LogNs() []int {
	return utils.GetSortedKeys(*c.tables.Load())
}
