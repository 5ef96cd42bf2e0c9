package access

import "github.com/ericmatamoros/isometric-city-sub000/pkg/grid"

type cacheKey struct {
	x, y int
	typ  grid.BuildingType
}

// Cache memoizes Connected results per building anchor. Invalidation is
// deliberately coarse: the owner hands every call an epoch counter, and any
// change of epoch discards the whole table before the lookup. Callers must
// bump the epoch whenever a road tile changes or results go silently stale —
// one counter increment instead of per-entry dependency tracking.
//
// A Cache expects a single writer at a time; it does no locking of its own.
type Cache struct {
	epoch  uint64
	primed bool
	memo   map[cacheKey]bool
}

// NewCache returns an empty cache. The first call adopts whatever epoch it
// is given.
func NewCache() *Cache {
	return &Cache{memo: make(map[cacheKey]bool)}
}

// Connected returns the memoized road-access result for the building at
// (x, y), recomputing via access.Connected on a miss. A changed epoch drops
// every memoized entry first.
func (c *Cache) Connected(g *grid.Grid, x, y int, typ grid.BuildingType, epoch uint64) bool {
	if !c.primed || c.epoch != epoch {
		c.memo = make(map[cacheKey]bool)
		c.epoch = epoch
		c.primed = true
	}
	k := cacheKey{x: x, y: y, typ: typ}
	if v, ok := c.memo[k]; ok {
		return v
	}
	v := Connected(g, x, y, typ)
	c.memo[k] = v
	return v
}

// Invalidate empties the cache and forgets the current epoch, so the next
// call recomputes regardless of version continuity.
func (c *Cache) Invalidate() {
	c.memo = make(map[cacheKey]bool)
	c.primed = false
}

// Len reports how many results are memoized.
func (c *Cache) Len() int {
	return len(c.memo)
}

// Default is the process-wide cache used by CachedConnected.
var Default = NewCache()

// CachedConnected is Connected through the process-wide default cache, for
// callers that want the singleton shape.
func CachedConnected(g *grid.Grid, x, y int, typ grid.BuildingType, epoch uint64) bool {
	return Default.Connected(g, x, y, typ, epoch)
}
