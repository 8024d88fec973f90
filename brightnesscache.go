package img2ascii

import (
	"strconv"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// BrightnessCache memoizes region brightness by content fingerprint.
//
// The key of the map is the xxHash64 Fingerprint of the region, so two
// structurally identical regions share one entry no matter which image
// they were cut from. Entries are never evicted; the working set is bounded
// by the number of distinct regions visited.
//
// Concurrent misses on the same content are collapsed so each distinct
// content is computed at most once.
type BrightnessCache struct {
	mu      sync.RWMutex
	entries map[uint64]float64
	group   singleflight.Group

	lookups      atomic.Int64
	computations atomic.Int64
}

// CacheStats is a snapshot of cache activity.
type CacheStats struct {
	Lookups      int64
	Hits         int64
	Computations int64
	Entries      int
}

// HitRate returns the fraction of lookups served without computing.
func (s CacheStats) HitRate() float64 {
	if s.Lookups == 0 {
		return 0
	}
	return float64(s.Hits) / float64(s.Lookups)
}

// NewBrightnessCache returns an empty cache.
func NewBrightnessCache() *BrightnessCache {
	return &BrightnessCache{entries: make(map[uint64]float64)}
}

// GetOrCompute returns the average brightness of region, computing and
// storing it on the first request for that content.
func (c *BrightnessCache) GetOrCompute(region Image) float64 {
	c.lookups.Add(1)
	key := Fingerprint(region)

	if v, ok := c.get(key); ok {
		return v
	}

	v, _, _ := c.group.Do(strconv.FormatUint(key, 16), func() (interface{}, error) {
		// Another flight may have stored it between the read above and
		// this one starting.
		if v, ok := c.get(key); ok {
			return v, nil
		}
		c.computations.Add(1)
		brightness := AverageBrightness(region)
		c.mu.Lock()
		c.entries[key] = brightness
		c.mu.Unlock()
		return brightness, nil
	})
	return v.(float64)
}

func (c *BrightnessCache) get(key uint64) (float64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.entries[key]
	return v, ok
}

// Len returns the number of cached entries.
func (c *BrightnessCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Stats returns the cache statistics.
func (c *BrightnessCache) Stats() CacheStats {
	lookups := c.lookups.Load()
	computations := c.computations.Load()
	return CacheStats{
		Lookups:      lookups,
		Hits:         lookups - computations,
		Computations: computations,
		Entries:      c.Len(),
	}
}
