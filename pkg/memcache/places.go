package mem

import (
	"sync"
	"time"
)

// PlaceCache keeps resolved geocode coordinates for a short while so repeated
// map prompts for the same place skip the round trip.
type PlaceCache struct {
	mu   sync.RWMutex
	data map[string]placeEntry
}

type placeEntry struct {
	lat, lng  float64
	expiresAt time.Time
}

func NewPlaceCache() *PlaceCache {
	return &PlaceCache{
		data: make(map[string]placeEntry),
	}
}

func (c *PlaceCache) Set(key string, lat, lng float64, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = placeEntry{
		lat:       lat,
		lng:       lng,
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *PlaceCache) Get(key string) (lat, lng float64, ok bool) {
	c.mu.RLock()
	e, found := c.data[key]
	c.mu.RUnlock()

	if !found {
		return 0, 0, false
	}
	if time.Now().After(e.expiresAt) {
		c.mu.Lock()
		delete(c.data, key) // cleanup expired
		c.mu.Unlock()
		return 0, 0, false
	}
	return e.lat, e.lng, true
}
