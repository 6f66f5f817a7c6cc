package mem

import (
	"testing"
	"time"
)

func TestPlaceCache(t *testing.T) {
	cache := NewPlaceCache()

	if _, _, ok := cache.Get("bathsheba|BB"); ok {
		t.Error("empty cache returned a hit")
	}

	cache.Set("bathsheba|BB", 13.2, -59.52, time.Minute)
	lat, lng, ok := cache.Get("bathsheba|BB")
	if !ok {
		t.Fatal("expected a hit")
	}
	if lat != 13.2 || lng != -59.52 {
		t.Errorf("got (%f, %f)", lat, lng)
	}
}

func TestPlaceCacheExpiry(t *testing.T) {
	cache := NewPlaceCache()
	cache.Set("oistins|BB", 13.07, -59.53, -time.Second)

	if _, _, ok := cache.Get("oistins|BB"); ok {
		t.Error("expired entry returned a hit")
	}
}
