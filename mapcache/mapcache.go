/*

Package mapcache memoizes mapfile decode results per (file path, segment
kind), for callers that repeatedly open the same maps (a map browser
listing Preview thumbnails for a directory of maps, say). It is purely
additive: a cache hit returns exactly what a direct mapfile.Open/Read call
would have produced, it just skips redoing the work.

Information sources:

github.com/dgryski/go-tinylfu (cache eviction policy)

github.com/cespare/xxhash/v2 (cache key hashing)

*/
package mapcache

import (
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/dgryski/go-tinylfu"

	"github.com/s4reader/s4map/internal/s4log"
	"github.com/s4reader/s4map/mapfile"
	"github.com/s4reader/s4map/mapfile/mapcore"
)

// segmentKey identifies one decoded segment of one map file.
type segmentKey struct {
	path string
	kind mapcore.Kind
}

func hashKey(k segmentKey) uint64 {
	var h xxhash.Digest
	h.WriteString(k.path)
	var kindBuf [4]byte
	kindBuf[0] = byte(k.kind)
	kindBuf[1] = byte(k.kind >> 8)
	kindBuf[2] = byte(k.kind >> 16)
	kindBuf[3] = byte(k.kind >> 24)
	h.Write(kindBuf[:])
	return h.Sum64()
}

// Cache memoizes decoded segment values keyed by (path, kind). It performs
// no concurrency of its own (no internal goroutines); the mutex only
// guards the underlying tinylfu.T against concurrent callers, matching
// mapfile's single-threaded, pull-based model.
type Cache struct {
	mu    sync.Mutex
	inner *tinylfu.T[segmentKey, any]
}

// New returns a Cache holding up to size entries.
func New(size int) *Cache {
	return &Cache{
		inner: tinylfu.New[segmentKey, any](size, size*10, hashKey),
	}
}

// Segment returns the decoded value for kind in the map file at path,
// decoding and populating the cache on a miss. The returned value's
// concrete type matches the corresponding field of mapfile.Map (e.g.
// *mapfile.Preview for mapfile.KindPreview); callers type-assert it.
func (c *Cache) Segment(path string, kind mapcore.Kind) (any, error) {
	key := segmentKey{path: path, kind: kind}

	c.mu.Lock()
	if v, ok := c.inner.Get(key); ok {
		c.mu.Unlock()
		s4log.Debug("cache hit", s4log.F("path", path), s4log.F("kind", uint32(kind)))
		return v, nil
	}
	c.mu.Unlock()

	m, err := mapfile.Open(path)
	if err != nil {
		return nil, err
	}

	value := segmentValue(m, kind)

	c.mu.Lock()
	c.inner.Add(key, value)
	c.mu.Unlock()

	return value, nil
}

// segmentValue extracts the field of m matching kind.
func segmentValue(m *mapfile.Map, kind mapcore.Kind) any {
	switch kind {
	case mapfile.KindMapInfo:
		return m.Info
	case mapfile.KindPlayerInfo:
		return m.Players
	case mapfile.KindTeamInfo:
		return m.Teams
	case mapfile.KindPreview:
		return m.Preview
	case mapfile.KindObjects:
		return m.Objects
	case mapfile.KindSettlers:
		return m.Settlers
	case mapfile.KindBuildings:
		return m.Buildings
	case mapfile.KindStacks:
		return m.Stacks
	case mapfile.KindVictoryCond:
		return m.VictoryConditions
	case mapfile.KindMissionInfoDE:
		return m.MissionTextDE
	case mapfile.KindMissionHintDE:
		return m.MissionHintDE
	case mapfile.KindMissionInfoEN:
		return m.MissionTextEN
	case mapfile.KindMissionHintEN:
		return m.MissionHintEN
	case mapfile.KindGround:
		return m.Ground
	case mapfile.KindLuaScript:
		return m.Script
	default:
		return nil
	}
}
