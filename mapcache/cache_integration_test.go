package mapcache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/s4reader/s4map/mapfile"
)

func TestSegmentCacheHitSkipsReDecode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.map")

	// A minimal valid file: just the 8-byte preamble, no segments.
	if err := os.WriteFile(path, make([]byte, 8), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	c := New(8)

	v1, err := c.Segment(path, mapfile.KindMapInfo)
	if err != nil {
		t.Fatalf("first Segment call: %v", err)
	}
	if info, ok := v1.(*mapfile.Info); !ok || info != nil {
		t.Fatalf("expected nil *mapfile.Info for a file with no segments, got %#v (ok=%v)", v1, ok)
	}

	// Remove the file: if the second call re-decodes from disk it must
	// fail, proving the cache hit path never reaches mapfile.Open again.
	if err := os.Remove(path); err != nil {
		t.Fatalf("Remove: %v", err)
	}

	v2, err := c.Segment(path, mapfile.KindMapInfo)
	if err != nil {
		t.Fatalf("second Segment call should have hit the cache, got error: %v", err)
	}
	if info, ok := v2.(*mapfile.Info); !ok || info != nil {
		t.Fatalf("expected nil *mapfile.Info from cache, got %#v (ok=%v)", v2, ok)
	}
}
