package text

import (
	"sync"

	"golang.org/x/image/font"
)

// glyphKey identifies a rasterized glyph. Faces are compared by identity.
type glyphKey struct {
	face font.Face
	r    rune
}

// glyphEntry holds a cached glyph with its access time.
type glyphEntry struct {
	g     glyph
	ok    bool
	atime int64
}

// glyphCache is a thread-safe cache of rasterized glyphs with a soft limit.
// When the cache exceeds softLimit, the least recently used quarter is
// evicted. Evicted glyph images are left to the garbage collector since a
// concurrent Draw may still be reading them.
type glyphCache struct {
	mu        sync.Mutex
	entries   map[glyphKey]*glyphEntry
	softLimit int
	tick      int64
}

func newGlyphCache(softLimit int) *glyphCache {
	return &glyphCache{
		entries:   make(map[glyphKey]*glyphEntry),
		softLimit: softLimit,
	}
}

// defaultCache is shared by Draw and Render.
var defaultCache = newGlyphCache(1024)

// get returns the glyph for r in face, rasterizing it on a miss.
// Cached glyph images must not be released or modified.
func (c *glyphCache) get(face font.Face, r rune) (glyph, bool) {
	key := glyphKey{face: face, r: r}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.tick++
	if e, ok := c.entries[key]; ok {
		e.atime = c.tick
		return e.g, e.ok
	}

	g, ok := rasterize(face, r)
	c.entries[key] = &glyphEntry{g: g, ok: ok, atime: c.tick}
	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
	return g, ok
}

// len returns the number of cached glyphs.
func (c *glyphCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// clear drops every cached glyph.
func (c *glyphCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[glyphKey]*glyphEntry)
	c.tick = 0
}

// evictOldest removes entries until a quarter below softLimit.
// Caller must hold c.mu.
func (c *glyphCache) evictOldest() {
	target := max(1, c.softLimit*3/4)
	toEvict := len(c.entries) - target
	if toEvict <= 0 {
		return
	}

	type aged struct {
		key   glyphKey
		atime int64
	}
	all := make([]aged, 0, len(c.entries))
	for k, e := range c.entries {
		all = append(all, aged{key: k, atime: e.atime})
	}

	// Partial selection sort: only the oldest toEvict entries are ordered.
	for i := 0; i < toEvict; i++ {
		oldest := i
		for j := i + 1; j < len(all); j++ {
			if all[j].atime < all[oldest].atime {
				oldest = j
			}
		}
		all[i], all[oldest] = all[oldest], all[i]
		delete(c.entries, all[i].key)
	}
}

// ClearCache drops every cached glyph. Call it after closing a face that
// was used for drawing so its glyphs can be collected.
func ClearCache() {
	defaultCache.clear()
}
