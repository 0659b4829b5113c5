package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlyphCacheHit(t *testing.T) {
	c := newGlyphCache(0)
	face := Default()

	g1, ok := c.get(face, 'A')
	require.True(t, ok)
	g2, ok := c.get(face, 'A')
	require.True(t, ok)

	assert.Same(t, g1.img, g2.img)
	assert.Equal(t, 1, c.len())
}

func TestGlyphCacheEviction(t *testing.T) {
	c := newGlyphCache(8)
	face := Default()

	for r := 'a'; r < 'a'+8; r++ {
		c.get(face, r)
	}
	// Touch 'a' so it survives the next eviction.
	c.get(face, 'a')
	c.get(face, 'z')

	assert.Equal(t, 6, c.len())
	c.mu.Lock()
	_, kept := c.entries[glyphKey{face: face, r: 'a'}]
	_, evicted := c.entries[glyphKey{face: face, r: 'b'}]
	c.mu.Unlock()
	assert.True(t, kept)
	assert.False(t, evicted)
}

func TestGlyphCacheClear(t *testing.T) {
	c := newGlyphCache(0)
	c.get(Default(), 'x')
	c.clear()
	assert.Zero(t, c.len())
}
