// Package cache provides a small generic LRU cache.
//
// Cache memoizes values that are expensive to rebuild and cheap to keep,
// such as glyph outlines converted to Bézier contours:
//
//	c := cache.New[glyphKey, outline.Glyph](256)
//	g, err := c.GetOrCreate(key, func() (outline.Glyph, error) {
//	    return load(key)
//	})
//
// A failed create is not cached, so the next call retries it.
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
