// Package layoutcache memoizes layout output.
//
// Layout is deterministic for a given registry, document and box, so the
// path strings of a named document can be reused while the box and size
// stay the same, which is the common case for a host redrawing a frame.
//
//	c := layoutcache.New(64)
//	if paths, ok := c.Get(key); ok {
//	    return paths
//	}
//	c.Put(key, paths)
//
// Cache is safe for concurrent use and must not be copied after creation.
package layoutcache
