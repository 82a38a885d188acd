// Package cache provides a generic, thread-safe LRU cache.
//
//	c := cache.New[string, *image.NRGBA](256)
//	img := c.GetOrCreate("1f600@109", func() *image.NRGBA { return scale(src) })
//
// A Cache must not be copied after creation (it contains a mutex).
package cache
