// Package cache provides a generic LRU cache.
//
//	c := cache.New[string, *image.NRGBA](64)
//	c.Add("hero.png", img)
//	img, ok := c.Get("hero.png")
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
