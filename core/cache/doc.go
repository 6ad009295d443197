// Package cache provides a thread-safe, generic LRU cache.
//
// LRUCache evicts the least recently used entry once its capacity is reached.
// Get, Put and Remove are O(1); an optional eviction callback runs for every
// entry pushed out by a Put.
//
//	c := cache.NewLRUCache[string, []byte](256)
//	c.Put("key", body)
//	if body, ok := c.Get("key"); ok {
//		// ...
//	}
//
// The qrcode package uses it as the in-process store for rendered codes.
package cache
