// Package cache provides a concurrent memo table for lazily materialized,
// immutable values.
//
//	memo := cache.NewMemo[int, *Line](strconv.Itoa)
//	line := memo.GetOrCreate(3, func() *Line { return build(3) })
//
// # Thread Safety
//
// Memo is safe for concurrent use. Concurrent requests for the same missing
// key are collapsed into a single creation with golang.org/x/sync/singleflight,
// so every caller receives the identical value.
package cache
