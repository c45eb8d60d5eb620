// Package ratelimiter provides a token bucket limiter and an HTTP
// middleware built on it.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	bucket, err := ratelimiter.NewBucket(store, ratelimiter.Config{
//		Capacity:       5,
//		RefillRate:     1,
//		RefillInterval: time.Minute,
//	})
//	r.With(ratelimiter.Middleware(bucket, clientip.Key)).Post("/submit", h)
//
// Each key starts with Capacity tokens and regains RefillRate tokens per
// RefillInterval. A denied request consumes nothing.
package ratelimiter
