// Package ratelimiter implements a token bucket rate limiter with an
// in-memory store and chi-compatible HTTP middleware.
//
// Each key owns a bucket of Capacity tokens. Every RefillInterval the bucket
// gains RefillRate tokens, up to Capacity. A request takes one token; when
// none is left it is denied and the bucket is left as it was.
//
//	store := ratelimiter.NewMemoryStore()
//	defer store.Close()
//	limiter, err := ratelimiter.NewBucket(store, cfg)
//	r.Use(ratelimiter.Middleware(limiter, func(r *http.Request) string {
//		return clientip.GetIP(r)
//	}))
package ratelimiter
