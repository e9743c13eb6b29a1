package ratelimiter

import (
	"context"
	"time"
)

// Store keeps bucket state. A negative remaining count means the tokens
// were not available and the request should be denied.
type Store interface {
	ConsumeTokens(ctx context.Context, key string, tokens int, config Config) (remaining int, resetAt time.Time, err error)
	Reset(ctx context.Context, key string) error
}
