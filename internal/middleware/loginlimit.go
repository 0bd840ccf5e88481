// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// LoginLimiter throttles login attempts per client IP using Valkey
// counters with TTL expiry, so the limit survives process restarts and is
// shared across replicas. When Valkey is unavailable the limiter fails
// open: a broken cache must not lock everyone out.
type LoginLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
}

// NewLoginLimiter creates a login limiter allowing limit attempts per
// window per client IP. client may be nil, in which case the limiter is a
// pass-through.
func NewLoginLimiter(client *redis.Client, limit int, window time.Duration) *LoginLimiter {
	return &LoginLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
	}
}

// Middleware returns an HTTP middleware enforcing the attempt limit.
func (l *LoginLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if l.client == nil {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		key := "login_attempts:" + clientIP(r)

		count, err := l.client.Incr(ctx, key).Result()
		if err != nil {
			slog.Warn("login limiter unavailable, allowing request", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		// First attempt in the window starts the TTL clock.
		if count == 1 {
			if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
				slog.Warn("login limiter expire failed", "error", err)
			}
		}

		if count > l.limit {
			writeJSONError(w, http.StatusTooManyRequests, "Too many login attempts, try again later")
			return
		}

		next.ServeHTTP(w, r)
	})
}
