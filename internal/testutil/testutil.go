// Package testutil provides shared test helpers for Redis-backed adapters.
package testutil

import (
	"context"
	"os"
	"strconv"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

// SetupTestRedis returns a Redis client for tests.
//
// When TEST_REDIS_ADDR is set the client talks to that server (DB from TEST_REDIS_DB, default 1)
// and the DB is flushed before and after the test; an unreachable server fails the test.
// Otherwise an in-process miniredis instance is started.
func SetupTestRedis(t testing.TB) *redis.Client {
	t.Helper()

	if addr := os.Getenv("TEST_REDIS_ADDR"); addr != "" {
		return setupExternalRedis(t, addr)
	}
	client, _ := SetupMiniRedis(t)
	return client
}

// SetupMiniRedis starts an in-process Redis and returns a client plus the server handle,
// which tests use to fast-forward TTLs or inject failures.
func SetupMiniRedis(t testing.TB) (*redis.Client, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() {
		if err := client.Close(); err != nil {
			t.Logf("warning: failed to close redis client: %v", err)
		}
	})
	return client, srv
}

func setupExternalRedis(t testing.TB, addr string) *redis.Client {
	t.Helper()

	db := 1
	if v := os.Getenv("TEST_REDIS_DB"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			db = i
		} else {
			t.Logf("Invalid TEST_REDIS_DB=%q, using DB=%d", v, db)
		}
	}

	client := redis.NewClient(&redis.Options{Addr: addr, DB: db})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		t.Fatalf("Redis not available at %s: %v", addr, err)
	}
	if err := client.FlushDB(ctx).Err(); err != nil {
		t.Fatalf("flush test redis db: %v", err)
	}

	t.Cleanup(func() {
		ctx2, cancel2 := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel2()
		if err := client.FlushDB(ctx2).Err(); err != nil {
			t.Logf("warning: failed to flush redis test db: %v", err)
		}
		if err := client.Close(); err != nil {
			t.Logf("warning: failed to close redis client: %v", err)
		}
	})
	return client
}
