// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func testCache(t *testing.T) (*CatalogCache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewCatalogCache(client, 0), mr
}

func TestCatalogCacheRoundTrip(t *testing.T) {
	cc, _ := testCache(t)
	ctx := context.Background()
	key := ListKey("premium", "saas")

	if _, ok := cc.Get(ctx, key); ok {
		t.Fatal("expected a miss on a cold cache")
	}

	cc.Set(ctx, key, []byte(`{"success":true}`))
	body, ok := cc.Get(ctx, key)
	if !ok {
		t.Fatal("expected a hit after Set")
	}
	if string(body) != `{"success":true}` {
		t.Errorf("body: got %s", body)
	}
}

func TestCatalogCacheExpires(t *testing.T) {
	cc, mr := testCache(t)
	ctx := context.Background()
	key := ListKey("", "")

	cc.Set(ctx, key, []byte("x"))
	mr.FastForward(DefaultCatalogTTL + time.Second)

	if _, ok := cc.Get(ctx, key); ok {
		t.Error("entry should expire after the TTL")
	}
}

func TestCatalogCacheInvalidateAll(t *testing.T) {
	cc, _ := testCache(t)
	ctx := context.Background()

	cc.Set(ctx, ListKey("free", ""), []byte("a"))
	cc.Set(ctx, ListKey("premium", "food"), []byte("b"))
	cc.InvalidateAll(ctx)

	if _, ok := cc.Get(ctx, ListKey("free", "")); ok {
		t.Error("free listing should be invalidated")
	}
	if _, ok := cc.Get(ctx, ListKey("premium", "food")); ok {
		t.Error("premium listing should be invalidated")
	}
}

func TestListKeyDefaults(t *testing.T) {
	if got := ListKey("", ""); got != "list:all:all" {
		t.Errorf("ListKey: got %q", got)
	}
	if got := ListKey("premium", "saas"); got != "list:premium:saas" {
		t.Errorf("ListKey: got %q", got)
	}
}
