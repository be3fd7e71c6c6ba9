package store

import (
	"context"
	"testing"
)

func TestDBHealthyWithoutConnection(t *testing.T) {
	ctx := context.Background()

	var d *DB
	if d.Healthy(ctx) {
		t.Error("nil DB reported healthy")
	}
	if (&DB{}).Healthy(ctx) {
		t.Error("DB without client reported healthy")
	}
}

func TestRedisHealthyWithoutConnection(t *testing.T) {
	ctx := context.Background()

	var r *Redis
	if r.Healthy(ctx) {
		t.Error("nil Redis reported healthy")
	}
	if (&Redis{}).Healthy(ctx) {
		t.Error("Redis without client reported healthy")
	}
}
