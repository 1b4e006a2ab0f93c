package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

// --- bodyHash ---

func Test_bodyHash(t *testing.T) {
	data := []byte("hello world")
	got := bodyHash(data)

	sum := sha256.Sum256(data)
	want := hex.EncodeToString(sum[:])

	if got != want {
		t.Fatalf("bodyHash mismatch: got %s want %s", got, want)
	}
}

func Test_nowUTC(t *testing.T) {
	u := nowUTC()
	if u.Location() != time.UTC {
		t.Fatalf("nowUTC must be UTC, got %v", u.Location())
	}
	if d := time.Since(u); d < 0 || d > 2*time.Second {
		t.Fatalf("nowUTC too far from now: %v", d)
	}
}

func Test_buildKey(t *testing.T) {
	k := buildKey("POST", "/api/cases", "u1", testKey)
	if k != "idemp:post:/api/cases:u1:"+testKey {
		t.Fatalf("buildKey = %q", k)
	}
}

func Test_validIdemKey(t *testing.T) {
	for _, s := range []string{testKey, strings.Repeat("a", 32), "order-2026.10.14:1"} {
		if !validIdemKey(s) {
			t.Fatalf("validIdemKey should accept %q", s)
		}
	}
	for _, s := range []string{"", "abc", strings.Repeat("a", 129), "white space key", "new\nline-key"} {
		if validIdemKey(s) {
			t.Fatalf("validIdemKey should reject %q", s)
		}
	}
}

// --- Redis helpers: provisionalSet, loadEntry, saveFinal, release ---

func Test_provisionalSet_LoadEntry(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	key := buildKey("POST", "/api/claims", "u1", testKey)
	entry := idempEntry{InProgress: true, BodySHA256: bodyHash([]byte(`{"a":1}`)), CreatedAt: nowUTC()}

	ok, err := provisionalSet(context.Background(), rdb, key, entry)
	if err != nil || !ok {
		t.Fatalf("provisionalSet 1: ok=%v err=%v", ok, err)
	}
	ttl := rdb.TTL(context.Background(), key).Val()
	if ttl <= 0 || ttl > provisionalLockTTL {
		t.Fatalf("provisional TTL not set correctly: %v", ttl)
	}

	ok, err = provisionalSet(context.Background(), rdb, key, entry)
	if err != nil {
		t.Fatalf("provisionalSet 2 err: %v", err)
	}
	if ok {
		t.Fatalf("provisionalSet 2 should be false, got true")
	}

	got, err := loadEntry(context.Background(), rdb, key)
	if err != nil {
		t.Fatalf("loadEntry err: %v", err)
	}
	if !got.InProgress || got.BodySHA256 != entry.BodySHA256 {
		t.Fatalf("loaded entry mismatch: %+v vs %+v", got, entry)
	}

	if err := release(context.Background(), rdb, key); err != nil {
		t.Fatalf("release: %v", err)
	}
	if mr.Exists(key) {
		t.Fatalf("key still present after release")
	}
}

func Test_saveFinal_Load_TTL(t *testing.T) {
	mr, rdb := newMiniredisClient(t)
	defer mr.Close()

	key := buildKey("POST", "/api/claims", "u1", testKey)
	final := idempEntry{Code: 201, Body: []byte(`{"ok":true}`), BodySHA256: bodyHash([]byte(`{}`)), CreatedAt: nowUTC()}

	ttlWant := 5 * time.Second
	if err := saveFinal(context.Background(), rdb, key, final, ttlWant); err != nil {
		t.Fatalf("saveFinal err: %v", err)
	}
	ttl := rdb.TTL(context.Background(), key).Val()
	if ttl <= 0 || ttl > ttlWant {
		t.Fatalf("final TTL out of range: got %v want <= %v", ttl, ttlWant)
	}
	got, err := loadEntry(context.Background(), rdb, key)
	if err != nil {
		t.Fatalf("load after final err: %v", err)
	}
	if got.Code != 201 || string(got.Body) != `{"ok":true}` || got.InProgress {
		t.Fatalf("final entry mismatch: %+v", got)
	}
}

func Test_bodyTooLarge(t *testing.T) {
	if !bodyTooLarge(&http.MaxBytesError{Limit: 10}) {
		t.Fatalf("MaxBytesError not matched")
	}
	if !bodyTooLarge(fmt.Errorf("multipart: NextPart: %w", echo.ErrStatusRequestEntityTooLarge)) {
		t.Fatalf("wrapped BodyLimit error not matched")
	}
	if bodyTooLarge(errors.New("unexpected EOF")) {
		t.Fatalf("plain read error matched")
	}
}
