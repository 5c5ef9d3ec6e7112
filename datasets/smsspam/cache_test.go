package smsspam

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// mapCache implements the redis commands CachedSource uses on a map
type mapCache struct {
	redis.Cmdable
	entries map[string][]byte
	ttls    map[string]time.Duration
	dels    int
}

func newMapCache() *mapCache {
	return &mapCache{
		entries: make(map[string][]byte),
		ttls:    make(map[string]time.Duration),
	}
}

func (m *mapCache) Get(ctx context.Context, key string) *redis.StringCmd {
	v, ok := m.entries[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(string(v), nil)
}

func (m *mapCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.entries[key] = append([]byte(nil), value.([]byte)...)
	m.ttls[key] = expiration
	return redis.NewStatusResult("OK", nil)
}

func (m *mapCache) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, key := range keys {
		if _, ok := m.entries[key]; ok {
			delete(m.entries, key)
			n++
		}
	}
	m.dels++
	return redis.NewIntResult(n, nil)
}

func TestCachedSource(t *testing.T) {
	good := makeZip(t, map[string]string{DefaultMember: sample})
	cache := newMapCache()
	inner := &countingSource{data: good}
	src := NewCachedSource(inner, cache, time.Hour, ArchiveValidator(ZipArchive{}, DefaultDatasetConfig()))
	key := cachePrefix + DefaultURL

	for _, step := range []struct {
		name      string
		wantCalls int
	}{
		{"miss fetches and stores", 1},
		{"hit skips the source", 1},
		{"second hit", 1},
	} {
		t.Run(step.name, func(t *testing.T) {
			got, err := src.Fetch(context.Background(), DefaultURL)
			if err != nil {
				t.Fatalf("Fetch() error: %v", err)
			}
			if !bytes.Equal(got, good) {
				t.Error("Fetch() returned different bytes")
			}
			if inner.calls != step.wantCalls {
				t.Errorf("inner source called %d times, want %d", inner.calls, step.wantCalls)
			}
			if !bytes.Equal(cache.entries[key], good) || cache.ttls[key] != time.Hour {
				t.Errorf("cache holds %d bytes with ttl %v", len(cache.entries[key]), cache.ttls[key])
			}
		})
	}
}

func TestCachedSourceSkipsInvalidArchive(t *testing.T) {
	good := makeZip(t, map[string]string{DefaultMember: sample})
	cache := newMapCache()
	inner := &countingSource{data: []byte("<html>maintenance</html>")}
	cfg := DefaultDatasetConfig()
	src := NewCachedSource(inner, cache, 0, ArchiveValidator(ZipArchive{}, cfg))

	_, err := Load(context.Background(), src, ZipArchive{}, cfg)
	var ae *ArchiveError
	if !errors.As(err, &ae) {
		t.Fatalf("maintenance page: got %v, want ArchiveError", err)
	}
	if len(cache.entries) != 0 {
		t.Fatal("invalid archive was cached")
	}

	inner.data = good
	text, err := Load(context.Background(), src, ZipArchive{}, cfg)
	if err != nil {
		t.Fatalf("Load() after recovery error: %v", err)
	}
	if text != sample || inner.calls != 2 {
		t.Errorf("Load() == %q after %d inner calls", text, inner.calls)
	}
	if !bytes.Equal(cache.entries[cachePrefix+DefaultURL], good) {
		t.Error("valid archive was not cached")
	}
}

func TestCachedSourceDropsRejectedEntry(t *testing.T) {
	good := makeZip(t, map[string]string{DefaultMember: sample})
	cache := newMapCache()
	key := cachePrefix + DefaultURL
	cache.entries[key] = []byte("truncated")
	inner := &countingSource{data: good}
	src := NewCachedSource(inner, cache, 0, ArchiveValidator(ZipArchive{}, DefaultDatasetConfig()))

	got, err := src.Fetch(context.Background(), DefaultURL)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if !bytes.Equal(got, good) || inner.calls != 1 {
		t.Errorf("Fetch() returned %d bytes after %d inner calls", len(got), inner.calls)
	}
	if cache.dels != 1 || !bytes.Equal(cache.entries[key], good) {
		t.Errorf("rejected entry not replaced: %d deletes, %q cached", cache.dels, cache.entries[key])
	}
}

func TestArchiveValidatorChecksum(t *testing.T) {
	good := makeZip(t, map[string]string{DefaultMember: sample})
	validate := ArchiveValidator(ZipArchive{}, DatasetConfig{SHA256: "00"})
	if err := validate(good); !errors.Is(err, ErrChecksum) {
		t.Errorf("validator ignored the digest: %v", err)
	}
	if err := ArchiveValidator(ZipArchive{}, DatasetConfig{})(good); err != nil {
		t.Errorf("validator with defaults rejected a good archive: %v", err)
	}
}
