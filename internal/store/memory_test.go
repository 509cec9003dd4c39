package store

import (
	"testing"
	"time"
)

func TestMemoryStore_GetSet(t *testing.T) {
	s, err := New("memory", ProviderConfig{Size: 10, TTL: time.Hour})
	if err != nil {
		t.Fatalf("New memory store: %v", err)
	}
	defer s.Close()

	val, ok := s.Get("key1")
	if ok {
		t.Fatal("Expected miss for key1")
	}
	if val != nil {
		t.Fatalf("Expected nil value on miss, got %v", val)
	}

	s.Set("key1", []byte("value1"))
	val, ok = s.Get("key1")
	if !ok {
		t.Fatal("Expected hit for key1")
	}
	if string(val) != "value1" {
		t.Fatalf("Expected value1, got %s", string(val))
	}
}

func TestMemoryStore_Delete(t *testing.T) {
	s, _ := New("memory", ProviderConfig{Size: 10, TTL: time.Hour})
	defer s.Close()

	s.Set("k", []byte("v"))
	s.Delete("k")
	s.Delete("never-set")

	if _, ok := s.Get("k"); ok {
		t.Fatal("Expected deleted key to be gone")
	}
	if s.Len() != 0 {
		t.Fatalf("Expected Len 0, got %d", s.Len())
	}
}

func TestMemoryStore_Len(t *testing.T) {
	s, _ := New("memory", ProviderConfig{Size: 10, TTL: time.Hour})
	defer s.Close()

	if s.Len() != 0 {
		t.Fatalf("Expected Len 0, got %d", s.Len())
	}

	s.Set("a", []byte("1"))
	s.Set("b", []byte("2"))
	s.Set("a", []byte("3"))
	if s.Len() != 2 {
		t.Fatalf("Expected Len 2, got %d", s.Len())
	}
}

func TestMemoryStore_EvictsLeastRecentlyUsed(t *testing.T) {
	var evicted []string
	onEvict := func(key string, _ []byte) {
		evicted = append(evicted, key)
	}

	s, _ := New("memory", ProviderConfig{Size: 2, TTL: time.Hour, OnEvict: onEvict})
	defer s.Close()

	s.Set("a", []byte("1"))
	s.Set("b", []byte("2"))
	_, _ = s.Get("a")       // a is now the most recently used
	s.Set("c", []byte("3")) // evicts b

	if len(evicted) != 1 || evicted[0] != "b" {
		t.Fatalf("Expected eviction of 'b', got %v", evicted)
	}
	if _, ok := s.Get("a"); !ok {
		t.Error("Expected 'a' to survive after being read")
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	s, _ := New("memory", ProviderConfig{Size: 10, TTL: 50 * time.Millisecond})
	defer s.Close()

	s.Set("short", []byte("lived"))
	time.Sleep(150 * time.Millisecond)

	if _, ok := s.Get("short"); ok {
		t.Error("Expected entry to expire after its TTL")
	}
}

func TestMemoryStore_DefaultSize(t *testing.T) {
	s, err := New("memory", ProviderConfig{TTL: time.Hour})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer s.Close()

	s.Set("k", []byte("v"))
	if _, ok := s.Get("k"); !ok {
		t.Error("Expected a zero Size to fall back to a usable default")
	}
}
