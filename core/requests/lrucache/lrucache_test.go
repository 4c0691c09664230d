// Copyright 2025 - 2026, the Veya Reader contributors
// SPDX-License-Identifier: AGPL-3.0-only

package lrucache

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewLRUCache_InvalidSize(t *testing.T) {
	t.Parallel()

	for _, size := range []int{0, -1} {
		if _, err := NewLRUCache(size, false); err == nil {
			t.Errorf("NewLRUCache(%d) accepted an invalid size", size)
		}
	}
}

func TestLRUCache_AddGet(t *testing.T) {
	t.Parallel()

	c, err := NewLRUCache(2, false)
	if err != nil {
		t.Fatal(err)
	}

	c.Add("a", []byte("alpha"))
	c.Add("b", []byte("beta"))

	got, ok := c.Get("a")
	if !ok || !bytes.Equal(got, []byte("alpha")) {
		t.Errorf("Get(a) = (%q, %v)", got, ok)
	}

	// "a" was just used, so adding "c" must evict "b".
	if evicted := c.Add("c", []byte("gamma")); !evicted {
		t.Error("Add beyond capacity did not report an eviction")
	}

	if _, ok := c.Get("b"); ok {
		t.Error("least recently used entry survived eviction")
	}

	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
}

func TestLRUCache_PeekKeepsOrder(t *testing.T) {
	t.Parallel()

	c, err := NewLRUCache(2, false)
	if err != nil {
		t.Fatal(err)
	}

	c.Add("a", []byte("alpha"))
	c.Add("b", []byte("beta"))

	// Peek must not promote "a".
	if _, ok := c.Peek("a"); !ok {
		t.Fatal("Peek(a) missed")
	}

	c.Add("c", []byte("gamma"))

	if _, ok := c.Peek("a"); ok {
		t.Error("Peek promoted an entry in the LRU order")
	}
}

func TestLRUCache_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	c, err := NewLRUCache(1, false)
	if err != nil {
		t.Fatal(err)
	}

	c.Add("a", []byte("alpha"))

	got, _ := c.Get("a")
	got[0] = 'X'

	fresh, _ := c.Get("a")
	if !bytes.Equal(fresh, []byte("alpha")) {
		t.Errorf("cached value was mutated through a Get result: %q", fresh)
	}
}

func TestLRUCache_CompressionRoundTrip(t *testing.T) {
	t.Parallel()

	c, err := NewLRUCache(4, true)
	if err != nil {
		t.Fatal(err)
	}

	// Highly compressible payload, well above the break-even size.
	payload := []byte(strings.Repeat("breathe in, breathe out. ", 200))

	c.Add("exercise", payload)

	got, ok := c.Get("exercise")
	if !ok || !bytes.Equal(got, payload) {
		t.Error("compressed value did not round-trip")
	}

	// Tiny values skip compression but still round-trip.
	c.Add("tiny", []byte("x"))

	got, ok = c.Get("tiny")
	if !ok || !bytes.Equal(got, []byte("x")) {
		t.Error("tiny value did not round-trip")
	}
}

func TestLRUCache_RemoveAndKeys(t *testing.T) {
	t.Parallel()

	c, err := NewLRUCache(3, false)
	if err != nil {
		t.Fatal(err)
	}

	c.Add("a", []byte("1"))
	c.Add("b", []byte("2"))
	c.Add("c", []byte("3"))

	if !c.Remove("b") {
		t.Error("Remove(b) = false for a present key")
	}

	if c.Remove("b") {
		t.Error("Remove(b) = true for an absent key")
	}

	keys := c.Keys()
	if len(keys) != 2 || keys[0] != "a" || keys[1] != "c" {
		t.Errorf("Keys() = %v, want [a c] oldest first", keys)
	}
}
