package htab

import (
	"fmt"
	"hash/fnv"
	"testing"
)

var (
	testDataSmall [8]string
	testData      [128]string
	testDataLarge [128 << 10]string
)

func init() {
	for i := range testDataSmall {
		testDataSmall[i] = fmt.Sprintf("%b", i)
	}
	for i := range testData {
		testData[i] = fmt.Sprintf("%b", i)
	}
	for i := range testDataLarge {
		testDataLarge[i] = fmt.Sprintf("%b", i)
	}
}

func TestFNV1a64_KnownValues(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"", 0xcbf29ce484222325},
		{"a", 0xaf63dc4c8601ec8c},
		{"hello, world", 0x17a1a4f267be633d},
		{"this is test", 0x61901d0a123174a5},
		{"qwerty", 0x3eb459c7c3501ff9},
		{"QWERTY", 0x7b7546808ed0ff79},
	}
	for _, tt := range tests {
		if got := FNV1a64(tt.in); got != tt.want {
			t.Fatalf("FNV1a64(%q) = %#x, want %#x", tt.in, got, tt.want)
		}
	}
}

func TestFNV1a64_MatchesHashFNV(t *testing.T) {
	keys := append(testData[:], "", "\x00", "\xff\xfe", "héllo, wörld", "日本語")
	for _, k := range keys {
		h := fnv.New64a()
		_, _ = h.Write([]byte(k))
		if got, want := FNV1a64(k), h.Sum64(); got != want {
			t.Fatalf("FNV1a64(%q) = %#x, hash/fnv says %#x", k, got, want)
		}
	}
}

func TestMod10_KnownValues(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"", 0},
		{"a", 7},
		{"b", 8},
		{"k", 7},
		{"u", 7},
		{"abacus", 3},
		{"test", 8},
	}
	for _, tt := range tests {
		if got := Mod10(tt.in); got != tt.want {
			t.Fatalf("Mod10(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestMod10_Range(t *testing.T) {
	for _, k := range testData {
		if h := Mod10(k); h >= 10 {
			t.Fatalf("Mod10(%q) = %d, out of range", k, h)
		}
	}
}

func TestNewMapHasher_Deterministic(t *testing.T) {
	h := NewMapHasher()
	for _, k := range testData {
		if h(k) != h(k) {
			t.Fatalf("hash of %q is not stable", k)
		}
	}
	distinct := make(map[uint64]struct{}, len(testData))
	for _, k := range testData {
		distinct[h(k)] = struct{}{}
	}
	if len(distinct) != len(testData) {
		t.Fatalf("expected %d distinct hashes, got %d", len(testData), len(distinct))
	}
}
