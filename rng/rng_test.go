package rng_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sterjanez/lamaso/rng"
)

func TestByteDeterminism(t *testing.T) {
	a := rng.NewSource(1)
	b := rng.NewSource(1)
	for i := 0; i < 100; i++ {
		require.Equal(t, a.Byte(), b.Byte())
	}
}

func TestByteDiffersAcrossSeeds(t *testing.T) {
	a := rng.NewSource(1)
	b := rng.NewSource(2)
	same := true
	for i := 0; i < 8; i++ {
		if a.Byte() != b.Byte() {
			same = false
		}
	}
	require.False(t, same, "expected differing seeds to diverge within 8 draws")
}

func TestWordIsFourBytesHighFirst(t *testing.T) {
	a := rng.NewSource(42)
	b := rng.NewSource(42)
	want := uint32(a.Byte())<<24 | uint32(a.Byte())<<16 | uint32(a.Byte())<<8 | uint32(a.Byte())
	got := b.Word()
	require.Equal(t, want, got)
}

func TestKnownSequence(t *testing.T) {
	// s = s*214013 + 2531011 in 32-bit wraparound, byte = (s>>24)&0xff.
	s := rng.NewSource(1)
	var seed int32 = 1
	for i := 0; i < 20; i++ {
		seed = seed*214013 + 2531011
		want := uint8(uint32(seed) >> 24)
		require.Equal(t, want, s.Byte())
	}
}
