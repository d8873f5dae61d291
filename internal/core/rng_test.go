package core

import (
	"slices"
	"testing"
)

func TestFillBernoulliDeterministic(t *testing.T) {
	a := make([]uint8, 256)
	b := make([]uint8, 256)
	FillBernoulli(NewRNG(7).Source(), a, 0.4)
	FillBernoulli(NewRNG(7).Source(), b, 0.4)
	if !slices.Equal(a, b) {
		t.Fatal("identical seeds must produce identical fills")
	}
	FillBernoulli(NewRNG(8).Source(), b, 0.4)
	if slices.Equal(a, b) {
		t.Fatal("different seeds should produce different fills")
	}
}

func TestFillBernoulliBounds(t *testing.T) {
	buf := make([]uint8, 128)
	FillBernoulli(NewRNG(1).Source(), buf, 0.5)
	for i, v := range buf {
		if v > 1 {
			t.Fatalf("cell %d has non-binary value %d", i, v)
		}
	}

	FillBernoulli(NewRNG(1).Source(), buf, 0)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("p=0 left cell %d alive", i)
		}
	}

	FillBernoulli(NewRNG(1).Source(), buf, 1)
	for i, v := range buf {
		if v != 1 {
			t.Fatalf("p=1 left cell %d dead", i)
		}
	}
}

func TestFillBernoulliOverwrites(t *testing.T) {
	buf := make([]uint8, 64)
	for i := range buf {
		buf[i] = 1
	}
	FillBernoulli(NewRNG(3).Source(), buf, 0)
	for i, v := range buf {
		if v != 0 {
			t.Fatalf("stale value survived at %d: %d", i, v)
		}
	}
}
