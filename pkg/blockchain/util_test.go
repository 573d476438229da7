package blockchain

import (
	"math/big"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFilToAttoFil_FromString(t *testing.T) {
	atto, err := FilToAttoFil("0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "100000000000000000"
	if atto.String() != want {
		t.Fatalf("got %s, want %s", atto.String(), want)
	}
}

func TestFilToAttoFil_FromFloat(t *testing.T) {
	atto, err := FilToAttoFil(1.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "1500000000000000000"
	if atto.String() != want {
		t.Fatalf("got %s, want %s", atto.String(), want)
	}
}

func TestFilToAttoFil_FromInt64(t *testing.T) {
	atto, err := FilToAttoFil(int64(2))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "2000000000000000000"
	if atto.String() != want {
		t.Fatalf("got %s, want %s", atto.String(), want)
	}
}

func TestFilToAttoFil_BadString(t *testing.T) {
	if _, err := FilToAttoFil("not-a-number"); err == nil {
		t.Fatal("expected error")
	}
}

func TestAttoFilToFil_FromBigInt(t *testing.T) {
	fil := AttoFilToFil(big.NewInt(1e18))
	if fil.String() != "1" {
		t.Fatalf("got %s, want 1", fil.String())
	}
}

func TestAttoFilToFil_FromString(t *testing.T) {
	fil := AttoFilToFil("100000000000000000")
	if fil.String() != "0.1" {
		t.Fatalf("got %s, want 0.1", fil.String())
	}
}

func TestAttoFilToFil_UnsupportedType(t *testing.T) {
	fil := AttoFilToFil(3.14)
	if !fil.Equal(decimal.Zero) {
		t.Fatalf("got %s, want 0", fil.String())
	}
}

func TestRoundTrip(t *testing.T) {
	atto, err := FilToAttoFil("12.345")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	back := AttoFilToFil(atto)
	if back.String() != "12.345" {
		t.Fatalf("round trip gave %s", back.String())
	}
}
