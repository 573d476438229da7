package blockchain

import (
	"strings"
	"testing"
)

// Well-known development key, not a secret.
const devKeyHex = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"

func TestParsePrivateKeyECDSA(t *testing.T) {
	addr, pk, err := ParsePrivateKeyECDSA(devKeyHex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pk == nil {
		t.Fatal("expected private key")
	}
	if !strings.EqualFold(addr.Hex(), "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266") {
		t.Fatalf("unexpected address: %s", addr.Hex())
	}
}

func TestParsePrivateKeyECDSA_Invalid(t *testing.T) {
	if _, _, err := ParsePrivateKeyECDSA("zz"); err == nil {
		t.Fatal("expected error for invalid hex key")
	}
}

func TestGetAddressFromPrivateKeyECDSA(t *testing.T) {
	_, pk, err := ParsePrivateKeyECDSA(devKeyHex)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	addr := GetAddressFromPrivateKeyECDSA(pk)
	if addr == nil {
		t.Fatal("expected address")
	}
	if !strings.EqualFold(addr.Hex(), "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266") {
		t.Fatalf("unexpected address: %s", addr.Hex())
	}
	if GetAddressFromPrivateKeyECDSA(nil) != nil {
		t.Fatal("expected nil for nil key")
	}
}
