package storage

import (
	"testing"
)

func TestFormatHash_SanitizesPrefixes(t *testing.T) {
	input := "ipfs://Qm-AbC=123!?#"
	if got := formatHash(input); got != "QmAbC=123" {
		t.Fatalf("formatHash returned %q, want %q", got, "QmAbC=123")
	}

	input = "filecoin://bafy-BeEf==/metadata"
	if got := formatHash(input); got != "bafyBeEf==metadata" {
		t.Fatalf("formatHash returned %q, want %q", got, "bafyBeEf==metadata")
	}
}

func TestRemoveSpecialCharacters(t *testing.T) {
	input := "Qm-._$Hello=World"
	if got := removeSpecialCharacters(input); got != "QmHello=World" {
		t.Fatalf("removeSpecialCharacters returned %q, want %q", got, "QmHello=World")
	}
}
