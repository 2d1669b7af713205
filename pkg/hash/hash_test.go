package hash

import (
	"testing"
)

func TestSHA256Hex(t *testing.T) {
	// Known SHA256 of "hello"
	want := "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"
	got := SHA256Hex("hello")
	if got != want {
		t.Errorf("SHA256Hex(\"hello\") = %s, want %s", got, want)
	}
}

func TestSHA256Hex_Empty(t *testing.T) {
	// SHA256 of empty string
	want := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	got := SHA256Hex("")
	if got != want {
		t.Errorf("SHA256Hex(\"\") = %s, want %s", got, want)
	}
}

func TestIteratedSHA256(t *testing.T) {
	// 1 iteration should equal a single SHA256
	oneIter := IteratedSHA256("test", 1)
	single := SHA256Hex("test")
	if oneIter != single {
		t.Errorf("IteratedSHA256(\"test\", 1) = %s, want %s", oneIter, single)
	}

	// Multiple iterations should differ from single
	multiIter := IteratedSHA256("test", 5000)
	if multiIter == single {
		t.Error("5000 iterations should differ from single iteration")
	}

	// Same input should produce same output (deterministic)
	again := IteratedSHA256("test", 5000)
	if multiIter != again {
		t.Error("IteratedSHA256 should be deterministic")
	}
}

func TestHashPIN(t *testing.T) {
	h := HashPIN("1234", "salt-a")

	// Should be 64 hex chars (SHA256 output)
	if len(h) != 64 {
		t.Errorf("HashPIN length = %d, want 64", len(h))
	}

	// Should be deterministic
	if h != HashPIN("1234", "salt-a") {
		t.Error("HashPIN should be deterministic")
	}

	// Different salt should produce different hash
	if h == HashPIN("1234", "salt-b") {
		t.Error("different salts should produce different hashes")
	}

	// Different PIN should produce different hash
	if h == HashPIN("4321", "salt-a") {
		t.Error("different PINs should produce different hashes")
	}
}

func TestVerifyPIN(t *testing.T) {
	salt := "550e8400-e29b-41d4-a716-446655440000"
	stored := HashPIN("0000", salt)

	if !VerifyPIN("0000", salt, stored) {
		t.Error("correct PIN should verify")
	}
	if VerifyPIN("0001", salt, stored) {
		t.Error("wrong PIN should not verify")
	}
	if VerifyPIN("0000", "other-salt", stored) {
		t.Error("wrong salt should not verify")
	}
}
