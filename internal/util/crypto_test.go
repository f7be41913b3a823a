package util

import "testing"

func TestHashAndComparePassword(t *testing.T) {
	hash, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}

	if hash == "s3cret-password" {
		t.Fatal("hash equals the plaintext password")
	}

	if !ComparePassword(hash, "s3cret-password") {
		t.Error("ComparePassword rejected the correct password")
	}

	if ComparePassword(hash, "wrong-password") {
		t.Error("ComparePassword accepted a wrong password")
	}
}

func TestGenerateNChar(t *testing.T) {
	a, err := GenerateNChar(32)
	if err != nil {
		t.Fatalf("GenerateNChar returned error: %v", err)
	}
	if len(a) != 32 {
		t.Fatalf("GenerateNChar(32) length = %d", len(a))
	}

	b, err := GenerateNChar(32)
	if err != nil {
		t.Fatalf("GenerateNChar returned error: %v", err)
	}
	if a == b {
		t.Error("two generated keys are identical")
	}
}
