package password

import "testing"

func TestHashAndCompare(t *testing.T) {
	hashed, err := HashPassword("s3cret-password")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hashed == "s3cret-password" {
		t.Fatal("hash must not equal the plaintext")
	}

	if err := ComparePassword(hashed, "s3cret-password"); err != nil {
		t.Fatalf("expected match, got %v", err)
	}
	if err := ComparePassword(hashed, "wrong"); err == nil {
		t.Fatal("expected mismatch")
	}
}
