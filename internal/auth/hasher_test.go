package auth

import "testing"

func TestCredentialHasher_HashIsSalted(t *testing.T) {
	t.Parallel()

	h := NewCredentialHasher(4)

	first, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	second, err := h.Hash("secret")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if first == second {
		t.Fatal("two hashes of the same input must differ")
	}

	if !h.Verify("secret", first) {
		t.Error("Verify(secret, first) = false, want true")
	}
	if !h.Verify("secret", second) {
		t.Error("Verify(secret, second) = false, want true")
	}
	if h.Verify("wrong", first) {
		t.Error("Verify(wrong, first) = true, want false")
	}
}

func TestCredentialHasher_MalformedDigest(t *testing.T) {
	t.Parallel()

	h := NewCredentialHasher(4)
	if h.Verify("secret", "not-a-bcrypt-digest") {
		t.Error("Verify must report false for a malformed digest")
	}
	if h.Verify("secret", "") {
		t.Error("Verify must report false for an empty digest")
	}
}
