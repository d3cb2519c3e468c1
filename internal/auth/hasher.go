package auth

import "golang.org/x/crypto/bcrypt"

// CredentialHasher wraps bcrypt so the cost is chosen in one place. Each Hash
// call embeds a fresh salt, so two hashes of the same input differ.
type CredentialHasher struct {
	cost int
}

// NewCredentialHasher creates a hasher; a cost of 0 selects bcrypt's default.
func NewCredentialHasher(cost int) *CredentialHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return &CredentialHasher{cost: cost}
}

// Hash derives a salted one-way digest of the plaintext.
func (h *CredentialHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Verify reports whether plaintext matches the digest. A malformed digest
// compares false rather than surfacing an error.
func (h *CredentialHasher) Verify(plaintext, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plaintext)) == nil
}
