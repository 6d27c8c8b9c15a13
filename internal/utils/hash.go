package utils

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultHashCost is the bcrypt work factor applied to passwords and PINs
// when no explicit cost is configured. Raising it does not invalidate
// previously stored digests: every bcrypt digest self-describes its cost and
// salt, so VerifySecret keeps working across cost changes.
const DefaultHashCost = 10

// HashSecret computes a salted bcrypt digest of the given secret.
//
// A fresh random salt is drawn on every call, so two hashes of the same
// input differ while both verify correctly. cost is the bcrypt work factor;
// values outside the bcrypt-supported range fall back to the library
// defaults inside GenerateFromPassword.
//
// Returns an error only when the underlying entropy source or the bcrypt
// implementation fails (e.g. secret longer than 72 bytes).
func HashSecret(secret string, cost int) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(secret), cost)
	if err != nil {
		return "", fmt.Errorf("error hashing secret: %w", err)
	}

	return string(digest), nil
}

// VerifySecret reports whether secret matches the previously stored bcrypt
// digest.
//
// It never returns an error: malformed digests, cost mismatches, and plain
// mismatches all yield false. bcrypt performs the comparison in constant
// time with respect to the secret.
func VerifySecret(secret, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(secret)) == nil
}
