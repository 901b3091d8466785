// AngelaMos | 2026
// security.go

package core

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost matches the cost the existing credential records were
// written with; changing it only affects hashes created after the change
// (NeedsRehash flags the old ones on successful login).
const bcryptCost = 10

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword delegates to bcrypt's comparison, which is constant-time
// over the derived keys. Never compare hashes manually.
func VerifyPassword(password, encodedHash string) bool {
	return bcrypt.CompareHashAndPassword(
		[]byte(encodedHash),
		[]byte(password),
	) == nil
}

var dummyHash string

func init() {
	hash, err := HashPassword("dummy_password_for_timing_attack_prevention")
	if err != nil {
		panic(fmt.Sprintf("security: failed to generate dummy hash: %v", err))
	}
	dummyHash = hash
}

// VerifyPasswordTimingSafe burns a full bcrypt comparison even when no
// stored hash exists, so login timing does not reveal whether an email
// is registered.
func VerifyPasswordTimingSafe(password string, encodedHash *string) bool {
	hashToVerify := dummyHash
	if encodedHash != nil && *encodedHash != "" {
		hashToVerify = *encodedHash
	}

	valid := VerifyPassword(password, hashToVerify)

	if encodedHash == nil || *encodedHash == "" {
		return false
	}

	return valid
}

func NeedsRehash(encodedHash string) bool {
	cost, err := bcrypt.Cost([]byte(encodedHash))
	if err != nil {
		return true
	}
	return cost != bcryptCost
}
