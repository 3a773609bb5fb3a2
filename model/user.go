package model

import (
	"crypto/sha256"
	"encoding/hex"
)

// User holds the credentials of a registered user. Only the one-way hash of
// the password is kept; verification recomputes the hash and compares.
// The hash is a bare SHA-256 digest: deterministic and unsalted, which is
// adequate for this ledger only because it never faces a real attacker.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
}

func NewUser(username, password string) *User {
	return &User{
		Username:     username,
		PasswordHash: HashPassword(password),
	}
}

// HashPassword returns the hex-encoded SHA-256 digest of password.
func HashPassword(password string) string {
	hash := sha256.Sum256([]byte(password))
	return hex.EncodeToString(hash[:])
}

// VerifyPassword reports whether candidate hashes to the stored digest.
// It never fails; a wrong password simply returns false.
func (u *User) VerifyPassword(candidate string) bool {
	return HashPassword(candidate) == u.PasswordHash
}
