package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// HashPassword returns the hex SHA-256 digest of password. There is no salt
// and no work factor, so the stored digest is directly comparable on login.
func HashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// VerifyPassword reports whether password hashes to digest.
func VerifyPassword(password, digest string) bool {
	return HashPassword(password) == digest
}

// MintSessionToken derives the session token for a user. The token is a pure
// function of id, username and role: it never expires, cannot be revoked, and
// anyone who knows those three values can compute it without the password.
func MintSessionToken(userID int, username, role string) string {
	return HashPassword(fmt.Sprintf("%d:%s:%s", userID, username, role))
}
