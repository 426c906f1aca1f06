package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword derives a bcrypt hash from the given plaintext password.
// Only the hash is ever stored; the plaintext never reaches the database.
//
// Behavior:
//   - Uses bcrypt.DefaultCost (currently 10)
//   - Each call produces a different hash for the same input (random salt)
//
// Parameters:
//
//	password - plaintext password to hash
//
// Returns:
//
//	string - bcrypt hash in its standard $2a$ textual encoding
//	error  - non-nil when the password exceeds bcrypt's 72-byte limit
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the plaintext password matches the stored
// bcrypt hash. The comparison runs in constant time.
//
// Parameters:
//
//	hash     - stored bcrypt hash
//	password - plaintext candidate to verify
//
// Returns:
//
//	bool - true when the password matches the hash
func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
