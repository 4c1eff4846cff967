package token

import "golang.org/x/crypto/bcrypt"

// HashPassword salts and hashes a plaintext password. Output differs
// between calls; CheckPassword accepts any hash this function produced.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// CheckPassword reports whether the password matches the stored hash.
// A nil or empty hash (provider-only account) is always false; this
// function never returns an error.
func CheckPassword(password string, hash *string) bool {
	if hash == nil || *hash == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword([]byte(*hash), []byte(password)) == nil
}
