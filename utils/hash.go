package utils

import "golang.org/x/crypto/bcrypt"

// HashPassword produces the bcrypt hash stored in OPERATOR_PASSWORD_HASH.
func HashPassword(p string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
	return string(bytes), err
}

// CheckPassword reports whether pass matches hash. An empty hash never matches.
func CheckPassword(hash, pass string) bool {
	if hash == "" {
		return false
	}
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(pass))
	return err == nil
}
