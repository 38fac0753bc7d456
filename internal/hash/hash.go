package hash

import "golang.org/x/crypto/bcrypt"

// Password hashes a plaintext password with bcrypt at the default cost.
func Password(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// Check reports whether password matches the stored bcrypt hash.
// The comparison is the deliberately slow step of the login path.
func Check(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
