// internal/app/system/authutil/authutil.go
//
// Static-credential fallback for the admin gate. Used when Google
// sign-in is unavailable or not configured; credentials come from the
// deployment environment, never from the database.
package authutil

import (
	"crypto/subtle"

	"golang.org/x/crypto/bcrypt"
)

// FallbackCredentials holds the configured static admin login. The
// password is stored as a bcrypt hash; an empty hash disables the
// fallback entirely.
type FallbackCredentials struct {
	Username     string
	PasswordHash string
}

// Enabled reports whether the static fallback is configured.
func (c FallbackCredentials) Enabled() bool {
	return c.Username != "" && c.PasswordHash != ""
}

// Check verifies a username/password pair against the configured
// fallback. Both comparisons run even when the username is wrong so
// timing does not reveal which half failed.
func (c FallbackCredentials) Check(username, password string) bool {
	if !c.Enabled() {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(c.Username)) == 1
	passOK := bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) == nil
	return userOK && passOK
}

// HashPassword produces a bcrypt hash suitable for FallbackCredentials.
// Exposed for setup tooling and tests.
func HashPassword(password string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
