//go:build unit || e2e

package builder

import "foodshare/internal/domain/identity"

// Caller returns a verified identity for tests that only care about the email.
func Caller(email string) identity.Identity {
	return identity.Identity{
		Email:    email,
		Name:     email,
		PhotoURL: identity.DefaultPhotoURL,
		UID:      "uid-" + email,
	}
}
