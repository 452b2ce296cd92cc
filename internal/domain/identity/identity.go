package identity

import (
	"errors"
	"strings"
)

// DefaultPhotoURL is used when the token carries no picture claim.
const DefaultPhotoURL = "https://i.ibb.co/hFLBkyBD/1j.webp"

var ErrEmptyEmail = errors.New("identity has no email")

// Identity is the verified caller. Email is the ownership key for listings and requests.
type Identity struct {
	Email    string
	Name     string
	PhotoURL string
	UID      string
}

func New(email, name, photoURL, uid string) (Identity, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return Identity{}, ErrEmptyEmail
	}
	if photoURL == "" {
		photoURL = DefaultPhotoURL
	}
	return Identity{
		Email:    email,
		Name:     name,
		PhotoURL: photoURL,
		UID:      uid,
	}, nil
}

func (i Identity) IsZero() bool {
	return i.Email == ""
}
