package domain

import "errors"

var ErrMissingCredential = errors.New("credential is missing")
var ErrInvalidCredential = errors.New("invalid credential")
var ErrUserExists = errors.New("user already registered")
var ErrUserNotFound = errors.New("user not found")

// Profile is the identity asserted by the external provider once a
// credential has been verified.
type Profile struct {
	Email      string
	GivenName  string
	FamilyName string
	Picture    string
}

// User models a registered account. The JSON field names follow the wire
// contract the frontend already speaks: the session token travels inside
// the user object.
type User struct {
	ID        string `json:"-"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Picture   string `json:"picture"`
	Email     string `json:"email"`
	Token     string `json:"token,omitempty"`
}
