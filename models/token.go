package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Token is a bearer token accepted by the delta server.
//
// RegisteredClaims makes *Token usable directly as the claims value of
// jwt.ParseWithClaims; UserID caches the parsed "sub" claim.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// Premium is a private claim set for accounts with premium features.
	Premium bool `json:"premium,omitempty"`

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// GetUserID parses the "sub" claim as a base-10 user id.
func (t *Token) GetUserID() (int64, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting user id from token: %w", err)
	}

	userID, err := strconv.ParseInt(sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting user id from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS form of the token.
func (t *Token) String() string {
	return t.SignedString
}
