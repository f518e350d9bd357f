package domain

import "strings"

// Claims is the identity carried inside an issued token.
type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
}

// Valid reports whether the claims carry the fields a token must have.
func (c Claims) Valid() bool {
	return strings.TrimSpace(c.UserID) != "" && strings.TrimSpace(c.Email) != ""
}
