package models

// User is a staff account. PasswordHash is a bcrypt hash; the plaintext
// secret is never stored.
type User struct {
	ID           int    `json:"id"`
	Username     string `json:"usuario"`
	PasswordHash string `json:"-"` // don't expose hash
	Name         string `json:"nombre"`
	IsAdmin      bool   `json:"es_admin"`
}
