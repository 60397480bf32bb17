package models

type User struct {
	ID           int    `json:"_id"`
	Name         string `json:"nome"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"` // don't expose hash
}
