package entity

import "time"

// User identidad de un inquilino. Username es único globalmente y sensible a mayúsculas.
type User struct {
	ID             string
	Username       string
	PasswordDigest string // digest salado, nunca la contraseña en claro
	Salt           string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
