package dto

// RegisterRequest entrada para crear cuenta (POST /account/create).
type RegisterRequest struct {
	Username string `json:"username" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con el token JWT.
type LoginResponse struct {
	Token string `json:"token"`
}

// UpdateAccountRequest reautenticación con las credenciales actuales más los cambios opcionales.
// Un campo nil no se modifica.
type UpdateAccountRequest struct {
	Username    string  `json:"username" validate:"required"`
	Password    string  `json:"password" validate:"required"`
	NewUsername *string `json:"new_username" validate:"omitempty,email"`
	NewPassword *string `json:"new_password" validate:"omitempty"`
}
