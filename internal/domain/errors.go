package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	// Política
	ErrWeakPassword = errors.New("la contraseña es demasiado débil")
	ErrInvalidCnpj  = errors.New("el CNPJ es inválido")

	// Unicidad
	ErrDuplicatedUsername = errors.New("el username ya existe")
	ErrDuplicatedCnpj     = errors.New("ya existe una empresa con este CNPJ")

	// Autenticación
	ErrInvalidUsernameOrPassword = errors.New("username o contraseña inválidos")
	ErrInvalidToken              = errors.New("el token es inválido")
	ErrMissingCredentials        = errors.New("credenciales requeridas")
	ErrMalformedHeader           = errors.New("header Authorization malformado")

	// Referencia / propiedad
	ErrInexistentCnpj    = errors.New("el CNPJ no existe")
	ErrInexistentProduct = errors.New("el producto no existe")
	ErrInexistentOrder   = errors.New("el pedido no existe")
)

// DetailError acompaña un error de dominio con el valor que lo provocó
// (username, CNPJ, producto o código de pedido).
type DetailError struct {
	Err    error
	Detail string
}

func (e *DetailError) Error() string { return e.Err.Error() + ": " + e.Detail }

func (e *DetailError) Unwrap() error { return e.Err }

// WithDetail envuelve err con el valor ofensor.
func WithDetail(err error, detail string) error {
	return &DetailError{Err: err, Detail: detail}
}

// DetailOf devuelve el valor ofensor si err (o alguno de sus envueltos) es un DetailError.
func DetailOf(err error) string {
	var de *DetailError
	if errors.As(err, &de) {
		return de.Detail
	}
	return ""
}
