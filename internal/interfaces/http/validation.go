package http

import (
	"net/mail"

	"github.com/jhoicas/backoffice-api/pkg/cnpj"
)

// isEmail acepta solo una dirección desnuda ("a@b.c"), sin nombre ni ángulos.
func isEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

// hasCnpjLength chequeo de forma; los dígitos verificadores los valida el caso de uso.
func hasCnpjLength(s string) bool {
	return len(s) == cnpj.Length
}
