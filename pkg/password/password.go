package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"fmt"
	"unicode/utf8"

	"golang.org/x/crypto/argon2"
)

// Parámetros del digest (argon2id). Cambiarlos invalida los digests ya persistidos.
const (
	SaltBytes = 16

	argonTime    = 1
	argonMemory  = 19 * 1024 // KiB
	argonThreads = 1
	argonKeyLen  = 32

	// MinLength longitud mínima aceptada por la política de fortaleza.
	MinLength = 6
)

// GenerateSalt devuelve SaltBytes aleatorios codificados en hex (32 caracteres).
func GenerateSalt() (string, error) {
	b := make([]byte, SaltBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("password: generar salt: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// Digest deriva el digest de la contraseña. La salt se concatena a la contraseña
// antes de derivar (password + salt) y además se usa como salt de argon2.
// Es determinista: mismos argumentos, mismo resultado.
func Digest(password, salt string) string {
	key := argon2.IDKey([]byte(password+salt), []byte(salt), argonTime, argonMemory, argonThreads, argonKeyLen)
	return hex.EncodeToString(key)
}

// Matches compara en tiempo constante el digest almacenado con el de la contraseña candidata.
func Matches(password, salt, digest string) bool {
	return subtle.ConstantTimeCompare([]byte(Digest(password, salt)), []byte(digest)) == 1
}

// IsStrong aplica la política de fortaleza: al menos un dígito, una minúscula,
// una mayúscula (solo ASCII) y MinLength caracteres. No informa cuál regla falló.
func IsStrong(password string) bool {
	var hasDigit, hasLower, hasUpper bool
	for _, r := range password {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		}
	}
	return hasDigit && hasLower && hasUpper && utf8.RuneCountInString(password) >= MinLength
}
