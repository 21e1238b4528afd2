package http

import (
	"context"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/backoffice-api/internal/domain"
)

// Locals keys en Fiber.
const (
	LocalUsername = "username"
	LocalUserID   = "user_id"
)

// TokenVerifier valida un token y devuelve el username que identifica (lo implementa *jwt.Service).
type TokenVerifier interface {
	Parse(token string) (string, error)
}

// UserResolver traduce el username del token al ID interno del usuario.
type UserResolver interface {
	ResolveUserID(ctx context.Context, username string) (string, error)
}

// AuthOutcome resultado de evaluar el header Authorization.
type AuthOutcome int

const (
	AuthOK AuthOutcome = iota
	AuthMissingCredentials
	AuthMalformedHeader
	AuthInvalidToken
)

// AuthResult decisión del gate: Username solo está presente con AuthOK.
type AuthResult struct {
	Outcome  AuthOutcome
	Username string
}

// Err el error de dominio correspondiente; nil con AuthOK.
func (r AuthResult) Err() error {
	switch r.Outcome {
	case AuthMissingCredentials:
		return domain.ErrMissingCredentials
	case AuthMalformedHeader:
		return domain.ErrMalformedHeader
	case AuthInvalidToken:
		return domain.ErrInvalidToken
	default:
		return nil
	}
}

// EvaluateAuthorization decide sobre el header Authorization sin tocar la petición:
//   - vacío: faltan credenciales
//   - dos partes y la primera no es "Bearer": faltan credenciales
//   - cualquier otro número de partes: header malformado
//   - token rechazado por el verificador: token inválido
func EvaluateAuthorization(header string, verifier TokenVerifier) AuthResult {
	if header == "" {
		return AuthResult{Outcome: AuthMissingCredentials}
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 {
		return AuthResult{Outcome: AuthMalformedHeader}
	}
	if parts[0] != "Bearer" {
		return AuthResult{Outcome: AuthMissingCredentials}
	}
	username, err := verifier.Parse(parts[1])
	if err != nil {
		return AuthResult{Outcome: AuthInvalidToken}
	}
	return AuthResult{Outcome: AuthOK, Username: username}
}

// AuthMiddleware valida el Bearer Token y deja el username en c.Locals.
// Sin credenciales responde 401 con el desafío WWW-Authenticate; header malformado 400; token inválido 401.
func AuthMiddleware(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		res := EvaluateAuthorization(c.Get(fiber.HeaderAuthorization), verifier)
		switch res.Outcome {
		case AuthOK:
			c.Locals(LocalUsername, res.Username)
			return c.Next()
		case AuthMissingCredentials:
			c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
			return writeError(c, fiber.StatusUnauthorized, res.Err())
		case AuthMalformedHeader:
			return writeError(c, fiber.StatusBadRequest, res.Err())
		default:
			return writeError(c, fiber.StatusUnauthorized, res.Err())
		}
	}
}

// ResolveUser carga el ID del usuario autenticado. Va después de AuthMiddleware.
func ResolveUser(resolver UserResolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID, err := resolver.ResolveUserID(c.UserContext(), GetUsername(c))
		if err != nil {
			return respondError(c, err)
		}
		c.Locals(LocalUserID, userID)
		return c.Next()
	}
}

// GetUsername devuelve el username del token (después del middleware de auth).
func GetUsername(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUsername).(string)
	return s
}

// GetUserID devuelve el ID del usuario autenticado (después de ResolveUser).
func GetUserID(c *fiber.Ctx) string {
	s, _ := c.Locals(LocalUserID).(string)
	return s
}
