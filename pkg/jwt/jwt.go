package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenTTL vigencia fija de todo token emitido. No hay refresh: al vencer se vuelve a hacer login.
const TokenTTL = 4 * time.Hour

var (
	// ErrSigning falla del firmante; es fatal para la operación.
	ErrSigning = errors.New("jwt: no se pudo firmar el token")
	// ErrInvalidToken firma incorrecta, token malformado o vencido.
	ErrInvalidToken = errors.New("jwt: token inválido")
)

// Claims claims estándar más el username, que es la identidad que viaja en el token.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
}

// Service emite y verifica tokens HS256 sin estado (no hay lista de revocación).
type Service struct {
	secret []byte
	issuer string
	now    func() time.Time
}

// Option configura el Service.
type Option func(*Service)

// WithClock reemplaza el reloj (tests de expiración).
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService construye el servicio de tokens. El secret es obligatorio.
func NewService(secret, issuer string, opts ...Option) (*Service, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	s := &Service{secret: []byte(secret), issuer: issuer, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Generate emite un token firmado para el username, válido por TokenTTL desde ahora.
func (s *Service) Generate(username string) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		Username: username,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrSigning, err)
	}
	return signed, nil
}

// Parse valida firma, formato y expiración y devuelve el username.
// Cualquier falla se reporta como ErrInvalidToken (envuelto con la causa).
func (s *Service) Parse(tokenString string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
		jwt.WithExpirationRequired(),
	}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, opts...)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Username == "" {
		return "", fmt.Errorf("%w: claims inválidos", ErrInvalidToken)
	}
	return claims.Username, nil
}
