package jwt_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/backoffice-api/pkg/jwt"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testIssuer   = "backoffice-test"
	testUsername = "ana@example.com"
)

// fakeClock reloj manipulable desde el test.
type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newService(t *testing.T, clock *fakeClock) *pkgjwt.Service {
	t.Helper()
	svc, err := pkgjwt.NewService(testSecret, testIssuer, pkgjwt.WithClock(clock.Now))
	require.NoError(t, err)
	return svc
}

func TestNewService_SecretVacio(t *testing.T) {
	_, err := pkgjwt.NewService("", testIssuer)
	assert.Error(t, err)
}

func TestGenerateAndParse(t *testing.T) {
	clock := &fakeClock{t: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
	svc := newService(t, clock)

	tok, err := svc.Generate(testUsername)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	username, err := svc.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, testUsername, username)
}

func TestParse_Expiracion(t *testing.T) {
	issuedAt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	clock := &fakeClock{t: issuedAt}
	svc := newService(t, clock)

	tok, err := svc.Generate(testUsername)
	require.NoError(t, err)

	clock.t = issuedAt.Add(time.Second)
	_, err = svc.Parse(tok)
	assert.NoError(t, err, "un segundo después de emitido debe ser válido")

	clock.t = issuedAt.Add(pkgjwt.TokenTTL - time.Second)
	_, err = svc.Parse(tok)
	assert.NoError(t, err, "justo antes de las 4 horas sigue siendo válido")

	clock.t = issuedAt.Add(pkgjwt.TokenTTL + time.Second)
	_, err = svc.Parse(tok)
	assert.True(t, errors.Is(err, pkgjwt.ErrInvalidToken), "después de 4 horas debe vencer")
}

func TestParse_SecretIncorrecto(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	tok, err := newService(t, clock).Generate(testUsername)
	require.NoError(t, err)

	other, err := pkgjwt.NewService("otro-secret-completamente-distinto", testIssuer)
	require.NoError(t, err)
	_, err = other.Parse(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestParse_Malformado(t *testing.T) {
	svc := newService(t, &fakeClock{t: time.Now()})
	for _, raw := range []string{"", "abc", "token.invalido.aqui"} {
		_, err := svc.Parse(raw)
		assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken, raw)
	}
}

func TestParse_FirmaAlterada(t *testing.T) {
	svc := newService(t, &fakeClock{t: time.Now()})
	tok, err := svc.Generate(testUsername)
	require.NoError(t, err)

	parts := strings.Split(tok, ".")
	require.Len(t, parts, 3)
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	_, err = svc.Parse(parts[0] + "." + parts[1] + "." + string(sig))
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}

func TestParse_IssuerDistinto(t *testing.T) {
	clock := &fakeClock{t: time.Now()}
	other, err := pkgjwt.NewService(testSecret, "otro-emisor", pkgjwt.WithClock(clock.Now))
	require.NoError(t, err)
	tok, err := other.Generate(testUsername)
	require.NoError(t, err)

	_, err = newService(t, clock).Parse(tok)
	assert.ErrorIs(t, err, pkgjwt.ErrInvalidToken)
}
