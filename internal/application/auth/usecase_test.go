package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/backoffice-api/internal/application/auth"
	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/infrastructure/memory"
	pkgjwt "github.com/jhoicas/backoffice-api/pkg/jwt"
)

const (
	testSecret   = "test-secret-key-for-unit-tests"
	testUsername = "ana@example.com"
	testPassword = "Secreta1"
)

type failingIssuer struct{}

func (failingIssuer) Generate(string) (string, error) { return "", pkgjwt.ErrSigning }

func newAccountUC(t *testing.T) (*auth.AccountUseCase, *memory.Store, *pkgjwt.Service) {
	t.Helper()
	store := memory.NewStore()
	tokens, err := pkgjwt.NewService(testSecret, "test")
	require.NoError(t, err)
	return auth.NewAccountUseCase(store.Users(), tokens), store, tokens
}

func register(t *testing.T, uc *auth.AccountUseCase, username, pass string) {
	t.Helper()
	require.NoError(t, uc.Register(context.Background(), dto.RegisterRequest{Username: username, Password: pass}))
}

func strPtr(s string) *string { return &s }

func TestRegister_Ok(t *testing.T) {
	uc, store, _ := newAccountUC(t)
	register(t, uc, testUsername, testPassword)

	user, err := store.Users().GetByUsername(context.Background(), testUsername)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, testPassword, user.PasswordDigest, "nunca se guarda la contraseña en claro")
	assert.Len(t, user.Salt, 32)
}

func TestRegister_PasswordDebil(t *testing.T) {
	ctx := context.Background()
	for _, weak := range []string{"abc123", "ABC123", "Abcdef", "Ab1", ""} {
		uc, store, _ := newAccountUC(t)
		err := uc.Register(ctx, dto.RegisterRequest{Username: testUsername, Password: weak})
		assert.ErrorIs(t, err, domain.ErrWeakPassword, weak)

		user, err := store.Users().GetByUsername(ctx, testUsername)
		require.NoError(t, err)
		assert.Nil(t, user, "no se crea usuario con contraseña débil")
	}
}

func TestRegister_UsernameDuplicado(t *testing.T) {
	ctx := context.Background()
	uc, store, _ := newAccountUC(t)
	register(t, uc, testUsername, testPassword)
	before, err := store.Users().GetByUsername(ctx, testUsername)
	require.NoError(t, err)

	err = uc.Register(ctx, dto.RegisterRequest{Username: testUsername, Password: "Otra1234"})
	assert.ErrorIs(t, err, domain.ErrDuplicatedUsername)
	assert.Equal(t, testUsername, domain.DetailOf(err))

	after, err := store.Users().GetByUsername(ctx, testUsername)
	require.NoError(t, err)
	assert.Equal(t, before, after, "el registro original no cambia")
}

func TestRegister_DuplicadoSeReportaAntesQueDebil(t *testing.T) {
	uc, _, _ := newAccountUC(t)
	register(t, uc, testUsername, testPassword)

	err := uc.Register(context.Background(), dto.RegisterRequest{Username: testUsername, Password: "x"})
	assert.ErrorIs(t, err, domain.ErrDuplicatedUsername)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newAccountUC(t)
	register(t, uc, testUsername, testPassword)

	ok, err := uc.Authenticate(ctx, testUsername, testPassword)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.Authenticate(ctx, testUsername, "Incorrecta1")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = uc.Authenticate(ctx, "nadie@example.com", testPassword)
	require.NoError(t, err, "usuario inexistente no es error")
	assert.False(t, ok)
}

func TestLogin_TokenVerificable(t *testing.T) {
	uc, _, tokens := newAccountUC(t)
	register(t, uc, testUsername, testPassword)

	out, err := uc.Login(context.Background(), dto.LoginRequest{Username: testUsername, Password: testPassword})
	require.NoError(t, err)

	username, err := tokens.Parse(out.Token)
	require.NoError(t, err)
	assert.Equal(t, testUsername, username)
}

func TestLogin_MismoErrorParaUsuarioYPassword(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newAccountUC(t)
	register(t, uc, testUsername, testPassword)

	_, errWrongPass := uc.Login(ctx, dto.LoginRequest{Username: testUsername, Password: "Incorrecta1"})
	_, errUnknown := uc.Login(ctx, dto.LoginRequest{Username: "nadie@example.com", Password: testPassword})

	assert.ErrorIs(t, errWrongPass, domain.ErrInvalidUsernameOrPassword)
	assert.ErrorIs(t, errUnknown, domain.ErrInvalidUsernameOrPassword)
	assert.Equal(t, errWrongPass.Error(), errUnknown.Error())
}

func TestLogin_FallaDelFirmante(t *testing.T) {
	store := memory.NewStore()
	uc := auth.NewAccountUseCase(store.Users(), failingIssuer{})
	register(t, uc, testUsername, testPassword)

	_, err := uc.Login(context.Background(), dto.LoginRequest{Username: testUsername, Password: testPassword})
	require.Error(t, err)
	assert.True(t, errors.Is(err, pkgjwt.ErrSigning))
	assert.False(t, errors.Is(err, domain.ErrInvalidUsernameOrPassword))
}

func TestUpdate_CredencialesActualesIncorrectas(t *testing.T) {
	ctx := context.Background()
	uc, store, _ := newAccountUC(t)
	register(t, uc, testUsername, testPassword)

	err := uc.Update(ctx, dto.UpdateAccountRequest{
		Username: testUsername, Password: "Incorrecta1", NewUsername: strPtr("bia@example.com"),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidUsernameOrPassword)

	user, err := store.Users().GetByUsername(ctx, testUsername)
	require.NoError(t, err)
	assert.NotNil(t, user, "no hubo actualización parcial")
}

func TestUpdate_CambiaUsernameYPassword(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newAccountUC(t)
	register(t, uc, testUsername, testPassword)

	err := uc.Update(ctx, dto.UpdateAccountRequest{
		Username: testUsername, Password: testPassword,
		NewUsername: strPtr("bia@example.com"), NewPassword: strPtr("Nueva123"),
	})
	require.NoError(t, err)

	ok, err := uc.Authenticate(ctx, "bia@example.com", "Nueva123")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.Authenticate(ctx, testUsername, testPassword)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestUpdate_UsernameTomado(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newAccountUC(t)
	register(t, uc, testUsername, testPassword)
	register(t, uc, "bia@example.com", "OtraClave1")

	err := uc.Update(ctx, dto.UpdateAccountRequest{
		Username: testUsername, Password: testPassword,
		NewUsername: strPtr("bia@example.com"), NewPassword: strPtr("Nueva123"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicatedUsername)

	ok, err := uc.Authenticate(ctx, testUsername, testPassword)
	require.NoError(t, err)
	assert.True(t, ok, "la contraseña no cambió: ninguno de los dos cambios se aplicó")
}

func TestUpdate_PasswordDebilNoCambiaUsername(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newAccountUC(t)
	register(t, uc, testUsername, testPassword)

	err := uc.Update(ctx, dto.UpdateAccountRequest{
		Username: testUsername, Password: testPassword,
		NewUsername: strPtr("bia@example.com"), NewPassword: strPtr("debil"),
	})
	assert.ErrorIs(t, err, domain.ErrWeakPassword)

	ok, err := uc.Authenticate(ctx, testUsername, testPassword)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestUpdate_MismoUsernameNoEsDuplicado(t *testing.T) {
	uc, _, _ := newAccountUC(t)
	register(t, uc, testUsername, testPassword)

	err := uc.Update(context.Background(), dto.UpdateAccountRequest{
		Username: testUsername, Password: testPassword, NewUsername: strPtr(testUsername),
	})
	assert.NoError(t, err)
}

func TestResolveUserID(t *testing.T) {
	ctx := context.Background()
	uc, _, _ := newAccountUC(t)
	register(t, uc, testUsername, testPassword)

	id, err := uc.ResolveUserID(ctx, testUsername)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	_, err = uc.ResolveUserID(ctx, "nadie@example.com")
	assert.ErrorIs(t, err, domain.ErrInvalidToken)
}
