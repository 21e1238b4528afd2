package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/backoffice-api/internal/application/dto"
	"github.com/jhoicas/backoffice-api/internal/domain"
	"github.com/jhoicas/backoffice-api/internal/domain/entity"
	"github.com/jhoicas/backoffice-api/internal/domain/repository"
	"github.com/jhoicas/backoffice-api/pkg/password"
)

// TokenIssuer emite el token de identidad tras un login correcto (lo implementa *jwt.Service).
type TokenIssuer interface {
	Generate(username string) (string, error)
}

// AccountUseCase ciclo de vida de la identidad: alta, autenticación, login y actualización de perfil.
type AccountUseCase struct {
	userRepo repository.UserRepository
	tokens   TokenIssuer
	now      func() time.Time
}

// NewAccountUseCase construye el caso de uso de cuentas.
func NewAccountUseCase(userRepo repository.UserRepository, tokens TokenIssuer) *AccountUseCase {
	return &AccountUseCase{userRepo: userRepo, tokens: tokens, now: time.Now}
}

// Register crea el usuario. Devuelve ErrDuplicatedUsername si el username ya existe y
// ErrWeakPassword si la contraseña no cumple la política. Si falla no persiste nada.
func (uc *AccountUseCase) Register(ctx context.Context, in dto.RegisterRequest) error {
	existing, err := uc.userRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.WithDetail(domain.ErrDuplicatedUsername, in.Username)
	}
	if !password.IsStrong(in.Password) {
		return domain.ErrWeakPassword
	}
	salt, err := password.GenerateSalt()
	if err != nil {
		return err
	}
	now := uc.now()
	user := &entity.User{
		ID:             uuid.New().String(),
		Username:       in.Username,
		PasswordDigest: password.Digest(in.Password, salt),
		Salt:           salt,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	// El índice único cubre la carrera entre el chequeo previo y el insert.
	return uc.userRepo.Create(ctx, user)
}

// Authenticate compara las credenciales. Usuario inexistente y contraseña incorrecta dan false por igual;
// solo las fallas de infraestructura se devuelven como error.
func (uc *AccountUseCase) Authenticate(ctx context.Context, username, pass string) (bool, error) {
	user, err := uc.authenticate(ctx, username, pass)
	if err != nil {
		return false, err
	}
	return user != nil, nil
}

// Login verifica las credenciales y emite un token. Un único error para "usuario desconocido"
// y "contraseña incorrecta", para no revelar cuál falló.
func (uc *AccountUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := uc.authenticate(ctx, in.Username, in.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrInvalidUsernameOrPassword
	}
	token, err := uc.tokens.Generate(user.Username)
	if err != nil {
		return nil, fmt.Errorf("emitir token: %w", err)
	}
	return &dto.LoginResponse{Token: token}, nil
}

// Update reautentica con las credenciales actuales y aplica los cambios opcionales.
// Todas las reglas se validan antes de escribir; username y digest se reemplazan en una sola escritura.
func (uc *AccountUseCase) Update(ctx context.Context, in dto.UpdateAccountRequest) error {
	user, err := uc.authenticate(ctx, in.Username, in.Password)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrInvalidUsernameOrPassword
	}

	changed := false
	if in.NewUsername != nil && *in.NewUsername != user.Username {
		taken, err := uc.userRepo.GetByUsername(ctx, *in.NewUsername)
		if err != nil {
			return err
		}
		if taken != nil {
			return domain.WithDetail(domain.ErrDuplicatedUsername, *in.NewUsername)
		}
		user.Username = *in.NewUsername
		changed = true
	}
	if in.NewPassword != nil {
		if !password.IsStrong(*in.NewPassword) {
			return domain.ErrWeakPassword
		}
		salt, err := password.GenerateSalt()
		if err != nil {
			return err
		}
		user.Salt = salt
		user.PasswordDigest = password.Digest(*in.NewPassword, salt)
		changed = true
	}
	if !changed {
		return nil
	}
	user.UpdatedAt = uc.now()
	return uc.userRepo.Update(ctx, user)
}

// ResolveUserID traduce el username del token al ID del usuario. Si el usuario ya no existe
// (por ejemplo cambió su username) el token deja de servir: ErrInvalidToken.
func (uc *AccountUseCase) ResolveUserID(ctx context.Context, username string) (string, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if user == nil {
		return "", domain.ErrInvalidToken
	}
	return user.ID, nil
}

// authenticate devuelve el usuario si las credenciales coinciden, nil si no.
func (uc *AccountUseCase) authenticate(ctx context.Context, username, pass string) (*entity.User, error) {
	user, err := uc.userRepo.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if user == nil || !password.Matches(pass, user.Salt, user.PasswordDigest) {
		return nil, nil
	}
	return user, nil
}
