package auth

import (
	"context"

	"github.com/jhoicas/retail-cli/internal/domain"
	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/jhoicas/retail-cli/internal/domain/repository"
	"golang.org/x/crypto/bcrypt"
)

// UseCase casos de uso de autenticación: registro y login.
type UseCase struct {
	users repository.UserRepository
}

// NewUseCase construye el caso de uso de auth.
func NewUseCase(users repository.UserRepository) *UseCase {
	return &UseCase{users: users}
}

// RegisterInput entrada para el registro de un usuario nuevo.
type RegisterInput struct {
	Name      string
	Password  string
	Latitude  float64
	Longitude float64
}

// Register crea un usuario con rol Customer: hashea el password con bcrypt y
// persiste. El registro no inicia sesión. No hay chequeo de nombre duplicado:
// el esquema original lo permite y el login lo resuelve comparando hashes.
func (uc *UseCase) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	if in.Name == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	hash, err := HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         in.Name,
		PasswordHash: hash,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Role:         entity.RoleCustomer,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifica nombre y password. Como el nombre no es único, compara el
// hash contra cada fila con ese nombre y acepta la primera coincidencia.
// Devuelve ErrNotAuthenticated si no hay coincidencia; la sesión del llamador
// queda sin cambios en ese caso.
func (uc *UseCase) Login(ctx context.Context, name, password string) (*entity.User, error) {
	candidates, err := uc.users.ListByName(ctx, name)
	if err != nil {
		return nil, err
	}
	for _, u := range candidates {
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) == nil {
			return u, nil
		}
	}
	return nil, domain.ErrNotAuthenticated
}

// HashPassword hashea un password con bcrypt (costo por defecto). Lo usa
// también el alta de usuarios del panel de administración.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
