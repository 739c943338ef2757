package cli

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/jhoicas/retail-cli/internal/application/auth"
	"github.com/jhoicas/retail-cli/internal/domain"
	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/jhoicas/retail-cli/internal/domain/repository"
	"github.com/jhoicas/retail-cli/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memUserRepo fake mínimo del puerto de usuarios para probar el driver del
// menú con el caso de uso de auth real.
type memUserRepo struct {
	users  []*entity.User
	nextID int64
}

var _ repository.UserRepository = (*memUserRepo)(nil)

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users = append(r.users, &cp)
	return nil
}

func (r *memUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *memUserRepo) ListByName(_ context.Context, name string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Name == name {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memUserRepo) List(_ context.Context) ([]*entity.User, error) { return r.users, nil }

func (r *memUserRepo) Update(_ context.Context, user *entity.User) error {
	for i, u := range r.users {
		if u.ID == user.ID {
			cp := *user
			r.users[i] = &cp
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (r *memUserRepo) Delete(_ context.Context, id int64) error {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func newTestMenu(input string) (*Menu, *bytes.Buffer) {
	out := &bytes.Buffer{}
	deps := Deps{Auth: auth.NewUseCase(&memUserRepo{})}
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	return New(log, strings.NewReader(input), out, io.Discard, deps), out
}

func TestMenu_RegistroLoginLogout(t *testing.T) {
	// Crear usuario, entrar, salir de la sesión y salir del programa.
	m, out := newTestMenu("1\nalice\npw\n1.5\n2.5\n2\nalice\npw\n20\n9\n")

	err := m.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "User successfully created!")
	assert.Contains(t, out.String(), "20. Log out", "tras el login se muestra el menú de usuario")
	assert.False(t, m.Session().LoggedIn(), "al terminar la sesión queda cerrada")
}

func TestMenu_LoginInvalido(t *testing.T) {
	m, out := newTestMenu("2\nalice\npw\n9\n")

	err := m.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "Invalid name or password!")
	assert.False(t, m.Session().LoggedIn(), "un login fallido no cambia la sesión")
}

func TestMenu_OpcionDesconocida(t *testing.T) {
	m, out := newTestMenu("77\n9\n")

	err := m.Run(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Unrecognized choice!")
}

func TestMenu_EOFTermina(t *testing.T) {
	m, _ := newTestMenu("")

	err := m.Run(context.Background())
	assert.ErrorIs(t, err, ErrInputClosed)
}
