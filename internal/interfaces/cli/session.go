package cli

import "github.com/jhoicas/retail-cli/internal/domain/entity"

// Session es el estado de la sesión de un proceso interactivo: LoggedOut o
// LoggedIn(user). Es un objeto explícito que el driver del menú pasa a cada
// handler; no hay estado global mutable.
type Session struct {
	user *entity.User
}

// LoggedIn indica si hay un usuario autenticado.
func (s *Session) LoggedIn() bool {
	return s.user != nil
}

// User devuelve el usuario autenticado, o nil en LoggedOut.
func (s *Session) User() *entity.User {
	return s.user
}

// LogIn transiciona a LoggedIn(user). Un login fallido no llama aquí: la
// sesión queda sin cambios.
func (s *Session) LogIn(user *entity.User) {
	s.user = user
}

// LogOut transiciona a LoggedOut.
func (s *Session) LogOut() {
	s.user = nil
}
