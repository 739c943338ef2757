package cli

import (
	"testing"

	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func TestSession_Transiciones(t *testing.T) {
	s := &Session{}
	assert.False(t, s.LoggedIn())
	assert.Nil(t, s.User())

	user := &entity.User{ID: 1, Name: "alice", Role: entity.RoleCustomer}
	s.LogIn(user)
	assert.True(t, s.LoggedIn())
	assert.Equal(t, user, s.User())

	s.LogOut()
	assert.False(t, s.LoggedIn())
	assert.Nil(t, s.User())
}
