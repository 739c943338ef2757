package repository

import (
	"context"

	"github.com/jhoicas/retail-cli/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User (DIP).
type UserRepository interface {
	// Create persiste el usuario y rellena user.ID con el valor generado
	// por la secuencia (INSERT ... RETURNING).
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	// ListByName devuelve todos los usuarios con ese nombre. El esquema no
	// impone unicidad de nombre, así que puede haber varios.
	ListByName(ctx context.Context, name string) ([]*entity.User, error)
	List(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id int64) error
}
