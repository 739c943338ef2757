package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/retail-cli/internal/domain"
	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/jhoicas/retail-cli/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación del puerto UserRepository sobre PostgreSQL
// (usable con pool o tx).
type UserRepo struct {
	q Querier
}

// NewUserRepository construye el adaptador de persistencia para usuarios.
// Pasar pool o tx (Querier).
func NewUserRepository(q Querier) *UserRepo {
	return &UserRepo{q: q}
}

// Create persiste un nuevo usuario y rellena user.ID desde la secuencia.
func (r *UserRepo) Create(ctx context.Context, user *entity.User) error {
	query := `
		INSERT INTO users (name, password, latitude, longitude, type)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING userID`
	err := r.q.QueryRow(ctx, query,
		user.Name, user.PasswordHash, user.Latitude, user.Longitude, user.Role,
	).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

// GetByID obtiene un usuario por ID.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `
		SELECT userID, name, password, latitude, longitude, type
		FROM users WHERE userID = $1`
	var u entity.User
	err := r.q.QueryRow(ctx, query, id).Scan(
		&u.ID, &u.Name, &u.PasswordHash, &u.Latitude, &u.Longitude, &u.Role,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get user by id: %w", err)
	}
	return &u, nil
}

// ListByName devuelve todos los usuarios con ese nombre. El esquema original
// no impone unicidad, así que el login compara el hash contra cada fila.
func (r *UserRepo) ListByName(ctx context.Context, name string) ([]*entity.User, error) {
	query := `
		SELECT userID, name, password, latitude, longitude, type
		FROM users WHERE name = $1 ORDER BY userID`
	rows, err := r.q.Query(ctx, query, name)
	if err != nil {
		return nil, fmt.Errorf("list users by name: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

// List devuelve todos los usuarios (vista de administración).
func (r *UserRepo) List(ctx context.Context) ([]*entity.User, error) {
	query := `
		SELECT userID, name, password, latitude, longitude, type
		FROM users ORDER BY userID`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()
	return scanUsers(rows)
}

// Update actualiza un usuario (edición de administrador).
func (r *UserRepo) Update(ctx context.Context, user *entity.User) error {
	query := `
		UPDATE users SET name = $2, password = $3, latitude = $4, longitude = $5, type = $6
		WHERE userID = $1`
	cmd, err := r.q.Exec(ctx, query,
		user.ID, user.Name, user.PasswordHash, user.Latitude, user.Longitude, user.Role,
	)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// Delete elimina un usuario por ID.
func (r *UserRepo) Delete(ctx context.Context, id int64) error {
	cmd, err := r.q.Exec(ctx, `DELETE FROM users WHERE userID = $1`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func scanUsers(rows pgx.Rows) ([]*entity.User, error) {
	var list []*entity.User
	for rows.Next() {
		var u entity.User
		if err := rows.Scan(&u.ID, &u.Name, &u.PasswordHash, &u.Latitude, &u.Longitude, &u.Role); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		list = append(list, &u)
	}
	return list, rows.Err()
}
