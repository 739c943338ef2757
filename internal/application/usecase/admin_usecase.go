package usecase

import (
	"context"

	"github.com/jhoicas/retail-cli/internal/application/auth"
	"github.com/jhoicas/retail-cli/internal/domain"
	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/jhoicas/retail-cli/internal/domain/repository"
)

// Counter es una fila de la vista de contadores: el estado de una secuencia
// generadora de IDs.
type Counter struct {
	Name  string
	Value int64
}

// AdminUseCase operaciones del panel de administración: edición de usuarios
// y productos sobre filas arbitrarias, y diagnóstico de secuencias.
type AdminUseCase struct {
	users     repository.UserRepository
	stores    repository.StoreRepository
	products  repository.ProductRepository
	sequences SequenceReader
	// Nombres de secuencias a mostrar en la vista de contadores.
	counterNames []string
}

// NewAdminUseCase construye el caso de uso.
func NewAdminUseCase(
	users repository.UserRepository,
	stores repository.StoreRepository,
	products repository.ProductRepository,
	sequences SequenceReader,
	counterNames []string,
) *AdminUseCase {
	return &AdminUseCase{
		users:        users,
		stores:       stores,
		products:     products,
		sequences:    sequences,
		counterNames: counterNames,
	}
}

func requireAdmin(actor *entity.User) error {
	if !actor.IsAdmin() {
		return domain.ErrForbidden
	}
	return nil
}

// Users lista todos los usuarios.
func (uc *AdminUseCase) Users(ctx context.Context, actor *entity.User) ([]*entity.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return uc.users.List(ctx)
}

// CreateUserInput entrada para el alta de usuario por administrador: a
// diferencia del registro público, el rol es elegible.
type CreateUserInput struct {
	Name      string
	Password  string
	Latitude  float64
	Longitude float64
	Role      string
}

// CreateUser da de alta un usuario con rol arbitrario.
func (uc *AdminUseCase) CreateUser(ctx context.Context, actor *entity.User, in CreateUserInput) (*entity.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if in.Name == "" || in.Password == "" {
		return nil, domain.ErrInvalidInput
	}
	switch in.Role {
	case entity.RoleCustomer, entity.RoleManager, entity.RoleAdmin:
	default:
		return nil, domain.ErrInvalidInput
	}
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := &entity.User{
		Name:         in.Name,
		PasswordHash: hash,
		Latitude:     in.Latitude,
		Longitude:    in.Longitude,
		Role:         in.Role,
	}
	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUserRole cambia el rol de un usuario existente.
func (uc *AdminUseCase) UpdateUserRole(ctx context.Context, actor *entity.User, userID int64, role string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	switch role {
	case entity.RoleCustomer, entity.RoleManager, entity.RoleAdmin:
	default:
		return domain.ErrInvalidInput
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	user.Role = role
	return uc.users.Update(ctx, user)
}

// UpdateUserLocation cambia las coordenadas de un usuario existente.
func (uc *AdminUseCase) UpdateUserLocation(ctx context.Context, actor *entity.User, userID int64, latitude, longitude float64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	user, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return domain.ErrUserNotFound
	}
	user.Latitude = latitude
	user.Longitude = longitude
	return uc.users.Update(ctx, user)
}

// DeleteUser elimina un usuario por ID. No se permite la autoeliminación:
// dejaría la sesión activa apuntando a una fila inexistente.
func (uc *AdminUseCase) DeleteUser(ctx context.Context, actor *entity.User, userID int64) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if userID == actor.ID {
		return domain.ErrInvalidInput
	}
	return uc.users.Delete(ctx, userID)
}

// AddProduct da de alta un producto en una tienda existente.
func (uc *AdminUseCase) AddProduct(ctx context.Context, actor *entity.User, product *entity.Product) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if product.Name == "" || product.NumberOfUnits < 0 || product.PricePerUnit.IsNegative() {
		return domain.ErrInvalidInput
	}
	store, err := uc.stores.GetByID(ctx, product.StoreID)
	if err != nil {
		return err
	}
	if store == nil {
		return domain.ErrNotFound
	}
	return uc.products.Create(ctx, product)
}

// DeleteProduct elimina un producto por su clave compuesta.
func (uc *AdminUseCase) DeleteProduct(ctx context.Context, actor *entity.User, storeID int64, name string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	return uc.products.Delete(ctx, storeID, name)
}

// ProductsAt lista el inventario de cualquier tienda.
func (uc *AdminUseCase) ProductsAt(ctx context.Context, actor *entity.User, storeID int64) ([]*entity.Product, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return uc.products.ListByStore(ctx, storeID)
}

// Counters devuelve el estado de las secuencias generadoras de IDs.
func (uc *AdminUseCase) Counters(ctx context.Context, actor *entity.User) ([]Counter, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	counters := make([]Counter, 0, len(uc.counterNames))
	for _, name := range uc.counterNames {
		value, err := uc.sequences.Current(ctx, name)
		if err != nil {
			return nil, err
		}
		counters = append(counters, Counter{Name: name, Value: value})
	}
	return counters, nil
}
