package entity

// Roles válidos para User. Se persisten capitalizados, igual que los datos
// originales de la cadena (columna users.type).
const (
	RoleCustomer = "Customer"
	RoleManager  = "Manager"
	RoleAdmin    = "Admin"
)

// User representa un usuario de la cadena minorista. Las coordenadas se usan
// para el filtro de tiendas cercanas.
type User struct {
	ID           int64
	Name         string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Latitude     float64
	Longitude    float64
	Role         string // Customer, Manager, Admin
}

// IsStaff indica si el usuario puede usar las operaciones de gestión de
// inventario (gerente o administrador).
func (u *User) IsStaff() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

// IsAdmin indica si el usuario puede usar el panel de administración.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
