package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/retail-cli/internal/application/usecase"
	"github.com/jhoicas/retail-cli/internal/domain/entity"
)

// handleAdminPanel es el submenú de administración: edición de usuarios y
// productos sobre filas arbitrarias, y diagnóstico de secuencias.
func (m *Menu) handleAdminPanel(ctx context.Context) error {
	user := m.session.User()
	if !user.IsAdmin() {
		fmt.Fprintln(m.out, "Unrecognized choice!")
		return nil
	}

	for {
		fmt.Fprintln(m.out, "ADMIN PANEL")
		fmt.Fprintln(m.out, "-----------")
		fmt.Fprintln(m.out, "1. View all users")
		fmt.Fprintln(m.out, "2. Create user")
		fmt.Fprintln(m.out, "3. Change user role")
		fmt.Fprintln(m.out, "4. Change user location")
		fmt.Fprintln(m.out, "5. Delete user")
		fmt.Fprintln(m.out, "6. View products at a store")
		fmt.Fprintln(m.out, "7. Add product")
		fmt.Fprintln(m.out, "8. Delete product")
		fmt.Fprintln(m.out, "9. View database counters")
		fmt.Fprintln(m.out, "20. Back")

		choice, err := m.prompt.Choice(ctx)
		if err != nil {
			return err
		}

		var handlerErr error
		switch choice {
		case 1:
			handlerErr = m.adminViewUsers(ctx)
		case 2:
			handlerErr = m.adminCreateUser(ctx)
		case 3:
			handlerErr = m.adminChangeRole(ctx)
		case 4:
			handlerErr = m.adminChangeLocation(ctx)
		case 5:
			handlerErr = m.adminDeleteUser(ctx)
		case 6:
			handlerErr = m.adminViewProducts(ctx)
		case 7:
			handlerErr = m.adminAddProduct(ctx)
		case 8:
			handlerErr = m.adminDeleteProduct(ctx)
		case 9:
			handlerErr = m.adminViewCounters(ctx)
		case 20:
			return nil
		default:
			fmt.Fprintln(m.out, "Unrecognized choice!")
		}
		if err := m.guard(handlerErr); err != nil {
			return err
		}
	}
}

func (m *Menu) adminViewUsers(ctx context.Context) error {
	users, err := m.deps.Admin.Users(ctx, m.session.User())
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			strconv.FormatInt(u.ID, 10),
			u.Name,
			u.Role,
			strconv.FormatFloat(u.Latitude, 'f', -1, 64),
			strconv.FormatFloat(u.Longitude, 'f', -1, 64),
		})
	}
	PrintTable(m.out, []string{"userID", "name", "type", "latitude", "longitude"}, rows)
	return nil
}

func (m *Menu) adminCreateUser(ctx context.Context) error {
	name, err := m.prompt.Line(ctx, "\tEnter name")
	if err != nil {
		return err
	}
	password, err := m.prompt.Line(ctx, "\tEnter password")
	if err != nil {
		return err
	}
	latitude, err := m.prompt.Float(ctx, "\tEnter latitude")
	if err != nil {
		return err
	}
	longitude, err := m.prompt.Float(ctx, "\tEnter longitude")
	if err != nil {
		return err
	}
	role, err := m.promptRole(ctx)
	if err != nil {
		return err
	}

	_, err = m.deps.Admin.CreateUser(ctx, m.session.User(), usecase.CreateUserInput{
		Name:      name,
		Password:  password,
		Latitude:  latitude,
		Longitude: longitude,
		Role:      role,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "User successfully created!")
	return nil
}

func (m *Menu) adminChangeRole(ctx context.Context) error {
	userID, err := m.promptExistingUser(ctx)
	if err != nil {
		return err
	}
	role, err := m.promptRole(ctx)
	if err != nil {
		return err
	}
	if err := m.deps.Admin.UpdateUserRole(ctx, m.session.User(), userID, role); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "User successfully updated!")
	return nil
}

func (m *Menu) adminChangeLocation(ctx context.Context) error {
	userID, err := m.promptExistingUser(ctx)
	if err != nil {
		return err
	}
	latitude, err := m.prompt.Float(ctx, "\tEnter latitude")
	if err != nil {
		return err
	}
	longitude, err := m.prompt.Float(ctx, "\tEnter longitude")
	if err != nil {
		return err
	}
	if err := m.deps.Admin.UpdateUserLocation(ctx, m.session.User(), userID, latitude, longitude); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "User successfully updated!")
	return nil
}

func (m *Menu) adminDeleteUser(ctx context.Context) error {
	userID, err := m.promptExistingUser(ctx)
	if err != nil {
		return err
	}
	if err := m.deps.Admin.DeleteUser(ctx, m.session.User(), userID); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "User successfully deleted!")
	return nil
}

func (m *Menu) adminViewProducts(ctx context.Context) error {
	storeID, err := m.promptExistingStore(ctx, "\tEnter Store ID to view products")
	if err != nil {
		return err
	}
	products, err := m.deps.Admin.ProductsAt(ctx, m.session.User(), storeID)
	if err != nil {
		return err
	}
	m.printProducts(products)
	return nil
}

func (m *Menu) adminAddProduct(ctx context.Context) error {
	storeID, err := m.promptExistingStore(ctx, "\tEnter Store ID")
	if err != nil {
		return err
	}
	name, err := m.prompt.LineWhere(ctx, "\tEnter product name",
		func(s string) bool { return s != "" }, invalidInputMsg)
	if err != nil {
		return err
	}
	units, err := m.prompt.IntWhere(ctx, "\tEnter number of units",
		func(n int) bool { return n >= 0 }, invalidInputMsg)
	if err != nil {
		return err
	}
	price, err := m.promptPrice(ctx, "\tEnter price per unit")
	if err != nil {
		return err
	}

	err = m.deps.Admin.AddProduct(ctx, m.session.User(), &entity.Product{
		StoreID:       storeID,
		Name:          name,
		NumberOfUnits: units,
		PricePerUnit:  price,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Product successfully created!")
	return nil
}

func (m *Menu) adminDeleteProduct(ctx context.Context) error {
	storeID, err := m.promptExistingStore(ctx, "\tEnter Store ID")
	if err != nil {
		return err
	}
	products, err := m.deps.Admin.ProductsAt(ctx, m.session.User(), storeID)
	if err != nil {
		return err
	}
	known := make(map[string]bool, len(products))
	for _, p := range products {
		known[p.Name] = true
	}
	name, err := m.prompt.LineWhere(ctx, "\tEnter product name",
		func(s string) bool { return known[s] },
		"\tProduct not found at this store, please try again.")
	if err != nil {
		return err
	}
	if err := m.deps.Admin.DeleteProduct(ctx, m.session.User(), storeID, name); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Product successfully deleted!")
	return nil
}

func (m *Menu) adminViewCounters(ctx context.Context) error {
	counters, err := m.deps.Admin.Counters(ctx, m.session.User())
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(counters))
	for _, c := range counters {
		rows = append(rows, []string{c.Name, strconv.FormatInt(c.Value, 10)})
	}
	PrintTable(m.out, []string{"sequence", "last_value"}, rows)
	return nil
}

// promptRole repregunta hasta recibir un rol válido.
func (m *Menu) promptRole(ctx context.Context) (string, error) {
	return m.prompt.LineWhere(ctx, "\tEnter role (Customer, Manager, Admin)",
		func(s string) bool {
			return s == entity.RoleCustomer || s == entity.RoleManager || s == entity.RoleAdmin
		},
		invalidInputMsg)
}

// promptExistingUser repregunta hasta recibir un ID de usuario existente.
func (m *Menu) promptExistingUser(ctx context.Context) (int64, error) {
	users, err := m.deps.Admin.Users(ctx, m.session.User())
	if err != nil {
		return 0, err
	}
	known := make(map[int]bool, len(users))
	for _, u := range users {
		known[int(u.ID)] = true
	}
	id, err := m.prompt.IntWhere(ctx, "\tEnter userID",
		func(id int) bool { return known[id] },
		"\tUser not found, please try again.")
	if err != nil {
		return 0, err
	}
	return int64(id), nil
}
