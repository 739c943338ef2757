package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jhoicas/retail-cli/internal/application/auth"
	"github.com/jhoicas/retail-cli/internal/application/usecase"
	"github.com/jhoicas/retail-cli/internal/domain"
	"github.com/jhoicas/retail-cli/internal/domain/entity"
)

// handleCreateUser registra un usuario nuevo con rol Customer. El registro
// no inicia sesión.
func (m *Menu) handleCreateUser(ctx context.Context) error {
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

	_, err = m.deps.Auth.Register(ctx, auth.RegisterInput{
		Name:      name,
		Password:  password,
		Latitude:  latitude,
		Longitude: longitude,
	})
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "User successfully created!")
	return nil
}

// handleLogIn autentica y, si hay coincidencia, transiciona la sesión a
// LoggedIn. Si no, imprime el aviso y la sesión queda igual.
func (m *Menu) handleLogIn(ctx context.Context) error {
	name, err := m.prompt.Line(ctx, "\tEnter name")
	if err != nil {
		return err
	}
	password, err := m.prompt.Line(ctx, "\tEnter password")
	if err != nil {
		return err
	}

	user, err := m.deps.Auth.Login(ctx, name, password)
	if err != nil {
		if errors.Is(err, domain.ErrNotAuthenticated) {
			fmt.Fprintln(m.out, "Invalid name or password!")
			return nil
		}
		return err
	}
	m.session.LogIn(user)
	m.log.Info().Int64("user_id", user.ID).Str("role", user.Role).Msg("sesión iniciada")
	return nil
}

// handleViewStores lista las tiendas a menos de 30 unidades del usuario.
func (m *Menu) handleViewStores(ctx context.Context) error {
	user := m.session.User()
	stores, err := m.deps.Stores.Nearby(ctx, user.Latitude, user.Longitude)
	if err != nil {
		return err
	}
	fmt.Fprintln(m.out, "\tResult:")
	rows := make([][]string, 0, len(stores))
	for _, s := range stores {
		rows = append(rows, []string{strconv.FormatInt(s.ID, 10), s.Name})
	}
	PrintTable(m.out, []string{"storeID", "name"}, rows)
	return nil
}

// handleViewProducts pide un ID de tienda (repreguntando hasta que exista en
// el conjunto ya consultado) y lista su inventario.
func (m *Menu) handleViewProducts(ctx context.Context) error {
	storeID, err := m.promptExistingStore(ctx, "\tEnter Store ID to view products")
	if err != nil {
		return err
	}
	products, err := m.deps.Stores.Products(ctx, storeID)
	if err != nil {
		return err
	}
	m.printProducts(products)
	return nil
}

// handlePlaceOrder guía el pedido completo: tienda cercana, producto con
// stock suficiente, cantidad, y la transacción de colocación.
func (m *Menu) handlePlaceOrder(ctx context.Context) error {
	user := m.session.User()
	nearby, err := m.deps.Stores.Nearby(ctx, user.Latitude, user.Longitude)
	if err != nil {
		return err
	}
	if len(nearby) == 0 {
		fmt.Fprintln(m.out, "No stores within 30 miles.")
		return nil
	}

	fmt.Fprintln(m.out, "\tAvailable stores in your area:")
	inRange := make(map[int]bool, len(nearby))
	for _, s := range nearby {
		inRange[int(s.ID)] = true
		fmt.Fprintf(m.out, "\t%d\t%s\n", s.ID, s.Name)
	}

	storeChoice, err := m.prompt.IntWhere(ctx, "\tEnter storeID for desired store pickup",
		func(id int) bool { return inRange[id] },
		"\tStore not within 30 miles, please try again.")
	if err != nil {
		return err
	}
	storeID := int64(storeChoice)

	products, err := m.deps.Stores.Products(ctx, storeID)
	if err != nil {
		return err
	}
	m.printProducts(products)
	stock := make(map[string]int, len(products))
	for _, p := range products {
		stock[p.Name] = p.NumberOfUnits
	}

	// Nombre y cantidad se validan juntos: un nombre inexistente o una
	// cantidad por encima del stock observado vuelven a preguntar, sin
	// tocar la base de datos.
	var productName string
	var units int
	for {
		productName, err = m.prompt.LineWhere(ctx, "\tEnter product name",
			func(name string) bool { _, ok := stock[name]; return ok },
			"\tProduct not found at this store, please try again.")
		if err != nil {
			return err
		}
		units, err = m.prompt.PositiveInt(ctx, "\tEnter number of units")
		if err != nil {
			return err
		}
		if units <= stock[productName] {
			break
		}
		fmt.Fprintln(m.out, "\tNot enough units in stock, please try again.")
	}

	order, err := m.deps.Orders.Place(ctx, usecase.PlaceInput{
		CustomerID:  user.ID,
		StoreID:     storeID,
		ProductName: productName,
		Units:       units,
	})
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientStock) {
			fmt.Fprintln(m.out, "\tNot enough units in stock, order was not placed.")
			return nil
		}
		return err
	}
	fmt.Fprintf(m.out, "Order placed! Order number: %d\n", order.Number)
	return nil
}

// handleViewRecentOrders lista los cinco pedidos más recientes del usuario,
// del más nuevo al más viejo.
func (m *Menu) handleViewRecentOrders(ctx context.Context) error {
	user := m.session.User()
	orders, err := m.deps.Orders.Recent(ctx, user.ID)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			strconv.FormatInt(o.Number, 10),
			o.StoreName,
			o.ProductName,
			strconv.Itoa(o.UnitsOrdered),
			o.OrderTime.Format("2006-01-02 15:04:05"),
		})
	}
	PrintTable(m.out, []string{"orderNumber", "storeName", "productName", "unitsOrdered", "orderTime"}, rows)
	return nil
}

// promptExistingStore repregunta hasta recibir un ID presente en el conjunto
// de tiendas ya consultado.
func (m *Menu) promptExistingStore(ctx context.Context, label string) (int64, error) {
	known, err := m.deps.Stores.KnownIDs(ctx)
	if err != nil {
		return 0, err
	}
	id, err := m.prompt.IntWhere(ctx, label,
		func(id int) bool { return known[int64(id)] },
		"\tStore not found, please try again.")
	if err != nil {
		return 0, err
	}
	return int64(id), nil
}

func (m *Menu) printProducts(products []*entity.Product) {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{p.Name, strconv.Itoa(p.NumberOfUnits), p.PricePerUnit.String()})
	}
	PrintTable(m.out, []string{"productName", "numberOfUnits", "pricePerUnit"}, rows)
}
