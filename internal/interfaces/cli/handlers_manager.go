package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jhoicas/retail-cli/internal/application/usecase"
	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/shopspring/decimal"
)

const notManagerMsg = "Only managers can use this option."

// handleUpdateProduct lista los productos de las tiendas del gerente, valida
// tienda y producto contra ese conjunto, y aplica el cambio de unidades o
// precio junto con su fila de auditoría en una transacción.
func (m *Menu) handleUpdateProduct(ctx context.Context) error {
	user := m.session.User()
	if !user.IsStaff() {
		fmt.Fprintln(m.out, notManagerMsg)
		return nil
	}

	managed, err := m.deps.Products.Managed(ctx, user)
	if err != nil {
		return err
	}
	if len(managed) == 0 {
		fmt.Fprintln(m.out, "You do not manage any store with products.")
		return nil
	}
	m.printManagedProducts(managed)

	storeID, productName, err := m.promptManagedProduct(ctx, managed)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "\t1. Number of units")
	fmt.Fprintln(m.out, "\t2. Price per unit")
	field, err := m.prompt.IntWhere(ctx, choiceLabel,
		func(n int) bool { return n == 1 || n == 2 },
		"Unrecognized choice!")
	if err != nil {
		return err
	}

	var update *entity.ProductUpdate
	switch field {
	case 1:
		units, err := m.prompt.IntWhere(ctx, "\tEnter new number of units",
			func(n int) bool { return n >= 0 }, invalidInputMsg)
		if err != nil {
			return err
		}
		update, err = m.deps.Products.UpdateUnits(ctx, user, storeID, productName, units)
		if err != nil {
			return err
		}
	case 2:
		price, err := m.promptPrice(ctx, "\tEnter new price per unit")
		if err != nil {
			return err
		}
		update, err = m.deps.Products.UpdatePrice(ctx, user, storeID, productName, price)
		if err != nil {
			return err
		}
	}
	fmt.Fprintf(m.out, "Product successfully updated! (update #%d)\n", update.Number)
	return nil
}

// handleViewRecentUpdates muestra, por tienda del gerente, los grupos de
// auditoría más recurrentes (hasta cinco por tienda).
func (m *Menu) handleViewRecentUpdates(ctx context.Context) error {
	user := m.session.User()
	if !user.IsStaff() {
		fmt.Fprintln(m.out, notManagerMsg)
		return nil
	}
	groups, err := m.deps.Reports.RecentUpdates(ctx, user)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(groups))
	for _, g := range groups {
		rows = append(rows, []string{
			strconv.FormatInt(g.StoreID, 10),
			g.ProductName,
			strconv.FormatInt(g.UpdateCount, 10),
		})
	}
	PrintTable(m.out, []string{"storeID", "productName", "updateCount"}, rows)
	return nil
}

// handleViewPopularProducts top 5 de productos por pedidos en las tiendas
// del gerente.
func (m *Menu) handleViewPopularProducts(ctx context.Context) error {
	user := m.session.User()
	if !user.IsStaff() {
		fmt.Fprintln(m.out, notManagerMsg)
		return nil
	}
	top, err := m.deps.Reports.PopularProducts(ctx, user)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(top))
	for _, t := range top {
		rows = append(rows, []string{
			strconv.FormatInt(t.StoreID, 10),
			t.ProductName,
			strconv.FormatInt(t.OrderCount, 10),
		})
	}
	PrintTable(m.out, []string{"storeID", "productName", "orderCount"}, rows)
	return nil
}

// handleViewPopularCustomers top 5 de clientes por pedidos en las tiendas
// del gerente.
func (m *Menu) handleViewPopularCustomers(ctx context.Context) error {
	user := m.session.User()
	if !user.IsStaff() {
		fmt.Fprintln(m.out, notManagerMsg)
		return nil
	}
	top, err := m.deps.Reports.PopularCustomers(ctx, user)
	if err != nil {
		return err
	}
	rows := make([][]string, 0, len(top))
	for _, t := range top {
		rows = append(rows, []string{
			strconv.FormatInt(t.CustomerID, 10),
			t.CustomerName,
			strconv.FormatInt(t.OrderCount, 10),
		})
	}
	PrintTable(m.out, []string{"customerID", "name", "orderCount"}, rows)
	return nil
}

// handleSupplyRequest valida tienda y producto del gerente, bodega destino y
// cantidad, y registra la solicitud (incremento de stock + fila de
// auditoría, en una transacción).
func (m *Menu) handleSupplyRequest(ctx context.Context) error {
	user := m.session.User()
	if !user.IsStaff() {
		fmt.Fprintln(m.out, notManagerMsg)
		return nil
	}

	managed, err := m.deps.Products.Managed(ctx, user)
	if err != nil {
		return err
	}
	if len(managed) == 0 {
		fmt.Fprintln(m.out, "You do not manage any store with products.")
		return nil
	}
	m.printManagedProducts(managed)

	storeID, productName, err := m.promptManagedProduct(ctx, managed)
	if err != nil {
		return err
	}

	warehouses, err := m.deps.Supplies.Warehouses(ctx)
	if err != nil {
		return err
	}
	wrows := make([][]string, 0, len(warehouses))
	known := make(map[int]bool, len(warehouses))
	for _, w := range warehouses {
		known[int(w.ID)] = true
		wrows = append(wrows, []string{strconv.FormatInt(w.ID, 10), w.Area})
	}
	PrintTable(m.out, []string{"warehouseID", "area"}, wrows)

	warehouseID, err := m.prompt.IntWhere(ctx, "\tEnter warehouseID",
		func(id int) bool { return known[id] },
		"\tWarehouse not found, please try again.")
	if err != nil {
		return err
	}
	units, err := m.prompt.PositiveInt(ctx, "\tEnter number of units needed")
	if err != nil {
		return err
	}

	request, err := m.deps.Supplies.Request(ctx, user, usecase.RequestInput{
		StoreID:     storeID,
		ProductName: productName,
		WarehouseID: int64(warehouseID),
		Units:       units,
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(m.out, "Supply request placed! (request #%d)\n", request.Number)
	return nil
}

// promptManagedProduct valida un ID de tienda y un nombre de producto contra
// el conjunto ya consultado de productos administrados.
func (m *Menu) promptManagedProduct(ctx context.Context, managed []*entity.Product) (int64, string, error) {
	byStore := make(map[int]map[string]bool)
	for _, p := range managed {
		if byStore[int(p.StoreID)] == nil {
			byStore[int(p.StoreID)] = make(map[string]bool)
		}
		byStore[int(p.StoreID)][p.Name] = true
	}

	storeChoice, err := m.prompt.IntWhere(ctx, "\tEnter storeID",
		func(id int) bool { return byStore[id] != nil },
		"\tYou do not manage this store, please try again.")
	if err != nil {
		return 0, "", err
	}
	productName, err := m.prompt.LineWhere(ctx, "\tEnter product name",
		func(name string) bool { return byStore[storeChoice][name] },
		"\tProduct not found at this store, please try again.")
	if err != nil {
		return 0, "", err
	}
	return int64(storeChoice), productName, nil
}

func (m *Menu) printManagedProducts(products []*entity.Product) {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			strconv.FormatInt(p.StoreID, 10),
			p.Name,
			strconv.Itoa(p.NumberOfUnits),
			p.PricePerUnit.String(),
		})
	}
	PrintTable(m.out, []string{"storeID", "productName", "numberOfUnits", "pricePerUnit"}, rows)
}

// promptPrice repregunta hasta recibir un precio decimal no negativo.
func (m *Menu) promptPrice(ctx context.Context, label string) (decimal.Decimal, error) {
	for {
		raw, err := m.prompt.Line(ctx, label)
		if err != nil {
			return decimal.Zero, err
		}
		price, err := decimal.NewFromString(raw)
		if err != nil || price.IsNegative() {
			fmt.Fprintln(m.out, invalidInputMsg)
			continue
		}
		return price, nil
	}
}
