package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/retail-cli/internal/domain"
	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/jhoicas/retail-cli/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// Create persiste un nuevo producto (alta de administrador).
func (r *ProductRepo) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO product (storeID, productName, numberOfUnits, pricePerUnit)
		VALUES ($1, $2, $3, $4)`
	_, err := r.q.Exec(ctx, query,
		product.StoreID, product.Name, product.NumberOfUnits, product.PricePerUnit,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert product: %w", err)
	}
	return nil
}

// Get obtiene un producto por su clave compuesta (tienda, nombre).
func (r *ProductRepo) Get(ctx context.Context, storeID int64, name string) (*entity.Product, error) {
	query := `
		SELECT storeID, productName, numberOfUnits, pricePerUnit
		FROM product WHERE storeID = $1 AND productName = $2`
	return r.scanOne(r.q.QueryRow(ctx, query, storeID, name))
}

// GetForUpdate obtiene el producto y bloquea la fila (SELECT FOR UPDATE).
// Pedidos y reabastecimientos lo usan dentro de la transacción para que dos
// escrituras concurrentes no dejen el stock negativo.
func (r *ProductRepo) GetForUpdate(ctx context.Context, storeID int64, name string) (*entity.Product, error) {
	query := `
		SELECT storeID, productName, numberOfUnits, pricePerUnit
		FROM product WHERE storeID = $1 AND productName = $2
		FOR UPDATE`
	return r.scanOne(r.q.QueryRow(ctx, query, storeID, name))
}

func (r *ProductRepo) scanOne(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	err := row.Scan(&p.StoreID, &p.Name, &p.NumberOfUnits, &p.PricePerUnit)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

// ListByStore lista el inventario de una tienda.
func (r *ProductRepo) ListByStore(ctx context.Context, storeID int64) ([]*entity.Product, error) {
	query := `
		SELECT storeID, productName, numberOfUnits, pricePerUnit
		FROM product WHERE storeID = $1 ORDER BY productName`
	rows, err := r.q.Query(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// ListByManager lista los productos de todas las tiendas administradas por
// el gerente dado.
func (r *ProductRepo) ListByManager(ctx context.Context, managerID int64) ([]*entity.Product, error) {
	query := `
		SELECT p.storeID, p.productName, p.numberOfUnits, p.pricePerUnit
		FROM product p
		JOIN store s ON s.storeID = p.storeID
		WHERE s.managerID = $1
		ORDER BY p.storeID, p.productName`
	rows, err := r.q.Query(ctx, query, managerID)
	if err != nil {
		return nil, fmt.Errorf("list products by manager: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// SetUnits fija la cantidad disponible del producto.
func (r *ProductRepo) SetUnits(ctx context.Context, storeID int64, name string, units int) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE product SET numberOfUnits = $3 WHERE storeID = $1 AND productName = $2`,
		storeID, name, units,
	)
	if err != nil {
		return fmt.Errorf("update product units: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// SetPrice fija el precio por unidad del producto.
func (r *ProductRepo) SetPrice(ctx context.Context, storeID int64, name string, price decimal.Decimal) error {
	cmd, err := r.q.Exec(ctx,
		`UPDATE product SET pricePerUnit = $3 WHERE storeID = $1 AND productName = $2`,
		storeID, name, price,
	)
	if err != nil {
		return fmt.Errorf("update product price: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete elimina un producto (baja de administrador).
func (r *ProductRepo) Delete(ctx context.Context, storeID int64, name string) error {
	cmd, err := r.q.Exec(ctx,
		`DELETE FROM product WHERE storeID = $1 AND productName = $2`,
		storeID, name,
	)
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.StoreID, &p.Name, &p.NumberOfUnits, &p.PricePerUnit); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
