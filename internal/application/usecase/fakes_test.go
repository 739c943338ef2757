package usecase_test

import (
	"context"
	"fmt"
	. "github.com/jhoicas/retail-cli/internal/application/usecase"
	"time"

	"github.com/jhoicas/retail-cli/internal/domain/entity"
	"github.com/jhoicas/retail-cli/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// Fakes en memoria para los puertos de repositorio. Los tests de casos de uso
// verifican orquestación y reglas de negocio; el SQL real se prueba aparte.

func productKey(storeID int64, name string) string {
	return fmt.Sprintf("%d/%s", storeID, name)
}

type fakeProductRepo struct {
	products map[string]*entity.Product
}

var _ repository.ProductRepository = (*fakeProductRepo)(nil)

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	r := &fakeProductRepo{products: make(map[string]*entity.Product)}
	for _, p := range products {
		cp := *p
		r.products[productKey(p.StoreID, p.Name)] = &cp
	}
	return r
}

func (r *fakeProductRepo) Create(_ context.Context, product *entity.Product) error {
	cp := *product
	r.products[productKey(product.StoreID, product.Name)] = &cp
	return nil
}

func (r *fakeProductRepo) Get(_ context.Context, storeID int64, name string) (*entity.Product, error) {
	p, ok := r.products[productKey(storeID, name)]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) GetForUpdate(ctx context.Context, storeID int64, name string) (*entity.Product, error) {
	return r.Get(ctx, storeID, name)
}

func (r *fakeProductRepo) ListByStore(_ context.Context, storeID int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		if p.StoreID == storeID {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) ListByManager(_ context.Context, _ int64) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range r.products {
		cp := *p
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeProductRepo) SetUnits(_ context.Context, storeID int64, name string, units int) error {
	p, ok := r.products[productKey(storeID, name)]
	if !ok {
		return fmt.Errorf("producto %d/%s no existe", storeID, name)
	}
	p.NumberOfUnits = units
	return nil
}

func (r *fakeProductRepo) SetPrice(_ context.Context, storeID int64, name string, price decimal.Decimal) error {
	p, ok := r.products[productKey(storeID, name)]
	if !ok {
		return fmt.Errorf("producto %d/%s no existe", storeID, name)
	}
	p.PricePerUnit = price
	return nil
}

func (r *fakeProductRepo) Delete(_ context.Context, storeID int64, name string) error {
	delete(r.products, productKey(storeID, name))
	return nil
}

func (r *fakeProductRepo) units(storeID int64, name string) int {
	return r.products[productKey(storeID, name)].NumberOfUnits
}

type fakeOrderRepo struct {
	orders []*entity.Order
	recent []repository.CustomerOrder
}

var _ repository.OrderRepository = (*fakeOrderRepo)(nil)

func (r *fakeOrderRepo) Create(_ context.Context, order *entity.Order) error {
	order.Number = int64(len(r.orders) + 1)
	order.OrderTime = time.Now()
	cp := *order
	r.orders = append(r.orders, &cp)
	return nil
}

func (r *fakeOrderRepo) ListRecentByCustomer(_ context.Context, _ int64, limit int) ([]repository.CustomerOrder, error) {
	if len(r.recent) > limit {
		return r.recent[:limit], nil
	}
	return r.recent, nil
}

type fakeUpdateRepo struct {
	updates []*entity.ProductUpdate
}

var _ repository.ProductUpdateRepository = (*fakeUpdateRepo)(nil)

func (r *fakeUpdateRepo) Create(_ context.Context, update *entity.ProductUpdate) error {
	update.Number = int64(len(r.updates) + 1)
	update.UpdatedOn = time.Now()
	cp := *update
	r.updates = append(r.updates, &cp)
	return nil
}

type fakeSupplyRepo struct {
	requests []*entity.SupplyRequest
}

var _ repository.SupplyRequestRepository = (*fakeSupplyRepo)(nil)

func (r *fakeSupplyRepo) Create(_ context.Context, request *entity.SupplyRequest) error {
	request.Number = int64(len(r.requests) + 1)
	cp := *request
	r.requests = append(r.requests, &cp)
	return nil
}

type fakeStoreRepo struct {
	stores map[int64]*entity.Store
}

var _ repository.StoreRepository = (*fakeStoreRepo)(nil)

func newFakeStoreRepo(stores ...*entity.Store) *fakeStoreRepo {
	r := &fakeStoreRepo{stores: make(map[int64]*entity.Store)}
	for _, s := range stores {
		cp := *s
		r.stores[s.ID] = &cp
	}
	return r
}

func (r *fakeStoreRepo) List(_ context.Context) ([]*entity.Store, error) {
	var out []*entity.Store
	for _, s := range r.stores {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeStoreRepo) GetByID(_ context.Context, id int64) (*entity.Store, error) {
	s, ok := r.stores[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

type fakeWarehouseRepo struct {
	warehouses map[int64]*entity.Warehouse
}

var _ repository.WarehouseRepository = (*fakeWarehouseRepo)(nil)

func newFakeWarehouseRepo(warehouses ...*entity.Warehouse) *fakeWarehouseRepo {
	r := &fakeWarehouseRepo{warehouses: make(map[int64]*entity.Warehouse)}
	for _, w := range warehouses {
		cp := *w
		r.warehouses[w.ID] = &cp
	}
	return r
}

func (r *fakeWarehouseRepo) List(_ context.Context) ([]*entity.Warehouse, error) {
	var out []*entity.Warehouse
	for _, w := range r.warehouses {
		cp := *w
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeWarehouseRepo) GetByID(_ context.Context, id int64) (*entity.Warehouse, error) {
	w, ok := r.warehouses[id]
	if !ok {
		return nil, nil
	}
	cp := *w
	return &cp, nil
}

type fakeUserRepo struct {
	users  map[int64]*entity.User
	nextID int64
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo(users ...*entity.User) *fakeUserRepo {
	r := &fakeUserRepo{users: make(map[int64]*entity.User)}
	for _, u := range users {
		cp := *u
		r.users[u.ID] = &cp
		if u.ID > r.nextID {
			r.nextID = u.ID
		}
	}
	return r
}

func (r *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	r.nextID++
	user.ID = r.nextID
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id int64) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) ListByName(_ context.Context, name string) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		if u.Name == name {
			cp := *u
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*entity.User, error) {
	var out []*entity.User
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return fmt.Errorf("usuario %d no existe", user.ID)
	}
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("usuario %d no existe", id)
	}
	delete(r.users, id)
	return nil
}

// fakeTxRunner ejecuta el callback directamente sobre los fakes. No simula
// rollback: los tests de fallo verifican que el caso de uso no escriba nada
// antes de detectar el error.
type fakeTxRunner struct {
	repos TxRepos
}

var _ TxRunner = (*fakeTxRunner)(nil)

func (r *fakeTxRunner) Run(_ context.Context, fn func(repos TxRepos) error) error {
	return fn(r.repos)
}

type fakeSequenceReader struct {
	values map[string]int64
}

var _ SequenceReader = (*fakeSequenceReader)(nil)

func (r *fakeSequenceReader) Current(_ context.Context, name string) (int64, error) {
	v, ok := r.values[name]
	if !ok {
		return 0, fmt.Errorf("secuencia %s desconocida", name)
	}
	return v, nil
}
