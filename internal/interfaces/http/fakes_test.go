package http_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/application/dto"
	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// store estado en memoria compartido por todos los repos fake. El mutex serializa
// las "transacciones" igual que el FOR UPDATE de PostgreSQL.
type store struct {
	mu        sync.Mutex
	items     map[string]*entity.InventoryItem
	movements []*entity.InventoryMovement
	products  map[string]*entity.Product
	sales     map[string]*entity.Sale
	users     map[string]*entity.User
	menu      *entity.MenuConfig
}

func newStore() *store {
	return &store{
		items:    map[string]*entity.InventoryItem{},
		products: map[string]*entity.Product{},
		sales:    map[string]*entity.Sale{},
		users:    map[string]*entity.User{},
	}
}

func (s *store) Run(ctx context.Context, fn func(repository.InventoryItemRepository, repository.InventoryMovementRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(itemRepo{s}, movRepo{s})
}

func (s *store) RunSales(ctx context.Context, fn func(repository.SaleRepository) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(saleRepo{s})
}

// ── insumos ──────────────────────────────────────────────────────────────────

type itemRepo struct{ s *store }

func (r itemRepo) Create(_ context.Context, it *entity.InventoryItem) error {
	c := *it
	r.s.items[it.ID] = &c
	return nil
}
func (r itemRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	if it, ok := r.s.items[id]; ok {
		c := *it
		return &c, nil
	}
	return nil, nil
}
func (r itemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}
func (r itemRepo) Update(_ context.Context, it *entity.InventoryItem) error {
	cur, ok := r.s.items[it.ID]
	if !ok {
		return domain.ErrNotFound
	}
	c := *it
	c.Quantity = cur.Quantity
	r.s.items[it.ID] = &c
	return nil
}
func (r itemRepo) UpdateQuantity(_ context.Context, id string, q decimal.Decimal, by string) error {
	it, ok := r.s.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	it.Quantity = q
	it.UpdatedBy = by
	return nil
}
func (r itemRepo) List(_ context.Context, f repository.InventoryItemFilter) ([]*entity.InventoryItem, error) {
	var out []*entity.InventoryItem
	for _, it := range r.s.items {
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		c := *it
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
func (r itemRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.s.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.items, id)
	return nil
}

// lockedItemRepo lecturas fuera de transacción.
type lockedItemRepo struct{ s *store }

func (r lockedItemRepo) with(fn func(itemRepo) error) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return fn(itemRepo{r.s})
}
func (r lockedItemRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	return r.with(func(ir itemRepo) error { return ir.Create(ctx, it) })
}
func (r lockedItemRepo) GetByID(ctx context.Context, id string) (out *entity.InventoryItem, err error) {
	err = r.with(func(ir itemRepo) error { out, err = ir.GetByID(ctx, id); return err })
	return out, err
}
func (r lockedItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}
func (r lockedItemRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	return r.with(func(ir itemRepo) error { return ir.Update(ctx, it) })
}
func (r lockedItemRepo) UpdateQuantity(ctx context.Context, id string, q decimal.Decimal, by string) error {
	return r.with(func(ir itemRepo) error { return ir.UpdateQuantity(ctx, id, q, by) })
}
func (r lockedItemRepo) List(ctx context.Context, f repository.InventoryItemFilter) (out []*entity.InventoryItem, err error) {
	err = r.with(func(ir itemRepo) error { out, err = ir.List(ctx, f); return err })
	return out, err
}
func (r lockedItemRepo) Delete(ctx context.Context, id string) error {
	return r.with(func(ir itemRepo) error { return ir.Delete(ctx, id) })
}

// ── movimientos ──────────────────────────────────────────────────────────────

type movRepo struct{ s *store }

func (r movRepo) Create(_ context.Context, m *entity.InventoryMovement) error {
	c := *m
	r.s.movements = append(r.s.movements, &c)
	return nil
}
func (r movRepo) ListByItem(_ context.Context, itemID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	var out []*entity.InventoryMovement
	for i := len(r.s.movements) - 1; i >= 0; i-- {
		if r.s.movements[i].ItemID == itemID {
			out = append(out, r.s.movements[i])
		}
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}
func (r movRepo) CountByItem(_ context.Context, itemID string) (int, error) {
	n := 0
	for _, m := range r.s.movements {
		if m.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

type lockedMovRepo struct{ s *store }

func (r lockedMovRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return movRepo{r.s}.Create(ctx, m)
}
func (r lockedMovRepo) ListByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return movRepo{r.s}.ListByItem(ctx, itemID, limit, offset)
}
func (r lockedMovRepo) CountByItem(ctx context.Context, itemID string) (int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return movRepo{r.s}.CountByItem(ctx, itemID)
}

// ── productos ────────────────────────────────────────────────────────────────

type productRepo struct{ s *store }

func (r productRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *p
	r.s.products[p.ID] = &c
	return nil
}
func (r productRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if p, ok := r.s.products[id]; ok {
		c := *p
		return &c, nil
	}
	return nil, nil
}
func (r productRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := map[string]*entity.Product{}
	for _, id := range ids {
		if p, ok := r.s.products[id]; ok {
			c := *p
			out[id] = &c
		}
	}
	return out, nil
}
func (r productRepo) Update(_ context.Context, p *entity.Product) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	c := *p
	r.s.products[p.ID] = &c
	return nil
}
func (r productRepo) SetAvailable(_ context.Context, id string, available bool) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	p, ok := r.s.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Available = available
	return nil
}
func (r productRepo) List(_ context.Context, f repository.ProductFilter) ([]*entity.Product, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.Product
	for _, p := range r.s.products {
		if f.AvailableOnly && !p.Available {
			continue
		}
		if f.Category != "" && p.Category != f.Category {
			continue
		}
		c := *p
		out = append(out, &c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
func (r productRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.products, id)
	return nil
}

// ── ventas ───────────────────────────────────────────────────────────────────

type saleRepo struct{ s *store }

func (r saleRepo) Create(_ context.Context, sale *entity.Sale) error {
	c := *sale
	r.s.sales[sale.ID] = &c
	return nil
}
func (r saleRepo) GetByID(_ context.Context, id string) (*entity.Sale, error) {
	if s, ok := r.s.sales[id]; ok {
		c := *s
		return &c, nil
	}
	return nil, nil
}
func (r saleRepo) List(_ context.Context, f repository.SaleFilter) ([]*entity.Sale, int, error) {
	var out []*entity.Sale
	for _, s := range r.s.sales {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, len(out), nil
}
func (r saleRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.s.sales[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.sales, id)
	return nil
}

type lockedSaleRepo struct{ s *store }

func (r lockedSaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return saleRepo{r.s}.Create(ctx, sale)
}
func (r lockedSaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return saleRepo{r.s}.GetByID(ctx, id)
}
func (r lockedSaleRepo) List(ctx context.Context, f repository.SaleFilter) ([]*entity.Sale, int, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return saleRepo{r.s}.List(ctx, f)
}
func (r lockedSaleRepo) Delete(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	return saleRepo{r.s}.Delete(ctx, id)
}

// ── usuarios ─────────────────────────────────────────────────────────────────

type userRepo struct{ s *store }

func (r userRepo) Create(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, x := range r.s.users {
		if x.Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	c := *u
	r.s.users[u.ID] = &c
	return nil
}
func (r userRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if u, ok := r.s.users[id]; ok {
		c := *u
		return &c, nil
	}
	return nil, nil
}
func (r userRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for _, u := range r.s.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, nil
}
func (r userRepo) GetByIDs(_ context.Context, ids []string) (map[string]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	out := map[string]*entity.User{}
	for _, id := range ids {
		if u, ok := r.s.users[id]; ok {
			c := *u
			out[id] = &c
		}
	}
	return out, nil
}
func (r userRepo) Update(_ context.Context, u *entity.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[u.ID]; !ok {
		return domain.ErrUserNotFound
	}
	c := *u
	r.s.users[u.ID] = &c
	return nil
}
func (r userRepo) List(_ context.Context, limit, offset int) ([]*entity.User, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	var out []*entity.User
	for _, u := range r.s.users {
		out = append(out, u)
	}
	return out, nil
}
func (r userRepo) Delete(_ context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if _, ok := r.s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.s.users, id)
	return nil
}

// ── menú ─────────────────────────────────────────────────────────────────────

type menuRepo struct{ s *store }

func (r menuRepo) Get(_ context.Context) (*entity.MenuConfig, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.menu == nil {
		return nil, nil
	}
	c := *r.s.menu
	return &c, nil
}
func (r menuRepo) Upsert(_ context.Context, cfg *entity.MenuConfig) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	c := *cfg
	r.s.menu = &c
	return nil
}

// ── analítica ────────────────────────────────────────────────────────────────

// analyticsRepo agrega directamente sobre el store.
type analyticsRepo struct{ s *store }

func (r analyticsRepo) inRange(start, end time.Time) []*entity.Sale {
	var out []*entity.Sale
	for _, s := range r.s.sales {
		if !s.CreatedAt.Before(start) && !s.CreatedAt.After(end) {
			out = append(out, s)
		}
	}
	return out
}

func (r analyticsRepo) GetSalesTotals(_ context.Context, start, end time.Time) (repository.SalesTotals, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	t := repository.SalesTotals{Total: decimal.Zero}
	for _, s := range r.inRange(start, end) {
		t.Total = t.Total.Add(s.Total)
		t.Count++
	}
	return t, nil
}
func (r analyticsRepo) GetEntradaCosts(_ context.Context, start, end time.Time) (decimal.Decimal, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	total := decimal.Zero
	for _, m := range r.s.movements {
		if m.Type == entity.MovementTypeEntrada && m.TotalCost != nil && !m.CreatedAt.Before(start) && !m.CreatedAt.After(end) {
			total = total.Add(*m.TotalCost)
		}
	}
	return total, nil
}
func (r analyticsRepo) GetTopProducts(context.Context, time.Time, time.Time, int) ([]repository.TopProductResult, error) {
	return nil, nil
}
func (r analyticsRepo) GetDailySales(context.Context, time.Time, time.Time) ([]repository.DailySalesResult, error) {
	return nil, nil
}
func (r analyticsRepo) GetSalesByPaymentMethod(context.Context, time.Time, time.Time) ([]repository.PaymentMethodResult, error) {
	return nil, nil
}
func (r analyticsRepo) GetAllTimeTotals(ctx context.Context) (repository.SalesTotals, decimal.Decimal, error) {
	t, err := r.GetSalesTotals(ctx, time.Time{}, time.Now().AddDate(100, 0, 0))
	if err != nil {
		return t, decimal.Zero, err
	}
	costs, err := r.GetEntradaCosts(ctx, time.Time{}, time.Now().AddDate(100, 0, 0))
	return t, costs, err
}

// ── generadores ──────────────────────────────────────────────────────────────

type fakeReceipt struct{}

func (fakeReceipt) GenerateReceiptPDF(context.Context, *dto.SaleResponse, entity.MenuConfig) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}

type fakeSpreadsheet struct{}

func (fakeSpreadsheet) GenerateSalesReport(*dto.SalesReportDTO) ([]byte, error) {
	return []byte("PK fake xlsx"), nil
}
