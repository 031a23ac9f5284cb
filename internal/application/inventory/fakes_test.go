package inventory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

// memState datos en memoria que simulan las tablas inventory_items e inventory_movements.
type memState struct {
	items     map[string]entity.InventoryItem
	movements []entity.InventoryMovement
}

func (s *memState) clone() *memState {
	c := &memState{items: make(map[string]entity.InventoryItem, len(s.items))}
	for k, v := range s.items {
		c.items[k] = v
	}
	c.movements = append([]entity.InventoryMovement(nil), s.movements...)
	return c
}

// memDB base en memoria con transacciones: Run trabaja sobre una copia y solo la publica si fn no falla.
// El mutex serializa las transacciones como lo haría el SELECT FOR UPDATE sobre la misma fila.
type memDB struct {
	mu              sync.Mutex
	st              *memState
	failMovementErr error
}

func newMemDB(items ...entity.InventoryItem) *memDB {
	st := &memState{items: map[string]entity.InventoryItem{}}
	for _, it := range items {
		st.items[it.ID] = it
	}
	return &memDB{st: st}
}

func (db *memDB) Run(ctx context.Context, fn func(repository.InventoryItemRepository, repository.InventoryMovementRepository) error) error {
	db.mu.Lock()
	defer db.mu.Unlock()
	tx := db.st.clone()
	if err := fn(&stateItemRepo{st: tx}, &stateMovRepo{st: tx, failErr: db.failMovementErr}); err != nil {
		return err
	}
	db.st = tx
	return nil
}

func (db *memDB) item(id string) entity.InventoryItem {
	db.mu.Lock()
	defer db.mu.Unlock()
	return db.st.items[id]
}

func (db *memDB) movementsOf(id string) []entity.InventoryMovement {
	db.mu.Lock()
	defer db.mu.Unlock()
	var out []entity.InventoryMovement
	for _, m := range db.st.movements {
		if m.ItemID == id {
			out = append(out, m)
		}
	}
	return out
}

// itemRepo y movRepo fuera de transacción.
func (db *memDB) itemRepo() repository.InventoryItemRepository { return &lockedItemRepo{db: db} }
func (db *memDB) movRepo() repository.InventoryMovementRepository { return &lockedMovRepo{db: db} }

type stateItemRepo struct{ st *memState }

func (r *stateItemRepo) Create(_ context.Context, it *entity.InventoryItem) error {
	if _, ok := r.st.items[it.ID]; ok {
		return domain.ErrDuplicate
	}
	r.st.items[it.ID] = *it
	return nil
}

func (r *stateItemRepo) GetByID(_ context.Context, id string) (*entity.InventoryItem, error) {
	it, ok := r.st.items[id]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (r *stateItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}

func (r *stateItemRepo) Update(_ context.Context, it *entity.InventoryItem) error {
	cur, ok := r.st.items[it.ID]
	if !ok {
		return domain.ErrNotFound
	}
	next := *it
	next.Quantity = cur.Quantity
	r.st.items[it.ID] = next
	return nil
}

func (r *stateItemRepo) UpdateQuantity(_ context.Context, id string, q decimal.Decimal, by string) error {
	it, ok := r.st.items[id]
	if !ok {
		return domain.ErrNotFound
	}
	if q.IsNegative() {
		return errors.New("violates check constraint inventory_items_quantity_check")
	}
	it.Quantity = q
	it.UpdatedBy = by
	r.st.items[id] = it
	return nil
}

func (r *stateItemRepo) List(_ context.Context, f repository.InventoryItemFilter) ([]*entity.InventoryItem, error) {
	out := make([]*entity.InventoryItem, 0, len(r.st.items))
	for _, it := range r.st.items {
		if f.Category != "" && it.Category != f.Category {
			continue
		}
		if f.Search != "" && !strings.Contains(strings.ToLower(it.Name), strings.ToLower(f.Search)) {
			continue
		}
		it := it
		out = append(out, &it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *stateItemRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.st.items[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.st.items, id)
	return nil
}

type stateMovRepo struct {
	st      *memState
	failErr error
}

func (r *stateMovRepo) Create(_ context.Context, m *entity.InventoryMovement) error {
	if r.failErr != nil {
		return r.failErr
	}
	r.st.movements = append(r.st.movements, *m)
	return nil
}

func (r *stateMovRepo) ListByItem(_ context.Context, itemID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	var all []*entity.InventoryMovement
	for i := len(r.st.movements) - 1; i >= 0; i-- {
		if r.st.movements[i].ItemID == itemID {
			m := r.st.movements[i]
			all = append(all, &m)
		}
	}
	if offset >= len(all) {
		return []*entity.InventoryMovement{}, nil
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end], nil
}

func (r *stateMovRepo) CountByItem(_ context.Context, itemID string) (int, error) {
	n := 0
	for _, m := range r.st.movements {
		if m.ItemID == itemID {
			n++
		}
	}
	return n, nil
}

type lockedItemRepo struct{ db *memDB }

func (r *lockedItemRepo) with(fn func(repo *stateItemRepo) error) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return fn(&stateItemRepo{st: r.db.st})
}

func (r *lockedItemRepo) Create(ctx context.Context, it *entity.InventoryItem) error {
	return r.with(func(repo *stateItemRepo) error { return repo.Create(ctx, it) })
}

func (r *lockedItemRepo) GetByID(ctx context.Context, id string) (out *entity.InventoryItem, err error) {
	err = r.with(func(repo *stateItemRepo) error { out, err = repo.GetByID(ctx, id); return err })
	return out, err
}

func (r *lockedItemRepo) GetForUpdate(ctx context.Context, id string) (*entity.InventoryItem, error) {
	return r.GetByID(ctx, id)
}

func (r *lockedItemRepo) Update(ctx context.Context, it *entity.InventoryItem) error {
	return r.with(func(repo *stateItemRepo) error { return repo.Update(ctx, it) })
}

func (r *lockedItemRepo) UpdateQuantity(ctx context.Context, id string, q decimal.Decimal, by string) error {
	return r.with(func(repo *stateItemRepo) error { return repo.UpdateQuantity(ctx, id, q, by) })
}

func (r *lockedItemRepo) List(ctx context.Context, f repository.InventoryItemFilter) (out []*entity.InventoryItem, err error) {
	err = r.with(func(repo *stateItemRepo) error { out, err = repo.List(ctx, f); return err })
	return out, err
}

func (r *lockedItemRepo) Delete(ctx context.Context, id string) error {
	return r.with(func(repo *stateItemRepo) error { return repo.Delete(ctx, id) })
}

type lockedMovRepo struct{ db *memDB }

func (r *lockedMovRepo) Create(ctx context.Context, m *entity.InventoryMovement) error {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return (&stateMovRepo{st: r.db.st}).Create(ctx, m)
}

func (r *lockedMovRepo) ListByItem(ctx context.Context, itemID string, limit, offset int) ([]*entity.InventoryMovement, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return (&stateMovRepo{st: r.db.st}).ListByItem(ctx, itemID, limit, offset)
}

func (r *lockedMovRepo) CountByItem(ctx context.Context, itemID string) (int, error) {
	r.db.mu.Lock()
	defer r.db.mu.Unlock()
	return (&stateMovRepo{st: r.db.st}).CountByItem(ctx, itemID)
}
