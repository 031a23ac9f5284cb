package postgres

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Restaurante-api/internal/domain"
	"github.com/jhoicas/Restaurante-api/internal/domain/entity"
	"github.com/jhoicas/Restaurante-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

var saleColumns = []string{"id", "total", "payment_method", "user_id", "customer_name", "notes", "created_at"}

// SaleRepo persistencia de ventas y sus líneas congeladas.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Create debe correr dentro de una tx.
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create inserta la cabecera y luego cada línea con su posición.
func (r *SaleRepo) Create(ctx context.Context, s *entity.Sale) error {
	query, args, err := psql.Insert("sales").
		Columns(saleColumns...).
		Values(s.ID, s.Total, s.PaymentMethod, s.UserID, s.CustomerName, s.Notes, s.CreatedAt).
		ToSql()
	if err != nil {
		return fmt.Errorf("build insert sale: %w", err)
	}
	if _, err := r.q.Exec(ctx, query, args...); err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert sale: %w", err)
	}

	for i := range s.Items {
		it := &s.Items[i]
		it.SaleID = s.ID
		if _, err := r.q.Exec(ctx, `
			INSERT INTO sale_items (sale_id, position, product_id, product_name, quantity, unit_price, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			it.SaleID, it.Position, it.ProductID, it.ProductName, it.Quantity, it.UnitPrice, it.Subtotal,
		); err != nil {
			return fmt.Errorf("insert sale item %d: %w", it.Position, err)
		}
	}
	return nil
}

// GetByID obtiene la venta con sus líneas en orden.
func (r *SaleRepo) GetByID(ctx context.Context, id string) (*entity.Sale, error) {
	if !validID(id) {
		return nil, nil
	}
	query, args, err := psql.Select(saleColumns...).From("sales").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get sale: %w", err)
	}
	var s entity.Sale
	if err := pgxscan.Get(ctx, r.q, &s, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get sale: %w", err)
	}
	if err := r.attachItems(ctx, []*entity.Sale{&s}); err != nil {
		return nil, err
	}
	return &s, nil
}

// List devuelve la página de ventas (más recientes primero) y el total que cumple el filtro.
func (r *SaleRepo) List(ctx context.Context, filter repository.SaleFilter) ([]*entity.Sale, int, error) {
	where := squirrel.And{}
	if filter.From != nil {
		where = append(where, squirrel.GtOrEq{"created_at": *filter.From})
	}
	if filter.To != nil {
		where = append(where, squirrel.LtOrEq{"created_at": *filter.To})
	}
	if filter.UserID != "" {
		where = append(where, squirrel.Eq{"user_id": filter.UserID})
	}

	countQuery, countArgs, err := psql.Select("COUNT(*)").From("sales").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build count sales: %w", err)
	}
	var total int
	if err := r.q.QueryRow(ctx, countQuery, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count sales: %w", err)
	}

	b := psql.Select(saleColumns...).From("sales").Where(where).OrderBy("created_at DESC", "id DESC")
	if filter.Limit > 0 {
		b = b.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		b = b.Offset(uint64(filter.Offset))
	}
	query, args, err := b.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list sales: %w", err)
	}
	var list []*entity.Sale
	if err := pgxscan.Select(ctx, r.q, &list, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list sales: %w", err)
	}
	if err := r.attachItems(ctx, list); err != nil {
		return nil, 0, err
	}
	return list, total, nil
}

// Delete elimina la venta; las líneas caen en cascada.
func (r *SaleRepo) Delete(ctx context.Context, id string) error {
	if !validID(id) {
		return domain.ErrNotFound
	}
	tag, err := r.q.Exec(ctx, `DELETE FROM sales WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete sale: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *SaleRepo) attachItems(ctx context.Context, sales []*entity.Sale) error {
	if len(sales) == 0 {
		return nil
	}
	ids := make([]string, len(sales))
	byID := make(map[string]*entity.Sale, len(sales))
	for i, s := range sales {
		ids[i] = s.ID
		byID[s.ID] = s
	}
	rows, err := r.q.Query(ctx, `
		SELECT sale_id, position, product_id, product_name, quantity, unit_price, subtotal
		FROM sale_items WHERE sale_id = ANY($1::uuid[])
		ORDER BY sale_id, position`, ids)
	if err != nil {
		return fmt.Errorf("list sale items: %w", err)
	}
	items, err := pgx.CollectRows(rows, pgx.RowToStructByName[entity.SaleItem])
	if err != nil {
		return fmt.Errorf("scan sale items: %w", err)
	}
	for _, it := range items {
		if s, ok := byID[it.SaleID]; ok {
			s.Items = append(s.Items, it)
		}
	}
	return nil
}
