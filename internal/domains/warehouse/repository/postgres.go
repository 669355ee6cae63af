package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookong/internal/domains/warehouse/model"
	"bookong/pkg/database"
)

const uniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, wh *model.Warehouse) error {
	query := `INSERT INTO warehouses (name, location)
	VALUES ($1, $2)
	RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query, wh.Name, wh.Location).
		Scan(&wh.ID, &wh.CreatedAt, &wh.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrNameTaken
		}
		return fmt.Errorf("failed to create warehouse: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Warehouse, error) {
	query := `SELECT id, name, location, created_at, updated_at
	FROM warehouses WHERE id = $1`

	var wh model.Warehouse
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&wh.ID, &wh.Name, &wh.Location, &wh.CreatedAt, &wh.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrWarehouseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get warehouse: %w", err)
	}

	return &wh, nil
}

func (r *postgresRepository) List(ctx context.Context, order model.ListOrder) ([]model.Warehouse, error) {
	orderBy := "name ASC"
	if order == model.OrderByCreatedAtDesc {
		orderBy = "created_at DESC"
	}

	query := fmt.Sprintf(`SELECT id, name, location, created_at, updated_at
	FROM warehouses ORDER BY %s`, orderBy)

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}
	defer rows.Close()

	var result []model.Warehouse
	for rows.Next() {
		var wh model.Warehouse
		if err := rows.Scan(&wh.ID, &wh.Name, &wh.Location, &wh.CreatedAt, &wh.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan warehouse: %w", err)
		}
		result = append(result, wh)
	}

	return result, rows.Err()
}

func (r *postgresRepository) ListWithBookCount(ctx context.Context) ([]model.WarehouseWithCount, error) {
	query := `SELECT w.id, w.name, w.location, w.created_at, w.updated_at, COUNT(b.id)
	FROM warehouses w
	LEFT JOIN books b ON b.warehouse_id = w.id
	GROUP BY w.id
	ORDER BY w.name ASC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list warehouses: %w", err)
	}
	defer rows.Close()

	var result []model.WarehouseWithCount
	for rows.Next() {
		var wh model.WarehouseWithCount
		if err := rows.Scan(&wh.ID, &wh.Name, &wh.Location, &wh.CreatedAt, &wh.UpdatedAt, &wh.BookCount); err != nil {
			return nil, fmt.Errorf("failed to scan warehouse: %w", err)
		}
		result = append(result, wh)
	}

	return result, rows.Err()
}

func (r *postgresRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM warehouses`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count warehouses: %w", err)
	}
	return count, nil
}

// Delete runs a two-phase delete (books first, then the warehouse) in
// a single transaction. The schema also declares ON DELETE CASCADE,
// but the explicit delete keeps the behavior store-independent.
func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM books WHERE warehouse_id = $1`, id); err != nil {
			return fmt.Errorf("failed to delete warehouse books: %w", err)
		}

		result, err := tx.Exec(ctx, `DELETE FROM warehouses WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete warehouse: %w", err)
		}
		if result.RowsAffected() == 0 {
			return model.ErrWarehouseNotFound
		}

		return nil
	})
}
