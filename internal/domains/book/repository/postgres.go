package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookong/internal/domains/book/model"
	warehouseModel "bookong/internal/domains/warehouse/model"
)

const uniqueViolation = "23505"

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, book *model.Book) error {
	query := `INSERT INTO books (title, author, isbn, is_available, warehouse_id)
	VALUES ($1, $2, $3, $4, $5)
	RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		book.Title, book.Author, book.ISBN, book.IsAvailable, book.WarehouseID).
		Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return model.ErrISBNTaken
		}
		return fmt.Errorf("failed to create book: %w", err)
	}

	return nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*model.Book, error) {
	query := bookSelect + ` WHERE b.id = $1`

	row := r.pool.QueryRow(ctx, query, id)
	book, err := scanBook(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, model.ErrBookNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	return book, nil
}

func (r *postgresRepository) List(ctx context.Context, query model.ListBooksQuery) ([]model.Book, error) {
	orderBy := "b.created_at DESC"
	if query.OrderBy == "title_asc" {
		orderBy = "b.title ASC"
	}

	rows, err := r.pool.Query(ctx, fmt.Sprintf("%s ORDER BY %s", bookSelect, orderBy))
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

func (r *postgresRepository) Count(ctx context.Context, filter model.CountFilter) (int, error) {
	query := `SELECT COUNT(*) FROM books`
	args := []interface{}{}
	if filter.Available != nil {
		query += ` WHERE is_available = $1`
		args = append(args, *filter.Available)
	}

	var count int
	if err := r.pool.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}

	return count, nil
}

func (r *postgresRepository) Recent(ctx context.Context, limit int) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, bookSelect+` ORDER BY b.created_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent books: %w", err)
	}
	defer rows.Close()

	return collectBooks(rows)
}

const bookSelect = `SELECT b.id, b.title, b.author, b.isbn, b.is_available, b.warehouse_id,
	b.created_at, b.updated_at,
	w.id, w.name, w.location, w.created_at, w.updated_at
	FROM books b
	JOIN warehouses w ON w.id = b.warehouse_id`

func scanBook(row pgx.Row) (*model.Book, error) {
	var book model.Book
	var wh warehouseModel.Warehouse
	err := row.Scan(
		&book.ID, &book.Title, &book.Author, &book.ISBN, &book.IsAvailable,
		&book.WarehouseID, &book.CreatedAt, &book.UpdatedAt,
		&wh.ID, &wh.Name, &wh.Location, &wh.CreatedAt, &wh.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	book.Warehouse = &wh
	return &book, nil
}

func collectBooks(rows pgx.Rows) ([]model.Book, error) {
	var result []model.Book
	for rows.Next() {
		book, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		result = append(result, *book)
	}
	return result, rows.Err()
}
