package repository

import (
	"context"

	"bookong/internal/domains/book/model"
)

// RepositoryInterface is the book persistence contract. Create fills
// in the system-assigned id and timestamps; the ISBN uniqueness
// constraint is enforced here and surfaces as model.ErrISBNTaken.
type RepositoryInterface interface {
	Create(ctx context.Context, book *model.Book) error
	GetByID(ctx context.Context, id int64) (*model.Book, error)
	List(ctx context.Context, query model.ListBooksQuery) ([]model.Book, error)
	Count(ctx context.Context, filter model.CountFilter) (int, error)
	Recent(ctx context.Context, limit int) ([]model.Book, error)
}
