package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"bookong/internal/domains/book/model"
	"bookong/internal/domains/book/repository"
	warehouseModel "bookong/internal/domains/warehouse/model"
	warehouseRepo "bookong/internal/domains/warehouse/repository"
)

type bookService struct {
	repo          repository.RepositoryInterface
	warehouseRepo warehouseRepo.Repository
}

func NewBookService(repo repository.RepositoryInterface, warehouses warehouseRepo.Repository) BookServiceInterface {
	return &bookService{
		repo:          repo,
		warehouseRepo: warehouses,
	}
}

func (s *bookService) Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// The referenced warehouse must exist; the FK would catch it too,
	// but resolving it here gives the caller a NotFound instead of a
	// raw constraint error.
	if _, err := s.warehouseRepo.GetByID(ctx, req.WarehouseID); err != nil {
		if errors.Is(err, warehouseModel.ErrWarehouseNotFound) {
			return nil, warehouseModel.ErrWarehouseNotFound
		}
		return nil, err
	}

	isAvailable := true
	if req.IsAvailable != nil {
		isAvailable = *req.IsAvailable
	}

	book := &model.Book{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBNPtr(),
		IsAvailable: isAvailable,
		WarehouseID: req.WarehouseID,
	}
	if err := s.repo.Create(ctx, book); err != nil {
		return nil, err
	}

	log.Info().
		Int64("book_id", book.ID).
		Str("title", book.Title).
		Int64("warehouse_id", book.WarehouseID).
		Msg("Created book")

	return book, nil
}

func (s *bookService) Get(ctx context.Context, id int64) (*model.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) List(ctx context.Context, query model.ListBooksQuery) ([]model.Book, error) {
	return s.repo.List(ctx, query)
}
