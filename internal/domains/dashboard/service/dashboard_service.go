package service

import (
	"context"
	"fmt"

	bookModel "bookong/internal/domains/book/model"
	bookRepo "bookong/internal/domains/book/repository"
	warehouseRepo "bookong/internal/domains/warehouse/repository"
)

const recentBooksLimit = 5

// Stats are the dashboard headline numbers. Borrowed is derived:
// total minus available.
type Stats struct {
	TotalBooks      int `json:"totalBooks"`
	AvailableBooks  int `json:"availableBooks"`
	BorrowedBooks   int `json:"borrowedBooks"`
	TotalWarehouses int `json:"totalWarehouses"`
}

type Overview struct {
	Stats       Stats            `json:"stats"`
	RecentBooks []bookModel.Book `json:"recentBooks"`
}

type DashboardServiceInterface interface {
	Overview(ctx context.Context) (*Overview, error)
}

type dashboardService struct {
	books      bookRepo.RepositoryInterface
	warehouses warehouseRepo.Repository
}

func NewDashboardService(books bookRepo.RepositoryInterface, warehouses warehouseRepo.Repository) DashboardServiceInterface {
	return &dashboardService{
		books:      books,
		warehouses: warehouses,
	}
}

func (s *dashboardService) Overview(ctx context.Context) (*Overview, error) {
	total, err := s.books.Count(ctx, bookModel.CountFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to count books: %w", err)
	}

	available := true
	availableCount, err := s.books.Count(ctx, bookModel.CountFilter{Available: &available})
	if err != nil {
		return nil, fmt.Errorf("failed to count available books: %w", err)
	}

	warehouses, err := s.warehouses.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count warehouses: %w", err)
	}

	recent, err := s.books.Recent(ctx, recentBooksLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent books: %w", err)
	}

	return &Overview{
		Stats: Stats{
			TotalBooks:      total,
			AvailableBooks:  availableCount,
			BorrowedBooks:   total - availableCount,
			TotalWarehouses: warehouses,
		},
		RecentBooks: recent,
	}, nil
}
