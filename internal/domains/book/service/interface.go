package service

import (
	"context"

	"github.com/xuri/excelize/v2"

	"bookong/internal/domains/book/model"
)

type BookServiceInterface interface {
	Create(ctx context.Context, req model.CreateBookRequest) (*model.Book, error)
	Get(ctx context.Context, id int64) (*model.Book, error)
	List(ctx context.Context, query model.ListBooksQuery) ([]model.Book, error)

	// ExportBooks renders the current catalog as a spreadsheet.
	ExportBooks(ctx context.Context, query model.ListBooksQuery) (*excelize.File, error)
}

// ImportServiceInterface is the bulk-import pipeline: one uploaded
// spreadsheet in, one aggregate report out.
type ImportServiceInterface interface {
	// ImportBooks processes the spreadsheet at path row by row. It
	// returns an error only when the whole file cannot be parsed;
	// individual row failures are reported, never raised.
	ImportBooks(ctx context.Context, path string) (*model.ImportReport, error)
}
