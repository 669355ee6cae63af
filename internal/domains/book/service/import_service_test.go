package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"bookong/internal/domains/book/model"
	warehouseModel "bookong/internal/domains/warehouse/model"
)

type fakeBookRepo struct {
	books  []*model.Book
	nextID int64
}

func (r *fakeBookRepo) Create(_ context.Context, book *model.Book) error {
	if book.ISBN != nil {
		for _, b := range r.books {
			if b.ISBN != nil && *b.ISBN == *book.ISBN {
				return model.ErrISBNTaken
			}
		}
	}
	r.nextID++
	book.ID = r.nextID
	book.CreatedAt = time.Now()
	book.UpdatedAt = book.CreatedAt
	r.books = append(r.books, book)
	return nil
}

func (r *fakeBookRepo) GetByID(_ context.Context, id int64) (*model.Book, error) {
	for _, b := range r.books {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, model.ErrBookNotFound
}

func (r *fakeBookRepo) List(_ context.Context, _ model.ListBooksQuery) ([]model.Book, error) {
	out := make([]model.Book, 0, len(r.books))
	for _, b := range r.books {
		out = append(out, *b)
	}
	return out, nil
}

func (r *fakeBookRepo) Count(_ context.Context, filter model.CountFilter) (int, error) {
	if filter.Available == nil {
		return len(r.books), nil
	}
	n := 0
	for _, b := range r.books {
		if b.IsAvailable == *filter.Available {
			n++
		}
	}
	return n, nil
}

func (r *fakeBookRepo) Recent(_ context.Context, limit int) ([]model.Book, error) {
	out := make([]model.Book, 0, limit)
	for i := len(r.books) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, *r.books[i])
	}
	return out, nil
}

type fakeWarehouseRepo struct {
	warehouses map[int64]*warehouseModel.Warehouse
}

func newFakeWarehouseRepo(ids ...int64) *fakeWarehouseRepo {
	r := &fakeWarehouseRepo{warehouses: make(map[int64]*warehouseModel.Warehouse)}
	for _, id := range ids {
		r.warehouses[id] = &warehouseModel.Warehouse{ID: id, Name: "Warehouse", Location: "Somewhere"}
	}
	return r
}

func (r *fakeWarehouseRepo) Create(_ context.Context, wh *warehouseModel.Warehouse) error {
	for _, existing := range r.warehouses {
		if existing.Name == wh.Name {
			return warehouseModel.ErrNameTaken
		}
	}
	wh.ID = int64(len(r.warehouses) + 1)
	r.warehouses[wh.ID] = wh
	return nil
}

func (r *fakeWarehouseRepo) GetByID(_ context.Context, id int64) (*warehouseModel.Warehouse, error) {
	wh, ok := r.warehouses[id]
	if !ok {
		return nil, warehouseModel.ErrWarehouseNotFound
	}
	return wh, nil
}

func (r *fakeWarehouseRepo) List(_ context.Context, _ warehouseModel.ListOrder) ([]warehouseModel.Warehouse, error) {
	out := make([]warehouseModel.Warehouse, 0, len(r.warehouses))
	for _, wh := range r.warehouses {
		out = append(out, *wh)
	}
	return out, nil
}

func (r *fakeWarehouseRepo) ListWithBookCount(_ context.Context) ([]warehouseModel.WarehouseWithCount, error) {
	out := make([]warehouseModel.WarehouseWithCount, 0, len(r.warehouses))
	for _, wh := range r.warehouses {
		out = append(out, warehouseModel.WarehouseWithCount{Warehouse: *wh})
	}
	return out, nil
}

func (r *fakeWarehouseRepo) Count(_ context.Context) (int, error) {
	return len(r.warehouses), nil
}

func (r *fakeWarehouseRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.warehouses[id]; !ok {
		return warehouseModel.ErrWarehouseNotFound
	}
	delete(r.warehouses, id)
	return nil
}

// writeSheet builds a real xlsx file in a temp dir, one slice per row.
func writeSheet(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "upload.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestImportBooks(t *testing.T) {
	books := &fakeBookRepo{}
	warehouses := newFakeWarehouseRepo(1)
	svc := NewImportService(books, warehouses)

	path := writeSheet(t, [][]interface{}{
		{"title", "author", "isbn", "warehouseId"},
		{"The Go Programming Language", "Donovan", "9780134190440", "1"},
		{"Clean Code", "Martin", "", "1"},
	})

	report, err := svc.ImportBooks(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 2, report.SuccessCount)
	assert.Equal(t, 0, report.ErrorCount)
	assert.Empty(t, report.Errors)
	assert.Equal(t, "Import completed: 2 books added successfully", report.Message)

	require.Len(t, books.books, 2)
	assert.True(t, books.books[0].IsAvailable)
	require.NotNil(t, books.books[0].ISBN)
	assert.Equal(t, "9780134190440", *books.books[0].ISBN)
	assert.Nil(t, books.books[1].ISBN, "empty isbn cell stays null")

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "upload should be removed after import")
}

func TestImportBooksRowErrors(t *testing.T) {
	books := &fakeBookRepo{}
	warehouses := newFakeWarehouseRepo(1)
	svc := NewImportService(books, warehouses)

	path := writeSheet(t, [][]interface{}{
		{"title", "author", "isbn", "warehouseId"},
		{"Valid Book", "Author", "9780000000001", "1"},
		{"", "Author", "", "1"},
		{"No Such Warehouse", "Author", "", "99"},
		{"Bad Warehouse Cell", "Author", "", "abc"},
		{"Duplicate ISBN", "Author", "9780000000001", "1"},
	})

	report, err := svc.ImportBooks(context.Background(), path)
	require.NoError(t, err)

	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 4, report.ErrorCount)
	require.Len(t, report.Errors, 4)

	assert.Equal(t, "Row 3: Missing required fields (title, author, warehouseId)", report.Errors[0])
	assert.Equal(t, "Row 4: Warehouse ID 99 not found", report.Errors[1])
	assert.Equal(t, "Row 5: Warehouse ID abc not found", report.Errors[2])
	assert.Equal(t, "Row 6: isbn already exists", report.Errors[3])

	assert.Equal(t, "Import completed: 1 books added successfully, 4 errors occurred", report.Message)
	assert.Len(t, books.books, 1, "failed rows must not create books")
}

func TestImportBooksHeaderAliases(t *testing.T) {
	cases := []struct {
		name   string
		header []interface{}
	}{
		{"capitalized", []interface{}{"Title", "Author", "ISBN", "WarehouseId"}},
		{"snake case", []interface{}{"title", "author", "isbn", "warehouse_id"}},
		{"padded", []interface{}{" title ", " author ", " isbn ", " warehouseId "}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			books := &fakeBookRepo{}
			svc := NewImportService(books, newFakeWarehouseRepo(1))

			path := writeSheet(t, [][]interface{}{
				tc.header,
				{"Some Book", "Someone", "", "1"},
			})

			report, err := svc.ImportBooks(context.Background(), path)
			require.NoError(t, err)
			assert.Equal(t, 1, report.SuccessCount)
			assert.Empty(t, report.Errors)
		})
	}
}

func TestImportBooksHeaderOnly(t *testing.T) {
	svc := NewImportService(&fakeBookRepo{}, newFakeWarehouseRepo(1))

	path := writeSheet(t, [][]interface{}{
		{"title", "author", "isbn", "warehouseId"},
	})

	report, err := svc.ImportBooks(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, 0, report.SuccessCount)
	assert.Equal(t, 0, report.ErrorCount)
	assert.Equal(t, "empty file", report.Message)
}

func TestImportBooksUnreadableFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "not-a-spreadsheet.xlsx")
	require.NoError(t, os.WriteFile(path, []byte("plain text"), 0o644))

	svc := NewImportService(&fakeBookRepo{}, newFakeWarehouseRepo(1))

	_, err := svc.ImportBooks(context.Background(), path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrParseFailed))

	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "upload is discarded even when parsing fails")
}
