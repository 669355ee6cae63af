package service

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"bookong/internal/domains/book/model"
)

const exportSheet = "Books"

// ExportBooks renders the catalog into a workbook, one row per book.
func (s *bookService) ExportBooks(ctx context.Context, query model.ListBooksQuery) (*excelize.File, error) {
	books, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	f := excelize.NewFile()
	f.SetSheetName("Sheet1", exportSheet)

	headers := []string{"ID", "Title", "Author", "ISBN", "Available", "Warehouse", "Created At"}
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue(exportSheet, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err == nil {
		f.SetCellStyle(exportSheet, "A1", "G1", headerStyle)
	}

	for i, b := range books {
		rowNum := i + 2
		cell := func(col int) string {
			name, _ := excelize.CoordinatesToCellName(col, rowNum)
			return name
		}

		f.SetCellValue(exportSheet, cell(1), b.ID)
		f.SetCellValue(exportSheet, cell(2), b.Title)
		f.SetCellValue(exportSheet, cell(3), b.Author)
		if b.ISBN != nil {
			f.SetCellValue(exportSheet, cell(4), *b.ISBN)
		}
		f.SetCellValue(exportSheet, cell(5), b.IsAvailable)
		if b.Warehouse != nil {
			f.SetCellValue(exportSheet, cell(6), b.Warehouse.Name)
		}
		f.SetCellValue(exportSheet, cell(7), b.CreatedAt.Format("2006-01-02 15:04:05"))
	}

	return f, nil
}

// ImportTemplate builds the blank spreadsheet offered on the import
// form, with the expected header and one example row.
func ImportTemplate() *excelize.File {
	f := excelize.NewFile()

	headers := []string{"title", "author", "isbn", "warehouseId"}
	for colIdx, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 1)
		f.SetCellValue("Sheet1", cell, header)
	}

	example := []interface{}{"The Go Programming Language", "Donovan & Kernighan", "9780134190440", 1}
	for colIdx, value := range example {
		cell, _ := excelize.CoordinatesToCellName(colIdx+1, 2)
		f.SetCellValue("Sheet1", cell, value)
	}

	return f
}
