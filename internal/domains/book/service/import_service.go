package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"

	"bookong/internal/domains/book/model"
	"bookong/internal/domains/book/repository"
	warehouseModel "bookong/internal/domains/warehouse/model"
	warehouseRepo "bookong/internal/domains/warehouse/repository"
)

// ErrParseFailed wraps whole-file failures: the upload is not a
// well-formed spreadsheet. Everything past parsing is reported per row
// and never raised.
var ErrParseFailed = errors.New("failed to parse spreadsheet")

// Accepted column names per logical field, checked against the header
// after normalization (trim + lowercase). The file format tolerates
// case variants and snake_case, e.g. Title, WarehouseId, warehouse_id.
var columnAliases = map[string][]string{
	"title":       {"title"},
	"author":      {"author"},
	"isbn":        {"isbn"},
	"warehouseId": {"warehouseid", "warehouse_id"},
}

type importService struct {
	bookRepo      repository.RepositoryInterface
	warehouseRepo warehouseRepo.Repository
}

func NewImportService(books repository.RepositoryInterface, warehouses warehouseRepo.Repository) ImportServiceInterface {
	return &importService{
		bookRepo:      books,
		warehouseRepo: warehouses,
	}
}

// ImportBooks reads the first sheet of the uploaded spreadsheet and
// creates one book per data row. Rows are processed in file order and
// independently: a failing row is recorded in the report and the next
// row still runs. The temp upload is discarded before returning.
func (s *importService) ImportBooks(ctx context.Context, path string) (*model.ImportReport, error) {
	defer s.discardUpload(path)

	rows, err := s.parseFile(path)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 {
		return &model.ImportReport{
			Errors:  []string{},
			Message: "empty file",
		}, nil
	}

	log.Info().Int("rows", len(rows)).Msg("Starting book import")

	report := &model.ImportReport{Errors: []string{}}
	for _, row := range rows {
		if msg, ok := s.importRow(ctx, row); !ok {
			report.Errors = append(report.Errors, msg)
			report.ErrorCount++
			continue
		}
		report.SuccessCount++
	}

	report.Message = fmt.Sprintf("Import completed: %d books added successfully", report.SuccessCount)
	if report.ErrorCount > 0 {
		report.Message += fmt.Sprintf(", %d errors occurred", report.ErrorCount)
	}

	log.Info().
		Int("success_count", report.SuccessCount).
		Int("error_count", report.ErrorCount).
		Msg("Book import completed")

	return report, nil
}

// importRow runs one row through the pipeline. It returns ok=true on
// success, otherwise the human-readable report line for the row.
func (s *importService) importRow(ctx context.Context, row model.ImportRow) (string, bool) {
	if row.Title == "" || row.Author == "" || row.WarehouseID == "" {
		return fmt.Sprintf("Row %d: Missing required fields (title, author, warehouseId)", row.RowNumber), false
	}

	warehouseID, err := strconv.ParseInt(strings.TrimSpace(row.WarehouseID), 10, 64)
	if err != nil {
		// A non-numeric id can never reference a warehouse.
		return fmt.Sprintf("Row %d: Warehouse ID %s not found", row.RowNumber, row.WarehouseID), false
	}

	if _, err := s.warehouseRepo.GetByID(ctx, warehouseID); err != nil {
		if errors.Is(err, warehouseModel.ErrWarehouseNotFound) {
			return fmt.Sprintf("Row %d: Warehouse ID %d not found", row.RowNumber, warehouseID), false
		}
		return fmt.Sprintf("Row %d: %v", row.RowNumber, err), false
	}

	req := model.CreateBookRequest{
		Title:       row.Title,
		Author:      row.Author,
		ISBN:        row.ISBN,
		WarehouseID: warehouseID,
	}
	if err := req.Validate(); err != nil {
		return fmt.Sprintf("Row %d: %v", row.RowNumber, err), false
	}

	book := &model.Book{
		Title:       req.Title,
		Author:      req.Author,
		ISBN:        req.ISBNPtr(),
		IsAvailable: true,
		WarehouseID: warehouseID,
	}
	if err := s.bookRepo.Create(ctx, book); err != nil {
		return fmt.Sprintf("Row %d: %v", row.RowNumber, err), false
	}

	return "", true
}

// parseFile reads the first sheet into ImportRows. The header is row 1
// of the sheet; data rows are numbered from 2, matching how a person
// counts rows in the open spreadsheet.
func (s *importService) parseFile(path string) ([]model.ImportRow, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("%w: workbook has no sheets", ErrParseFailed)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseFailed, err)
	}
	if len(rows) < 2 {
		return nil, nil // header only, or nothing at all
	}

	colIndex := resolveColumns(rows[0])

	var result []model.ImportRow
	for i, record := range rows[1:] {
		getCol := func(field string) string {
			idx, ok := colIndex[field]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		result = append(result, model.ImportRow{
			RowNumber:   i + 2,
			Title:       getCol("title"),
			Author:      getCol("author"),
			ISBN:        getCol("isbn"),
			WarehouseID: getCol("warehouseId"),
		})
	}

	return result, nil
}

// resolveColumns maps each logical field to its column position using
// the alias table. The first matching column wins.
func resolveColumns(header []string) map[string]int {
	byAlias := make(map[string]string)
	for field, aliases := range columnAliases {
		for _, alias := range aliases {
			byAlias[alias] = field
		}
	}

	colIndex := make(map[string]int)
	for i, name := range header {
		normalized := strings.ToLower(strings.TrimSpace(name))
		field, ok := byAlias[normalized]
		if !ok {
			continue
		}
		if _, taken := colIndex[field]; !taken {
			colIndex[field] = i
		}
	}

	return colIndex
}

// discardUpload removes the temp upload file. Best effort: a leftover
// temp file is not worth failing the request over.
func (s *importService) discardUpload(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Str("path", path).Msg("Failed to remove uploaded file")
	}
}
