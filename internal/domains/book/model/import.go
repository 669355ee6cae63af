package model

// ImportRow is one spreadsheet data row after column-alias resolution.
// RowNumber is the row's position as a human counts it in the file:
// the header is row 1, the first data row is row 2.
type ImportRow struct {
	RowNumber   int
	Title       string
	Author      string
	ISBN        string
	WarehouseID string // raw cell value, resolved against the store per row
}

// ImportReport is the aggregate result of a bulk import. Row errors
// are accumulated in file order and never abort the remaining rows.
type ImportReport struct {
	SuccessCount int      `json:"successCount"`
	ErrorCount   int      `json:"errorCount"`
	Errors       []string `json:"errors"`
	Message      string   `json:"message"`
}
