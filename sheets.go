package orderflow

import (
	"context"
	"fmt"
	"log"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetsGrid is the CellGrid implementation backed by a Google
// spreadsheet, addressed by its spreadsheet ID.
type SheetsGrid struct {
	svc *sheets.Service
	id  string
}

var _ CellGrid = (*SheetsGrid)(nil)

// NewSheetsGrid opens the spreadsheet with the given ID. credentials is
// the path to a service-account key file; when empty, ambient
// application-default credentials are used.
func NewSheetsGrid(ctx context.Context, spreadsheetID, credentials string) (*SheetsGrid, error) {
	opts := []option.ClientOption{option.WithScopes(sheets.SpreadsheetsScope)}
	if credentials != "" {
		opts = append(opts, option.WithCredentialsFile(credentials))
	}
	svc, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create sheets client: %w", err)
	}
	return &SheetsGrid{svc: svc, id: spreadsheetID}, nil
}

// Read returns all rows of the tab as text cells.
func (g *SheetsGrid) Read(ctx context.Context, tab string) ([][]string, error) {
	resp, err := g.svc.Spreadsheets.Values.Get(g.id, tab).Context(ctx).Do()
	if err != nil {
		return nil, err
	}
	rows := make([][]string, 0, len(resp.Values))
	for _, rowValues := range resp.Values {
		row := make([]string, 0, len(rowValues))
		for _, cell := range rowValues {
			row = append(row, fmt.Sprint(cell))
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// Update writes rows starting at A1, as raw text.
func (g *SheetsGrid) Update(ctx context.Context, tab string, rows [][]string) error {
	values := make([][]interface{}, 0, len(rows))
	for _, row := range rows {
		cells := make([]interface{}, 0, len(row))
		for _, cell := range row {
			cells = append(cells, cell)
		}
		values = append(values, cells)
	}
	vr := &sheets.ValueRange{Values: values}
	_, err := g.svc.Spreadsheets.Values.Update(g.id, tab+"!A1", vr).
		ValueInputOption("RAW").Context(ctx).Do()
	return err
}

// Clear empties the tab.
func (g *SheetsGrid) Clear(ctx context.Context, tab string) error {
	_, err := g.svc.Spreadsheets.Values.Clear(g.id, tab, &sheets.ClearValuesRequest{}).Context(ctx).Do()
	return err
}

// EnsureTab creates the tab when the spreadsheet does not have it yet.
// Provisioning rather than failing keeps a half-configured spreadsheet
// out of the error path.
func (g *SheetsGrid) EnsureTab(ctx context.Context, tab string) error {
	doc, err := g.svc.Spreadsheets.Get(g.id).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("cannot inspect spreadsheet %q: %w", g.id, err)
	}
	for _, sheet := range doc.Sheets {
		if sheet.Properties != nil && sheet.Properties.Title == tab {
			return nil
		}
	}
	log.Printf("create-mirror-tab spreadsheet=%q tab=%q", g.id, tab)
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			AddSheet: &sheets.AddSheetRequest{
				Properties: &sheets.SheetProperties{Title: tab},
			},
		}},
	}
	if _, err := g.svc.Spreadsheets.BatchUpdate(g.id, req).Context(ctx).Do(); err != nil {
		return fmt.Errorf("cannot create tab %q: %w", tab, err)
	}
	return nil
}
