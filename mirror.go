package orderflow

import (
	"context"
	"fmt"

	"github.com/avikal/orderflow/date"
)

// CellGrid is a remote two-dimensional cell store addressed by a named
// tab. The production implementation is SheetsGrid; tests use an
// in-memory grid.
type CellGrid interface {
	// Read returns all rows of the tab. Cells are text.
	Read(ctx context.Context, tab string) ([][]string, error)
	// Update writes rows starting at the tab's top-left cell.
	Update(ctx context.Context, tab string, rows [][]string) error
	// Clear empties the tab.
	Clear(ctx context.Context, tab string) error
	// EnsureTab creates the tab when it does not exist. Idempotent.
	EnsureTab(ctx context.Context, tab string) error
}

// RemoteMirror keeps a shareable spreadsheet copy of the full snapshot,
// synchronized by a full clear-then-rewrite after every mutation. Full
// replace trades efficiency for simplicity: there is never partial
// update drift between the local file and the mirror.
type RemoteMirror struct {
	Grid CellGrid
	Tab  string
}

// LoadAll reads all rows from the remote tab into a snapshot. A tab
// with fewer than two rows (header plus at least one data row) is the
// "no data yet" terminal state and yields an empty snapshot, not an
// error. A missing tab is provisioned on demand.
func (m *RemoteMirror) LoadAll(ctx context.Context) (*Ledger, error) {
	if err := m.Grid.EnsureTab(ctx, m.Tab); err != nil {
		return nil, fmt.Errorf("cannot provision mirror tab %q: %w", m.Tab, err)
	}
	rows, err := m.Grid.Read(ctx, m.Tab)
	if err != nil {
		return nil, fmt.Errorf("cannot read mirror tab %q: %w", m.Tab, err)
	}
	if len(rows) < 2 {
		return NewLedger(), nil
	}
	schema, err := DetectSchema(rows[0])
	if err != nil {
		return nil, fmt.Errorf("mirror tab %q: %w", m.Tab, err)
	}
	ledger := NewLedger()
	today := date.Today()
	for _, row := range rows[1:] {
		// The mirror stores every cell as text; Record coerces the
		// numeric columns back.
		ledger.records = append(ledger.records, schema.Record(row, today))
	}
	return ledger, nil
}

// ReplaceAll publishes the snapshot to the remote tab: sorted by date
// ascending, dates as fixed-width day-month-year strings, full clear
// then rewrite. The operation is idempotent for a given snapshot. A
// missing tab is provisioned on demand.
func (m *RemoteMirror) ReplaceAll(ctx context.Context, ledger *Ledger) error {
	if err := m.Grid.EnsureTab(ctx, m.Tab); err != nil {
		return fmt.Errorf("cannot provision mirror tab %q: %w", m.Tab, err)
	}

	rows := make([][]string, 0, ledger.Len()+1)
	rows = append(rows, Dated.Columns())
	for _, o := range ledger.SortedByDate() {
		rows = append(rows, Dated.MirrorRow(o))
	}

	if err := m.Grid.Clear(ctx, m.Tab); err != nil {
		return fmt.Errorf("cannot clear mirror tab %q: %w", m.Tab, err)
	}
	if err := m.Grid.Update(ctx, m.Tab, rows); err != nil {
		return fmt.Errorf("cannot write mirror tab %q: %w", m.Tab, err)
	}
	return nil
}
