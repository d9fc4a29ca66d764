package orderflow

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/avikal/orderflow/date"
)

// utf8BOM is prepended to the local file when mirroring is active, so
// the file opens cleanly in spreadsheet applications.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// LocalStore is the flat-file durable copy of the ledger, the offline
// cache and fallback source of truth.
type LocalStore struct {
	Path string
	// BOM prepends a UTF-8 byte-order mark on every rewrite.
	BOM bool
}

// EnsureInitialized creates the file with a header-only canonical table
// when it is absent. It is idempotent and safe to call on every start:
// an existing file, whatever its content, is left untouched.
func (s *LocalStore) EnsureInitialized() error {
	if _, err := os.Stat(s.Path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("cannot stat ledger file %q: %w", s.Path, err)
	}
	log.Printf("create-ledger-file name=%q schema=%v", s.Path, Dated)
	return s.write(Dated.Columns())
}

// LoadAll reads the entire file into a snapshot. The header must match
// a supported schema variant; rows decode with the documented coercion
// defaults. A missing file is self-healed into an empty dated table.
func (s *LocalStore) LoadAll() (*Ledger, error) {
	if err := s.EnsureInitialized(); err != nil {
		return nil, err
	}
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", s.Path, err)
	}
	defer f.Close()
	return decodeTable(f)
}

// AppendRows appends orders to the file. A header is written only when
// the file was previously empty, so append never duplicates headers.
// Rows are not deduplicated: duplicate submissions create duplicate
// orders by design.
func (s *LocalStore) AppendRows(orders []Order) error {
	if err := s.EnsureInitialized(); err != nil {
		return err
	}

	// The rows must follow the schema of the existing header.
	schema, empty, err := s.sniff()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(s.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("cannot open ledger file %q for append: %w", s.Path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if empty {
		if err := w.Write(schema.Columns()); err != nil {
			return fmt.Errorf("cannot write header to %q: %w", s.Path, err)
		}
	}
	for _, o := range orders {
		if err := w.Write(schema.Row(o)); err != nil {
			return fmt.Errorf("cannot append order to %q: %w", s.Path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("cannot append to %q: %w", s.Path, err)
	}
	return nil
}

// OverwriteAll rewrites the whole file from the snapshot in the
// canonical dated schema. Edit and delete flow through here, since they
// mutate or remove an arbitrary row rather than appending.
func (s *LocalStore) OverwriteAll(ledger *Ledger) error {
	rows := make([][]string, 0, ledger.Len()+1)
	rows = append(rows, Dated.Columns())
	for _, o := range ledger.Records() {
		rows = append(rows, Dated.Row(o))
	}
	return s.write(rows...)
}

func (s *LocalStore) write(rows ...[]string) error {
	var buf bytes.Buffer
	if s.BOM {
		buf.Write(utf8BOM)
	}
	w := csv.NewWriter(&buf)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("cannot encode ledger table: %w", err)
	}
	if err := os.WriteFile(s.Path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("cannot write ledger file %q: %w", s.Path, err)
	}
	return nil
}

// sniff reads the header to determine the file's schema and whether the
// file holds no rows at all.
func (s *LocalStore) sniff() (schema Schema, empty bool, err error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return 0, false, fmt.Errorf("cannot open ledger file %q: %w", s.Path, err)
	}
	defer f.Close()

	r := newTableReader(f)
	header, err := r.Read()
	if err == io.EOF {
		return Dated, true, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("cannot read header of %q: %w", s.Path, err)
	}
	schema, err = DetectSchema(header)
	if err != nil {
		return 0, false, fmt.Errorf("unsupported ledger file %q: %w", s.Path, err)
	}
	return schema, false, nil
}

// newTableReader builds a csv.Reader that tolerates ragged rows and a
// leading byte-order mark.
func newTableReader(r io.Reader) *csv.Reader {
	cr := csv.NewReader(&bomReader{r: r})
	cr.FieldsPerRecord = -1
	return cr
}

// decodeTable reads a whole CSV table into a snapshot.
func decodeTable(r io.Reader) (*Ledger, error) {
	cr := newTableReader(r)
	header, err := cr.Read()
	if err == io.EOF {
		return NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read table header: %w", err)
	}
	schema, err := DetectSchema(header)
	if err != nil {
		return nil, err
	}

	ledger := NewLedger()
	today := date.Today()
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read table row: %w", err)
		}
		ledger.records = append(ledger.records, schema.Record(row, today))
	}
	return ledger, nil
}

// bomReader strips a leading UTF-8 byte-order mark from the stream.
type bomReader struct {
	r       io.Reader
	started bool
}

func (b *bomReader) Read(p []byte) (int, error) {
	if !b.started {
		b.started = true
		head := make([]byte, 3)
		n, err := io.ReadFull(b.r, head)
		if err == io.EOF {
			return 0, io.EOF
		}
		if err != nil && err != io.ErrUnexpectedEOF {
			return 0, err
		}
		head = head[:n]
		if !bytes.Equal(head, utf8BOM) {
			b.r = io.MultiReader(bytes.NewReader(head), b.r)
		}
		return b.Read(p)
	}
	return b.r.Read(p)
}
