package orderflow

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// This file contains the import/export boundary: conversion between the
// snapshot and externally supplied or downloadable tables. It performs
// the header-signature check and nothing more; aggregation and deeper
// validation live elsewhere.

// ExportSheetName is the single sheet of the exported workbook.
const ExportSheetName = "Orders"

// ImportCSV parses an uploaded CSV table into a batch snapshot. The
// header must exactly equal a canonical schema, column order included;
// otherwise a SchemaMismatchError is returned and nothing is imported.
func ImportCSV(r io.Reader) (*Ledger, error) {
	return decodeTable(r)
}

// ExportCSV serializes the snapshot to UTF-8 CSV in the canonical
// dated schema.
func ExportCSV(w io.Writer, ledger *Ledger) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Dated.Columns()); err != nil {
		return fmt.Errorf("cannot write export header: %w", err)
	}
	for _, o := range ledger.Records() {
		if err := cw.Write(Dated.Row(o)); err != nil {
			return fmt.Errorf("cannot write export row: %w", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot export snapshot: %w", err)
	}
	return nil
}

// Template writes the downloadable import template: the canonical
// header and no rows.
func Template(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Dated.Columns()); err != nil {
		return fmt.Errorf("cannot write template: %w", err)
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot write template: %w", err)
	}
	return nil
}

// ExportXLSX serializes the snapshot to a row-oriented spreadsheet
// workbook with the single sheet "Orders".
func ExportXLSX(w io.Writer, ledger *Ledger) error {
	f := excelize.NewFile()
	defer f.Close()
	if err := f.SetSheetName(f.GetSheetName(0), ExportSheetName); err != nil {
		return fmt.Errorf("cannot name export sheet: %w", err)
	}

	writeRow := func(n int, cells []string) error {
		row := make([]interface{}, 0, len(cells))
		for _, cell := range cells {
			row = append(row, cell)
		}
		ref, err := excelize.CoordinatesToCellName(1, n)
		if err != nil {
			return err
		}
		return f.SetSheetRow(ExportSheetName, ref, &row)
	}

	if err := writeRow(1, Dated.Columns()); err != nil {
		return fmt.Errorf("cannot write workbook header: %w", err)
	}
	for i, o := range ledger.Records() {
		if err := writeRow(i+2, Dated.Row(o)); err != nil {
			return fmt.Errorf("cannot write workbook row: %w", err)
		}
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("cannot write workbook: %w", err)
	}
	return nil
}
