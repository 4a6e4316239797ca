package services

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/common"
	"github.com/FabritcioPS15/SistemadeInventario-GrupoSanCristobal-sub000/internal/models/dtos"
)

// ParseWorkbook reads an uploaded xlsx stream into raw sheets. Headers are
// normalized for lookups; cell values keep the parser's raw text so the
// normalizers see serials and strings alike. Empty cells are legitimate and
// simply absent from the row map.
func ParseWorkbook(r io.Reader) ([]dtos.RawSheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	var sheets []dtos.RawSheet
	for _, name := range f.GetSheetList() {
		rows, err := f.GetRows(name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %q: %w", name, err)
		}
		sheets = append(sheets, dtos.RawSheet{
			Name: name,
			Rows: sheetRows(rows),
		})
	}
	return sheets, nil
}

func sheetRows(grid [][]string) []dtos.Row {
	if len(grid) < 2 {
		return nil
	}

	headers := make([]string, len(grid[0]))
	for i, h := range grid[0] {
		headers[i] = common.NormalizeHeader(h)
	}

	var rows []dtos.Row
	for _, cells := range grid[1:] {
		row := dtos.Row{}
		for col, value := range cells {
			if col >= len(headers) || headers[col] == "" || value == "" {
				continue
			}
			row[headers[col]] = value
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows
}
