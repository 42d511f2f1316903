// Package pricetable turns the shop's tabular price source into
// in-memory price entries and derives the fridge-magnet line from the
// die-cut magnet prices.
package pricetable

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/stickerlab/backend/internal/core/domain"
)

// QuantityBreakpoints are the fixed order-quantity tiers of the source
// table, in header-column order.
var QuantityBreakpoints = []int{
	12, 25, 50, 75, 100, 200, 300, 600, 1000, 2000, 3000, 6000, 10000,
}

// Result holds the parsed entries per section plus skip diagnostics.
// Unparseable cells are dropped on purpose (one bad cell must not block
// a catalog load); the counters keep the loss visible to operators.
type Result struct {
	Stickers     []domain.PriceEntry
	Magnets      []domain.PriceEntry
	SkippedCells int
	SkippedRows  int
}

// Parse reads the two-section CSV: a STICKERS PRICING block and a
// MAGNETS PRICING block, each a header row of quantity breakpoints
// followed by one row per size. Rows before the first section marker,
// blank rows and the literal SIZE header row are ignored.
func Parse(r io.Reader) (Result, error) {
	const op = "pricetable.Parse"

	var res Result

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	var section domain.Category
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", op, err)
		}

		if len(row) == 0 || strings.TrimSpace(row[0]) == "" {
			continue
		}

		first := strings.ToUpper(strings.TrimSpace(row[0]))
		switch {
		case strings.Contains(first, "STICKERS PRICING"):
			section = domain.CategorySticker
			continue
		case strings.Contains(first, "MAGNETS PRICING"):
			section = domain.CategoryMagnet
			continue
		case first == "SIZE":
			continue
		}

		if section == "" || !strings.Contains(strings.ToLower(row[0]), "x") {
			res.SkippedRows++
			continue
		}

		entries := parseDataRow(section, row, &res.SkippedCells)
		switch section {
		case domain.CategorySticker:
			res.Stickers = append(res.Stickers, entries...)
		case domain.CategoryMagnet:
			res.Magnets = append(res.Magnets, entries...)
		}
	}

	return res, nil
}

// parseDataRow maps the non-blank cell at column i (after the size
// column) to quantity breakpoint i. Cells that fail to parse are
// counted and skipped; the matrix simply has no entry for that pair.
func parseDataRow(
	category domain.Category, row []string, skipped *int,
) []domain.PriceEntry {
	size := strings.TrimSpace(row[0])

	var entries []domain.PriceEntry
	for i, qty := range QuantityBreakpoints {
		col := i + 1
		if col >= len(row) {
			break
		}
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			continue
		}

		price, err := domain.ParseMoney(cell)
		if err != nil {
			*skipped++
			continue
		}

		entries = append(entries, domain.PriceEntry{
			Category:  category,
			Size:      size,
			Quantity:  qty,
			UnitPrice: price,
		})
	}
	return entries
}
