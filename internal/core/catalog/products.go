// Package catalog ingests the product-information table into catalog
// entries.
package catalog

import (
	"crypto/rand"
	"encoding/csv"
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/stickerlab/backend/internal/core/domain"
)

// selectableSizes is the size range offered for stickers and die-cut
// magnets. Fridge magnets carry one fixed size instead.
var selectableSizes = []string{
	"2x2", "3x3", "4x4", "5x5", "6x6", "7x7", "8x8",
	"9x9", "10x10", "11x11", "12x12", "14x14", "16x16",
	"18x18", "20x20", "22x22",
}

// ParseProducts reads the product CSV (header row with "product",
// "generic description", bullet point and image columns) into catalog
// entries. Rows without a product name are skipped.
func ParseProducts(r io.Reader) ([]domain.Product, error) {
	const op = "catalog.ParseProducts"

	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: missing header: %w", op, err)
	}
	cols := columnIndex(header)

	var products []domain.Product
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		name := strings.TrimSpace(cell(row, cols, "product"))
		if name == "" {
			continue
		}

		p := domain.Product{
			ProductID:   NewProductID(),
			Category:    categoryFromName(name),
			Name:        name,
			Description: strings.TrimSpace(cell(row, cols, "generic description")),
			IsActive:    true,
		}

		for _, key := range []string{"bullet point 1", "bullet point 2", "bullet point 4"} {
			if v := strings.TrimSpace(cell(row, cols, key)); v != "" {
				p.BulletPoints = append(p.BulletPoints, v)
			}
		}
		for _, key := range []string{"image1", "image2", "image3"} {
			if v := strings.TrimSpace(cell(row, cols, key)); v != "" {
				p.Images = append(p.Images, v)
			}
		}

		if p.Category == domain.CategoryFridgeMagnet {
			p.FixedSize = domain.SizeFromName(name)
		} else {
			p.AvailableSizes = selectableSizes
		}

		products = append(products, p)
	}

	return products, nil
}

// NewProductID returns an opaque catalog identifier, e.g. PROD-3FA4B121.
func NewProductID() string {
	var b [4]byte
	_, _ = rand.Read(b[:])
	return "PROD-" + strings.ToUpper(hex.EncodeToString(b[:]))
}

func categoryFromName(name string) domain.Category {
	n := strings.ToLower(name)
	switch {
	case strings.Contains(n, "sticker") || strings.Contains(n, "decal"):
		return domain.CategorySticker
	case strings.Contains(n, "fridge") || strings.Contains(n, "refrigerator"):
		return domain.CategoryFridgeMagnet
	default:
		return domain.CategoryMagnet
	}
}

func columnIndex(header []string) map[string]int {
	cols := make(map[string]int, len(header))
	for i, h := range header {
		cols[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return cols
}

func cell(row []string, cols map[string]int, key string) string {
	i, ok := cols[key]
	if !ok || i >= len(row) {
		return ""
	}
	return row[i]
}
