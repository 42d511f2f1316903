package domain

// A Product is one catalog entry. Sticker and magnet products carry a
// list of selectable sizes; fridge magnets are produced in one fixed
// size parsed from the product name.
type Product struct {
	ProductID      string
	Category       Category
	Name           string
	Description    string
	BulletPoints   []string
	Images         []string
	IsActive       bool
	AvailableSizes []string
	FixedSize      string
}
