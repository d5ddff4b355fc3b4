// Package catalog holds the card catalogs rendered by the docs site.
//
// The lead-management catalog is compiled into the binary. Catalogs with the
// same shape can also be read from disk so an edited copy can be previewed
// before it replaces the built-in one.
package catalog

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/arcanaland/perch-docs/internal/card"
)

//go:embed lead-management.toml
var leadManagementTOML string

var leadManagement = mustDecodeString(leadManagementTOML)

// File is the on-disk layout of a catalog
type File struct {
	Cards []card.Card `toml:"cards"`
}

// LeadManagement returns the lead-management portal cards in display order.
// Every call returns a fresh copy.
func LeadManagement() []card.Card {
	return clone(leadManagement)
}

// Load reads a catalog file
func Load(path string) ([]card.Card, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening catalog: %w", err)
	}
	defer f.Close()

	cards, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("error parsing %s: %w", path, err)
	}
	return cards, nil
}

// Decode reads a catalog from r. Content is not validated.
func Decode(r io.Reader) ([]card.Card, error) {
	var file File
	if _, err := toml.NewDecoder(r).Decode(&file); err != nil {
		return nil, err
	}
	return file.Cards, nil
}

// Encode writes cards in the catalog file layout
func Encode(w io.Writer, cards []card.Card) error {
	return toml.NewEncoder(w).Encode(File{Cards: cards})
}

// Active returns the catalog at path, or the built-in catalog when path is empty.
func Active(path string) ([]card.Card, error) {
	if path == "" {
		return LeadManagement(), nil
	}
	return Load(path)
}

func mustDecodeString(data string) []card.Card {
	var file File
	if _, err := toml.Decode(data, &file); err != nil {
		panic(fmt.Sprintf("catalog: embedded catalog is invalid: %v", err))
	}
	return file.Cards
}

func clone(cards []card.Card) []card.Card {
	out := make([]card.Card, len(cards))
	copy(out, cards)
	return out
}
