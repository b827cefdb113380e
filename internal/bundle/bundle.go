// Package bundle reads a resolved transaction, with the headers it depends on, from a JSON file.
package bundle

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/chain"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/document"
)

// File is the on-disk bundle layout. Fields reuse the document encodings.
type File struct {
	Transaction       document.Transaction `json:"transaction"`
	ResolvedInputs    []Cell               `json:"resolved_inputs"`
	ResolvedCellDeps  []Cell               `json:"resolved_cell_deps"`
	ResolvedDepGroups []Cell               `json:"resolved_dep_groups"`
	Headers           []document.Header    `json:"headers"`
}

// Cell is a resolved cell. Data is null when the cell's content was not loaded.
type Cell struct {
	OutPoint  document.OutPoint   `json:"out_point"`
	Output    document.CellOutput `json:"output"`
	Data      *string             `json:"data"`
	BlockHash *string             `json:"block_hash,omitempty"`
}

// Bundle is a decoded bundle file.
type Bundle struct {
	Transaction *model.ResolvedTransaction
	Headers     chain.HeaderMap
}

// Loader reads bundles from the filesystem.
type Loader struct{}

// Load reads and decodes the bundle at path.
func (Loader) Load(path string) (*Bundle, error) {
	return Load(path)
}

// Load reads and decodes the bundle at path.
func Load(path string) (*Bundle, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bundle: %w", err)
	}
	var f File
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, fmt.Errorf("decode bundle %s: %w", path, err)
	}
	bundle, err := Decode(&f)
	if err != nil {
		return nil, fmt.Errorf("bundle %s: %w", path, err)
	}
	return bundle, nil
}

// Decode converts a bundle file into model types.
func Decode(f *File) (*Bundle, error) {
	tx, err := parseTransaction(f.Transaction)
	if err != nil {
		return nil, fmt.Errorf("transaction: %w", err)
	}
	rtx := &model.ResolvedTransaction{Transaction: tx}

	for _, c := range []struct {
		name string
		src  []Cell
		dst  *[]model.CellMeta
	}{
		{name: "resolved input", src: f.ResolvedInputs, dst: &rtx.ResolvedInputs},
		{name: "resolved cell dep", src: f.ResolvedCellDeps, dst: &rtx.ResolvedCellDeps},
		{name: "resolved dep group", src: f.ResolvedDepGroups, dst: &rtx.ResolvedDepGroups},
	} {
		cells := make([]model.CellMeta, 0, len(c.src))
		for i, cell := range c.src {
			meta, err := parseCell(cell)
			if err != nil {
				return nil, fmt.Errorf("%s %d: %w", c.name, i, err)
			}
			cells = append(cells, meta)
		}
		*c.dst = cells
	}

	headers := make([]model.Header, 0, len(f.Headers))
	for i, h := range f.Headers {
		header, err := parseHeader(h)
		if err != nil {
			return nil, fmt.Errorf("header %d: %w", i, err)
		}
		headers = append(headers, header)
	}

	return &Bundle{Transaction: rtx, Headers: chain.NewHeaderMap(headers)}, nil
}
