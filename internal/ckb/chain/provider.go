// Package chain provides the chain-state surfaces a dump reads from: cell data, headers and script groups.
package chain

import (
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/hashing"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"
)

// MemCellData serves cell data that was materialized on the resolved cell itself.
type MemCellData struct{}

// LoadCellData returns the cell's in-memory data, if any.
func (MemCellData) LoadCellData(cell *model.CellMeta) ([]byte, bool) {
	if cell == nil || cell.MemCellData == nil {
		return nil, false
	}
	return cell.MemCellData, true
}

// HeaderMap serves headers keyed by block hash.
type HeaderMap map[model.Hash]model.Header

// NewHeaderMap indexes headers by their computed hash.
func NewHeaderMap(headers []model.Header) HeaderMap {
	m := make(HeaderMap, len(headers))
	for _, h := range headers {
		m[hashing.HeaderHash(h)] = h
	}
	return m
}

// GetHeader returns the header with the given hash.
func (m HeaderMap) GetHeader(hash model.Hash) (*model.Header, bool) {
	h, ok := m[hash]
	if !ok {
		return nil, false
	}
	return &h, true
}
