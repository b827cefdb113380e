// Package mocktx holds the mock transaction in packed form: integers as little-endian
// buffers and variable byte fields as molecule Bytes, the shape the canonical encoder consumes.
package mocktx

import "github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"

// MockTransaction is the snapshot of a resolved transaction that a document is rendered from.
type MockTransaction struct {
	MockInfo MockInfo
	Tx       Transaction
	TxHash   model.Hash
}

// MockInfo is the resolved state the transaction reads.
type MockInfo struct {
	Inputs     []MockInput
	CellDeps   []MockCellDep
	HeaderDeps []Header
}

// MockInput is a consumed cell together with the input spending it.
type MockInput struct {
	Input  CellInput
	Output CellOutput
	Data   []byte
	// Header is the block that committed the consumed cell, when known.
	Header *model.Hash
}

// MockCellDep is a dependency cell together with the dep referencing it.
type MockCellDep struct {
	CellDep  CellDep
	Output   CellOutput
	Data     []byte
	DataHash model.Hash
}

// CellDep is the transaction-level reference to a dependency cell.
type CellDep struct {
	OutPoint OutPoint
	DepType  model.DepType
}

// Header is a full header and its hash.
type Header struct {
	Hash             model.Hash
	Version          []byte
	CompactTarget    []byte
	Timestamp        []byte
	Number           []byte
	Epoch            []byte
	ParentHash       model.Hash
	TransactionsRoot model.Hash
	ProposalsHash    model.Hash
	ExtraHash        model.Hash
	Dao              []byte
	Nonce            []byte
}

// Transaction is the replayed transaction body.
type Transaction struct {
	Version     []byte
	CellDeps    []CellDep
	HeaderDeps  []model.Hash
	Inputs      []CellInput
	Outputs     []CellOutput
	OutputsData [][]byte
	Witnesses   [][]byte
}

// CellInput spends a previous output.
type CellInput struct {
	Since          []byte
	PreviousOutput OutPoint
}

// OutPoint references an output.
type OutPoint struct {
	TxHash model.Hash
	Index  []byte
}

// CellOutput describes a cell.
type CellOutput struct {
	Capacity []byte
	Lock     Script
	Type     *Script
}

// Script is a code reference plus packed arguments.
type Script struct {
	CodeHash model.Hash
	HashType model.ScriptHashType
	Args     []byte
}
