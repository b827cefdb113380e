package model

// TransactionInfo locates the transaction that created a cell.
type TransactionInfo struct {
	BlockHash Hash
}

// CellMeta is a cell resolved from the chain: its output, where it lives, and its data.
type CellMeta struct {
	OutPoint        OutPoint
	Output          CellOutput
	TransactionInfo *TransactionInfo
	// MemCellData is nil when the provider did not materialize the data.
	MemCellData []byte
}

// ResolvedTransaction is a transaction together with the cells each reference resolved to.
// Resolved entries are in the same order as the references in the transaction body.
type ResolvedTransaction struct {
	Transaction       Transaction
	ResolvedInputs    []CellMeta
	ResolvedCellDeps  []CellMeta
	ResolvedDepGroups []CellMeta
}
