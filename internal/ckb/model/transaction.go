package model

// OutPoint references a specific output of a specific transaction.
type OutPoint struct {
	TxHash Hash
	Index  uint32
}

// CellInput consumes a previous output.
type CellInput struct {
	Since          uint64
	PreviousOutput OutPoint
}

// DepType tags how a cell dependency is replayed.
type DepType byte

var (
	// DepTypeCode is a direct cell dependency.
	DepTypeCode DepType = 0
	// DepTypeDepGroup is a cell dependency whose data expands to a list of out points.
	DepTypeDepGroup DepType = 1
)

// CellDep references a cell the transaction depends on.
type CellDep struct {
	OutPoint OutPoint
	DepType  DepType
}

// CellOutput describes a cell without its data.
type CellOutput struct {
	Capacity uint64
	Lock     Script
	Type     *Script
}

// Transaction is the transaction body as it is signed and replayed.
type Transaction struct {
	Version     uint32
	CellDeps    []CellDep
	HeaderDeps  []Hash
	Inputs      []CellInput
	Outputs     []CellOutput
	OutputsData [][]byte
	Witnesses   [][]byte
}

// Header is a full block header.
type Header struct {
	Version          uint32
	CompactTarget    uint32
	Timestamp        uint64
	Number           uint64
	Epoch            uint64
	ParentHash       Hash
	TransactionsRoot Hash
	ProposalsHash    Hash
	ExtraHash        Hash
	Dao              [32]byte
	// Nonce is a little-endian u128.
	Nonce [16]byte
}
