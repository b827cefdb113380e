// Package document defines the JSON schema of the mock transaction document consumed by ckb-debugger.
// Every integer and byte field is a 0x-prefixed hex string.
package document

// Document is the replayable mock transaction.
type Document struct {
	MockInfo MockInfo    `json:"mock_info"`
	Tx       Transaction `json:"tx"`
}

// MockInfo carries the resolved state the transaction reads.
type MockInfo struct {
	Inputs     []Input     `json:"inputs"`
	CellDeps   []CellDep   `json:"cell_deps"`
	HeaderDeps []Header    `json:"header_deps"`
	Extensions []Extension `json:"extensions"`
}

// Extension is a (block hash, extension bytes) pair.
type Extension [2]string

// Input is a consumed cell with the input that spends it.
type Input struct {
	Input  CellInput  `json:"input"`
	Output CellOutput `json:"output"`
	Data   string     `json:"data"`
	Header *string    `json:"header"`
}

// CellDep is a dependency cell with the dep that references it.
type CellDep struct {
	CellDep TxCellDep  `json:"cell_dep"`
	Output  CellOutput `json:"output"`
	Data    string     `json:"data"`
	Header  *string    `json:"header"`
}

// Header is a full block header record.
type Header struct {
	Version          string `json:"version"`
	CompactTarget    string `json:"compact_target"`
	Timestamp        string `json:"timestamp"`
	Number           string `json:"number"`
	Epoch            string `json:"epoch"`
	ParentHash       string `json:"parent_hash"`
	TransactionsRoot string `json:"transactions_root"`
	ProposalsHash    string `json:"proposals_hash"`
	ExtraHash        string `json:"extra_hash"`
	Dao              string `json:"dao"`
	Nonce            string `json:"nonce"`
	Hash             string `json:"hash"`
}

// Transaction is the transaction body as replayed.
type Transaction struct {
	Version     string       `json:"version"`
	CellDeps    []TxCellDep  `json:"cell_deps"`
	HeaderDeps  []string     `json:"header_deps"`
	Inputs      []CellInput  `json:"inputs"`
	Outputs     []CellOutput `json:"outputs"`
	OutputsData []string     `json:"outputs_data"`
	Witnesses   []string     `json:"witnesses"`
}

// TxCellDep references a dependency cell and its kind ("code" or "dep_group").
type TxCellDep struct {
	OutPoint OutPoint `json:"out_point"`
	DepType  string   `json:"dep_type"`
}

// CellInput spends a previous output.
type CellInput struct {
	Since          string   `json:"since"`
	PreviousOutput OutPoint `json:"previous_output"`
}

// OutPoint references an output of a transaction.
type OutPoint struct {
	TxHash string `json:"tx_hash"`
	Index  string `json:"index"`
}

// CellOutput describes a cell; Type is null when the cell has no type script.
type CellOutput struct {
	Capacity string  `json:"capacity"`
	Lock     Script  `json:"lock"`
	Type     *Script `json:"type"`
}

// Script is a code reference plus arguments.
type Script struct {
	CodeHash string `json:"code_hash"`
	HashType string `json:"hash_type"`
	Args     string `json:"args"`
}
