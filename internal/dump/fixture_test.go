package dump

import (
	"bytes"

	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/hashing"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"
)

var (
	// scriptBinary is the binary under test, deployed in the first cell dep.
	scriptBinary = append([]byte("\x7fELF"), bytes.Repeat([]byte{0x13, 0x00, 0x00, 0x00}, 64)...)
	inputData    = bytes.Repeat([]byte{0x05}, 123)
)

func hashOf(b byte) model.Hash {
	var h model.Hash
	for i := range h {
		h[i] = b
	}
	return h
}

func fixtureHeader() model.Header {
	h := model.Header{
		CompactTarget: 0x1d08a97e,
		Timestamp:     0x18c2d6f1a2b,
		Number:        0x1234,
		Epoch:         0x7080291000049,
		ParentHash:    hashOf(0x01),
	}
	h.Dao[0] = 0xab
	h.Nonce[0] = 0x01
	return h
}

// fixtureTransaction spends one cell locked by the binary under test and creates one output
// carrying a type script run by the same binary.
func fixtureTransaction() *model.ResolvedTransaction {
	codeHash := hashing.DataHash(scriptBinary)
	lock := model.Script{CodeHash: codeHash, HashType: model.HashTypeData1, Args: []byte{0x01, 0x02}}
	typ := model.Script{CodeHash: codeHash, HashType: model.HashTypeData, Args: []byte{}}
	header := fixtureHeader()

	tx := model.Transaction{
		Version: 0,
		CellDeps: []model.CellDep{
			{OutPoint: model.OutPoint{TxHash: hashOf(0xaa), Index: 0}, DepType: model.DepTypeCode},
			{OutPoint: model.OutPoint{TxHash: hashOf(0xbb), Index: 1}, DepType: model.DepTypeDepGroup},
		},
		HeaderDeps: []model.Hash{hashing.HeaderHash(header)},
		Inputs: []model.CellInput{
			{Since: 0x2000000000000010, PreviousOutput: model.OutPoint{TxHash: hashOf(0xcc), Index: 2}},
		},
		Outputs: []model.CellOutput{
			{Capacity: 100_0000_0000, Lock: lock, Type: &typ},
		},
		OutputsData: [][]byte{{0x00, 0x01}},
		Witnesses:   [][]byte{{0x55, 0x00}},
	}

	return &model.ResolvedTransaction{
		Transaction: tx,
		ResolvedInputs: []model.CellMeta{
			{
				OutPoint:        tx.Inputs[0].PreviousOutput,
				Output:          model.CellOutput{Capacity: 200_0000_0000, Lock: lock},
				TransactionInfo: &model.TransactionInfo{BlockHash: hashOf(0xdd)},
				MemCellData:     inputData,
			},
		},
		ResolvedCellDeps: []model.CellMeta{
			{
				OutPoint:    tx.CellDeps[0].OutPoint,
				Output:      model.CellOutput{Capacity: 500_0000_0000, Lock: model.Script{CodeHash: hashOf(0x00)}},
				MemCellData: scriptBinary,
			},
		},
		ResolvedDepGroups: []model.CellMeta{
			{
				OutPoint:    tx.CellDeps[1].OutPoint,
				Output:      model.CellOutput{Capacity: 100_0000_0000, Lock: model.Script{CodeHash: hashOf(0x00)}},
				MemCellData: append([]byte{0x01, 0x00, 0x00, 0x00}, bytes.Repeat([]byte{0xee}, 36)...),
			},
		},
	}
}
