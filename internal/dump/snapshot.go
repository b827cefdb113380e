// Package dump turns a resolved transaction into a mock transaction document and a debugger command.
package dump

import (
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/hashing"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/molecule"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/dumperr"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/mocktx"
)

// BuildSnapshot projects a resolved transaction into a mock transaction.
// Headers may be nil when the transaction has no header deps.
func BuildSnapshot(rtx *model.ResolvedTransaction, cells CellDataProvider, headers HeaderProvider) (*mocktx.MockTransaction, error) {
	tx := rtx.Transaction
	if len(rtx.ResolvedInputs) != len(tx.Inputs) {
		return nil, dumperr.Newf(dumperr.StageBuild, dumperr.ErrLookup,
			"%d resolved inputs for %d transaction inputs", len(rtx.ResolvedInputs), len(tx.Inputs))
	}

	inputs := make([]mocktx.MockInput, 0, len(rtx.ResolvedInputs))
	// since comes from the body, the resolved cell only knows what it consumed
	for i := range rtx.ResolvedInputs {
		cell := &rtx.ResolvedInputs[i]
		data, err := loadCellData(cells, cell, "input", i)
		if err != nil {
			return nil, err
		}
		input := mocktx.MockInput{
			Input:  mocktx.PackCellInput(tx.Inputs[i]),
			Output: mocktx.PackCellOutput(cell.Output),
			Data:   molecule.PackBytes(data),
		}
		if cell.TransactionInfo != nil {
			blockHash := cell.TransactionInfo.BlockHash
			input.Header = &blockHash
		}
		inputs = append(inputs, input)
	}

	cellDeps := make([]mocktx.MockCellDep, 0, len(rtx.ResolvedCellDeps)+len(rtx.ResolvedDepGroups))
	for _, group := range []struct {
		kind  string
		tag   model.DepType
		cells []model.CellMeta
	}{
		{kind: "cell dep", tag: model.DepTypeCode, cells: rtx.ResolvedCellDeps},
		{kind: "dep group", tag: model.DepTypeDepGroup, cells: rtx.ResolvedDepGroups},
	} {
		for i := range group.cells {
			cell := &group.cells[i]
			data, err := loadCellData(cells, cell, group.kind, i)
			if err != nil {
				return nil, err
			}
			cellDeps = append(cellDeps, mocktx.MockCellDep{
				CellDep:  mocktx.PackCellDep(model.CellDep{OutPoint: cell.OutPoint, DepType: group.tag}),
				Output:   mocktx.PackCellOutput(cell.Output),
				Data:     molecule.PackBytes(data),
				DataHash: hashing.DataHash(data),
			})
		}
	}

	headerDeps := make([]mocktx.Header, 0, len(tx.HeaderDeps))
	for _, hash := range tx.HeaderDeps {
		var header *model.Header
		ok := false
		if headers != nil {
			header, ok = headers.GetHeader(hash)
		}
		if !ok {
			return nil, dumperr.Newf(dumperr.StageBuild, dumperr.ErrLookup, "header dep %s not supplied", hash)
		}
		headerDeps = append(headerDeps, mocktx.PackHeader(*header))
	}

	return &mocktx.MockTransaction{
		MockInfo: mocktx.MockInfo{
			Inputs:     inputs,
			CellDeps:   cellDeps,
			HeaderDeps: headerDeps,
		},
		Tx:     mocktx.PackTransaction(tx),
		TxHash: hashing.TxHash(tx),
	}, nil
}

func loadCellData(cells CellDataProvider, cell *model.CellMeta, kind string, index int) ([]byte, error) {
	data, ok := cells.LoadCellData(cell)
	if !ok {
		return nil, dumperr.Newf(dumperr.StageBuild, dumperr.ErrLookup,
			"%s %d (%s:%d) has no cell data", kind, index, cell.OutPoint.TxHash, cell.OutPoint.Index)
	}
	return data, nil
}
