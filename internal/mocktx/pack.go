package mocktx

import (
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/hashing"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/molecule"
)

// PackOutPoint converts an out point to packed form.
func PackOutPoint(o model.OutPoint) OutPoint {
	return OutPoint{TxHash: o.TxHash, Index: molecule.PackUint32(o.Index)}
}

// PackCellInput converts a cell input to packed form.
func PackCellInput(in model.CellInput) CellInput {
	return CellInput{
		Since:          molecule.PackUint64(in.Since),
		PreviousOutput: PackOutPoint(in.PreviousOutput),
	}
}

// PackCellDep converts a cell dep to packed form.
func PackCellDep(dep model.CellDep) CellDep {
	return CellDep{OutPoint: PackOutPoint(dep.OutPoint), DepType: dep.DepType}
}

// PackScript converts a script to packed form.
func PackScript(s model.Script) Script {
	return Script{CodeHash: s.CodeHash, HashType: s.HashType, Args: molecule.PackBytes(s.Args)}
}

// PackCellOutput converts a cell output to packed form.
func PackCellOutput(o model.CellOutput) CellOutput {
	out := CellOutput{
		Capacity: molecule.PackUint64(o.Capacity),
		Lock:     PackScript(o.Lock),
	}
	if o.Type != nil {
		typ := PackScript(*o.Type)
		out.Type = &typ
	}
	return out
}

// PackHeader converts a header to packed form and computes its hash.
func PackHeader(h model.Header) Header {
	dao := h.Dao
	nonce := h.Nonce
	return Header{
		Hash:             hashing.HeaderHash(h),
		Version:          molecule.PackUint32(h.Version),
		CompactTarget:    molecule.PackUint32(h.CompactTarget),
		Timestamp:        molecule.PackUint64(h.Timestamp),
		Number:           molecule.PackUint64(h.Number),
		Epoch:            molecule.PackUint64(h.Epoch),
		ParentHash:       h.ParentHash,
		TransactionsRoot: h.TransactionsRoot,
		ProposalsHash:    h.ProposalsHash,
		ExtraHash:        h.ExtraHash,
		Dao:              dao[:],
		Nonce:            nonce[:],
	}
}

// PackTransaction converts a transaction body to packed form.
func PackTransaction(tx model.Transaction) Transaction {
	out := Transaction{
		Version:     molecule.PackUint32(tx.Version),
		CellDeps:    make([]CellDep, 0, len(tx.CellDeps)),
		HeaderDeps:  append(make([]model.Hash, 0, len(tx.HeaderDeps)), tx.HeaderDeps...),
		Inputs:      make([]CellInput, 0, len(tx.Inputs)),
		Outputs:     make([]CellOutput, 0, len(tx.Outputs)),
		OutputsData: make([][]byte, 0, len(tx.OutputsData)),
		Witnesses:   make([][]byte, 0, len(tx.Witnesses)),
	}
	for _, dep := range tx.CellDeps {
		out.CellDeps = append(out.CellDeps, PackCellDep(dep))
	}
	for _, in := range tx.Inputs {
		out.Inputs = append(out.Inputs, PackCellInput(in))
	}
	for _, o := range tx.Outputs {
		out.Outputs = append(out.Outputs, PackCellOutput(o))
	}
	for _, d := range tx.OutputsData {
		out.OutputsData = append(out.OutputsData, molecule.PackBytes(d))
	}
	for _, w := range tx.Witnesses {
		out.Witnesses = append(out.Witnesses, molecule.PackBytes(w))
	}
	return out
}
