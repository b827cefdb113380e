package molecule

import (
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"
	ckbmol "github.com/nervosnetwork/ckb-sdk-go/v2/types/molecule"
)

func script(s model.Script) ckbmol.Script {
	return ckbmol.NewScriptBuilder().
		CodeHash(byte32Of(s.CodeHash)).
		HashType(ckbmol.NewByte(byte(s.HashType))).
		Args(bytesOf(s.Args)).
		Build()
}

func scriptOpt(s *model.Script) ckbmol.ScriptOpt {
	if s == nil {
		return ckbmol.NewScriptOptBuilder().Build()
	}
	return ckbmol.NewScriptOptBuilder().Set(script(*s)).Build()
}

func outPoint(o model.OutPoint) ckbmol.OutPoint {
	return ckbmol.NewOutPointBuilder().
		TxHash(byte32Of(o.TxHash)).
		Index(uint32Of(o.Index)).
		Build()
}

func cellInput(in model.CellInput) ckbmol.CellInput {
	return ckbmol.NewCellInputBuilder().
		Since(uint64Of(in.Since)).
		PreviousOutput(outPoint(in.PreviousOutput)).
		Build()
}

func cellDep(dep model.CellDep) ckbmol.CellDep {
	return ckbmol.NewCellDepBuilder().
		OutPoint(outPoint(dep.OutPoint)).
		DepType(ckbmol.NewByte(byte(dep.DepType))).
		Build()
}

func cellOutput(o model.CellOutput) ckbmol.CellOutput {
	return ckbmol.NewCellOutputBuilder().
		Capacity(uint64Of(o.Capacity)).
		Lock(script(o.Lock)).
		Type(scriptOpt(o.Type)).
		Build()
}

func rawTransaction(tx model.Transaction) ckbmol.RawTransaction {
	cellDeps := make([]ckbmol.CellDep, 0, len(tx.CellDeps))
	for _, dep := range tx.CellDeps {
		cellDeps = append(cellDeps, cellDep(dep))
	}
	headerDeps := make([]ckbmol.Byte32, 0, len(tx.HeaderDeps))
	for _, h := range tx.HeaderDeps {
		headerDeps = append(headerDeps, byte32Of(h))
	}
	inputs := make([]ckbmol.CellInput, 0, len(tx.Inputs))
	for _, in := range tx.Inputs {
		inputs = append(inputs, cellInput(in))
	}
	outputs := make([]ckbmol.CellOutput, 0, len(tx.Outputs))
	for _, o := range tx.Outputs {
		outputs = append(outputs, cellOutput(o))
	}

	return ckbmol.NewRawTransactionBuilder().
		Version(uint32Of(tx.Version)).
		CellDeps(ckbmol.NewCellDepVecBuilder().Set(cellDeps).Build()).
		HeaderDeps(ckbmol.NewByte32VecBuilder().Set(headerDeps).Build()).
		Inputs(ckbmol.NewCellInputVecBuilder().Set(inputs).Build()).
		Outputs(ckbmol.NewCellOutputVecBuilder().Set(outputs).Build()).
		OutputsData(bytesVecOf(tx.OutputsData)).
		Build()
}

// Script serializes a script table.
func Script(s model.Script) []byte {
	m := script(s)
	return m.AsSlice()
}

// ScriptOpt serializes an optional script; an absent script is empty.
func ScriptOpt(s *model.Script) []byte {
	m := scriptOpt(s)
	return m.AsSlice()
}

// OutPoint serializes an out point struct.
func OutPoint(o model.OutPoint) []byte {
	m := outPoint(o)
	return m.AsSlice()
}

// CellInput serializes a cell input struct.
func CellInput(in model.CellInput) []byte {
	m := cellInput(in)
	return m.AsSlice()
}

// CellDep serializes a cell dep struct.
func CellDep(dep model.CellDep) []byte {
	m := cellDep(dep)
	return m.AsSlice()
}

// CellOutput serializes a cell output table.
func CellOutput(o model.CellOutput) []byte {
	m := cellOutput(o)
	return m.AsSlice()
}

// RawTransaction serializes the part of a transaction covered by its hash.
func RawTransaction(tx model.Transaction) []byte {
	m := rawTransaction(tx)
	return m.AsSlice()
}

// Transaction serializes a full transaction including witnesses.
func Transaction(tx model.Transaction) []byte {
	m := ckbmol.NewTransactionBuilder().
		Raw(rawTransaction(tx)).
		Witnesses(bytesVecOf(tx.Witnesses)).
		Build()
	return m.AsSlice()
}

// BytesVec serializes a vector of Bytes.
func BytesVec(items [][]byte) []byte {
	m := bytesVecOf(items)
	return m.AsSlice()
}

// Header serializes a header struct (raw header followed by the nonce).
func Header(h model.Header) []byte {
	raw := ckbmol.NewRawHeaderBuilder().
		Version(uint32Of(h.Version)).
		CompactTarget(uint32Of(h.CompactTarget)).
		Timestamp(uint64Of(h.Timestamp)).
		Number(uint64Of(h.Number)).
		Epoch(uint64Of(h.Epoch)).
		ParentHash(byte32Of(h.ParentHash)).
		TransactionsRoot(byte32Of(h.TransactionsRoot)).
		ProposalsHash(byte32Of(h.ProposalsHash)).
		ExtraHash(byte32Of(h.ExtraHash)).
		Dao(byte32Of(h.Dao)).
		Build()
	nonce := make([]byte, 16)
	copy(nonce, h.Nonce[:])
	m := ckbmol.NewHeaderBuilder().
		Raw(raw).
		Nonce(*ckbmol.Uint128FromSliceUnchecked(nonce)).
		Build()
	return m.AsSlice()
}
