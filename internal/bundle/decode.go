package bundle

import (
	"fmt"

	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/hashing"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/document"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/encoding"
)

func parseTransaction(t document.Transaction) (model.Transaction, error) {
	version, err := encoding.ParseUint32(t.Version)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("version: %w", err)
	}
	tx := model.Transaction{
		Version:     version,
		CellDeps:    make([]model.CellDep, 0, len(t.CellDeps)),
		HeaderDeps:  make([]model.Hash, 0, len(t.HeaderDeps)),
		Inputs:      make([]model.CellInput, 0, len(t.Inputs)),
		Outputs:     make([]model.CellOutput, 0, len(t.Outputs)),
		OutputsData: make([][]byte, 0, len(t.OutputsData)),
		Witnesses:   make([][]byte, 0, len(t.Witnesses)),
	}
	for i, d := range t.CellDeps {
		dep, err := parseCellDep(d)
		if err != nil {
			return tx, fmt.Errorf("cell dep %d: %w", i, err)
		}
		tx.CellDeps = append(tx.CellDeps, dep)
	}
	for i, h := range t.HeaderDeps {
		hash, err := encoding.ParseHash(h)
		if err != nil {
			return tx, fmt.Errorf("header dep %d: %w", i, err)
		}
		tx.HeaderDeps = append(tx.HeaderDeps, hash)
	}
	for i, in := range t.Inputs {
		input, err := parseCellInput(in)
		if err != nil {
			return tx, fmt.Errorf("input %d: %w", i, err)
		}
		tx.Inputs = append(tx.Inputs, input)
	}
	for i, o := range t.Outputs {
		output, err := parseCellOutput(o)
		if err != nil {
			return tx, fmt.Errorf("output %d: %w", i, err)
		}
		tx.Outputs = append(tx.Outputs, output)
	}
	for i, d := range t.OutputsData {
		data, err := encoding.ParseBytes(d)
		if err != nil {
			return tx, fmt.Errorf("output data %d: %w", i, err)
		}
		tx.OutputsData = append(tx.OutputsData, data)
	}
	for i, w := range t.Witnesses {
		witness, err := encoding.ParseBytes(w)
		if err != nil {
			return tx, fmt.Errorf("witness %d: %w", i, err)
		}
		tx.Witnesses = append(tx.Witnesses, witness)
	}
	return tx, nil
}

func parseOutPoint(o document.OutPoint) (model.OutPoint, error) {
	txHash, err := encoding.ParseHash(o.TxHash)
	if err != nil {
		return model.OutPoint{}, fmt.Errorf("tx_hash: %w", err)
	}
	index, err := encoding.ParseUint32(o.Index)
	if err != nil {
		return model.OutPoint{}, fmt.Errorf("index: %w", err)
	}
	return model.OutPoint{TxHash: txHash, Index: index}, nil
}

func parseCellDep(d document.TxCellDep) (model.CellDep, error) {
	outPoint, err := parseOutPoint(d.OutPoint)
	if err != nil {
		return model.CellDep{}, err
	}
	depType, err := encoding.ParseDepType(d.DepType)
	if err != nil {
		return model.CellDep{}, err
	}
	return model.CellDep{OutPoint: outPoint, DepType: depType}, nil
}

func parseCellInput(in document.CellInput) (model.CellInput, error) {
	since, err := encoding.ParseUint64(in.Since)
	if err != nil {
		return model.CellInput{}, fmt.Errorf("since: %w", err)
	}
	prev, err := parseOutPoint(in.PreviousOutput)
	if err != nil {
		return model.CellInput{}, fmt.Errorf("previous_output: %w", err)
	}
	return model.CellInput{Since: since, PreviousOutput: prev}, nil
}

func parseScript(s document.Script) (model.Script, error) {
	codeHash, err := encoding.ParseHash(s.CodeHash)
	if err != nil {
		return model.Script{}, fmt.Errorf("code_hash: %w", err)
	}
	hashType, err := encoding.ParseHashType(s.HashType)
	if err != nil {
		return model.Script{}, err
	}
	args, err := encoding.ParseBytes(s.Args)
	if err != nil {
		return model.Script{}, fmt.Errorf("args: %w", err)
	}
	return model.Script{CodeHash: codeHash, HashType: hashType, Args: args}, nil
}

func parseCellOutput(o document.CellOutput) (model.CellOutput, error) {
	capacity, err := encoding.ParseUint64(o.Capacity)
	if err != nil {
		return model.CellOutput{}, fmt.Errorf("capacity: %w", err)
	}
	lock, err := parseScript(o.Lock)
	if err != nil {
		return model.CellOutput{}, fmt.Errorf("lock: %w", err)
	}
	out := model.CellOutput{Capacity: capacity, Lock: lock}
	if o.Type != nil {
		typ, err := parseScript(*o.Type)
		if err != nil {
			return model.CellOutput{}, fmt.Errorf("type: %w", err)
		}
		out.Type = &typ
	}
	return out, nil
}

func parseCell(c Cell) (model.CellMeta, error) {
	outPoint, err := parseOutPoint(c.OutPoint)
	if err != nil {
		return model.CellMeta{}, fmt.Errorf("out_point: %w", err)
	}
	output, err := parseCellOutput(c.Output)
	if err != nil {
		return model.CellMeta{}, err
	}
	meta := model.CellMeta{OutPoint: outPoint, Output: output}
	if c.Data != nil {
		meta.MemCellData, err = encoding.ParseBytes(*c.Data)
		if err != nil {
			return model.CellMeta{}, fmt.Errorf("data: %w", err)
		}
	}
	if c.BlockHash != nil {
		blockHash, err := encoding.ParseHash(*c.BlockHash)
		if err != nil {
			return model.CellMeta{}, fmt.Errorf("block_hash: %w", err)
		}
		meta.TransactionInfo = &model.TransactionInfo{BlockHash: blockHash}
	}
	return meta, nil
}

// parseHeader decodes a header record. A non-empty hash must match the computed one.
func parseHeader(h document.Header) (model.Header, error) {
	var (
		header model.Header
		err    error
	)
	for _, f := range []struct {
		name string
		src  string
		dst  *uint32
	}{
		{name: "version", src: h.Version, dst: &header.Version},
		{name: "compact_target", src: h.CompactTarget, dst: &header.CompactTarget},
	} {
		if *f.dst, err = encoding.ParseUint32(f.src); err != nil {
			return header, fmt.Errorf("%s: %w", f.name, err)
		}
	}
	for _, f := range []struct {
		name string
		src  string
		dst  *uint64
	}{
		{name: "timestamp", src: h.Timestamp, dst: &header.Timestamp},
		{name: "number", src: h.Number, dst: &header.Number},
		{name: "epoch", src: h.Epoch, dst: &header.Epoch},
	} {
		if *f.dst, err = encoding.ParseUint64(f.src); err != nil {
			return header, fmt.Errorf("%s: %w", f.name, err)
		}
	}
	for _, f := range []struct {
		name string
		src  string
		dst  *model.Hash
	}{
		{name: "parent_hash", src: h.ParentHash, dst: &header.ParentHash},
		{name: "transactions_root", src: h.TransactionsRoot, dst: &header.TransactionsRoot},
		{name: "proposals_hash", src: h.ProposalsHash, dst: &header.ProposalsHash},
		{name: "extra_hash", src: h.ExtraHash, dst: &header.ExtraHash},
	} {
		if *f.dst, err = encoding.ParseHash(f.src); err != nil {
			return header, fmt.Errorf("%s: %w", f.name, err)
		}
	}

	dao, err := encoding.ParseBytes(h.Dao)
	if err != nil {
		return header, fmt.Errorf("dao: %w", err)
	}
	if len(dao) != len(header.Dao) {
		return header, fmt.Errorf("dao: got %d bytes, want %d", len(dao), len(header.Dao))
	}
	copy(header.Dao[:], dao)

	if header.Nonce, err = encoding.ParseUint128(h.Nonce); err != nil {
		return header, fmt.Errorf("nonce: %w", err)
	}

	if h.Hash != "" {
		want, err := encoding.ParseHash(h.Hash)
		if err != nil {
			return header, fmt.Errorf("hash: %w", err)
		}
		if got := hashing.HeaderHash(header); got != want {
			return header, fmt.Errorf("hash %s does not match header contents (%s)", want, got)
		}
	}
	return header, nil
}
