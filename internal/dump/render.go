package dump

import (
	"fmt"

	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/document"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/dumperr"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/encoding"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/mocktx"
)

// RenderOptions tune document rendering.
type RenderOptions struct {
	// ReferenceHash blanks the data of every cell dep whose data hash matches it,
	// so the debugger loads that binary from disk instead.
	ReferenceHash *model.Hash
}

// Render encodes every field of the mock transaction into the document schema.
func Render(mtx *mocktx.MockTransaction, opts RenderOptions) (*document.Document, error) {
	doc, err := render(mtx, opts)
	if err != nil {
		return nil, dumperr.New(dumperr.StageEncode, dumperr.ErrEncoding, err)
	}
	return doc, nil
}

func render(mtx *mocktx.MockTransaction, opts RenderOptions) (*document.Document, error) {
	info := document.MockInfo{
		Inputs:     make([]document.Input, 0, len(mtx.MockInfo.Inputs)),
		CellDeps:   make([]document.CellDep, 0, len(mtx.MockInfo.CellDeps)),
		HeaderDeps: make([]document.Header, 0, len(mtx.MockInfo.HeaderDeps)),
		Extensions: []document.Extension{},
	}

	for i, in := range mtx.MockInfo.Inputs {
		input, err := renderCellInput(in.Input)
		if err != nil {
			return nil, fmt.Errorf("input %d: %w", i, err)
		}
		output, err := renderCellOutput(in.Output)
		if err != nil {
			return nil, fmt.Errorf("input %d output: %w", i, err)
		}
		data, err := encoding.PackedBytes(in.Data)
		if err != nil {
			return nil, fmt.Errorf("input %d data: %w", i, err)
		}
		info.Inputs = append(info.Inputs, document.Input{
			Input:  input,
			Output: output,
			Data:   data,
			Header: renderOptionalHash(in.Header),
		})
	}

	for i, dep := range mtx.MockInfo.CellDeps {
		cellDep, err := renderCellDep(dep.CellDep)
		if err != nil {
			return nil, fmt.Errorf("cell dep %d: %w", i, err)
		}
		output, err := renderCellOutput(dep.Output)
		if err != nil {
			return nil, fmt.Errorf("cell dep %d output: %w", i, err)
		}
		data := "0x"
		if opts.ReferenceHash == nil || dep.DataHash != *opts.ReferenceHash {
			data, err = encoding.PackedBytes(dep.Data)
			if err != nil {
				return nil, fmt.Errorf("cell dep %d data: %w", i, err)
			}
		}
		info.CellDeps = append(info.CellDeps, document.CellDep{
			CellDep: cellDep,
			Output:  output,
			Data:    data,
		})
	}

	for i, h := range mtx.MockInfo.HeaderDeps {
		header, err := renderHeader(h)
		if err != nil {
			return nil, fmt.Errorf("header dep %d: %w", i, err)
		}
		info.HeaderDeps = append(info.HeaderDeps, header)
	}

	tx, err := renderTransaction(mtx.Tx)
	if err != nil {
		return nil, fmt.Errorf("tx: %w", err)
	}

	return &document.Document{MockInfo: info, Tx: tx}, nil
}

func renderTransaction(tx mocktx.Transaction) (document.Transaction, error) {
	version, err := encoding.Uint(tx.Version)
	if err != nil {
		return document.Transaction{}, fmt.Errorf("version: %w", err)
	}
	out := document.Transaction{
		Version:     version,
		CellDeps:    make([]document.TxCellDep, 0, len(tx.CellDeps)),
		HeaderDeps:  make([]string, 0, len(tx.HeaderDeps)),
		Inputs:      make([]document.CellInput, 0, len(tx.Inputs)),
		Outputs:     make([]document.CellOutput, 0, len(tx.Outputs)),
		OutputsData: make([]string, 0, len(tx.OutputsData)),
		Witnesses:   make([]string, 0, len(tx.Witnesses)),
	}

	for i, dep := range tx.CellDeps {
		d, err := renderCellDep(dep)
		if err != nil {
			return out, fmt.Errorf("cell dep %d: %w", i, err)
		}
		out.CellDeps = append(out.CellDeps, d)
	}
	for _, h := range tx.HeaderDeps {
		out.HeaderDeps = append(out.HeaderDeps, encoding.Hash(h))
	}
	for i, in := range tx.Inputs {
		d, err := renderCellInput(in)
		if err != nil {
			return out, fmt.Errorf("input %d: %w", i, err)
		}
		out.Inputs = append(out.Inputs, d)
	}
	for i, o := range tx.Outputs {
		d, err := renderCellOutput(o)
		if err != nil {
			return out, fmt.Errorf("output %d: %w", i, err)
		}
		out.Outputs = append(out.Outputs, d)
	}
	for i, data := range tx.OutputsData {
		d, err := encoding.PackedBytes(data)
		if err != nil {
			return out, fmt.Errorf("output data %d: %w", i, err)
		}
		out.OutputsData = append(out.OutputsData, d)
	}
	for i, w := range tx.Witnesses {
		d, err := encoding.PackedBytes(w)
		if err != nil {
			return out, fmt.Errorf("witness %d: %w", i, err)
		}
		out.Witnesses = append(out.Witnesses, d)
	}
	return out, nil
}

func renderOutPoint(o mocktx.OutPoint) (document.OutPoint, error) {
	index, err := encoding.Uint(o.Index)
	if err != nil {
		return document.OutPoint{}, fmt.Errorf("out point index: %w", err)
	}
	return document.OutPoint{TxHash: encoding.Hash(o.TxHash), Index: index}, nil
}

func renderCellInput(in mocktx.CellInput) (document.CellInput, error) {
	since, err := encoding.Uint(in.Since)
	if err != nil {
		return document.CellInput{}, fmt.Errorf("since: %w", err)
	}
	prev, err := renderOutPoint(in.PreviousOutput)
	if err != nil {
		return document.CellInput{}, err
	}
	return document.CellInput{Since: since, PreviousOutput: prev}, nil
}

func renderCellDep(dep mocktx.CellDep) (document.TxCellDep, error) {
	outPoint, err := renderOutPoint(dep.OutPoint)
	if err != nil {
		return document.TxCellDep{}, err
	}
	depType, err := encoding.DepType(dep.DepType)
	if err != nil {
		return document.TxCellDep{}, err
	}
	return document.TxCellDep{OutPoint: outPoint, DepType: depType}, nil
}

func renderScript(s mocktx.Script) (document.Script, error) {
	hashType, err := encoding.HashType(s.HashType)
	if err != nil {
		return document.Script{}, err
	}
	args, err := encoding.PackedBytes(s.Args)
	if err != nil {
		return document.Script{}, fmt.Errorf("args: %w", err)
	}
	return document.Script{CodeHash: encoding.Hash(s.CodeHash), HashType: hashType, Args: args}, nil
}

func renderCellOutput(o mocktx.CellOutput) (document.CellOutput, error) {
	capacity, err := encoding.Uint(o.Capacity)
	if err != nil {
		return document.CellOutput{}, fmt.Errorf("capacity: %w", err)
	}
	lock, err := renderScript(o.Lock)
	if err != nil {
		return document.CellOutput{}, fmt.Errorf("lock: %w", err)
	}
	out := document.CellOutput{Capacity: capacity, Lock: lock}
	if o.Type != nil {
		typ, err := renderScript(*o.Type)
		if err != nil {
			return document.CellOutput{}, fmt.Errorf("type: %w", err)
		}
		out.Type = &typ
	}
	return out, nil
}

func renderHeader(h mocktx.Header) (document.Header, error) {
	out := document.Header{
		Hash:             encoding.Hash(h.Hash),
		ParentHash:       encoding.Hash(h.ParentHash),
		TransactionsRoot: encoding.Hash(h.TransactionsRoot),
		ProposalsHash:    encoding.Hash(h.ProposalsHash),
		ExtraHash:        encoding.Hash(h.ExtraHash),
		Dao:              encoding.Bytes(h.Dao),
	}
	for _, f := range []struct {
		name string
		src  []byte
		dst  *string
	}{
		{name: "version", src: h.Version, dst: &out.Version},
		{name: "compact_target", src: h.CompactTarget, dst: &out.CompactTarget},
		{name: "timestamp", src: h.Timestamp, dst: &out.Timestamp},
		{name: "number", src: h.Number, dst: &out.Number},
		{name: "epoch", src: h.Epoch, dst: &out.Epoch},
	} {
		v, err := encoding.Uint(f.src)
		if err != nil {
			return document.Header{}, fmt.Errorf("%s: %w", f.name, err)
		}
		*f.dst = v
	}
	nonce, err := encoding.Uint128(h.Nonce)
	if err != nil {
		return document.Header{}, fmt.Errorf("nonce: %w", err)
	}
	out.Nonce = nonce
	return out, nil
}

func renderOptionalHash(h *model.Hash) *string {
	if h == nil {
		return nil
	}
	s := encoding.Hash(*h)
	return &s
}
