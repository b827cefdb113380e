package debugger

import (
	"strconv"

	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/dumperr"
)

const (
	cellTypeInput  = "input"
	cellTypeOutput = "output"
)

// CellAddressed names the group by the first cell it covers.
type CellAddressed struct{}

// Synthesize builds a --cell-index/--cell-type command.
func (CellAddressed) Synthesize(req Request) (string, error) {
	group, err := selectGroup(req)
	if err != nil {
		return "", err
	}

	var (
		index    int
		cellType string
	)
	switch {
	case len(group.InputIndices) > 0:
		index, cellType = group.InputIndices[0], cellTypeInput
	case len(group.OutputIndices) > 0:
		index, cellType = group.OutputIndices[0], cellTypeOutput
	default:
		return "", dumperr.Newf(dumperr.StageResolve, dumperr.ErrLookup,
			"script group %d covers no cells", req.GroupIndex)
	}

	if req.Document == nil {
		return "", dumperr.Newf(dumperr.StageResolve, dumperr.ErrLookup, "no rendered document")
	}
	count := len(req.Document.MockInfo.Inputs)
	if cellType == cellTypeOutput {
		count = len(req.Document.Tx.Outputs)
	}
	if index >= count {
		return "", dumperr.Newf(dumperr.StageResolve, dumperr.ErrLookup,
			"%s %d not in document (%d present)", cellType, index, count)
	}

	bin, doc, err := absPaths(req)
	if err != nil {
		return "", err
	}
	if err := checkBinary(bin); err != nil {
		return "", err
	}

	args := []string{
		"--bin", bin,
		"--tx-file", doc,
		"--cell-index", strconv.Itoa(index),
		"--script-group-type", string(group.GroupType),
		"--cell-type", cellType,
	}
	if req.DebugListen != "" {
		args = append(args, "--mode", "gdb", "--gdb-listen", req.DebugListen)
	}
	return command(req, args...), nil
}
