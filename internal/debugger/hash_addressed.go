package debugger

import (
	"os"

	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/chain"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/hashing"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/dumperr"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/encoding"
)

// HashAddressed names the group by script hash. Older debuggers only accept this form.
type HashAddressed struct{}

// Synthesize builds a --script-hash command. The group's code hash must be the binary's data hash.
func (HashAddressed) Synthesize(req Request) (string, error) {
	group, err := selectGroup(req)
	if err != nil {
		return "", err
	}

	bin, doc, err := absPaths(req)
	if err != nil {
		return "", err
	}
	data, err := os.ReadFile(bin)
	if err != nil {
		return "", dumperr.New(dumperr.StageResolve, dumperr.ErrIO, err)
	}
	if len(data) == 0 {
		return "", dumperr.Newf(dumperr.StageResolve, dumperr.ErrIO, "binary %s is empty", bin)
	}
	if binHash := hashing.DataHash(data); binHash != group.Script.CodeHash {
		return "", dumperr.Newf(dumperr.StageResolve, dumperr.ErrConsistency,
			"script group %d runs code %s, binary %s hashes to %s", req.GroupIndex, group.Script.CodeHash, bin, binHash)
	}

	script, err := groupCellScript(req.Transaction, group)
	if err != nil {
		return "", err
	}

	return command(req,
		"--bin", bin,
		"--tx-file", doc,
		"--script-group-type", string(group.GroupType),
		"--script-hash", encoding.Hash(hashing.ScriptHash(script)),
	), nil
}

// groupCellScript returns the group's script as stored on its first input, or on its first
// output when the group only covers outputs.
func groupCellScript(rtx *model.ResolvedTransaction, group chain.ScriptGroup) (model.Script, error) {
	if rtx == nil {
		return model.Script{}, dumperr.Newf(dumperr.StageResolve, dumperr.ErrLookup, "no resolved transaction")
	}

	var output *model.CellOutput
	switch {
	case len(group.InputIndices) > 0:
		i := group.InputIndices[0]
		if i >= len(rtx.ResolvedInputs) {
			return model.Script{}, dumperr.Newf(dumperr.StageResolve, dumperr.ErrLookup, "input %d not resolved", i)
		}
		output = &rtx.ResolvedInputs[i].Output
	case len(group.OutputIndices) > 0:
		i := group.OutputIndices[0]
		if i >= len(rtx.Transaction.Outputs) {
			return model.Script{}, dumperr.Newf(dumperr.StageResolve, dumperr.ErrLookup, "output %d not in transaction", i)
		}
		output = &rtx.Transaction.Outputs[i]
	default:
		return model.Script{}, dumperr.Newf(dumperr.StageResolve, dumperr.ErrLookup, "script group covers no cells")
	}

	if group.GroupType == model.LockGroup {
		return output.Lock, nil
	}
	if output.Type == nil {
		return model.Script{}, dumperr.Newf(dumperr.StageResolve, dumperr.ErrLookup, "type group cell has no type script")
	}
	return *output.Type, nil
}
