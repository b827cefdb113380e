package chain

import (
	"bytes"
	"sort"

	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/hashing"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"
)

// ScriptGroup is the set of inputs and outputs sharing one script, verified together once.
type ScriptGroup struct {
	GroupType     model.ScriptGroupType
	Script        model.Script
	ScriptHash    model.Hash
	InputIndices  []int
	OutputIndices []int
}

// ScriptGroupSet is an ordered list of script groups.
type ScriptGroupSet []ScriptGroup

// ScriptGroups returns the groups in verification order.
func (s ScriptGroupSet) ScriptGroups() []ScriptGroup {
	return s
}

// CollectScriptGroups groups the resolved transaction's cells by script the way the verifier does:
// lock groups come from inputs, type groups from inputs then outputs. Lock groups precede
// type groups, and each kind is ordered by script hash.
func CollectScriptGroups(rtx *model.ResolvedTransaction) ScriptGroupSet {
	locks := make(map[model.Hash]*ScriptGroup)
	types := make(map[model.Hash]*ScriptGroup)

	groupFor := func(groups map[model.Hash]*ScriptGroup, groupType model.ScriptGroupType, script model.Script) *ScriptGroup {
		h := hashing.ScriptHash(script)
		g, ok := groups[h]
		if !ok {
			g = &ScriptGroup{GroupType: groupType, Script: script, ScriptHash: h}
			groups[h] = g
		}
		return g
	}

	for i, input := range rtx.ResolvedInputs {
		lock := groupFor(locks, model.LockGroup, input.Output.Lock)
		lock.InputIndices = append(lock.InputIndices, i)
		if input.Output.Type != nil {
			typ := groupFor(types, model.TypeGroup, *input.Output.Type)
			typ.InputIndices = append(typ.InputIndices, i)
		}
	}
	for i, output := range rtx.Transaction.Outputs {
		if output.Type != nil {
			typ := groupFor(types, model.TypeGroup, *output.Type)
			typ.OutputIndices = append(typ.OutputIndices, i)
		}
	}

	set := make(ScriptGroupSet, 0, len(locks)+len(types))
	set = append(set, sortedGroups(locks)...)
	return append(set, sortedGroups(types)...)
}

func sortedGroups(groups map[model.Hash]*ScriptGroup) []ScriptGroup {
	out := make([]ScriptGroup, 0, len(groups))
	for _, g := range groups {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		return bytes.Compare(out[i].ScriptHash[:], out[j].ScriptHash[:]) < 0
	})
	return out
}
