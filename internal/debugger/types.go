package debugger

import (
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/chain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	GroupSource interface {
		ScriptGroups() []chain.ScriptGroup
	}
	Synthesizer interface {
		Synthesize(req Request) (string, error)
	}
)
