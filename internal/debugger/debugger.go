// Package debugger maps a script verification group to a ckb-debugger command line.
package debugger

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/chain"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/document"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/dumperr"
)

// DefaultDebugger is the debugger executable used when a request names none.
const DefaultDebugger = "ckb-debugger"

// Request describes the group to replay and the files the debugger reads.
type Request struct {
	Groups      GroupSource
	Transaction *model.ResolvedTransaction
	// Document is the rendered mock transaction. Nil selects the script-hash form.
	Document     *document.Document
	GroupIndex   int
	BinaryPath   string
	DocumentPath string
	// DebugListen, when set, starts the debugger as a gdb server on that address.
	DebugListen  string
	DebuggerPath string
}

// Select picks the command form the request has enough data for.
func Select(req Request) Synthesizer {
	if req.Document != nil {
		return CellAddressed{}
	}
	return HashAddressed{}
}

func selectGroup(req Request) (chain.ScriptGroup, error) {
	if req.Groups == nil {
		return chain.ScriptGroup{}, dumperr.Newf(dumperr.StageResolve, dumperr.ErrLookup, "no script groups")
	}
	groups := req.Groups.ScriptGroups()
	if req.GroupIndex < 0 || req.GroupIndex >= len(groups) {
		return chain.ScriptGroup{}, dumperr.Newf(dumperr.StageResolve, dumperr.ErrLookup,
			"script group %d out of range [0, %d)", req.GroupIndex, len(groups))
	}
	return groups[req.GroupIndex], nil
}

// absPaths resolves the binary and document paths.
func absPaths(req Request) (bin, doc string, err error) {
	bin, err = filepath.Abs(req.BinaryPath)
	if err != nil {
		return "", "", dumperr.New(dumperr.StageResolve, dumperr.ErrIO, err)
	}
	doc, err = filepath.Abs(req.DocumentPath)
	if err != nil {
		return "", "", dumperr.New(dumperr.StageResolve, dumperr.ErrIO, err)
	}
	return bin, doc, nil
}

// checkBinary fails unless path is a readable, non-empty file.
func checkBinary(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return dumperr.New(dumperr.StageResolve, dumperr.ErrIO, err)
	}
	defer f.Close()
	info, err := f.Stat()
	if err != nil {
		return dumperr.New(dumperr.StageResolve, dumperr.ErrIO, err)
	}
	if info.IsDir() {
		return dumperr.Newf(dumperr.StageResolve, dumperr.ErrIO, "binary %s is a directory", path)
	}
	if info.Size() == 0 {
		return dumperr.Newf(dumperr.StageResolve, dumperr.ErrIO, "binary %s is empty", path)
	}
	return nil
}

func command(req Request, args ...string) string {
	debugger := req.DebuggerPath
	if debugger == "" {
		debugger = DefaultDebugger
	}
	return strings.Join(append([]string{debugger}, args...), " ")
}
