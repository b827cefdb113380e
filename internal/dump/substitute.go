package dump

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/document"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/dumperr"
)

// Placeholder is the debugger's load-from-disk marker for path.
func Placeholder(path string) string {
	return "0x{{ data " + path + " }}"
}

// SubstituteBinaries replaces cell dep data that looks like one of the regular files in dir
// with a placeholder naming that file. Files are visited in directory order and the first
// file to match a leaf wins it. It returns the number of replaced leaves.
func SubstituteBinaries(dir string, doc *document.Document) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, dumperr.New(dumperr.StageSubstitute, dumperr.ErrIO, err)
	}

	deps := doc.MockInfo.CellDeps
	replaced := make([]bool, len(deps))
	count := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return count, dumperr.New(dumperr.StageSubstitute, dumperr.ErrIO, err)
		}
		path, err := filepath.Abs(filepath.Join(dir, entry.Name()))
		if err != nil {
			return count, dumperr.New(dumperr.StageSubstitute, dumperr.ErrIO, err)
		}
		for i := range deps {
			if replaced[i] || !probablyBinary(info.Size(), deps[i].Data) {
				continue
			}
			deps[i].Data = Placeholder(path)
			replaced[i] = true
			count++
		}
	}
	return count, nil
}

// probablyBinary reports whether a hex leaf is at least as long as the file and at most 10% longer.
func probablyBinary(fileSize int64, leaf string) bool {
	payload := strings.TrimPrefix(leaf, "0x")
	n := int64(len(payload) / 2)
	return n >= fileSize && n*10 <= fileSize*11
}
