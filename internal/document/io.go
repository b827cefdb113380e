package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Marshal serializes the document deterministically. HTML escaping is off so
// substituted file paths are written verbatim.
func Marshal(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteFile replaces the file at path with the serialized document:
// write temp -> fsync temp -> rename.
func WriteFile(path string, doc *Document) error {
	b, err := Marshal(doc)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("document open tmp: %w", err)
	}
	tmpName := tmp.Name()
	_, werr := tmp.Write(b)
	serr := tmp.Sync()
	cerr := tmp.Close()
	if werr != nil || serr != nil || cerr != nil {
		_ = os.Remove(tmpName)
	}
	if werr != nil {
		return fmt.Errorf("document write tmp: %w", werr)
	}
	if serr != nil {
		return fmt.Errorf("document fsync tmp: %w", serr)
	}
	if cerr != nil {
		return fmt.Errorf("document close tmp: %w", cerr)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("document chmod tmp: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("document rename: %w", err)
	}
	return nil
}
