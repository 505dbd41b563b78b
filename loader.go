package ledgerdash

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// LoadTransactions reads the transactions of path.
//
// When path is a directory every ".jsonl" file below it is read, in
// alphabetical order of path, and their transactions are concatenated.
func LoadTransactions(path string) ([]Transaction, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger %q: %w", path, err)
	}
	if !info.IsDir() {
		return loadFile(path)
	}

	files, err := findLedgerFiles(path)
	if err != nil {
		return nil, fmt.Errorf("could not scan ledger directory %q: %w", path, err)
	}
	var txs []Transaction
	for _, f := range files {
		part, err := loadFile(f)
		if err != nil {
			return nil, err
		}
		txs = append(txs, part...)
	}
	return txs, nil
}

// LoadSnapshot reads the transactions of path into a new Snapshot.
func LoadSnapshot(path string, opts Options) (*Snapshot, error) {
	txs, err := LoadTransactions(path)
	if err != nil {
		return nil, err
	}
	return NewSnapshot(txs, opts), nil
}

// loadFile opens and decodes a single ledger file.
func loadFile(path string) ([]Transaction, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open ledger file %q: %w", path, err)
	}
	defer f.Close()

	txs, err := DecodeTransactions(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode ledger file %q: %w", path, err)
	}
	return txs, nil
}

// findLedgerFiles returns the ".jsonl" files below root, sorted.
func findLedgerFiles(root string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(p, ".jsonl") {
			files = append(files, p)
		}
		return nil
	})
	slices.Sort(files)
	return files, err
}
