package ledgerdash

import (
	"os"
	"path/filepath"
	"testing"
)

func writeLedger(t *testing.T, path string, txs ...Transaction) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := EncodeTransactions(f, txs); err != nil {
		t.Fatal(err)
	}
}

func TestLoadSnapshot_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledger.jsonl")
	writeLedger(t, path, marchLedger()...)

	s, err := LoadSnapshot(path, DefaultOptions())
	if err != nil {
		t.Fatalf("LoadSnapshot() error = %v", err)
	}
	if s.Len() != 2 {
		t.Errorf("LoadSnapshot().Len() = %d, want 2", s.Len())
	}
}

func TestLoadTransactions_Directory(t *testing.T) {
	dir := t.TempDir()
	march := marchLedger()
	writeLedger(t, filepath.Join(dir, "b", "groceries.jsonl"), march[1])
	writeLedger(t, filepath.Join(dir, "a.jsonl"), march[0])
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644); err != nil {
		t.Fatal(err)
	}

	txs, err := LoadTransactions(dir)
	if err != nil {
		t.Fatalf("LoadTransactions() error = %v", err)
	}
	if len(txs) != 2 || txs[0].Payee != "Employer" || txs[1].Payee != "Grocer" {
		t.Errorf("LoadTransactions() = %v, want Employer then Grocer", txs)
	}
}

func TestLoadTransactions_Missing(t *testing.T) {
	if _, err := LoadTransactions(filepath.Join(t.TempDir(), "missing.jsonl")); err == nil {
		t.Errorf("LoadTransactions() on a missing file succeeded")
	}
}
