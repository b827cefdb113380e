package bundle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/hashing"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/document"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/encoding"
)

func TestLoad(t *testing.T) {
	b, err := Load(filepath.Join("testdata", "transfer.json"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	rtx := b.Transaction

	if got := len(rtx.Transaction.CellDeps); got != 2 {
		t.Fatalf("cell deps = %d, want 2", got)
	}
	if rtx.Transaction.CellDeps[1].DepType != model.DepTypeDepGroup {
		t.Errorf("cell dep 1 dep type = %d, want dep_group", rtx.Transaction.CellDeps[1].DepType)
	}
	if got := rtx.Transaction.Inputs[0].PreviousOutput.Index; got != 2 {
		t.Errorf("input previous index = %d, want 2", got)
	}
	if got := rtx.Transaction.Outputs[0].Capacity; got != 100_000_000_000 {
		t.Errorf("output capacity = %d, want 100000000000", got)
	}
	if rtx.Transaction.Outputs[0].Type != nil {
		t.Errorf("output 0 type = %+v, want nil", rtx.Transaction.Outputs[0].Type)
	}
	if typ := rtx.Transaction.Outputs[1].Type; typ == nil || typ.HashType != model.HashTypeData1 {
		t.Errorf("output 1 type = %+v, want data1 script", typ)
	}
	if got := len(rtx.ResolvedInputs); got != 1 {
		t.Fatalf("resolved inputs = %d, want 1", got)
	}
	in := rtx.ResolvedInputs[0]
	if in.MemCellData == nil || len(in.MemCellData) != 0 {
		t.Errorf("resolved input data = %v, want empty non-nil", in.MemCellData)
	}
	if in.TransactionInfo == nil || in.TransactionInfo.BlockHash[0] != 0xdd {
		t.Errorf("resolved input transaction info = %+v", in.TransactionInfo)
	}
	if got := len(rtx.ResolvedCellDeps[0].MemCellData); got != 64 {
		t.Errorf("cell dep data len = %d, want 64", got)
	}
	if rtx.ResolvedCellDeps[0].TransactionInfo != nil {
		t.Errorf("cell dep transaction info should be absent")
	}
	if got := len(rtx.ResolvedDepGroups); got != 1 {
		t.Errorf("resolved dep groups = %d, want 1", got)
	}
	if len(b.Headers) != 0 {
		t.Errorf("headers = %d, want 0", len(b.Headers))
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "not json",
			content: "{",
			wantErr: "decode bundle",
		},
		{
			name:    "bad version",
			content: `{"transaction":{"version":"0x100000000"}}`,
			wantErr: "version",
		},
		{
			name: "bad dep type",
			content: `{"transaction":{"version":"0x0","cell_deps":[{"out_point":{"tx_hash":"0x` +
				strings.Repeat("00", 32) + `","index":"0x0"},"dep_type":"weird"}]}}`,
			wantErr: "dep type",
		},
		{
			name:    "short hash",
			content: `{"transaction":{"version":"0x0","header_deps":["0x00"]}}`,
			wantErr: "header dep 0",
		},
		{
			name:    "non canonical quantity",
			content: `{"transaction":{"version":"0x00"}}`,
			wantErr: "version",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bundle.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatalf("Load() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Load() error = %v, want it to mention %q", err, tt.wantErr)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Errorf("Load() of a missing file expected error")
	}
}

func testHeader() model.Header {
	h := model.Header{
		Version:       0,
		CompactTarget: 0x1a08a97e,
		Timestamp:     0x18c2d6f1a2b,
		Number:        0xb4d2f3,
		Epoch:         0x70806cb0010b0,
	}
	h.ParentHash[0] = 0x01
	h.Dao[31] = 0x07
	h.Nonce[0] = 0x2a
	h.Nonce[15] = 0x80
	return h
}

func headerRecord(t *testing.T, h model.Header) document.Header {
	t.Helper()
	nonce, err := encoding.Uint128(h.Nonce[:])
	if err != nil {
		t.Fatal(err)
	}
	q := hexutil.EncodeUint64
	return document.Header{
		Version:          q(uint64(h.Version)),
		CompactTarget:    q(uint64(h.CompactTarget)),
		Timestamp:        q(h.Timestamp),
		Number:           q(h.Number),
		Epoch:            q(h.Epoch),
		ParentHash:       encoding.Hash(h.ParentHash),
		TransactionsRoot: encoding.Hash(h.TransactionsRoot),
		ProposalsHash:    encoding.Hash(h.ProposalsHash),
		ExtraHash:        encoding.Hash(h.ExtraHash),
		Dao:              encoding.Bytes(h.Dao[:]),
		Nonce:            nonce,
		Hash:             encoding.Hash(hashing.HeaderHash(h)),
	}
}

func TestDecodeHeaders(t *testing.T) {
	want := testHeader()
	record := headerRecord(t, want)

	b, err := Decode(&File{
		Transaction: document.Transaction{Version: "0x0"},
		Headers:     []document.Header{record},
	})
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	got, ok := b.Headers.GetHeader(hashing.HeaderHash(want))
	if !ok {
		t.Fatalf("header not indexed by its hash")
	}
	if *got != want {
		t.Errorf("header = %+v, want %+v", *got, want)
	}

	record.Number = "0x1"
	if _, err := Decode(&File{
		Transaction: document.Transaction{Version: "0x0"},
		Headers:     []document.Header{record},
	}); err == nil || !strings.Contains(err.Error(), "does not match") {
		t.Errorf("Decode() with tampered header error = %v, want hash mismatch", err)
	}

	record.Hash = ""
	if _, err := Decode(&File{
		Transaction: document.Transaction{Version: "0x0"},
		Headers:     []document.Header{record},
	}); err != nil {
		t.Errorf("Decode() without hash error = %v", err)
	}
}
