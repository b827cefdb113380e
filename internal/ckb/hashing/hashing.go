// Package hashing computes CKB blake2b digests of cell data, scripts, transactions and headers.
package hashing

import (
	"hash"

	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/molecule"
	"github.com/minio/blake2b-simd"
)

var personalization = []byte("ckb-default-hash")

func newHasher() hash.Hash {
	h, err := blake2b.New(&blake2b.Config{Size: 32, Person: personalization})
	if err != nil {
		// the config is constant and valid
		panic("blake2b config: " + err.Error())
	}
	return h
}

// Blake256 returns the CKB default hash of data.
func Blake256(data []byte) model.Hash {
	h := newHasher()
	_, _ = h.Write(data)

	var out model.Hash
	copy(out[:], h.Sum(nil))
	return out
}

// DataHash returns the hash a data-addressed script uses to reference cell data.
func DataHash(data []byte) model.Hash {
	return Blake256(data)
}

// ScriptHash returns the hash of a serialized script.
func ScriptHash(s model.Script) model.Hash {
	return Blake256(molecule.Script(s))
}

// TxHash returns the hash of the raw part of a transaction.
func TxHash(tx model.Transaction) model.Hash {
	return Blake256(molecule.RawTransaction(tx))
}

// HeaderHash returns the block hash of a header.
func HeaderHash(h model.Header) model.Hash {
	return Blake256(molecule.Header(h))
}
