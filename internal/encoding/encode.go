// Package encoding renders CKB primitive fields in the canonical 0x-hex text form of the mock transaction format.
package encoding

import (
	"encoding/binary"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/molecule"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/dumperr"
	"github.com/holiman/uint256"
)

const (
	hashTypeData  = "data"
	hashTypeType  = "type"
	hashTypeData1 = "data1"

	depTypeCode     = "code"
	depTypeDepGroup = "dep_group"
)

// Uint renders a 4 or 8 byte little-endian integer as a minimal hex quantity.
func Uint(le []byte) (string, error) {
	switch len(le) {
	case 4:
		return hexutil.EncodeUint64(uint64(binary.LittleEndian.Uint32(le))), nil
	case 8:
		return hexutil.EncodeUint64(binary.LittleEndian.Uint64(le)), nil
	default:
		return "", fmt.Errorf("%w: integer buffer of %d bytes", dumperr.ErrEncoding, len(le))
	}
}

// Uint128 renders a 16 byte little-endian integer as a minimal hex quantity.
func Uint128(le []byte) (string, error) {
	if len(le) != 16 {
		return "", fmt.Errorf("%w: u128 buffer of %d bytes", dumperr.ErrEncoding, len(le))
	}
	be := make([]byte, 16)
	for i, b := range le {
		be[15-i] = b
	}
	return new(uint256.Int).SetBytes(be).Hex(), nil
}

// Bytes renders an opaque buffer, two lowercase hex digits per byte.
func Bytes(b []byte) string {
	return hexutil.Encode(b)
}

// Hash renders a 32 byte digest.
func Hash(h model.Hash) string {
	return hexutil.Encode(h[:])
}

// PackedBytes strips the length prefix of a molecule Bytes and renders the payload.
func PackedBytes(packed []byte) (string, error) {
	payload, err := molecule.UnpackBytes(packed)
	if err != nil {
		return "", fmt.Errorf("%w: %w", dumperr.ErrEncoding, err)
	}
	return Bytes(payload), nil
}

// HashType renders a script hash type tag.
func HashType(t model.ScriptHashType) (string, error) {
	switch t {
	case model.HashTypeData:
		return hashTypeData, nil
	case model.HashTypeType:
		return hashTypeType, nil
	case model.HashTypeData1:
		return hashTypeData1, nil
	default:
		return "", fmt.Errorf("%w: unknown script hash type %d", dumperr.ErrEncoding, t)
	}
}

// DepType renders a cell dep kind tag.
func DepType(t model.DepType) (string, error) {
	switch t {
	case model.DepTypeCode:
		return depTypeCode, nil
	case model.DepTypeDepGroup:
		return depTypeDepGroup, nil
	default:
		return "", fmt.Errorf("%w: unknown dep type %d", dumperr.ErrEncoding, t)
	}
}
