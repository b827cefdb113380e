package encoding

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/goodnatureofminers/ckb-transaction-dumper/internal/ckb/model"
	"github.com/goodnatureofminers/ckb-transaction-dumper/pkg/safe"
	"github.com/holiman/uint256"
)

// ParseUint64 parses a minimal hex quantity.
func ParseUint64(s string) (uint64, error) {
	v, err := hexutil.DecodeUint64(s)
	if err != nil {
		return 0, fmt.Errorf("parse uint64 %q: %w", s, err)
	}
	return v, nil
}

// ParseUint32 parses a minimal hex quantity that must fit 32 bits.
func ParseUint32(s string) (uint32, error) {
	v, err := ParseUint64(s)
	if err != nil {
		return 0, err
	}
	return safe.Uint32(v)
}

// ParseUint128 parses a minimal hex quantity into a 16 byte little-endian buffer.
func ParseUint128(s string) ([16]byte, error) {
	var out [16]byte
	v, err := uint256.FromHex(s)
	if err != nil {
		return out, fmt.Errorf("parse u128 %q: %w", s, err)
	}
	if v.BitLen() > 128 {
		return out, fmt.Errorf("parse u128 %q: value exceeds 128 bits", s)
	}
	be := v.Bytes32()
	for i := 0; i < 16; i++ {
		out[i] = be[31-i]
	}
	return out, nil
}

// ParseBytes parses a 0x-prefixed hex buffer. The result is never nil.
func ParseBytes(s string) ([]byte, error) {
	b, err := hexutil.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("parse bytes: %w", err)
	}
	if b == nil {
		b = []byte{}
	}
	return b, nil
}

// ParseHash parses a 0x-prefixed 32 byte digest.
func ParseHash(s string) (model.Hash, error) {
	var h model.Hash
	b, err := ParseBytes(s)
	if err != nil {
		return h, err
	}
	if len(b) != len(h) {
		return h, fmt.Errorf("parse hash %q: got %d bytes, want %d", s, len(b), len(h))
	}
	copy(h[:], b)
	return h, nil
}

// ParseHashType parses a script hash type tag.
func ParseHashType(s string) (model.ScriptHashType, error) {
	switch s {
	case hashTypeData:
		return model.HashTypeData, nil
	case hashTypeType:
		return model.HashTypeType, nil
	case hashTypeData1:
		return model.HashTypeData1, nil
	default:
		return 0, fmt.Errorf("unknown script hash type %q", s)
	}
}

// ParseDepType parses a cell dep kind tag.
func ParseDepType(s string) (model.DepType, error) {
	switch s {
	case depTypeCode:
		return model.DepTypeCode, nil
	case depTypeDepGroup:
		return model.DepTypeDepGroup, nil
	default:
		return 0, fmt.Errorf("unknown dep type %q", s)
	}
}
