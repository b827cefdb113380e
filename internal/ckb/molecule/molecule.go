// Package molecule serializes CKB structures in the molecule binary format used for hashing.
package molecule

import (
	"encoding/binary"
	"errors"
	"fmt"

	ckbmol "github.com/nervosnetwork/ckb-sdk-go/v2/types/molecule"
)

// ErrMalformed reports a buffer that does not follow the molecule layout.
var ErrMalformed = errors.New("malformed molecule buffer")

// PackUint32 returns the 4-byte little-endian form of v.
func PackUint32(v uint32) []byte {
	out := make([]byte, 4)
	binary.LittleEndian.PutUint32(out, v)
	return out
}

// PackUint64 returns the 8-byte little-endian form of v.
func PackUint64(v uint64) []byte {
	out := make([]byte, 8)
	binary.LittleEndian.PutUint64(out, v)
	return out
}

// PackBytes serializes b as a molecule Bytes: a 4-byte little-endian length followed by the payload.
func PackBytes(b []byte) []byte {
	packed := bytesOf(b)
	return packed.AsSlice()
}

// UnpackBytes strips the length prefix of a molecule Bytes and returns the payload.
func UnpackBytes(packed []byte) ([]byte, error) {
	b, err := ckbmol.BytesFromSlice(packed, false)
	if err != nil {
		return nil, fmt.Errorf("%w: %d byte buffer: %v", ErrMalformed, len(packed), err)
	}
	return b.RawData(), nil
}

func uint32Of(v uint32) ckbmol.Uint32 {
	return *ckbmol.Uint32FromSliceUnchecked(PackUint32(v))
}

func uint64Of(v uint64) ckbmol.Uint64 {
	return *ckbmol.Uint64FromSliceUnchecked(PackUint64(v))
}

func byte32Of(h [32]byte) ckbmol.Byte32 {
	b := make([]byte, 32)
	copy(b, h[:])
	return *ckbmol.Byte32FromSliceUnchecked(b)
}

func bytesOf(b []byte) ckbmol.Bytes {
	items := make([]ckbmol.Byte, len(b))
	for i, v := range b {
		items[i] = ckbmol.NewByte(v)
	}
	return ckbmol.NewBytesBuilder().Set(items).Build()
}

func bytesVecOf(items [][]byte) ckbmol.BytesVec {
	packed := make([]ckbmol.Bytes, len(items))
	for i, item := range items {
		packed[i] = bytesOf(item)
	}
	return ckbmol.NewBytesVecBuilder().Set(packed).Build()
}
