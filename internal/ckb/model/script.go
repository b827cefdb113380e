// Package model defines domain models for CKB transactions and resolved cells.
package model

import "encoding/hex"

// Hash is a 32-byte blake2b digest.
type Hash [32]byte

// String returns the 0x-prefixed lowercase hex form of the hash.
func (h Hash) String() string {
	return "0x" + hex.EncodeToString(h[:])
}

// ScriptHashType tells the verifier how a script's code hash is matched against cells.
type ScriptHashType byte

var (
	// HashTypeData matches the code hash against cell data hashes, executed with VM version 0.
	HashTypeData ScriptHashType = 0
	// HashTypeType matches the code hash against type script hashes.
	HashTypeType ScriptHashType = 1
	// HashTypeData1 matches the code hash against cell data hashes, executed with VM version 1.
	HashTypeData1 ScriptHashType = 2
)

// Script is a code reference plus arguments.
type Script struct {
	CodeHash Hash
	HashType ScriptHashType
	Args     []byte
}

// ScriptGroupType distinguishes lock and type verification groups.
type ScriptGroupType string

var (
	LockGroup ScriptGroupType = "lock"
	TypeGroup ScriptGroupType = "type"
)
