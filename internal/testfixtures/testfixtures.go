// Package testfixtures builds synthetic, wire-valid Bitcoin transactions
// and block headers for use as test ground truth. It leans on
// btcsuite/btcd's wire and chainhash packages to assemble and hash
// these structures independently of the hand-rolled decoders under
// pkg/txview, pkg/header, and pkg/merkle — the decoders are exercised
// by parsing what this package builds, never the other way around.
package testfixtures

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
)

// TxInSpec describes one input to BuildTransaction.
type TxInSpec struct {
	PrevTxID  [32]byte // wire byte order (little-endian), not display order
	PrevIndex uint32
	ScriptSig []byte
	Sequence  uint32
}

// TxOutSpec describes one output to BuildTransaction.
type TxOutSpec struct {
	Value        uint64
	ScriptPubkey []byte
}

// Transaction is a synthetic legacy (non-segwit) transaction, already
// split into the byte ranges pkg/txview's view types expect.
type Transaction struct {
	Version  [4]byte
	Vin      []byte
	Vout     []byte
	Locktime [4]byte
	TxID     [32]byte
	Raw      []byte
}

// BuildTransaction assembles a legacy transaction via wire.MsgTx, then
// carves the serialized bytes into version/vin/vout/locktime using a
// varint reader written independently of pkg/compactint.
func BuildTransaction(version int32, ins []TxInSpec, outs []TxOutSpec, locktime uint32) (Transaction, error) {
	tx := wire.NewMsgTx(version)
	for _, in := range ins {
		hash, err := chainhash.NewHash(in.PrevTxID[:])
		if err != nil {
			return Transaction{}, fmt.Errorf("testfixtures: prevtxid: %w", err)
		}
		txIn := wire.NewTxIn(wire.NewOutPoint(hash, in.PrevIndex), in.ScriptSig, nil)
		txIn.Sequence = in.Sequence
		tx.AddTxIn(txIn)
	}
	for _, out := range outs {
		tx.AddTxOut(wire.NewTxOut(int64(out.Value), out.ScriptPubkey))
	}
	tx.LockTime = locktime

	var buf bytes.Buffer
	if err := tx.Serialize(&buf); err != nil {
		return Transaction{}, fmt.Errorf("testfixtures: serialize: %w", err)
	}
	raw := buf.Bytes()

	var t Transaction
	t.Raw = raw
	copy(t.Version[:], raw[0:4])

	offset := 4
	vinStart := offset
	vinCount, n := readVarInt(raw, offset)
	offset += n
	for i := uint64(0); i < vinCount; i++ {
		offset += 36
		scriptLen, n := readVarInt(raw, offset)
		offset += n + int(scriptLen) + 4
	}
	t.Vin = raw[vinStart:offset]

	voutStart := offset
	voutCount, n := readVarInt(raw, offset)
	offset += n
	for i := uint64(0); i < voutCount; i++ {
		offset += 8
		scriptLen, n := readVarInt(raw, offset)
		offset += n + int(scriptLen)
	}
	t.Vout = raw[voutStart:offset]

	copy(t.Locktime[:], raw[offset:offset+4])

	txHash := tx.TxHash()
	copy(t.TxID[:], txHash[:])

	return t, nil
}

// readVarInt reads a Bitcoin CompactSize integer at offset, returning
// its value and the number of bytes it occupies (prefix included).
// Written independently of pkg/compactint so fixtures don't depend on
// the code they're meant to validate.
func readVarInt(b []byte, offset int) (uint64, int) {
	switch first := b[offset]; first {
	case 0xfd:
		return uint64(binary.LittleEndian.Uint16(b[offset+1:])), 3
	case 0xfe:
		return uint64(binary.LittleEndian.Uint32(b[offset+1:])), 5
	case 0xff:
		return binary.LittleEndian.Uint64(b[offset+1:]), 9
	default:
		return uint64(first), 1
	}
}

// P2PKScript builds a legacy pay-to-pubkey scriptPubkey
// (<pubkey> OP_CHECKSIG) from a deterministic private key, for use as a
// shape ExtractHash must reject: P2PK carries no PKH/SH/WPKH/WSH hash
// payload, so classification should fall through to
// ErrMalformattedOutput rather than panicking or misclassifying it.
func P2PKScript(privKeyBytes [32]byte) []byte {
	priv, pub := btcec.PrivKeyFromBytes(privKeyBytes[:])
	_ = priv
	pubKey := pub.SerializeCompressed()

	script := make([]byte, 0, 2+len(pubKey))
	script = append(script, byte(len(pubKey)))
	script = append(script, pubKey...)
	script = append(script, 0xac) // OP_CHECKSIG
	return withLenPrefix(script)
}

// withLenPrefix prepends a single-byte CompactInt length prefix, valid
// for any script shorter than 0xfd bytes.
func withLenPrefix(script []byte) []byte {
	out := make([]byte, 0, 1+len(script))
	out = append(out, byte(len(script)))
	out = append(out, script...)
	return out
}

// Header is a synthetic 80-byte block header alongside its digest, as
// independently computed by chainhash.
type Header struct {
	Raw    [80]byte
	Digest [32]byte
}

// BuildHeader assembles an 80-byte block header via wire.BlockHeader.
func BuildHeader(version int32, prevBlock, merkleRoot [32]byte, timestamp, bits, nonce uint32) (Header, error) {
	prevHash, err := chainhash.NewHash(prevBlock[:])
	if err != nil {
		return Header{}, fmt.Errorf("testfixtures: prevblock: %w", err)
	}
	merkleHash, err := chainhash.NewHash(merkleRoot[:])
	if err != nil {
		return Header{}, fmt.Errorf("testfixtures: merkleroot: %w", err)
	}

	wh := wire.BlockHeader{
		Version:    version,
		PrevBlock:  *prevHash,
		MerkleRoot: *merkleHash,
		Timestamp:  time.Unix(int64(timestamp), 0),
		Bits:       bits,
		Nonce:      nonce,
	}

	var buf bytes.Buffer
	if err := wh.Serialize(&buf); err != nil {
		return Header{}, fmt.Errorf("testfixtures: serialize: %w", err)
	}

	var h Header
	copy(h.Raw[:], buf.Bytes())
	blockHash := wh.BlockHash()
	copy(h.Digest[:], blockHash[:])
	return h, nil
}

// ComputeMerkleRoot folds a list of wire-order txids into a Merkle
// root the same way Bitcoin Core does: odd levels duplicate their last
// element. Independent of pkg/merkle, used to generate ground truth
// for its Prove/VerifyHash256Merkle tests.
func ComputeMerkleRoot(txids [][32]byte) [32]byte {
	if len(txids) == 0 {
		return [32]byte{}
	}
	level := make([]chainhash.Hash, len(txids))
	for i, id := range txids {
		level[i] = chainhash.Hash(id)
	}
	for len(level) > 1 {
		var next []chainhash.Hash
		for i := 0; i < len(level); i += 2 {
			left := level[i]
			right := level[i]
			if i+1 < len(level) {
				right = level[i+1]
			}
			combined := append(append([]byte{}, left[:]...), right[:]...)
			next = append(next, chainhash.DoubleHashH(combined))
		}
		level = next
	}
	return [32]byte(level[0])
}
