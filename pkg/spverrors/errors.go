// Package spverrors defines the closed error taxonomy shared by every
// layer of the SPV toolkit. Callers should compare with errors.Is
// against these sentinels; wrapped context is added with fmt.Errorf's
// %w verb, never a new error type.
package spverrors

import "errors"

var (
	// ErrReadOverrun is returned when an indexed read would exceed its
	// slice bounds, or walking a vin/vout overshoots the buffer.
	ErrReadOverrun = errors.New("read overrun")

	// ErrBadCompactInt is returned when a CompactInt prefix declares
	// more trailing bytes than are present in the buffer.
	ErrBadCompactInt = errors.New("bad compact int")

	// ErrMalformattedOpReturnOutput is returned when extract_op_return_data
	// is called on a script that does not begin <len> 6a ...
	ErrMalformattedOpReturnOutput = errors.New("malformatted op_return output")

	// ErrMalformattedP2PKHOutput is returned when a P2PKH-shaped prefix
	// matched but trailing bytes or the internal length byte are invalid.
	ErrMalformattedP2PKHOutput = errors.New("malformatted p2pkh output")

	// ErrMalformattedP2SHOutput is returned when a P2SH-shaped prefix
	// matched but the push-length byte isn't 0x14 or the trailing byte
	// isn't OP_EQUAL.
	ErrMalformattedP2SHOutput = errors.New("malformatted p2sh output")

	// ErrMalformattedWitnessOutput is returned when a witness-shaped
	// prefix matched but script/payload length constraints are violated.
	ErrMalformattedWitnessOutput = errors.New("malformatted witness output")

	// ErrMalformattedOutput is returned when extract_hash finds no
	// matching script shape at all.
	ErrMalformattedOutput = errors.New("malformatted output")

	// ErrOutputLengthMismatch is returned when a scriptPubkey's declared
	// length disagrees with the buffer it lives in.
	ErrOutputLengthMismatch = errors.New("output length mismatch")

	// ErrWrongLengthHeader is returned when a header buffer isn't a
	// multiple of 80 bytes.
	ErrWrongLengthHeader = errors.New("wrong length header")

	// ErrInsufficientWork is returned when a header's digest is >= its
	// target, or the digest is all-zero.
	ErrInsufficientWork = errors.New("insufficient work")

	// ErrInvalidChain is returned when header i's parent hash does not
	// equal header i-1's digest.
	ErrInvalidChain = errors.New("invalid chain")

	// ErrUnexpectedDifficultyChange is returned in constant-difficulty
	// mode when a later header's target differs from the first header's.
	ErrUnexpectedDifficultyChange = errors.New("unexpected difficulty change")

	// ErrWrongDigest is returned when a recomputed header digest
	// disagrees with a declared one.
	ErrWrongDigest = errors.New("wrong digest")

	// ErrWrongMerkleRoot is returned when a recomputed tx-root disagrees
	// with a declared merkle_root.
	ErrWrongMerkleRoot = errors.New("wrong merkle root")

	// ErrWrongPrevHash is returned when an extracted parent hash
	// disagrees with a declared prevhash.
	ErrWrongPrevHash = errors.New("wrong prev hash")

	// ErrInvalidVin is returned when vin structural validation fails.
	ErrInvalidVin = errors.New("invalid vin")

	// ErrInvalidVout is returned when vout structural validation fails.
	ErrInvalidVout = errors.New("invalid vout")

	// ErrWrongTxID is returned when a recomputed txid disagrees with a
	// declared one.
	ErrWrongTxID = errors.New("wrong txid")

	// ErrBadMerkleProof is returned when a Merkle walk does not
	// terminate at the declared root, or the nodes buffer isn't a
	// multiple of 32 bytes.
	ErrBadMerkleProof = errors.New("bad merkle proof")

	// ErrUnknownError is reserved for passthroughs from host layers.
	ErrUnknownError = errors.New("unknown error")
)
