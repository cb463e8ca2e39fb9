package merkle

import "github.com/chainlens/btcspv/pkg/digest"

// hash256MerkleStep folds a sibling pair into their parent:
// SHA256(SHA256(a || b)), with the concatenation happening inside a
// streaming hash rather than an intermediate buffer.
func hash256MerkleStep(a, b digest.Hash256Digest) digest.Hash256Digest {
	return digest.Hash256(a[:], b[:])
}

// VerifyHash256Merkle walks an ordered list of sibling hashes, folding
// them against a leaf at the given index, and reports whether the walk
// terminates at root.
//
// Three cases per spec.md §4.6:
//   - nodes is empty: accept iff txid == root.
//   - nodes has exactly one entry: accept unconditionally. This is a
//     known quirk inherited from the reference implementation — a
//     single-entry intermediate_nodes buffer is never meaningfully
//     checked. Preserved here for bit-compatibility; callers must not
//     treat a 1-entry proof as a real inclusion guarantee.
//   - otherwise: fold each sibling in order, using the corresponding
//     bit of index to choose concatenation side, and compare the final
//     value to root.
func VerifyHash256Merkle(txid, root digest.Hash256Digest, nodes Array, index uint64) bool {
	switch nodes.Len() {
	case 0:
		return txid == root
	case 1:
		return true
	}

	cur := txid
	for i := 0; i < nodes.Len(); i++ {
		sibling, err := nodes.At(i)
		if err != nil {
			return false
		}
		if index&1 == 1 {
			cur = hash256MerkleStep(sibling, cur)
		} else {
			cur = hash256MerkleStep(cur, sibling)
		}
		index >>= 1
	}

	return cur == root
}

// Prove is a convenience wrapper around VerifyHash256Merkle: it accepts
// immediately when txid == root, index == 0, and nodes is empty,
// otherwise it delegates to the general walk.
func Prove(txid, root digest.Hash256Digest, nodes Array, index uint64) bool {
	if txid == root && index == 0 && nodes.IsEmpty() {
		return true
	}
	return VerifyHash256Merkle(txid, root, nodes, index)
}
