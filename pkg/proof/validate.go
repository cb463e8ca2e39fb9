package proof

import (
	"fmt"

	"github.com/chainlens/btcspv/pkg/merkle"
	"github.com/chainlens/btcspv/pkg/spverrors"
	"github.com/chainlens/btcspv/pkg/txid"
)

// Validate drives the composite SPV proof pipeline (spec.md §4.10):
//
//  1. vin/vout are already structurally validated by Decode.
//  2. Recompute the txid and compare against the declared one.
//  3. Validate the confirming header: recomputed digest, tx-root, and
//     parent must each agree with the header's declared fields.
//  4. Run the Merkle inclusion proof.
//
// Vin/Vout validation happens during Decode (they cannot be
// constructed otherwise), so this method only performs the checks that
// depend on the whole proof being assembled together.
func (p *SPVProof) Validate() error {
	computedTxID := txid.Calculate(p.Version, p.Vin, p.Vout, p.Locktime)
	if computedTxID != p.TxID {
		return fmt.Errorf("proof: recomputed txid does not match declared tx_id: %w", spverrors.ErrWrongTxID)
	}

	h := p.ConfirmingHeader
	if h.Raw.Digest() != h.Hash {
		return fmt.Errorf("proof: recomputed header digest does not match declared hash: %w", spverrors.ErrWrongDigest)
	}
	if h.Raw.TxRoot() != h.MerkleRoot {
		return fmt.Errorf("proof: header tx-root does not match declared merkle_root: %w", spverrors.ErrWrongMerkleRoot)
	}
	if h.Raw.Parent() != h.PrevHash {
		return fmt.Errorf("proof: header parent does not match declared prevhash: %w", spverrors.ErrWrongPrevHash)
	}

	if !merkle.Prove(computedTxID, h.MerkleRoot, p.IntermediateNodes, uint64(p.Index)) {
		return fmt.Errorf("proof: merkle inclusion proof failed: %w", spverrors.ErrBadMerkleProof)
	}

	return nil
}
