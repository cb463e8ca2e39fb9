package headerchain

import "github.com/chainlens/btcspv/pkg/u256"

// RetargetPeriod is Bitcoin's nominal retarget interval: two weeks, in
// seconds.
const RetargetPeriod = 1209600

// Retarget computes the new target after a 2016-block period, clamping
// the observed elapsed time to Bitcoin's ±4× bound before scaling
// prevTarget (spec.md §4.9).
func Retarget(prevTarget u256.U256, t1, t2 uint32) u256.U256 {
	elapsed := int64(t2) - int64(t1)

	min := int64(RetargetPeriod / 4)
	max := int64(RetargetPeriod * 4)
	switch {
	case elapsed < min:
		elapsed = min
	case elapsed > max:
		elapsed = max
	}

	return prevTarget.MulUint64(uint64(elapsed)).DivUint64(RetargetPeriod)
}
