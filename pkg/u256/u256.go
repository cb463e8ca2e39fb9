// Package u256 implements the fixed-range 256-bit unsigned arithmetic
// the SPV toolkit needs for proof-of-work targets and accumulated
// difficulty: little/big-endian byte conversion, multiplication and
// division by small integers, ordering, and saturating powers of 256.
//
// No third-party 256-bit integer type appears anywhere in the
// retrieval pack; every Bitcoin-Go implementation in it (bitcoinecho's
// pow.go, btcd's internal blockchain package) reaches for math/big for
// exactly this job, so U256 is a thin, range-checked wrapper over it
// rather than a hand-rolled fixed-width integer.
package u256

import "math/big"

const bitLen = 256

// U256 is a 256-bit unsigned integer. The zero value is zero.
type U256 struct {
	v big.Int
}

var maxU256 = func() *big.Int {
	max := new(big.Int).Lsh(big.NewInt(1), bitLen)
	return max.Sub(max, big.NewInt(1))
}()

// FromLEBytes interprets b as a little-endian 256-bit unsigned integer.
// b may be shorter than 32 bytes; it is treated as zero-padded at the
// top.
func FromLEBytes(b []byte) U256 {
	be := make([]byte, len(b))
	for i, c := range b {
		be[len(b)-1-i] = c
	}
	var u U256
	u.v.SetBytes(be)
	return u
}

// FromBEBytes interprets b as a big-endian 256-bit unsigned integer.
func FromBEBytes(b []byte) U256 {
	var u U256
	u.v.SetBytes(b)
	return u
}

// FromUint64 constructs a U256 from a small value.
func FromUint64(v uint64) U256 {
	var u U256
	u.v.SetUint64(v)
	return u
}

// LEBytes renders u as exactly 32 little-endian bytes.
func (u U256) LEBytes() [32]byte {
	be := u.BEBytes()
	var le [32]byte
	for i, c := range be {
		le[31-i] = c
	}
	return le
}

// BEBytes renders u as exactly 32 big-endian bytes.
func (u U256) BEBytes() [32]byte {
	var out [32]byte
	src := u.v.Bytes()
	copy(out[32-len(src):], src)
	return out
}

// Cmp returns -1, 0, or 1 as u is less than, equal to, or greater than
// other.
func (u U256) Cmp(other U256) int {
	return u.v.Cmp(&other.v)
}

// IsZero reports whether u is zero.
func (u U256) IsZero() bool {
	return u.v.Sign() == 0
}

// MulUint64 returns u * m, truncated to 256 bits by saturating at the
// maximum representable value. Targets and difficulty never legitimately
// overflow 256 bits; saturation exists only to keep the operation total.
func (u U256) MulUint64(m uint64) U256 {
	var out U256
	out.v.Mul(&u.v, new(big.Int).SetUint64(m))
	return out.saturate()
}

// Add returns u + other, saturating at the maximum representable
// 256-bit value. Used to accumulate difficulty across a header chain.
func (u U256) Add(other U256) U256 {
	var out U256
	out.v.Add(&u.v, &other.v)
	return out.saturate()
}

// DivUint64 returns floor(u / d). Division by zero returns zero rather
// than panicking, keeping every routine in this package total.
func (u U256) DivUint64(d uint64) U256 {
	if d == 0 {
		return U256{}
	}
	var out U256
	out.v.Div(&u.v, new(big.Int).SetUint64(d))
	return out
}

// Div returns floor(u / other). Division by zero returns zero.
func (u U256) Div(other U256) U256 {
	if other.IsZero() {
		return U256{}
	}
	var out U256
	out.v.Div(&u.v, &other.v)
	return out
}

// PowSaturating256 returns mantissa * 256^exponent, saturating at the
// maximum representable 256-bit value instead of overflowing. This
// matches the header target formula in spec.md §4.5: an exponent of 0
// (the saturated case) yields the bare mantissa rather than panicking.
func PowSaturating256(mantissa uint64, exponent uint) U256 {
	var out U256
	out.v.SetUint64(mantissa)
	shift := new(big.Int).Lsh(big.NewInt(1), exponent*8)
	out.v.Mul(&out.v, shift)
	return out.saturate()
}

func (u U256) saturate() U256 {
	if u.v.Cmp(maxU256) > 0 {
		u.v.Set(maxU256)
	}
	return u
}
