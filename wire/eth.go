package wire

import (
	"encoding/binary"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/holiman/uint256"
	"lukechampine.com/uint128"
)

// Conversions between wire values and their go-ethereum counterparts. Every
// supported pairing is enumerated here; a pairing is supported exactly when
// both sides expose a public type of the same width. Calling a conversion
// that is not listed does not compile.
//
// Fixed-width pairings copy bytes verbatim: both sides store these types as
// raw byte sequences in the same order. Integer pairings re-encode through a
// little-endian byte buffer of exactly the declared width, because the two
// sides disagree on internal byte order but not on numeric value.
//
// Pairings with no go-ethereum counterpart at the time of writing:
//
//	H128 : no public 16-byte type
//	H512 : no public 64-byte type
//	U512 : no fixed-width 512-bit unsigned integer type
//
// The wire types themselves remain usable; only the conversions are absent.

// Eth returns the value as a go-ethereum block nonce, byte for byte.
func (h H64) Eth() types.BlockNonce { return types.BlockNonce(h) }

// SetEth sets the value from a go-ethereum block nonce, byte for byte.
func (h *H64) SetEth(n types.BlockNonce) { *h = H64(n) }

// Eth returns the value as a go-ethereum hash, byte for byte.
func (h H256) Eth() common.Hash { return common.Hash(h) }

// SetEth sets the value from a go-ethereum hash, byte for byte.
func (h *H256) SetEth(v common.Hash) { *h = H256(v) }

// Eth returns the value as a go-ethereum address, byte for byte.
func (a Address) Eth() common.Address { return common.Address(a) }

// SetEth sets the value from a go-ethereum address, byte for byte.
func (a *Address) SetEth(v common.Address) { *a = Address(v) }

// Eth returns the value as a go-ethereum log bloom, byte for byte.
func (b Bloom) Eth() types.Bloom { return types.Bloom(b) }

// SetEth sets the value from a go-ethereum log bloom, byte for byte.
func (b *Bloom) SetEth(v types.Bloom) { *b = Bloom(v) }

// Eth returns the numeric value as a machine integer.
func (u U64) Eth() uint64 { return binary.LittleEndian.Uint64(u[:]) }

// SetEth sets the numeric value from a machine integer.
func (u *U64) SetEth(v uint64) { binary.LittleEndian.PutUint64(u[:], v) }

// Eth returns the numeric value as a uint128. Both sides order their limbs
// least significant first, so the 16-byte little-endian image transfers
// directly.
func (u U128) Eth() uint128.Uint128 { return uint128.FromBytes(u[:]) }

// SetEth sets the numeric value from a uint128.
func (u *U128) SetEth(v uint128.Uint128) { v.PutBytes(u[:]) }

// Eth returns the numeric value as a uint256.Int. uint256 keeps four uint64
// limbs with z[0] least significant, which is the same significance order as
// the wire bytes.
func (u U256) Eth() *uint256.Int {
	z := new(uint256.Int)
	for i := 0; i < len(z); i++ {
		z[i] = binary.LittleEndian.Uint64(u[8*i:])
	}

	return z
}

// SetEth sets the numeric value from a uint256.Int. A nil z sets zero.
func (u *U256) SetEth(z *uint256.Int) {
	if z == nil {
		*u = U256{}
		return
	}

	for i := 0; i < len(z); i++ {
		binary.LittleEndian.PutUint64(u[8*i:], z[i])
	}
}
