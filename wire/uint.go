package wire

import (
	"encoding/binary"
	"encoding/hex"
)

// U64, U128, U256 and U512 are fixed-width unsigned integers stored as
// little-endian bytes: index 0 holds the least significant byte. The zero
// value is the number zero.
//
// There is no arithmetic here; these types carry already-computed values
// across a representation boundary, nothing more.

// U64 is a 64-bit unsigned integer in little-endian byte storage.
type U64 [8]byte

// U128 is a 128-bit unsigned integer in little-endian byte storage.
type U128 [16]byte

// U256 is a 256-bit unsigned integer in little-endian byte storage.
type U256 [32]byte

// U512 is a 512-bit unsigned integer in little-endian byte storage.
type U512 [64]byte

// setBytesLE copies a little-endian src into dst: short input leaves the high
// bytes zero, long input is cropped to its least significant bytes.
func setBytesLE(dst, src []byte) {
	if len(src) > len(dst) {
		src = src[:len(dst)]
	}

	copy(dst, src)

	for i := len(src); i < len(dst); i++ {
		dst[i] = 0
	}
}

// hexLE renders a little-endian byte image as full-width 0x-prefixed hex in
// conventional most-significant-first order.
func hexLE(b []byte) string {
	be := make([]byte, len(b))
	for i, v := range b {
		be[len(b)-1-i] = v
	}

	return "0x" + hex.EncodeToString(be)
}

// SetBytesLE sets the value from a little-endian byte buffer.
func (u *U64) SetBytesLE(b []byte) { setBytesLE(u[:], b) }

// BytesLE returns the value as a little-endian byte buffer of exactly 8 bytes.
func (u U64) BytesLE() []byte { return u[:] }

// AppendLE appends the little-endian byte image to b.
func (u U64) AppendLE(b []byte) []byte { return append(b, u[:]...) }

// Uint64 returns the value as a machine integer.
func (u U64) Uint64() uint64 { return binary.LittleEndian.Uint64(u[:]) }

// Hex renders the value as full-width, most-significant-first hex.
func (u U64) Hex() string { return hexLE(u[:]) }

func (u U64) String() string { return u.Hex() }

// SetBytesLE sets the value from a little-endian byte buffer.
func (u *U128) SetBytesLE(b []byte) { setBytesLE(u[:], b) }

// BytesLE returns the value as a little-endian byte buffer of exactly 16 bytes.
func (u U128) BytesLE() []byte { return u[:] }

// AppendLE appends the little-endian byte image to b.
func (u U128) AppendLE(b []byte) []byte { return append(b, u[:]...) }

// Hex renders the value as full-width, most-significant-first hex.
func (u U128) Hex() string { return hexLE(u[:]) }

func (u U128) String() string { return u.Hex() }

// SetBytesLE sets the value from a little-endian byte buffer.
func (u *U256) SetBytesLE(b []byte) { setBytesLE(u[:], b) }

// BytesLE returns the value as a little-endian byte buffer of exactly 32 bytes.
func (u U256) BytesLE() []byte { return u[:] }

// AppendLE appends the little-endian byte image to b.
func (u U256) AppendLE(b []byte) []byte { return append(b, u[:]...) }

// Hex renders the value as full-width, most-significant-first hex.
func (u U256) Hex() string { return hexLE(u[:]) }

func (u U256) String() string { return u.Hex() }

// SetBytesLE sets the value from a little-endian byte buffer.
func (u *U512) SetBytesLE(b []byte) { setBytesLE(u[:], b) }

// BytesLE returns the value as a little-endian byte buffer of exactly 64 bytes.
func (u U512) BytesLE() []byte { return u[:] }

// AppendLE appends the little-endian byte image to b.
func (u U512) AppendLE(b []byte) []byte { return append(b, u[:]...) }

// Hex renders the value as full-width, most-significant-first hex.
func (u U512) Hex() string { return hexLE(u[:]) }

func (u U512) String() string { return u.Hex() }
