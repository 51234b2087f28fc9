// Package wire defines the wire representation of execution-layer values:
// fixed-width byte sequences (hashes, addresses, bloom filters) and
// little-endian unsigned integers of 64 to 512 bits.
//
// Fixed-width types are raw byte arrays in big-endian display order, the same
// order go-ethereum stores them in. Integer types store their bytes
// little-endian, least significant byte first, and expose explicit
// little-endian import/export; see [U256] for details.
//
// Conversions to and from the go-ethereum native types live on the types
// themselves (e.g. [H256.Eth]); the root ethcompat package wraps them in a
// generic entry point.
package wire

import (
	"encoding/hex"
)

// H64 is a generic 8-byte sequence. go-ethereum's closest counterpart is the
// block nonce.
type H64 [8]byte

// H128 is a generic 16-byte sequence.
type H128 [16]byte

// H256 is a generic 32-byte sequence, and the canonical hash width.
type H256 [32]byte

// H512 is a generic 64-byte sequence.
type H512 [64]byte

// Address is a 20-byte execution-layer account address. It is deliberately a
// distinct type rather than a generic 20-byte sequence: addresses and raw
// 20-byte values should not convert into one another silently.
type Address [20]byte

// Bloom is a 2048-bit log bloom filter.
type Bloom [256]byte

func hexString(b []byte) string {
	return "0x" + hex.EncodeToString(b)
}

// setBytes copies src into dst right-aligned: short input is left-padded with
// zeroes, long input is cropped to its trailing bytes.
func setBytes(dst, src []byte) {
	if len(src) > len(dst) {
		src = src[len(src)-len(dst):]
	}

	for i := 0; i < len(dst)-len(src); i++ {
		dst[i] = 0
	}

	copy(dst[len(dst)-len(src):], src)
}

// Bytes returns a copy of the underlying byte sequence.
func (h H64) Bytes() []byte { return h[:] }

// SetBytes sets the sequence to b, left-padded or cropped to 8 bytes.
func (h *H64) SetBytes(b []byte) { setBytes(h[:], b) }

// Hex renders the sequence as 0x-prefixed lowercase hex.
func (h H64) Hex() string { return hexString(h[:]) }

func (h H64) String() string { return h.Hex() }

// MarshalText implements [encoding.TextMarshaler].
func (h H64) MarshalText() ([]byte, error) { return []byte(h.Hex()), nil }

// Bytes returns a copy of the underlying byte sequence.
func (h H128) Bytes() []byte { return h[:] }

// SetBytes sets the sequence to b, left-padded or cropped to 16 bytes.
func (h *H128) SetBytes(b []byte) { setBytes(h[:], b) }

// Hex renders the sequence as 0x-prefixed lowercase hex.
func (h H128) Hex() string { return hexString(h[:]) }

func (h H128) String() string { return h.Hex() }

// MarshalText implements [encoding.TextMarshaler].
func (h H128) MarshalText() ([]byte, error) { return []byte(h.Hex()), nil }

// Bytes returns a copy of the underlying byte sequence.
func (h H256) Bytes() []byte { return h[:] }

// SetBytes sets the sequence to b, left-padded or cropped to 32 bytes.
func (h *H256) SetBytes(b []byte) { setBytes(h[:], b) }

// Hex renders the sequence as 0x-prefixed lowercase hex.
func (h H256) Hex() string { return hexString(h[:]) }

func (h H256) String() string { return h.Hex() }

// MarshalText implements [encoding.TextMarshaler].
func (h H256) MarshalText() ([]byte, error) { return []byte(h.Hex()), nil }

// Bytes returns a copy of the underlying byte sequence.
func (h H512) Bytes() []byte { return h[:] }

// SetBytes sets the sequence to b, left-padded or cropped to 64 bytes.
func (h *H512) SetBytes(b []byte) { setBytes(h[:], b) }

// Hex renders the sequence as 0x-prefixed lowercase hex.
func (h H512) Hex() string { return hexString(h[:]) }

func (h H512) String() string { return h.Hex() }

// MarshalText implements [encoding.TextMarshaler].
func (h H512) MarshalText() ([]byte, error) { return []byte(h.Hex()), nil }

// Bytes returns a copy of the underlying byte sequence.
func (a Address) Bytes() []byte { return a[:] }

// SetBytes sets the address to b, left-padded or cropped to 20 bytes.
func (a *Address) SetBytes(b []byte) { setBytes(a[:], b) }

// Hex renders the address as 0x-prefixed lowercase hex, with no checksum
// casing applied.
func (a Address) Hex() string { return hexString(a[:]) }

func (a Address) String() string { return a.Hex() }

// MarshalText implements [encoding.TextMarshaler].
func (a Address) MarshalText() ([]byte, error) { return []byte(a.Hex()), nil }

// Bytes returns a copy of the underlying byte sequence.
func (b Bloom) Bytes() []byte { return b[:] }

// SetBytes sets the filter to d, left-padded or cropped to 256 bytes.
func (b *Bloom) SetBytes(d []byte) { setBytes(b[:], d) }

// Hex renders the filter as 0x-prefixed lowercase hex.
func (b Bloom) Hex() string { return hexString(b[:]) }

func (b Bloom) String() string { return b.Hex() }

// MarshalText implements [encoding.TextMarshaler].
func (b Bloom) MarshalText() ([]byte, error) { return []byte(b.Hex()), nil }
