package wire

import (
	"errors"
	"fmt"
	"io"

	"github.com/lunixbochs/struc"
)

var (
	// ErrBufferTooSmall indicates that the given output byte buffer is not
	// large enough to hold the packed value
	ErrBufferTooSmall = errors.New("provided slice buffer is not big enough to pack value into")
)

// The integer types implement [struc.Custom] so that composite wire
// structures mixing hashes and integers pack with struc directly. Integers
// are packed as their exact little-endian byte image; fixed-width byte types
// need no custom handling, since struc packs byte arrays verbatim. The
// String methods in uint.go complete the interface.

var _ struc.Custom = (*U64)(nil)

// Pack writes the 8-byte little-endian image of the value into p.
func (u U64) Pack(p []byte, _ *struc.Options) (int, error) {
	if len(p) < len(u) {
		return 0, ErrBufferTooSmall
	}

	return copy(p, u[:]), nil
}

// Unpack reads the 8-byte little-endian image of the value from r.
func (u *U64) Unpack(r io.Reader, _ int, _ *struc.Options) error {
	if _, err := io.ReadFull(r, u[:]); err != nil {
		return fmt.Errorf("could not read value bytes: %w", err)
	}

	return nil
}

func (u U64) Size(_ *struc.Options) int { return len(u) }

var _ struc.Custom = (*U128)(nil)

// Pack writes the 16-byte little-endian image of the value into p.
func (u U128) Pack(p []byte, _ *struc.Options) (int, error) {
	if len(p) < len(u) {
		return 0, ErrBufferTooSmall
	}

	return copy(p, u[:]), nil
}

// Unpack reads the 16-byte little-endian image of the value from r.
func (u *U128) Unpack(r io.Reader, _ int, _ *struc.Options) error {
	if _, err := io.ReadFull(r, u[:]); err != nil {
		return fmt.Errorf("could not read value bytes: %w", err)
	}

	return nil
}

func (u U128) Size(_ *struc.Options) int { return len(u) }

var _ struc.Custom = (*U256)(nil)

// Pack writes the 32-byte little-endian image of the value into p.
func (u U256) Pack(p []byte, _ *struc.Options) (int, error) {
	if len(p) < len(u) {
		return 0, ErrBufferTooSmall
	}

	return copy(p, u[:]), nil
}

// Unpack reads the 32-byte little-endian image of the value from r.
func (u *U256) Unpack(r io.Reader, _ int, _ *struc.Options) error {
	if _, err := io.ReadFull(r, u[:]); err != nil {
		return fmt.Errorf("could not read value bytes: %w", err)
	}

	return nil
}

func (u U256) Size(_ *struc.Options) int { return len(u) }

var _ struc.Custom = (*U512)(nil)

// Pack writes the 64-byte little-endian image of the value into p.
func (u U512) Pack(p []byte, _ *struc.Options) (int, error) {
	if len(p) < len(u) {
		return 0, ErrBufferTooSmall
	}

	return copy(p, u[:]), nil
}

// Unpack reads the 64-byte little-endian image of the value from r.
func (u *U512) Unpack(r io.Reader, _ int, _ *struc.Options) error {
	if _, err := io.ReadFull(r, u[:]); err != nil {
		return fmt.Errorf("could not read value bytes: %w", err)
	}

	return nil
}

func (u U512) Size(_ *struc.Options) int { return len(u) }
