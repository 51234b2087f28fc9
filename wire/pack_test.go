package wire_test

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/aatifsyed/go-ethcompat/wire"
	"github.com/lunixbochs/struc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLittleEndianField(t *testing.T, field struc.Custom, expected []byte, size int) {
	t.Helper()

	assert.Equal(t, size, field.Size(&struc.Options{}), "Size should be the declared byte width")

	buffer := make([]byte, size)
	written, err := field.Pack(buffer, &struc.Options{})
	require.NoError(t, err)
	assert.Equal(t, size, written, "Pack should fill the whole buffer")
	assert.Equal(t, expected, buffer, "Packed bytes should be the little-endian image")
}

func TestU64Pack(t *testing.T) {
	cases := []struct {
		input    uint64
		expected [8]byte
	}{
		{0x00, [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{0xABCD, [8]byte{0xCD, 0xAB, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}},
		{0x12345678, [8]byte{0x78, 0x56, 0x34, 0x12, 0x00, 0x00, 0x00, 0x00}},
		{0xFFFFFFFFFFFFFFFF, [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
	}

	for _, c := range cases {
		t.Run(fmt.Sprintf("%02x", c.input), func(t *testing.T) {
			t.Parallel()

			var field wire.U64
			field.SetEth(c.input)
			testLittleEndianField(t, &field, c.expected[:], 8)
		})
	}
}

func TestU256Pack(t *testing.T) {
	var field wire.U256
	field.SetBytesLE([]byte{0xCD, 0xAB})

	expected := make([]byte, 32)
	expected[0] = 0xCD
	expected[1] = 0xAB
	testLittleEndianField(t, &field, expected, 32)
}

func TestU64Pack_InvalidArgs(t *testing.T) {
	var field wire.U64
	field.SetEth(0x1234)

	written, err := field.Pack(nil, &struc.Options{})
	assert.Error(t, err, "Pack should return an error when the buffer is too small")
	assert.Equal(t, 0, written, "Pack should not write any bytes when buffer is too small")
}

func TestU128Unpack(t *testing.T) {
	input := make([]byte, 16)
	for i := range input {
		input[i] = byte(i + 1)
	}

	var field wire.U128
	require.NoError(t, field.Unpack(bytes.NewReader(input), 16, &struc.Options{}))
	assert.Equal(t, input, field.BytesLE())
}

func TestU128Unpack_ShortInput(t *testing.T) {
	var field wire.U128
	err := field.Unpack(bytes.NewReader([]byte{0x01}), 16, &struc.Options{})
	assert.Error(t, err, "Unpack should fail when the reader runs out of bytes")
}

// A composite wire structure should pack field by field: byte types verbatim,
// integer types as their little-endian image.
func TestStructPack(t *testing.T) {
	frame := struct {
		Nonce   wire.H64
		BaseFee wire.U64
	}{
		Nonce: wire.H64{1, 2, 3, 4, 5, 6, 7, 8},
	}
	frame.BaseFee.SetEth(0xABCD)

	var buffer bytes.Buffer
	require.NoError(t, struc.Pack(&buffer, &frame))

	expected := []byte{
		1, 2, 3, 4, 5, 6, 7, 8, // nonce, verbatim
		0xCD, 0xAB, 0, 0, 0, 0, 0, 0, // base fee, little-endian
	}
	assert.Equal(t, expected, buffer.Bytes())
}
