package wire_test

import (
	"bytes"
	"testing"

	"github.com/aatifsyed/go-ethcompat/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFrame struct {
	Hash  wire.H256
	Value wire.U256
}

func TestFrameWriter(t *testing.T) {
	var buffer bytes.Buffer
	writer := wire.NewFrameWriter(&buffer)

	frame := testFrame{}
	frame.Hash.SetBytes([]byte{0xde, 0xad})
	frame.Value.SetBytesLE([]byte{0x01})

	require.NoError(t, writer.WriteFrame(&frame))
	assert.Equal(t, int64(64), writer.BytesWritten(), "One frame is a hash plus a value")

	require.NoError(t, writer.WriteFrame(&frame))
	assert.Equal(t, int64(128), writer.BytesWritten(), "Byte count should accumulate across frames")

	written := buffer.Bytes()
	require.Len(t, written, 128)
	assert.Equal(t, frame.Hash.Bytes(), written[:32])
	assert.Equal(t, frame.Value.BytesLE(), written[32:64])
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, assert.AnError
}

func TestFrameWriter_WriteFailure(t *testing.T) {
	writer := wire.NewFrameWriter(brokenWriter{})

	err := writer.WriteFrame(&testFrame{})
	assert.Error(t, err, "Underlying write failures should surface")
}
