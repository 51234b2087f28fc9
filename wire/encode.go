package wire

import (
	"fmt"
	"io"

	"github.com/itchio/headway/counter"
	"github.com/lunixbochs/struc"
)

// FrameWriter serializes wire structures to an underlying writer, keeping
// count of the bytes written so far. Frames are structs whose fields are wire
// types (or anything else struc can pack).
type FrameWriter struct {
	wrapped *counter.Writer
}

func NewFrameWriter(wrapped io.Writer) *FrameWriter {
	return &FrameWriter{wrapped: counter.NewWriter(wrapped)}
}

// WriteFrame packs frame with [struc.Pack] and writes it to the underlying
// writer.
func (w *FrameWriter) WriteFrame(frame any) error {
	if err := struc.Pack(w.wrapped, frame); err != nil {
		return fmt.Errorf("could not pack frame: %w", err)
	}

	return nil
}

// BytesWritten returns the total number of bytes written across all frames.
func (w *FrameWriter) BytesWritten() int64 {
	return w.wrapped.Count()
}
