package walrus

import (
	"encoding/binary"
	"fmt"
	"io"
	"unicode/utf8"
)

// MaxFrameLen matches the Walrus node's frame size limit. A length header above
// this is treated as stream corruption rather than a real frame.
const MaxFrameLen = 4 * 1024 * 1024

const frameHeaderLen = 4

// WriteFrame encodes message as UTF-8 and writes it as one frame: a 4-byte
// little-endian length header (counting only the payload) followed by the payload.
func WriteFrame(w io.Writer, message string) error {
	payload := []byte(message)
	if len(payload) > MaxFrameLen {
		return &FramingError{Reason: fmt.Sprintf("payload of %d bytes exceeds frame limit", len(payload))}
	}
	var header [frameHeaderLen]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(payload)))
	if _, err := w.Write(header[:]); err != nil {
		return err
	}
	_, err := w.Write(payload)
	return err
}

// ReadFrame reads one complete frame and returns its payload as text. The reads
// loop until the exact byte counts are satisfied, so arbitrarily fragmented
// delivery is fine; a stream that ends early is a FramingError, never a silently
// truncated result.
func ReadFrame(r io.Reader) (string, error) {
	var header [frameHeaderLen]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return "", &FramingError{Reason: "incomplete length header"}
	}
	length := binary.LittleEndian.Uint32(header[:])
	if length > MaxFrameLen {
		return "", &FramingError{Reason: fmt.Sprintf("frame length %d exceeds limit", length)}
	}
	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return "", &FramingError{Reason: "incomplete payload"}
	}
	if !utf8.Valid(payload) {
		return "", &DecodeError{Reason: "payload is not valid UTF-8"}
	}
	return string(payload), nil
}
