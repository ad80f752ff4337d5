package walrus

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// oneByteReader delivers at most one byte per Read call, simulating a transport
// that fragments frames arbitrarily.
type oneByteReader struct {
	r io.Reader
}

func (o oneByteReader) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	return o.r.Read(p)
}

func TestWriteFrameWireFormat(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, "REGISTER test-topic"))

	wire := buf.Bytes()
	require.True(t, len(wire) >= 4)
	assert.Equal(t, uint32(len("REGISTER test-topic")), binary.LittleEndian.Uint32(wire[:4]))
	assert.Equal(t, "REGISTER test-topic", string(wire[4:]))
}

func TestFrameRoundTrip(t *testing.T) {
	for _, message := range []string{
		"OK",
		"OK hello-world",
		"PUT test-topic hello-world",
		"",
		"payload with spaces and ünïcode ☃",
	} {
		var buf bytes.Buffer
		require.NoError(t, WriteFrame(&buf, message))
		got, err := ReadFrame(&buf)
		require.NoError(t, err)
		assert.Equal(t, message, got)
	}
}

func TestReadFrameToleratesFragmentedDelivery(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, "STATE test-topic"))

	got, err := ReadFrame(oneByteReader{&buf})
	require.NoError(t, err)
	assert.Equal(t, "STATE test-topic", got)
}

func TestReadFrameDetectsTruncatedHeader(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3} {
		var buf bytes.Buffer
		require.NoError(t, WriteFrame(&buf, "OK"))
		truncated := bytes.NewReader(buf.Bytes()[:n])

		_, err := ReadFrame(truncated)
		var framingErr *FramingError
		require.True(t, errors.As(err, &framingErr), "for %d header bytes", n)
		assert.Contains(t, framingErr.Reason, "length header")
	}
}

func TestReadFrameDetectsTruncatedPayload(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteFrame(&buf, "OK hello-world"))
	truncated := bytes.NewReader(buf.Bytes()[:len(buf.Bytes())-5])

	_, err := ReadFrame(truncated)
	var framingErr *FramingError
	require.True(t, errors.As(err, &framingErr))
	assert.Contains(t, framingErr.Reason, "payload")
}

func TestReadFrameRejectsOversizedLength(t *testing.T) {
	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], MaxFrameLen+1)

	_, err := ReadFrame(bytes.NewReader(header[:]))
	var framingErr *FramingError
	require.True(t, errors.As(err, &framingErr))
	assert.Contains(t, framingErr.Reason, "exceeds limit")
}

func TestReadFrameRejectsInvalidUTF8(t *testing.T) {
	var buf bytes.Buffer
	payload := []byte{0xff, 0xfe, 0x41}
	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(payload)))
	buf.Write(header[:])
	buf.Write(payload)

	_, err := ReadFrame(&buf)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
}

func TestWriteFrameRejectsOversizedPayload(t *testing.T) {
	big := strings.Repeat("x", MaxFrameLen+1)
	err := WriteFrame(io.Discard, big)
	var framingErr *FramingError
	require.True(t, errors.As(err, &framingErr))
}
