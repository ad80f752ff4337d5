package mockwalrus

import (
	"encoding/binary"
	"net"
	"testing"

	"github.com/MEOFIXBUG/walrus-test-harness/walrus"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "walrus-secret-key-123"

func startServer(t *testing.T, apiKey string) *Server {
	t.Helper()
	s := &Server{APIKey: apiKey}
	require.NoError(t, s.Start())
	t.Cleanup(s.Close)
	return s
}

func dial(t *testing.T, s *Server) net.Conn {
	t.Helper()
	conn, err := net.Dial("tcp", s.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func roundTrip(t *testing.T, conn net.Conn, command string) string {
	t.Helper()
	require.NoError(t, walrus.WriteFrame(conn, command))
	response, err := walrus.ReadFrame(conn)
	require.NoError(t, err)
	return response
}

func TestRequiresAuthWhenKeyConfigured(t *testing.T) {
	s := startServer(t, testKey)
	conn := dial(t, s)

	response := roundTrip(t, conn, "REGISTER test-topic")
	assert.Contains(t, response, "authentication required")
}

func TestRejectsWrongKey(t *testing.T) {
	s := startServer(t, testKey)
	conn := dial(t, s)

	response := roundTrip(t, conn, "AUTH wrong-key")
	assert.Equal(t, "ERR invalid API key", response)
}

func TestAuthStateIsConnectionScoped(t *testing.T) {
	s := startServer(t, testKey)

	conn1 := dial(t, s)
	assert.Equal(t, "OK", roundTrip(t, conn1, "AUTH "+testKey))
	assert.Equal(t, "OK", roundTrip(t, conn1, "REGISTER test-topic"))

	// A second connection starts unauthenticated regardless of the first.
	conn2 := dial(t, s)
	response := roundTrip(t, conn2, "GET test-topic")
	assert.Contains(t, response, "authentication required")
}

func TestDataPlaneCommands(t *testing.T) {
	s := startServer(t, "")
	conn := dial(t, s)

	assert.Equal(t, "OK", roundTrip(t, conn, "REGISTER test-topic"))
	assert.Equal(t, "EMPTY", roundTrip(t, conn, "GET test-topic"))
	assert.Equal(t, "OK", roundTrip(t, conn, "PUT test-topic hello-world"))
	assert.Equal(t, "OK hello-world", roundTrip(t, conn, "GET test-topic"))
	assert.Equal(t, []string{"hello-world"}, s.TopicData("test-topic"))

	state := roundTrip(t, conn, "STATE test-topic")
	assert.NotEmpty(t, state)
	assert.False(t, walrus.IsErr(state))

	metrics := roundTrip(t, conn, "METRICS")
	assert.NotEmpty(t, metrics)
	assert.False(t, walrus.IsErr(metrics))
}

func TestErrorResponses(t *testing.T) {
	s := startServer(t, "")
	conn := dial(t, s)

	assert.Equal(t, "ERR unknown command", roundTrip(t, conn, "BOGUS thing"))
	assert.Equal(t, "ERR REGISTER requires a topic", roundTrip(t, conn, "REGISTER"))
	assert.Equal(t, "ERR PUT requires a payload", roundTrip(t, conn, "PUT test-topic"))
	assert.Equal(t, "ERR unknown topic nope", roundTrip(t, conn, "GET nope"))
}

func TestRejectsInvalidFrameLength(t *testing.T) {
	s := startServer(t, "")
	conn := dial(t, s)

	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], 0)
	_, err := conn.Write(header[:])
	require.NoError(t, err)

	response, err := walrus.ReadFrame(conn)
	require.NoError(t, err)
	assert.Equal(t, "ERR invalid frame length", response)
}

func TestRejectsInvalidUTF8Command(t *testing.T) {
	s := startServer(t, "")
	conn := dial(t, s)

	payload := []byte{0xff, 0xfe}
	var header [4]byte
	binary.LittleEndian.PutUint32(header[:], uint32(len(payload)))
	_, err := conn.Write(header[:])
	require.NoError(t, err)
	_, err = conn.Write(payload)
	require.NoError(t, err)

	response, err := walrus.ReadFrame(conn)
	require.NoError(t, err)
	assert.Equal(t, "ERR invalid utf-8", response)
}
