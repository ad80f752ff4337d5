// Package mockwalrus provides an in-process implementation of the Walrus client
// listener, for testing the harness itself. Its observable behavior mirrors the
// real node: length-prefixed frames, connection-scoped AUTH state, and the same
// response strings.
package mockwalrus

import (
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/MEOFIXBUG/walrus-test-harness/walrus"

	"golang.org/x/exp/slices"
)

// FaultMode makes the server misbehave on purpose so transport-error handling
// can be tested.
type FaultMode int

const (
	FaultNone FaultMode = iota

	// FaultTruncateHeader closes the connection after writing only part of the
	// response length header.
	FaultTruncateHeader

	// FaultTruncatePayload writes a complete header but only part of the payload
	// before closing.
	FaultTruncatePayload

	// FaultCloseWithoutResponse closes the connection instead of responding.
	FaultCloseWithoutResponse

	// FaultInvalidUTF8 responds with a well-formed frame whose payload is not
	// valid UTF-8.
	FaultInvalidUTF8
)

var dataVerbs = []string{ //nolint:gochecknoglobals
	walrus.VerbRegister,
	walrus.VerbPut,
	walrus.VerbGet,
	walrus.VerbState,
	walrus.VerbMetrics,
}

// Server is a fake Walrus node listening on a loopback port.
type Server struct {
	// APIKey is the shared secret clients must present via AUTH. Empty means
	// authentication is not required.
	APIKey string

	// Fault, when not FaultNone, corrupts every response.
	Fault FaultMode

	listener net.Listener

	mu             sync.Mutex
	topics         map[string][]string
	framesReceived int
	conns          []net.Conn
}

// Start begins listening on an ephemeral loopback port.
func (s *Server) Start() error {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return err
	}
	s.listener = listener
	s.topics = make(map[string][]string)
	go s.acceptLoop()
	return nil
}

// Addr returns the host:port the server is listening on.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Close stops the listener and drops all open connections.
func (s *Server) Close() {
	_ = s.listener.Close()
	s.mu.Lock()
	conns := append([]net.Conn(nil), s.conns...)
	s.mu.Unlock()
	for _, c := range conns {
		_ = c.Close()
	}
}

// TopicData returns a copy of the payloads stored for a topic.
func (s *Server) TopicData(topic string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.topics[topic]...)
}

func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		s.mu.Lock()
		s.conns = append(s.conns, conn)
		s.mu.Unlock()
		go s.handleConn(conn)
	}
}

func (s *Server) handleConn(conn net.Conn) {
	defer conn.Close()

	// Authentication state lives only for this connection, as in the real node.
	authenticated := s.APIKey == ""

	for {
		var header [4]byte
		if _, err := io.ReadFull(conn, header[:]); err != nil {
			return
		}
		length := binary.LittleEndian.Uint32(header[:])
		if length == 0 || length > walrus.MaxFrameLen {
			if !s.respond(conn, "ERR invalid frame length") {
				return
			}
			continue
		}
		payload := make([]byte, length)
		if _, err := io.ReadFull(conn, payload); err != nil {
			return
		}
		if !utf8.Valid(payload) {
			if !s.respond(conn, "ERR invalid utf-8") {
				return
			}
			continue
		}

		s.mu.Lock()
		s.framesReceived++
		s.mu.Unlock()

		response := s.handleCommand(strings.TrimRight(string(payload), "\r\n"), &authenticated)
		if !s.respond(conn, response) {
			return
		}
	}
}

func (s *Server) handleCommand(line string, authenticated *bool) string {
	parts := strings.SplitN(line, " ", 3)
	op := parts[0]
	arg := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	if op == walrus.VerbAuth {
		if s.APIKey == "" || arg(1) == s.APIKey {
			*authenticated = true
			return "OK"
		}
		return "ERR invalid API key"
	}

	if s.APIKey != "" && !*authenticated {
		return "ERR authentication required: send AUTH <api_key> first"
	}

	if !slices.Contains(dataVerbs, op) {
		return "ERR unknown command"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch op {
	case walrus.VerbRegister:
		topic := arg(1)
		if topic == "" {
			return "ERR REGISTER requires a topic"
		}
		if _, ok := s.topics[topic]; !ok {
			s.topics[topic] = nil
		}
		return "OK"
	case walrus.VerbPut:
		topic := arg(1)
		if topic == "" {
			return "ERR PUT requires a topic"
		}
		if len(parts) < 3 {
			return "ERR PUT requires a payload"
		}
		if _, ok := s.topics[topic]; !ok {
			return fmt.Sprintf("ERR unknown topic %s", topic)
		}
		s.topics[topic] = append(s.topics[topic], parts[2])
		return "OK"
	case walrus.VerbGet:
		topic := arg(1)
		if topic == "" {
			return "ERR GET requires a topic"
		}
		entries, ok := s.topics[topic]
		if !ok {
			return fmt.Sprintf("ERR unknown topic %s", topic)
		}
		if len(entries) == 0 {
			return "EMPTY"
		}
		return "OK " + entries[0]
	case walrus.VerbState:
		topic := arg(1)
		if topic == "" {
			return "ERR STATE requires a topic"
		}
		entries, ok := s.topics[topic]
		if !ok {
			return fmt.Sprintf("ERR unknown topic %s", topic)
		}
		return fmt.Sprintf(`{"topic":%q,"entries":%d}`, topic, len(entries))
	case walrus.VerbMetrics:
		return fmt.Sprintf("topics=%d frames_received=%d", len(s.topics), s.framesReceived)
	}
	return "ERR unknown command"
}

// respond writes one response frame, applying the configured fault mode.
// It returns false if the connection should be dropped.
func (s *Server) respond(conn net.Conn, message string) bool {
	switch s.Fault {
	case FaultCloseWithoutResponse:
		return false
	case FaultTruncateHeader:
		var header [4]byte
		binary.LittleEndian.PutUint32(header[:], uint32(len(message)))
		_, _ = conn.Write(header[:2])
		return false
	case FaultTruncatePayload:
		var header [4]byte
		binary.LittleEndian.PutUint32(header[:], uint32(len(message)))
		_, _ = conn.Write(header[:])
		_, _ = conn.Write([]byte(message[:len(message)/2]))
		return false
	case FaultInvalidUTF8:
		payload := []byte{0xff, 0xfe, 0xfd}
		var header [4]byte
		binary.LittleEndian.PutUint32(header[:], uint32(len(payload)))
		_, _ = conn.Write(header[:])
		_, _ = conn.Write(payload)
		return true
	default:
		return walrus.WriteFrame(conn, message) == nil
	}
}
