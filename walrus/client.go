package walrus

import (
	"errors"
	"net"
	"time"
)

// DefaultTimeout bounds the connect and every single send/receive on a session.
const DefaultTimeout = 5 * time.Second

// Client describes how to reach the target. It holds no connection state; every
// Exchange call dials a fresh connection, and the target's authentication state
// is never tracked or assumed across connections.
type Client struct {
	// Addr is the host:port of the target's client listener.
	Addr string

	// APIKey, when non-empty, is sent in an AUTH exchange before any command.
	APIKey string

	// Timeout bounds the connect and each frame send/receive. Zero means
	// DefaultTimeout.
	Timeout time.Duration
}

func (c *Client) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

// Exchange performs one complete exchange on its own connection: connect,
// authenticate if an API key is configured, send the command, read the response,
// close. Errors are the tagged variants from this package: *ConnectError,
// *AuthFailedError, *FramingError, *DecodeError, or a plain I/O error.
func (c *Client) Exchange(command string) (string, error) {
	session, err := c.Connect()
	if err != nil {
		return "", err
	}
	defer session.Close()

	if c.APIKey != "" {
		if err := session.Authenticate(c.APIKey); err != nil {
			return "", err
		}
	}
	return session.Send(command)
}

// Connect dials the target and returns a Session owning the new connection.
// The caller must Close it.
func (c *Client) Connect() (*Session, error) {
	conn, err := net.DialTimeout("tcp", c.Addr, c.timeout())
	if err != nil {
		return nil, &ConnectError{Addr: c.Addr, Err: err}
	}
	return &Session{conn: conn, timeout: c.timeout()}, nil
}

// Session is one TCP connection to the target. The target keeps its own
// per-connection authenticated flag; a Session only reflects what the caller
// has done with it.
type Session struct {
	conn    net.Conn
	timeout time.Duration
}

// Authenticate performs the AUTH exchange. Any response other than exactly "OK"
// is an *AuthFailedError carrying the literal rejection text.
func (s *Session) Authenticate(key string) error {
	response, err := s.Send(CommandAuth(key))
	if err != nil {
		return err
	}
	if !IsOK(response) {
		return &AuthFailedError{Response: response}
	}
	return nil
}

// Send writes one command frame and reads one response frame, each bounded by
// the session timeout.
func (s *Session) Send(command string) (string, error) {
	if err := s.conn.SetDeadline(time.Now().Add(s.timeout)); err != nil {
		return "", err
	}
	if err := WriteFrame(s.conn, command); err != nil {
		return "", err
	}
	return ReadFrame(s.conn)
}

func (s *Session) Close() error {
	return s.conn.Close()
}

// IsAuthFailed reports whether err is an authentication rejection, and if so
// returns the target's literal response text.
func IsAuthFailed(err error) (response string, ok bool) {
	var authErr *AuthFailedError
	if errors.As(err, &authErr) {
		return authErr.Response, true
	}
	return "", false
}
