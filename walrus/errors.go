package walrus

import "fmt"

// ConnectError means the TCP connection to the target could not be established
// within the configured timeout.
type ConnectError struct {
	Addr string
	Err  error
}

func (e *ConnectError) Error() string {
	return fmt.Sprintf("cannot connect to %s: %s", e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error { return e.Err }

// FramingError means the stream ended, or misbehaved, before a complete
// length header or payload could be read.
type FramingError struct {
	Reason string
}

func (e *FramingError) Error() string {
	return "framing error: " + e.Reason
}

// DecodeError means a frame payload was not valid UTF-8.
type DecodeError struct {
	Reason string
}

func (e *DecodeError) Error() string {
	return "decode error: " + e.Reason
}

// AuthFailedError means the AUTH exchange did not return exactly "OK". Response
// holds the literal rejection text from the target.
type AuthFailedError struct {
	Response string
}

func (e *AuthFailedError) Error() string {
	return "authentication failed: " + e.Response
}
