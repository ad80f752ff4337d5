package walrus

import "strings"

// Command verbs understood by the Walrus client listener.
const (
	VerbAuth     = "AUTH"
	VerbRegister = "REGISTER"
	VerbPut      = "PUT"
	VerbGet      = "GET"
	VerbState    = "STATE"
	VerbMetrics  = "METRICS"
)

// Well-known responses.
const (
	ResponseOK    = "OK"
	ResponseEmpty = "EMPTY"

	okDataPrefix = "OK "
	errPrefix    = "ERR"
)

func CommandAuth(key string) string { return VerbAuth + " " + key }

func CommandRegister(topic string) string { return VerbRegister + " " + topic }

// CommandPut builds a PUT command. The wire format delimits arguments with single
// spaces and has no escaping, so value must not contain the delimiter; this is an
// inherited limitation of the protocol, not enforced here.
func CommandPut(topic, value string) string { return VerbPut + " " + topic + " " + value }

func CommandGet(topic string) string { return VerbGet + " " + topic }

func CommandState(topic string) string { return VerbState + " " + topic }

func CommandMetrics() string { return VerbMetrics }

// IsOK reports whether the response is a bare success.
func IsOK(response string) bool { return response == ResponseOK }

// IsEmpty reports whether the response is the target's no-data marker for GET.
func IsEmpty(response string) bool { return response == ResponseEmpty }

// IsErr reports whether the response is an error report from the target.
func IsErr(response string) bool { return strings.HasPrefix(response, errPrefix) }

// DataPayload returns the data carried by an "OK <data>" response. ok is false
// if the response does not carry data.
func DataPayload(response string) (data string, ok bool) {
	return strings.CutPrefix(response, okDataPrefix)
}
