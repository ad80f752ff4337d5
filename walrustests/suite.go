package walrustests

import (
	"time"

	"github.com/MEOFIXBUG/walrus-test-harness/framework/wtest"
)

// Reference values from the Walrus node's own test script, used when the
// configuration does not override them.
const (
	DefaultTopic       = "test-topic"
	DefaultValue       = "hello-world"
	DefaultWrongAPIKey = "wrong-key"
)

// TargetInfo identifies the Walrus node under test.
type TargetInfo struct {
	// Addr is the host:port of the node's client listener.
	Addr string

	// APIKey is the shared secret the node was configured with.
	APIKey string

	// WrongAPIKey is a key the node must reject. Defaults to "wrong-key".
	WrongAPIKey string

	// Timeout bounds connects and per-frame I/O. Zero means the client default.
	Timeout time.Duration

	// Topic and Value are the data used by the data-plane scenarios. The topic
	// should not already exist on the target; the suite asserts on fresh-topic
	// behavior and never assumes re-registration is idempotent.
	Topic string
	Value string
}

func (info TargetInfo) withDefaults() TargetInfo {
	if info.WrongAPIKey == "" {
		info.WrongAPIKey = DefaultWrongAPIKey
	}
	if info.Topic == "" {
		info.Topic = DefaultTopic
	}
	if info.Value == "" {
		info.Value = DefaultValue
	}
	return info
}

// suiteContext is shared by all scenarios in one run. Later scenarios depend on
// earlier ones having mutated target state, so the outcome of the registration
// and write steps is recorded here and consulted before dependent scenarios run.
type suiteContext struct {
	target          TargetInfo
	topicRegistered bool
	valueWritten    bool
}

// RunWalrusTestSuite runs every conformance scenario, in order, each over its
// own fresh connection to the target.
func RunWalrusTestSuite(
	target TargetInfo,
	filters wtest.RegexFilters,
	testLogger wtest.TestLogger,
) wtest.Results {
	ctx := &suiteContext{target: target.withDefaults()}
	config := wtest.TestConfiguration{
		Filter:     filters.Match,
		TestLogger: testLogger,
		Context:    ctx,
	}
	return wtest.Run(config, func(t *wtest.T) {
		t.Run("authentication", doAuthTests)
		t.Run("data plane", doDataPlaneTests)
		t.Run("diagnostics", doDiagnosticsTests)
		t.Run("protocol errors", doProtocolErrorTests)
		t.Run("session reuse", doSessionReuseTests)
	})
}
