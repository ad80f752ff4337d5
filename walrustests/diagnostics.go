package walrustests

import (
	"github.com/MEOFIXBUG/walrus-test-harness/framework/wtest"
	"github.com/MEOFIXBUG/walrus-test-harness/walrus"

	m "github.com/MEOFIXBUG/walrus-test-harness/framework/matchers"
)

// doDiagnosticsTests covers the node's global METRICS command. The payload is
// opaque at this layer, like STATE.
func doDiagnosticsTests(t *wtest.T) {
	s := suiteOf(t)

	t.Run("metrics are readable", func(t *wtest.T) {
		client := newClient(t, s.target.APIKey)
		response := commandResponse(t, client, walrus.CommandMetrics())
		m.AssertThat(t, response, m.AllOf(
			m.StringNonEmpty(),
			m.Not(m.StringHasPrefix("ERR")),
		))
	})
}
