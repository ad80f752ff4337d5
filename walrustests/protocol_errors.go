package walrustests

import (
	"github.com/MEOFIXBUG/walrus-test-harness/framework/wtest"
	"github.com/MEOFIXBUG/walrus-test-harness/walrus"

	m "github.com/MEOFIXBUG/walrus-test-harness/framework/matchers"
)

// doProtocolErrorTests verifies that malformed commands come back as in-band
// error responses rather than dropped connections.
func doProtocolErrorTests(t *wtest.T) {
	s := suiteOf(t)

	t.Run("unknown verb is reported", func(t *wtest.T) {
		client := newClient(t, s.target.APIKey)
		response := commandResponse(t, client, "FROBNICATE "+s.target.Topic)
		m.AssertThat(t, response, m.AllOf(
			m.StringHasPrefix("ERR"),
			m.StringContainsFold("unknown command"),
		))
	})

	t.Run("missing topic argument is reported", func(t *wtest.T) {
		client := newClient(t, s.target.APIKey)
		response := commandResponse(t, client, walrus.VerbRegister)
		m.AssertThat(t, response, m.AllOf(
			m.StringHasPrefix("ERR"),
			m.StringContainsFold("requires a topic"),
		))
	})
}
