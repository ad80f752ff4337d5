package walrustests

import (
	"github.com/MEOFIXBUG/walrus-test-harness/framework/wtest"
	"github.com/MEOFIXBUG/walrus-test-harness/walrus"

	m "github.com/MEOFIXBUG/walrus-test-harness/framework/matchers"
)

// doDataPlaneTests exercises PUT/GET/STATE against the topic registered by the
// authentication suite. Each scenario still opens its own connection and
// re-authenticates; the only state carried over is on the target itself.
func doDataPlaneTests(t *wtest.T) {
	s := suiteOf(t)

	t.Run("fresh topic reads EMPTY", func(t *wtest.T) {
		requireTopicRegistered(t)
		client := newClient(t, s.target.APIKey)
		response := commandResponse(t, client, walrus.CommandGet(s.target.Topic))
		m.AssertThat(t, response, m.Equal(walrus.ResponseEmpty))
	})

	t.Run("put stores value", func(t *wtest.T) {
		requireTopicRegistered(t)
		client := newClient(t, s.target.APIKey)
		response := commandResponse(t, client, walrus.CommandPut(s.target.Topic, s.target.Value))
		m.RequireThat(t, response, m.Equal(walrus.ResponseOK))
		s.valueWritten = true
	})

	t.Run("get returns written value", func(t *wtest.T) {
		requireValueWritten(t)
		client := newClient(t, s.target.APIKey)
		response := commandResponse(t, client, walrus.CommandGet(s.target.Topic))
		m.RequireThat(t, response, m.StringHasPrefix("OK "))
		data, _ := walrus.DataPayload(response)
		m.AssertThat(t, data, m.Equal(s.target.Value))
	})

	t.Run("state snapshot is readable", func(t *wtest.T) {
		requireTopicRegistered(t)
		client := newClient(t, s.target.APIKey)
		response := commandResponse(t, client, walrus.CommandState(s.target.Topic))
		// The snapshot format is the target's own business; it just must not be
		// an error report.
		m.AssertThat(t, response, m.AllOf(
			m.StringNonEmpty(),
			m.Not(m.StringHasPrefix("ERR")),
		))
	})
}
