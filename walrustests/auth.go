package walrustests

import (
	"github.com/MEOFIXBUG/walrus-test-harness/framework/wtest"
	"github.com/MEOFIXBUG/walrus-test-harness/walrus"

	m "github.com/MEOFIXBUG/walrus-test-harness/framework/matchers"
)

// doAuthTests verifies the API-key gate: commands without AUTH are rejected, a
// wrong key is rejected, and the correct key unlocks the data plane. The
// successful registration here is what every data-plane scenario builds on.
func doAuthTests(t *wtest.T) {
	s := suiteOf(t)

	t.Run("command without AUTH is rejected", func(t *wtest.T) {
		client := newClient(t, "")
		response := commandResponse(t, client, walrus.CommandRegister(s.target.Topic))
		m.AssertThat(t, response, m.AllOf(
			m.StringNonEmpty(),
			m.StringContainsFold("authentication required"),
		))
	})

	t.Run("wrong API key is rejected", func(t *wtest.T) {
		client := newClient(t, s.target.WrongAPIKey)
		response := commandResponse(t, client, walrus.CommandRegister(s.target.Topic))
		m.AssertThat(t, response, m.AllOf(
			m.StringNonEmpty(),
			m.AnyOf(
				m.StringContainsFold("invalid"),
				m.StringContainsFold("authentication"),
			),
		))
	})

	t.Run("correct API key registers topic", func(t *wtest.T) {
		client := newClient(t, s.target.APIKey)
		response := commandResponse(t, client, walrus.CommandRegister(s.target.Topic))
		m.RequireThat(t, response, m.Equal(walrus.ResponseOK))
		s.topicRegistered = true
	})
}
