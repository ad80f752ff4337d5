package walrustests

import (
	"github.com/MEOFIXBUG/walrus-test-harness/framework/wtest"
	"github.com/MEOFIXBUG/walrus-test-harness/walrus"

	m "github.com/MEOFIXBUG/walrus-test-harness/framework/matchers"
)

// doSessionReuseTests verifies that the target's authentication state lasts for
// the whole connection: one AUTH exchange, then several commands on the same
// session. This is the one place the harness deliberately reuses a connection.
func doSessionReuseTests(t *wtest.T) {
	s := suiteOf(t)
	topic := s.target.Topic + "-session"

	t.Run("authenticated session serves multiple commands", func(t *wtest.T) {
		client := newClient(t, s.target.APIKey)
		session, err := client.Connect()
		if err != nil {
			t.Errorf("transport error during connect: %s", err)
			t.FailNow()
		}
		t.Defer(func() { _ = session.Close() })

		if err := session.Authenticate(s.target.APIKey); err != nil {
			t.Errorf("authentication failed: %s", err)
			t.FailNow()
		}

		for _, step := range []struct {
			command string
			expect  m.Matcher
		}{
			{walrus.CommandRegister(topic), m.Equal(walrus.ResponseOK)},
			{walrus.CommandPut(topic, s.target.Value), m.Equal(walrus.ResponseOK)},
			{walrus.CommandGet(topic), m.Equal("OK " + s.target.Value)},
		} {
			response, err := session.Send(step.command)
			if err != nil {
				t.Errorf("transport error during %q: %s", step.command, err)
				t.FailNow()
			}
			t.Debug("sent %q, received %q", step.command, response)
			m.RequireThat(t, response, step.expect)
		}
	})
}
