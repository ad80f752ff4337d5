package walrustests

import (
	"github.com/MEOFIXBUG/walrus-test-harness/framework/wtest"
	"github.com/MEOFIXBUG/walrus-test-harness/walrus"
)

func suiteOf(t *wtest.T) *suiteContext {
	return t.Context().(*suiteContext)
}

// newClient makes a client for one scenario. An empty key means the scenario
// deliberately skips the AUTH exchange.
func newClient(t *wtest.T, apiKey string) *walrus.Client {
	target := suiteOf(t).target
	return &walrus.Client{
		Addr:    target.Addr,
		APIKey:  apiKey,
		Timeout: target.Timeout,
	}
}

// commandResponse performs one exchange and returns the text the target
// answered with. An AUTH rejection counts as the observed response, since that
// is what the scenario predicates classify; any other transport or framing
// error fails the scenario with the error's description, per the policy that
// transport errors are failures, never crashes.
func commandResponse(t *wtest.T, client *walrus.Client, command string) string {
	t.Helper()
	response, err := client.Exchange(command)
	if rejection, ok := walrus.IsAuthFailed(err); ok {
		t.Debug("AUTH rejected by target: %q", rejection)
		return rejection
	}
	if err != nil {
		t.Errorf("transport error during exchange: %s", err)
		t.FailNow()
	}
	t.Debug("sent %q, received %q", command, response)
	return response
}

// requireTopicRegistered skips the scenario when the registration scenario did
// not succeed, because the target state it depends on does not exist.
func requireTopicRegistered(t *wtest.T) {
	t.Helper()
	if !suiteOf(t).topicRegistered {
		t.SkipWithReason("topic was not registered (earlier scenario failed or was filtered out)")
	}
}

func requireValueWritten(t *wtest.T) {
	t.Helper()
	if !suiteOf(t).valueWritten {
		t.SkipWithReason("value was not written (earlier scenario failed or was filtered out)")
	}
}
