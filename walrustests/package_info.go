// Package walrustests contains the conformance test suites that are run against a
// Walrus node's client listener. The domain-independent test runner logic that
// this package uses is in framework/wtest, and the wire protocol is in walrus.
package walrustests
