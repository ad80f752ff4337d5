// Package framework contains the low-level implementation of test harness infrastructure
// that can be reused for different kinds of tests. The base package contains shared
// types such as Logger; the test runner itself is in the subpackage wtest.
//
// The general model is:
//
// 1. The test harness opens its own connections to the target server; the target is
// never assumed to know it is being tested.
//
// 2. There is a general notion of a test scope which is similar to Go's testing.T,
// allowing pieces of test logic to be associated with a test identifier and to
// accumulate success/failure results.
//
// The domain-specific code that knows what is being tested is responsible for driving
// the wire protocol and providing domain-specific assertions on top of the test scope.
package framework
