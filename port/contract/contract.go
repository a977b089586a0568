// Package contract defines how behavioral specifications of the module's roles are expressed.
package contract

import (
	"testing"

	"go.llib.dev/testcase"
)

// Make func meant to create a new instance of the testing subject.
// A contract receives a Make function instead of a concrete value,
// so each test case can begin with a fresh, uncontaminated subject.
type Make[Subject any] = func(tb testing.TB) Subject

// Contract represents a role interface specification.
//
// Any expectation a consumer holds towards a supplied role interface,
// such as Cursor or Container, should be defined in a contract,
// so every implementation of the role can be verified against the same behavioral requirements.
type Contract interface {
	testcase.Suite
	// Test asserts the expected behavioral requirements on a supplier implementation.
	Test(*testing.T)
	// Benchmark expresses the performance aspects the consumer depends on,
	// so different supplier implementations can be A/B tested against them.
	Benchmark(*testing.B)
}
