// Package seqkitcontract contains the behavioral contracts of the sequence roles.
//
// Any Cursor or Container implementation is expected to pass these suites,
// they encode the laws consumers rely on:
// exhaustion is final, closing is safe to repeat,
// and a container's passes are independent from each other.
package seqkitcontract

import (
	"testing"

	"go.llib.dev/testcase"
	"go.llib.dev/testcase/assert"

	"go.llib.dev/seqkit/pkg/seqkit"
	"go.llib.dev/seqkit/port/contract"
	"go.llib.dev/seqkit/port/sequence"
)

// Cursor returns the contract of the sequence.Cursor role.
// The Make function must return a fresh cursor over a non-empty, error-free sequence.
func Cursor[V any](mk contract.Make[sequence.Cursor[V]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) sequence.Cursor[V] {
		return mk(t)
	})

	s.Then("values can be collected from the cursor", func(t *testcase.T) {
		vs, err := seqkit.CollectCursor(subject.Get(t))
		assert.NoError(t, err)
		assert.NotEmpty(t, vs)
	})

	s.Then("exhaustion is idempotent", func(t *testcase.T) {
		c := subject.Get(t)
		for c.Next() {
		}
		t.Random.Repeat(2, 7, func() {
			assert.False(t, c.Next())
		})
		assert.NoError(t, c.Err())
	})

	s.Then("no values are produced after the cursor got closed", func(t *testcase.T) {
		c := subject.Get(t)
		assert.NoError(t, c.Close())
		assert.False(t, c.Next())
	})

	s.Then("closing is safe to repeat", func(t *testcase.T) {
		c := subject.Get(t)
		assert.NoError(t, c.Close())
		assert.NoError(t, c.Close())
	})

	s.Then("abandoning the pass early then closing doesn't yield an error", func(t *testcase.T) {
		c := subject.Get(t)
		assert.True(t, c.Next())
		_ = c.Value()
		assert.NoError(t, c.Close())
	})

	return s.AsSuite("Cursor")
}

// Container returns the contract of the sequence.Container role.
// The Make function must return a container over a non-empty, error-free sequence.
func Container[V any](mk contract.Make[sequence.Container[V]]) contract.Contract {
	s := testcase.NewSpec(nil)

	subject := testcase.Let(s, func(t *testcase.T) sequence.Container[V] {
		return mk(t)
	})

	s.Then("it reports the multipass capability", func(t *testcase.T) {
		assert.True(t, subject.Get(t).Multipass())
	})

	s.Then("every pass yields the same values in the same order", func(t *testcase.T) {
		con := subject.Get(t)
		expected, err := seqkit.Collect[V](con)
		assert.NoError(t, err)
		t.Random.Repeat(2, 5, func() {
			got, err := seqkit.Collect[V](con)
			assert.NoError(t, err)
			assert.Equal(t, expected, got)
		})
	})

	s.Then("cursors of concurrent passes don't interfere", func(t *testcase.T) {
		con := subject.Get(t)

		a := con.Produce()
		defer a.Close()
		assert.True(t, a.Next())
		first := a.Value()

		b := con.Produce()
		defer b.Close()
		assert.True(t, b.Next())
		assert.Equal(t, first, b.Value(), "a fresh pass must begin at the first element, regardless of other passes")

		assert.Equal(t, first, a.Value(), "the already begun pass must keep its own position")
	})

	s.Context("the produced cursor", func(s *testcase.Spec) {
		Cursor[V](func(tb testing.TB) sequence.Cursor[V] {
			return mk(tb).Produce()
		}).Spec(s)
	})

	return s.AsSuite("Container")
}
